package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/temporalio/temporal-restaurant/api"
)

type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient(base string) apiClient {
	return apiClient{base: strings.TrimSuffix(base, "/"), http: &http.Client{}}
}

func (c apiClient) get(path string, v interface{}) error {
	r, err := c.http.Get(c.base + path)
	if err != nil {
		return err
	}
	defer r.Body.Close()

	if r.StatusCode < 200 || r.StatusCode >= 300 {
		return fmt.Errorf("api request failed with code: %d", r.StatusCode)
	}

	return json.NewDecoder(r.Body).Decode(v)
}

func (c apiClient) post(path string, body interface{}) (api.Line, error) {
	jsonInput, err := json.Marshal(body)
	if err != nil {
		return api.Line{}, fmt.Errorf("unable to encode request: %w", err)
	}

	r, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(jsonInput))
	if err != nil {
		return api.Line{}, err
	}
	defer r.Body.Close()

	if r.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(r.Body)
		return api.Line{}, fmt.Errorf("%s: %s", http.StatusText(r.StatusCode), strings.TrimSpace(string(b)))
	}

	var line api.Line
	err = json.NewDecoder(r.Body).Decode(&line)

	return line, err
}
