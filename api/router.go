package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/temporalio/temporal-restaurant/restaurant"
)

type handlers struct {
	restaurant *restaurant.Restaurant
}

func Router(r *restaurant.Restaurant) *mux.Router {
	h := handlers{restaurant: r}

	router := mux.NewRouter()

	router.HandleFunc("/menu", h.handleMenu).Methods("GET")
	router.HandleFunc("/menu/items", h.handleMenuItemPrepare).Methods("POST")
	router.HandleFunc("/tables", h.handleTables).Methods("GET")
	router.HandleFunc("/tables/reservations", h.handleTableReserve).Methods("POST")
	router.HandleFunc("/orders", h.handleOrder).Methods("POST")
	router.HandleFunc("/payments", h.handlePayment).Methods("POST")

	return router
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("unable to decode request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, restaurant.ErrInvalidArgument) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}
