package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/api"
	"github.com/temporalio/temporal-restaurant/restaurant"
)

var apiAddr string

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run API Server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := &http.Server{
			Handler: api.Router(restaurant.FromContext(cmd.Context())),
			Addr:    apiAddr,
		}

		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		log.Printf("API listening on %s", apiAddr)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)

		select {
		case <-sigCh:
			srv.Close()
		case err := <-errCh:
			return err
		}

		return nil
	},
}

func init() {
	apiCmd.Flags().StringVar(&apiAddr, "addr", "0.0.0.0:8084", "Listen address")
	rootCmd.AddCommand(apiCmd)
}
