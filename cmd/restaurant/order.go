package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/restaurant"
)

// orderCmd represents the order command
var orderCmd = &cobra.Command{
	Use:   "order details ...",
	Short: "Process an order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := restaurant.FromContext(cmd.Context())

		return r.Orders().ProcessOrder(strings.Join(args, " "))
	},
}

// payCmd represents the pay command
var payCmd = &cobra.Command{
	Use:   "pay amount",
	Short: "Process a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		r := restaurant.FromContext(cmd.Context())

		return r.Payments().ProcessPayment(amount)
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(payCmd)
}
