package main

import (
	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/restaurant"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the sample order, payment, menu and tables",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	return restaurant.RunDemo(restaurant.FromContext(cmd.Context()))
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
