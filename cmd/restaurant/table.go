package main

import (
	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/restaurant"
)

var tableType string
var tableNumber int

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Table commands",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// tableReserveCmd represents the table reserve command
var tableReserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Reserve a table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := restaurant.NewTable(tableType, tableNumber)
		if err != nil {
			return err
		}

		return table.Reserve(restaurant.FromContext(cmd.Context()).Output())
	},
}

func init() {
	tableReserveCmd.Flags().StringVarP(&tableType, "type", "t", "", "Table type: regular|vip|outdoor (required)")
	tableReserveCmd.MarkFlagRequired("type")
	tableReserveCmd.Flags().IntVarP(&tableNumber, "number", "n", 0, "Table number (required)")
	tableReserveCmd.MarkFlagRequired("number")

	tableCmd.AddCommand(tableReserveCmd)
	rootCmd.AddCommand(tableCmd)
}
