package main

import (
	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/restaurant"
)

var menuItemType string
var menuItemName string
var menuItemPrice float64

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Menu commands",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// menuPrepareCmd represents the menu prepare command
var menuPrepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Prepare a menu item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := restaurant.NewMenuItem(menuItemType, menuItemName, menuItemPrice)
		if err != nil {
			return err
		}

		return item.Prepare(restaurant.FromContext(cmd.Context()).Output())
	},
}

func init() {
	menuPrepareCmd.Flags().StringVarP(&menuItemType, "type", "t", "", "Item type: appetizer|maincourse|dessert (required)")
	menuPrepareCmd.MarkFlagRequired("type")
	menuPrepareCmd.Flags().StringVarP(&menuItemName, "name", "n", "", "Item name (required)")
	menuPrepareCmd.MarkFlagRequired("name")
	menuPrepareCmd.Flags().Float64VarP(&menuItemPrice, "price", "p", 0, "Item price")

	menuCmd.AddCommand(menuPrepareCmd)
	rootCmd.AddCommand(menuCmd)
}
