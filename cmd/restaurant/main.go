package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/restaurant"
)

var temporalAddress string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Command line tool for the Temporal Restaurant application.",
	Long: `Command line tool for the Temporal Restaurant application.

Run without a command to walk through the sample order, payment, menu and
table reservations.`,
	Args:          cobra.NoArgs,
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&temporalAddress, "temporal-address", "", "Temporal frontend host:port (client default if empty)")
}

func main() {
	ctx := restaurant.NewContext(context.Background(), restaurant.Default())
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}
