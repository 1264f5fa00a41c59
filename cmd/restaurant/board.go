package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/temporalio/temporal-restaurant/cmd/restaurant/ui"
)

var boardAPI string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the restaurant board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := ui.NewBoard(boardAPI)

		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()

		p := tea.NewProgram(b, tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

func init() {
	boardCmd.Flags().StringVar(&boardAPI, "api", "http://localhost:8084", "API server URL")
	rootCmd.AddCommand(boardCmd)
}
