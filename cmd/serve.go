package main

import (
	"mnestswap/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the swap page and API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(configFile)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
