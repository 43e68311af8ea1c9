package main

import (
	"fmt"
	"io"

	"mnestswap/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mnest-swap",
	Short: "Preview USDT to MNest swaps at a fixed exchange rate",
	Long: `mnest-swap serves a single-page swap preview between USDT and MNest and
exposes the same conversion over a JSON API. Balances and the exchange rate
are mock values from the config file; nothing is ever sent on chain.

Examples:
  mnest-swap serve
  mnest-swap convert 10
  mnest-swap convert --field destination 50 --json
  mnest-swap account`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configFile string

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Path to the config file")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "\n%s %v\n\n", color.RedString("Error:"), err)
}
