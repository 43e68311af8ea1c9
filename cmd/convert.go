package main

import (
	"encoding/json"
	"fmt"
	"io"

	"mnestswap/internal/app"
	"mnestswap/internal/config"
	"mnestswap/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert an amount at the configured exchange rate",
	Long: `Convert applies one edit to an empty swap form and prints both fields.
The value is taken as typed, so an empty string clears the form and
non-numeric text renders as NaN unless swap.strict is enabled.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("field", "f", string(domain.FieldSource), "Edited field: source (USDT) or destination (MNest)")
	rootCmd.AddCommand(convertCmd)
}

type convertOutput struct {
	Rate        float64 `json:"exchange_rate"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Init(configFile)
	if err != nil {
		return err
	}
	app.SetupLogger(cfg.Logging.Level)

	field, _ := cmd.Flags().GetString("field")
	asJSON, _ := cmd.Flags().GetBool("json")

	edit := domain.Edit{Field: domain.Field(field), Raw: args[0]}
	state, err := app.NewConverter(cfg.Swap).Apply(domain.FormState{}, edit, domain.ExchangeRate(cfg.Swap.ExchangeRate))
	if err != nil {
		return err
	}

	out := convertOutput{Rate: cfg.Swap.ExchangeRate, Source: state.Source, Destination: state.Destination}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	printConversion(cmd.OutOrStdout(), out)
	return nil
}

func printConversion(w io.Writer, out convertOutput) {
	label := color.New(color.FgCyan).SprintFunc()
	_, _ = fmt.Fprintf(w, "%s %s USDT\n", label("Source:     "), out.Source)
	_, _ = fmt.Fprintf(w, "%s %s MNest\n", label("Destination:"), out.Destination)
	_, _ = fmt.Fprintf(w, "%s %v\n", label("Rate:       "), out.Rate)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
