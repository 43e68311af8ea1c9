package main

import (
	"fmt"

	"mnestswap/internal/config"
	"mnestswap/internal/domain"
	"mnestswap/internal/swap"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the mock account the swap page displays",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Init(configFile)
		if err != nil {
			return err
		}
		account := cfg.Swap.Account()
		mnest := swap.FormatBalance(account.Balances.MNest, domain.BalanceDecimals, swap.DefaultPrecision)
		usdt := swap.FormatBalance(account.Balances.USDT, domain.BalanceDecimals, swap.DefaultPrecision)

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"exchange_rate": float64(account.ExchangeRate),
				"owner":         account.Owner,
				"balances":      map[string]string{"mnest": mnest, "usdt": usdt},
				"rate_label":    account.RateLabel(),
			})
		}

		bold := color.New(color.Bold).SprintFunc()
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "%s %s\n", bold("Owner:        "), account.Owner)
		_, _ = fmt.Fprintf(w, "%s %s\n", bold("MNest Balance:"), mnest)
		_, _ = fmt.Fprintf(w, "%s %s\n", bold("USDT Balance: "), usdt)
		_, _ = fmt.Fprintf(w, "%s %s\n", bold("Exchange Rate:"), account.RateLabel())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
}
