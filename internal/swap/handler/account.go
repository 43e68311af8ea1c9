package handler

import (
	"net/http"

	"mnestswap/internal/domain"
	"mnestswap/internal/swap"
)

type BalancesResponse struct {
	MNest string `json:"mnest" example:"1.000000"`
	USDT  string `json:"usdt" example:"0.200000"`
}

type AccountResponse struct {
	ExchangeRate float64          `json:"exchange_rate" example:"5"`
	Owner        string           `json:"owner" example:"0x1234...5678"`
	Balances     BalancesResponse `json:"balances"`
	RateLabel    string           `json:"rate_label" example:"5 MNest = 0.2 USDT"`
}

func toAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		ExchangeRate: float64(a.ExchangeRate),
		Owner:        a.Owner,
		Balances: BalancesResponse{
			MNest: swap.FormatBalance(a.Balances.MNest, domain.BalanceDecimals, swap.DefaultPrecision),
			USDT:  swap.FormatBalance(a.Balances.USDT, domain.BalanceDecimals, swap.DefaultPrecision),
		},
		RateLabel: a.RateLabel(),
	}
}

// GetAccount godoc
// @Summary Mock account
// @Description Exchange rate, owner and balances the swap page displays
// @Tags Swap
// @Produce json
// @Success 200 {object} AccountResponse
// @Router /account [get]
func (h *Handler) GetAccount(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toAccountResponse(h.service.Account()))
}
