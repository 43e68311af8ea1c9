package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BalanceDecimals is the number of decimals both mock token balances are stored with.
const BalanceDecimals = 6

type Balances struct {
	MNest int64
	USDT  int64
}

// Account is the static mock contract state the page reads from.
type Account struct {
	ExchangeRate ExchangeRate
	Owner        string
	Balances     Balances
}

func (a Account) Validate() error {
	r := float64(a.ExchangeRate)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, r)
	}
	if strings.TrimSpace(a.Owner) == "" {
		return ErrOwnerRequired
	}
	if a.Balances.MNest < 0 || a.Balances.USDT < 0 {
		return ErrNegativeBalance
	}
	return nil
}

func (a Account) RateLabel() string {
	return strconv.FormatFloat(float64(a.ExchangeRate), 'f', -1, 64) + " MNest = 0.2 USDT"
}
