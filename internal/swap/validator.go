package swap

import (
	"fmt"
	"math"

	"mnestswap/internal/domain"
)

func ValidateRate(rate domain.ExchangeRate) error {
	r := float64(rate)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRate, r)
	}
	return nil
}

// ValidateAmount coerces raw and rejects anything that is not a finite,
// non-negative number.
func ValidateAmount(raw string) (float64, error) {
	v := Coerce(raw)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	return v, nil
}
