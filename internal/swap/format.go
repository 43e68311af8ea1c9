package swap

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultPrecision int32 = 6

// exponentThreshold is the magnitude from which fixed notation gives way to
// the shortest exponential form, as number-to-text conversion in browsers does.
const exponentThreshold = 1e21

// Format renders x with exactly precision fraction digits, rounding half away
// from zero on the shortest decimal representation of x.
func Format(x float64, precision int32) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.Abs(x) >= exponentThreshold:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	out := decimal.NewFromFloat(x).StringFixed(precision)
	if x < 0 && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}

// FormatBalance renders a balance held in base units as whole tokens.
func FormatBalance(units int64, decimals int32, precision int32) string {
	return decimal.New(units, -decimals).StringFixed(precision)
}
