package swap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoerce_Numbers(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{raw: "10", want: 10},
		{raw: " 10\t", want: 10},
		{raw: "   ", want: 0},
		{raw: "0", want: 0},
		{raw: "1e3", want: 1000},
		{raw: "2.5E-1", want: 0.25},
		{raw: ".5", want: 0.5},
		{raw: "5.", want: 5},
		{raw: "+3", want: 3},
		{raw: "-2", want: -2},
		{raw: "0x10", want: 16},
		{raw: "0XfF", want: 255},
		{raw: "0o17", want: 15},
		{raw: "0b101", want: 5},
		{raw: "007", want: 7},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			require.Equal(t, tc.want, Coerce(tc.raw))
		})
	}
}

func TestCoerce_Infinity(t *testing.T) {
	require.True(t, math.IsInf(Coerce("Infinity"), 1))
	require.True(t, math.IsInf(Coerce("+Infinity"), 1))
	require.True(t, math.IsInf(Coerce("-Infinity"), -1))
	require.True(t, math.IsInf(Coerce("1e400"), 1))
	require.True(t, math.IsInf(Coerce("-1e400"), -1))
}

func TestCoerce_NaN(t *testing.T) {
	for _, raw := range []string{"abc", "12abc", "1_000", "inf", "NaN", "infinity", "0x", "0x1p-2", "0x-1", "0b102", "1e", "1e+", ".", "-", "--1", "1.2.3", "1,5"} {
		t.Run(raw, func(t *testing.T) {
			require.True(t, math.IsNaN(Coerce(raw)), "expected NaN for %q", raw)
		})
	}
}
