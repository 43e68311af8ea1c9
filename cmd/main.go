package main

import (
	"os"
)

// @title MNest Swap API
// @version 1.0
// @description Preview swaps between USDT and MNest at a fixed mock exchange rate.
// @BasePath /api/v1
func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
