// Package fraction holds the ownership math for tokenized assets: every
// token of a tokenized asset represents an equal slice of the asset's
// valuation.
package fraction

import (
	"fmt"
	"math"
)

// PercentPerUnit returns the ownership percentage a single token carries.
func PercentPerUnit(totalSupply int64) float64 {
	if totalSupply <= 0 {
		return 0
	}
	return 100 / float64(totalSupply)
}

// PercentFor returns the ownership percentage for a holding of n tokens.
func PercentFor(n, totalSupply int64) float64 {
	return PercentPerUnit(totalSupply) * float64(n)
}

// PricePerUnit returns the price of a single token, rounded down to a
// whole currency unit.
func PricePerUnit(valuation float64, totalSupply int64) int64 {
	if totalSupply <= 0 {
		return 0
	}
	return int64(math.Floor(valuation / float64(totalSupply)))
}

// FormatPercentPerUnit renders the per-token percentage for display.
// The standard 100-unit supply renders as a plain integer percentage,
// anything else gets two decimals.
func FormatPercentPerUnit(totalSupply int64) string {
	if totalSupply == 100 {
		return "1%"
	}
	return fmt.Sprintf("%.2f%%", PercentPerUnit(totalSupply))
}

// FormatPercentFor renders the percentage for a holding of n tokens.
func FormatPercentFor(n, totalSupply int64) string {
	if totalSupply == 100 {
		return fmt.Sprintf("%d%%", n)
	}
	return fmt.Sprintf("%.2f%%", PercentFor(n, totalSupply))
}
