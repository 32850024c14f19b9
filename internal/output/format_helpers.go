package output

import (
	"math"
	"strconv"

	"github.com/rpgo/retirement-projector/pkg/decimal"
)

// FormatCurrency formats an amount as USD with thousands separators and 2 decimals.
func FormatCurrency(amount float64) string { return decimal.FormatCurrency(amount, false) }

// FormatCompactCurrency shortens large amounts ("$1.5K", "$2.0M").
func FormatCompactCurrency(amount float64) string { return decimal.FormatCurrency(amount, true) }

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate float64) string { return strconv.FormatFloat(rate*100, 'f', 2, 64) + "%" }

// formatAmount renders an amount for machine-readable outputs (no symbol, 2 decimals).
func formatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return decimal.NewMoney(amount).Round().String()
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
