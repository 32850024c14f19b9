package decimal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidNumber is returned when display text cannot be read as a number.
var ErrInvalidNumber = errors.New("invalid number input")

var (
	decimalHundred  = decimal.NewFromInt(100)
	decimalThousand = decimal.NewFromInt(1000)
	decimalMillion  = decimal.NewFromInt(1000000)

	displayCleaner = strings.NewReplacer("$", "", ",", "", " ", "", "\u00a0", "")
	printer        = message.NewPrinter(language.AmericanEnglish)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64. It panics on NaN or infinity;
// use FormatCurrency for values that may not be finite.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// ParseMoney reads an amount as typed by a user, tolerating a currency symbol and
// thousands separators ("$1,000.50"). Anything else is ErrInvalidNumber.
func ParseMoney(raw string) (Money, error) {
	cleaned := displayCleaner.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return Money{}, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return Money{d}, nil
}

// ParsePercent reads a percentage ("7", "7%", "-1.5 %") and returns it as a fraction.
func ParsePercent(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	m, err := ParseMoney(trimmed)
	if err != nil {
		return decimal.Zero, err
	}
	return m.Decimal.Div(decimalHundred), nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Float64 returns the amount as a float64 for the projection engine.
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as US currency with thousands separators ("$1,000.00").
func (m Money) Format() string {
	sign := ""
	if m.IsNegative() {
		sign = "-"
	}
	return sign + "$" + printer.Sprintf("%.2f", m.Decimal.Abs().Round(2).InexactFloat64())
}

// FormatCompact shortens thousands and millions for chart axes ("$1.5K", "$1.0M").
func (m Money) FormatCompact() string {
	sign := ""
	if m.IsNegative() {
		sign = "-"
	}
	abs := m.Decimal.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimalMillion):
		return sign + "$" + abs.Div(decimalMillion).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(decimalThousand):
		return sign + "$" + abs.Div(decimalThousand).StringFixed(1) + "K"
	default:
		return m.Format()
	}
}

// NotFiniteText is what FormatCurrency renders for NaN and infinite amounts.
const NotFiniteText = "n/a"

// FormatCurrency formats a float amount, compact or in full.
func FormatCurrency(amount float64, compact bool) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return NotFiniteText
	}
	m := NewMoney(amount)
	if compact {
		return m.FormatCompact()
	}
	return m.Format()
}
