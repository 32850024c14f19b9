package decimal

import (
	"errors"
	"math"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1,000", "1000.00"},
		{"$1,000", "1000.00"},
		{"1000.50", "1000.50"},
		{"  $ 2,500,000.75 ", "2500000.75"},
		{"-300", "-300.00"},
	}
	for _, c := range cases {
		m, err := ParseMoney(c.in)
		if err != nil {
			t.Fatalf("ParseMoney(%q) unexpected error: %v", c.in, err)
		}
		if got := m.String(); got != c.want {
			t.Fatalf("ParseMoney(%q) got %s want %s", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"invalid", "", "12abc", "$", "1.2.3"} {
		_, err := ParseMoney(bad)
		if err == nil {
			t.Fatalf("expected error for %q", bad)
		}
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("ParseMoney(%q) error %v does not wrap ErrInvalidNumber", bad, err)
		}
	}
}

func TestParsePercent(t *testing.T) {
	cases := map[string]string{
		"7":      "0.07",
		"7%":     "0.07",
		"-1.5 %": "-0.015",
		"0":      "0",
	}
	for in, want := range cases {
		got, err := ParsePercent(in)
		if err != nil {
			t.Fatalf("ParsePercent(%q) unexpected error: %v", in, err)
		}
		if !got.Equal(stddec.RequireFromString(want)) {
			t.Fatalf("ParsePercent(%q) got %s want %s", in, got, want)
		}
	}
	if _, err := ParsePercent("seven"); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1000, "$1,000.00"},
		{1234.567, "$1,234.57"},
		{0, "$0.00"},
		{-2500.5, "-$2,500.50"},
		{1000000, "$1,000,000.00"},
	}
	for _, c := range cases {
		if got := NewMoney(c.in).Format(); got != c.want {
			t.Fatalf("Format(%v) got %s want %s", c.in, got, c.want)
		}
	}
}

func TestFormatCurrencyCompact(t *testing.T) {
	cases := []struct {
		in      float64
		compact bool
		want    string
	}{
		{1000, false, "$1,000.00"},
		{1000000, true, "$1.0M"},
		{1500, true, "$1.5K"},
		{999, true, "$999.00"},
		{-2500000, true, "-$2.5M"},
		{math.Inf(1), false, NotFiniteText},
		{math.Inf(-1), true, NotFiniteText},
		{math.NaN(), false, NotFiniteText},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in, c.compact); got != c.want {
			t.Fatalf("FormatCurrency(%v, %v) got %s want %s", c.in, c.compact, got, c.want)
		}
	}
}

func TestRoundAndFloat(t *testing.T) {
	m := NewMoneyFromDecimal(stddec.RequireFromString("2.344"))
	if got := m.Round().String(); got != "2.34" {
		t.Fatalf("Round got %s", got)
	}
	if got := NewMoney(16050).Float64(); got != 16050 {
		t.Fatalf("Float64 got %v", got)
	}
}
