package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/retirement-projector/internal/domain"
	"github.com/rpgo/retirement-projector/pkg/decimal"
)

// FieldError reports which raw input could not be read.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// FormInput holds raw text as typed into the calculator form or passed as CLI flags.
// Rates are percentages ("7" or "7%"); amounts may carry "$" and thousands separators.
type FormInput struct {
	CurrentAge                  string
	RetirementAge               string
	LifeExpectancy              string
	ReturnRate                  string
	InflationRate               string
	InitialInvestment           string
	ContributionAmount          string
	ContributionInterval        string
	WithdrawalAmount            string
	InflationAdjustedWithdrawal string
	WithdrawalIncreaseRate      string
	WithdrawalMode              string
	WithdrawalRate              string
	InvestmentStrategy          string
}

// FormFieldNames are the form keys, in display order.
var FormFieldNames = []string{
	"current-age", "retirement-age", "life-expectancy",
	"return-rate", "inflation-rate",
	"initial-investment", "contribution-amount", "contribution-interval",
	"withdrawal-amount", "inflation-adjusted-withdrawal", "withdrawal-increase-rate",
	"withdrawal-mode", "withdrawal-rate",
	"investment-strategy",
}

// FormInputFromValues reads a FormInput from key/value pairs keyed by FormFieldNames.
func FormInputFromValues(get func(key string) string) FormInput {
	return FormInput{
		CurrentAge:                  get("current-age"),
		RetirementAge:               get("retirement-age"),
		LifeExpectancy:              get("life-expectancy"),
		ReturnRate:                  get("return-rate"),
		InflationRate:               get("inflation-rate"),
		InitialInvestment:           get("initial-investment"),
		ContributionAmount:          get("contribution-amount"),
		ContributionInterval:        get("contribution-interval"),
		WithdrawalAmount:            get("withdrawal-amount"),
		InflationAdjustedWithdrawal: get("inflation-adjusted-withdrawal"),
		WithdrawalIncreaseRate:      get("withdrawal-increase-rate"),
		WithdrawalMode:              get("withdrawal-mode"),
		WithdrawalRate:              get("withdrawal-rate"),
		InvestmentStrategy:          get("investment-strategy"),
	}
}

// ToInputs parses every field and returns the first failure as a *FieldError.
// Number failures wrap decimal.ErrInvalidNumber. Empty optional fields default to zero.
func (f FormInput) ToInputs() (domain.ProjectionInputs, error) {
	var in domain.ProjectionInputs
	var err error

	ages := []struct {
		field string
		raw   string
		dst   *int
	}{
		{"current-age", f.CurrentAge, &in.CurrentAge},
		{"retirement-age", f.RetirementAge, &in.RetirementAge},
		{"life-expectancy", f.LifeExpectancy, &in.LifeExpectancy},
	}
	for _, a := range ages {
		if *a.dst, err = parseAge(a.raw); err != nil {
			return in, &FieldError{Field: a.field, Err: err}
		}
	}

	rates := []struct {
		field string
		raw   string
		dst   *float64
	}{
		{"return-rate", f.ReturnRate, &in.ReturnRate},
		{"inflation-rate", f.InflationRate, &in.InflationRate},
		{"withdrawal-rate", f.WithdrawalRate, &in.WithdrawalRate},
		{"withdrawal-increase-rate", f.WithdrawalIncreaseRate, &in.WithdrawalIncreaseRate},
	}
	for _, r := range rates {
		if strings.TrimSpace(r.raw) == "" {
			continue
		}
		d, err := decimal.ParsePercent(r.raw)
		if err != nil {
			return in, &FieldError{Field: r.field, Err: err}
		}
		*r.dst = d.InexactFloat64()
	}

	amounts := []struct {
		field string
		raw   string
		dst   *float64
	}{
		{"initial-investment", f.InitialInvestment, &in.InitialInvestment},
		{"contribution-amount", f.ContributionAmount, &in.ContributionAmount},
		{"withdrawal-amount", f.WithdrawalAmount, &in.WithdrawalAmount},
	}
	for _, a := range amounts {
		if strings.TrimSpace(a.raw) == "" {
			continue
		}
		m, err := decimal.ParseMoney(a.raw)
		if err != nil {
			return in, &FieldError{Field: a.field, Err: err}
		}
		*a.dst = m.Float64()
	}

	if in.ContributionInterval, err = domain.ParseContributionInterval(f.ContributionInterval); err != nil {
		return in, &FieldError{Field: "contribution-interval", Err: err}
	}
	if in.InvestmentStrategy, err = domain.ParseInvestmentStrategy(f.InvestmentStrategy); err != nil {
		return in, &FieldError{Field: "investment-strategy", Err: err}
	}
	if in.WithdrawalMode, err = domain.ParseWithdrawalMode(f.WithdrawalMode); err != nil {
		return in, &FieldError{Field: "withdrawal-mode", Err: err}
	}
	if in.InflationAdjustedWithdrawal, err = parseFlag(f.InflationAdjustedWithdrawal); err != nil {
		return in, &FieldError{Field: "inflation-adjusted-withdrawal", Err: err}
	}

	return in, nil
}

func parseAge(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", decimal.ErrInvalidNumber)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", decimal.ErrInvalidNumber, raw)
	}
	return n, nil
}

// parseFlag accepts checkbox values ("on") and the strconv boolean forms.
func parseFlag(raw string) (bool, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "":
		return false, nil
	case "on", "yes", "inflation":
		return true, nil
	case "off", "no", "none":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}

// FormInputFromInputs renders inputs back into form text, rates as percentages.
func FormInputFromInputs(in domain.ProjectionInputs) FormInput {
	return FormInput{
		CurrentAge:                  strconv.Itoa(in.CurrentAge),
		RetirementAge:               strconv.Itoa(in.RetirementAge),
		LifeExpectancy:              strconv.Itoa(in.LifeExpectancy),
		ReturnRate:                  percentText(in.ReturnRate),
		InflationRate:               percentText(in.InflationRate),
		InitialInvestment:           decimal.NewMoney(in.InitialInvestment).Decimal.String(),
		ContributionAmount:          decimal.NewMoney(in.ContributionAmount).Decimal.String(),
		ContributionInterval:        string(in.ContributionInterval),
		WithdrawalAmount:            decimal.NewMoney(in.WithdrawalAmount).Decimal.String(),
		InflationAdjustedWithdrawal: strconv.FormatBool(in.InflationAdjustedWithdrawal),
		WithdrawalIncreaseRate:      percentText(in.WithdrawalIncreaseRate),
		WithdrawalMode:              string(in.WithdrawalMode),
		WithdrawalRate:              percentText(in.WithdrawalRate),
		InvestmentStrategy:          string(in.InvestmentStrategy),
	}
}

// Values returns the raw text keyed by FormFieldNames.
func (f FormInput) Values() map[string]string {
	return map[string]string{
		"current-age":                   f.CurrentAge,
		"retirement-age":                f.RetirementAge,
		"life-expectancy":               f.LifeExpectancy,
		"return-rate":                   f.ReturnRate,
		"inflation-rate":                f.InflationRate,
		"initial-investment":            f.InitialInvestment,
		"contribution-amount":           f.ContributionAmount,
		"contribution-interval":         f.ContributionInterval,
		"withdrawal-amount":             f.WithdrawalAmount,
		"inflation-adjusted-withdrawal": f.InflationAdjustedWithdrawal,
		"withdrawal-increase-rate":      f.WithdrawalIncreaseRate,
		"withdrawal-mode":               f.WithdrawalMode,
		"withdrawal-rate":               f.WithdrawalRate,
		"investment-strategy":           f.InvestmentStrategy,
	}
}

func percentText(rate float64) string {
	return decimal.NewMoney(rate).Shift(2).String()
}
