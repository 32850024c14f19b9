package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/retirement-projector/internal/domain"
)

// ErrInvalidInputs is wrapped by every ValidationError.
var ErrInvalidInputs = errors.New("invalid projection inputs")

// ErrNonFiniteResult reports inputs whose projection leaves the float64 range.
var ErrNonFiniteResult = fmt.Errorf("%w: balance exceeds the representable range", ErrInvalidInputs)

// MaxAge is the highest life expectancy a projection accepts.
const MaxAge = 150

// ValidationError names the input field that makes a projection impossible.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInputs }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ValidateInputs rejects configurations the projection cannot represent: ages out of
// order or above MaxAge, negative or non-finite amounts, rates at or below -100%, and
// unknown enum values.
func ValidateInputs(in domain.ProjectionInputs) error {
	if in.CurrentAge < 0 {
		return invalid("current_age", "cannot be negative, got %d", in.CurrentAge)
	}
	if in.RetirementAge < in.CurrentAge {
		return invalid("retirement_age", "must be at least current age %d, got %d", in.CurrentAge, in.RetirementAge)
	}
	if in.LifeExpectancy < in.RetirementAge {
		return invalid("life_expectancy", "must be at least retirement age %d, got %d", in.RetirementAge, in.LifeExpectancy)
	}
	if in.LifeExpectancy > MaxAge {
		return invalid("life_expectancy", "cannot exceed %d, got %d", MaxAge, in.LifeExpectancy)
	}

	rates := []struct {
		field string
		value float64
	}{
		{"return_rate", in.ReturnRate},
		{"inflation_rate", in.InflationRate},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return invalid(r.field, "must be a finite number")
		}
		if r.value <= -1 {
			return invalid(r.field, "must be greater than -100%%, got %.2f%%", r.value*100)
		}
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"initial_investment", in.InitialInvestment},
		{"contribution_amount", in.ContributionAmount},
		{"withdrawal_amount", in.WithdrawalAmount},
	}
	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return invalid(a.field, "must be a finite number")
		}
		if a.value < 0 {
			return invalid(a.field, "cannot be negative, got %.2f", a.value)
		}
	}

	if !in.ContributionInterval.Valid() {
		return invalid("contribution_interval", "unknown interval %q", in.ContributionInterval)
	}
	if !in.InvestmentStrategy.Valid() {
		return invalid("investment_strategy", "unknown strategy %q", in.InvestmentStrategy)
	}
	if !in.WithdrawalMode.Valid() {
		return invalid("withdrawal_mode", "unknown mode %q", in.WithdrawalMode)
	}
	if in.WithdrawalMode == domain.WithdrawalPercentage {
		if math.IsNaN(in.WithdrawalRate) || in.WithdrawalRate < 0 || in.WithdrawalRate > 1 {
			return invalid("withdrawal_rate", "must be between 0 and 100%%")
		}
	}

	if math.IsNaN(in.WithdrawalIncreaseRate) || math.IsInf(in.WithdrawalIncreaseRate, 0) {
		return invalid("withdrawal_increase_rate", "must be a finite number")
	}
	if in.WithdrawalIncreaseRate <= -1 {
		return invalid("withdrawal_increase_rate", "must be greater than -100%%, got %.2f%%", in.WithdrawalIncreaseRate*100)
	}
	if in.WithdrawalIncreaseRate != 0 && in.InflationAdjustedWithdrawal {
		return invalid("withdrawal_increase_rate", "cannot be combined with inflation_adjusted_withdrawal")
	}

	return nil
}
