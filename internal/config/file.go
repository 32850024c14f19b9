package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rpgo/retirement-projector/internal/domain"
	"github.com/rpgo/retirement-projector/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a money value in a configuration file. It accepts plain YAML numbers
// as well as display strings such as "$10,000".
type Amount float64

// UnmarshalYAML implements custom YAML unmarshaling for Amount
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		return nil
	}
	m, err := decimal.ParseMoney(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = Amount(m.Float64())
	return nil
}

// ErrAmbiguousRate rejects bare rates above 100%, which are almost always a
// percentage written without its "%" suffix.
var ErrAmbiguousRate = errors.New("rate above 100% without a % suffix")

// Rate is a fractional rate in a configuration file (0.07). Strings ending in "%"
// are read as percentages ("7%"). Bare numbers above 1 are rejected.
type Rate float64

// UnmarshalYAML implements custom YAML unmarshaling for Rate
func (r *Rate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: rate must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		return nil
	}
	raw := strings.TrimSpace(value.Value)
	if strings.HasSuffix(raw, "%") {
		d, err := decimal.ParsePercent(raw)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*r = Rate(d.InexactFloat64())
		return nil
	}
	m, err := decimal.ParseMoney(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	if v := m.Float64(); v > 1 || v < -1 {
		return fmt.Errorf("line %d: %w: %s (write %q for a percentage or %s for a fraction)",
			value.Line, ErrAmbiguousRate, raw, raw+"%", m.Shift(-2).String())
	}
	*r = Rate(m.Float64())
	return nil
}

// FileConfiguration is the on-disk shape of a projection configuration.
type FileConfiguration struct {
	Name string `yaml:"name,omitempty"`

	CurrentAge     int `yaml:"current_age"`
	RetirementAge  int `yaml:"retirement_age"`
	LifeExpectancy int `yaml:"life_expectancy"`

	ReturnRate    Rate `yaml:"return_rate"`
	InflationRate Rate `yaml:"inflation_rate"`

	InitialInvestment    Amount                      `yaml:"initial_investment"`
	ContributionAmount   Amount                      `yaml:"contribution_amount"`
	ContributionInterval domain.ContributionInterval `yaml:"contribution_interval"`

	WithdrawalAmount            Amount                `yaml:"withdrawal_amount"`
	InflationAdjustedWithdrawal bool                  `yaml:"inflation_adjusted_withdrawal"`
	WithdrawalIncreaseRate      Rate                  `yaml:"withdrawal_increase_rate,omitempty"`
	WithdrawalMode              domain.WithdrawalMode `yaml:"withdrawal_mode,omitempty"`
	WithdrawalRate              Rate                  `yaml:"withdrawal_rate,omitempty"`

	InvestmentStrategy domain.InvestmentStrategy `yaml:"investment_strategy"`
}

// Inputs converts the file model into engine inputs.
func (fc *FileConfiguration) Inputs() domain.ProjectionInputs {
	return domain.ProjectionInputs{
		CurrentAge:                  fc.CurrentAge,
		RetirementAge:               fc.RetirementAge,
		LifeExpectancy:              fc.LifeExpectancy,
		ReturnRate:                  float64(fc.ReturnRate),
		InflationRate:               float64(fc.InflationRate),
		InitialInvestment:           float64(fc.InitialInvestment),
		ContributionAmount:          float64(fc.ContributionAmount),
		ContributionInterval:        fc.ContributionInterval,
		WithdrawalAmount:            float64(fc.WithdrawalAmount),
		InflationAdjustedWithdrawal: fc.InflationAdjustedWithdrawal,
		WithdrawalIncreaseRate:      float64(fc.WithdrawalIncreaseRate),
		WithdrawalMode:              fc.WithdrawalMode,
		WithdrawalRate:              float64(fc.WithdrawalRate),
		InvestmentStrategy:          fc.InvestmentStrategy,
	}
}

// NewFileConfiguration builds the file model for inputs, e.g. to save them.
func NewFileConfiguration(name string, in domain.ProjectionInputs) *FileConfiguration {
	return &FileConfiguration{
		Name:                        name,
		CurrentAge:                  in.CurrentAge,
		RetirementAge:               in.RetirementAge,
		LifeExpectancy:              in.LifeExpectancy,
		ReturnRate:                  Rate(in.ReturnRate),
		InflationRate:               Rate(in.InflationRate),
		InitialInvestment:           Amount(in.InitialInvestment),
		ContributionAmount:          Amount(in.ContributionAmount),
		ContributionInterval:        in.ContributionInterval,
		WithdrawalAmount:            Amount(in.WithdrawalAmount),
		InflationAdjustedWithdrawal: in.InflationAdjustedWithdrawal,
		WithdrawalIncreaseRate:      Rate(in.WithdrawalIncreaseRate),
		WithdrawalMode:              in.WithdrawalMode,
		WithdrawalRate:              Rate(in.WithdrawalRate),
		InvestmentStrategy:          in.InvestmentStrategy,
	}
}
