package config

import (
	"fmt"
	"os"

	"github.com/rpgo/retirement-projector/internal/calculation"
	"github.com/rpgo/retirement-projector/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of projection configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a projection configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*FileConfiguration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates YAML configuration bytes
func (ip *InputParser) Parse(data []byte) (*FileConfiguration, error) {
	var config FileConfiguration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *FileConfiguration) error {
	if config == nil {
		return fmt.Errorf("no configuration provided")
	}
	return calculation.ValidateInputs(config.Inputs())
}

// SaveConfiguration writes a configuration as YAML
func (ip *InputParser) SaveConfiguration(config *FileConfiguration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *FileConfiguration {
	return NewFileConfiguration("Example Saver", domain.ProjectionInputs{
		CurrentAge:                  30,
		RetirementAge:               65,
		LifeExpectancy:              90,
		ReturnRate:                  0.07,
		InflationRate:               0.02,
		InitialInvestment:           10000,
		ContributionAmount:          5000,
		ContributionInterval:        domain.IntervalAnnually,
		WithdrawalAmount:            50000,
		InflationAdjustedWithdrawal: false,
		WithdrawalMode:              domain.WithdrawalFixedAmount,
		InvestmentStrategy:          domain.StrategyBalanced,
	})
}
