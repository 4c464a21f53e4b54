package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// Config represents a plan.yaml file.
type Config struct {
	Plan   PlanConfig   `yaml:"plan" mapstructure:"plan"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// PlanConfig holds projection inputs. Percent fields are percentages (7 = 7%).
type PlanConfig struct {
	CurrentAge         int     `yaml:"current_age" mapstructure:"current_age"`
	FinalAge           int     `yaml:"final_age" mapstructure:"final_age"`
	RetirementAge      int     `yaml:"retirement_age" mapstructure:"retirement_age"`
	CurrentBalance     float64 `yaml:"current_balance" mapstructure:"current_balance"`
	YearlyContribution float64 `yaml:"yearly_contribution" mapstructure:"yearly_contribution"`
	YearlyReturn       float64 `yaml:"yearly_return" mapstructure:"yearly_return"`
	RetirementReturn   float64 `yaml:"retirement_return" mapstructure:"retirement_return"`
	WithdrawalRate     float64 `yaml:"withdrawal_rate" mapstructure:"withdrawal_rate"`
	WithdrawalIncrease float64 `yaml:"withdrawal_increase" mapstructure:"withdrawal_increase"`
	TaxRate            float64 `yaml:"tax_rate" mapstructure:"tax_rate"`
}

// OutputConfig controls rendering and logging.
type OutputConfig struct {
	Format   string `yaml:"format" mapstructure:"format"`       // table, csv or json
	Locale   string `yaml:"locale" mapstructure:"locale"`       // BCP 47 tag for number grouping
	LogLevel string `yaml:"log_level" mapstructure:"log_level"` // debug, info, warn, error
}

// Model converts the file representation into engine inputs.
func (c PlanConfig) Model() model.Plan {
	return model.Plan{
		CurrentAge:            c.CurrentAge,
		FinalAge:              c.FinalAge,
		RetirementAge:         c.RetirementAge,
		CurrentBalance:        decimal.NewFromFloat(c.CurrentBalance),
		YearlyContribution:    decimal.NewFromFloat(c.YearlyContribution),
		YearlyReturnPct:       decimal.NewFromFloat(c.YearlyReturn),
		RetirementReturnPct:   decimal.NewFromFloat(c.RetirementReturn),
		WithdrawalRatePct:     decimal.NewFromFloat(c.WithdrawalRate),
		WithdrawalIncreasePct: decimal.NewFromFloat(c.WithdrawalIncrease),
		TaxRatePct:            decimal.NewFromFloat(c.TaxRate),
	}
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config describing a typical mid-career saver.
func Default() *Config {
	return &Config{
		Plan: PlanConfig{
			CurrentAge:         40,
			FinalAge:           95,
			RetirementAge:      65,
			CurrentBalance:     100000,
			YearlyContribution: 10000,
			YearlyReturn:       7,
			RetirementReturn:   4,
			WithdrawalRate:     4,
			WithdrawalIncrease: 2,
			TaxRate:            22,
		},
		Output: DefaultOutput(),
	}
}

// DefaultOutput returns the output settings used when nothing overrides them.
func DefaultOutput() OutputConfig {
	return OutputConfig{
		Format:   "table",
		Locale:   "en",
		LogLevel: "warn",
	}
}
