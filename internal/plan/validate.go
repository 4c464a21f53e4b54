// Package plan validates projection inputs before they reach the engine.
package plan

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// MaxAge bounds every age so a projection stays small and ages never overflow.
const MaxAge = 150

var maxPct = decimal.NewFromInt(100)

// ValidationError describes a single rejected input.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// Validate checks every rule against p and returns all violations.
// A nil result means p is safe to project.
func Validate(p model.Plan) []ValidationError {
	var errs []ValidationError

	if p.CurrentAge < 0 {
		errs = append(errs, ValidationError{
			Field:       "current_age",
			Description: fmt.Sprintf("must not be negative, got %d", p.CurrentAge),
		})
	}
	if p.FinalAge < p.CurrentAge {
		errs = append(errs, ValidationError{
			Field:       "final_age",
			Description: fmt.Sprintf("must be at least current age %d, got %d", p.CurrentAge, p.FinalAge),
		})
	}
	if p.RetirementAge < 0 {
		errs = append(errs, ValidationError{
			Field:       "retirement_age",
			Description: fmt.Sprintf("must not be negative, got %d", p.RetirementAge),
		})
	}

	ages := []struct {
		field string
		value int
	}{
		{"current_age", p.CurrentAge},
		{"final_age", p.FinalAge},
		{"retirement_age", p.RetirementAge},
	}
	for _, a := range ages {
		if a.value > MaxAge {
			errs = append(errs, ValidationError{
				Field:       a.field,
				Description: fmt.Sprintf("must be at most %d, got %d", MaxAge, a.value),
			})
		}
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"current_balance", p.CurrentBalance},
		{"yearly_contribution", p.YearlyContribution},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			errs = append(errs, ValidationError{
				Field:       a.field,
				Description: fmt.Sprintf("must not be negative, got %s", a.value),
			})
		}
	}

	percents := []struct {
		field string
		value decimal.Decimal
	}{
		{"yearly_return", p.YearlyReturnPct},
		{"retirement_return", p.RetirementReturnPct},
		{"withdrawal_rate", p.WithdrawalRatePct},
		{"withdrawal_increase", p.WithdrawalIncreasePct},
		{"tax_rate", p.TaxRatePct},
	}
	for _, pc := range percents {
		if pc.value.IsNegative() || pc.value.GreaterThan(maxPct) {
			errs = append(errs, ValidationError{
				Field:       pc.field,
				Description: fmt.Sprintf("must be between 0 and 100, got %s", pc.value),
			})
		}
	}

	return errs
}

// Check runs Validate and folds any violations into a single error.
func Check(p model.Plan) error {
	verrs := Validate(p)
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
