package model

import "github.com/shopspring/decimal"

// Plan holds the validated inputs of a projection. Percent fields are
// expressed as percentages (7 means 7%), never as fractions.
type Plan struct {
	CurrentAge            int
	FinalAge              int
	RetirementAge         int // may exceed FinalAge, in which case nobody retires
	CurrentBalance        decimal.Decimal
	YearlyContribution    decimal.Decimal
	YearlyReturnPct       decimal.Decimal
	RetirementReturnPct   decimal.Decimal
	WithdrawalRatePct     decimal.Decimal
	WithdrawalIncreasePct decimal.Decimal
	TaxRatePct            decimal.Decimal
}

// Years returns the number of rows a projection of p produces.
func (p Plan) Years() int {
	return p.FinalAge - p.CurrentAge + 1
}

// RetiredAt reports whether age falls in the decumulation phase.
func (p Plan) RetiredAt(age int) bool {
	return age >= p.RetirementAge
}
