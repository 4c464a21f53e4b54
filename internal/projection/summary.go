package projection

import (
	"github.com/shopspring/decimal"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// Summary describes a projection as a whole.
type Summary struct {
	EndingBalance      decimal.Decimal // starting balance of the last row
	PeakBalance        decimal.Decimal
	PeakAge            int
	Retires            bool
	RetirementAge      int // first retired row; meaningful only if Retires
	Depletes           bool
	DepletionAge       int // first row with a negative balance; meaningful only if Depletes
	TotalContributions decimal.Decimal
	TotalWithdrawals   decimal.Decimal
	TotalAfterTax      decimal.Decimal
}

// Summarize folds the rows projected for p into a Summary. An empty slice
// yields the zero Summary.
func Summarize(p model.Plan, rows []model.Row) Summary {
	var s Summary
	if len(rows) == 0 {
		return s
	}

	s.PeakBalance = rows[0].Balance
	s.PeakAge = rows[0].Age

	for _, r := range rows {
		if r.Balance.GreaterThan(s.PeakBalance) {
			s.PeakBalance = r.Balance
			s.PeakAge = r.Age
		}
		if r.Retired && !s.Retires {
			s.Retires = true
			s.RetirementAge = r.Age
		}
		if r.Depleted() && !s.Depletes {
			s.Depletes = true
			s.DepletionAge = r.Age
		}
		s.TotalContributions = s.TotalContributions.Add(r.Contribution)
		s.TotalWithdrawals = s.TotalWithdrawals.Add(r.YearlyWithdrawal)
	}
	s.TotalAfterTax = s.TotalWithdrawals.Mul(one.Sub(p.TaxRatePct.Div(hundred)))
	s.EndingBalance = rows[len(rows)-1].Balance
	return s
}
