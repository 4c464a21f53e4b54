// Package projection computes year-by-year retirement balance projections.
package projection

import (
	"github.com/shopspring/decimal"

	"github.com/nestegg-dev/nestegg/internal/model"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Project returns one row per age from p.CurrentAge through p.FinalAge.
// Each row reports the balance at the start of that age; the year's
// contribution, withdrawal and growth are folded into the next row.
// p must satisfy FinalAge >= CurrentAge.
func Project(p model.Plan) []model.Row {
	if p.FinalAge < p.CurrentAge {
		return nil
	}

	preGrowth := growthFactor(p.YearlyReturnPct)
	postGrowth := growthFactor(p.RetirementReturnPct)
	withdrawalRate := p.WithdrawalRatePct.Div(hundred)
	increase := growthFactor(p.WithdrawalIncreasePct)
	keep := one.Sub(p.TaxRatePct.Div(hundred))

	rows := make([]model.Row, 0, p.Years())
	balance := p.CurrentBalance
	withdrawal := decimal.Zero
	started := false

	for age := p.CurrentAge; age <= p.FinalAge; age++ {
		row := model.Row{
			Age:     age,
			Balance: balance,
			Retired: p.RetiredAt(age),
		}

		growth := preGrowth
		if row.Retired {
			// The base withdrawal is taken from the balance on the first
			// retired age, whether or not it equals RetirementAge.
			if !started {
				withdrawal = balance.Mul(withdrawalRate)
				started = true
			} else {
				withdrawal = withdrawal.Mul(increase)
			}
			row.YearlyWithdrawal = withdrawal
			row.MonthlyWithdrawal = withdrawal.Div(twelve)
			row.MonthlyAfterTax = row.MonthlyWithdrawal.Mul(keep)
			growth = postGrowth
		} else {
			row.Contribution = p.YearlyContribution
		}

		rows = append(rows, row)
		balance = balance.Add(row.Contribution).Sub(row.YearlyWithdrawal).Mul(growth)
	}
	return rows
}

// growthFactor converts a percentage into a multiplier: 5 -> 1.05.
func growthFactor(pct decimal.Decimal) decimal.Decimal {
	return one.Add(pct.Div(hundred))
}
