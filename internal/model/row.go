package model

import "github.com/shopspring/decimal"

// Row is one year of a projection. Amounts are unrounded.
type Row struct {
	Age               int
	Balance           decimal.Decimal // as of the start of Age
	Contribution      decimal.Decimal // zero once retired
	YearlyWithdrawal  decimal.Decimal // zero before retirement
	MonthlyWithdrawal decimal.Decimal
	MonthlyAfterTax   decimal.Decimal
	Retired           bool
}

// Depleted reports whether the starting balance has gone negative.
func (r Row) Depleted() bool {
	return r.Balance.IsNegative()
}
