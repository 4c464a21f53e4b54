package projection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestegg-dev/nestegg/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fullPlan() model.Plan {
	return model.Plan{
		CurrentAge:            45,
		FinalAge:              95,
		RetirementAge:         65,
		CurrentBalance:        dec("250000"),
		YearlyContribution:    dec("19500"),
		YearlyReturnPct:       dec("7"),
		RetirementReturnPct:   dec("4.5"),
		WithdrawalRatePct:     dec("4"),
		WithdrawalIncreasePct: dec("3"),
		TaxRatePct:            dec("22"),
	}
}

func TestProject_AccumulationOnly(t *testing.T) {
	p := model.Plan{
		CurrentAge:         60,
		FinalAge:           62,
		RetirementAge:      65,
		CurrentBalance:     dec("100000"),
		YearlyContribution: dec("5000"),
		YearlyReturnPct:    dec("5"),
	}

	rows := Project(p)
	require.Len(t, rows, 3)

	assert.Equal(t, 60, rows[0].Age)
	assert.True(t, rows[0].Balance.Equal(dec("100000")))
	assert.True(t, rows[0].Contribution.Equal(dec("5000")))
	assert.True(t, rows[0].YearlyWithdrawal.IsZero())
	assert.True(t, rows[0].MonthlyWithdrawal.IsZero())
	assert.True(t, rows[0].MonthlyAfterTax.IsZero())

	assert.True(t, rows[1].Balance.Equal(dec("110250")), "got %s", rows[1].Balance)
	assert.True(t, rows[1].Contribution.Equal(dec("5000")))

	// (110250 + 5000) * 1.05
	assert.True(t, rows[2].Balance.Equal(dec("121012.5")), "got %s", rows[2].Balance)
}

func TestProject_RetireOnFirstAge(t *testing.T) {
	p := model.Plan{
		CurrentAge:          65,
		FinalAge:            65,
		RetirementAge:       65,
		CurrentBalance:      dec("200000"),
		RetirementReturnPct: dec("5"),
		WithdrawalRatePct:   dec("4"),
		TaxRatePct:          dec("20"),
	}

	rows := Project(p)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 65, r.Age)
	assert.True(t, r.Retired)
	assert.True(t, r.Balance.Equal(dec("200000")))
	assert.True(t, r.Contribution.IsZero())
	assert.True(t, r.YearlyWithdrawal.Equal(dec("8000")), "got %s", r.YearlyWithdrawal)
	assert.InDelta(t, 666.6666666, r.MonthlyWithdrawal.InexactFloat64(), 1e-6)
	assert.InDelta(t, 533.3333333, r.MonthlyAfterTax.InexactFloat64(), 1e-6)
}

func TestProject_RowCountAndAges(t *testing.T) {
	plans := []model.Plan{
		fullPlan(),
		{CurrentAge: 30, FinalAge: 30, RetirementAge: 67},
		{CurrentAge: 0, FinalAge: 120, RetirementAge: 60, CurrentBalance: dec("10")},
	}
	for _, p := range plans {
		rows := Project(p)
		require.Len(t, rows, p.FinalAge-p.CurrentAge+1)
		for i, r := range rows {
			assert.Equal(t, p.CurrentAge+i, r.Age)
		}
		assert.True(t, rows[0].Balance.Equal(p.CurrentBalance))
	}
}

func TestProject_PhasePartition(t *testing.T) {
	p := fullPlan()
	for _, r := range Project(p) {
		assert.False(t, !r.Contribution.IsZero() && !r.YearlyWithdrawal.IsZero(),
			"age %d has both contribution and withdrawal", r.Age)
		assert.Equal(t, r.Age >= p.RetirementAge, r.Retired, "age %d", r.Age)
	}
}

func TestProject_DerivedColumns(t *testing.T) {
	p := fullPlan()
	keep := dec("1").Sub(p.TaxRatePct.Div(dec("100")))
	for _, r := range Project(p) {
		assert.True(t, r.MonthlyWithdrawal.Equal(r.YearlyWithdrawal.Div(dec("12"))), "age %d", r.Age)
		assert.True(t, r.MonthlyAfterTax.Equal(r.MonthlyWithdrawal.Mul(keep)), "age %d", r.Age)
	}
}

func TestProject_NoRetirementWithinRange(t *testing.T) {
	p := fullPlan()
	p.RetirementAge = p.FinalAge + 1
	for _, r := range Project(p) {
		assert.True(t, r.YearlyWithdrawal.IsZero(), "age %d", r.Age)
		assert.False(t, r.Retired)
		assert.True(t, r.Contribution.Equal(p.YearlyContribution))
	}
}

func TestProject_WithdrawalCompounds(t *testing.T) {
	p := fullPlan()
	rows := Project(p)

	first := p.RetirementAge - p.CurrentAge
	base := rows[first].Balance.Mul(dec("0.04"))
	assert.True(t, rows[first].YearlyWithdrawal.Equal(base))

	factor := dec("1.03")
	for k := first + 1; k < len(rows); k++ {
		want := rows[k-1].YearlyWithdrawal.Mul(factor)
		assert.True(t, rows[k].YearlyWithdrawal.Equal(want), "age %d: got %s want %s",
			rows[k].Age, rows[k].YearlyWithdrawal, want)
	}
}

func TestProject_BaseWithdrawalUsesGrownBalance(t *testing.T) {
	p := model.Plan{
		CurrentAge:          64,
		FinalAge:            66,
		RetirementAge:       65,
		CurrentBalance:      dec("100000"),
		YearlyReturnPct:     dec("10"),
		RetirementReturnPct: dec("0"),
		WithdrawalRatePct:   dec("5"),
	}

	rows := Project(p)
	require.Len(t, rows, 3)

	assert.True(t, rows[1].Balance.Equal(dec("110000")))
	assert.True(t, rows[1].YearlyWithdrawal.Equal(dec("5500")))
	assert.True(t, rows[2].Balance.Equal(dec("104500")))
	assert.True(t, rows[2].YearlyWithdrawal.Equal(dec("5500")), "no increase configured")
}

func TestProject_AlreadyRetired(t *testing.T) {
	p := model.Plan{
		CurrentAge:            70,
		FinalAge:              72,
		RetirementAge:         65,
		CurrentBalance:        dec("100000"),
		YearlyContribution:    dec("5000"),
		WithdrawalRatePct:     dec("4"),
		WithdrawalIncreasePct: dec("10"),
	}

	rows := Project(p)
	require.Len(t, rows, 3)

	assert.True(t, rows[0].YearlyWithdrawal.Equal(dec("4000")))
	assert.True(t, rows[0].Contribution.IsZero())
	assert.True(t, rows[1].Balance.Equal(dec("96000")))
	assert.True(t, rows[1].YearlyWithdrawal.Equal(dec("4400")))
}

func TestProject_NegativeBalanceNotClamped(t *testing.T) {
	p := model.Plan{
		CurrentAge:            65,
		FinalAge:              68,
		RetirementAge:         65,
		CurrentBalance:        dec("1000"),
		WithdrawalRatePct:     dec("50"),
		WithdrawalIncreasePct: dec("100"),
	}

	rows := Project(p)
	require.Len(t, rows, 4)

	want := []string{"1000", "500", "-500", "-2500"}
	for i, w := range want {
		assert.True(t, rows[i].Balance.Equal(dec(w)), "age %d: got %s want %s", rows[i].Age, rows[i].Balance, w)
	}
}

func TestProject_RatesAppliedByPhase(t *testing.T) {
	p := model.Plan{
		CurrentAge:          64,
		FinalAge:            66,
		RetirementAge:       65,
		CurrentBalance:      dec("1000"),
		YearlyReturnPct:     dec("10"),
		RetirementReturnPct: dec("2"),
	}

	rows := Project(p)
	assert.True(t, rows[1].Balance.Equal(dec("1100")))
	assert.True(t, rows[2].Balance.Equal(dec("1122")))
}

func TestProject_InvalidRange(t *testing.T) {
	assert.Nil(t, Project(model.Plan{CurrentAge: 50, FinalAge: 40}))
}
