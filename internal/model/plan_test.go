package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlanYears(t *testing.T) {
	tests := []struct {
		current, final int
		want           int
	}{
		{60, 62, 3},
		{65, 65, 1},
		{0, 100, 101},
	}
	for _, tt := range tests {
		p := Plan{CurrentAge: tt.current, FinalAge: tt.final}
		assert.Equal(t, tt.want, p.Years(), "Years(%d..%d)", tt.current, tt.final)
	}
}

func TestPlanRetiredAt(t *testing.T) {
	p := Plan{RetirementAge: 65}
	assert.False(t, p.RetiredAt(64))
	assert.True(t, p.RetiredAt(65))
	assert.True(t, p.RetiredAt(90))
}

func TestRowDepleted(t *testing.T) {
	assert.False(t, Row{Balance: decimal.Zero}.Depleted())
	assert.False(t, Row{Balance: decimal.NewFromInt(10)}.Depleted())
	assert.True(t, Row{Balance: decimal.NewFromFloat(-0.01)}.Depleted())
}
