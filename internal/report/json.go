package report

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type jsonDoc struct {
	Plan    jsonPlan    `json:"plan"`
	Rows    []jsonRow   `json:"rows"`
	Summary jsonSummary `json:"summary"`
}

type jsonPlan struct {
	CurrentAge            int         `json:"current_age"`
	FinalAge              int         `json:"final_age"`
	RetirementAge         int         `json:"retirement_age"`
	CurrentBalance        json.Number `json:"current_balance"`
	YearlyContribution    json.Number `json:"yearly_contribution"`
	YearlyReturnPct       json.Number `json:"yearly_return_pct"`
	RetirementReturnPct   json.Number `json:"retirement_return_pct"`
	WithdrawalRatePct     json.Number `json:"withdrawal_rate_pct"`
	WithdrawalIncreasePct json.Number `json:"withdrawal_increase_pct"`
	TaxRatePct            json.Number `json:"tax_rate_pct"`
}

type jsonRow struct {
	Age               int         `json:"age"`
	Balance           json.Number `json:"balance"`
	Contribution      json.Number `json:"contribution"`
	YearlyWithdrawal  json.Number `json:"yearly_withdrawal"`
	MonthlyWithdrawal json.Number `json:"monthly_withdrawal"`
	MonthlyAfterTax   json.Number `json:"monthly_after_tax"`
	Retired           bool        `json:"retired"`
}

type jsonSummary struct {
	EndingBalance      json.Number `json:"ending_balance"`
	PeakBalance        json.Number `json:"peak_balance"`
	PeakAge            int         `json:"peak_age"`
	RetirementAge      *int        `json:"retirement_age,omitempty"`
	DepletionAge       *int        `json:"depletion_age,omitempty"`
	TotalContributions json.Number `json:"total_contributions"`
	TotalWithdrawals   json.Number `json:"total_withdrawals"`
	TotalAfterTax      json.Number `json:"total_after_tax"`
}

func amount(d decimal.Decimal) json.Number {
	return json.Number(fixed(d))
}

// Percentages keep their full precision.
func pct(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// WriteJSON writes the plan, rows and summary as one indented document.
func (r Report) WriteJSON(w io.Writer) error {
	p := r.Plan
	doc := jsonDoc{
		Plan: jsonPlan{
			CurrentAge:            p.CurrentAge,
			FinalAge:              p.FinalAge,
			RetirementAge:         p.RetirementAge,
			CurrentBalance:        amount(p.CurrentBalance),
			YearlyContribution:    amount(p.YearlyContribution),
			YearlyReturnPct:       pct(p.YearlyReturnPct),
			RetirementReturnPct:   pct(p.RetirementReturnPct),
			WithdrawalRatePct:     pct(p.WithdrawalRatePct),
			WithdrawalIncreasePct: pct(p.WithdrawalIncreasePct),
			TaxRatePct:            pct(p.TaxRatePct),
		},
		Rows: make([]jsonRow, 0, len(r.Rows)),
	}

	for _, row := range r.Rows {
		doc.Rows = append(doc.Rows, jsonRow{
			Age:               row.Age,
			Balance:           amount(row.Balance),
			Contribution:      amount(row.Contribution),
			YearlyWithdrawal:  amount(row.YearlyWithdrawal),
			MonthlyWithdrawal: amount(row.MonthlyWithdrawal),
			MonthlyAfterTax:   amount(row.MonthlyAfterTax),
			Retired:           row.Retired,
		})
	}

	s := r.Summary
	doc.Summary = jsonSummary{
		EndingBalance:      amount(s.EndingBalance),
		PeakBalance:        amount(s.PeakBalance),
		PeakAge:            s.PeakAge,
		TotalContributions: amount(s.TotalContributions),
		TotalWithdrawals:   amount(s.TotalWithdrawals),
		TotalAfterTax:      amount(s.TotalAfterTax),
	}
	if s.Retires {
		age := s.RetirementAge
		doc.Summary.RetirementAge = &age
	}
	if s.Depletes {
		age := s.DepletionAge
		doc.Summary.DepletionAge = &age
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
