package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	ageWidth    = 4
	amountWidth = 15
	gutter      = "    "
)

var columns = []string{"Balance", "Contribution", "Yearly", "Monthly", "After Tax"}

// WriteTable renders the parameter echo, one line per age and a summary.
func (r Report) WriteTable(w io.Writer, pr *Printer) error {
	var b strings.Builder
	p := r.Plan

	b.WriteString("\nRetirement Balance Projections:\n")
	fmt.Fprintf(&b, "Current Age: %d\n", p.CurrentAge)
	fmt.Fprintf(&b, "Final Age: %d\n", p.FinalAge)
	fmt.Fprintf(&b, "Current Balance: %s\n", pr.Money(p.CurrentBalance))
	fmt.Fprintf(&b, "Yearly Contribution: %s\n", pr.Money(p.YearlyContribution))
	fmt.Fprintf(&b, "Yearly Return: %s\n", pr.Percent(p.YearlyReturnPct))
	fmt.Fprintf(&b, "Retirement Age: %d\n", p.RetirementAge)
	fmt.Fprintf(&b, "Withdrawal Rate: %s\n", pr.Percent(p.WithdrawalRatePct))
	fmt.Fprintf(&b, "Retirement Return: %s\n", pr.Percent(p.RetirementReturnPct))
	fmt.Fprintf(&b, "Tax Rate: %s\n", pr.Percent(p.TaxRatePct))
	fmt.Fprintf(&b, "Withdrawal Increase: %s\n", pr.Percent(p.WithdrawalIncreasePct))

	header := fmt.Sprintf("%*s", ageWidth, "Age")
	for _, c := range columns {
		header += gutter + fmt.Sprintf("%*s", amountWidth, c)
	}
	b.WriteString("\n" + header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")

	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%*d", ageWidth, row.Age)
		for _, amt := range []string{
			pr.Money(row.Balance),
			pr.Money(row.Contribution),
			pr.Money(row.YearlyWithdrawal),
			pr.Money(row.MonthlyWithdrawal),
			pr.Money(row.MonthlyAfterTax),
		} {
			fmt.Fprintf(&b, "%s%*s", gutter, amountWidth, amt)
		}
		b.WriteString("\n")
	}

	if len(r.Rows) > 0 {
		s := r.Summary
		last := r.Rows[len(r.Rows)-1]
		b.WriteString("\n")
		fmt.Fprintf(&b, "Balance at %d: %s\n", last.Age, pr.Money(s.EndingBalance))
		fmt.Fprintf(&b, "Peak Balance: %s at %d\n", pr.Money(s.PeakBalance), s.PeakAge)
		fmt.Fprintf(&b, "Total Contributions: %s\n", pr.Money(s.TotalContributions))
		if s.Retires {
			fmt.Fprintf(&b, "Total Withdrawals: %s (%s after tax)\n", pr.Money(s.TotalWithdrawals), pr.Money(s.TotalAfterTax))
		}
		if s.Depletes {
			fmt.Fprintf(&b, "Warning: balance is negative from age %d; this plan is not sustainable.\n", s.DepletionAge)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
