package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nestegg-dev/nestegg/internal/model"
)

// Header is the CSV header for projection exports.
const Header = "age,balance,contribution,yearly_withdrawal,monthly_withdrawal,monthly_after_tax"

const (
	numFields     = 6
	colAge        = 0
	colBalance    = 1
	colContrib    = 2
	colYearly     = 3
	colMonthly    = 4
	colMonthlyNet = 5
)

// MarshalRow converts a Row to a CSV record with two-decimal amounts.
func MarshalRow(row model.Row) []string {
	rec := make([]string, numFields)
	rec[colAge] = strconv.Itoa(row.Age)
	rec[colBalance] = fixed(row.Balance)
	rec[colContrib] = fixed(row.Contribution)
	rec[colYearly] = fixed(row.YearlyWithdrawal)
	rec[colMonthly] = fixed(row.MonthlyWithdrawal)
	rec[colMonthlyNet] = fixed(row.MonthlyAfterTax)
	return rec
}

// WriteCSV writes the header and one record per row.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range r.Rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
