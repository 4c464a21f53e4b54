// Package report renders projections as a text table, CSV or JSON.
//
// Amounts are rounded half-to-even to two decimal places at render time
// only; the rows handed in are never modified.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nestegg-dev/nestegg/internal/model"
	"github.com/nestegg-dev/nestegg/internal/projection"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat accepts "table", "csv" or "json" (any case).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, csv or json)", s)
	}
}

// Report bundles a plan with its projection.
type Report struct {
	Plan    model.Plan
	Rows    []model.Row
	Summary projection.Summary
}

// New projects p and summarizes the result.
func New(p model.Plan) Report {
	rows := projection.Project(p)
	return Report{Plan: p, Rows: rows, Summary: projection.Summarize(p, rows)}
}

// Render writes r to w in format f. The printer is only used for tables.
func (r Report) Render(w io.Writer, f Format, pr *Printer) error {
	switch f {
	case FormatTable:
		return r.WriteTable(w, pr)
	case FormatCSV:
		return r.WriteCSV(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// Printer formats amounts with locale-aware digit grouping.
type Printer struct {
	p       *message.Printer
	group   string
	decimal string
}

// NewPrinter returns a Printer for a BCP 47 tag such as "en" or "de-CH".
func NewPrinter(locale string) (*Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	pr := &Printer{p: message.NewPrinter(tag), group: ",", decimal: "."}
	pr.learnSeparators()
	return pr, nil
}

// learnSeparators reads the locale's group and decimal separators off a
// formatted sample. Locales that do not render ASCII digits keep the defaults.
func (pr *Printer) learnSeparators() {
	sample := pr.p.Sprintf("%.2f", 1234567.5)
	i := strings.Index(sample, "234")
	j := strings.Index(sample, "567")
	if !strings.HasPrefix(sample, "1") || i < 1 || j < i+3 || !strings.HasSuffix(sample, "50") {
		return
	}
	pr.group = sample[1:i]
	pr.decimal = sample[j+3 : len(sample)-2]
}

// Money renders d as a dollar amount: 1234.565 -> "$1,234.56". The digits
// are exactly those of the CSV and JSON output.
func (pr *Printer) Money(d decimal.Decimal) string {
	d = round(d)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(fixed(d), ".")
	return sign + "$" + groupDigits(whole, pr.group) + pr.decimal + frac
}

// groupDigits inserts sep between every three digits from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Percent renders a percentage without trailing zeros: 4.50 -> "4.5%".
func (pr *Printer) Percent(d decimal.Decimal) string {
	return d.String() + "%"
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// fixed renders d with exactly two decimals and no grouping.
func fixed(d decimal.Decimal) string {
	return d.StringFixedBank(2)
}
