package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/leengari/rentshare/internal/domain/data"
)

// missing is printed for a derived cell that has not been computed
const missing = "NaN"

// Options controls the text layout
type Options struct {
	// ShowIndex prepends a zero-based row number column with an empty header
	ShowIndex bool
	// Padding is the minimum gap between columns; zero means 2
	Padding int
}

// Render writes t as right-aligned text: one header line, then one line per row.
// Columns appear in t.Columns order.
func Render(w io.Writer, t *data.Table, opts Options) error {
	padding := opts.Padding
	if padding <= 0 {
		padding = 2
	}
	// Every cell, including the last, is tab-terminated so AlignRight applies to it
	tw := tabwriter.NewWriter(w, 0, 0, padding, ' ', tabwriter.AlignRight)

	// Header
	if opts.ShowIndex {
		fmt.Fprint(tw, "\t")
	}
	for _, col := range t.Columns {
		fmt.Fprintf(tw, "%s\t", col)
	}
	fmt.Fprintln(tw)

	// Rows
	for i, row := range t.Rows {
		if opts.ShowIndex {
			fmt.Fprintf(tw, "%d\t", i)
		}
		for _, col := range t.Columns {
			fmt.Fprintf(tw, "%s\t", FormatCell(row, col))
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render table %q: %w", t.Name, err)
	}
	return nil
}

// FormatCell returns the display text of one cell.
// Salary_%_Spent always shows exactly two decimals; other numbers use their
// shortest exact form.
func FormatCell(row data.Row, column string) string {
	val, ok := row.Value(column)
	if !ok || val == nil {
		return missing
	}

	switch v := val.(type) {
	case string:
		return v
	case decimal.Decimal:
		if column == data.ColumnSalarySpent {
			return v.StringFixed(data.SalarySpentPlaces)
		}
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
