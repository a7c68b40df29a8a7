package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/leengari/rentshare/internal/domain/data"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumns checks the column order of a table
func AssertColumns(t *testing.T, table *data.Table, expected []string, context string) {
	t.Helper()
	if len(table.Columns) != len(expected) {
		t.Errorf("%s: expected columns %v, got %v", context, expected, table.Columns)
		return
	}
	for i := range expected {
		if table.Columns[i] != expected[i] {
			t.Errorf("%s: expected columns %v, got %v", context, expected, table.Columns)
			return
		}
	}
}

// AssertDerived checks that a row carries the expected derived value, e.g. "28.33"
func AssertDerived(t *testing.T, row data.Row, expected string, context string) {
	t.Helper()
	if !row.Derived {
		t.Errorf("%s: row %q has not been derived", context, row.Name)
		return
	}
	want := decimal.RequireFromString(expected)
	if !row.SalarySpent.Equal(want) {
		t.Errorf("%s: row %q expected %s, got %s", context, row.Name, want, row.SalarySpent)
	}
}

// AssertNotDerived checks that a row has no derived value
func AssertNotDerived(t *testing.T, row data.Row, context string) {
	t.Helper()
	if row.Derived {
		t.Errorf("%s: row %q unexpectedly derived (%s)", context, row.Name, row.SalarySpent)
	}
}
