package data

import "slices"

// Table is an ordered collection of rows sharing one schema.
// Columns holds the display order of the fields.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// NewTable creates a table with the base input columns
func NewTable(name string, rows ...Row) *Table {
	return &Table{
		Name:    name,
		Columns: []string{ColumnName, ColumnSalary, ColumnRentCost},
		Rows:    rows,
	}
}

// HasColumn reports whether the column is part of the table's schema
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// AddColumn appends a column to the schema unless it is already present
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
}

// Copy returns a table that shares no slices with the receiver.
// Rows hold only value types, so copying the slice is enough.
func (t *Table) Copy() *Table {
	return &Table{
		Name:    t.Name,
		Columns: slices.Clone(t.Columns),
		Rows:    slices.Clone(t.Rows),
	}
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}
