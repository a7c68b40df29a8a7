package data

import "github.com/shopspring/decimal"

// Column names, in display order
const (
	ColumnName        = "Name"
	ColumnSalary      = "Salary"
	ColumnRentCost    = "Rent_Cost"
	ColumnSalarySpent = "Salary_%_Spent"
)

// SalarySpentPlaces is the number of decimal places kept in Salary_%_Spent
const SalarySpentPlaces = 2

// Row represents a single person in the dataset.
// SalarySpent is only meaningful once Derived is true.
type Row struct {
	Name        string
	Salary      decimal.Decimal
	RentCost    decimal.Decimal
	SalarySpent decimal.Decimal
	Derived     bool
}

// NewRow creates a row from integer amounts, as written in literal data
func NewRow(name string, salary, rentCost int64) Row {
	return Row{
		Name:     name,
		Salary:   decimal.NewFromInt(salary),
		RentCost: decimal.NewFromInt(rentCost),
	}
}

// Value returns the cell for the given column name and whether it exists
func (r Row) Value(column string) (interface{}, bool) {
	switch column {
	case ColumnName:
		return r.Name, true
	case ColumnSalary:
		return r.Salary, true
	case ColumnRentCost:
		return r.RentCost, true
	case ColumnSalarySpent:
		if !r.Derived {
			return nil, true
		}
		return r.SalarySpent, true
	}
	return nil, false
}
