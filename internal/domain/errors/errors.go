package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned when a derived value would divide by a zero salary
var ErrDivisionByZero = errors.New("division by zero")

// DivisionByZeroError reports the row whose salary made a derived column undefined
type DivisionByZeroError struct {
	Table    string // table name (may be empty)
	Column   string // derived column being computed
	RowIndex int    // row number (0-based), -1 if unknown
	Name     string // Name field of the offending row
}

func (e *DivisionByZeroError) Error() string {
	var parts []string

	parts = append(parts, ErrDivisionByZero.Error())

	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("in table %q", e.Table))
	}

	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("computing %s", e.Column))
	}

	if e.RowIndex >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.RowIndex))
	}

	if e.Name != "" {
		parts = append(parts, fmt.Sprintf("(Name=%q)", e.Name))
	}

	return strings.Join(parts, " ")
}

// Is makes errors.Is(err, ErrDivisionByZero) match
func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func NewDivisionByZero(table, column string, rowIndex int, name string) *DivisionByZeroError {
	return &DivisionByZeroError{
		Table:    table,
		Column:   column,
		RowIndex: rowIndex,
		Name:     name,
	}
}
