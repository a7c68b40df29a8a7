package testutil

import "github.com/leengari/rentshare/internal/domain/data"

// CreateZeroSalaryTable creates a table whose third row has a zero salary
func CreateZeroSalaryTable() *data.Table {
	return data.NewTable("broken",
		data.NewRow("Jack", 2400, 900),
		data.NewRow("Maria", 3000, 850),
		data.NewRow("Nobody", 0, 500),
		data.NewRow("Casey", 1700, 650),
	)
}

// CreateTieTable creates rows whose percentage lands exactly on a rounding tie
func CreateTieTable() *data.Table {
	return data.NewTable("ties",
		data.NewRow("eighth", 800, 1),        // 0.125
		data.NewRow("three-eighths", 800, 3), // 0.375
		data.NewRow("half", 400, 1),          // 0.25, no tie
	)
}

// CreateEmptyTable creates a table with no rows
func CreateEmptyTable() *data.Table {
	return data.NewTable("empty")
}
