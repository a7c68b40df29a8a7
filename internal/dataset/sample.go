package dataset

import "github.com/leengari/rentshare/internal/domain/data"

// SampleTableName is the name given to the sample table
const SampleTableName = "salaries"

// Sample returns a freshly built copy of the demonstration dataset.
// Every call returns an independent table.
func Sample() *data.Table {
	return data.NewTable(SampleTableName,
		data.NewRow("Jack", 2400, 900),
		data.NewRow("Maria", 3000, 850),
		data.NewRow("Alan", 2000, 550),
		data.NewRow("Casey", 1700, 650),
	)
}
