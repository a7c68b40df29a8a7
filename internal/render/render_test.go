package render_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/rentshare/internal/calc"
	"github.com/leengari/rentshare/internal/dataset"
	"github.com/leengari/rentshare/internal/domain/data"
	"github.com/leengari/rentshare/internal/render"
)

func derivedSample(t *testing.T) *data.Table {
	t.Helper()
	table := dataset.Sample()
	assert.NilError(t, calc.New().Derive(context.Background(), table))
	return table
}

func TestRender_Sample(t *testing.T) {
	var buf bytes.Buffer

	err := render.Render(&buf, derivedSample(t), render.Options{})
	assert.NilError(t, err)

	want := "" +
		"   Name  Salary  Rent_Cost  Salary_%_Spent\n" +
		"   Jack    2400        900           37.50\n" +
		"  Maria    3000        850           28.33\n" +
		"   Alan    2000        550           27.50\n" +
		"  Casey    1700        650           38.24\n"
	assert.Equal(t, buf.String(), want)
}

func TestRender_WithIndex(t *testing.T) {
	var buf bytes.Buffer

	assert.NilError(t, render.Render(&buf, derivedSample(t), render.Options{ShowIndex: true}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 5)
	assert.Equal(t, lines[0], "      Name  Salary  Rent_Cost  Salary_%_Spent")
	assert.Equal(t, lines[1], "  0   Jack    2400        900           37.50")
	assert.Equal(t, lines[4], "  3  Casey    1700        650           38.24")
}

func TestRender_ColumnOrder(t *testing.T) {
	var buf bytes.Buffer

	assert.NilError(t, render.Render(&buf, derivedSample(t), render.Options{}))

	header := strings.Fields(strings.SplitN(buf.String(), "\n", 2)[0])
	assert.DeepEqual(t, header, []string{"Name", "Salary", "Rent_Cost", "Salary_%_Spent"})
}

func TestRender_BeforeDerive(t *testing.T) {
	var buf bytes.Buffer

	assert.NilError(t, render.Render(&buf, dataset.Sample(), render.Options{}))

	header := strings.Fields(strings.SplitN(buf.String(), "\n", 2)[0])
	assert.DeepEqual(t, header, []string{"Name", "Salary", "Rent_Cost"})
}

func TestFormatCell(t *testing.T) {
	row := data.NewRow("Jack", 2400, 900)

	assert.Equal(t, render.FormatCell(row, data.ColumnName), "Jack")
	assert.Equal(t, render.FormatCell(row, data.ColumnSalary), "2400")
	assert.Equal(t, render.FormatCell(row, data.ColumnSalarySpent), "NaN")
	assert.Equal(t, render.FormatCell(row, "unknown"), "NaN")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRender_WriteError(t *testing.T) {
	err := render.Render(failingWriter{}, derivedSample(t), render.Options{})

	assert.ErrorContains(t, err, `render table "salaries"`)
}
