package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/rentshare/internal/config"
	"github.com/leengari/rentshare/internal/dataset"
	"github.com/leengari/rentshare/internal/testutil"
)

func TestRun_Sample(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.Default()
	cfg.ShowIndex = false

	code := run(context.Background(), cfg, dataset.Sample(), &stdout, &stderr)

	assert.Equal(t, code, exitOK)
	assert.Equal(t, stderr.Len(), 0)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 5)
	assert.DeepEqual(t, strings.Fields(lines[0]), []string{"Name", "Salary", "Rent_Cost", "Salary_%_Spent"})
	assert.DeepEqual(t, strings.Fields(lines[2]), []string{"Maria", "3000", "850", "28.33"})
	assert.DeepEqual(t, strings.Fields(lines[4]), []string{"Casey", "1700", "650", "38.24"})
}

func TestRun_ZeroSalary(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), config.Default(), testutil.CreateZeroSalaryTable(), &stdout, &stderr)

	assert.Equal(t, code, exitFailed)
	assert.Equal(t, stdout.Len(), 0)
	assert.Assert(t, strings.Contains(stderr.String(), `at row 2 (Name="Nobody")`), stderr.String())
}
