package run

import (
	"testing"

	"github.com/google/uuid"
	"gotest.tools/v3/assert"
)

func TestNewRun(t *testing.T) {
	r := NewRun("salaries")

	_, err := uuid.Parse(r.ID)
	assert.NilError(t, err)
	assert.Equal(t, r.Table, "salaries")
	assert.Assert(t, r.Active)
	assert.Assert(t, !r.StartTime.IsZero())
}

func TestRunSequence(t *testing.T) {
	first := NewRun("a")
	second := NewRun("b")

	assert.Assert(t, second.Seq > first.Seq)
	assert.Assert(t, first.ID != second.ID)
}

func TestRunClose(t *testing.T) {
	r := NewRun("salaries")
	elapsed := r.Close()

	assert.Assert(t, !r.Active)
	assert.Assert(t, elapsed >= 0)
}
