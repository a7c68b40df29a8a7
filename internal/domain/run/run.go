package run

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// seqCounter numbers runs within one process
var seqCounter uint64

// Run identifies one pass of the calculator over a table.
// The ID is attached to every lifecycle event so log lines can be correlated.
type Run struct {
	ID        string    // UUID
	Seq       uint64    // per-process sequence number
	Table     string    // table being processed
	StartTime time.Time // when the run began
	Active    bool
}

// NewRun starts a run for the named table
func NewRun(table string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&seqCounter, 1),
		Table:     table,
		StartTime: time.Now(),
		Active:    true,
	}
}

// Close marks the run as finished and returns its duration
func (r *Run) Close() time.Duration {
	r.Active = false
	return time.Since(r.StartTime)
}
