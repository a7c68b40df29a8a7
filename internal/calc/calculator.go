package calc

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leengari/rentshare/internal/domain/data"
	"github.com/leengari/rentshare/internal/domain/errors"
	"github.com/leengari/rentshare/internal/domain/run"
)

// SpentPercent returns round(rent / salary * 100, Places).
// A zero salary yields errors.ErrDivisionByZero instead of an infinite value.
func SpentPercent(salary, rent decimal.Decimal, mode RoundingMode) (decimal.Decimal, error) {
	if salary.IsZero() {
		return decimal.Zero, errors.ErrDivisionByZero
	}
	// Multiplying first keeps terminating quotients exact before rounding
	return mode.Round(rent.Mul(hundred).Div(salary), Places), nil
}

// Calculator derives the Salary_%_Spent column of a table
type Calculator struct {
	rounding  RoundingMode
	logger    *slog.Logger
	observers []Observer
}

// Option configures a Calculator
type Option func(*Calculator)

// WithRounding selects the tie-breaking rule
func WithRounding(mode RoundingMode) Option {
	return func(c *Calculator) {
		c.rounding = mode
	}
}

// WithObserver registers an observer at construction time
func WithObserver(o Observer) Option {
	return func(c *Calculator) {
		c.observers = append(c.observers, o)
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// New creates a Calculator. Rounding defaults to RoundHalfAwayFromZero.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		rounding:  RoundHalfAwayFromZero,
		logger:    slog.Default(),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rounding returns the configured rounding mode
func (c *Calculator) Rounding() RoundingMode {
	return c.rounding
}

// Derive computes Salary_%_Spent for every row of t in place.
//
// Results are staged first and committed only if every row succeeds, so a
// DivisionByZeroError leaves t untouched. Calling Derive again on a derived
// table recomputes the values without adding a second column.
func (c *Calculator) Derive(ctx context.Context, t *data.Table) error {
	r := run.NewRun(t.Name)
	c.notify(Event{Type: EventDeriveStart, RunID: r.ID, Table: t.Name, Data: map[string]interface{}{
		"rows":     t.Len(),
		"rounding": c.rounding,
	}})

	staged := make([]decimal.Decimal, t.Len())
	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			c.fail(r, err)
			return err
		}

		value, err := SpentPercent(row.Salary, row.RentCost, c.rounding)
		if err != nil {
			derr := errors.NewDivisionByZero(t.Name, data.ColumnSalarySpent, i, row.Name)
			c.fail(r, derr)
			return derr
		}
		staged[i] = value

		c.notify(Event{Type: EventRowDerived, RunID: r.ID, Table: t.Name, Data: RowResult{
			Index: i,
			Name:  row.Name,
			Value: value.StringFixed(Places),
		}})
	}

	// Commit
	for i := range t.Rows {
		t.Rows[i].SalarySpent = staged[i]
		t.Rows[i].Derived = true
	}
	t.AddColumn(data.ColumnSalarySpent)

	elapsed := r.Close()
	c.notify(Event{Type: EventDeriveEnd, RunID: r.ID, Table: t.Name, Data: map[string]interface{}{
		"rows_derived": len(staged),
		"elapsed":      elapsed.String(),
	}})
	return nil
}

// Apply derives the column on a copy of t and returns the copy.
// The input table is never modified.
func (c *Calculator) Apply(ctx context.Context, t data.Table) (*data.Table, error) {
	out := t.Copy()
	if err := c.Derive(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Calculator) fail(r *run.Run, err error) {
	r.Close()
	c.logger.Debug("derive aborted", "run_id", r.ID, "table", r.Table, "error", err)
	c.notify(Event{Type: EventDeriveFailed, RunID: r.ID, Table: r.Table, Data: err.Error()})
}

// AddObserver registers an observer to receive lifecycle events
func (c *Calculator) AddObserver(observer Observer) {
	c.observers = append(c.observers, observer)
}

// RemoveObserver unregisters an observer
func (c *Calculator) RemoveObserver(observer Observer) {
	for i, o := range c.observers {
		if o == observer {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (c *Calculator) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range c.observers {
		observer.OnEvent(event)
	}
}
