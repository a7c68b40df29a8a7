package calc

import "time"

// EventType represents a phase of a derivation run
type EventType string

const (
	EventDeriveStart  EventType = "derive_start"
	EventRowDerived   EventType = "row_derived"
	EventDeriveEnd    EventType = "derive_end"
	EventDeriveFailed EventType = "derive_failed"
)

// Event is delivered to observers at each phase
type Event struct {
	Type      EventType
	RunID     string      // correlates all events of one Derive call
	Table     string      // table being processed
	Timestamp time.Time   // set by the calculator
	Data      interface{} // phase-specific payload
}

// RowResult is the payload of EventRowDerived
type RowResult struct {
	Index int
	Name  string
	Value string
}

// Observer receives lifecycle events
type Observer interface {
	OnEvent(event Event)
}
