package calc

import (
	"context"
	"log/slog"
)

// LoggingObserver writes every event to a structured logger.
// Per-row events are logged at debug level, the rest at info or error.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates an observer that logs through logger,
// or through slog.Default() when logger is nil
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelInfo
	switch event.Type {
	case EventRowDerived:
		level = slog.LevelDebug
	case EventDeriveFailed:
		level = slog.LevelError
	}

	lo.logger.Log(context.Background(), level, "derive_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"table", event.Table,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
