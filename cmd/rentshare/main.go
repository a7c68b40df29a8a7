package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leengari/rentshare/internal/calc"
	"github.com/leengari/rentshare/internal/config"
	"github.com/leengari/rentshare/internal/dataset"
	"github.com/leengari/rentshare/internal/domain/data"
	"github.com/leengari/rentshare/internal/logging"
	"github.com/leengari/rentshare/internal/render"
)

// Exit codes
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rentshare: invalid configuration: %v\n", err)
		os.Exit(exitConfig)
	}

	logger, closeFn := logging.SetupLogger(cfg)
	slog.SetDefault(logger)

	code := run(context.Background(), cfg, dataset.Sample(), os.Stdout, os.Stderr)
	closeFn()
	os.Exit(code)
}

// run derives the spending column of table, prints it to stdout and
// returns the process exit code. Failures are reported on stderr.
func run(ctx context.Context, cfg config.Config, table *data.Table, stdout, stderr io.Writer) int {
	slog.Info("Starting rentshare", "table", table.Name, "rows", table.Len(), "rounding", cfg.Rounding)

	calculator := calc.New(
		calc.WithRounding(cfg.Rounding),
		calc.WithObserver(calc.NewLoggingObserver(slog.Default())),
	)

	if err := calculator.Derive(ctx, table); err != nil {
		slog.Error("derive failed", "table", table.Name, "error", err)
		fmt.Fprintf(stderr, "rentshare: %v\n", err)
		return exitFailed
	}

	if err := render.Render(stdout, table, render.Options{ShowIndex: cfg.ShowIndex}); err != nil {
		slog.Error("render failed", "error", err)
		fmt.Fprintf(stderr, "rentshare: %v\n", err)
		return exitFailed
	}

	slog.Info("Done", "table", table.Name)
	return exitOK
}
