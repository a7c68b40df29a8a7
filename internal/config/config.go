package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/leengari/rentshare/internal/calc"
)

// Environment variables read by Load
const (
	EnvLogLevel  = "RENTSHARE_LOG_LEVEL"
	EnvSeqURL    = "RENTSHARE_SEQ_URL"
	EnvRounding  = "RENTSHARE_ROUNDING"
	EnvShowIndex = "RENTSHARE_SHOW_INDEX"
)

// Config holds the process settings
type Config struct {
	LogLevel  slog.Level
	SeqURL    string // empty disables the Seq handler
	Rounding  calc.RoundingMode
	ShowIndex bool
}

// Default returns the settings used when no variable is set
func Default() Config {
	return Config{
		LogLevel:  slog.LevelInfo,
		Rounding:  calc.RoundHalfAwayFromZero,
		ShowIndex: true,
	}
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to resolve variables
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if v, ok := lookup(EnvSeqURL); ok {
		cfg.SeqURL = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvRounding); ok {
		mode, err := calc.ParseRoundingMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvRounding, err)
		}
		cfg.Rounding = mode
	}

	if v, ok := lookup(EnvShowIndex); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvShowIndex, err)
		}
		cfg.ShowIndex = b
	}

	return cfg, nil
}
