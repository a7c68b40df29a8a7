package calc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/leengari/rentshare/internal/domain/data"
)

// Places is the number of decimal places kept in derived percentages
const Places = data.SalarySpentPlaces

var hundred = decimal.NewFromInt(100)

// RoundingMode selects how ties at the last kept digit are resolved
type RoundingMode string

const (
	// RoundHalfAwayFromZero rounds 0.125 to 0.13
	RoundHalfAwayFromZero RoundingMode = "half-away"
	// RoundHalfEven rounds 0.125 to 0.12 (banker's rounding)
	RoundHalfEven RoundingMode = "half-even"
)

// ParseRoundingMode converts a configuration value into a RoundingMode.
// An empty string selects RoundHalfAwayFromZero.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(RoundHalfAwayFromZero):
		return RoundHalfAwayFromZero, nil
	case string(RoundHalfEven), "bank", "bankers":
		return RoundHalfEven, nil
	}
	return "", fmt.Errorf("unknown rounding mode %q (want %q or %q)", s, RoundHalfAwayFromZero, RoundHalfEven)
}

// Round rounds d to places decimal places using the mode
func (m RoundingMode) Round(d decimal.Decimal, places int32) decimal.Decimal {
	if m == RoundHalfEven {
		return d.RoundBank(places)
	}
	return d.Round(places)
}
