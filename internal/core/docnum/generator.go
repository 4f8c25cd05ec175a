// Package docnum generates day-scoped sequential document numbers.
//
// Numbers follow the pattern PREFIX-DDMMYY-N: a short uppercase prefix per
// document kind, the reference date, and an integer suffix that restarts at 1
// each calendar day. The next suffix is derived from the highest number
// already stored for the day's pattern; the store lookup is an injected
// interface so the generator is unit-testable without a database.
package docnum

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ricemill/pkg/logger"
)

// Lookup finds the highest existing document number for a pattern.
// Implementations live in the infrastructure layer.
type Lookup interface {
	// MaxNumber returns the stored document number with the largest suffix
	// among those starting with pattern. ok is false when no such number
	// exists. Errors are store failures and must be propagated, never
	// swallowed.
	MaxNumber(ctx context.Context, pattern string) (number string, ok bool, err error)
}

// Generator produces the next sequential number for a prefix and date.
//
// This is read-then-write with no locking: two concurrent creates for the
// same prefix on the same day can compute the same number. The unique index
// on the number column is the backstop; callers retry by regenerating after
// a duplicate-key failure.
type Generator struct {
	lookup Lookup
}

// New creates a Generator backed by the given lookup.
func New(lookup Lookup) *Generator {
	return &Generator{lookup: lookup}
}

// DatePattern formats the day-scoped number prefix, e.g. ("RP", 29 Dec 2024)
// yields "RP-291224-". Every number generated for that prefix and day starts
// with this exact string, which is what scopes the suffix counter to the day.
func DatePattern(prefix string, date time.Time) string {
	return fmt.Sprintf("%s-%02d%02d%02d-", prefix, date.Day(), int(date.Month()), date.Year()%100)
}

// ParseSuffix extracts the integer suffix from a stored number given its
// day pattern. ok is false when the number does not start with the pattern
// or the trailing part is not a positive integer.
func ParseSuffix(number, pattern string) (int, bool) {
	rest, found := strings.CutPrefix(number, pattern)
	if !found || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Next computes the next document number for prefix at the given date.
//
// A malformed stored suffix is ignored for the max computation (counting
// falls back to 1). A failed lookup is returned to the caller; a number
// issued without checking the store could repeat one already handed out.
func (g *Generator) Next(ctx context.Context, prefix string, date time.Time) (string, error) {
	pattern := DatePattern(prefix, date)

	last, ok, err := g.lookup.MaxNumber(ctx, pattern)
	if err != nil {
		return "", fmt.Errorf("lookup max number for %q: %w", pattern, err)
	}

	suffix := 0
	if ok {
		parsed, valid := ParseSuffix(last, pattern)
		if !valid {
			logger.Warn(ctx, "stored document number has malformed suffix, restarting count",
				"number", last,
				"pattern", pattern,
			)
		}
		suffix = parsed
	}

	return pattern + strconv.Itoa(suffix+1), nil
}
