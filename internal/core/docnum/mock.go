package docnum

import (
	"context"
)

// MockLookup is a test implementation of Lookup.
// Use in unit tests to avoid database dependencies.
type MockLookup struct {
	MaxNumberFunc func(ctx context.Context, pattern string) (string, bool, error)

	// Numbers is a fixed set scanned when MaxNumberFunc is nil; the entry
	// with the numerically largest suffix for the pattern wins.
	Numbers []string
}

// MaxNumber implements Lookup.
func (m *MockLookup) MaxNumber(ctx context.Context, pattern string) (string, bool, error) {
	if m.MaxNumberFunc != nil {
		return m.MaxNumberFunc(ctx, pattern)
	}

	best, bestSuffix := "", 0
	for _, n := range m.Numbers {
		if s, ok := ParseSuffix(n, pattern); ok && s > bestSuffix {
			best, bestSuffix = n, s
		}
	}
	if best == "" {
		return "", false, nil
	}
	return best, true, nil
}

// Ensure compile-time interface compliance.
var _ Lookup = (*MockLookup)(nil)
