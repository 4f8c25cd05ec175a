package docnum

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
)

var numberFormat = regexp.MustCompile(`^[A-Z]{2,3}-\d{6}-\d+$`)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestNext_FirstOfDay(t *testing.T) {
	g := New(&MockLookup{})
	ctx := context.Background()

	num, err := g.Next(ctx, "RP", date(2024, 12, 29))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "RP-291224-1" {
		t.Errorf("expected RP-291224-1, got %s", num)
	}
}

func TestNext_SequenceIsStrictlyIncreasing(t *testing.T) {
	// Simulate sequential creation: each generated number is stored and fed
	// back through the lookup on the following call.
	lookup := &MockLookup{}
	g := New(lookup)
	ctx := context.Background()
	day := date(2025, 3, 1)

	prev := 0
	for i := 1; i <= 25; i++ {
		num, err := g.Next(ctx, "PI", day)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		suffix, ok := ParseSuffix(num, DatePattern("PI", day))
		if !ok {
			t.Fatalf("call %d: %s has no parseable suffix", i, num)
		}
		if suffix != prev+1 {
			t.Errorf("call %d: expected suffix %d, got %d", i, prev+1, suffix)
		}
		prev = suffix
		lookup.Numbers = append(lookup.Numbers, num)
	}
}

func TestNext_DateIsolation(t *testing.T) {
	// Numbers from another day must not influence today's suffix.
	lookup := &MockLookup{Numbers: []string{
		"RP-281224-7",
		"RP-281224-8",
	}}
	g := New(lookup)

	num, err := g.Next(context.Background(), "RP", date(2024, 12, 29))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "RP-291224-1" {
		t.Errorf("expected RP-291224-1, got %s", num)
	}
}

func TestNext_PrefixIsolation(t *testing.T) {
	lookup := &MockLookup{Numbers: []string{"HS-010125-4"}}
	g := New(lookup)

	num, err := g.Next(context.Background(), "OS", date(2025, 1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "OS-010125-1" {
		t.Errorf("expected OS-010125-1, got %s", num)
	}
}

func TestNext_FormatInvariant(t *testing.T) {
	lookup := &MockLookup{}
	g := New(lookup)
	ctx := context.Background()

	prefixes := []string{"RP", "PPP", "GRO", "FI", "IWL"}
	days := []time.Time{date(2024, 1, 1), date(2024, 12, 31), date(2031, 6, 15)}

	for _, p := range prefixes {
		for _, d := range days {
			num, err := g.Next(ctx, p, d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !numberFormat.MatchString(num) {
				t.Errorf("%s does not match %s", num, numberFormat)
			}
			lookup.Numbers = append(lookup.Numbers, num)
		}
	}
}

func TestNext_MalformedStoredSuffix(t *testing.T) {
	// A stored number with a garbage suffix must not crash the generator;
	// the count restarts at 1.
	lookup := &MockLookup{
		MaxNumberFunc: func(ctx context.Context, pattern string) (string, bool, error) {
			return pattern + "abc", true, nil
		},
	}
	g := New(lookup)

	num, err := g.Next(context.Background(), "SI", date(2025, 2, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "SI-100225-1" {
		t.Errorf("expected SI-100225-1, got %s", num)
	}
}

func TestNext_LookupFailurePropagates(t *testing.T) {
	// Fail closed: never fabricate a number when the store is unreachable.
	storeErr := errors.New("connection refused")
	lookup := &MockLookup{
		MaxNumberFunc: func(ctx context.Context, pattern string) (string, bool, error) {
			return "", false, storeErr
		},
	}
	g := New(lookup)

	_, err := g.Next(context.Background(), "RP", date(2025, 2, 10))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestDatePattern(t *testing.T) {
	tests := []struct {
		prefix string
		date   time.Time
		want   string
	}{
		{"RP", date(2024, 12, 29), "RP-291224-"},
		{"PI", date(2025, 1, 5), "PI-050125-"},
		{"PVI", date(2024, 6, 9), "PVI-090624-"},
	}
	for _, tt := range tests {
		if got := DatePattern(tt.prefix, tt.date); got != tt.want {
			t.Errorf("DatePattern(%s, %v) = %s, want %s", tt.prefix, tt.date, got, tt.want)
		}
	}
}

func TestParseSuffix(t *testing.T) {
	pattern := "RP-291224-"
	tests := []struct {
		number string
		want   int
		wantOk bool
	}{
		{"RP-291224-1", 1, true},
		{"RP-291224-42", 42, true},
		{"RP-291224-", 0, false},
		{"RP-291224-0", 0, false},
		{"RP-291224--3", 0, false},
		{"RP-291224-x7", 0, false},
		{"OS-291224-5", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSuffix(tt.number, pattern)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseSuffix(%q) = (%d, %v), want (%d, %v)", tt.number, got, ok, tt.want, tt.wantOk)
		}
	}
}
