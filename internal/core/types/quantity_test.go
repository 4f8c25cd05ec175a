package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseQty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain integer", "30", "30"},
		{"decimal", "12.345", "12.345"},
		{"negative", "-4.5", "-4.5"},
		{"empty string", "", "0"},
		{"whitespace", "   ", "0"},
		{"malformed", "12abc", "0"},
		{"lone dash", "-", "0"},
		{"leading zeros", "007.50", "7.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQty(tt.in)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, got.Equal(want), "ParseQty(%q) = %s, want %s", tt.in, got, want)
		})
	}
}

func TestSumQty(t *testing.T) {
	got := SumQty("30", "", "10.5", "junk", "-0.5")
	assert.True(t, got.Equal(decimal.RequireFromString("40")), "got %s", got)
}

func TestSumQty_AllDirty(t *testing.T) {
	got := SumQty("", "null", "n/a")
	assert.True(t, got.IsZero())
}
