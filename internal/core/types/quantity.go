// Package types provides common value types and utilities.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Qty is a grain quantity with full decimal precision.
// Uses decimal.Decimal to avoid floating-point errors in balance arithmetic.
type Qty = decimal.Decimal

// ZeroQty returns the zero quantity.
func ZeroQty() Qty {
	return decimal.Zero
}

// ParseQty parses a decimal-formatted string into a quantity.
//
// Quantity fields arrive from form-bound clients as strings and the
// historical data does not guarantee they are well-formed. Empty,
// whitespace-only and malformed values all parse to zero; this function
// never returns an error. Reports must render even with dirty data, so
// callers that need strict parsing should use decimal.NewFromString
// directly.
func ParseQty(s string) Qty {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SumQty parses each string with ParseQty and returns the total.
func SumQty(values ...string) Qty {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(ParseQty(v))
	}
	return total
}

// FormatQty renders a quantity back to its canonical string form.
func FormatQty(q Qty) string {
	return q.String()
}
