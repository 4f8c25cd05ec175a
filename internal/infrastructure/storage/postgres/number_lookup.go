package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ricemill/internal/core/docnum"
)

// Compile-time check that NumberLookup implements docnum.Lookup.
var _ docnum.Lookup = (*NumberLookup)(nil)

// NumberLookup finds the highest existing slip number for a day pattern
// in one document table. Each document repository gets its own lookup
// bound to its table.
//
// Suffixes are stored unpadded, so plain text ordering would put "9"
// after "10". Within one fixed pattern a longer suffix is always the
// larger number, so ordering by length first gives the numeric maximum.
type NumberLookup struct {
	txm       *TxManager
	tableName string
}

// NewNumberLookup creates a lookup for one document table.
func NewNumberLookup(txm *TxManager, tableName string) *NumberLookup {
	return &NumberLookup{txm: txm, tableName: tableName}
}

// MaxNumber returns the highest number starting with pattern, or ok=false
// when no document matches.
func (l *NumberLookup) MaxNumber(ctx context.Context, pattern string) (string, bool, error) {
	sql := fmt.Sprintf(
		`SELECT number FROM %s
		 WHERE number LIKE $1 || '%%'
		 ORDER BY length(number) DESC, number DESC
		 LIMIT 1`,
		l.tableName,
	)

	var number string
	err := l.txm.GetQuerier(ctx).QueryRow(ctx, sql, pattern).Scan(&number)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("max number lookup on %s: %w", l.tableName, err)
	}
	return number, true, nil
}
