// Package document_repo provides PostgreSQL implementations for document
// repositories.
package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"ricemill/internal/core/apperror"
	"ricemill/internal/domain"
	"ricemill/internal/infrastructure/storage/postgres"
	"ricemill/internal/infrastructure/storage/postgres/catalog_repo"
)

// BaseDocumentRepo provides common CRUD operations for document entities:
// the catalog CRUD surface plus number lookup and document filters
// (kind, DO number, date range).
type BaseDocumentRepo[T any] struct {
	*catalog_repo.BaseCatalogRepo[T]
}

// NewBaseDocumentRepo creates a new base document repository.
// Documents are searched by their slip number.
func NewBaseDocumentRepo[T any](
	txm *postgres.TxManager,
	tableName string,
	newFn func() T,
) *BaseDocumentRepo[T] {
	return &BaseDocumentRepo[T]{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txm,
			tableName,
			[]string{"number"},
			newFn,
		),
	}
}

// GetByNumber retrieves a document by its slip number.
func (r *BaseDocumentRepo[T]) GetByNumber(ctx context.Context, number string) (T, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"number": number}).
		Limit(1)

	doc, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return doc, apperror.NewNotFound(r.TableName(), number)
		}
		return doc, err
	}
	return doc, nil
}

// List retrieves documents applying the document-specific filters on top
// of the common ones.
func (r *BaseDocumentRepo[T]) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error) {
	var extra []squirrel.Sqlizer
	if filter.Kind != "" {
		extra = append(extra, squirrel.Eq{"kind": filter.Kind})
	}
	if filter.DoNumber != "" {
		extra = append(extra, squirrel.Eq{"do_number": filter.DoNumber})
	}
	if filter.DateFrom != nil {
		extra = append(extra, squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		extra = append(extra, squirrel.Lt{"date": *filter.DateTo})
	}

	if filter.OrderBy == "" {
		filter.OrderBy = "-created_at"
	}
	return r.ListWhere(ctx, filter, extra)
}

// ListAllActive returns every active row without pagination.
func (r *BaseDocumentRepo[T]) ListAllActive(ctx context.Context) ([]T, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at ASC")
	return r.SelectAll(ctx, q)
}
