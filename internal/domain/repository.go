// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"time"

	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
)

// --- Filter & Pagination ---

// ListFilter contains common filtering options for list operations.
type ListFilter struct {
	// Search performs a substring match on the resource's search column
	// (name for catalogs, number for documents)
	Search string

	// IncludeInactive includes deactivated records
	IncludeInactive bool

	// Kind filters documents by kind (purchase/sale/inward/... sub-type)
	Kind string

	// DoNumber filters documents referencing a delivery order
	DoNumber string

	// Date range (documents only)
	DateFrom *time.Time
	DateTo   *time.Time

	// OrderBy specifies sorting (e.g., "name", "date DESC")
	OrderBy string

	// Pagination
	Limit  int
	Offset int
}

// DefaultListFilter returns sensible defaults.
func DefaultListFilter() ListFilter {
	return ListFilter{
		Limit: 20,
	}
}

// ListResult contains paginated results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Repository Interfaces ---

// CatalogRepository defines CRUD operations for master-data entities.
type CatalogRepository[T entity.Validatable] interface {
	// Create inserts a new entity
	Create(ctx context.Context, entity T) error

	// GetByID retrieves entity by ID
	GetByID(ctx context.Context, id id.ID) (T, error)

	// Update modifies existing entity (with optimistic locking)
	Update(ctx context.Context, entity T) error

	// SetActive sets or clears the active flag (soft delete / restore).
	// Physical deletion is intentionally not exposed.
	SetActive(ctx context.Context, id id.ID, active bool) error

	// List retrieves entities with filtering and pagination
	List(ctx context.Context, filter ListFilter) (ListResult[T], error)

	// Exists checks if entity with given ID exists
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// DocumentRepository extends CatalogRepository with number-based access.
type DocumentRepository[T entity.Validatable] interface {
	CatalogRepository[T]

	// GetByNumber retrieves a document by its generated number
	GetByNumber(ctx context.Context, number string) (T, error)
}

// Numbered is implemented by documents that receive an auto-generated
// day-scoped number. NumberPrefix returning "" disables generation
// (the number is operator-entered, e.g. delivery orders).
type Numbered interface {
	entity.Validatable

	DocumentNumber() string
	SetDocumentNumber(number string)
	NumberPrefix() string
	DocumentDate() time.Time
}

// --- Change log ---

// ChangeLog records entity mutations for the audit trail.
// The concrete store lives in infrastructure/storage/postgres.
type ChangeLog interface {
	Record(ctx context.Context, entityName string, entityID id.ID, action string, changes any) error
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}
