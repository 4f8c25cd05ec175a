package domain

import (
	"context"
	"time"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/docnum"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
	"ricemill/internal/core/tx"
	"ricemill/pkg/logger"
)

// CatalogService provides generic business logic for master-data entities.
type CatalogService[T entity.Validatable] struct {
	repo       CatalogRepository[T]
	txManager  tx.Manager
	hooks      *HookRegistry[T]
	changes    ChangeLog
	entityName string
}

// NewCatalogService creates a catalog service. changes may be nil
// when the entity is not audited.
func NewCatalogService[T entity.Validatable](
	repo CatalogRepository[T],
	txManager tx.Manager,
	changes ChangeLog,
	entityName string,
) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       repo,
		txManager:  txManager,
		hooks:      NewHookRegistry[T](),
		changes:    changes,
		entityName: entityName,
	}
}

// Hooks exposes the lifecycle hook registry so domain packages can
// attach entity-specific behavior without subclassing the service.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// Create validates and persists a new entity.
func (s *CatalogService[T]) Create(ctx context.Context, ent T) error {
	if err := ent.Validate(ctx); err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, BeforeCreate, ent); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Create(txCtx, ent); err != nil {
			return err
		}
		return s.recordChange(txCtx, ent, "create")
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterCreate, ent); err != nil {
		logger.Warn(ctx, "after-create hook failed",
			"entity", s.entityName, "error", err)
	}
	return nil
}

// GetByID retrieves an entity by ID.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	return s.repo.GetByID(ctx, entityID)
}

// Update validates and persists changes to an existing entity.
func (s *CatalogService[T]) Update(ctx context.Context, ent T) error {
	if err := ent.Validate(ctx); err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, BeforeUpdate, ent); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, ent); err != nil {
			return err
		}
		return s.recordChange(txCtx, ent, "update")
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterUpdate, ent); err != nil {
		logger.Warn(ctx, "after-update hook failed",
			"entity", s.entityName, "error", err)
	}
	return nil
}

// Deactivate soft-deletes an entity.
func (s *CatalogService[T]) Deactivate(ctx context.Context, entityID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.SetActive(txCtx, entityID, false); err != nil {
			return err
		}
		if s.changes != nil {
			return s.changes.Record(txCtx, s.entityName, entityID, "deactivate", nil)
		}
		return nil
	})
}

// Reactivate restores a soft-deleted entity.
func (s *CatalogService[T]) Reactivate(ctx context.Context, entityID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.SetActive(txCtx, entityID, true); err != nil {
			return err
		}
		if s.changes != nil {
			return s.changes.Record(txCtx, s.entityName, entityID, "reactivate", nil)
		}
		return nil
	})
}

// List retrieves entities with filtering and pagination.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) (ListResult[T], error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListFilter().Limit
	}
	return s.repo.List(ctx, filter)
}

func (s *CatalogService[T]) recordChange(ctx context.Context, ent T, action string) error {
	if s.changes == nil {
		return nil
	}
	identifiable, ok := any(ent).(interface{ GetID() id.ID })
	if !ok {
		return nil
	}
	return s.changes.Record(ctx, s.entityName, identifiable.GetID(), action, ent)
}

// DocumentService extends catalog behavior with slip number generation.
type DocumentService[T Numbered] struct {
	*CatalogService[T]
	docRepo   DocumentRepository[T]
	generator *docnum.Generator
}

// NewDocumentService creates a document service. generator may be nil
// for document types whose numbers are operator-entered.
func NewDocumentService[T Numbered](
	repo DocumentRepository[T],
	txManager tx.Manager,
	changes ChangeLog,
	generator *docnum.Generator,
	entityName string,
) *DocumentService[T] {
	return &DocumentService[T]{
		CatalogService: NewCatalogService[T](repo, txManager, changes, entityName),
		docRepo:        repo,
		generator:      generator,
	}
}

// Create validates the document, assigns a slip number when the document
// type carries a prefix and no number was supplied, and persists it.
// A duplicate-number collision from a concurrent writer is retried once
// with a freshly generated number.
func (s *DocumentService[T]) Create(ctx context.Context, doc T) error {
	generated, err := s.assignNumber(ctx, doc)
	if err != nil {
		return err
	}

	err = s.CatalogService.Create(ctx, doc)
	if err == nil || !generated || !apperror.IsDuplicate(err) {
		return err
	}

	logger.Warn(ctx, "slip number collision, regenerating",
		"entity", s.entityName, "number", doc.DocumentNumber())
	doc.SetDocumentNumber("")
	if _, err := s.assignNumber(ctx, doc); err != nil {
		return err
	}
	return s.CatalogService.Create(ctx, doc)
}

// GetByNumber retrieves a document by its slip number.
func (s *DocumentService[T]) GetByNumber(ctx context.Context, number string) (T, error) {
	return s.docRepo.GetByNumber(ctx, number)
}

func (s *DocumentService[T]) assignNumber(ctx context.Context, doc T) (bool, error) {
	if doc.DocumentNumber() != "" {
		return false, nil
	}
	prefix := doc.NumberPrefix()
	if prefix == "" || s.generator == nil {
		return false, nil
	}

	date := doc.DocumentDate()
	if date.IsZero() {
		date = time.Now().UTC()
	}
	number, err := s.generator.Next(ctx, prefix, date)
	if err != nil {
		return false, err
	}
	doc.SetDocumentNumber(number)
	return true, nil
}
