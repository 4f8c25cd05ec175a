package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/id"
	"ricemill/internal/domain"
	"ricemill/internal/infrastructure/http/v1/dto"
)

// CrudService is the service surface the generic handler drives.
// Both CatalogService and DocumentService satisfy it.
type CrudService[T entity.Validatable] interface {
	Create(ctx context.Context, ent T) error
	GetByID(ctx context.Context, entityID id.ID) (T, error)
	Update(ctx context.Context, ent T) error
	Deactivate(ctx context.Context, entityID id.ID) error
	Reactivate(ctx context.Context, entityID id.ID) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error)
}

// CatalogHandler provides generic HTTP handlers for one resource.
// entityKey is the plural JSON key used in the list envelope
// (e.g. "parties" yields data.parties and data.totalParties).
type CatalogHandler[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service   CrudService[T]
	entityKey string

	fromCreate  func(req CreateDTO) (T, error)
	applyUpdate func(req UpdateDTO, existing T) error
}

// CatalogHandlerConfig configures the catalog handler.
type CatalogHandlerConfig[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	Service     CrudService[T]
	EntityKey   string
	FromCreate  func(req CreateDTO) (T, error)
	ApplyUpdate func(req UpdateDTO, existing T) error
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler[T entity.Validatable, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg CatalogHandlerConfig[T, CreateDTO, UpdateDTO],
) *CatalogHandler[T, CreateDTO, UpdateDTO] {
	return &CatalogHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler: base,
		service:     cfg.Service,
		entityKey:   cfg.EntityKey,
		fromCreate:  cfg.FromCreate,
		applyUpdate: cfg.ApplyUpdate,
	}
}

// List handles GET /{entity}.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	var query dto.PageQuery
	if !h.BindQuery(c, &query) {
		return
	}
	query.Normalize()

	result, err := h.service.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}
	if result.Items == nil {
		result.Items = []T{}
	}

	c.JSON(200, dto.ListEnvelope(h.entityKey, result.Items, result.TotalCount, query.Page, query.PageSize))
}

// Get handles GET /{entity}/:id.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	entityID, ok := h.paramID(c)
	if !ok {
		return
	}

	ent, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, ent)
}

// Create handles POST /{entity}.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	ent, err := h.fromCreate(req)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), ent); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, ent)
}

// Update handles PUT /{entity}/:id.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	entityID, ok := h.paramID(c)
	if !ok {
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), entityID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if err := h.applyUpdate(req, existing); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), existing); err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, existing)
}

// Delete handles DELETE /{entity}/:id (soft delete).
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	entityID, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "deactivated")
}

// Restore handles POST /{entity}/:id/restore.
func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) Restore(c *gin.Context) {
	entityID, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.service.Reactivate(c.Request.Context(), entityID); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "restored")
}

func (h *CatalogHandler[T, CreateDTO, UpdateDTO]) paramID(c *gin.Context) (id.ID, bool) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return id.Nil(), false
	}
	return entityID, true
}
