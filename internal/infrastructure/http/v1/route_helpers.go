// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"ricemill/internal/domain/auth"
	"ricemill/internal/infrastructure/http/v1/middleware"
)

// ResourceRouteHandler is the handler surface every CRUD resource exposes.
type ResourceRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Restore(c *gin.Context)
}

// RegisterResourceRoutes registers standard CRUD routes for one resource.
// Reads are open to every authenticated role; writes require operator
// or admin.
//
// Usage:
//
//	repo := catalog_repo.NewPartyRepo(cfg.TxManager)
//	service := party.NewService(repo, cfg.TxManager, cfg.Changes)
//	handler := handlers.NewPartyHandler(baseHandler, service)
//	RegisterResourceRoutes(api.Group("/parties"), handler)
func RegisterResourceRoutes(group *gin.RouterGroup, handler ResourceRouteHandler) {
	write := middleware.RequireRole(auth.RoleAdmin, auth.RoleOperator)

	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("", write, handler.Create)
	group.PUT("/:id", write, handler.Update)
	group.DELETE("/:id", write, handler.Delete)
	group.POST("/:id/restore", write, handler.Restore)
}
