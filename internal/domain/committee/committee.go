// Package committee provides the committee center catalog. Committee
// centers issue delivery orders authorizing grain lifting.
package committee

import (
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/domain"
)

// Center is a government committee procurement center.
type Center struct {
	entity.Catalog

	District string `db:"district" json:"district,omitempty"`
	Address  string `db:"address" json:"address,omitempty"`
	Phone    string `db:"phone" json:"phone,omitempty"`
}

// New creates a committee center with a generated ID.
func New(name string) *Center {
	return &Center{
		Catalog: entity.NewCatalog(name),
	}
}

// Service provides committee center business logic.
type Service = domain.CatalogService[*Center]

// NewService creates the committee center service.
func NewService(repo domain.CatalogRepository[*Center], txManager tx.Manager, changes domain.ChangeLog) *Service {
	return domain.NewCatalogService(repo, txManager, changes, "committeeCenter")
}
