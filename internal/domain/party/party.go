// Package party provides the counterparty catalog: farmers the mill buys
// paddy from, traders and vendors it sells to or buys supplies from.
package party

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/domain"
)

// Type classifies the counterparty.
type Type string

const (
	TypeFarmer Type = "farmer"
	TypeTrader Type = "trader"
	TypeVendor Type = "vendor"
)

// Valid reports whether t is a known party type.
func (t Type) Valid() bool {
	switch t {
	case TypeFarmer, TypeTrader, TypeVendor:
		return true
	}
	return false
}

// Party is a counterparty of the mill.
type Party struct {
	entity.Catalog

	Type      Type   `db:"type" json:"type"`
	Phone     string `db:"phone" json:"phone,omitempty"`
	Address   string `db:"address" json:"address,omitempty"`
	GSTNumber string `db:"gst_number" json:"gstNumber,omitempty"`
}

// New creates a party with a generated ID.
func New(name string, partyType Type) *Party {
	return &Party{
		Catalog: entity.NewCatalog(name),
		Type:    partyType,
	}
}

// Validate implements entity.Validatable.
func (p *Party) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}
	if !p.Type.Valid() {
		return apperror.NewValidation("unknown party type").
			WithDetail("field", "type").
			WithDetail("value", string(p.Type))
	}
	return nil
}

// Service provides party business logic.
type Service = domain.CatalogService[*Party]

// NewService creates the party service.
func NewService(repo domain.CatalogRepository[*Party], txManager tx.Manager, changes domain.ChangeLog) *Service {
	return domain.NewCatalogService(repo, txManager, changes, "party")
}
