// Package broker provides the broker catalog. Brokers intermediate
// purchases and sales for a commission on the transacted amount.
package broker

import (
	"context"

	"ricemill/internal/core/apperror"
	"ricemill/internal/core/entity"
	"ricemill/internal/core/tx"
	"ricemill/internal/core/types"
	"ricemill/internal/domain"
)

// Broker is a commission agent.
type Broker struct {
	entity.Catalog

	Phone string `db:"phone" json:"phone,omitempty"`

	// CommissionRate is a percentage of the transacted amount
	CommissionRate types.Qty `db:"commission_rate" json:"commissionRate"`
}

// New creates a broker with a generated ID.
func New(name string) *Broker {
	return &Broker{
		Catalog: entity.NewCatalog(name),
	}
}

// Validate implements entity.Validatable.
func (b *Broker) Validate(ctx context.Context) error {
	if err := b.Catalog.Validate(ctx); err != nil {
		return err
	}
	if b.CommissionRate.IsNegative() {
		return apperror.NewValidation("commission rate cannot be negative").
			WithDetail("field", "commissionRate")
	}
	return nil
}

// Service provides broker business logic.
type Service = domain.CatalogService[*Broker]

// NewService creates the broker service.
func NewService(repo domain.CatalogRepository[*Broker], txManager tx.Manager, changes domain.ChangeLog) *Service {
	return domain.NewCatalogService(repo, txManager, changes, "broker")
}
