package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"ricemill/internal/core/apperror"
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/infrastructure/storage/postgres"
	"ricemill/internal/infrastructure/storage/postgres/catalog_repo"
)

const deliveryOrderTable = "doc_delivery_orders"

// DeliveryOrderRepo implements deliveryorder.Repository. Delivery orders
// carry a committee-assigned number instead of a generated slip number,
// backed by a unique index on do_number.
type DeliveryOrderRepo struct {
	*catalog_repo.BaseCatalogRepo[*deliveryorder.DeliveryOrder]
}

// NewDeliveryOrderRepo creates a new delivery order repository.
func NewDeliveryOrderRepo(txm *postgres.TxManager) *DeliveryOrderRepo {
	return &DeliveryOrderRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(
			txm,
			deliveryOrderTable,
			[]string{"do_number", "committee_center"},
			func() *deliveryorder.DeliveryOrder { return &deliveryorder.DeliveryOrder{} },
		),
	}
}

// GetByDoNumber retrieves an order by its committee-assigned number.
func (r *DeliveryOrderRepo) GetByDoNumber(ctx context.Context, doNumber string) (*deliveryorder.DeliveryOrder, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"do_number": doNumber}).
		Limit(1)

	order, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound(deliveryOrderTable, doNumber)
		}
		return nil, err
	}
	return order, nil
}

// ListAll returns every active order without pagination, for reconciliation.
func (r *DeliveryOrderRepo) ListAll(ctx context.Context) ([]*deliveryorder.DeliveryOrder, error) {
	q := r.BaseSelect().
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at ASC")
	return r.SelectAll(ctx, q)
}
