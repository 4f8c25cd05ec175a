package reconcile

import (
	"context"

	"ricemill/internal/domain"
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/domain/inward"
	"ricemill/internal/domain/sale"
)

// PageRequest asks for one page of reconciled orders.
type PageRequest struct {
	Page     int
	PageSize int

	// Search filters orders by DO number substring
	Search string

	// SortByBalance enables the balance sort; Descending picks direction.
	// Sorting applies to the fetched page only, not the full set.
	SortByBalance bool
	Descending    bool
}

// PageResult is one page of reconciled orders.
type PageResult struct {
	Balances   []OrderBalance
	TotalCount int64
	Page       int
	PageSize   int
}

// Service assembles balance pages from the three stores.
type Service struct {
	orders   deliveryorder.Repository
	receipts inward.Repository
	sales    sale.Repository
}

// NewService creates the reconciliation service.
func NewService(orders deliveryorder.Repository, receipts inward.Repository, sales sale.Repository) *Service {
	return &Service{
		orders:   orders,
		receipts: receipts,
		sales:    sales,
	}
}

// Page fetches one page of delivery orders plus all receipts and sales,
// and reconciles the page. Collections are small in this domain (tens to
// low hundreds of orders), so the full fetch of the debit side is cheap
// and needs no pre-aggregation in the store.
func (s *Service) Page(ctx context.Context, req PageRequest) (PageResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	listed, err := s.orders.List(ctx, domain.ListFilter{
		Search:  req.Search,
		OrderBy: "created_at DESC",
		Limit:   req.PageSize,
		Offset:  (req.Page - 1) * req.PageSize,
	})
	if err != nil {
		return PageResult{}, err
	}

	balances, err := s.reconcile(ctx, listed.Items)
	if err != nil {
		return PageResult{}, err
	}

	if req.SortByBalance {
		SortByBalance(balances, req.Descending)
	}

	return PageResult{
		Balances:   balances,
		TotalCount: listed.TotalCount,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}, nil
}

// All reconciles every active order, for exports.
func (s *Service) All(ctx context.Context) ([]OrderBalance, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, orders)
}

func (s *Service) reconcile(ctx context.Context, orders []*deliveryorder.DeliveryOrder) ([]OrderBalance, error) {
	receipts, err := s.receipts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeBalances(orders, receipts, sales), nil
}
