package dto

import (
	"ricemill/internal/core/types"
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/domain/reconcile"
)

// OrderBalanceResponse is one reconciled delivery order as the API returns it.
// Quantities are decimal strings.
type OrderBalanceResponse struct {
	Order         *deliveryorder.DeliveryOrder `json:"order"`
	Total         string                       `json:"total"`
	InwardLifting string                       `json:"inwardLifting"`
	SalesLifting  string                       `json:"salesLifting"`
	Lifting       string                       `json:"lifting"`
	Balance       string                       `json:"balance"`
	Status        string                       `json:"status"`
}

// FromOrderBalances maps computed balances to their response form.
func FromOrderBalances(balances []reconcile.OrderBalance) []OrderBalanceResponse {
	out := make([]OrderBalanceResponse, len(balances))
	for i, b := range balances {
		out[i] = OrderBalanceResponse{
			Order:         b.Order,
			Total:         types.FormatQty(b.Total),
			InwardLifting: types.FormatQty(b.InwardLifting),
			SalesLifting:  types.FormatQty(b.SalesLifting),
			Lifting:       types.FormatQty(b.Lifting),
			Balance:       types.FormatQty(b.Balance),
			Status:        b.Status(),
		}
	}
	return out
}
