// Package reconcile computes delivery order lifting and balances.
//
// Lifting against an order comes from two sources: inward receipts
// (all five grain grades) and sale line items (the three main grades).
// Matching is by textual DO number equality, tolerant of receipts and
// lines that reference no known order. The computation is a pure
// projection over the three collections; it is recomputed on every read.
package reconcile

import (
	"sort"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/domain/inward"
	"ricemill/internal/domain/sale"
)

// Status classifies an order's remaining balance.
const (
	StatusComplete = "complete"
	StatusPending  = "pending"
)

// OrderBalance is one delivery order with its lifting totals.
type OrderBalance struct {
	Order *deliveryorder.DeliveryOrder `json:"order"`

	Total         types.Qty `json:"total"`
	InwardLifting types.Qty `json:"inwardLifting"`
	SalesLifting  types.Qty `json:"salesLifting"`
	Lifting       types.Qty `json:"lifting"`
	Balance       types.Qty `json:"balance"`
}

// Status returns "complete" when the balance is zero or negative.
// The <= 0 threshold absorbs rounding noise from decimal-string
// arithmetic in historical data.
func (b OrderBalance) Status() string {
	if b.Balance.LessThanOrEqual(types.ZeroQty()) {
		return StatusComplete
	}
	return StatusPending
}

// ComputeBalances reconciles each order against the receipts and sales.
// The result preserves the input order of orders. Quantity fields are
// decimal strings parsed with zero fallback; malformed data contributes
// nothing and never fails the computation.
func ComputeBalances(
	orders []*deliveryorder.DeliveryOrder,
	receipts []*inward.Receipt,
	sales []*sale.Sale,
) []OrderBalance {
	inwardByDo := make(map[string]types.Qty, len(orders))
	for _, r := range receipts {
		if r.DoNumber == "" {
			continue
		}
		inwardByDo[r.DoNumber] = inwardByDo[r.DoNumber].Add(r.Lifting())
	}

	salesByDo := make(map[string]types.Qty, len(orders))
	for _, s := range sales {
		for _, e := range s.DoEntries {
			if e.DoNumber == "" {
				continue
			}
			salesByDo[e.DoNumber] = salesByDo[e.DoNumber].Add(e.Lifting())
		}
	}

	result := make([]OrderBalance, 0, len(orders))
	for _, order := range orders {
		total := types.ParseQty(order.Total)
		in := inwardByDo[order.DoNumber]
		out := salesByDo[order.DoNumber]
		lifting := in.Add(out)

		result = append(result, OrderBalance{
			Order:         order,
			Total:         total,
			InwardLifting: in,
			SalesLifting:  out,
			Lifting:       lifting,
			Balance:       total.Sub(lifting),
		})
	}
	return result
}

// SortByBalance sorts balances in place by remaining balance.
// The sort is stable, so ties keep their original relative order.
func SortByBalance(balances []OrderBalance, descending bool) {
	sort.SliceStable(balances, func(i, j int) bool {
		if descending {
			return balances[i].Balance.GreaterThan(balances[j].Balance)
		}
		return balances[i].Balance.LessThan(balances[j].Balance)
	})
}
