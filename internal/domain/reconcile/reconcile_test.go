package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricemill/internal/core/id"
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/domain/inward"
	"ricemill/internal/domain/sale"
)

func order(doNumber, total string) *deliveryorder.DeliveryOrder {
	o := deliveryorder.New(doNumber)
	o.Total = total
	return o
}

func receipt(doNumber string, mota, patla, sarna, maha, rb string) *inward.Receipt {
	r := inward.New(inward.KindPaddy)
	r.DoNumber = doNumber
	r.DhanMota = mota
	r.DhanPatla = patla
	r.DhanSarna = sarna
	r.DhanMaha = maha
	r.DhanRb = rb
	return r
}

func saleWithEntry(doNumber string, mota, patla, sarna string) *sale.Sale {
	s := sale.New(sale.KindSale, id.New())
	s.DoEntries = []sale.DoEntry{{
		DoNumber:  doNumber,
		DhanMota:  mota,
		DhanPatla: patla,
		DhanSarna: sarna,
	}}
	return s
}

func TestCrossSourceAdditivity(t *testing.T) {
	orders := []*deliveryorder.DeliveryOrder{order("DO-1", "100")}
	receipts := []*inward.Receipt{receipt("DO-1", "30", "0", "0", "0", "0")}
	sales := []*sale.Sale{saleWithEntry("DO-1", "20", "10", "0")}

	balances := ComputeBalances(orders, receipts, sales)
	require.Len(t, balances, 1)

	b := balances[0]
	assert.True(t, b.InwardLifting.Equal(decimal.NewFromInt(30)), "inward lifting = %s", b.InwardLifting)
	assert.True(t, b.SalesLifting.Equal(decimal.NewFromInt(30)), "sales lifting = %s", b.SalesLifting)
	assert.True(t, b.Lifting.Equal(decimal.NewFromInt(60)), "lifting = %s", b.Lifting)
	assert.True(t, b.Balance.Equal(decimal.NewFromInt(40)), "balance = %s", b.Balance)
}

func TestBalanceIdentity(t *testing.T) {
	orders := []*deliveryorder.DeliveryOrder{
		order("DO-1", "100.5"),
		order("DO-2", "75"),
		order("DO-3", ""),
	}
	receipts := []*inward.Receipt{
		receipt("DO-1", "10.25", "5", "", "2.75", "0"),
		receipt("DO-2", "75", "0", "0", "0", "0"),
		receipt("DO-9", "999", "0", "0", "0", "0"), // no matching order
	}
	sales := []*sale.Sale{
		saleWithEntry("DO-1", "12", "0.5", "junk"),
	}

	for _, b := range ComputeBalances(orders, receipts, sales) {
		assert.True(t, b.Balance.Add(b.Lifting).Equal(b.Total),
			"order %s: balance %s + lifting %s != total %s",
			b.Order.DoNumber, b.Balance, b.Lifting, b.Total)
	}
}

func TestZeroDefaultRobustness(t *testing.T) {
	orders := []*deliveryorder.DeliveryOrder{order("DO-1", "50")}
	receipts := []*inward.Receipt{receipt("DO-1", "", "  ", "not-a-number", "", "")}

	balances := ComputeBalances(orders, receipts, nil)
	require.Len(t, balances, 1)
	assert.True(t, balances[0].Lifting.IsZero())
	assert.True(t, balances[0].Balance.Equal(decimal.NewFromInt(50)))
}

func TestSaleLiftingExcludesExtraGrades(t *testing.T) {
	// Maha and rb grades exist only on inward receipts; a sale line
	// carries just the three main grades.
	orders := []*deliveryorder.DeliveryOrder{order("DO-1", "100")}
	receipts := []*inward.Receipt{receipt("DO-1", "0", "0", "0", "5", "3")}
	sales := []*sale.Sale{saleWithEntry("DO-1", "10", "0", "0")}

	balances := ComputeBalances(orders, receipts, sales)
	require.Len(t, balances, 1)
	assert.True(t, balances[0].InwardLifting.Equal(decimal.NewFromInt(8)))
	assert.True(t, balances[0].SalesLifting.Equal(decimal.NewFromInt(10)))
	assert.True(t, balances[0].Balance.Equal(decimal.NewFromInt(82)))
}

func TestClassificationThreshold(t *testing.T) {
	cases := []struct {
		name    string
		balance string
		want    string
	}{
		{"exact zero", "0", StatusComplete},
		{"slightly negative", "-0.0001", StatusComplete},
		{"slightly positive", "0.01", StatusPending},
		{"large positive", "42", StatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := OrderBalance{Balance: decimal.RequireFromString(tc.balance)}
			assert.Equal(t, tc.want, b.Status())
		})
	}
}

func TestSortByBalanceStable(t *testing.T) {
	orders := []*deliveryorder.DeliveryOrder{
		order("DO-A", "30"),
		order("DO-B", "10"),
		order("DO-C", "30"), // ties with DO-A
		order("DO-D", "5"),
		order("DO-E", "20"),
	}
	balances := ComputeBalances(orders, nil, nil)

	doNumbers := func(bs []OrderBalance) []string {
		out := make([]string, len(bs))
		for i, b := range bs {
			out[i] = b.Order.DoNumber
		}
		return out
	}

	SortByBalance(balances, false)
	assert.Equal(t, []string{"DO-D", "DO-B", "DO-E", "DO-A", "DO-C"}, doNumbers(balances))

	SortByBalance(balances, true)
	// Mirrored except the DO-A/DO-C tie, which keeps its relative order.
	assert.Equal(t, []string{"DO-A", "DO-C", "DO-E", "DO-B", "DO-D"}, doNumbers(balances))
}

func TestUnmatchedReceiptsAndEntriesIgnored(t *testing.T) {
	orders := []*deliveryorder.DeliveryOrder{order("DO-1", "100")}
	receipts := []*inward.Receipt{
		receipt("", "10", "0", "0", "0", "0"),
		receipt("DO-MISSING", "20", "0", "0", "0", "0"),
	}
	sales := []*sale.Sale{saleWithEntry("", "5", "0", "0")}

	balances := ComputeBalances(orders, receipts, sales)
	require.Len(t, balances, 1)
	assert.True(t, balances[0].Lifting.IsZero())
}
