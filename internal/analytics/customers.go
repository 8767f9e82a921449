package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// CustomerSummary is the per-customer rollup of the validated set.
type CustomerSummary struct {
	CustomerID        string
	TotalSpent        decimal.Decimal // 2dp
	PurchaseCount     int
	AvgOrderValue     decimal.Decimal // 2dp
	ProductsPurchased []string        // distinct product names, first-encounter order
}

// CustomerAnalysis groups the set by customer and derives spend, order
// count, average order value, and the distinct products bought. Results
// are ordered by descending total spent; equal spenders keep
// first-encounter order.
func CustomerAnalysis(txs []domain.Transaction) []CustomerSummary {
	type customerAgg struct {
		spent    decimal.Decimal
		orders   int
		seen     map[string]bool
		products []string
	}
	byCustomer := make(map[string]*customerAgg)
	var order []string

	for _, t := range txs {
		agg, ok := byCustomer[t.CustomerID]
		if !ok {
			agg = &customerAgg{spent: decimal.Zero, seen: make(map[string]bool)}
			byCustomer[t.CustomerID] = agg
			order = append(order, t.CustomerID)
		}
		agg.spent = agg.spent.Add(t.Revenue())
		agg.orders++
		if !agg.seen[t.ProductName] {
			agg.seen[t.ProductName] = true
			agg.products = append(agg.products, t.ProductName)
		}
	}

	result := make([]CustomerSummary, 0, len(order))
	for _, cid := range order {
		agg := byCustomer[cid]
		avg := agg.spent.Div(decimal.NewFromInt(int64(agg.orders))).Round(2)
		result = append(result, CustomerSummary{
			CustomerID:        cid,
			TotalSpent:        agg.spent.Round(2),
			PurchaseCount:     agg.orders,
			AvgOrderValue:     avg,
			ProductsPurchased: agg.products,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSpent.GreaterThan(result[j].TotalSpent)
	})
	return result
}
