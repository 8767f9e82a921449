package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// DefaultLowPerformerThreshold is the quantity below which a product is
// reported as low performing.
const DefaultLowPerformerThreshold = 10

// ProductStat is the per-product rollup shared by the top-seller and
// low-performer views.
type ProductStat struct {
	Name          string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// productStats aggregates quantity and revenue per product name, in
// first-encounter order.
func productStats(txs []domain.Transaction) []ProductStat {
	type productAgg struct {
		qty     int64
		revenue decimal.Decimal
	}
	byName := make(map[string]*productAgg)
	var order []string

	for _, t := range txs {
		agg, ok := byName[t.ProductName]
		if !ok {
			agg = &productAgg{revenue: decimal.Zero}
			byName[t.ProductName] = agg
			order = append(order, t.ProductName)
		}
		agg.qty += t.Quantity
		agg.revenue = agg.revenue.Add(t.Revenue())
	}

	result := make([]ProductStat, 0, len(order))
	for _, name := range order {
		agg := byName[name]
		result = append(result, ProductStat{
			Name:          name,
			TotalQuantity: agg.qty,
			TotalRevenue:  agg.revenue,
		})
	}
	return result
}

// TopProducts returns the n best-selling products by total quantity,
// descending, ties kept in first-encounter order.
func TopProducts(txs []domain.Transaction, n int) []ProductStat {
	stats := productStats(txs)
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})
	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// LowPerformingProducts returns products whose total quantity is below
// threshold, ascending by quantity, ties in first-encounter order.
func LowPerformingProducts(txs []domain.Transaction, threshold int64) []ProductStat {
	var low []ProductStat
	for _, p := range productStats(txs) {
		if p.TotalQuantity < threshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalQuantity < low[j].TotalQuantity
	})
	return low
}
