package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// RegionSummary is the per-region rollup of the validated set.
type RegionSummary struct {
	Region            string
	TotalSales        decimal.Decimal // exact accumulation, unrounded
	TransactionCount  int
	PercentageOfTotal decimal.Decimal // share of total revenue, 2dp
}

// RegionSummaries groups the set by region and computes each region's
// revenue, transaction count, and percentage of total revenue. Results are
// ordered by descending revenue; regions with equal revenue keep the order
// in which they first appeared in the input. A zero total revenue yields
// zero percentages rather than a division fault.
func RegionSummaries(txs []domain.Transaction) []RegionSummary {
	total := TotalRevenue(txs)

	type regionAgg struct {
		sales decimal.Decimal
		count int
	}
	byRegion := make(map[string]*regionAgg)
	var order []string

	for _, t := range txs {
		agg, ok := byRegion[t.Region]
		if !ok {
			agg = &regionAgg{sales: decimal.Zero}
			byRegion[t.Region] = agg
			order = append(order, t.Region)
		}
		agg.sales = agg.sales.Add(t.Revenue())
		agg.count++
	}

	result := make([]RegionSummary, 0, len(order))
	for _, region := range order {
		agg := byRegion[region]
		pct := decimal.Zero
		if total.Sign() > 0 {
			pct = agg.sales.Mul(hundred).Div(total).Round(2)
		}
		result = append(result, RegionSummary{
			Region:            region,
			TotalSales:        agg.sales,
			TransactionCount:  agg.count,
			PercentageOfTotal: pct,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSales.GreaterThan(result[j].TotalSales)
	})
	return result
}
