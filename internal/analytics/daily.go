package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// DailySummary is the per-date rollup of the validated set.
type DailySummary struct {
	Date             string
	Revenue          decimal.Decimal // 2dp
	TransactionCount int
	UniqueCustomers  int
}

// PeakDay is the date with the highest aggregated revenue.
type PeakDay struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
}

// DailySalesTrend groups the set by date and derives revenue, transaction
// volume, and distinct customer reach per day, ascending by date. Dates
// are opaque lexicographic sort keys; no calendar parsing happens here.
func DailySalesTrend(txs []domain.Transaction) []DailySummary {
	type dayAgg struct {
		revenue   decimal.Decimal
		count     int
		customers map[string]bool
	}
	byDate := make(map[string]*dayAgg)

	for _, t := range txs {
		agg, ok := byDate[t.Date]
		if !ok {
			agg = &dayAgg{revenue: decimal.Zero, customers: make(map[string]bool)}
			byDate[t.Date] = agg
		}
		agg.revenue = agg.revenue.Add(t.Revenue())
		agg.count++
		agg.customers[t.CustomerID] = true
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]DailySummary, 0, len(dates))
	for _, date := range dates {
		agg := byDate[date]
		result = append(result, DailySummary{
			Date:             date,
			Revenue:          agg.revenue.Round(2),
			TransactionCount: agg.count,
			UniqueCustomers:  len(agg.customers),
		})
	}
	return result
}

// PeakSalesDay returns the daily summary with the highest revenue, or nil
// when the set is empty or no day has positive revenue. Ties keep the
// earliest date.
func PeakSalesDay(txs []domain.Transaction) *PeakDay {
	var peak *PeakDay
	best := decimal.Zero

	for _, day := range DailySalesTrend(txs) {
		if day.Revenue.GreaterThan(best) {
			best = day.Revenue
			peak = &PeakDay{
				Date:             day.Date,
				Revenue:          day.Revenue,
				TransactionCount: day.TransactionCount,
			}
		}
	}
	return peak
}
