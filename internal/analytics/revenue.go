// Package analytics contains the pure reducers that derive aggregate views
// from a validated transaction set. Every reducer takes a read-only slice,
// returns a freshly built result, and may be called any number of times on
// the same input with identical output.
//
// Monetary accumulation is exact decimal arithmetic; rounding to two
// decimal places (half away from zero, decimal.Round semantics) happens
// only when a derived metric is emitted, never before re-aggregation.
// Ordering ties are always broken by first-encounter order, made explicit
// with a stable sort over slices built in input order.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// TotalRevenue sums quantity × unit price over the whole set with no
// rounding during accumulation.
func TotalRevenue(txs []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txs {
		total = total.Add(t.Revenue())
	}
	return total
}

var hundred = decimal.NewFromInt(100)
