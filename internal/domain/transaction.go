package domain

import (
	"github.com/shopspring/decimal"
)

// Transaction represents one validated sales record produced by the parser.
// Instances are immutable after creation; every aggregation works on a
// read-only slice of these.
type Transaction struct {
	TransactionID string          // starts with "T" in raw form
	Date          string          // opaque sort key, e.g. "2024-01-01"
	ProductID     string          // starts with "P" in raw form
	ProductName   string          // commas normalized to spaces
	Quantity      int64           // > 0
	UnitPrice     decimal.Decimal // > 0
	CustomerID    string          // non-blank
	Region        string          // non-blank
}

// Revenue returns quantity × unit price with no rounding applied.
func (t Transaction) Revenue() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(t.Quantity))
}

// EnrichedTransaction is a Transaction tagged with catalog-style metadata
// from the keyword rule table. Either all four API fields are populated and
// APIMatch is true, or all four are nil and APIMatch is false.
type EnrichedTransaction struct {
	Transaction

	APICategory *string
	APIBrand    *string
	APIRating   *decimal.Decimal
	APIMatch    bool
}
