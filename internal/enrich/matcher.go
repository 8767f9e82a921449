// Package enrich tags validated transactions with category, brand, and
// rating metadata by matching an ordered keyword rule table against the
// product name. First match wins; scanning stops at the first rule whose
// keyword is a substring of the lowercased name.
package enrich

import (
	"strings"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// Enrich produces one enriched record per input record, order preserved.
// A matched record carries all four API fields and APIMatch=true; an
// unmatched one carries none of them and APIMatch=false. There is no
// partially enriched state.
func Enrich(txs []domain.Transaction, provider RuleProvider) []domain.EnrichedTransaction {
	rules := provider.Rules()

	enriched := make([]domain.EnrichedTransaction, 0, len(txs))
	for _, t := range txs {
		record := domain.EnrichedTransaction{Transaction: t}
		name := strings.ToLower(t.ProductName)

		for _, rule := range rules {
			if strings.Contains(name, rule.Keyword) {
				category, brand, rating := rule.Category, rule.Brand, rule.Rating
				record.APICategory = &category
				record.APIBrand = &brand
				record.APIRating = &rating
				record.APIMatch = true
				break
			}
		}

		enriched = append(enriched, record)
	}
	return enriched
}

// Summary describes how much of a batch the matcher could tag.
type Summary struct {
	Total       int
	Matched     int
	SuccessRate float64  // percentage, 0 when the batch is empty
	Unmatched   []string // distinct product names, first-encounter order
}

// Summarize computes the enrichment statistics used in the report.
func Summarize(enriched []domain.EnrichedTransaction) Summary {
	s := Summary{Total: len(enriched)}

	seen := make(map[string]bool)
	for _, e := range enriched {
		if e.APIMatch {
			s.Matched++
			continue
		}
		if !seen[e.ProductName] {
			seen[e.ProductName] = true
			s.Unmatched = append(s.Unmatched, e.ProductName)
		}
	}

	if s.Total > 0 {
		s.SuccessRate = float64(s.Matched) / float64(s.Total) * 100
	}
	return s
}
