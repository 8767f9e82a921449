package pipeline

import (
	"sort"
	"strings"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

// FilterByRegion returns the subset of transactions whose region equals
// the given one, compared case-insensitively. An empty region means no
// filtering: the input is returned unchanged.
func FilterByRegion(txs []domain.Transaction, region string) ([]domain.Transaction, domain.FilterSummary) {
	if region == "" {
		return txs, domain.FilterSummary{
			FilterApplied: false,
			RecordsBefore: len(txs),
			RecordsAfter:  len(txs),
		}
	}

	want := strings.ToLower(region)
	filtered := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		if strings.ToLower(t.Region) == want {
			filtered = append(filtered, t)
		}
	}

	return filtered, domain.FilterSummary{
		FilterApplied: true,
		Region:        region,
		RecordsBefore: len(txs),
		RecordsAfter:  len(filtered),
	}
}

// Regions returns the distinct region names in the set, sorted for
// stable display in the interactive prompt.
func Regions(txs []domain.Transaction) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, t := range txs {
		if !seen[t.Region] {
			seen[t.Region] = true
			regions = append(regions, t.Region)
		}
	}
	sort.Strings(regions)
	return regions
}
