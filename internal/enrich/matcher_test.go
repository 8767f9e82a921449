package enrich

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/domain"
)

func tx(id, product string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          "2024-01-01",
		ProductID:     "P1",
		ProductName:   product,
		Quantity:      1,
		UnitPrice:     decimal.RequireFromString("10.00"),
		CustomerID:    "C1",
		Region:        "North",
	}
}

func defaultProvider() RuleProvider {
	return NewStaticRuleProvider(DefaultRules())
}

func TestEnrich_USBCableScenario(t *testing.T) {
	enriched := Enrich([]domain.Transaction{tx("T1", "USB Cable")}, defaultProvider())

	if len(enriched) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(enriched))
	}
	e := enriched[0]
	if !e.APIMatch {
		t.Fatal("Expected APIMatch=true")
	}
	if e.APICategory == nil || *e.APICategory != "mobile-accessories" {
		t.Errorf("APICategory = %v, want mobile-accessories", e.APICategory)
	}
	if e.APIBrand == nil || *e.APIBrand != "Beats" {
		t.Errorf("APIBrand = %v, want Beats", e.APIBrand)
	}
	if e.APIRating == nil || !e.APIRating.Equal(decimal.RequireFromString("4.26")) {
		t.Errorf("APIRating = %v, want 4.26", e.APIRating)
	}
}

func TestEnrich_FirstMatchWins(t *testing.T) {
	// "Wireless Mouse Gaming Pro" contains the keywords of four rules;
	// the earliest declared one must win, not the shortest or longest.
	enriched := Enrich([]domain.Transaction{tx("T1", "Wireless Mouse Gaming Pro")}, defaultProvider())

	e := enriched[0]
	if !e.APIMatch {
		t.Fatal("Expected a match")
	}
	if *e.APIBrand != "TechGear" || !e.APIRating.Equal(decimal.RequireFromString("4.43")) {
		t.Errorf("Expected the 'wireless mouse gaming' rule, got brand=%s rating=%s",
			*e.APIBrand, e.APIRating)
	}
}

func TestEnrich_NoMatch(t *testing.T) {
	enriched := Enrich([]domain.Transaction{tx("T1", "Mystery Gadget")}, defaultProvider())

	e := enriched[0]
	if e.APIMatch {
		t.Error("Expected APIMatch=false")
	}
	if e.APICategory != nil || e.APIBrand != nil || e.APIRating != nil {
		t.Error("Expected all enrichment fields absent on no match")
	}
}

func TestEnrich_AllOrNothingInvariant(t *testing.T) {
	txs := []domain.Transaction{
		tx("T1", "USB Cable"),
		tx("T2", "Mystery Gadget"),
		tx("T3", "Laptop Premium"),
		tx("T4", "Something Else"),
		tx("T5", "Mechanical Keyboard"),
	}

	enriched := Enrich(txs, defaultProvider())

	if len(enriched) != len(txs) {
		t.Fatalf("Expected one output per input, got %d for %d", len(enriched), len(txs))
	}
	for i, e := range enriched {
		populated := e.APICategory != nil && e.APIBrand != nil && e.APIRating != nil
		absent := e.APICategory == nil && e.APIBrand == nil && e.APIRating == nil
		if e.APIMatch && !populated {
			t.Errorf("record %d: APIMatch=true but fields missing", i)
		}
		if !e.APIMatch && !absent {
			t.Errorf("record %d: APIMatch=false but fields populated", i)
		}
		if e.TransactionID != txs[i].TransactionID {
			t.Errorf("record %d: order not preserved", i)
		}
	}
}

func TestEnrich_CaseInsensitiveProductName(t *testing.T) {
	enriched := Enrich([]domain.Transaction{tx("T1", "uSb CaBlE deluxe")}, defaultProvider())

	if !enriched[0].APIMatch {
		t.Error("Expected lowercased substring match")
	}
}

func TestEnrich_SwappableRuleTable(t *testing.T) {
	rules := NewStaticRuleProvider([]Rule{
		{"gadget", "gizmos", "Acme", decimal.RequireFromString("1.00")},
	})

	enriched := Enrich([]domain.Transaction{tx("T1", "Mystery Gadget")}, rules)

	e := enriched[0]
	if !e.APIMatch || *e.APICategory != "gizmos" {
		t.Errorf("Expected custom rule table to apply, got %+v", e)
	}
}

func TestSummarize(t *testing.T) {
	txs := []domain.Transaction{
		tx("T1", "USB Cable"),
		tx("T2", "Mystery Gadget"),
		tx("T3", "Mystery Gadget"),
		tx("T4", "Monitor"),
	}

	s := Summarize(Enrich(txs, defaultProvider()))

	if s.Total != 4 || s.Matched != 2 {
		t.Errorf("Total/Matched = %d/%d, want 4/2", s.Total, s.Matched)
	}
	if s.SuccessRate != 50 {
		t.Errorf("SuccessRate = %f, want 50", s.SuccessRate)
	}
	// Duplicate unmatched names collapse to one entry.
	if want := []string{"Mystery Gadget"}; !reflect.DeepEqual(s.Unmatched, want) {
		t.Errorf("Unmatched = %v, want %v", s.Unmatched, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.SuccessRate != 0 {
		t.Errorf("Expected zero summary for empty batch, got %+v", s)
	}
}
