// Package pipeline reads the raw sales feed, validates it into typed
// transactions, optionally filters by region, and drives enrichment and
// report rendering through an ordered sequence of steps.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dvloznov/sales-analytics/internal/catalog"
	"github.com/dvloznov/sales-analytics/internal/config"
	"github.com/dvloznov/sales-analytics/internal/domain"
	"github.com/dvloznov/sales-analytics/internal/enrich"
	"github.com/dvloznov/sales-analytics/internal/logger"
	"github.com/dvloznov/sales-analytics/internal/report"
)

// PipelineStep represents a single step in the analytics pipeline.
type PipelineStep interface {
	Execute(ctx context.Context, state *PipelineState) error
}

// PipelineState holds the shared state across all pipeline steps.
type PipelineState struct {
	RunID        string
	RawLines     []string
	Transactions []domain.Transaction
	InvalidCount int
	Filter       domain.FilterSummary
	Products     []catalog.Product
	Mapping      map[int]catalog.ProductInfo
	Enriched     []domain.EnrichedTransaction
}

// Step 1: ReadInputStep loads the raw feed lines from disk. A missing or
// undecodable file leaves the state with zero lines; the run continues.
type ReadInputStep struct {
	Path string
}

func (s *ReadInputStep) Execute(ctx context.Context, state *PipelineState) error {
	state.RawLines = ReadSalesFile(ctx, s.Path)
	log := logger.FromContext(ctx)
	log.Info().Int("lines", len(state.RawLines)).Msg("Loaded raw sales feed")
	return nil
}

// Step 2: ParseStep validates and cleans the raw lines.
type ParseStep struct{}

func (s *ParseStep) Execute(ctx context.Context, state *PipelineState) error {
	state.Transactions, state.InvalidCount = Parse(state.RawLines)
	log := logger.FromContext(ctx)
	log.Info().
		Int("valid", len(state.Transactions)).
		Int("invalid", state.InvalidCount).
		Msg("Parsed sales feed")
	return nil
}

// RegionSelector decides which region to filter on, given the validated
// set. It runs after parsing so an interactive implementation can show
// the available regions first. Returning "" skips filtering.
type RegionSelector func(txs []domain.Transaction) string

// FixedRegion is the non-interactive selector: it always answers region.
func FixedRegion(region string) RegionSelector {
	return func([]domain.Transaction) string { return region }
}

// Step 3: FilterStep applies the optional region filter. A nil selector
// or an empty selection is a pass-through.
type FilterStep struct {
	Select RegionSelector
}

func (s *FilterStep) Execute(ctx context.Context, state *PipelineState) error {
	region := ""
	if s.Select != nil {
		region = s.Select(state.Transactions)
	}
	state.Transactions, state.Filter = FilterByRegion(state.Transactions, region)
	if state.Filter.FilterApplied {
		log := logger.FromContext(ctx)
		log.Info().
			Str("region", region).
			Int("before", state.Filter.RecordsBefore).
			Int("after", state.Filter.RecordsAfter).
			Msg("Applied region filter")
	}
	return nil
}

// Step 4: FetchCatalogStep performs the single blocking network call.
// Failure degrades to an empty catalog mapping, never an error.
type FetchCatalogStep struct {
	Client catalog.Service
}

func (s *FetchCatalogStep) Execute(ctx context.Context, state *PipelineState) error {
	state.Products = s.Client.FetchAllProducts(ctx)
	state.Mapping = catalog.BuildProductMapping(state.Products)
	return nil
}

// Step 5: EnrichStep tags each transaction from the keyword rule table.
// Note the static rule table, not the fetched catalog mapping, drives
// enrichment; the mapping is carried for reporting only.
type EnrichStep struct {
	Rules enrich.RuleProvider
}

func (s *EnrichStep) Execute(ctx context.Context, state *PipelineState) error {
	state.Enriched = enrich.Enrich(state.Transactions, s.Rules)
	summary := enrich.Summarize(state.Enriched)
	log := logger.FromContext(ctx)
	log.Info().
		Int("matched", summary.Matched).
		Int("total", summary.Total).
		Msg("Enriched transactions")
	return nil
}

// Step 6: RenderReportStep writes the report file. This is the only step
// whose failure aborts the run.
type RenderReportStep struct {
	Path     string
	Renderer *report.Renderer
}

func (s *RenderReportStep) Execute(ctx context.Context, state *PipelineState) error {
	data := report.Data{
		RunID:        state.RunID,
		GeneratedAt:  time.Now(),
		Transactions: state.Transactions,
		Enriched:     state.Enriched,
		InvalidCount: state.InvalidCount,
		Filter:       state.Filter,
	}
	if err := s.Renderer.WriteFile(s.Path, data); err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	log.Info().Str("path", s.Path).Msg("Report written")
	return nil
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []PipelineStep
}

// NewPipeline creates a new pipeline with the given steps.
func NewPipeline(steps ...PipelineStep) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps in the pipeline sequentially.
func (p *Pipeline) Execute(ctx context.Context, state *PipelineState) error {
	for i, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %d failed: %w", i+1, err)
		}
	}
	return nil
}

// NewAnalyticsPipeline creates the standard 6-step pipeline for one
// batch run. selectRegion may be nil for an unfiltered run.
func NewAnalyticsPipeline(cfg *config.Config, selectRegion RegionSelector, client catalog.Service, rules enrich.RuleProvider) *Pipeline {
	return NewPipeline(
		&ReadInputStep{Path: cfg.InputPath},
		&ParseStep{},
		&FilterStep{Select: selectRegion},
		&FetchCatalogStep{Client: client},
		&EnrichStep{Rules: rules},
		&RenderReportStep{
			Path: cfg.ReportPath,
			Renderer: &report.Renderer{
				CurrencySymbol:        cfg.CurrencySymbol,
				TopN:                  cfg.TopN,
				LowPerformerThreshold: cfg.LowPerformerThreshold,
			},
		},
	)
}

// Run executes the standard pipeline end to end and returns the final
// state for inspection.
func Run(ctx context.Context, cfg *config.Config, selectRegion RegionSelector, client catalog.Service, rules enrich.RuleProvider) (*PipelineState, error) {
	state := &PipelineState{RunID: uuid.NewString()}
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).With().Str("run_id", state.RunID).Logger())

	if err := NewAnalyticsPipeline(cfg, selectRegion, client, rules).Execute(ctx, state); err != nil {
		return state, err
	}
	return state, nil
}
