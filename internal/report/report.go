// Package report renders the fixed battery of sales analytics into a
// textual report. Section order and content are an output contract; every
// aggregate is recomputed from the validated set at render time.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/dvloznov/sales-analytics/internal/analytics"
	"github.com/dvloznov/sales-analytics/internal/domain"
	"github.com/dvloznov/sales-analytics/internal/enrich"
)

const sectionRule = "--------------------------------------------"
const headerRule = "============================================"

// Data carries everything one report needs.
type Data struct {
	RunID        string
	GeneratedAt  time.Time
	Transactions []domain.Transaction
	Enriched     []domain.EnrichedTransaction
	InvalidCount int
	Filter       domain.FilterSummary
}

// Renderer formats reports with a fixed currency and table limits.
type Renderer struct {
	CurrencySymbol        string
	TopN                  int
	LowPerformerThreshold int64
}

// WriteFile renders the report to path through a single file handle,
// opened once and closed on every exit path. Failure to open or to finish
// writing is a hard failure of the run.
func (r *Renderer) WriteFile(path string, data Data) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", cerr)
		}
	}()

	return r.Render(f, data)
}

// Render writes the full report to w in fixed section order.
func (r *Renderer) Render(w io.Writer, data Data) error {
	bw := bufio.NewWriter(w)

	r.writeHeader(bw, data)
	r.writeOverallSummary(bw, data.Transactions)
	r.writeRegionTable(bw, data.Transactions)
	r.writeTopProducts(bw, data.Transactions)
	r.writeTopCustomers(bw, data.Transactions)
	r.writeDailyTrend(bw, data.Transactions)
	r.writeProductPerformance(bw, data.Transactions)
	r.writeEnrichmentSummary(bw, data.Enriched)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func (r *Renderer) writeHeader(w io.Writer, data Data) {
	fmt.Fprintln(w, headerRule)
	fmt.Fprintln(w, "SALES ANALYTICS REPORT")
	fmt.Fprintf(w, "Generated: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Run ID: %s\n", data.RunID)
	fmt.Fprintf(w, "Records Processed: %d\n", len(data.Transactions))
	fmt.Fprintf(w, "Records Rejected: %d\n", data.InvalidCount)
	if data.Filter.FilterApplied {
		fmt.Fprintf(w, "Region Filter: %s (%d of %d records)\n",
			data.Filter.Region, data.Filter.RecordsAfter, data.Filter.RecordsBefore)
	}
	fmt.Fprintln(w, headerRule)
	fmt.Fprintln(w)
}

func (r *Renderer) writeOverallSummary(w io.Writer, txs []domain.Transaction) {
	fmt.Fprintln(w, "OVERALL SUMMARY")
	fmt.Fprintln(w, sectionRule)

	total := analytics.TotalRevenue(txs)
	fmt.Fprintf(w, "Total Revenue: %s\n", FormatMoney(r.CurrencySymbol, total))
	fmt.Fprintf(w, "Total Transactions: %d\n", len(txs))

	if len(txs) > 0 {
		avg := total.DivRound(decimal.NewFromInt(int64(len(txs))), 2)
		fmt.Fprintf(w, "Average Order Value: %s\n", FormatMoney(r.CurrencySymbol, avg))

		start, end := dateRange(txs)
		fmt.Fprintf(w, "Date Range: %s to %s\n", start, end)
	} else {
		fmt.Fprintln(w, "Average Order Value: n/a")
		fmt.Fprintln(w, "Date Range: n/a")
	}
	fmt.Fprintln(w)
}

func (r *Renderer) writeRegionTable(w io.Writer, txs []domain.Transaction) {
	fmt.Fprintln(w, "REGION-WISE PERFORMANCE")
	fmt.Fprintln(w, sectionRule)

	table := newTable(w, []string{"Region", "Total Sales", "% of Total", "Transactions"})
	for _, rs := range analytics.RegionSummaries(txs) {
		table.Append([]string{
			rs.Region,
			FormatMoney(r.CurrencySymbol, rs.TotalSales),
			rs.PercentageOfTotal.StringFixed(2) + "%",
			strconv.Itoa(rs.TransactionCount),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func (r *Renderer) writeTopProducts(w io.Writer, txs []domain.Transaction) {
	fmt.Fprintf(w, "TOP %d PRODUCTS\n", r.TopN)
	fmt.Fprintln(w, sectionRule)

	table := newTable(w, []string{"Rank", "Product", "Quantity", "Revenue"})
	for i, p := range analytics.TopProducts(txs, r.TopN) {
		table.Append([]string{
			strconv.Itoa(i + 1),
			p.Name,
			strconv.FormatInt(p.TotalQuantity, 10),
			FormatMoney(r.CurrencySymbol, p.TotalRevenue),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func (r *Renderer) writeTopCustomers(w io.Writer, txs []domain.Transaction) {
	fmt.Fprintf(w, "TOP %d CUSTOMERS\n", r.TopN)
	fmt.Fprintln(w, sectionRule)

	customers := analytics.CustomerAnalysis(txs)
	if r.TopN < len(customers) {
		customers = customers[:r.TopN]
	}

	table := newTable(w, []string{"Rank", "Customer ID", "Total Spent", "Orders", "Avg Order", "Distinct Products"})
	for i, c := range customers {
		table.Append([]string{
			strconv.Itoa(i + 1),
			c.CustomerID,
			FormatMoney(r.CurrencySymbol, c.TotalSpent),
			strconv.Itoa(c.PurchaseCount),
			FormatMoney(r.CurrencySymbol, c.AvgOrderValue),
			strconv.Itoa(len(c.ProductsPurchased)),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func (r *Renderer) writeDailyTrend(w io.Writer, txs []domain.Transaction) {
	fmt.Fprintln(w, "DAILY SALES TREND")
	fmt.Fprintln(w, sectionRule)

	table := newTable(w, []string{"Date", "Revenue", "Transactions", "Customers"})
	for _, d := range analytics.DailySalesTrend(txs) {
		table.Append([]string{
			d.Date,
			FormatMoney(r.CurrencySymbol, d.Revenue),
			strconv.Itoa(d.TransactionCount),
			strconv.Itoa(d.UniqueCustomers),
		})
	}
	table.Render()
	fmt.Fprintln(w)
}

func (r *Renderer) writeProductPerformance(w io.Writer, txs []domain.Transaction) {
	fmt.Fprintln(w, "PRODUCT PERFORMANCE ANALYSIS")
	fmt.Fprintln(w, sectionRule)

	if peak := analytics.PeakSalesDay(txs); peak != nil {
		fmt.Fprintf(w, "Best Selling Day: %s (%s in %d transactions)\n",
			peak.Date, FormatMoney(r.CurrencySymbol, peak.Revenue), peak.TransactionCount)
	} else {
		fmt.Fprintln(w, "Best Selling Day: none identified")
	}

	low := analytics.LowPerformingProducts(txs, r.LowPerformerThreshold)
	if len(low) == 0 {
		fmt.Fprintln(w, "No low performing products found.")
	} else {
		fmt.Fprintln(w, "Low Performing Products:")
		for _, p := range low {
			fmt.Fprintf(w, "%s - Qty: %d, Revenue: %s\n",
				p.Name, p.TotalQuantity, FormatMoney(r.CurrencySymbol, p.TotalRevenue))
		}
	}
	fmt.Fprintln(w)
}

func (r *Renderer) writeEnrichmentSummary(w io.Writer, enriched []domain.EnrichedTransaction) {
	fmt.Fprintln(w, "API ENRICHMENT SUMMARY")
	fmt.Fprintln(w, sectionRule)

	summary := enrich.Summarize(enriched)
	fmt.Fprintf(w, "Products Enriched: %d/%d\n", summary.Matched, summary.Total)
	fmt.Fprintf(w, "Success Rate: %.2f%%\n", summary.SuccessRate)

	if len(summary.Unmatched) == 0 {
		fmt.Fprintln(w, "All products were enriched successfully.")
	} else {
		fmt.Fprintln(w, "Products not enriched:")
		for _, name := range summary.Unmatched {
			fmt.Fprintf(w, "- %s\n", name)
		}
	}
}

func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func dateRange(txs []domain.Transaction) (string, string) {
	start, end := txs[0].Date, txs[0].Date
	for _, t := range txs[1:] {
		if t.Date < start {
			start = t.Date
		}
		if t.Date > end {
			end = t.Date
		}
	}
	return start, end
}
