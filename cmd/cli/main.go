package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sales-analytics/internal/catalog"
	"github.com/dvloznov/sales-analytics/internal/config"
	"github.com/dvloznov/sales-analytics/internal/domain"
	"github.com/dvloznov/sales-analytics/internal/enrich"
	"github.com/dvloznov/sales-analytics/internal/logger"
	"github.com/dvloznov/sales-analytics/internal/pipeline"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		runAnalyze(log)
	case "fetch-catalog":
		runFetchCatalog(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Sales Analytics CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  analyze        Parse the sales feed and write the analytics report")
	fmt.Println("  fetch-catalog  Fetch the remote product catalog and print the mapping")
	fmt.Println("  help           Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func runAnalyze(log zerolog.Logger) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to JSON config file")
	inputPath := fs.String("input", "", "Path to the pipe-delimited sales feed (overrides config)")
	reportPath := fs.String("output", "", "Path for the generated report (overrides config)")
	region := fs.String("region", "", "Filter to a single region, case-insensitive (overrides config)")
	interactive := fs.Bool("interactive", false, "Prompt for the region filter on stdin")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load configuration")
	}
	if *inputPath != "" {
		cfg.InputPath = *inputPath
	}
	if *reportPath != "" {
		cfg.ReportPath = *reportPath
	}
	if *region != "" {
		cfg.Region = *region
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	var selectRegion pipeline.RegionSelector
	if *interactive {
		selectRegion = promptRegion(bufio.NewReader(os.Stdin))
	} else {
		selectRegion = pipeline.FixedRegion(cfg.Region)
	}

	client := catalog.NewHTTPClient(cfg.CatalogBaseURL, cfg.CatalogPageSize, cfg.CatalogTimeout())
	rules := enrich.NewStaticRuleProvider(enrich.DefaultRules())

	log.Info().Str("input", cfg.InputPath).Str("output", cfg.ReportPath).Msg("Starting analysis")

	state, err := pipeline.Run(ctx, cfg, selectRegion, client, rules)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	fmt.Printf("Report generated at: %s (%d records, %d rejected)\n",
		cfg.ReportPath, len(state.Transactions), state.InvalidCount)
}

func runFetchCatalog(log zerolog.Logger) {
	fs := flag.NewFlagSet("fetch-catalog", flag.ExitOnError)
	baseURL := fs.String("url", catalog.DefaultBaseURL, "Catalog endpoint base URL")
	pageSize := fs.Int("limit", catalog.DefaultPageSize, "Page size for the products request")
	fs.Parse(os.Args[2:])

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	client := catalog.NewHTTPClient(*baseURL, *pageSize, 30*time.Second)
	products := client.FetchAllProducts(ctx)
	mapping := catalog.BuildProductMapping(products)

	fmt.Printf("Fetched %d products\n", len(products))
	for _, p := range products {
		info := mapping[p.ID]
		fmt.Printf("%d: title=%s category=%s brand=%s rating=%s\n",
			p.ID, strOrDash(info.Title), strOrDash(info.Category), strOrDash(info.Brand), ratingOrDash(info.Rating))
	}
}

// promptRegion reproduces the interactive region-filter choice: list the
// available regions, ask yes/no, then read the region name.
func promptRegion(in *bufio.Reader) pipeline.RegionSelector {
	return func(txs []domain.Transaction) string {
		fmt.Println("\nAvailable Regions:")
		for _, r := range pipeline.Regions(txs) {
			fmt.Println("-", r)
		}

		fmt.Print("\nDo you want to filter data by region? (yes/no): ")
		choice, _ := in.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(choice)) != "yes" {
			return ""
		}

		fmt.Print("Enter region name: ")
		region, _ := in.ReadString('\n')
		return strings.TrimSpace(region)
	}
}

func strOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func ratingOrDash(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *f)
}
