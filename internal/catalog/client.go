// Package catalog fetches the remote product reference list and builds
// the id→descriptor mapping from it. The catalog is independent of the
// enrichment rule table; a failed fetch degrades to an empty catalog and
// the run continues.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dvloznov/sales-analytics/internal/logger"
)

// DefaultBaseURL is the public products endpoint the pipeline enriches from.
const DefaultBaseURL = "https://dummyjson.com"

// DefaultPageSize fetches every available product in a single request.
const DefaultPageSize = 100

// Product is one descriptor from the remote catalog. Optional fields stay
// nil when the API omits them and pass through to the mapping as absent.
type Product struct {
	ID       int      `json:"id"`
	Title    *string  `json:"title"`
	Category *string  `json:"category"`
	Brand    *string  `json:"brand"`
	Rating   *float64 `json:"rating"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}

// Service is the catalog-fetch capability the pipeline depends on.
type Service interface {
	// FetchAllProducts returns the product list, or an empty slice on any
	// transport or HTTP failure. Callers must treat an empty catalog as a
	// valid, if degraded, outcome.
	FetchAllProducts(ctx context.Context) []Product
}

// HTTPClient is the concrete Service backed by a plain HTTP endpoint.
type HTTPClient struct {
	baseURL  string
	pageSize int
	client   *http.Client
}

// NewHTTPClient builds a client for the given endpoint. An empty baseURL
// selects DefaultBaseURL; a non-positive pageSize selects DefaultPageSize.
func NewHTTPClient(baseURL string, pageSize int, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &HTTPClient{
		baseURL:  baseURL,
		pageSize: pageSize,
		client:   &http.Client{Timeout: timeout},
	}
}

// FetchAllProducts performs the single blocking network call of the
// pipeline. There is no retry: any failure is logged and reported as an
// empty catalog.
func (c *HTTPClient) FetchAllProducts(ctx context.Context) []Product {
	log := logger.FromContext(ctx)

	url := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.pageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Catalog request could not be built, proceeding with empty catalog")
		return nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("Catalog fetch failed, proceeding with empty catalog")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Msg("Catalog fetch returned non-success status, proceeding with empty catalog")
		return nil
	}

	var body productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Warn().Err(err).Msg("Catalog response not decodable, proceeding with empty catalog")
		return nil
	}

	log.Info().Int("products", len(body.Products)).Msg("Fetched product catalog")
	return body.Products
}
