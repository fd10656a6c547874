package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"elektron/internal/modules/prices/types"
)

// ErrUpstreamUnavailable wraps every failure to obtain prices from the provider.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// PriceSource returns the raw hourly prices for one day and region.
type PriceSource interface {
	GetPrices(ctx context.Context, q types.Query) ([]types.PriceRecord, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
}

// NewClient returns a client for the provider rooted at baseURL
// (e.g. https://www.hvakosterstrommen.no/api/v1). A zero timeout leaves the
// http.Client default of no timeout; metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *Metrics) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// URL returns the provider URL for q, e.g. .../prices/2024/06-01_NO2.json.
func (c *Client) URL(q types.Query) string {
	return fmt.Sprintf("%s/prices/%d/%02d-%02d_%s.json", c.baseURL, q.Year, q.Month, q.Day, q.Region)
}

// GetPrices performs a single GET for q. There is no retry.
func (c *Client) GetPrices(ctx context.Context, q types.Query) ([]types.PriceRecord, error) {
	start := time.Now()
	records, err := c.fetch(ctx, q)
	c.metrics.observe(q.Region, err, time.Since(start))
	if err != nil {
		c.logger.Error("upstream fetch failed",
			"region", q.Region,
			"date", q.Date(),
			"error", err,
		)
		return nil, err
	}
	return records, nil
}

func (c *Client) fetch(ctx context.Context, q types.Query) ([]types.PriceRecord, error) {
	url := c.URL(q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("upstream request", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream response", "url", url, "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %s", ErrUpstreamUnavailable, resp.Status)
	}

	var records []types.PriceRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrUpstreamUnavailable, err)
	}
	return records, nil
}
