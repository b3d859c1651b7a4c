// Package fetcher loads the seed dataset from the Hugging Face
// datasets-server rows API, with rate limiting, retry and circuit breaker
// protection around the paginated download.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"news-classify/internal/resilience/circuitbreaker"
	"news-classify/internal/resilience/retry"
	"news-classify/internal/usecase/seed"
)

// HuggingFaceFetcher downloads a labeled text classification dataset page by
// page. It implements seed.Fetcher.
type HuggingFaceFetcher struct {
	cfg     DatasetConfig
	client  *http.Client
	limiter *RateLimiter
	breaker *circuitbreaker.CircuitBreaker
	retry   retry.Config
	logger  *slog.Logger
}

func NewHuggingFaceFetcher(cfg DatasetConfig, logger *slog.Logger) *HuggingFaceFetcher {
	return &HuggingFaceFetcher{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		breaker: circuitbreaker.New(circuitbreaker.DatasetFetchConfig()),
		retry:   retry.DatasetFetchConfig(),
		logger:  logger,
	}
}

// rowsResponse mirrors the datasets-server /rows payload, reduced to the
// fields we read.
type rowsResponse struct {
	NumRowsTotal int `json:"num_rows_total"`
	Rows         []struct {
		Row struct {
			Text   string `json:"text"`
			Review string `json:"review"`
			Label  string `json:"label"`
		} `json:"row"`
	} `json:"rows"`
}

// Fetch downloads the configured split, mapping the dataset's text column to
// the record review field.
func (f *HuggingFaceFetcher) Fetch(ctx context.Context) ([]seed.Record, error) {
	var records []seed.Record

	for offset := 0; ; offset += f.cfg.PageSize {
		page, err := f.fetchPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}

		for _, row := range page.Rows {
			review := row.Row.Text
			if review == "" {
				review = row.Row.Review
			}
			records = append(records, seed.Record{Review: review, Label: row.Row.Label})
		}

		f.logger.Debug("fetched dataset page",
			slog.Int("offset", offset),
			slog.Int("rows", len(page.Rows)),
			slog.Int("total", page.NumRowsTotal))

		if f.cfg.MaxRows > 0 && len(records) >= f.cfg.MaxRows {
			records = records[:f.cfg.MaxRows]
			break
		}
		if len(page.Rows) < f.cfg.PageSize || len(records) >= page.NumRowsTotal {
			break
		}
	}

	f.logger.Info("dataset download complete", slog.Int("records", len(records)))
	return records, nil
}

// fetchPage requests a single page through the rate limiter, retry policy
// and circuit breaker.
func (f *HuggingFaceFetcher) fetchPage(ctx context.Context, offset int) (*rowsResponse, error) {
	var page *rowsResponse

	err := retry.WithBackoff(ctx, f.retry, func() error {
		if err := f.limiter.Allow(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		result, err := f.breaker.Execute(func() (interface{}, error) {
			return f.doRequest(ctx, offset)
		})
		if err != nil {
			return err
		}
		page = result.(*rowsResponse)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (f *HuggingFaceFetcher) doRequest(ctx context.Context, offset int) (*rowsResponse, error) {
	endpoint := fmt.Sprintf("%s/rows?%s", f.cfg.BaseURL, url.Values{
		"dataset": {f.cfg.Dataset},
		"config":  {f.cfg.Config},
		"split":   {f.cfg.Split},
		"offset":  {fmt.Sprintf("%d", offset)},
		"length":  {fmt.Sprintf("%d", f.cfg.PageSize)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request rows: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("rows request for %s failed", f.cfg.Dataset),
		}
	}

	body := io.LimitReader(resp.Body, f.cfg.MaxBodySize)
	var page rowsResponse
	if err := json.NewDecoder(body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode rows response: %w", err)
	}
	return &page, nil
}
