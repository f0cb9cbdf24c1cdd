package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agroplan/internal/domain/catalog"
	"agroplan/internal/shared/logger"
)

const (
	defaultTimeout = 30 * time.Second
	// ERP catalogs run to a few thousand rows.
	maxResponseSize = 32 << 20
)

// CatalogClient pulls the pesticide catalog from the ERP items endpoint.
type CatalogClient struct {
	url        string
	token      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewCatalogClient(url, token string, timeout time.Duration, logger logger.Interface) *CatalogClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &CatalogClient{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Configured reports whether a sync URL was set.
func (c *CatalogClient) Configured() bool {
	return c.url != ""
}

// FetchPesticides returns the raw rows of the feed. The endpoint answers
// either with a bare array or with {"items": [...]}.
func (c *CatalogClient) FetchPesticides(ctx context.Context) ([]catalog.Row, error) {
	if !c.Configured() {
		return nil, catalog.ErrSyncNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach catalog endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("catalog endpoint returned error status",
			"status", resp.StatusCode,
			"duration", time.Since(start),
		)
		return nil, fmt.Errorf("unexpected status code from catalog endpoint: %d", resp.StatusCode)
	}

	rows, err := decodeRows(body)
	if err != nil {
		return nil, err
	}

	c.logger.Infow("catalog feed fetched",
		"rows", len(rows),
		"duration", time.Since(start),
	)
	return rows, nil
}

func decodeRows(body []byte) ([]catalog.Row, error) {
	body = bytes.TrimSpace(body)

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	if len(body) > 0 && body[0] == '{' {
		var wrapped struct {
			Items []catalog.Row `json:"items"`
		}
		if err := dec.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode catalog response: %w", err)
		}
		if wrapped.Items == nil {
			return nil, fmt.Errorf("catalog response has no items list")
		}
		return wrapped.Items, nil
	}

	var rows []catalog.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return rows, nil
}
