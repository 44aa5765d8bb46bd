// Package processor is the client for the external payment processor's
// transaction search API.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/benx421/donorsync/internal/config"
)

// DateLayout is the calendar date format the search endpoint expects
const DateLayout = "2006-01-02"

// maxResponseBody bounds a single search response
const maxResponseBody = 32 << 20

// PageRequest selects one page of transactions in an inclusive date range
type PageRequest struct {
	Start    time.Time
	End      time.Time
	Page     int
	PageSize int
}

type searchBody struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
}

// Client fetches transaction pages from the processor, trying each
// authentication strategy in order until one is accepted
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string
	strategies []Strategy
	pageSize   int
}

// ClientOption is a functional option for configuring the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithStrategies replaces the strategies derived from configuration
func WithStrategies(strategies ...Strategy) ClientOption {
	return func(c *Client) {
		c.strategies = strategies
	}
}

// NewClient creates a Client for the configured processor
func NewClient(cfg config.ProcessorConfig, logger *slog.Logger, opts ...ClientOption) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("processor base URL is required")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		endpoint:   strings.TrimRight(cfg.BaseURL, "/") + cfg.SearchPath,
		pageSize:   pageSize,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.strategies == nil {
		client.strategies = StrategiesFromConfig(cfg, client.httpClient)
	}
	if len(client.strategies) == 0 {
		return nil, fmt.Errorf("no processor credentials configured")
	}

	return client, nil
}

// PageSize returns the default page size
func (c *Client) PageSize() int {
	return c.pageSize
}

// Strategies returns the names of the strategies in attempt order
func (c *Client) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// FetchPage requests one page of transactions. Transport failures return a
// *NetworkError immediately. A 400, 401 or 403 moves on to the next
// strategy; when none is accepted the result is an *AuthError. Any other
// non-2xx status, or an accepted response that cannot be parsed, is a
// *ResponseError.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (*Page, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = c.pageSize
	}

	body, err := json.Marshal(searchBody{
		StartDate: req.Start.Format(DateLayout),
		EndDate:   req.End.Format(DateLayout),
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	authErr := &AuthError{}
	for _, strategy := range c.strategies {
		authErr.Attempts = append(authErr.Attempts, strategy.Name())

		status, respBody, err := c.attempt(ctx, strategy, body)
		if err != nil {
			var netErr *NetworkError
			if errors.As(err, &netErr) {
				return nil, err
			}
			c.logger.Warn("processor auth strategy could not be applied",
				"strategy", strategy.Name(),
				"error", err,
			)
			authErr.StatusCode = 0
			authErr.Body = truncate([]byte(err.Error()))
			continue
		}

		if status >= 200 && status < 300 {
			page, err := ParsePage(respBody, req)
			if err != nil {
				return nil, &ResponseError{StatusCode: status, Body: truncate(respBody), Err: err}
			}
			c.logger.Debug("processor page fetched",
				"strategy", strategy.Name(),
				"page", page.Page,
				"records", len(page.Records),
			)
			return page, nil
		}

		if !isCredentialRejection(status) {
			c.logger.Warn("processor returned unexpected status",
				"strategy", strategy.Name(),
				"status", status,
			)
			return nil, &ResponseError{StatusCode: status, Body: truncate(respBody), Err: ErrUnexpectedStatus}
		}

		c.logger.Warn("processor rejected auth strategy",
			"strategy", strategy.Name(),
			"status", status,
		)
		authErr.StatusCode = status
		authErr.Body = truncate(respBody)
	}

	return nil, authErr
}

func (c *Client) attempt(ctx context.Context, strategy Strategy, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	if err := strategy.Apply(ctx, httpReq, body); err != nil {
		return 0, nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, &NetworkError{Strategy: strategy.Name(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return 0, nil, &NetworkError{Strategy: strategy.Name(), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return resp.StatusCode, respBody, nil
}
