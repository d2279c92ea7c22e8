package nbp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/nbp_rates_app/internal/apperrors"
	"github.com/SscSPs/nbp_rates_app/internal/core/ports/clients"
	"github.com/SscSPs/nbp_rates_app/internal/dto"
)

// DefaultBaseURL is the public NBP API root.
const DefaultBaseURL = "https://api.nbp.pl/api/"

// maxErrorBody bounds how much of a failed response is kept in the error message.
const maxErrorBody = 512

// Client implements clients.NBPClient over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    *time.Duration
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout. Zero means no timeout. It is applied after all
// options, on a copy of a client passed via WithHTTPClient.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client for the given base URL (DefaultBaseURL when empty).
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid NBP base URL %q: %w", baseURL, err)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, option := range options {
		option(c)
	}
	if c.timeout != nil {
		httpClient := *c.httpClient
		httpClient.Timeout = *c.timeout
		c.httpClient = &httpClient
	}
	return c, nil
}

var _ clients.NBPClient = (*Client)(nil)

// GetCurrentTables fetches exchangerates/tables/{table}.
func (c *Client) GetCurrentTables(ctx context.Context, table string) ([]dto.TableDTO, error) {
	var tables []dto.TableDTO
	if err := c.get(ctx, "exchangerates/tables/"+table, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// GetCurrencyRatesLastDays fetches exchangerates/rates/{table}/{code}/last/{days}.
func (c *Client) GetCurrencyRatesLastDays(ctx context.Context, code, table string, days int) (*dto.CurrencyRateDTO, error) {
	path := fmt.Sprintf("exchangerates/rates/%s/%s/last/%s", table, code, strconv.Itoa(days))

	var rates dto.CurrencyRateDTO
	if err := c.get(ctx, path, &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: path, RawQuery: "format=json"})
	logger := c.logger.With(slog.String("url", endpoint.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", apperrors.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("NBP request failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	logger.Debug("NBP request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Warn("NBP API returned non-2xx status", slog.Int("status", resp.StatusCode))
		return &apperrors.UpstreamStatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Warn("Failed to decode NBP response", slog.String("error", err.Error()))
		return fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrUpstream, err)
	}
	return nil
}
