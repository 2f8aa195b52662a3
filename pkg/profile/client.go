// Package profile is the client for the REST profile backend: profile,
// positions, transaction history, analytics, and export, keyed by account
// address. The backend itself is an external collaborator; this package
// only speaks its contract.
package profile

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the profile backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a profile backend client. The base URL must be HTTPS
// outside local development.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if err := ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Profile fetches the complete profile for an address.
// GET /profile/{address}
func (c *Client) Profile(ctx context.Context, address string) (*ProfileResponse, error) {
	var result ProfileResponse
	u := fmt.Sprintf("%s/profile/%s", c.baseURL, url.PathEscape(address))
	if err := httpRequest(ctx, c.httpClient, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &result, nil
}

// UpdateProfile applies a partial profile update.
// PATCH /profile/{address}
func (c *Client) UpdateProfile(ctx context.Context, address string, req *UpdateRequest) (*UpdateResponse, error) {
	var result UpdateResponse
	u := fmt.Sprintf("%s/profile/%s", c.baseURL, url.PathEscape(address))
	if err := httpRequest(ctx, c.httpClient, http.MethodPatch, u, req, &result); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &result, nil
}

// Positions fetches positions with filtering and pagination.
// GET /profile/{address}/positions
func (c *Client) Positions(ctx context.Context, address string, filter *PositionFilter, page *Pagination) (*PositionsPage, error) {
	q := url.Values{}
	if filter != nil {
		setJoined(q, "type", filter.Types)
		setJoined(q, "asset", filter.Assets)
		setJoined(q, "status", filter.Statuses)
		setDateRange(q, filter.StartDate, filter.EndDate)
	}
	addPagination(q, page)

	var result PositionsResponse
	u := fmt.Sprintf("%s/profile/%s/positions?%s", c.baseURL, url.PathEscape(address), q.Encode())
	if err := httpRequest(ctx, c.httpClient, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}
	return &result.Data, nil
}

// Transactions fetches transaction history with filtering and pagination.
// GET /profile/{address}/transactions
func (c *Client) Transactions(ctx context.Context, address string, filter *TransactionFilter, page *Pagination) (*TransactionsPage, error) {
	q := url.Values{}
	if filter != nil {
		setJoined(q, "type", filter.Types)
		setJoined(q, "asset", filter.Assets)
		setJoined(q, "status", filter.Statuses)
		setDateRange(q, filter.StartDate, filter.EndDate)
		if filter.MinAmount != "" {
			q.Set("minAmount", filter.MinAmount)
		}
		if filter.MaxAmount != "" {
			q.Set("maxAmount", filter.MaxAmount)
		}
	}
	addPagination(q, page)

	var result TransactionsResponse
	u := fmt.Sprintf("%s/profile/%s/transactions?%s", c.baseURL, url.PathEscape(address), q.Encode())
	if err := httpRequest(ctx, c.httpClient, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch transaction history: %w", err)
	}
	return &result.Data, nil
}

// Analytics fetches the analytics payload for an address.
// GET /profile/{address}/analytics
func (c *Client) Analytics(ctx context.Context, address string) (*AnalyticsData, error) {
	var result AnalyticsResponse
	u := fmt.Sprintf("%s/profile/%s/analytics", c.baseURL, url.PathEscape(address))
	if err := httpRequest(ctx, c.httpClient, http.MethodGet, u, nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch analytics: %w", err)
	}
	return &result.Data, nil
}

// Export requests a data export and returns the download URL.
// POST /profile/{address}/export
func (c *Client) Export(ctx context.Context, address string, opts *ExportOptions) (*ExportResponse, error) {
	var result ExportResponse
	u := fmt.Sprintf("%s/profile/%s/export", c.baseURL, url.PathEscape(address))
	if err := httpRequest(ctx, c.httpClient, http.MethodPost, u, opts, &result); err != nil {
		return nil, fmt.Errorf("failed to export data: %w", err)
	}
	return &result, nil
}

func setJoined(q url.Values, key string, values []string) {
	if len(values) > 0 {
		q.Set(key, strings.Join(values, ","))
	}
}

func setDateRange(q url.Values, start, end *time.Time) {
	if start != nil {
		q.Set("startDate", start.UTC().Format(time.RFC3339))
	}
	if end != nil {
		q.Set("endDate", end.UTC().Format(time.RFC3339))
	}
}

func addPagination(q url.Values, page *Pagination) {
	if page == nil {
		return
	}
	q.Set("page", strconv.Itoa(page.Page))
	q.Set("limit", strconv.Itoa(page.Limit))
	if page.SortBy != "" {
		q.Set("sortBy", page.SortBy)
	}
	if page.SortOrder != "" {
		q.Set("sortOrder", page.SortOrder)
	}
}
