package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Fleetdesk/1.0"
)

// Client implements the domain repository interfaces against the ERP
// backend's REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new API client for the given backend.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SetToken updates the authentication token
func (c *Client) SetToken(token string) {
	c.token = token
}

// listParams builds the query string for a list request. The trimmed search
// string is omitted when empty; filter keys set to "" or "all" are omitted.
func listParams(q domain.ListQuery) url.Values {
	params := url.Values{}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = domain.DefaultPerPage
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	if s := q.NormalizedSearch(); s != "" {
		params.Set("search", s)
	}
	for key, value := range q.Filters {
		if value == "" || value == "all" {
			continue
		}
		params.Set(key, value)
	}
	return params
}

// doRequest performs an authenticated HTTP request and returns the raw body.
// Create/update requests are stamped with an idempotency key so a retried
// submission is not applied twice by the backend.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	c.logger.Debug("api request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, parseValidationError(respBody)
	case resp.StatusCode >= 300:
		c.logger.Error("api request error", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return respBody, nil
}

// parseValidationError decodes a 422 body into a domain.ValidationError.
func parseValidationError(body []byte) error {
	var dto validationErrorDTO
	if err := json.Unmarshal(body, &dto); err != nil || len(dto.Errors) == 0 {
		return &domain.ValidationError{Message: "the submitted data was rejected"}
	}
	return &domain.ValidationError{Message: dto.Message, Fields: dto.Errors}
}

// Ping verifies connectivity and token validity.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, "/api/ping", nil, nil)
	return err
}

// fetchList performs a list request and maps the envelope into a domain page.
func fetchList[D any, T any](ctx context.Context, c *Client, path string, q domain.ListQuery, mapItem func(D) T) (domain.Page[T], error) {
	body, err := c.doRequest(ctx, http.MethodGet, path, listParams(q), nil)
	if err != nil {
		return domain.Page[T]{}, err
	}

	var envelope listEnvelope[D]
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Error("failed to parse list response", "path", path, "error", err)
		return domain.Page[T]{}, fmt.Errorf("failed to parse response: %w", err)
	}

	items := make([]T, len(envelope.Data))
	for i, d := range envelope.Data {
		items[i] = mapItem(d)
	}
	return domain.Page[T]{Items: items, Pagination: envelope.Meta.toDomain()}, nil
}

// fetchOne performs a detail request and maps the wrapped record.
func fetchOne[D any, T any](ctx context.Context, c *Client, method, path string, payload any, mapItem func(D) T) (*T, error) {
	body, err := c.doRequest(ctx, method, path, nil, payload)
	if err != nil {
		return nil, err
	}

	var envelope itemEnvelope[D]
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Error("failed to parse item response", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	item := mapItem(envelope.Data)
	return &item, nil
}
