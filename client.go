package sheetson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client is a minimal client for the Sheetson API, which exposes a Google
// Sheet as a REST service. Every operation issues exactly one HTTP request;
// the client itself holds no mutable state and performs no retries, so it is
// safe for concurrent use as long as the underlying HTTP transport is.
type Client struct {
	apiKey        string
	spreadsheetID string
	baseURL       string
	httpClient    *http.Client
	logger        zerolog.Logger
}

// New creates a new Sheetson client with the given configuration.
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	return &Client{
		apiKey:        config.APIKey,
		spreadsheetID: config.SpreadsheetID,
		baseURL:       baseURL,
		httpClient:    httpClient,
		logger:        logger,
	}, nil
}

// CreateRow creates a new row in the given sheet and returns it, including
// the row number assigned by the service.
func (c *Client) CreateRow(ctx context.Context, sheet string, data map[string]any) (*Row, error) {
	if data == nil {
		data = map[string]any{}
	}
	var row Row
	if err := c.do(ctx, http.MethodPost, sheetPath(sheet), nil, data, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// GetRow retrieves a specific row by row number. Row numbers are 1-based and
// start at 2 because row 1 holds the column headers. Extra query parameters
// are passed through to the service unchanged.
func (c *Client) GetRow(ctx context.Context, sheet string, rowNumber int, extra url.Values) (*Row, error) {
	if err := validateRowNumber(rowNumber); err != nil {
		return nil, err
	}
	query := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	var row Row
	if err := c.do(ctx, http.MethodGet, rowPath(sheet, rowNumber), query, nil, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateRow updates a specific row. Fields not present in data keep their
// current values. Returns the updated row.
func (c *Client) UpdateRow(ctx context.Context, sheet string, rowNumber int, data map[string]any) (*Row, error) {
	if err := validateRowNumber(rowNumber); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]any{}
	}
	var row Row
	if err := c.do(ctx, http.MethodPut, rowPath(sheet, rowNumber), nil, data, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteRow deletes a specific row and returns the confirmation payload,
// which is empty when the service responds with 204 No Content. Deleting the
// same row twice may surface ErrRowNotFound on the second call.
func (c *Client) DeleteRow(ctx context.Context, sheet string, rowNumber int) (map[string]any, error) {
	if err := validateRowNumber(rowNumber); err != nil {
		return nil, err
	}
	confirmation := map[string]any{}
	if err := c.do(ctx, http.MethodDelete, rowPath(sheet, rowNumber), nil, nil, &confirmation); err != nil {
		return nil, err
	}
	return confirmation, nil
}

// ListRows lists rows with optional pagination, ordering and field selection.
// The service caps the page size; callers paginate by issuing successive
// calls with increasing Skip values.
func (c *Client) ListRows(ctx context.Context, sheet string, opts *ListOptions) (*ListResult, error) {
	var result ListResult
	if err := c.do(ctx, http.MethodGet, sheetPath(sheet), opts.values(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchRows filters rows using a where clause serialized into the query
// string as JSON. The expression is sent as-is; the service is the sole
// arbiter of its validity.
func (c *Client) SearchRows(ctx context.Context, sheet string, where WhereClause, opts *ListOptions) (*ListResult, error) {
	query := opts.values()
	if where != nil {
		encoded, err := where.whereJSON()
		if err != nil {
			return nil, fmt.Errorf("sheetson: encode where clause: %w", err)
		}
		if encoded != "" {
			query.Set("where", encoded)
		}
	}
	var result ListResult
	if err := c.do(ctx, http.MethodGet, sheetPath(sheet), query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// do assembles and issues a single HTTP request. Read requests carry the API
// key as a query parameter, mutating requests as a Bearer token; the
// spreadsheet ID always travels in the X-Spreadsheet-Id header.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if query == nil {
		query = url.Values{}
	}
	mutating := method != http.MethodGet
	if !mutating {
		query.Set("apiKey", c.apiKey)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sheetson: encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("sheetson: build request: %w", err)
	}
	req.Header.Set("X-Spreadsheet-Id", c.spreadsheetID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if mutating {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Err(err).Msg("sheetson request failed")
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("sheetson request completed")

	if resp.StatusCode >= 400 {
		return &RemoteError{StatusCode: resp.StatusCode, Body: data}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("sheetson: decode response: %w", err)
	}
	return nil
}

func sheetPath(sheet string) string {
	return "/sheets/" + url.PathEscape(sheet)
}

func rowPath(sheet string, rowNumber int) string {
	return sheetPath(sheet) + "/" + strconv.Itoa(rowNumber)
}

func validateRowNumber(rowNumber int) error {
	if rowNumber < 2 {
		return fmt.Errorf("sheetson: row number must be 2 or greater, got %d (row 1 holds the headers)", rowNumber)
	}
	return nil
}
