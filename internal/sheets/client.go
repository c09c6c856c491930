package sheets

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

	"warga-portal-svc/pkg/logger"
)

// Config holds Google Sheets API configuration
type Config struct {
	APIKey        string
	SpreadsheetID string
	BaseURL       string
}

// Row is a single sheet record keyed by header name. Cell values are either
// string or float64 depending on the coercion heuristic.
type Row map[string]interface{}

// Client reads and writes tabular ranges through the Sheets values API
type Client struct {
	config     Config
	httpClient *http.Client
	cache      *Cache
	logger     *logger.Logger
}

// NewClient creates a new sheets client. The cache may be nil.
func NewClient(config Config, cache *Cache, logger *logger.Logger) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		logger:     logger,
	}
}

// valuesResponse is the Sheets API values payload
type valuesResponse struct {
	Range          string          `json:"range"`
	MajorDimension string          `json:"majorDimension"`
	Values         [][]interface{} `json:"values"`
}

// ReadTable fetches a named range, treating the first row as headers.
// The returned error signals a transport or upstream failure; callers that
// must not fail (list endpoints) convert it to an empty result after logging.
func (c *Client) ReadTable(ctx context.Context, table string) ([]Row, error) {
	if rows, ok := c.cache.Get(ctx, table); ok {
		return rows, nil
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.config.BaseURL, c.config.SpreadsheetID, url.PathEscape(table), url.QueryEscape(c.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet %s: %w", table, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(map[string]interface{}{
			"table":       table,
			"status_code": resp.StatusCode,
			"response":    string(body),
		}).Error("Sheets API returned an error")
		return nil, fmt.Errorf("sheets API returned status %d for table %s", resp.StatusCode, table)
	}

	var payload valuesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse sheet response: %w", err)
	}

	rows := rowsFromValues(payload.Values)

	c.logger.WithFields(map[string]interface{}{
		"table": table,
		"count": len(rows),
	}).Debug("Sheet table fetched")

	c.cache.Set(ctx, table, rows)

	return rows, nil
}

// RefreshTable drops any cached copy of a table and re-reads it from the
// API, so callers warming the cache always repopulate it
func (c *Client) RefreshTable(ctx context.Context, table string) ([]Row, error) {
	c.cache.Invalidate(ctx, table)
	return c.ReadTable(ctx, table)
}

// AppendRow appends a record to the end of a table
func (c *Client) AppendRow(ctx context.Context, table string, values []interface{}) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW&key=%s",
		c.config.BaseURL, c.config.SpreadsheetID, url.PathEscape(table), url.QueryEscape(c.config.APIKey))

	if err := c.writeValues(ctx, http.MethodPost, endpoint, values); err != nil {
		return err
	}

	c.cache.Invalidate(ctx, table)
	return nil
}

// UpdateRow overwrites a record in place. rowNumber is 1-based and includes
// the header row, so the first data row is 2.
func (c *Client) UpdateRow(ctx context.Context, table string, rowNumber int, values []interface{}) error {
	rng := fmt.Sprintf("%s!A%d", table, rowNumber)
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW&key=%s",
		c.config.BaseURL, c.config.SpreadsheetID, url.PathEscape(rng), url.QueryEscape(c.config.APIKey))

	if err := c.writeValues(ctx, http.MethodPut, endpoint, values); err != nil {
		return err
	}

	c.cache.Invalidate(ctx, table)
	return nil
}

// writeValues sends a single-row values payload to the API
func (c *Client) writeValues(ctx context.Context, method, endpoint string, values []interface{}) error {
	payload := map[string]interface{}{
		"values": [][]interface{}{values},
	}
	bodyJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal values payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(bodyJSON))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to write sheet values: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read sheet response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(map[string]interface{}{
			"status_code": resp.StatusCode,
			"response":    string(body),
		}).Error("Sheets API write failed")
		return fmt.Errorf("sheets API returned status %d", resp.StatusCode)
	}

	return nil
}

// rowsFromValues converts the raw values grid into header-keyed rows
func rowsFromValues(values [][]interface{}) []Row {
	if len(values) < 2 {
		return []Row{}
	}

	headers := make([]string, len(values[0]))
	for i, cell := range values[0] {
		headers[i] = strings.TrimSpace(fmt.Sprint(cell))
	}

	rows := make([]Row, 0, len(values)-1)
	for _, record := range values[1:] {
		row := Row{}
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = coerceCell(fmt.Sprint(record[i]))
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// maxExactInteger is the largest integer float64 represents exactly (2^53).
// Identifier cells above it, like NIK values for province codes 91-94, must
// stay text or the round-trip through float64 would alter their digits.
const maxExactInteger = 1 << 53

// coerceCell converts plain numeric cells to float64 while keeping values
// like phone numbers and codes as text. A leading zero (other than the
// literal "0"), a sign or an exponent character disqualifies coercion, so
// "08123456789" and "1e10" survive as strings. Integers beyond float64's
// exact range also stay text.
func coerceCell(value string) interface{} {
	if value == "" {
		return value
	}
	if strings.ContainsAny(value, "+-eE") {
		return value
	}
	if len(value) > 1 && strings.HasPrefix(value, "0") {
		return value
	}
	if !strings.Contains(value, ".") {
		integer, err := strconv.ParseInt(value, 10, 64)
		if err != nil || integer > maxExactInteger {
			return value
		}
		return float64(integer)
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}
	return number
}
