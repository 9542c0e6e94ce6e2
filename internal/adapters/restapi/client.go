package restapi

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
	"strings"
	"time"

	"github.com/SscSPs/ledger_dashboard/internal/apperrors"
	"github.com/SscSPs/ledger_dashboard/internal/middleware"
)

const maxResponseBytes = 32 << 20

// Client talks JSON to the accounting API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// request describes one API call. fallback is the error text used when the
// API answers with an error but no message.
type request struct {
	method   string
	path     string
	token    string
	query    url.Values
	body     any
	fallback string
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", r.method, r.path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", r.method, r.path, err)
	}
	if len(r.query) > 0 {
		req.URL.RawQuery = r.query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("API request failed", slog.String("method", r.method), slog.String("api_path", r.path), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", r.fallback, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", r.method, r.path, err)
	}

	logger.Debug("API request completed",
		slog.String("method", r.method),
		slog.String("api_path", r.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp, data, r.fallback)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.method, r.path, err)
	}
	return nil
}

// decodeError builds the APIError for a non-2xx response. The body is read as
// {"error": "..."} whatever its Content-Type says; anything else gets fallback.
func decodeError(resp *http.Response, data []byte, fallback string) error {
	var body errorBody
	_ = json.Unmarshal(data, &body)
	return apperrors.NewAPIError(resp.StatusCode, body.Error, fallback)
}

// pageParams adds limit/offset when set.
func pageParams(q url.Values, limit, offset int) {
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func pathID(id string) string {
	return url.PathEscape(id)
}
