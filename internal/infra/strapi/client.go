// Package strapi talks to the headless content service over its REST API.
package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"legalsite/config"
	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
)

// maxErrorBody bounds how much of a failed response is copied into the error.
const maxErrorBody = 512

// Envelope is the {data, meta} wrapper every content service response uses.
type Envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *Meta           `json:"meta,omitempty"`
}

// Meta carries response metadata.
type Meta struct {
	Pagination *entity.Pagination `json:"pagination,omitempty"`
}

// Fetcher issues requests against the content service.
type Fetcher interface {
	Fetch(ctx context.Context, path string, opts ...RequestOption) (*Envelope, error)
}

// Client is the HTTP client for the content service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// NewClient builds a client for baseURL. A nil httpClient gets one with the given timeout.
func NewClient(httpClient *http.Client, baseURL, token string, timeout time.Duration, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		logger:     logger,
	}
}

// NewClientFromConfig builds the client from the content section of the config.
func NewClientFromConfig(cfg *config.Config, logger *slog.Logger) *Client {
	return NewClient(nil, cfg.Content.BaseURL, cfg.Content.Token, cfg.Content.Timeout, logger)
}

// BaseURL returns the content service root without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type requestOptions struct {
	method string
	body   any
}

// RequestOption customizes a single Fetch call.
type RequestOption func(*requestOptions)

// WithMethod overrides the HTTP method (GET by default).
func WithMethod(method string) RequestOption {
	return func(o *requestOptions) {
		o.method = method
	}
}

// WithJSONBody sends payload encoded as JSON.
func WithJSONBody(payload any) RequestOption {
	return func(o *requestOptions) {
		o.body = payload
	}
}

// Fetch sends a request to baseURL+path and decodes the response envelope.
// Every failure is returned as a RemoteError; there is no retry.
func (c *Client) Fetch(ctx context.Context, path string, opts ...RequestOption) (*Envelope, error) {
	o := requestOptions{method: http.MethodGet}
	for _, opt := range opts {
		opt(&o)
	}

	var body io.Reader
	if o.body != nil {
		raw, err := json.Marshal(o.body)
		if err != nil {
			return nil, domainerrors.NewRemoteError(errors.WithStack(err), "encode request body for "+path)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, o.method, c.baseURL+path, body)
	if err != nil {
		return nil, domainerrors.NewRemoteError(errors.WithStack(err), "build request for "+path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.LoggerFrom(ctx, c.logger)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("content request failed",
			slog.String("method", o.method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewRemoteError(errors.WithStack(err), o.method+" "+path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Warn("content service returned error status",
			slog.String("method", o.method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.NewRemoteError(
			errors.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
			o.method+" "+path,
		)
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, domainerrors.NewRemoteError(errors.Wrap(err, "decode envelope"), o.method+" "+path)
	}

	logger.Debug("content request completed",
		slog.String("method", o.method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	return &env, nil
}

// MediaURL resolves an asset against this client's base URL.
func (c *Client) MediaURL(asset *entity.MediaAsset) (string, bool) {
	return ResolveMediaURL(c.baseURL, asset)
}

// ResolveMediaURL turns a site-relative asset path into an absolute URL.
// A nil asset or empty URL yields ("", false); absolute URLs pass through.
func ResolveMediaURL(base string, asset *entity.MediaAsset) (string, bool) {
	if asset == nil || asset.URL == "" {
		return "", false
	}

	url := asset.URL
	if strings.HasPrefix(url, "/") && !strings.HasPrefix(url, "//") {
		return strings.TrimRight(base, "/") + url, true
	}

	return url, true
}

var _ Fetcher = (*Client)(nil)
