// Package api is the gateway to the remote blog service. It knows how to build
// requests against the configured base URL and how to turn responses into
// values or *Error.
package api

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

	"github.com/google/uuid"
	"github.com/matheuskafuri/blogdesk/internal/logger"
)

// ErrInvalidPath is returned when a request path does not begin with "/".
var ErrInvalidPath = errors.New("request path must begin with \"/\"")

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// Client talks JSON to the remote service. It holds no per-request state and
// is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client. No timeout is applied by default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL is the normalised base URL requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one call. Body is pre-encoded JSON text; nil means no body.
type Request struct {
	Method string
	Path   string
	Body   []byte
	Header http.Header
}

// Response is a successful (2xx) reply.
type Response struct {
	Status int
	Raw    []byte
}

// Value returns the body parsed as JSON, the raw text when it is not JSON, or
// nil for an empty body.
func (r *Response) Value() any {
	return parseBody(r.Raw)
}

// Do performs the request. Non-2xx replies and transport failures come back as *Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if !strings.HasPrefix(req.Path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, req.Path)
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, transportError(err)
	}

	reqID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, reqID)
	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	log := c.log.With("request_id", reqID, "method", method, "path", req.Path)
	start := time.Now()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Debug("request failed", "error", err, "duration", time.Since(start))
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debug("reading body failed", "status", resp.StatusCode, "error", err)
		return nil, transportError(err)
	}

	level := slog.LevelDebug
	failed := resp.StatusCode < 200 || resp.StatusCode > 299
	if failed {
		level = slog.LevelWarn
	}
	log.Log(ctx, level, "request done", "status", resp.StatusCode, "bytes", len(raw), "duration", time.Since(start))

	if failed {
		return nil, &Error{
			Message: fmt.Sprintf("Request failed (%d)", resp.StatusCode),
			Status:  resp.StatusCode,
			Body:    parseBody(raw),
		}
	}
	return &Response{Status: resp.StatusCode, Raw: raw}, nil
}

// Fetch performs the request and decodes a 2xx JSON body into T. An empty body
// yields the zero T.
func Fetch[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T
	resp, err := c.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(resp.Raw)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Raw, &out); err != nil {
		return out, &Error{
			Message: fmt.Sprintf("Unexpected response (%d): %v", resp.Status, err),
			Status:  resp.Status,
			Body:    string(resp.Raw),
		}
	}
	return out, nil
}

// parseBody mirrors what a browser client does with response text: empty is
// nothing, JSON is decoded, anything else is kept as a string.
func parseBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
