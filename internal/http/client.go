// Package http implements the transport under a clio.Session: retrying HTTP
// exchange, bearer-token authentication with refresh-and-retry-once on 401,
// and the per-token rate limiter gate.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/hyacinth-io/clio/internal/auth"
	"github.com/hyacinth-io/clio/internal/constants"
	"github.com/hyacinth-io/clio/internal/ratelimit"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// Request represents an outgoing API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger clio.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes transport-level retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithRateLimiter gates requests through a per-token limiter.
func WithRateLimiter(limiter *ratelimit.Limiter, failFast bool) Option {
	return func(c *Client) {
		c.limiter = limiter
		c.rateFailFast = failFast
	}
}

// WithHTTPTimeout sets the per-attempt timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// Client performs authenticated, rate-limited exchanges against the API.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	retryClient  *retryablehttp.Client
	limiter      *ratelimit.Limiter
	rateFailFast bool
	logger       clio.Logger
	debug        bool
	userAgent    string
}

// NewClient creates a client rooted at baseURL (the API base, e.g.
// "https://app.clio.com/api/v4"). A nil tokenManager sends unauthenticated
// requests, which is useful in tests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.CheckRetry = transientRetryPolicy

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		retryClient:  retryClient,
		userAgent:    "hyacinth-clio-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// transientRetryPolicy retries connection errors and 5xx only. Authentication
// failures and rate-limit responses are handled above this layer, once each.
func transientRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	return resp.StatusCode >= http.StatusInternalServerError, nil
}

// Do sends the request through the rate limiter with the current bearer
// token. On 401 it refreshes the token and retries the original request
// exactly once; a second 401 surfaces *clio.AuthError. On 429 it records the
// Retry-After hint with the limiter, then either waits and retries once or
// fails fast with *clio.RateLimitError. Retrying non-idempotent requests
// after a refresh relies on the remote API's own guarantees; no client-side
// deduplication is added.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, token, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.tokenManager != nil {
		resp, token, err = c.retryWithRefresh(ctx, req)
		if err != nil {
			return resp, err
		}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		resp, err = c.handleRateLimited(ctx, req, resp, token)
		if err != nil {
			return resp, err
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, clio.ParseAPIError(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

// retryWithRefresh refreshes the token pair and replays the request once.
func (c *Client) retryWithRefresh(ctx context.Context, req *Request) (*Response, string, error) {
	if c.logger != nil {
		c.logger.Info("refreshing token after 401", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	err := c.tokenManager.RefreshToken(ctx)
	if err != nil {
		authErr := &clio.AuthError{}
		if errors.As(err, &authErr) {
			return nil, "", authErr
		}

		return nil, "", fmt.Errorf("refreshing token: %w", err)
	}

	resp, token, err := c.send(ctx, req)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return resp, token, &clio.AuthError{Detail: "request unauthorized after token refresh"}
	}

	return resp, token, nil
}

// handleRateLimited honors the server's Retry-After over local accounting.
func (c *Client) handleRateLimited(ctx context.Context, req *Request, resp *Response, token string) (*Response, error) {
	retryAfter := parseRetryAfter(resp.Headers)
	c.limiter.Penalize(token, retryAfter)

	if c.logger != nil {
		c.logger.Warn("rate limit hit", map[string]interface{}{
			"path":        req.Path,
			"retry_after": retryAfter.String(),
		})
	}

	if c.rateFailFast || c.limiter == nil {
		return resp, &clio.RateLimitError{RetryAfter: retryAfter}
	}

	timer := time.NewTimer(retryAfter)
	select {
	case <-ctx.Done():
		timer.Stop()

		return resp, ctx.Err()
	case <-timer.C:
	}

	resp, token, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.Penalize(token, parseRetryAfter(resp.Headers))

		return resp, &clio.RateLimitError{RetryAfter: parseRetryAfter(resp.Headers)}
	}

	return resp, nil
}

// send performs one authenticated, rate-limited exchange and returns the
// token it used as the limiter key.
func (c *Client) send(ctx context.Context, req *Request) (*Response, string, error) {
	var token string

	if c.tokenManager != nil {
		var err error

		token, err = c.tokenManager.GetToken(ctx)
		if err != nil {
			authErr := &clio.AuthError{}
			if errors.As(err, &authErr) {
				return nil, "", authErr
			}

			return nil, "", fmt.Errorf("getting token: %w", err)
		}
	}

	err := c.limiter.Acquire(ctx, token)
	if err != nil {
		return nil, "", err
	}

	httpReq, err := c.buildRequest(ctx, req, token)
	if err != nil {
		return nil, "", err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         httpReq.URL.String(),
			"status_code": httpResp.StatusCode,
			"ratelimit":   httpResp.Header.Get(constants.HeaderRateLimitRemaining),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, token, nil
}

// buildRequest assembles the wire request with auth and standard headers.
func (c *Client) buildRequest(ctx context.Context, req *Request, token string) (*retryablehttp.Request, error) {
	fullURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var rawBody []byte

	if req.Body != nil {
		rawBody, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	var bodyReader io.Reader
	if rawBody != nil {
		bodyReader = bytes.NewReader(rawBody)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// buildURL resolves a relative resource path against the API base. Cursor
// URLs issued by the server are already complete and pass through untouched.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	var fullURL string

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		fullURL = path
	} else {
		fullURL = c.baseURL + "/" + strings.TrimPrefix(path, "/")
	}

	if len(query) == 0 {
		return fullURL, nil
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", fullURL, err)
	}

	merged := parsed.Query()
	for key, values := range query {
		for _, value := range values {
			merged.Add(key, value)
		}
	}

	parsed.RawQuery = merged.Encode()

	return parsed.String(), nil
}

// parseRetryAfter reads the Retry-After hint, defaulting to one second when
// the header is absent or malformed.
func parseRetryAfter(headers http.Header) time.Duration {
	value := headers.Get(constants.HeaderRetryAfter)
	if value == "" {
		return time.Second
	}

	seconds, err := strconv.Atoi(value)
	if err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	at, err := http.ParseTime(value)
	if err == nil {
		return time.Until(at)
	}

	return time.Second
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostWithQuery performs a POST request with a JSON body and query parameters.
func (c *Client) PostWithQuery(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// PatchWithQuery performs a PATCH request with a JSON body and query parameters.
func (c *Client) PatchWithQuery(ctx context.Context, path string, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Query: query, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
