package clio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError represents a non-auth 4xx/5xx error from the Clio API. It carries
// the HTTP status plus the decoded error envelope when the body was JSON.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	Body       []byte `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Type != "" || e.Message != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Type, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("api error (status: %d)", e.StatusCode)
}

// AuthError represents a fatal authentication failure: the token refresh was
// rejected, or a request retried with a freshly refreshed token still came
// back unauthenticated.
type AuthError struct {
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Detail, e.Err)
	}

	return "authentication failed: " + e.Detail
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// RateLimitError is returned in fail-fast mode when a request would exceed
// the rate budget, or when the server answered 429. RetryAfter carries the
// wait hint (server-issued when available, local window remainder otherwise).
type RateLimitError struct {
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrCredentialsRequired = errors.New("client ID and client secret are required")
	ErrNoToken             = errors.New("no token available")
	ErrNoRefreshToken      = errors.New("no refresh token available")
	ErrNoMoreItems         = errors.New("no more items")
	ErrUploadIncomplete    = errors.New("document upload incomplete")
)

// errorEnvelope is Clio's error response shape.
type errorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ParseAPIError builds an APIError from a response status and body. A body
// that is not Clio's JSON error envelope is preserved verbatim.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Type = envelope.Error.Type
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	authErr := &AuthError{}
	if errors.As(err, &authErr) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited checks if the error is a rate limit rejection.
func IsRateLimited(err error) bool {
	rateErr := &RateLimitError{}
	if errors.As(err, &rateErr) {
		return true
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}
