package clio_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyacinth-io/clio/pkg/clio"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantType    string
		wantMessage string
		wantError   string
	}{
		{
			name:        "clio error envelope",
			statusCode:  404,
			body:        `{"error": {"type": "NotFound", "message": "Matter not found"}}`,
			wantType:    "NotFound",
			wantMessage: "Matter not found",
			wantError:   "NotFound: Matter not found (status: 404)",
		},
		{
			name:       "non-json body preserved",
			statusCode: 502,
			body:       "Bad Gateway",
			wantError:  "api error (status: 502)",
		},
		{
			name:       "empty body",
			statusCode: 422,
			body:       "",
			wantError:  "api error (status: 422)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr := clio.ParseAPIError(tt.statusCode, []byte(tt.body))

			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.wantType, apiErr.Type)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantError, apiErr.Error())
			assert.Equal(t, []byte(tt.body), apiErr.Body)
		})
	}
}

func TestAuthError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("invalid_grant: refresh token revoked")
	authErr := &clio.AuthError{Detail: "token refresh rejected", Err: underlying}

	assert.Equal(t, "authentication failed: token refresh rejected: invalid_grant: refresh token revoked", authErr.Error())
	require.ErrorIs(t, authErr, underlying)

	bare := &clio.AuthError{Detail: "request unauthorized after token refresh"}
	assert.Equal(t, "authentication failed: request unauthorized after token refresh", bare.Error())
}

func TestRateLimitError(t *testing.T) {
	t.Parallel()

	rateErr := &clio.RateLimitError{RetryAfter: 42 * time.Second}
	assert.Equal(t, "rate limit exceeded, retry after 42s", rateErr.Error())
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := clio.ParseAPIError(404, nil)
	unauthorized := clio.ParseAPIError(401, nil)
	tooMany := clio.ParseAPIError(429, nil)
	authErr := &clio.AuthError{Detail: "refresh rejected"}
	rateErr := &clio.RateLimitError{RetryAfter: time.Second}

	assert.True(t, clio.IsNotFound(notFound))
	assert.False(t, clio.IsNotFound(unauthorized))

	assert.True(t, clio.IsUnauthorized(unauthorized))
	assert.True(t, clio.IsUnauthorized(authErr))
	assert.False(t, clio.IsUnauthorized(notFound))

	assert.True(t, clio.IsRateLimited(tooMany))
	assert.True(t, clio.IsRateLimited(rateErr))
	assert.False(t, clio.IsRateLimited(notFound))
}

func TestErrorPredicates_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("listing contacts: %w", clio.ParseAPIError(404, nil))
	assert.True(t, clio.IsNotFound(wrapped))

	wrappedAuth := fmt.Errorf("refreshing token: %w", &clio.AuthError{Detail: "rejected"})
	assert.True(t, clio.IsUnauthorized(wrappedAuth))
}
