package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyacinth-io/clio/internal/auth"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// tokenEndpoint is a fake OAuth2 token endpoint that counts hits and records
// the last grant it received.
type tokenEndpoint struct {
	hits     atomic.Int64
	mu       sync.Mutex
	lastForm map[string]string
	reject   bool
	response string
}

func (e *tokenEndpoint) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e.hits.Add(1)

		_ = r.ParseForm()

		e.mu.Lock()
		e.lastForm = map[string]string{}
		for key := range r.PostForm {
			e.lastForm[key] = r.PostForm.Get(key)
		}
		e.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		if e.reject {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": "invalid_grant", "error_description": "refresh token revoked"}`))

			return
		}

		response := e.response
		if response == "" {
			response = `{"access_token": "new-access", "refresh_token": "new-refresh", "token_type": "bearer", "expires_in": 3600}`
		}

		_, _ = w.Write([]byte(response))
	}
}

func (e *tokenEndpoint) form(key string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastForm[key]
}

func newManager(t *testing.T, endpoint *tokenEndpoint, token *clio.Token) *auth.OAuth2TokenManager {
	t.Helper()

	server := httptest.NewServer(endpoint.handler())
	t.Cleanup(server.Close)

	return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		TokenURL:     server.URL + "/oauth/token",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Token:        token,
	})
}

func TestGetToken_ValidTokenNeverRefreshed(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{}
	manager := newManager(t, endpoint, &clio.Token{
		AccessToken: "seed-access",
		ExpiresAt:   time.Now().Add(time.Hour),
	})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "seed-access", token)
	assert.Equal(t, int64(0), endpoint.hits.Load())
}

func TestGetToken_RefreshGrantUsedWhenPairHeld(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{}
	manager := newManager(t, endpoint, &clio.Token{
		AccessToken:  "stale-access",
		RefreshToken: "seed-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)

	assert.Equal(t, "refresh_token", endpoint.form("grant_type"))
	assert.Equal(t, "seed-refresh", endpoint.form("refresh_token"))
	assert.Equal(t, "client-id", endpoint.form("client_id"))
	assert.Equal(t, "client-secret", endpoint.form("client_secret"))
}

func TestGetToken_ClientCredentialsWhenNoPair(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{}
	manager := newManager(t, endpoint, nil)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)
	assert.Equal(t, "client_credentials", endpoint.form("grant_type"))
}

func TestGetToken_NoCredentials(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{}
	server := httptest.NewServer(endpoint.handler())
	t.Cleanup(server.Close)

	manager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		TokenURL: server.URL + "/oauth/token",
	})

	_, err := manager.GetToken(context.Background())

	authErr := &clio.AuthError{}
	require.ErrorAs(t, err, &authErr)
	require.ErrorIs(t, err, auth.ErrNoCredentials)
	assert.Equal(t, int64(0), endpoint.hits.Load())
}

func TestGetToken_RejectionSurfacesAuthError(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{reject: true}
	manager := newManager(t, endpoint, &clio.Token{
		AccessToken:  "stale-access",
		RefreshToken: "seed-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})

	_, err := manager.GetToken(context.Background())

	authErr := &clio.AuthError{}
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, authErr.Detail, "invalid_grant")
	assert.Contains(t, authErr.Detail, "refresh token revoked")
}

func TestGetToken_SingleFlight(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{}
	manager := newManager(t, endpoint, &clio.Token{
		AccessToken:  "stale-access",
		RefreshToken: "seed-refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})

	const workers = 16

	var waitGroup sync.WaitGroup

	tokens := make([]string, workers)
	errs := make([]error, workers)

	for i := range workers {
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()

			tokens[i], errs[i] = manager.GetToken(context.Background())
		}()
	}

	waitGroup.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, "new-access", tokens[i])
	}

	// Concurrent expiry detections coalesce into one endpoint call.
	assert.Equal(t, int64(1), endpoint.hits.Load())
}

func TestRefreshToken_RotationCallbackFiresExactlyOnce(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{}
	manager := newManager(t, endpoint, &clio.Token{
		AccessToken:  "seed-access",
		RefreshToken: "seed-refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	var calls atomic.Int64

	var rotated clio.Token

	manager.Store().OnRotate(func(token clio.Token) {
		calls.Add(1)

		rotated = token
	})

	// Construction does not count as a rotation.
	assert.Equal(t, int64(0), calls.Load())

	err := manager.RefreshToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, "new-access", rotated.AccessToken)
	assert.Equal(t, "new-refresh", rotated.RefreshToken)
}

func TestRefreshToken_PreservesRefreshTokenWhenOmitted(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{
		response: `{"access_token": "new-access", "token_type": "bearer", "expires_in": 3600}`,
	}
	manager := newManager(t, endpoint, &clio.Token{
		AccessToken:  "seed-access",
		RefreshToken: "seed-refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	})

	err := manager.RefreshToken(context.Background())
	require.NoError(t, err)

	current := manager.Store().Get()
	require.NotNil(t, current)
	assert.Equal(t, "new-access", current.AccessToken)
	assert.Equal(t, "seed-refresh", current.RefreshToken)
}

func TestRefreshToken_ComputesExpiry(t *testing.T) {
	t.Parallel()

	endpoint := &tokenEndpoint{}
	manager := newManager(t, endpoint, nil)

	err := manager.RefreshToken(context.Background())
	require.NoError(t, err)

	current := manager.Store().Get()
	require.NotNil(t, current)
	assert.False(t, current.ExpiresAt.IsZero())
	assert.True(t, current.Valid())
}
