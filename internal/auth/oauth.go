package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hyacinth-io/clio/internal/constants"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials = errors.New("no valid credentials available")
)

// TokenManager provides access tokens for outgoing requests.
type TokenManager interface {
	// GetToken returns a valid access token, refreshing first if necessary.
	GetToken(ctx context.Context) (string, error)

	// RefreshToken forces a refresh, e.g. after a 401 on a token the local
	// expiry metadata still considered valid.
	RefreshToken(ctx context.Context) error
}

// OAuth2Config configures the OAuth2 token manager.
type OAuth2Config struct {
	// TokenURL is the full token endpoint URL.
	TokenURL string
	// ClientID and ClientSecret identify the application to Clio. They are
	// sent as form parameters on every grant, per Clio's token endpoint.
	ClientID     string
	ClientSecret string
	// Token optionally seeds the manager with a pre-existing pair. A valid
	// pair is used as-is and not refreshed until it expires.
	Token *clio.Token
	// HTTPClient overrides the client used for token endpoint requests.
	HTTPClient *http.Client
}

// OAuth2TokenManager owns the token pair lifecycle: acquisition, refresh, and
// rotation notification. Refresh is single-flight: concurrent expiry
// detections coalesce into one token endpoint call, and every waiter receives
// the identical resulting pair.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	group      singleflight.Group
	httpClient *http.Client
}

// NewOAuth2TokenManager creates a new OAuth2 token manager.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.TokenHTTPTimeout}
	}

	manager := &OAuth2TokenManager{
		config:     config,
		store:      NewTokenStore(),
		httpClient: httpClient,
	}

	if config.Token != nil {
		manager.store.Set(config.Token)
	}

	return manager
}

// Store exposes the underlying token store for rotation subscriptions.
func (m *OAuth2TokenManager) Store() *TokenStore {
	return m.store
}

// GetToken returns the current access token, refreshing it when the held
// pair is absent or expired.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	refreshed, err := m.refreshShared(ctx)
	if err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

// RefreshToken forces a token refresh.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	_, err := m.refreshShared(ctx, forceRefresh)

	return err
}

type refreshMode int

const forceRefresh refreshMode = 1

// refreshShared coalesces concurrent refresh attempts into one network call.
func (m *OAuth2TokenManager) refreshShared(ctx context.Context, mode ...refreshMode) (*clio.Token, error) {
	force := len(mode) > 0 && mode[0] == forceRefresh
	before := m.store.Get()

	result, err, _ := m.group.Do("refresh", func() (interface{}, error) {
		// A waiter queued behind a completed refresh must not trigger a
		// second one: re-check the store inside the flight.
		current := m.store.Get()
		if current != before && current.Valid() {
			return current, nil
		}

		if !force && current.Valid() {
			return current, nil
		}

		return m.refresh(ctx, current)
	})
	if err != nil {
		return nil, err
	}

	token, ok := result.(*clio.Token)
	if !ok || token == nil {
		return nil, ErrNoCredentials
	}

	return token, nil
}

// refresh performs one token endpoint round-trip and rotates the store.
func (m *OAuth2TokenManager) refresh(ctx context.Context, current *clio.Token) (*clio.Token, error) {
	form := url.Values{}

	switch {
	case current != nil && current.RefreshToken != "":
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", current.RefreshToken)
	case m.config.ClientID != "" && m.config.ClientSecret != "":
		form.Set("grant_type", "client_credentials")
	default:
		return nil, &clio.AuthError{Detail: "cannot refresh", Err: ErrNoCredentials}
	}

	form.Set("client_id", m.config.ClientID)
	form.Set("client_secret", m.config.ClientSecret)

	token, err := m.requestToken(ctx, form)
	if err != nil {
		return nil, err
	}

	// Clio may omit the refresh token on rotation; the previous one stays
	// valid in that case.
	if token.RefreshToken == "" && current != nil {
		token.RefreshToken = current.RefreshToken
	}

	m.store.Rotate(token)

	return token, nil
}

// requestToken POSTs the grant to the token endpoint and decodes the pair.
func (m *OAuth2TokenManager) requestToken(ctx context.Context, form url.Values) (*clio.Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &clio.AuthError{Detail: tokenErrorDetail(resp.StatusCode, body)}
	}

	var token clio.Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.ExpiresAt.IsZero() && token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}

// tokenErrorDetail extracts the OAuth2 error fields from a rejection body.
func tokenErrorDetail(statusCode int, body []byte) string {
	var oauthErr struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}

	err := json.Unmarshal(body, &oauthErr)
	if err != nil || oauthErr.Error == "" {
		return fmt.Sprintf("token endpoint returned status %d", statusCode)
	}

	return fmt.Sprintf("%s: %s", oauthErr.Error, oauthErr.ErrorDescription)
}
