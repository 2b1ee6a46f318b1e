package clioclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyacinth-io/clio/pkg/clio"
	"github.com/hyacinth-io/clio/pkg/clioclient"
)

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Debug(string, map[string]interface{}) {}
func (l *recordingLogger) Info(string, map[string]interface{})  {}
func (l *recordingLogger) Error(string, map[string]interface{}) {}

func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) warned() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.warnings
}

func testToken() *clio.Token {
	return &clio.Token{
		AccessToken:  "test-access",
		RefreshToken: "test-refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := clioclient.New(nil)
	require.ErrorIs(t, err, clio.ErrConfigRequired)

	_, err = clioclient.New(&clio.Config{Region: "US"})
	require.ErrorIs(t, err, clio.ErrCredentialsRequired)
}

func TestNew_KnownRegions(t *testing.T) {
	t.Parallel()

	for _, region := range []string{"", "US", "CA", "EU", "AU", "eu"} {
		logger := &recordingLogger{}

		_, err := clioclient.New(&clio.Config{
			Region: region,
			Token:  testToken(),
			Logger: logger,
		})
		require.NoError(t, err)
		assert.Empty(t, logger.warned(), "region %q", region)
	}
}

func TestNew_UnknownRegionFallsBackToUS(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}

	_, err := clioclient.New(&clio.Config{
		Region: "MARS",
		Token:  testToken(),
		Logger: logger,
	})
	require.NoError(t, err)
	require.Len(t, logger.warned(), 1)
	assert.Contains(t, logger.warned()[0], "unknown region")
}

func TestNew_BaseURLOverride(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v4/users/who_am_i.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"id": 1, "name": "Jane Lawyer"}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	session, err := clioclient.New(&clio.Config{
		BaseURL: server.URL,
		Token:   testToken(),
	})
	require.NoError(t, err)

	user, err := session.WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Lawyer", user.Name)
}

func TestNewWithClientCredentials(t *testing.T) {
	t.Parallel()

	session, err := clioclient.NewWithClientCredentials("US", "client-id", "client-secret")
	require.NoError(t, err)
	assert.NotNil(t, session)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	session, err := clioclient.NewWithToken("CA", "client-id", "client-secret", testToken())
	require.NoError(t, err)

	token, err := session.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-access", token)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("CLIO_REGION", "EU")
	t.Setenv("CLIO_ACCESS_TOKEN", "env-access")
	t.Setenv("CLIO_REFRESH_TOKEN", "env-refresh")
	t.Setenv("CLIO_CLIENT_ID", "env-client")
	t.Setenv("CLIO_CLIENT_SECRET", "env-secret")
	t.Setenv("CLIO_RATE_LIMIT", "50")
	t.Setenv("CLIO_RATE_WINDOW", "30s")

	session, err := clioclient.NewFromEnv()
	require.NoError(t, err)

	token, err := session.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-access", token)
}

func TestNewFromEnv_MissingCredentials(t *testing.T) {
	t.Setenv("CLIO_REGION", "US")
	t.Setenv("CLIO_ACCESS_TOKEN", "")
	t.Setenv("CLIO_REFRESH_TOKEN", "")
	t.Setenv("CLIO_CLIENT_ID", "")
	t.Setenv("CLIO_CLIENT_SECRET", "")

	_, err := clioclient.NewFromEnv()
	require.ErrorIs(t, err, clio.ErrCredentialsRequired)
}
