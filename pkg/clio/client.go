package clio

import (
	"context"
	"encoding/json"
	"net/url"
	"time"
)

// PracticeResourceClients provides access to practice-management resource clients.
type PracticeResourceClients interface {
	Users() UsersClient
	Contacts() ContactsClient
	Matters() MattersClient
	Tasks() TasksClient
	Notes() NotesClient
}

// CalendarResourceClients provides access to calendaring resource clients.
type CalendarResourceClients interface {
	Calendars() CalendarsClient
	CalendarEntries() CalendarEntriesClient
}

// ActivityResourceClients provides access to time-tracking resource clients.
type ActivityResourceClients interface {
	Activities() ActivitiesClient
	ActivityDescriptions() ActivityDescriptionsClient
}

// DocumentResourceClients provides access to document-management resource clients.
type DocumentResourceClients interface {
	Documents() DocumentsClient
	Folders() FoldersClient
}

// BillingResourceClients provides access to billing resource clients.
type BillingResourceClients interface {
	Bills() BillsClient
	LineItems() LineItemsClient
}

// IntegrationResourceClients provides access to integration resource clients.
type IntegrationResourceClients interface {
	Webhooks() WebhooksClient
	CustomFields() CustomFieldsClient
	CustomActions() CustomActionsClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	PracticeResourceClients
	CalendarResourceClients
	ActivityResourceClients
	DocumentResourceClients
	BillingResourceClients
	IntegrationResourceClients
}

// RawClient exposes generic request methods for endpoints without a dedicated
// resource client. Paths are relative to the API base (e.g. "matters/123").
type RawClient interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error)
	Delete(ctx context.Context, path string) error
}

// Session is the façade external callers interact with. Every call is routed
// through the session's rate limiter and bearer-token authentication, with a
// single automatic refresh-and-retry on authentication failure.
type Session interface {
	ResourceClients
	RawClient

	// WhoAmI returns the currently authenticated user.
	WhoAmI(ctx context.Context) (*User, error)

	// AccessToken returns the session's current access token, refreshing it
	// first if it has expired.
	AccessToken(ctx context.Context) (string, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents session configuration for building a clio.Session.
//
// # Authentication
//
// Clio issues tokens through the OAuth2 authorization-code flow, so a session
// is normally constructed with a previously obtained Token plus the ClientID/
// ClientSecret needed to refresh it. When the access token expires, or a
// request comes back 401, the session refreshes it using the refresh_token
// grant and retries the request once. If no Token is supplied, the session
// falls back to the client_credentials grant on first use.
//
// Rotated tokens are delivered to OnTokenRotate synchronously before any
// request proceeds with the new token; persisting them durably is the
// caller's responsibility.
//
// # Rate limiting
//
// Clio budgets requests per access token. RateLimit/RateWindow configure the
// session's local budget; when the server answers 429 with a Retry-After
// hint, the hint overrides local accounting for the next request. With
// RateFailFast set, a request that would exceed the budget fails with
// *RateLimitError instead of waiting.
type Config struct {
	// Region selects the Clio deployment: "US" (default), "CA", "EU", or
	// "AU". An unknown region falls back to US with a warning log.
	Region string
	// BaseURL overrides the region-derived base URL (e.g. for tests).
	BaseURL string

	// ClientID is the OAuth2 client ID registered with Clio.
	ClientID string
	// ClientSecret is the OAuth2 client secret used with ClientID.
	ClientSecret string
	// Token is an optional pre-existing token pair. A valid access token
	// supplied here is used as-is and never refreshed until it expires.
	Token *Token
	// OnTokenRotate is invoked with every rotated token pair, synchronously,
	// before the refreshed token is used for any request.
	OnTokenRotate func(Token)

	// RateLimit is the number of requests allowed per RateWindow per access
	// token. Zero disables client-side rate limiting.
	RateLimit int
	// RateWindow is the budget window duration. Defaults to one minute when
	// RateLimit is set.
	RateWindow time.Duration
	// RateFailFast makes Acquire fail with *RateLimitError instead of
	// waiting for window capacity.
	RateFailFast bool

	// RetryMax is the maximum number of transport-level retries for
	// transient failures (connection errors and 5xx). If 0, a default is
	// used.
	RetryMax int
	// RetryWaitMin is the minimum backoff between transport retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between transport retries.
	RetryWaitMax time.Duration

	// HTTPTimeout is the per-request timeout. Most callers should rely on
	// context deadlines instead.
	HTTPTimeout time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
