package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"

	"github.com/hyacinth-io/clio/internal/auth"
	"github.com/hyacinth-io/clio/internal/constants"
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/internal/ratelimit"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// Session implements clio.Session. It owns the token manager, the per-token
// rate limiter, and the HTTP client shared by every resource client.
type Session struct {
	httpClient   *internalhttp.Client
	tokenManager *auth.OAuth2TokenManager
	limiter      *ratelimit.Limiter
	baseURL      string

	users                *UsersClient
	contacts             *ContactsClient
	matters              *MattersClient
	tasks                *TasksClient
	notes                *NotesClient
	calendars            *CalendarsClient
	calendarEntries      *CalendarEntriesClient
	activities           *ActivitiesClient
	activityDescriptions *ActivityDescriptionsClient
	documents            *DocumentsClient
	folders              *FoldersClient
	bills                *BillsClient
	lineItems            *LineItemsClient
	webhooks             *WebhooksClient
	customFields         *CustomFieldsClient
	customActions        *CustomActionsClient
}

// New creates a session for the given configuration. The base URL must
// already be resolved (region handling lives in pkg/clioclient).
func New(config *clio.Config, baseURL string) (*Session, error) {
	if config == nil {
		return nil, clio.ErrConfigRequired
	}

	if config.Token == nil && (config.ClientID == "" || config.ClientSecret == "") {
		return nil, clio.ErrCredentialsRequired
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	tokenManager := auth.NewOAuth2TokenManager(&auth.OAuth2Config{
		TokenURL:     baseURL + constants.TokenEndpointPath,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Token:        config.Token,
	})

	limiter := newLimiter(config)
	wireRotation(config, tokenManager, limiter)

	httpClient := internalhttp.NewClient(
		baseURL+constants.APIPrefix,
		tokenManager,
		httpClientOptions(config, limiter)...,
	)

	session := &Session{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		limiter:      limiter,
		baseURL:      baseURL,
	}
	session.initializeResourceClients()

	return session, nil
}

func newLimiter(config *clio.Config) *ratelimit.Limiter {
	if config.RateLimit <= 0 {
		return nil
	}

	window := config.RateWindow
	if window <= 0 {
		window = constants.DefaultRateWindow
	}

	return ratelimit.New(ratelimit.Config{
		Limit:    config.RateLimit,
		Window:   window,
		FailFast: config.RateFailFast,
	})
}

// wireRotation registers the session's own rotation bookkeeping first, then
// the caller's callback, so the old token's rate budget is released before
// the caller observes the new pair.
func wireRotation(config *clio.Config, tokenManager *auth.OAuth2TokenManager, limiter *ratelimit.Limiter) {
	if limiter != nil {
		var mu sync.Mutex

		previous := ""
		if config.Token != nil {
			previous = config.Token.AccessToken
		}

		tokenManager.Store().OnRotate(func(token clio.Token) {
			mu.Lock()
			old := previous
			previous = token.AccessToken
			mu.Unlock()

			if old != "" {
				limiter.Forget(old)
			}
		})
	}

	if config.OnTokenRotate != nil {
		tokenManager.Store().OnRotate(config.OnTokenRotate)
	}
}

func httpClientOptions(config *clio.Config, limiter *ratelimit.Limiter) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if limiter != nil {
		opts = append(opts, internalhttp.WithRateLimiter(limiter, config.RateFailFast))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithHTTPTimeout(config.HTTPTimeout))
	}

	return opts
}

func (s *Session) initializeResourceClients() {
	s.users = NewUsersClient(s.httpClient)
	s.contacts = NewContactsClient(s.httpClient)
	s.matters = NewMattersClient(s.httpClient)
	s.tasks = NewTasksClient(s.httpClient)
	s.notes = NewNotesClient(s.httpClient)
	s.calendars = NewCalendarsClient(s.httpClient)
	s.calendarEntries = NewCalendarEntriesClient(s.httpClient)
	s.activities = NewActivitiesClient(s.httpClient)
	s.activityDescriptions = NewActivityDescriptionsClient(s.httpClient)
	s.documents = NewDocumentsClient(s.httpClient)
	s.folders = NewFoldersClient(s.httpClient)
	s.bills = NewBillsClient(s.httpClient)
	s.lineItems = NewLineItemsClient(s.httpClient)
	s.webhooks = NewWebhooksClient(s.httpClient)
	s.customFields = NewCustomFieldsClient(s.httpClient)
	s.customActions = NewCustomActionsClient(s.httpClient)
}

// Users returns the users client.
func (s *Session) Users() clio.UsersClient { return s.users }

// Contacts returns the contacts client.
func (s *Session) Contacts() clio.ContactsClient { return s.contacts }

// Matters returns the matters client.
func (s *Session) Matters() clio.MattersClient { return s.matters }

// Tasks returns the tasks client.
func (s *Session) Tasks() clio.TasksClient { return s.tasks }

// Notes returns the notes client.
func (s *Session) Notes() clio.NotesClient { return s.notes }

// Calendars returns the calendars client.
func (s *Session) Calendars() clio.CalendarsClient { return s.calendars }

// CalendarEntries returns the calendar entries client.
func (s *Session) CalendarEntries() clio.CalendarEntriesClient { return s.calendarEntries }

// Activities returns the activities client.
func (s *Session) Activities() clio.ActivitiesClient { return s.activities }

// ActivityDescriptions returns the activity descriptions client.
func (s *Session) ActivityDescriptions() clio.ActivityDescriptionsClient {
	return s.activityDescriptions
}

// Documents returns the documents client.
func (s *Session) Documents() clio.DocumentsClient { return s.documents }

// Folders returns the folders client.
func (s *Session) Folders() clio.FoldersClient { return s.folders }

// Bills returns the bills client.
func (s *Session) Bills() clio.BillsClient { return s.bills }

// LineItems returns the line items client.
func (s *Session) LineItems() clio.LineItemsClient { return s.lineItems }

// Webhooks returns the webhooks client.
func (s *Session) Webhooks() clio.WebhooksClient { return s.webhooks }

// CustomFields returns the custom fields client.
func (s *Session) CustomFields() clio.CustomFieldsClient { return s.customFields }

// CustomActions returns the custom actions client.
func (s *Session) CustomActions() clio.CustomActionsClient { return s.customActions }

// WhoAmI returns the currently authenticated user.
func (s *Session) WhoAmI(ctx context.Context) (*clio.User, error) {
	return s.users.WhoAmI(ctx)
}

// AccessToken returns the session's current access token, refreshing first
// when the held pair has expired.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	return s.tokenManager.GetToken(ctx)
}

// Get performs a raw GET against a relative API path.
func (s *Session) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	resp, err := s.httpClient.Get(ctx, normalizePath(path), query)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body), nil
}

// Post performs a raw POST against a relative API path.
func (s *Session) Post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	resp, err := s.httpClient.Post(ctx, normalizePath(path), body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body), nil
}

// Patch performs a raw PATCH against a relative API path.
func (s *Session) Patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	resp, err := s.httpClient.Patch(ctx, normalizePath(path), body)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body), nil
}

// Delete performs a raw DELETE against a relative API path.
func (s *Session) Delete(ctx context.Context, path string) error {
	_, err := s.httpClient.Delete(ctx, normalizePath(path))

	return err
}
