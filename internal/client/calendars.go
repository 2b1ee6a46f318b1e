package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// CalendarsClient implements clio.CalendarsClient.
type CalendarsClient struct {
	*resourceClient[clio.Calendar]
}

// NewCalendarsClient creates a calendars client.
func NewCalendarsClient(httpClient *internalhttp.Client) *CalendarsClient {
	return &CalendarsClient{newResourceClient[clio.Calendar](httpClient, "calendars", "calendar")}
}

// CalendarEntriesClient implements clio.CalendarEntriesClient.
type CalendarEntriesClient struct {
	*resourceClient[clio.CalendarEntry]
}

// NewCalendarEntriesClient creates a calendar entries client.
func NewCalendarEntriesClient(httpClient *internalhttp.Client) *CalendarEntriesClient {
	return &CalendarEntriesClient{newResourceClient[clio.CalendarEntry](httpClient, "calendar_entries", "calendar entry")}
}
