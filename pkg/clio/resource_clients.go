package clio

import (
	"context"
	"io"
	"net/url"
)

// UsersClient accesses user accounts.
type UsersClient interface {
	WhoAmI(ctx context.Context) (*User, error)
	Get(ctx context.Context, id int64, params *QueryParams) (*User, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[User], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[User], error)
}

// ContactsClient accesses the address book.
type ContactsClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*Contact, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Contact], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Contact], error)
	Create(ctx context.Context, contact *Contact) (*Contact, error)
	Update(ctx context.Context, id int64, contact *Contact) (*Contact, error)
	Delete(ctx context.Context, id int64) error
}

// MattersClient accesses cases.
type MattersClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*Matter, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Matter], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Matter], error)
	Create(ctx context.Context, matter *Matter) (*Matter, error)
	Update(ctx context.Context, id int64, matter *Matter) (*Matter, error)
}

// CalendarsClient accesses calendars.
type CalendarsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Calendar], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Calendar], error)
}

// CalendarEntriesClient accesses calendar events.
type CalendarEntriesClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*CalendarEntry, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[CalendarEntry], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[CalendarEntry], error)
	Create(ctx context.Context, entry *CalendarEntry) (*CalendarEntry, error)
	Update(ctx context.Context, id int64, entry *CalendarEntry) (*CalendarEntry, error)
}

// ActivitiesClient accesses time and expense entries.
type ActivitiesClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*Activity, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Activity], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Activity], error)
	Create(ctx context.Context, activity *Activity) (*Activity, error)
	Update(ctx context.Context, id int64, activity *Activity) (*Activity, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityDescriptionsClient accesses reusable activity descriptions.
type ActivityDescriptionsClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*ActivityDescription, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[ActivityDescription], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[ActivityDescription], error)
	Create(ctx context.Context, description *ActivityDescription) (*ActivityDescription, error)
}

// DocumentsClient accesses stored documents.
type DocumentsClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*Document, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Document], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Document], error)
	Update(ctx context.Context, id int64, document *Document) (*Document, error)
	Delete(ctx context.Context, id int64) error

	// Download streams the latest version's content.
	Download(ctx context.Context, id int64) ([]byte, error)

	// Upload creates the document record, uploads the content to the issued
	// storage URL with the issued headers (unauthenticated by design), and
	// marks the version fully uploaded.
	Upload(ctx context.Context, name string, parent Parent, categoryID int64, content io.Reader) (*Document, error)
}

// FoldersClient accesses document folders.
type FoldersClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*Folder, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Folder], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Folder], error)
	ListContents(ctx context.Context, params *QueryParams) (*ListResponse[Document], error)
	Create(ctx context.Context, name string, parent Parent) (*Folder, error)
	Delete(ctx context.Context, id int64) error
}

// WebhooksClient accesses registered event callbacks.
type WebhooksClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*Webhook, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Webhook], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Webhook], error)
	Create(ctx context.Context, webhook *Webhook) (*Webhook, error)
	Update(ctx context.Context, id int64, webhook *Webhook) (*Webhook, error)
	Delete(ctx context.Context, id int64) error
}

// TasksClient accesses tasks.
type TasksClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Task], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Task], error)
	Create(ctx context.Context, task *Task) (*Task, error)
}

// NotesClient accesses notes.
type NotesClient interface {
	Create(ctx context.Context, note *Note) (*Note, error)
}

// BillsClient accesses invoices.
type BillsClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*Bill, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Bill], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[Bill], error)
	Update(ctx context.Context, id int64, bill *Bill) (*Bill, error)
	Delete(ctx context.Context, id int64) error
}

// LineItemsClient accesses bill line items.
type LineItemsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[LineItem], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[LineItem], error)
	Update(ctx context.Context, id int64, lineItem *LineItem) (*LineItem, error)
}

// CustomFieldsClient accesses user-defined fields.
type CustomFieldsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[CustomField], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[CustomField], error)
}

// CustomActionsClient accesses user-defined UI actions.
type CustomActionsClient interface {
	Get(ctx context.Context, id int64, params *QueryParams) (*CustomAction, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[CustomAction], error)
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[CustomAction], error)
	Create(ctx context.Context, action *CustomAction) (*CustomAction, error)
	Update(ctx context.Context, id int64, action *CustomAction) (*CustomAction, error)
	Delete(ctx context.Context, id int64) error
}
