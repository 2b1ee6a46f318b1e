package clio

import "time"

// Resource represents the base structure for all Clio API records.
type Resource struct {
	ID        int64     `json:"id,omitempty"`
	Etag      string    `json:"etag,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Reference points at a related record by ID.
type Reference struct {
	ID int64 `json:"id"`
}

// Parent identifies a document or folder container. Type is "Folder" or
// "Matter".
type Parent struct {
	ID   int64  `json:"id"`
	Type string `json:"type,omitempty"`
}

// User represents a Clio user account.
type User struct {
	Resource

	Name             string `json:"name,omitempty"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Email            string `json:"email,omitempty"`
	Enabled          bool   `json:"enabled,omitempty"`
	SubscriptionType string `json:"subscription_type,omitempty"`
}

// Contact represents a person or company in the address book.
type Contact struct {
	Resource

	Name                string `json:"name,omitempty"`
	FirstName           string `json:"first_name,omitempty"`
	LastName            string `json:"last_name,omitempty"`
	Type                string `json:"type,omitempty"` // "Person" or "Company"
	Title               string `json:"title,omitempty"`
	PrimaryEmailAddress string `json:"primary_email_address,omitempty"`
	PrimaryPhoneNumber  string `json:"primary_phone_number,omitempty"`
}

// Matter represents a case.
type Matter struct {
	Resource

	DisplayNumber string     `json:"display_number,omitempty"`
	Number        int64      `json:"number,omitempty"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status,omitempty"` // "Pending", "Open", "Closed"
	OpenDate      string     `json:"open_date,omitempty"`
	CloseDate     string     `json:"close_date,omitempty"`
	Client        *Reference `json:"client,omitempty"`
}

// Calendar represents a calendar.
type Calendar struct {
	Resource

	Name       string `json:"name,omitempty"`
	Type       string `json:"type,omitempty"`
	Permission string `json:"permission,omitempty"`
}

// CalendarEntry represents an event on a calendar.
type CalendarEntry struct {
	Resource

	Summary       string     `json:"summary,omitempty"`
	Description   string     `json:"description,omitempty"`
	StartAt       time.Time  `json:"start_at,omitzero"`
	EndAt         time.Time  `json:"end_at,omitzero"`
	AllDay        bool       `json:"all_day,omitempty"`
	Location      string     `json:"location,omitempty"`
	CalendarOwner *Reference `json:"calendar_owner,omitempty"`
	Matter        *Reference `json:"matter,omitempty"`
}

// Activity represents a time or expense entry.
type Activity struct {
	Resource

	Type        string     `json:"type,omitempty"` // "TimeEntry" or "ExpenseEntry"
	Date        string     `json:"date,omitempty"`
	Quantity    float64    `json:"quantity,omitempty"`
	Price       float64    `json:"price,omitempty"`
	Total       float64    `json:"total,omitempty"`
	Note        string     `json:"note,omitempty"`
	NonBillable bool       `json:"non_billable,omitempty"`
	Matter      *Reference `json:"matter,omitempty"`
	User        *Reference `json:"user,omitempty"`
}

// ActivityDescription represents a reusable activity description.
type ActivityDescription struct {
	Resource

	Name    string  `json:"name,omitempty"`
	Rate    float64 `json:"rate,omitempty"`
	Default bool    `json:"default,omitempty"`
}

// PutHeader is a header the storage backend requires on a document upload.
type PutHeader struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DocumentVersion represents one uploaded version of a document.
type DocumentVersion struct {
	UUID          string      `json:"uuid,omitempty"`
	FullyUploaded bool        `json:"fully_uploaded,omitempty"`
	PutURL        string      `json:"put_url,omitempty"`
	PutHeaders    []PutHeader `json:"put_headers,omitempty"`
}

// Document represents a stored document.
type Document struct {
	Resource

	Name                  string           `json:"name,omitempty"`
	ContentType           string           `json:"content_type,omitempty"`
	Parent                *Parent          `json:"parent,omitempty"`
	DocumentCategory      *Reference       `json:"document_category,omitempty"`
	LatestDocumentVersion *DocumentVersion `json:"latest_document_version,omitempty"`
}

// Folder represents a document folder.
type Folder struct {
	Resource

	Name   string  `json:"name,omitempty"`
	Parent *Parent `json:"parent,omitempty"`
}

// Webhook represents a registered event callback.
type Webhook struct {
	Resource

	URL          string    `json:"url,omitempty"`
	Fields       string    `json:"fields,omitempty"`
	Events       []string  `json:"events,omitempty"`
	Model        string    `json:"model,omitempty"`
	Status       string    `json:"status,omitempty"`
	SharedSecret string    `json:"shared_secret,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
}

// Task represents a to-do assigned within the practice.
type Task struct {
	Resource

	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Status      string     `json:"status,omitempty"`
	DueAt       string     `json:"due_at,omitempty"`
	Matter      *Reference `json:"matter,omitempty"`
	Assignee    *Parent    `json:"assignee,omitempty"`
}

// Note represents a note attached to a matter or contact.
type Note struct {
	Resource

	Type    string     `json:"type,omitempty"` // "MatterNote" or "ContactNote"
	Subject string     `json:"subject,omitempty"`
	Detail  string     `json:"detail,omitempty"`
	Date    string     `json:"date,omitempty"`
	Matter  *Reference `json:"matter,omitempty"`
	Contact *Reference `json:"contact,omitempty"`
}

// Bill represents an invoice.
type Bill struct {
	Resource

	Number   string     `json:"number,omitempty"`
	IssuedAt string     `json:"issued_at,omitempty"`
	DueAt    string     `json:"due_at,omitempty"`
	State    string     `json:"state,omitempty"`
	Balance  float64    `json:"balance,omitempty"`
	Total    float64    `json:"total,omitempty"`
	Client   *Reference `json:"client,omitempty"`
}

// LineItem represents one line of a bill.
type LineItem struct {
	Resource

	Type        string  `json:"type,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Total       float64 `json:"total,omitempty"`
}

// CustomField represents a user-defined field on contacts or matters.
type CustomField struct {
	Resource

	Name       string `json:"name,omitempty"`
	ParentType string `json:"parent_type,omitempty"`
	FieldType  string `json:"field_type,omitempty"`
	Displayed  bool   `json:"displayed,omitempty"`
	Required   bool   `json:"required,omitempty"`
}

// CustomAction represents a user-defined action shown in the Clio UI.
type CustomAction struct {
	Resource

	Label      string `json:"label,omitempty"`
	TargetURL  string `json:"target_url,omitempty"`
	UILocation string `json:"ui_location,omitempty"`
}
