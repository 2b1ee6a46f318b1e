package clio

// Envelope wraps a single resource in Clio's response/request shape:
// {"data": {...}}.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// ListResponse represents a paginated collection response.
type ListResponse[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Meta carries collection metadata.
type Meta struct {
	Paging  *Paging `json:"paging,omitempty"`
	Records *int    `json:"records,omitempty"`
}

// Paging carries cursor links. Next and Previous are opaque server-issued
// URLs; an absent Next marks the final page.
type Paging struct {
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
}

// NextCursor returns the opaque cursor for the following page, or "" on the
// final page. The cursor is the sole termination signal: a page may be empty
// and still carry a cursor.
func (l *ListResponse[T]) NextCursor() string {
	if l == nil || l.Meta.Paging == nil {
		return ""
	}

	return l.Meta.Paging.Next
}

// HasNext reports whether a further page exists.
func (l *ListResponse[T]) HasNext() bool {
	return l.NextCursor() != ""
}
