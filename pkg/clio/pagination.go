package clio

import (
	"context"
	"net/url"
)

// PageLister fetches one page of a collection endpoint. The path is either a
// relative resource path ("contacts") for the first page or an opaque
// server-issued cursor URL for subsequent pages.
type PageLister[T any] interface {
	ListWithPath(ctx context.Context, path string, query url.Values) (*ListResponse[T], error)
}

// PageIterator walks a cursor-paginated collection lazily, one record at a
// time. It is forward-only; call Reset to restart from the first page. Each
// page is fetched at most once per run: the cursor returned with a page is
// consumed exactly once to fetch the following page. Abandoning the iterator
// issues no further requests.
type PageIterator[T any] struct {
	ctx    context.Context
	client PageLister[T]
	path   string
	query  url.Values

	started bool
	cursor  string
	buffer  []T
	index   int
	err     error
}

// NewPageIterator creates an iterator over the collection at path.
func NewPageIterator[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams) *PageIterator[T] {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	return &PageIterator[T]{
		ctx:    ctx,
		client: client,
		path:   path,
		query:  query,
	}
}

// HasNext reports whether another record is available, fetching pages as
// needed. An empty page that still carries a cursor does not terminate the
// iteration; only an absent cursor does. A fetch failure makes HasNext return
// true so the error is observable via Next.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	for it.index >= len(it.buffer) {
		if it.started && it.cursor == "" {
			return false
		}

		if !it.fetchNextPage() {
			return true
		}
	}

	return true
}

// Next returns the next record. It returns ErrNoMoreItems once the final
// page's records are exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All collects every remaining record across all remaining pages.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining record, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Reset restarts the iteration from the first page. Mid-stream resumption is
// not supported; cursors are single-use.
func (it *PageIterator[T]) Reset() {
	it.started = false
	it.cursor = ""
	it.buffer = nil
	it.index = 0
	it.err = nil
}

// fetchNextPage issues exactly one page request and reports success.
func (it *PageIterator[T]) fetchNextPage() bool {
	path := it.path
	query := it.query

	if it.started {
		// The cursor is a complete opaque URL; it already encodes the query.
		path = it.cursor
		query = nil
	}

	// Consume the cursor before the request so it is never reused.
	it.cursor = ""

	page, err := it.client.ListWithPath(it.ctx, path, query)
	if err != nil {
		it.err = err

		return false
	}

	it.started = true
	it.cursor = page.NextCursor()
	it.buffer = page.Data
	it.index = 0

	return true
}

// PaginationOptions controls bulk pagination helpers.
type PaginationOptions struct {
	// PageSize sets the per-page record limit for the first request.
	PageSize int
	// MaxPages caps the number of pages fetched; 0 means no cap.
	MaxPages int
}

// FetchAllPages follows cursors until the final page and returns every record
// in server order.
func FetchAllPages[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	if options != nil && options.PageSize > 0 {
		if params == nil {
			params = NewQueryParams()
		}

		params.Limit = options.PageSize
	}

	var (
		items []T
		query url.Values
	)

	if params != nil {
		query = params.ToValues()
	}

	pages := 0

	for path != "" {
		if options != nil && options.MaxPages > 0 && pages >= options.MaxPages {
			break
		}

		page, err := client.ListWithPath(ctx, path, query)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Data...)
		path = page.NextCursor()
		query = nil
		pages++
	}

	return items, nil
}

// PageResult carries one page's records (or a fetch error) on a stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages in a background goroutine and delivers them on
// the returned channel. The channel is closed after the final page, after an
// error, or when ctx is cancelled; in-flight accounting still applies to any
// request already started.
func StreamPages[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	go func() {
		defer close(results)

		pages := 0

		for path != "" {
			if options != nil && options.MaxPages > 0 && pages >= options.MaxPages {
				return
			}

			page, err := client.ListWithPath(ctx, path, query)
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page.Data}:
			case <-ctx.Done():
				return
			}

			path = page.NextCursor()
			query = nil
			pages++
		}
	}()

	return results
}
