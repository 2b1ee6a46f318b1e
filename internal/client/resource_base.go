// Package client implements the clio.Session façade and the typed resource
// clients behind it. All requests flow through the shared internal/http
// client, which owns authentication, rate limiting, and retries.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hyacinth-io/clio/internal/constants"
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// resourceClient implements the CRUD surface shared by every Clio resource.
// Typed clients embed it and add endpoint-specific operations.
type resourceClient[T any] struct {
	httpClient *internalhttp.Client

	// path is the collection segment under the API base, e.g. "contacts".
	path string

	// name is the singular resource name used in error messages.
	name string
}

func newResourceClient[T any](httpClient *internalhttp.Client, path, name string) *resourceClient[T] {
	return &resourceClient[T]{
		httpClient: httpClient,
		path:       path,
		name:       name,
	}
}

// normalizePath appends Clio's ".json" suffix to relative resource paths.
// Cursor URLs and already-suffixed paths pass through untouched.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	if strings.HasSuffix(path, ".json") {
		return path
	}

	return path + ".json"
}

// Get fetches a single record by ID.
func (c *resourceClient[T]) Get(ctx context.Context, id int64, params *clio.QueryParams) (*T, error) {
	path := fmt.Sprintf("%s/%d.json", c.path, id)

	resp, err := c.httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.name, err)
	}

	return decodeRecord[T](resp.Body, c.name)
}

// List fetches the first page of the collection.
func (c *resourceClient[T]) List(ctx context.Context, params *clio.QueryParams) (*clio.ListResponse[T], error) {
	return c.ListWithPath(ctx, c.path, params.ToValues())
}

// ListWithPath fetches one page from an arbitrary collection path or cursor
// URL. List requests default to a stable order so cursors stay consistent
// across pages; an explicit order in query wins.
func (c *resourceClient[T]) ListWithPath(ctx context.Context, path string, query url.Values) (*clio.ListResponse[T], error) {
	if query == nil {
		query = url.Values{}
	}

	isCursor := strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
	if !isCursor && query.Get("order") == "" {
		query.Set("order", constants.DefaultOrder)
	}

	resp, err := c.httpClient.Get(ctx, normalizePath(path), query)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", c.name, err)
	}

	var list clio.ListResponse[T]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.name, err)
	}

	return &list, nil
}

// Create posts a new record.
func (c *resourceClient[T]) Create(ctx context.Context, record *T) (*T, error) {
	body := clio.Envelope[*T]{Data: record}

	resp, err := c.httpClient.Post(ctx, c.path+".json", body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.name, err)
	}

	return decodeRecord[T](resp.Body, c.name)
}

// Update patches an existing record by ID.
func (c *resourceClient[T]) Update(ctx context.Context, id int64, record *T) (*T, error) {
	path := fmt.Sprintf("%s/%d.json", c.path, id)
	body := clio.Envelope[*T]{Data: record}

	resp, err := c.httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.name, err)
	}

	return decodeRecord[T](resp.Body, c.name)
}

// Delete removes a record by ID.
func (c *resourceClient[T]) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d.json", c.path, id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.name, err)
	}

	return nil
}

// decodeRecord unwraps a single-record data envelope.
func decodeRecord[T any](body []byte, name string) (*T, error) {
	var envelope clio.Envelope[T]

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", name, err)
	}

	return &envelope.Data, nil
}
