package clio

import (
	"net/url"
	"strconv"
)

// QueryParams represents common query parameters for Clio API requests.
type QueryParams struct {
	// Fields selects the attributes returned for each record, in Clio's
	// nested syntax (e.g. "id,name,matter{id,display_number}").
	Fields string
	// Limit caps the number of records per page.
	Limit int
	// Order sets the result order (e.g. "id(asc)"). List requests default
	// to "id(asc)" so cursor pagination is stable.
	Order string
	// Query is Clio's free-text search parameter.
	Query string
	// IDs restricts results to the given record IDs.
	IDs []int64
	// Filters holds endpoint-specific parameters (e.g. "matter_id").
	Filters map[string][]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithFields sets the fields selection.
func (q *QueryParams) WithFields(fields string) *QueryParams {
	q.Fields = fields

	return q
}

// WithLimit sets the per-page record limit.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithOrder sets the result order.
func (q *QueryParams) WithOrder(order string) *QueryParams {
	q.Order = order

	return q
}

// WithQuery sets the free-text search parameter.
func (q *QueryParams) WithQuery(query string) *QueryParams {
	q.Query = query

	return q
}

// WithFilter adds an endpoint-specific parameter value.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], value)

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Fields != "" {
		values.Set("fields", q.Fields)
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if q.Query != "" {
		values.Set("query", q.Query)
	}

	for _, id := range q.IDs {
		values.Add("ids[]", strconv.FormatInt(id, 10))
	}

	for key, filterValues := range q.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	return values
}
