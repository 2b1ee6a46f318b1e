package clio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyacinth-io/clio/pkg/clio"
)

func TestQueryParamsToValues(t *testing.T) {
	t.Parallel()

	params := clio.NewQueryParams().
		WithFields("id,name,matter{id,display_number}").
		WithLimit(50).
		WithOrder("id(asc)").
		WithQuery("smith").
		WithFilter("matter_id", "42")
	params.IDs = []int64{1, 2}

	values := params.ToValues()

	assert.Equal(t, "id,name,matter{id,display_number}", values.Get("fields"))
	assert.Equal(t, "50", values.Get("limit"))
	assert.Equal(t, "id(asc)", values.Get("order"))
	assert.Equal(t, "smith", values.Get("query"))
	assert.Equal(t, []string{"1", "2"}, values["ids[]"])
	assert.Equal(t, "42", values.Get("matter_id"))
}

func TestQueryParamsToValues_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, clio.NewQueryParams().ToValues())

	var params *clio.QueryParams

	assert.Empty(t, params.ToValues())
}

func TestListResponseCursor(t *testing.T) {
	t.Parallel()

	withNext := &clio.ListResponse[clio.Contact]{
		Meta: clio.Meta{Paging: &clio.Paging{Next: "https://app.clio.com/api/v4/contacts.json?page_token=abc"}},
	}

	assert.True(t, withNext.HasNext())
	assert.Equal(t, "https://app.clio.com/api/v4/contacts.json?page_token=abc", withNext.NextCursor())

	finalPage := &clio.ListResponse[clio.Contact]{}
	assert.False(t, finalPage.HasNext())
	assert.Empty(t, finalPage.NextCursor())
}
