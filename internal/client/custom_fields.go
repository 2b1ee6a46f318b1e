package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// CustomFieldsClient implements clio.CustomFieldsClient.
type CustomFieldsClient struct {
	*resourceClient[clio.CustomField]
}

// NewCustomFieldsClient creates a custom fields client.
func NewCustomFieldsClient(httpClient *internalhttp.Client) *CustomFieldsClient {
	return &CustomFieldsClient{newResourceClient[clio.CustomField](httpClient, "custom_fields", "custom field")}
}

// CustomActionsClient implements clio.CustomActionsClient.
type CustomActionsClient struct {
	*resourceClient[clio.CustomAction]
}

// NewCustomActionsClient creates a custom actions client.
func NewCustomActionsClient(httpClient *internalhttp.Client) *CustomActionsClient {
	return &CustomActionsClient{newResourceClient[clio.CustomAction](httpClient, "custom_actions", "custom action")}
}
