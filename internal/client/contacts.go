package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// ContactsClient implements clio.ContactsClient.
type ContactsClient struct {
	*resourceClient[clio.Contact]
}

// NewContactsClient creates a contacts client.
func NewContactsClient(httpClient *internalhttp.Client) *ContactsClient {
	return &ContactsClient{newResourceClient[clio.Contact](httpClient, "contacts", "contact")}
}
