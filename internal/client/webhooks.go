package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// WebhooksClient implements clio.WebhooksClient.
type WebhooksClient struct {
	*resourceClient[clio.Webhook]
}

// NewWebhooksClient creates a webhooks client.
func NewWebhooksClient(httpClient *internalhttp.Client) *WebhooksClient {
	return &WebhooksClient{newResourceClient[clio.Webhook](httpClient, "webhooks", "webhook")}
}
