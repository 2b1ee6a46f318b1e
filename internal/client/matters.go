package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// MattersClient implements clio.MattersClient.
type MattersClient struct {
	*resourceClient[clio.Matter]
}

// NewMattersClient creates a matters client.
func NewMattersClient(httpClient *internalhttp.Client) *MattersClient {
	return &MattersClient{newResourceClient[clio.Matter](httpClient, "matters", "matter")}
}
