package client

import (
	"context"
	"fmt"

	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// UsersClient implements clio.UsersClient.
type UsersClient struct {
	*resourceClient[clio.User]
}

// NewUsersClient creates a users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{newResourceClient[clio.User](httpClient, "users", "user")}
}

// WhoAmI returns the user who owns the session's token.
func (c *UsersClient) WhoAmI(ctx context.Context) (*clio.User, error) {
	resp, err := c.httpClient.Get(ctx, "users/who_am_i.json", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return decodeRecord[clio.User](resp.Body, c.name)
}
