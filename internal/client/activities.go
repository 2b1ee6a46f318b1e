package client

import (
	internalhttp "github.com/hyacinth-io/clio/internal/http"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// ActivitiesClient implements clio.ActivitiesClient.
type ActivitiesClient struct {
	*resourceClient[clio.Activity]
}

// NewActivitiesClient creates an activities client.
func NewActivitiesClient(httpClient *internalhttp.Client) *ActivitiesClient {
	return &ActivitiesClient{newResourceClient[clio.Activity](httpClient, "activities", "activity")}
}

// ActivityDescriptionsClient implements clio.ActivityDescriptionsClient.
type ActivityDescriptionsClient struct {
	*resourceClient[clio.ActivityDescription]
}

// NewActivityDescriptionsClient creates an activity descriptions client.
func NewActivityDescriptionsClient(httpClient *internalhttp.Client) *ActivityDescriptionsClient {
	return &ActivityDescriptionsClient{newResourceClient[clio.ActivityDescription](httpClient, "activity_descriptions", "activity description")}
}
