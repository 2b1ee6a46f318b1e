package clioclient

import (
	"strings"

	"github.com/hyacinth-io/clio/internal/client"
	"github.com/hyacinth-io/clio/internal/constants"
	"github.com/hyacinth-io/clio/pkg/clio"
)

// New creates a new Clio API session for the configured region.
func New(config *clio.Config) (clio.Session, error) {
	if config == nil {
		return nil, clio.ErrConfigRequired
	}

	session, err := client.New(config, resolveBaseURL(config))
	if err != nil {
		return nil, err
	}

	return session, nil
}

// resolveBaseURL maps the configured region to its deployment base URL. An
// explicit BaseURL wins; an unknown region falls back to US with a warning.
func resolveBaseURL(config *clio.Config) string {
	if config.BaseURL != "" {
		return strings.TrimSuffix(config.BaseURL, "/")
	}

	switch strings.ToUpper(config.Region) {
	case "", "US":
		return constants.BaseURLUS
	case "CA":
		return constants.BaseURLCA
	case "EU":
		return constants.BaseURLEU
	case "AU":
		return constants.BaseURLAU
	default:
		if config.Logger != nil {
			config.Logger.Warn("unknown region, falling back to US", map[string]interface{}{
				"region": config.Region,
			})
		}

		return constants.BaseURLUS
	}
}

// NewWithToken creates a session from a previously obtained token pair. The
// client credentials are still required to refresh the pair when it expires.
func NewWithToken(region, clientID, clientSecret string, token *clio.Token) (clio.Session, error) {
	return New(&clio.Config{
		Region:       region,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Token:        token,
	})
}

// NewWithClientCredentials creates a session using the OAuth2
// client-credentials grant.
func NewWithClientCredentials(region, clientID, clientSecret string) (clio.Session, error) {
	return New(&clio.Config{
		Region:       region,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}
