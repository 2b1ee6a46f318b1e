package clioclient

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/hyacinth-io/clio/pkg/clio"
)

// envConfig maps CLIO_* environment variables onto session configuration.
type envConfig struct {
	Region       string        `env:"CLIO_REGION"       envDefault:"US"`
	BaseURL      string        `env:"CLIO_BASE_URL"`
	ClientID     string        `env:"CLIO_CLIENT_ID"`
	ClientSecret string        `env:"CLIO_CLIENT_SECRET"`
	AccessToken  string        `env:"CLIO_ACCESS_TOKEN"`
	RefreshToken string        `env:"CLIO_REFRESH_TOKEN"`
	RateLimit    int           `env:"CLIO_RATE_LIMIT"`
	RateWindow   time.Duration `env:"CLIO_RATE_WINDOW"`
	Debug        bool          `env:"CLIO_DEBUG"`
}

// NewFromEnv creates a session configured from CLIO_* environment variables.
func NewFromEnv() (clio.Session, error) {
	var parsed envConfig

	err := env.Parse(&parsed)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	config := &clio.Config{
		Region:       parsed.Region,
		BaseURL:      parsed.BaseURL,
		ClientID:     parsed.ClientID,
		ClientSecret: parsed.ClientSecret,
		RateLimit:    parsed.RateLimit,
		RateWindow:   parsed.RateWindow,
		Debug:        parsed.Debug,
	}

	if parsed.AccessToken != "" || parsed.RefreshToken != "" {
		config.Token = &clio.Token{
			AccessToken:  parsed.AccessToken,
			RefreshToken: parsed.RefreshToken,
			TokenType:    "bearer",
		}
	}

	return New(config)
}
