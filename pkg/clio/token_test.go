package clio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hyacinth-io/clio/pkg/clio"
)

func TestTokenValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token *clio.Token
		want  bool
	}{
		{
			name:  "nil token",
			token: nil,
			want:  false,
		},
		{
			name:  "empty access token",
			token: &clio.Token{ExpiresAt: time.Now().Add(time.Hour)},
			want:  false,
		},
		{
			name:  "unknown expiry is trusted",
			token: &clio.Token{AccessToken: "abc"},
			want:  true,
		},
		{
			name:  "well before expiry",
			token: &clio.Token{AccessToken: "abc", ExpiresAt: time.Now().Add(time.Hour)},
			want:  true,
		},
		{
			name:  "inside the expiry buffer",
			token: &clio.Token{AccessToken: "abc", ExpiresAt: time.Now().Add(10 * time.Second)},
			want:  false,
		},
		{
			name:  "already expired",
			token: &clio.Token{AccessToken: "abc", ExpiresAt: time.Now().Add(-time.Minute)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.token.Valid())
		})
	}
}
