package clio

import "time"

// tokenExpiryBuffer is subtracted from a token's lifetime so requests are not
// sent with a token about to expire mid-flight.
const tokenExpiryBuffer = 30 * time.Second

// Token represents an OAuth2 access/refresh token pair. A pair is one atomic
// unit: it is replaced wholesale on refresh, never mutated in place.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	ExpiresIn    int64     `json:"expires_in,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}

// Valid reports whether the token can still be attached to a request. Tokens
// within tokenExpiryBuffer of expiry count as invalid. A zero ExpiresAt means
// the expiry is unknown and the token is trusted until the server rejects it.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(tokenExpiryBuffer).Before(t.ExpiresAt)
}
