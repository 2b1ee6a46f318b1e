package auth

import (
	"sync"

	"github.com/hyacinth-io/clio/pkg/clio"
)

// TokenStore holds the session's current token pair and notifies subscribers
// when the pair rotates. Exactly one pair is active at any instant; Set and
// Rotate replace it wholesale.
type TokenStore struct {
	mu       sync.RWMutex
	token    *clio.Token
	onRotate []func(clio.Token)
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token pair, or nil when none is held.
func (s *TokenStore) Get() *clio.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token pair without notifying subscribers. It is
// used for tokens supplied at construction; refreshes go through Rotate.
func (s *TokenStore) Set(token *clio.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Rotate replaces the current token pair and invokes every rotation callback
// synchronously before returning, so subscribers can durably record the new
// pair before any dependent request proceeds.
func (s *TokenStore) Rotate(token *clio.Token) {
	s.mu.Lock()
	s.token = token
	callbacks := make([]func(clio.Token), len(s.onRotate))
	copy(callbacks, s.onRotate)
	s.mu.Unlock()

	// Callbacks run outside the lock so they may read the store.
	for _, callback := range callbacks {
		callback(*token)
	}
}

// Clear discards the current token pair.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}

// OnRotate registers a callback invoked with every rotated token pair.
func (s *TokenStore) OnRotate(callback func(clio.Token)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onRotate = append(s.onRotate, callback)
}
