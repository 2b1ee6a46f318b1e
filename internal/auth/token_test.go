package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyacinth-io/clio/internal/auth"
	"github.com/hyacinth-io/clio/pkg/clio"
)

func TestTokenStore_GetSetClear(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get())

	token := &clio.Token{AccessToken: "abc", RefreshToken: "def"}
	store.Set(token)
	assert.Equal(t, token, store.Get())

	store.Clear()
	assert.Nil(t, store.Get())
}

func TestTokenStore_SetDoesNotNotify(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()

	calls := 0

	store.OnRotate(func(clio.Token) {
		calls++
	})

	store.Set(&clio.Token{AccessToken: "construction-time"})
	assert.Equal(t, 0, calls)
}

func TestTokenStore_RotateNotifiesEverySubscriber(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	store.Set(&clio.Token{AccessToken: "old"})

	var first, second []string

	store.OnRotate(func(token clio.Token) {
		first = append(first, token.AccessToken)
	})
	store.OnRotate(func(token clio.Token) {
		second = append(second, token.AccessToken)
	})

	store.Rotate(&clio.Token{AccessToken: "new", RefreshToken: "new-refresh"})

	assert.Equal(t, []string{"new"}, first)
	assert.Equal(t, []string{"new"}, second)

	current := store.Get()
	require.NotNil(t, current)
	assert.Equal(t, "new", current.AccessToken)
}

func TestTokenStore_CallbackMayReadStore(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()

	var observed string

	store.OnRotate(func(clio.Token) {
		// Callbacks run outside the store lock, so reads must not deadlock
		// and must observe the new pair.
		observed = store.Get().AccessToken
	})

	store.Rotate(&clio.Token{AccessToken: "rotated"})
	assert.Equal(t, "rotated", observed)
}
