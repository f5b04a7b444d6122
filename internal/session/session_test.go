package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workout-tracker/internal/session"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(time.Hour)

	id, err := store.Create(ctx, session.Session{UserID: 7, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, "alice", sess.Username)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(-time.Minute)

	id, err := store.Create(ctx, session.Session{UserID: 1, Username: "bob"})
	require.NoError(t, err)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestManagerIssueAndResolve(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(time.Hour)
	mgr := session.NewManager(store, "test-secret", time.Hour)

	token, err := mgr.Issue(ctx, session.Session{UserID: 3, Username: "carol"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := mgr.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), sess.UserID)
	assert.Equal(t, "carol", sess.Username)
}

func TestManagerRejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(time.Hour)
	mgr := session.NewManager(store, "test-secret", time.Hour)

	token, err := mgr.Issue(ctx, session.Session{UserID: 3, Username: "carol"})
	require.NoError(t, err)

	_, err = mgr.Resolve(ctx, token+"x")
	assert.ErrorIs(t, err, session.ErrInvalidToken)

	// Token signed with a different secret must not resolve either.
	other := session.NewManager(store, "other-secret", time.Hour)
	otherToken, err := other.Issue(ctx, session.Session{UserID: 9, Username: "mallory"})
	require.NoError(t, err)

	_, err = mgr.Resolve(ctx, otherToken)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestManagerDestroy(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(time.Hour)
	mgr := session.NewManager(store, "test-secret", time.Hour)

	token, err := mgr.Issue(ctx, session.Session{UserID: 3, Username: "carol"})
	require.NoError(t, err)

	require.NoError(t, mgr.Destroy(ctx, token))

	_, err = mgr.Resolve(ctx, token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Destroying garbage is a no-op, not an error.
	assert.NoError(t, mgr.Destroy(ctx, "not-a-token"))
}
