package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinica/patient-admin/internal/core/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, ttl), mr
}

func TestSessionStore_SaveLoadDelete(t *testing.T) {
	store, mr := newTestStore(t, 0)
	ctx := context.Background()
	claims := domain.Claims{UserID: 3, Name: "Ana", Role: domain.RoleStaff}

	require.NoError(t, store.Save(ctx, "tok-1", claims))
	assert.True(t, mr.Exists("session:tok-1"))
	assert.Zero(t, mr.TTL("session:tok-1"))

	got, err := store.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, claims, *got)

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Load(ctx, "tok-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestSessionStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-ttl", domain.Claims{UserID: 1, Role: domain.RoleAdmin}))
	assert.Equal(t, time.Hour, mr.TTL("session:tok-ttl"))

	mr.FastForward(2 * time.Hour)
	_, err := store.Load(ctx, "tok-ttl")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Ping(t *testing.T) {
	store, mr := newTestStore(t, 0)
	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
