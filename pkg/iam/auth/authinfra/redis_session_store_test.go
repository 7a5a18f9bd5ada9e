package authinfra

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/chamba/pkg/iam/auth"
	"github.com/Abraxas-365/chamba/pkg/errx"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client), mr
}

func testSession(id string) *auth.Session {
	now := time.Now()
	return &auth.Session{
		ID:        id,
		UserID:    kernel.UserID("user-1"),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestRedisSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1"), time.Hour))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, kernel.UserID("user-1"), got.UserID)
}

func TestRedisSessionStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errx.IsType(err, errx.TypeAuthorization))
}

func TestRedisSessionStore_ExpiredSessionIsGone(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "s1")
	assert.Error(t, err)
}

func TestRedisSessionStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1"), time.Hour))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.Error(t, err)

	// revoking twice is fine
	assert.NoError(t, store.Delete(ctx, "s1"))
}

func TestRedisSessionStore_GetFailsClosedWhenRedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1"), time.Hour))
	mr.Close()

	_, err := store.Get(ctx, "s1")
	assert.Error(t, err)
}
