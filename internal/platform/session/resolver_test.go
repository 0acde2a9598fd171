package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func TestResolver_ResolveOrCreate_NewCaller(t *testing.T) {
	client, _ := setupTestRedis(t)
	r := NewResolver(NewRedisStore(client, "session", time.Hour))

	id, created, err := r.ResolveOrCreate(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, id)

	// Same caller presenting the id back keeps the same identity.
	again, created, err := r.ResolveOrCreate(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, again)
}

func TestResolver_ResolveOrCreate_UnknownIDReplaced(t *testing.T) {
	client, _ := setupTestRedis(t)
	r := NewResolver(NewRedisStore(client, "session", time.Hour))

	// A forged or expired id must not be honored.
	id, created, err := r.ResolveOrCreate(context.Background(), "made-up-id")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, "made-up-id", id)
}

func TestRedisStore_TouchRefreshesTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisStore(client, "session", time.Hour)

	require.NoError(t, store.Save(context.Background(), "sid-1"))

	// Let most of the TTL elapse, then touch.
	mr.FastForward(50 * time.Minute)
	known, err := store.Touch(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.True(t, known)

	// Another 50 minutes would have expired the original TTL.
	mr.FastForward(50 * time.Minute)
	known, err = store.Touch(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.True(t, known, "touched session should have a refreshed TTL")

	mr.FastForward(2 * time.Hour)
	known, err = store.Touch(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.False(t, known, "expired session should not be known")
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	known, err := store.Touch(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, known)

	require.NoError(t, store.Save(ctx, "sid-1"))
	known, err = store.Touch(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, known)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(-time.Second) // already expired on save
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sid-1"))
	known, err := store.Touch(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, known)
}
