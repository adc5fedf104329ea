package input

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisStore creates a store connected to a miniredis instance
func setupRedisStore(t *testing.T, scope string) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	t.Cleanup(mr.Close)

	store, err := NewRedisStore(&redis.Options{Addr: mr.Addr()}, 2024, scope)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, mr
}

func TestInputKey(t *testing.T) {
	assert.Equal(t, "advent:2024:shared:input:9", InputKey(2024, SharedScope, 9))
	assert.Equal(t, "advent:2023:0123456789abcdef:input:25", InputKey(2023, "0123456789abcdef", 25))
}

func TestNewRedisStore(t *testing.T) {
	t.Run("defaults to shared scope", func(t *testing.T) {
		store, _ := setupRedisStore(t, "")
		assert.Equal(t, SharedScope, store.scope)
	})

	t.Run("rejects invalid year", func(t *testing.T) {
		_, err := NewRedisStore(&redis.Options{Addr: "localhost:6379"}, 0, "")
		assert.Error(t, err)
	})
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, mr := setupRedisStore(t, "abc")
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	_, ok, err := store.Get(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, 5, "47|53\n\n75,47\n"))
	stored, err := mr.Get("advent:2024:abc:input:5")
	require.NoError(t, err)
	assert.Equal(t, "47|53\n\n75,47\n", stored)

	text, ok, err := store.Get(ctx, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "47|53\n\n75,47\n", text)
}

func TestRedisStore_ScopesAreIsolated(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	a, err := NewRedisStore(&redis.Options{Addr: mr.Addr()}, 2024, "alice")
	require.NoError(t, err)
	defer a.Close()
	b, err := NewRedisStore(&redis.Options{Addr: mr.Addr()}, 2024, "bob")
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, a.Put(ctx, 1, "alice's input"))

	_, ok, err := b.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_EmptyValueIsMiss(t *testing.T) {
	store, mr := setupRedisStore(t, "")
	require.NoError(t, mr.Set("advent:2024:shared:input:1", ""))

	_, ok, err := store.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := setupRedisStore(t, "")
	mr.Close()
	ctx := context.Background()

	_, _, err := store.Get(ctx, 1)
	require.Error(t, err)
	assert.True(t, IsIO(err))

	err = store.Put(ctx, 1, "x")
	require.Error(t, err)
	assert.True(t, IsIO(err))
}
