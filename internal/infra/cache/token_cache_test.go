//go:build unit

package cache_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"workshop-quotes/internal/infra/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestTokenKey(t *testing.T) {
	tenantA, tenantB := uuid.New(), uuid.New()

	key := cache.TokenKey(tenantA, "secret-token")
	assert.True(t, strings.HasPrefix(key, "quote-token:"))
	assert.NotContains(t, key, "secret-token", "token must not appear in the key")
	assert.Equal(t, key, cache.TokenKey(tenantA, "secret-token"))
	assert.NotEqual(t, key, cache.TokenKey(tenantB, "secret-token"), "keys are tenant scoped")
	assert.NotEqual(t, key, cache.TokenKey(tenantA, "other-token"))
}

func TestRedisTokenCache_RoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	c := cache.NewRedisTokenCache(client)
	tenantID, quoteID := uuid.New(), uuid.New()
	token := "tok-" + uuid.NewString()

	_, ok, err := c.Lookup(ctx, tenantID, token)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Remember(ctx, tenantID, token, quoteID, time.Now().Add(time.Minute)))
	got, ok, err := c.Lookup(ctx, tenantID, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, quoteID, got)

	ttl, err := client.TTL(ctx, cache.TokenKey(tenantID, token)).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Minute)

	require.NoError(t, c.Forget(ctx, tenantID, token))
	_, ok, err = c.Lookup(ctx, tenantID, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisTokenCache_SkipsLapsedLinks(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	c := cache.NewRedisTokenCache(client)
	tenantID := uuid.New()
	token := "tok-" + uuid.NewString()

	require.NoError(t, c.Remember(ctx, tenantID, token, uuid.New(), time.Now().Add(-time.Second)))
	_, ok, err := c.Lookup(ctx, tenantID, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoopTokenCache_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := cache.NoopTokenCache{}
	tenantID := uuid.New()

	require.NoError(t, c.Remember(ctx, tenantID, "t", uuid.New(), time.Now().Add(time.Hour)))
	_, ok, err := c.Lookup(ctx, tenantID, "t")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Forget(ctx, tenantID, "t"))
}
