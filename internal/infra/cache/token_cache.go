// Package cache keeps a short-lived index from public approval tokens to quote ids.
// Tokens are never stored in clear; keys are blake2b digests scoped by tenant.
package cache

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
)

const tokenKeyPrefix = "quote-token:"

type RedisTokenCache struct {
	client *redis.Client
	now    func() time.Time
}

var _ shared.TokenCache = (*RedisTokenCache)(nil)

func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client, now: time.Now}
}

func (c *RedisTokenCache) Lookup(ctx context.Context, tenantID uuid.UUID, token string) (uuid.UUID, bool, error) {
	raw, err := c.client.Get(ctx, TokenKey(tenantID, token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

// Remember stores the mapping until the link expires. A lapsed link is not cached.
func (c *RedisTokenCache) Remember(ctx context.Context, tenantID uuid.UUID, token string, quoteID uuid.UUID, expiresAt time.Time) error {
	ttl := expiresAt.Sub(c.now())
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, TokenKey(tenantID, token), quoteID.String(), ttl).Err()
}

func (c *RedisTokenCache) Forget(ctx context.Context, tenantID uuid.UUID, token string) error {
	return c.client.Del(ctx, TokenKey(tenantID, token)).Err()
}

func TokenKey(tenantID uuid.UUID, token string) string {
	sum := blake2b.Sum256([]byte(tenantID.String() + ":" + token))
	return tokenKeyPrefix + hex.EncodeToString(sum[:])
}

// NoopTokenCache is used when redis is disabled; every lookup misses.
type NoopTokenCache struct{}

var _ shared.TokenCache = NoopTokenCache{}

func (NoopTokenCache) Lookup(context.Context, uuid.UUID, string) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}

func (NoopTokenCache) Remember(context.Context, uuid.UUID, string, uuid.UUID, time.Time) error {
	return nil
}

func (NoopTokenCache) Forget(context.Context, uuid.UUID, string) error {
	return nil
}
