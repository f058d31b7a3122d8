package bootstrap

import (
	"context"
	"log/slog"

	"workshop-quotes/internal/infra/cache"
	"workshop-quotes/internal/pkg/config"
	"workshop-quotes/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewTokenCache,
	),
)

// NewTokenCache falls back to a no-op cache when Redis is disabled or unreachable;
// token lookups then go straight to the store.
func NewTokenCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.TokenCache {
	if !cfg.Redis.Enabled {
		return cache.NoopTokenCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis unavailable, token cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return cache.NoopTokenCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("Redis token cache enabled", "addr", cfg.Redis.Addr)
	return cache.NewRedisTokenCache(client)
}
