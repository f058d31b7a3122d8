package bootstrap

import (
	"workshop-quotes/cmd/bootstrap/components"
	"workshop-quotes/internal/pkg/config"

	"go.uber.org/fx"
)

func Module(cfg config.Config) fx.Option {
	persistence := components.MemoryPersistenceModule
	if cfg.Store.Driver == config.StoreDriverPostgres {
		persistence = fx.Options(DBModule, components.PostgresPersistenceModule)
	}

	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		RedisModule,
		persistence,
		components.IntegrationModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}
