package bootstrap

import (
	"workshop-quotes/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies the configuration loaded before the container starts,
// since the store driver decides which persistence module is installed.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
