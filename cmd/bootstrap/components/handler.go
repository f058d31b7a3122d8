package components

import (
	"workshop-quotes/internal/handler"
	"workshop-quotes/internal/handler/api"
	"workshop-quotes/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewPublicQuoteHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
