package components

import (
	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/config"
	"workshop-quotes/internal/usecase"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *quote.TokenIssuer {
		return quote.NewTokenIssuer(cfg.Quote.TokenTTL)
	},
	func(cfg config.Config) commands.PublicLinks {
		return commands.PublicLinks{BaseURL: cfg.Quote.PublicBaseURL}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuoteUseCase,
		commands.NewAssignmentUseCase,
		commands.NewDiagnosisUseCase,
		commands.NewConversionUseCase,
		commands.NewApprovalUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewServiceOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
