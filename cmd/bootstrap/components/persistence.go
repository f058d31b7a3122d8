package components

import (
	"workshop-quotes/internal/infra/memstore"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/readstore"
	"workshop-quotes/internal/infra/repository"
	"workshop-quotes/internal/infra/uow"
	"workshop-quotes/internal/usecase/queries"
	"workshop-quotes/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Quote
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.QuoteReadQueries)),
		),
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.QuoteReadStore)),
		),
		// ServiceOrder
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceOrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceOrderReadStore,
			fx.As(new(queries.ServiceOrderReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork: quote and service order repositories are bound per transaction
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.OutboxQueries)),
		),
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(shared.OutboxRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}

// MemoryPersistenceModule backs every store with one in-process memstore.Store.
var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		func(s *memstore.Store) shared.OutboxRepository { return s.Outbox() },
		func(s *memstore.Store) queries.QuoteReadStore { return s.QuoteReadStore() },
		func(s *memstore.Store) queries.ServiceOrderReadStore { return s.ServiceOrderReadStore() },
	),
)
