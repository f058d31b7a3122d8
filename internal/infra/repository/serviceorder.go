package repository

import (
	"context"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/infra"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/repository/converter"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"
)

const serviceOrderQuoteKey = "service_orders_quote_id_key"

type ServiceOrderWriteQueries interface {
	CreateServiceOrder(ctx context.Context, db pgsql.DBTX, arg pgsql.ServiceOrder) error
	CreateServiceOrderItems(ctx context.Context, db pgsql.DBTX, items []pgsql.ServiceOrderItem) error
}

type ServiceOrderRepository struct {
	queries ServiceOrderWriteQueries
	db      pgsql.DBTX
}

var _ shared.ServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository(queries ServiceOrderWriteQueries, db pgsql.DBTX) *ServiceOrderRepository {
	return &ServiceOrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create returns quote.ErrConversionConflict when the quote already has an order.
func (r *ServiceOrderRepository) Create(ctx context.Context, so *serviceorder.ServiceOrder) error {
	row, items := converter.ServiceOrderToRows(so)
	if err := r.queries.CreateServiceOrder(ctx, r.db, row); err != nil {
		wrapped := infra.WrapRepoErr("failed to create service order", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) && infra.ConstraintName(err) == serviceOrderQuoteKey {
			return errs.Mark(wrapped, quote.ErrConversionConflict)
		}
		return wrapped
	}
	if err := r.queries.CreateServiceOrderItems(ctx, r.db, items); err != nil {
		return infra.WrapRepoErr("failed to create service order items", err)
	}
	return nil
}
