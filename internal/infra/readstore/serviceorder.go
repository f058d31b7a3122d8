package readstore

import (
	"context"

	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/infra"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/repository/converter"
	"workshop-quotes/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceOrderReadQueries interface {
	GetServiceOrderByID(ctx context.Context, db pgsql.DBTX, tenantID, id uuid.UUID) (pgsql.ServiceOrder, error)
	ListServiceOrderItems(ctx context.Context, db pgsql.DBTX, serviceOrderID uuid.UUID) ([]pgsql.ServiceOrderItem, error)
}

type ServiceOrderReadStore struct {
	queries ServiceOrderReadQueries
	db      pgsql.DBTX
}

var _ queries.ServiceOrderReadStore = (*ServiceOrderReadStore)(nil)

func NewServiceOrderReadStore(queries ServiceOrderReadQueries, db pgsql.DBTX) *ServiceOrderReadStore {
	return &ServiceOrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *ServiceOrderReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*serviceorder.ServiceOrder, error) {
	row, err := s.queries.GetServiceOrderByID(ctx, s.db, tenantID, id)
	if err != nil {
		return nil, notFoundOr(err, "service order not found", "failed to find service order by ID", serviceorder.ErrNotFound)
	}
	items, err := s.queries.ListServiceOrderItems(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service order items", err)
	}
	return converter.ServiceOrderFromRows(row, items), nil
}
