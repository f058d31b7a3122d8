package readstore

import (
	"context"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/infra"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/repository/converter"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/pkg/pgconv"
	"workshop-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type QuoteReadQueries interface {
	GetQuoteByID(ctx context.Context, db pgsql.DBTX, tenantID, id uuid.UUID) (pgsql.Quote, error)
	GetQuoteByToken(ctx context.Context, db pgsql.DBTX, tenantID uuid.UUID, token string) (pgsql.Quote, error)
	ListQuotes(ctx context.Context, db pgsql.DBTX, arg pgsql.ListQuotesParams) ([]pgsql.Quote, error)
}

type QuoteReadStore struct {
	queries QuoteReadQueries
	db      pgsql.DBTX
}

var _ queries.QuoteReadStore = (*QuoteReadStore)(nil)

func NewQuoteReadStore(queries QuoteReadQueries, db pgsql.DBTX) *QuoteReadStore {
	return &QuoteReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *QuoteReadStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	row, err := s.queries.GetQuoteByID(ctx, s.db, tenantID, id)
	if err != nil {
		return nil, notFoundOr(err, "quote not found", "failed to find quote by ID", quote.ErrNotFound)
	}
	return converter.QuoteFromRow(row)
}

func (s *QuoteReadStore) FindByToken(ctx context.Context, tenantID uuid.UUID, token string) (*quote.Quote, error) {
	row, err := s.queries.GetQuoteByToken(ctx, s.db, tenantID, token)
	if err != nil {
		return nil, notFoundOr(err, "quote not found for token", "failed to find quote by token", quote.ErrNotFound)
	}
	return converter.QuoteFromRow(row)
}

func (s *QuoteReadStore) ListFirstPage(ctx context.Context, tenantID uuid.UUID, filters queries.QuoteFilters, now time.Time, limit int32) ([]*quote.Quote, error) {
	return s.list(ctx, listParams(tenantID, filters, now, limit))
}

func (s *QuoteReadStore) ListKeyset(ctx context.Context, tenantID uuid.UUID, filters queries.QuoteFilters, now time.Time, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*quote.Quote, error) {
	params := listParams(tenantID, filters, now, limit)
	params.AfterCreatedAt = pgconv.TimeToPgtype(lastCreatedAt)
	params.AfterID = pgconv.UUIDToPgtype(lastID)
	return s.list(ctx, params)
}

func (s *QuoteReadStore) list(ctx context.Context, params pgsql.ListQuotesParams) ([]*quote.Quote, error) {
	rows, err := s.queries.ListQuotes(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	result := make([]*quote.Quote, len(rows))
	for i, row := range rows {
		q, err := converter.QuoteFromRow(row)
		if err != nil {
			return nil, err
		}
		result[i] = q
	}
	return result, nil
}

func listParams(tenantID uuid.UUID, filters queries.QuoteFilters, now time.Time, limit int32) pgsql.ListQuotesParams {
	params := pgsql.ListQuotesParams{
		TenantID:       tenantID,
		MechanicID:     pgconv.UUIDPtrToPgtype(filters.MechanicID),
		UnassignedOnly: filters.UnassignedOnly,
		Now:            now,
		Limit:          limit,
	}
	if filters.Status != nil {
		params.Status = pgtype.Text{String: filters.Status.String(), Valid: true}
	}
	return params
}

func notFoundOr(err error, notFoundMsg, failureMsg string, sentinel error) error {
	if pgconv.IsNoRows(err) {
		return errs.Mark(infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound), sentinel)
	}
	return infra.WrapRepoErr(failureMsg, err)
}
