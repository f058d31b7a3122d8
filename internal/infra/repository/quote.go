package repository

import (
	"context"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/infra"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/repository/converter"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/pkg/pgconv"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type QuoteWriteQueries interface {
	NextQuoteNumber(ctx context.Context, db pgsql.DBTX, tenantID uuid.UUID) (int64, error)
	CreateQuote(ctx context.Context, db pgsql.DBTX, arg pgsql.Quote) error
	GetQuoteByIDForUpdate(ctx context.Context, db pgsql.DBTX, tenantID, id uuid.UUID) (pgsql.Quote, error)
	QuoteHasRevision(ctx context.Context, db pgsql.DBTX, tenantID, id uuid.UUID) (bool, error)
	UpdateQuoteIfStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.Quote, expectedStatus string) (int64, error)
	UpdateQuoteAssignee(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateQuoteAssigneeParams) (int64, error)
	MarkQuoteConverted(ctx context.Context, db pgsql.DBTX, arg pgsql.MarkQuoteConvertedParams) (int64, error)
}

// QuoteRepository is bound to one transaction.
type QuoteRepository struct {
	queries QuoteWriteQueries
	db      pgsql.DBTX
}

var _ shared.QuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(queries QuoteWriteQueries, db pgsql.DBTX) *QuoteRepository {
	return &QuoteRepository{
		queries: queries,
		db:      db,
	}
}

func (r *QuoteRepository) NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	n, err := r.queries.NextQuoteNumber(ctx, r.db, tenantID)
	if err != nil {
		return "", infra.WrapRepoErr("failed to allocate quote number", err)
	}
	return quote.FormatNumber(n), nil
}

func (r *QuoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	row, err := converter.QuoteToRow(q)
	if err != nil {
		return err
	}
	if err := r.queries.CreateQuote(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to create quote", err)
	}
	return nil
}

func (r *QuoteRepository) FindForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	row, err := r.queries.GetQuoteByIDForUpdate(ctx, r.db, tenantID, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("quote not found", err, infra.KindNotFound), quote.ErrNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock quote", err)
	}
	return converter.QuoteFromRow(row)
}

func (r *QuoteRepository) HasRevision(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	exists, err := r.queries.QuoteHasRevision(ctx, r.db, tenantID, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up quote revisions", err)
	}
	return exists, nil
}

func (r *QuoteRepository) CompareAndSetStatus(ctx context.Context, q *quote.Quote, expected quote.Status) error {
	row, err := converter.QuoteToRow(q)
	if err != nil {
		return err
	}
	affected, err := r.queries.UpdateQuoteIfStatus(ctx, r.db, row, expected.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update quote", err)
	}
	if affected == 0 {
		return shared.ErrStaleQuote
	}
	return nil
}

func (r *QuoteRepository) CompareAndSetAssignee(ctx context.Context, q *quote.Quote, expected *uuid.UUID) error {
	params := pgsql.UpdateQuoteAssigneeParams{
		TenantID:           q.TenantID(),
		ID:                 q.ID(),
		Status:             q.Status().String(),
		ExpectedMechanicID: pgconv.UUIDPtrToPgtype(expected),
		UpdatedAt:          pgconv.TimeToPgtype(q.UpdatedAt()),
	}
	if a := q.Assignment(); a != nil {
		params.MechanicID = pgconv.UUIDToPgtype(a.MechanicID)
		params.AssignedAt = pgconv.TimeToPgtype(a.AssignedAt)
	} else {
		params.MechanicID = pgtype.UUID{}
		params.AssignedAt = pgtype.Timestamptz{}
	}

	affected, err := r.queries.UpdateQuoteAssignee(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update quote assignee", err)
	}
	if affected == 0 {
		return shared.ErrStaleQuote
	}
	return nil
}

func (r *QuoteRepository) CompareAndSetConversion(ctx context.Context, q *quote.Quote) error {
	conv := q.Conversion()
	if conv == nil {
		return errs.Newf("quote %s has no conversion to store", q.ID())
	}
	affected, err := r.queries.MarkQuoteConverted(ctx, r.db, pgsql.MarkQuoteConvertedParams{
		TenantID:       q.TenantID(),
		ID:             q.ID(),
		ServiceOrderID: conv.ServiceOrderID,
		ConvertedAt:    pgconv.TimeToPgtype(conv.ConvertedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark quote converted", err)
	}
	if affected == 0 {
		return quote.ErrConversionConflict
	}
	return nil
}
