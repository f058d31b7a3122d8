package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/readstore"
	"workshop-quotes/internal/infra/repository"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgsql.Queries
}

var _ shared.UnitOfWork = (*PostgresUoW)(nil)

func NewPostgresUoW(pool *pgxpool.Pool, q *pgsql.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted plus row locks from FindForUpdate; compare-and-set guards the rest.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) Reads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgsql.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	quoteRepo        shared.QuoteRepository
	serviceOrderRepo shared.ServiceOrderRepository
}

func (t *pgTx) Quotes() shared.QuoteRepository {
	if t.quoteRepo == nil {
		t.quoteRepo = repository.NewQuoteRepository(t.uow.q, t.dbtx)
	}
	return t.quoteRepo
}

func (t *pgTx) ServiceOrders() shared.ServiceOrderRepository {
	if t.serviceOrderRepo == nil {
		t.serviceOrderRepo = repository.NewServiceOrderRepository(t.uow.q, t.dbtx)
	}
	return t.serviceOrderRepo
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgsql.DBTX

	// Lazy-initialized readstores
	quoteStore        *readstore.QuoteReadStore
	serviceOrderStore *readstore.ServiceOrderReadStore
}

func (r *commandReads) quotes() *readstore.QuoteReadStore {
	if r.quoteStore == nil {
		r.quoteStore = readstore.NewQuoteReadStore(r.uow.q, r.dbtx)
	}
	return r.quoteStore
}

func (r *commandReads) QuoteByID(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	return r.quotes().FindByID(ctx, tenantID, id)
}

func (r *commandReads) QuoteByToken(ctx context.Context, tenantID uuid.UUID, token string) (*quote.Quote, error) {
	return r.quotes().FindByToken(ctx, tenantID, token)
}

func (r *commandReads) HasRevision(ctx context.Context, tenantID, id uuid.UUID) (bool, error) {
	return repository.NewQuoteRepository(r.uow.q, r.dbtx).HasRevision(ctx, tenantID, id)
}

func (r *commandReads) ServiceOrderByID(ctx context.Context, tenantID, id uuid.UUID) (*serviceorder.ServiceOrder, error) {
	if r.serviceOrderStore == nil {
		r.serviceOrderStore = readstore.NewServiceOrderReadStore(r.uow.q, r.dbtx)
	}
	return r.serviceOrderStore.FindByID(ctx, tenantID, id)
}
