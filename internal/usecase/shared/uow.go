package shared

import (
	"context"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: Command-side lookups outside a transaction
	Reads() CommandReads
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Quotes() QuoteRepository
	ServiceOrders() ServiceOrderRepository
}

type CommandReads interface {
	QuoteByID(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error)
	QuoteByToken(ctx context.Context, tenantID uuid.UUID, token string) (*quote.Quote, error)
	ServiceOrderByID(ctx context.Context, tenantID, id uuid.UUID) (*serviceorder.ServiceOrder, error)
	HasRevision(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
}

// QuoteRepository writes only through compare-and-set operations. Each CAS returns
// ErrStaleQuote when the stored precondition no longer holds.
type QuoteRepository interface {
	NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
	Create(ctx context.Context, q *quote.Quote) error
	// FindForUpdate loads the quote and holds it until the transaction ends.
	FindForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error)
	// HasRevision reports whether a newer version names the quote as its parent.
	HasRevision(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
	// CompareAndSetStatus persists lifecycle and commercial fields if the stored status equals expected.
	CompareAndSetStatus(ctx context.Context, q *quote.Quote, expected quote.Status) error
	// CompareAndSetAssignee persists the assignment if the stored assignee equals expected (nil = pool).
	CompareAndSetAssignee(ctx context.Context, q *quote.Quote, expected *uuid.UUID) error
	// CompareAndSetConversion persists the conversion if the stored quote is ACCEPTED and unconverted.
	CompareAndSetConversion(ctx context.Context, q *quote.Quote) error
}

type ServiceOrderRepository interface {
	Create(ctx context.Context, so *serviceorder.ServiceOrder) error
}

// OutboxRepository stores notification jobs until the dispatcher delivers them.
type OutboxRepository interface {
	Enqueue(ctx context.Context, job OutboxJob) error
	ClaimPending(ctx context.Context, now time.Time, limit int) ([]OutboxJob, error)
	MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt, now time.Time) error
	MarkDead(ctx context.Context, id uuid.UUID, lastError string, now time.Time) error
}
