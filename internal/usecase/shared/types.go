package shared

import (
	"context"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStaleQuote          = errs.New("quote changed concurrently")
	ErrFeatureDisabled     = errs.New("feature not enabled for the tenant plan")
	ErrPlanLimitExceeded   = errs.New("plan usage limit exceeded")
	ErrRendererUnavailable = errs.New("document renderer unavailable")
)

const (
	OutboxQueued = "queued"
	OutboxSent   = "sent"
	OutboxFailed = "failed"
	// OutboxDead jobs exhausted their attempts and are no longer claimed.
	OutboxDead = "dead"
)

type Notification struct {
	TenantID   uuid.UUID
	Event      string
	QuoteID    uuid.UUID
	Payload    map[string]any
	OccurredAt time.Time
}

type OutboxJob struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Event     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError *string
	CreatedAt time.Time
}

// NotificationPublisher hands events to the dispatcher. Callers never fail a
// business operation on its error.
type NotificationPublisher interface {
	Publish(ctx context.Context, n Notification) error
}

type Feature string

const (
	FeatureQuotes        Feature = "quotes"
	FeatureServiceOrders Feature = "service_orders"
)

// EntitlementChecker consults the billing collaborator. CheckFeature returns
// ErrFeatureDisabled and CheckUsage returns ErrPlanLimitExceeded on refusal.
type EntitlementChecker interface {
	CheckFeature(ctx context.Context, tenantID uuid.UUID, feature Feature) error
	CheckUsage(ctx context.Context, tenantID uuid.UUID, feature Feature) error
}

type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

type PDFRenderer interface {
	Render(ctx context.Context, snapshot quote.Snapshot) (*Document, error)
}

// TokenCache maps public tokens to quote ids. The store stays authoritative.
type TokenCache interface {
	Lookup(ctx context.Context, tenantID uuid.UUID, token string) (uuid.UUID, bool, error)
	Remember(ctx context.Context, tenantID uuid.UUID, token string, quoteID uuid.UUID, expiresAt time.Time) error
	Forget(ctx context.Context, tenantID uuid.UUID, token string) error
}
