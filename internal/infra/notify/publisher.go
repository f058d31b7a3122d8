// Package notify moves quote events out of the request path. Publishers write
// them to the outbox; the dispatcher drains the outbox into a Sink.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

// Envelope is the wire format handed to sinks.
type Envelope struct {
	ID         uuid.UUID      `json:"id"`
	TenantID   uuid.UUID      `json:"tenant_id"`
	Event      string         `json:"event"`
	QuoteID    uuid.UUID      `json:"quote_id"`
	OccurredAt string         `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

type OutboxPublisher struct {
	outbox shared.OutboxRepository
}

var _ shared.NotificationPublisher = (*OutboxPublisher)(nil)

func NewOutboxPublisher(outbox shared.OutboxRepository) *OutboxPublisher {
	return &OutboxPublisher{outbox: outbox}
}

func (p *OutboxPublisher) Publish(ctx context.Context, n shared.Notification) error {
	id := uuid.New()
	body, err := json.Marshal(Envelope{
		ID:         id,
		TenantID:   n.TenantID,
		Event:      n.Event,
		QuoteID:    n.QuoteID,
		OccurredAt: n.OccurredAt.UTC().Format(time.RFC3339Nano),
		Data:       n.Payload,
	})
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}

	return p.outbox.Enqueue(ctx, shared.OutboxJob{
		ID:        id,
		TenantID:  n.TenantID,
		Event:     n.Event,
		Payload:   body,
		RunAt:     n.OccurredAt,
		Status:    shared.OutboxQueued,
		CreatedAt: n.OccurredAt,
	})
}
