package commands

import (
	"context"
	"log/slog"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/usecase/shared"
)

const (
	EventSentForDiagnosis = "quote.sent_for_diagnosis"
	EventAssigned         = "quote.assigned"
	EventClaimed          = "quote.claimed"
	EventDiagnosed        = "quote.diagnosed"
	EventSent             = "quote.sent"
	EventTokenRegenerated = "quote.token_regenerated"
	EventViewed           = "quote.viewed"
	EventApproved         = "quote.approved"
	EventRejected         = "quote.rejected"
	EventConverted        = "quote.converted"
	EventRevised          = "quote.revised"
)

// emitter publishes after commit. Failures are logged and swallowed.
type emitter struct {
	publisher shared.NotificationPublisher
	clock     clock.Clock
}

func newEmitter(publisher shared.NotificationPublisher, clk clock.Clock) emitter {
	return emitter{publisher: publisher, clock: clk}
}

func (e emitter) emit(ctx context.Context, q *quote.Quote, event string, extra map[string]any) {
	if e.publisher == nil {
		return
	}
	payload := map[string]any{
		"quote_id": q.ID().String(),
		"number":   q.Number(),
		"version":  q.Version(),
		"status":   q.Status().String(),
	}
	for k, v := range extra {
		payload[k] = v
	}

	n := shared.Notification{
		TenantID:   q.TenantID(),
		Event:      event,
		QuoteID:    q.ID(),
		Payload:    payload,
		OccurredAt: e.clock.Now(),
	}
	// Detached from the request so a client disconnect does not drop the event.
	if err := e.publisher.Publish(context.WithoutCancel(ctx), n); err != nil {
		slog.WarnContext(ctx, "failed to publish quote notification",
			"event", event,
			"tenant_id", q.TenantID().String(),
			"quote_id", q.ID().String(),
			"error", err.Error())
	}
}
