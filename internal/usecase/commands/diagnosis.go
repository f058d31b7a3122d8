package commands

import (
	"context"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/staff"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type DiagnosisCommands interface {
	Complete(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, in quote.DiagnosisInput) (*quote.Quote, error)
}

type diagnosisUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	events emitter
}

func NewDiagnosisUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher shared.NotificationPublisher) DiagnosisCommands {
	return &diagnosisUseCaseImpl{uow: uow, clock: clk, events: newEmitter(publisher, clk)}
}

// Complete records the diagnosis of the assigned mechanic. Repeating it while DIAGNOSED
// replaces the previous diagnosis.
func (uc *diagnosisUseCaseImpl) Complete(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, in quote.DiagnosisInput) (*quote.Quote, error) {
	now := uc.clock.Now()
	q, _, err := mutateQuote(ctx, uc.uow, actor.TenantID, quoteID, quote.ActionCompleteDiagnosis, func(q *quote.Quote) (bool, error) {
		return true, q.CompleteDiagnosis(actor.UserID, in, now)
	})
	if err != nil {
		return nil, err
	}
	uc.events.emit(ctx, q, EventDiagnosed, map[string]any{"mechanic_id": actor.UserID.String()})
	return q, nil
}
