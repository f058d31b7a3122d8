package commands

import (
	"context"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/staff"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssignmentCommands interface {
	// Assign sets or clears the mechanic unconditionally. A nil mechanic returns the quote to the pool.
	Assign(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, mechanicID *uuid.UUID, reason string) (*quote.Quote, error)
	// Claim takes an unassigned quote for the calling mechanic.
	Claim(ctx context.Context, actor staff.Actor, quoteID uuid.UUID) (*quote.Quote, error)
}

type assignmentUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	events emitter
}

func NewAssignmentUseCase(uow shared.UnitOfWork, clk clock.Clock, publisher shared.NotificationPublisher) AssignmentCommands {
	return &assignmentUseCaseImpl{uow: uow, clock: clk, events: newEmitter(publisher, clk)}
}

func (uc *assignmentUseCaseImpl) Assign(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, mechanicID *uuid.UUID, reason string) (*quote.Quote, error) {
	now := uc.clock.Now()

	var (
		updated  *quote.Quote
		previous *uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, err := tx.Quotes().FindForUpdate(ctx, actor.TenantID, quoteID)
		if err != nil {
			return err
		}
		if a := q.Assignment(); a != nil {
			previous = &a.MechanicID
		}
		if err := q.AssignMechanic(mechanicID, now); err != nil {
			return err
		}
		if err := tx.Quotes().CompareAndSetAssignee(ctx, q, previous); err != nil {
			return err
		}
		updated = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	extra := map[string]any{"assigned_by": actor.UserID.String()}
	if mechanicID != nil {
		extra["mechanic_id"] = mechanicID.String()
	}
	if previous != nil {
		extra["previous_mechanic_id"] = previous.String()
	}
	if reason != "" {
		extra["reason"] = reason
	}
	uc.events.emit(ctx, updated, EventAssigned, extra)
	return updated, nil
}

func (uc *assignmentUseCaseImpl) Claim(ctx context.Context, actor staff.Actor, quoteID uuid.UUID) (*quote.Quote, error) {
	now := uc.clock.Now()

	var (
		claimed *quote.Quote
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, err := tx.Quotes().FindForUpdate(ctx, actor.TenantID, quoteID)
		if err != nil {
			return err
		}
		changed, err = q.Claim(actor.UserID, now)
		if err != nil {
			return err
		}
		if changed {
			// Only an empty assignee can be claimed; the store decides the race.
			if err := tx.Quotes().CompareAndSetAssignee(ctx, q, nil); err != nil {
				if errs.Is(err, shared.ErrStaleQuote) {
					return quote.ErrAlreadyClaimed
				}
				return err
			}
		}
		claimed = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		uc.events.emit(ctx, claimed, EventClaimed, map[string]any{"mechanic_id": actor.UserID.String()})
	}
	return claimed, nil
}
