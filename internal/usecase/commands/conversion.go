package commands

import (
	"context"
	"log/slog"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConversionResult struct {
	Quote        *quote.Quote
	ServiceOrder *serviceorder.ServiceOrder
	// AlreadyConverted is true when an earlier call created the service order.
	AlreadyConverted bool
}

type ConversionCommands interface {
	Convert(ctx context.Context, tenantID, quoteID uuid.UUID) (*ConversionResult, error)
}

type conversionUseCaseImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	entitlements shared.EntitlementChecker
	events       emitter
}

func NewConversionUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	entitlements shared.EntitlementChecker,
	publisher shared.NotificationPublisher,
) ConversionCommands {
	return &conversionUseCaseImpl{
		uow:          uow,
		clock:        clk,
		entitlements: entitlements,
		events:       newEmitter(publisher, clk),
	}
}

// Convert creates the service order for an accepted quote exactly once. Later calls
// return the order created by the first one.
func (uc *conversionUseCaseImpl) Convert(ctx context.Context, tenantID, quoteID uuid.UUID) (*ConversionResult, error) {
	current, err := uc.uow.Reads().QuoteByID(ctx, tenantID, quoteID)
	if err != nil {
		return nil, err
	}
	if current.HasConversion() {
		return uc.existing(ctx, current)
	}
	if err := checkEntitled(ctx, uc.entitlements, tenantID, shared.FeatureServiceOrders); err != nil {
		return nil, err
	}
	return uc.convert(ctx, tenantID, quoteID)
}

// convert runs the conversion transaction without the entitlement check. Approval
// calls it directly after checking before its own mutation.
func (uc *conversionUseCaseImpl) convert(ctx context.Context, tenantID, quoteID uuid.UUID) (*ConversionResult, error) {
	now := uc.clock.Now()

	var (
		converted *quote.Quote
		order     *serviceorder.ServiceOrder
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, err := tx.Quotes().FindForUpdate(ctx, tenantID, quoteID)
		if err != nil {
			return err
		}
		if q.HasConversion() {
			return quote.ErrConversionConflict
		}
		if q.Status() != quote.StatusAccepted {
			return &quote.InvalidTransitionError{Action: quote.ActionConvert, From: q.Status()}
		}
		if err := ensureCurrent(ctx, tx.Quotes(), q, quote.ActionConvert); err != nil {
			return err
		}

		so, err := serviceorder.FromQuote(q, uuid.New(), now)
		if err != nil {
			return err
		}
		if err := q.MarkConverted(so.ID, now); err != nil {
			return err
		}
		// Order first so the quote's reference is satisfied; both roll back together.
		if err := tx.ServiceOrders().Create(ctx, so); err != nil {
			return err
		}
		if err := tx.Quotes().CompareAndSetConversion(ctx, q); err != nil {
			return err
		}
		converted, order = q, so
		return nil
	})
	if err != nil {
		if errs.IsAny(err, quote.ErrConversionConflict, shared.ErrStaleQuote) {
			slog.InfoContext(ctx, "conversion already applied, returning existing service order",
				"quote_id", quoteID.String())
			current, rerr := uc.uow.Reads().QuoteByID(ctx, tenantID, quoteID)
			if rerr != nil {
				return nil, rerr
			}
			if current.HasConversion() {
				return uc.existing(ctx, current)
			}
		}
		return nil, err
	}

	uc.events.emit(ctx, converted, EventConverted, map[string]any{
		"service_order_id":     order.ID.String(),
		"service_order_number": order.Number,
	})
	return &ConversionResult{Quote: converted, ServiceOrder: order}, nil
}

func (uc *conversionUseCaseImpl) existing(ctx context.Context, q *quote.Quote) (*ConversionResult, error) {
	so, err := uc.uow.Reads().ServiceOrderByID(ctx, q.TenantID(), q.Conversion().ServiceOrderID)
	if err != nil {
		return nil, err
	}
	return &ConversionResult{Quote: q, ServiceOrder: so, AlreadyConverted: true}, nil
}
