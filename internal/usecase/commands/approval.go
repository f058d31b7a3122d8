package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/domain/staff"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApprovalResult struct {
	Quote        *quote.Quote
	ServiceOrder *serviceorder.ServiceOrder
	// AlreadyApproved is true when the call replayed an earlier approval.
	AlreadyApproved bool
}

type ApprovalCommands interface {
	ViewByToken(ctx context.Context, tenantID uuid.UUID, token string) (*quote.Quote, error)
	ApproveByToken(ctx context.Context, tenantID uuid.UUID, token string, signature *string) (*ApprovalResult, error)
	RejectByToken(ctx context.Context, tenantID uuid.UUID, token string, reason string) (*quote.Quote, error)
	ApproveManually(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, signature *string, notes string) (*ApprovalResult, error)
	RejectManually(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, reason string) (*quote.Quote, error)
}

type approvalUseCaseImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	issuer       *quote.TokenIssuer
	converter    ConversionCommands
	entitlements shared.EntitlementChecker
	cache        shared.TokenCache
	events       emitter
}

func NewApprovalUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	issuer *quote.TokenIssuer,
	converter ConversionCommands,
	entitlements shared.EntitlementChecker,
	cache shared.TokenCache,
	publisher shared.NotificationPublisher,
) ApprovalCommands {
	return &approvalUseCaseImpl{
		uow:          uow,
		clock:        clk,
		issuer:       issuer,
		converter:    converter,
		entitlements: entitlements,
		cache:        cache,
		events:       newEmitter(publisher, clk),
	}
}

func (uc *approvalUseCaseImpl) ViewByToken(ctx context.Context, tenantID uuid.UUID, token string) (*quote.Quote, error) {
	now := uc.clock.Now()
	q, err := uc.resolve(ctx, tenantID, token, now)
	if err != nil {
		return nil, err
	}
	if q.Status() != quote.StatusSent || q.ViewedAt() != nil {
		return q, nil
	}

	viewed, changed, err := mutateQuote(ctx, uc.uow, tenantID, q.ID(), quote.ActionView, func(q *quote.Quote) (bool, error) {
		if err := uc.issuer.Validate(q, token, tenantID, now); err != nil {
			return false, err
		}
		return q.View(now)
	})
	if err != nil {
		return nil, uc.reportTokenFailure(ctx, tenantID, token, err)
	}
	if changed {
		uc.events.emit(ctx, viewed, EventViewed, nil)
	}
	return viewed, nil
}

func (uc *approvalUseCaseImpl) ApproveByToken(ctx context.Context, tenantID uuid.UUID, token string, signature *string) (*ApprovalResult, error) {
	now := uc.clock.Now()
	q, err := uc.resolve(ctx, tenantID, token, now)
	if err != nil {
		return nil, err
	}
	return uc.approve(ctx, q, quote.ApprovalInput{Method: quote.ApprovalDigital, Signature: signature}, token, now)
}

func (uc *approvalUseCaseImpl) ApproveManually(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, signature *string, notes string) (*ApprovalResult, error) {
	now := uc.clock.Now()
	q, err := uc.uow.Reads().QuoteByID(ctx, actor.TenantID, quoteID)
	if err != nil {
		return nil, err
	}
	approver := actor.UserID
	return uc.approve(ctx, q, quote.ApprovalInput{
		Method:     quote.ApprovalManual,
		Signature:  signature,
		Notes:      notes,
		ApprovedBy: &approver,
	}, "", now)
}

// approve accepts q and converts it in the same call. An empty token skips link
// validation for trusted staff callers.
func (uc *approvalUseCaseImpl) approve(ctx context.Context, q *quote.Quote, in quote.ApprovalInput, token string, now time.Time) (*ApprovalResult, error) {
	tenantID := q.TenantID()
	if q.HasConversion() {
		return uc.replay(ctx, tenantID, q.ID())
	}
	switch q.Status() {
	case quote.StatusSent, quote.StatusViewed, quote.StatusAccepted:
		// Checked once here; the conversion below skips its own check.
		if err := checkEntitled(ctx, uc.entitlements, tenantID, shared.FeatureServiceOrders); err != nil {
			return nil, err
		}
	}

	approved, changed, err := mutateQuote(ctx, uc.uow, tenantID, q.ID(), quote.ActionApprove, func(q *quote.Quote) (bool, error) {
		if token != "" {
			if err := uc.issuer.Validate(q, token, tenantID, now); err != nil {
				return false, err
			}
		}
		already, err := q.Approve(in, now)
		return !already, err
	})
	if err != nil {
		return nil, uc.reportTokenFailure(ctx, tenantID, token, err)
	}
	if changed {
		extra := map[string]any{"approval_method": string(in.Method)}
		if in.ApprovedBy != nil {
			extra["approved_by"] = in.ApprovedBy.String()
		}
		uc.events.emit(ctx, approved, EventApproved, extra)
	}

	// An accepted quote whose earlier conversion failed is converted here.
	conv, err := uc.convert(ctx, tenantID, approved.ID())
	if err != nil {
		return nil, err
	}
	return &ApprovalResult{Quote: conv.Quote, ServiceOrder: conv.ServiceOrder, AlreadyApproved: !changed}, nil
}

// uncheckedConverter runs the conversion without the entitlement check.
type uncheckedConverter interface {
	convert(ctx context.Context, tenantID, quoteID uuid.UUID) (*ConversionResult, error)
}

func (uc *approvalUseCaseImpl) convert(ctx context.Context, tenantID, quoteID uuid.UUID) (*ConversionResult, error) {
	if c, ok := uc.converter.(uncheckedConverter); ok {
		return c.convert(ctx, tenantID, quoteID)
	}
	return uc.converter.Convert(ctx, tenantID, quoteID)
}

func (uc *approvalUseCaseImpl) replay(ctx context.Context, tenantID, quoteID uuid.UUID) (*ApprovalResult, error) {
	conv, err := uc.converter.Convert(ctx, tenantID, quoteID)
	if err != nil {
		return nil, err
	}
	return &ApprovalResult{Quote: conv.Quote, ServiceOrder: conv.ServiceOrder, AlreadyApproved: true}, nil
}

func (uc *approvalUseCaseImpl) RejectByToken(ctx context.Context, tenantID uuid.UUID, token string, reason string) (*quote.Quote, error) {
	now := uc.clock.Now()
	q, err := uc.resolve(ctx, tenantID, token, now)
	if err != nil {
		return nil, err
	}
	return uc.reject(ctx, tenantID, q.ID(), reason, nil, token, now)
}

func (uc *approvalUseCaseImpl) RejectManually(ctx context.Context, actor staff.Actor, quoteID uuid.UUID, reason string) (*quote.Quote, error) {
	rejecter := actor.UserID
	return uc.reject(ctx, actor.TenantID, quoteID, reason, &rejecter, "", uc.clock.Now())
}

func (uc *approvalUseCaseImpl) reject(ctx context.Context, tenantID, quoteID uuid.UUID, reason string, by *uuid.UUID, token string, now time.Time) (*quote.Quote, error) {
	rejected, changed, err := mutateQuote(ctx, uc.uow, tenantID, quoteID, quote.ActionReject, func(q *quote.Quote) (bool, error) {
		if token != "" {
			if err := uc.issuer.Validate(q, token, tenantID, now); err != nil {
				return false, err
			}
		}
		already, err := q.Reject(reason, by, now)
		return !already, err
	})
	if err != nil {
		return nil, uc.reportTokenFailure(ctx, tenantID, token, err)
	}
	if changed {
		extra := map[string]any{"reason": reason}
		if by != nil {
			extra["rejected_by"] = by.String()
		}
		uc.events.emit(ctx, rejected, EventRejected, extra)
	}
	return rejected, nil
}

// resolve finds the quote behind a public token and validates the link. Every
// failure surfaces as the same TokenInvalid error, including a link to a quote
// that a newer revision replaced.
func (uc *approvalUseCaseImpl) resolve(ctx context.Context, tenantID uuid.UUID, token string, now time.Time) (*quote.Quote, error) {
	q, err := uc.lookup(ctx, tenantID, token)
	if err != nil && !errs.Is(err, quote.ErrNotFound) {
		return nil, err
	}
	if err := uc.issuer.Validate(q, token, tenantID, now); err != nil {
		return nil, uc.reportTokenFailure(ctx, tenantID, token, err)
	}
	if q.Supersedable() {
		if err := ensureCurrent(ctx, uc.uow.Reads(), q, quote.ActionView); err != nil {
			return nil, uc.reportTokenFailure(ctx, tenantID, token, err)
		}
	}
	return q, nil
}

func (uc *approvalUseCaseImpl) lookup(ctx context.Context, tenantID uuid.UUID, token string) (*quote.Quote, error) {
	if token == "" {
		return nil, quote.ErrNotFound
	}
	if uc.cache != nil {
		id, ok, err := uc.cache.Lookup(ctx, tenantID, token)
		if err != nil {
			slog.WarnContext(ctx, "public token cache lookup failed", "error", err.Error())
		}
		if ok {
			q, err := uc.uow.Reads().QuoteByID(ctx, tenantID, id)
			if err == nil && q.Link() != nil && q.Link().Token == token {
				return q, nil
			}
		}
	}

	q, err := uc.uow.Reads().QuoteByToken(ctx, tenantID, token)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if link := q.Link(); link != nil {
			if err := uc.cache.Remember(ctx, tenantID, token, q.ID(), link.ExpiresAt); err != nil {
				slog.WarnContext(ctx, "failed to cache public token", "quote_id", q.ID().String(), "error", err.Error())
			}
		}
	}
	return q, nil
}

// reportTokenFailure logs rejected links. Behind a token, a superseded quote is
// reported as an invalid link.
func (uc *approvalUseCaseImpl) reportTokenFailure(ctx context.Context, tenantID uuid.UUID, token string, err error) error {
	if token != "" && quote.IsSuperseded(err) {
		err = &quote.TokenError{Reason: quote.TokenSuperseded}
	}
	var tokenErr *quote.TokenError
	if errors.As(err, &tokenErr) {
		slog.InfoContext(ctx, "public token rejected",
			"tenant_id", tenantID.String(),
			"reason", string(tokenErr.Reason))
	}
	return err
}
