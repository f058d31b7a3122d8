package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/staff"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemInput struct {
	Name     string
	Quantity float64
	UnitCost float64
}

type CostsInput struct {
	LaborCost float64
	PartsCost float64
	Discount  float64
	TaxAmount float64
}

type CreateQuoteInput struct {
	CustomerID uuid.UUID
	VehicleID  uuid.UUID
	ElevatorID *uuid.UUID
	Reported   quote.ReportedProblem
	Items      []ItemInput
	Costs      CostsInput
}

type SendResult struct {
	Quote     *quote.Quote
	PublicURL string
	// Reused is true when a resend kept the live link.
	Reused bool
}

type QuoteCommands interface {
	Create(ctx context.Context, actor staff.Actor, in CreateQuoteInput) (*quote.Quote, error)
	UpdateItems(ctx context.Context, actor staff.Actor, id uuid.UUID, items []ItemInput, costs CostsInput) (*quote.Quote, error)
	SendForDiagnosis(ctx context.Context, actor staff.Actor, id uuid.UUID) (*quote.Quote, error)
	SendToCustomer(ctx context.Context, actor staff.Actor, id uuid.UUID) (*SendResult, error)
	RegenerateToken(ctx context.Context, actor staff.Actor, id uuid.UUID) (*SendResult, error)
	CreateRevision(ctx context.Context, actor staff.Actor, id uuid.UUID) (*quote.Quote, error)
	GeneratePDF(ctx context.Context, actor staff.Actor, id uuid.UUID) (*shared.Document, error)
}

// PublicLinks renders customer-facing URLs for approval tokens.
type PublicLinks struct {
	BaseURL string
}

func (l PublicLinks) URL(tenantID uuid.UUID, token string) string {
	return strings.TrimRight(l.BaseURL, "/") + "/" + tenantID.String() + "/quotes/" + token
}

type quoteUseCaseImpl struct {
	uow          shared.UnitOfWork
	clock        clock.Clock
	issuer       *quote.TokenIssuer
	entitlements shared.EntitlementChecker
	cache        shared.TokenCache
	renderer     shared.PDFRenderer
	links        PublicLinks
	events       emitter
}

func NewQuoteUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	issuer *quote.TokenIssuer,
	entitlements shared.EntitlementChecker,
	cache shared.TokenCache,
	renderer shared.PDFRenderer,
	publisher shared.NotificationPublisher,
	links PublicLinks,
) QuoteCommands {
	return &quoteUseCaseImpl{
		uow:          uow,
		clock:        clk,
		issuer:       issuer,
		entitlements: entitlements,
		cache:        cache,
		renderer:     renderer,
		links:        links,
		events:       newEmitter(publisher, clk),
	}
}

func buildItems(in []ItemInput) ([]quote.Item, error) {
	items := make([]quote.Item, 0, len(in))
	for _, it := range in {
		item, err := quote.NewItem(it.Name, it.Quantity, quote.MoneyFromFloat(it.UnitCost))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func buildCosts(in CostsInput) quote.Costs {
	return quote.Costs{
		LaborCost: quote.MoneyFromFloat(in.LaborCost),
		PartsCost: quote.MoneyFromFloat(in.PartsCost),
		Discount:  quote.MoneyFromFloat(in.Discount),
		TaxAmount: quote.MoneyFromFloat(in.TaxAmount),
	}
}

func checkEntitled(ctx context.Context, checker shared.EntitlementChecker, tenantID uuid.UUID, feature shared.Feature) error {
	if checker == nil {
		return nil
	}
	if err := checker.CheckFeature(ctx, tenantID, feature); err != nil {
		return err
	}
	return checker.CheckUsage(ctx, tenantID, feature)
}

func (uc *quoteUseCaseImpl) Create(ctx context.Context, actor staff.Actor, in CreateQuoteInput) (*quote.Quote, error) {
	items, err := buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	if err := checkEntitled(ctx, uc.entitlements, actor.TenantID, shared.FeatureQuotes); err != nil {
		return nil, err
	}

	var created *quote.Quote
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		number, err := tx.Quotes().NextNumber(ctx, actor.TenantID)
		if err != nil {
			return err
		}
		q, err := quote.NewQuote(quote.NewQuoteParams{
			TenantID:   actor.TenantID,
			Number:     number,
			CustomerID: in.CustomerID,
			VehicleID:  in.VehicleID,
			ElevatorID: in.ElevatorID,
			CreatedBy:  actor.UserID,
			Reported:   in.Reported,
			Items:      items,
			Costs:      buildCosts(in.Costs),
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Quotes().Create(ctx, q); err != nil {
			return err
		}
		created = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *quoteUseCaseImpl) UpdateItems(ctx context.Context, actor staff.Actor, id uuid.UUID, in []ItemInput, costsIn CostsInput) (*quote.Quote, error) {
	items, err := buildItems(in)
	if err != nil {
		return nil, err
	}
	costs := buildCosts(costsIn)
	now := uc.clock.Now()

	q, _, err := mutateQuote(ctx, uc.uow, actor.TenantID, id, quote.ActionUpdateItems, func(q *quote.Quote) (bool, error) {
		return true, q.UpdatePricing(items, costs, now)
	})
	return q, err
}

func (uc *quoteUseCaseImpl) SendForDiagnosis(ctx context.Context, actor staff.Actor, id uuid.UUID) (*quote.Quote, error) {
	now := uc.clock.Now()
	q, _, err := mutateQuote(ctx, uc.uow, actor.TenantID, id, quote.ActionSendForDiagnosis, func(q *quote.Quote) (bool, error) {
		return true, q.SendForDiagnosis(now)
	})
	if err != nil {
		return nil, err
	}
	uc.events.emit(ctx, q, EventSentForDiagnosis, nil)
	return q, nil
}

func (uc *quoteUseCaseImpl) SendToCustomer(ctx context.Context, actor staff.Actor, id uuid.UUID) (*SendResult, error) {
	now := uc.clock.Now()
	var (
		reused  bool
		oldLink *quote.PublicLink
	)
	q, _, err := mutateQuote(ctx, uc.uow, actor.TenantID, id, quote.ActionSendToCustomer, func(q *quote.Quote) (bool, error) {
		oldLink = q.Link()
		r, err := q.SendToCustomer(uc.issuer, now)
		reused = r
		return !r, err
	})
	if err != nil {
		return nil, err
	}

	link := q.Link()
	if !reused {
		uc.rotateCachedToken(ctx, q, oldLink)
		uc.events.emit(ctx, q, EventSent, map[string]any{
			"public_url": uc.links.URL(q.TenantID(), link.Token),
			"expires_at": link.ExpiresAt.Format(time.RFC3339),
		})
	}
	return &SendResult{Quote: q, PublicURL: uc.links.URL(q.TenantID(), link.Token), Reused: reused}, nil
}

func (uc *quoteUseCaseImpl) RegenerateToken(ctx context.Context, actor staff.Actor, id uuid.UUID) (*SendResult, error) {
	now := uc.clock.Now()
	var oldLink *quote.PublicLink
	q, _, err := mutateQuote(ctx, uc.uow, actor.TenantID, id, quote.ActionRegenerateToken, func(q *quote.Quote) (bool, error) {
		oldLink = q.Link()
		return true, q.RegenerateToken(uc.issuer, now)
	})
	if err != nil {
		return nil, err
	}

	link := q.Link()
	uc.rotateCachedToken(ctx, q, oldLink)
	uc.events.emit(ctx, q, EventTokenRegenerated, map[string]any{
		"public_url": uc.links.URL(q.TenantID(), link.Token),
		"expires_at": link.ExpiresAt.Format(time.RFC3339),
	})
	return &SendResult{Quote: q, PublicURL: uc.links.URL(q.TenantID(), link.Token)}, nil
}

func (uc *quoteUseCaseImpl) rotateCachedToken(ctx context.Context, q *quote.Quote, old *quote.PublicLink) {
	if uc.cache == nil {
		return
	}
	if old != nil {
		if err := uc.cache.Forget(ctx, q.TenantID(), old.Token); err != nil {
			slog.WarnContext(ctx, "failed to evict public token", "quote_id", q.ID().String(), "error", err.Error())
		}
	}
	link := q.Link()
	if err := uc.cache.Remember(ctx, q.TenantID(), link.Token, q.ID(), link.ExpiresAt); err != nil {
		slog.WarnContext(ctx, "failed to cache public token", "quote_id", q.ID().String(), "error", err.Error())
	}
}

func (uc *quoteUseCaseImpl) CreateRevision(ctx context.Context, actor staff.Actor, id uuid.UUID) (*quote.Quote, error) {
	if err := checkEntitled(ctx, uc.entitlements, actor.TenantID, shared.FeatureQuotes); err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var revision *quote.Quote
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		source, err := tx.Quotes().FindForUpdate(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		// The parent row lock serializes concurrent revisions of the same quote.
		if err := ensureCurrent(ctx, tx.Quotes(), source, quote.ActionRevise); err != nil {
			return err
		}
		rev, err := source.NewRevision(uuid.New(), actor.UserID, now)
		if err != nil {
			return err
		}
		if err := tx.Quotes().Create(ctx, rev); err != nil {
			return err
		}
		revision = rev
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.events.emit(ctx, revision, EventRevised, map[string]any{"parent_quote_id": id.String()})
	return revision, nil
}

func (uc *quoteUseCaseImpl) GeneratePDF(ctx context.Context, actor staff.Actor, id uuid.UUID) (*shared.Document, error) {
	q, err := uc.uow.Reads().QuoteByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if uc.renderer == nil {
		return nil, shared.ErrRendererUnavailable
	}
	doc, err := uc.renderer.Render(ctx, q.Snapshot())
	if err != nil {
		return nil, errs.Wrapf(err, "render quote %s", q.Number())
	}
	return doc, nil
}
