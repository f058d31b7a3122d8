//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/infra/memstore"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Full lifecycle
// =============================================================================

func TestQuoteLifecycle_DigitalApprovalConvertsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	start := f.clock.Now()

	created := f.create(t)
	assert.Equal(t, "ORC-000001", created.Number())
	assert.Equal(t, quote.StatusDraft, created.Status())
	assert.Equal(t, int64(15000), created.Total().Cents())

	q, err := f.quotes.SendForDiagnosis(ctx, f.b.Manager(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, quote.StatusAwaitingDiagnosis, q.Status())

	q, err = f.assignment.Claim(ctx, f.b.Mechanic(), created.ID())
	require.NoError(t, err)
	require.NotNil(t, q.Assignment())
	assert.Equal(t, f.b.MechanicID, q.Assignment().MechanicID)

	q, err = f.diagnosis.Complete(ctx, f.b.Mechanic(), created.ID(), f.diagnosisInput())
	require.NoError(t, err)
	assert.Equal(t, quote.StatusDiagnosed, q.Status())

	sent, err := f.quotes.SendToCustomer(ctx, f.b.Manager(), created.ID())
	require.NoError(t, err)
	assert.False(t, sent.Reused)
	token := sent.Quote.Link().Token
	assert.True(t, strings.HasSuffix(sent.PublicURL, "/quotes/"+token))
	assert.Equal(t, start.Add(168*time.Hour), sent.Quote.Link().ExpiresAt)

	f.clock.Add(time.Hour)
	viewed, err := f.approval.ViewByToken(ctx, f.b.TenantID, token)
	require.NoError(t, err)
	assert.Equal(t, quote.StatusViewed, viewed.Status())

	f.clock.Add(time.Hour)
	res, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
	require.NoError(t, err)
	assert.False(t, res.AlreadyApproved)
	assert.Equal(t, quote.StatusConverted, res.Quote.Status())
	require.NotNil(t, res.ServiceOrder)
	assert.Equal(t, "OS-000001", res.ServiceOrder.Number)
	assert.Equal(t, int64(15000), res.ServiceOrder.Total.Cents())
	assert.Equal(t, f.b.MechanicID, *res.ServiceOrder.MechanicID)
	assert.Equal(t, quote.ApprovalDigital, res.Quote.Approval().Method)

	again, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
	require.NoError(t, err)
	assert.True(t, again.AlreadyApproved)
	assert.Equal(t, res.ServiceOrder.ID, again.ServiceOrder.ID)
	assert.Equal(t, 1, f.store.CountServiceOrders(created.ID()))

	assert.Equal(t, []string{
		commands.EventSentForDiagnosis,
		commands.EventClaimed,
		commands.EventDiagnosed,
		commands.EventSent,
		commands.EventViewed,
		commands.EventApproved,
		commands.EventConverted,
	}, f.publisher.names())
}

// =============================================================================
// Public token handling
// =============================================================================

func TestApproval_TokenFailures(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		tenant func(f *fixture) uuid.UUID
		token  func(real string) string
		setup  func(f *fixture)
	}{
		{
			name:   "error: unknown token",
			tenant: func(f *fixture) uuid.UUID { return f.b.TenantID },
			token:  func(string) string { return "not-a-real-token" },
		},
		{
			name:   "error: empty token",
			tenant: func(f *fixture) uuid.UUID { return f.b.TenantID },
			token:  func(string) string { return "" },
		},
		{
			name:   "error: token of another tenant",
			tenant: func(*fixture) uuid.UUID { return uuid.New() },
			token:  func(real string) string { return real },
		},
		{
			name:   "error: expired link",
			tenant: func(f *fixture) uuid.UUID { return f.b.TenantID },
			token:  func(real string) string { return real },
			setup:  func(f *fixture) { f.clock.Add(168*time.Hour + time.Second) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			q, token := f.sent(t)
			if tc.setup != nil {
				tc.setup(f)
			}
			tenant, tok := tc.tenant(f), tc.token(token)

			_, err := f.approval.ViewByToken(ctx, tenant, tok)
			assert.True(t, errs.Is(err, quote.ErrTokenInvalid), "view: %v", err)
			_, err = f.approval.ApproveByToken(ctx, tenant, tok, nil)
			assert.True(t, errs.Is(err, quote.ErrTokenInvalid), "approve: %v", err)
			_, err = f.approval.RejectByToken(ctx, tenant, tok, "caro demais")
			assert.True(t, errs.Is(err, quote.ErrTokenInvalid), "reject: %v", err)
			assert.Equal(t, "link invalid or expired", err.Error())

			stored := f.stored(t, q.ID())
			assert.Equal(t, quote.StatusSent, stored.Status())
			assert.Nil(t, stored.ViewedAt())
			assert.Zero(t, f.store.CountServiceOrders(q.ID()))
		})
	}
}

func TestApproval_ViewRecordsFirstViewOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q, token := f.sent(t)

	f.clock.Add(time.Hour)
	firstView := f.clock.Now()
	_, err := f.approval.ViewByToken(ctx, f.b.TenantID, token)
	require.NoError(t, err)

	f.clock.Add(time.Hour)
	viewed, err := f.approval.ViewByToken(ctx, f.b.TenantID, token)
	require.NoError(t, err)

	require.NotNil(t, viewed.ViewedAt())
	assert.Equal(t, firstView, *viewed.ViewedAt())
	assert.Equal(t, quote.StatusViewed, f.stored(t, q.ID()).Status())
	assert.Equal(t, 1, f.publisher.count(commands.EventViewed))
}

func TestApproval_ViewAfterApprovalLeavesQuoteUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q, token := f.sent(t)

	_, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
	require.NoError(t, err)

	viewed, err := f.approval.ViewByToken(ctx, f.b.TenantID, token)
	require.NoError(t, err)
	assert.Equal(t, quote.StatusConverted, viewed.Status())
	assert.Nil(t, viewed.ViewedAt())
	assert.Zero(t, f.publisher.count(commands.EventViewed))
	assert.Equal(t, 1, f.store.CountServiceOrders(q.ID()))
}

func TestApproval_RegeneratedTokenReplacesOldOne(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q, oldToken := f.sent(t)

	res, err := f.quotes.RegenerateToken(ctx, f.b.Manager(), q.ID())
	require.NoError(t, err)
	newToken := res.Quote.Link().Token
	assert.NotEqual(t, oldToken, newToken)

	_, err = f.approval.ViewByToken(ctx, f.b.TenantID, oldToken)
	assert.True(t, errs.Is(err, quote.ErrTokenInvalid))

	viewed, err := f.approval.ViewByToken(ctx, f.b.TenantID, newToken)
	require.NoError(t, err)
	assert.Equal(t, quote.StatusViewed, viewed.Status())
}

// =============================================================================
// Approval
// =============================================================================

func TestApproval_SignatureIsStored(t *testing.T) {
	f := newFixture(t)
	_, token := f.sent(t)
	sig := "data:image/png;base64,iVBORw0KGgo="

	res, err := f.approval.ApproveByToken(context.Background(), f.b.TenantID, token, &sig)
	require.NoError(t, err)
	require.NotNil(t, res.Quote.Approval().Signature)
	assert.Equal(t, sig, *res.Quote.Approval().Signature)
}

func TestApproval_ManualApprovalIgnoresLinkExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q, _ := f.sent(t)
	f.clock.Add(30 * 24 * time.Hour)

	res, err := f.approval.ApproveManually(ctx, f.b.Manager(), q.ID(), nil, "aprovado por telefone")
	require.NoError(t, err)
	assert.Equal(t, quote.StatusConverted, res.Quote.Status())
	approval := res.Quote.Approval()
	assert.Equal(t, quote.ApprovalManual, approval.Method)
	assert.Equal(t, "aprovado por telefone", approval.Notes)
	require.NotNil(t, approval.ApprovedBy)
	assert.Equal(t, f.b.CreatedBy, *approval.ApprovedBy)
}

func TestApproval_InvalidStatuses(t *testing.T) {
	ctx := context.Background()

	t.Run("error: approving a draft", func(t *testing.T) {
		f := newFixture(t)
		q := f.create(t)

		_, err := f.approval.ApproveManually(ctx, f.b.Manager(), q.ID(), nil, "")
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition), "got %v", err)
		assert.Equal(t, quote.StatusDraft, f.stored(t, q.ID()).Status())
	})

	t.Run("error: approving a rejected quote", func(t *testing.T) {
		f := newFixture(t)
		q, token := f.sent(t)
		_, err := f.approval.RejectByToken(ctx, f.b.TenantID, token, "")
		require.NoError(t, err)

		_, err = f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
		var transition *quote.InvalidTransitionError
		require.True(t, errors.As(err, &transition), "got %v", err)
		assert.Equal(t, quote.StatusRejected, transition.From)
		assert.Zero(t, f.store.CountServiceOrders(q.ID()))
	})

	t.Run("error: unknown quote", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.approval.ApproveManually(ctx, f.b.Manager(), uuid.New(), nil, "")
		assert.True(t, errs.Is(err, quote.ErrNotFound))
	})
}

func TestApproval_SupersededQuoteIsClosed(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		act     func(f *fixture, q *quote.Quote, token string) error
		wantErr error
	}{
		{
			name: "error: customer opens the old link",
			act: func(f *fixture, _ *quote.Quote, token string) error {
				_, err := f.approval.ViewByToken(ctx, f.b.TenantID, token)
				return err
			},
			wantErr: quote.ErrTokenInvalid,
		},
		{
			name: "error: customer approves through the old link",
			act: func(f *fixture, _ *quote.Quote, token string) error {
				_, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
				return err
			},
			wantErr: quote.ErrTokenInvalid,
		},
		{
			name: "error: customer rejects through the old link",
			act: func(f *fixture, _ *quote.Quote, token string) error {
				_, err := f.approval.RejectByToken(ctx, f.b.TenantID, token, "")
				return err
			},
			wantErr: quote.ErrTokenInvalid,
		},
		{
			name: "error: staff approves the old version",
			act: func(f *fixture, q *quote.Quote, _ string) error {
				_, err := f.approval.ApproveManually(ctx, f.b.Manager(), q.ID(), nil, "")
				return err
			},
			wantErr: quote.ErrInvalidTransition,
		},
		{
			name: "error: staff rejects the old version",
			act: func(f *fixture, q *quote.Quote, _ string) error {
				_, err := f.approval.RejectManually(ctx, f.b.Manager(), q.ID(), "")
				return err
			},
			wantErr: quote.ErrInvalidTransition,
		},
		{
			name: "error: staff regenerates the old link",
			act: func(f *fixture, q *quote.Quote, _ string) error {
				_, err := f.quotes.RegenerateToken(ctx, f.b.Manager(), q.ID())
				return err
			},
			wantErr: quote.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			q, token := f.sent(t)
			_, err := f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
			require.NoError(t, err)

			err = tc.act(f, q, token)
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)

			stored := f.stored(t, q.ID())
			assert.Equal(t, quote.StatusSent, stored.Status())
			assert.Nil(t, stored.ViewedAt())
			assert.Zero(t, f.store.CountServiceOrders(q.ID()))
			assert.Zero(t, f.publisher.count(commands.EventApproved))
			assert.Zero(t, f.publisher.count(commands.EventConverted))
		})
	}
}

func TestApproval_SupersededLinkReportsReason(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q, token := f.sent(t)
	_, err := f.approval.ViewByToken(ctx, f.b.TenantID, token)
	require.NoError(t, err)
	_, err = f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
	require.NoError(t, err)

	_, err = f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
	var tokenErr *quote.TokenError
	require.True(t, errors.As(err, &tokenErr), "got %v", err)
	assert.Equal(t, quote.TokenSuperseded, tokenErr.Reason)
	assert.Equal(t, quote.StatusViewed, f.stored(t, q.ID()).Status())
}

func TestApproval_ChecksServiceOrderEntitlementOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("success: approval through the link", func(t *testing.T) {
		f := newFixture(t)
		_, token := f.sent(t)

		_, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, f.entitlements.checks(shared.FeatureServiceOrders))
	})

	t.Run("success: retried approval of an accepted quote", func(t *testing.T) {
		store := memstore.New()
		f := newFixtureOn(t, store, failingOrdersUoW{Store: store})
		q, _ := f.sent(t)
		_, err := f.approval.ApproveManually(ctx, f.b.Manager(), q.ID(), nil, "")
		require.Error(t, err)
		require.Equal(t, 1, f.entitlements.checks(shared.FeatureServiceOrders))
		f.wire(store)

		_, err = f.approval.ApproveManually(ctx, f.b.Manager(), q.ID(), nil, "")
		require.NoError(t, err)
		assert.Equal(t, 2, f.entitlements.checks(shared.FeatureServiceOrders))
	})

	t.Run("success: standalone conversion still checks", func(t *testing.T) {
		store := memstore.New()
		f := newFixtureOn(t, store, failingOrdersUoW{Store: store})
		q, _ := f.sent(t)
		_, err := f.approval.ApproveManually(ctx, f.b.Manager(), q.ID(), nil, "")
		require.Error(t, err)
		f.wire(store)

		_, err = f.conversion.Convert(ctx, f.b.TenantID, q.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, f.entitlements.checks(shared.FeatureServiceOrders))
	})
}

func TestApproval_EntitlementRefusalLeavesQuoteOpen(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		setup   func(*fakeEntitlements)
		wantErr error
	}{
		{
			name:    "error: service orders not in plan",
			setup:   func(e *fakeEntitlements) { e.featureErr = shared.ErrFeatureDisabled },
			wantErr: shared.ErrFeatureDisabled,
		},
		{
			name:    "error: monthly limit reached",
			setup:   func(e *fakeEntitlements) { e.usageErr = shared.ErrPlanLimitExceeded },
			wantErr: shared.ErrPlanLimitExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			q, token := f.sent(t)
			tc.setup(f.entitlements)

			_, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
			assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
			assert.Equal(t, quote.StatusSent, f.stored(t, q.ID()).Status())
			assert.Zero(t, f.store.CountServiceOrders(q.ID()))
			assert.Zero(t, f.publisher.count(commands.EventApproved))
		})
	}
}

func TestApproval_FailedConversionRollsBackAndRetries(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	f := newFixtureOn(t, store, failingOrdersUoW{Store: store})
	q, token := f.sent(t)

	_, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	stored := f.stored(t, q.ID())
	assert.Equal(t, quote.StatusAccepted, stored.Status())
	assert.False(t, stored.HasConversion())
	assert.Zero(t, store.CountServiceOrders(q.ID()))
	assert.Zero(t, f.publisher.count(commands.EventConverted))

	f.wire(store)
	res, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
	require.NoError(t, err)
	assert.True(t, res.AlreadyApproved)
	assert.Equal(t, quote.StatusConverted, res.Quote.Status())
	assert.Equal(t, 1, store.CountServiceOrders(q.ID()))
	assert.Equal(t, 1, f.publisher.count(commands.EventApproved))
	assert.Equal(t, 1, f.publisher.count(commands.EventConverted))
}

func TestApproval_PublisherFailureDoesNotFailTheOperation(t *testing.T) {
	f := newFixture(t)
	f.publisher.err = errors.New("outbox unavailable")
	q, token := f.sent(t)

	res, err := f.approval.ApproveByToken(context.Background(), f.b.TenantID, token, nil)
	require.NoError(t, err)
	assert.Equal(t, quote.StatusConverted, res.Quote.Status())
	assert.Equal(t, 1, f.store.CountServiceOrders(q.ID()))
	assert.NotEmpty(t, f.publisher.names())
}

// =============================================================================
// Rejection
// =============================================================================

func TestRejection(t *testing.T) {
	ctx := context.Background()

	t.Run("success: customer rejects through the link", func(t *testing.T) {
		f := newFixture(t)
		_, token := f.sent(t)

		rejected, err := f.approval.RejectByToken(ctx, f.b.TenantID, token, "  caro demais ")
		require.NoError(t, err)
		assert.Equal(t, quote.StatusRejected, rejected.Status())
		assert.Equal(t, "caro demais", rejected.Rejection().Reason)
		assert.Nil(t, rejected.Rejection().RejectedBy)

		again, err := f.approval.RejectByToken(ctx, f.b.TenantID, token, "outro motivo")
		require.NoError(t, err)
		assert.Equal(t, "caro demais", again.Rejection().Reason)
		assert.Equal(t, 1, f.publisher.count(commands.EventRejected))
	})

	t.Run("success: staff records a rejection", func(t *testing.T) {
		f := newFixture(t)
		q, _ := f.sent(t)

		rejected, err := f.approval.RejectManually(ctx, f.b.Manager(), q.ID(), "cliente desistiu")
		require.NoError(t, err)
		require.NotNil(t, rejected.Rejection().RejectedBy)
		assert.Equal(t, f.b.CreatedBy, *rejected.Rejection().RejectedBy)
	})

	t.Run("error: rejecting a converted quote", func(t *testing.T) {
		f := newFixture(t)
		q, token := f.sent(t)
		_, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
		require.NoError(t, err)

		_, err = f.approval.RejectManually(ctx, f.b.Manager(), q.ID(), "")
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition))
		assert.Equal(t, quote.StatusConverted, f.stored(t, q.ID()).Status())
	})
}
