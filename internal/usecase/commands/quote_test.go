//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Create Tests
// =============================================================================

func TestQuoteCommands_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		mutate    func(*commands.CreateQuoteInput)
		setup     func(*fakeEntitlements)
		wantErr   error
		wantField string
	}{
		{
			name: "success: quote created as draft",
		},
		{
			name:      "error: item without a name",
			mutate:    func(in *commands.CreateQuoteInput) { in.Items[0].Name = "  " },
			wantErr:   quote.ErrValidation,
			wantField: "items.name",
		},
		{
			name:    "error: negative unit cost",
			mutate:  func(in *commands.CreateQuoteInput) { in.Items[1].UnitCost = -1 },
			wantErr: quote.ErrValidation,
		},
		{
			name:    "error: discount above subtotal",
			mutate:  func(in *commands.CreateQuoteInput) { in.Costs.Discount = 1000 },
			wantErr: quote.ErrValidation,
		},
		{
			name:    "error: quotes not in plan",
			setup:   func(e *fakeEntitlements) { e.featureErr = shared.ErrFeatureDisabled },
			wantErr: shared.ErrFeatureDisabled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			in := f.createInput()
			if tc.mutate != nil {
				tc.mutate(&in)
			}
			if tc.setup != nil {
				tc.setup(f.entitlements)
			}

			q, err := f.quotes.Create(ctx, f.b.Manager(), in)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				if tc.wantField != "" {
					var verr *quote.ValidationError
					require.True(t, errors.As(err, &verr))
					assert.Equal(t, tc.wantField, verr.Field)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, quote.StatusDraft, q.Status())
			assert.Equal(t, 1, q.Version())
			assert.Equal(t, f.b.TenantID, q.TenantID())
			assert.Len(t, q.Items(), 2)
			assert.Equal(t, f.clock.Now(), q.Snapshot().CreatedAt)
		})
	}
}

func TestQuoteCommands_CreateNumbersPerTenant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.create(t)
	second := f.create(t)
	assert.Equal(t, "ORC-000001", first.Number())
	assert.Equal(t, "ORC-000002", second.Number())

	other := f.b.Manager()
	other.TenantID = first.CustomerID()
	q, err := f.quotes.Create(ctx, other, f.createInput())
	require.NoError(t, err)
	assert.Equal(t, "ORC-000001", q.Number())
}

// =============================================================================
// UpdateItems Tests
// =============================================================================

func TestQuoteCommands_UpdateItems(t *testing.T) {
	ctx := context.Background()

	t.Run("success: replaces items and costs while in preparation", func(t *testing.T) {
		f := newFixture(t)
		q := f.create(t)

		updated, err := f.quotes.UpdateItems(ctx, f.b.Manager(), q.ID(),
			[]commands.ItemInput{{Name: "Pastilha de freio", Quantity: 4, UnitCost: 37.5}},
			commands.CostsInput{LaborCost: 80, Discount: 10, TaxAmount: 5})
		require.NoError(t, err)

		// 4 * 37.50 + 80 - 10 + 5
		assert.Equal(t, int64(22500), updated.Total().Cents())
		assert.Equal(t, int64(22500), f.stored(t, q.ID()).Total().Cents())
	})

	t.Run("error: quote already sent", func(t *testing.T) {
		f := newFixture(t)
		q, _ := f.sent(t)

		_, err := f.quotes.UpdateItems(ctx, f.b.Manager(), q.ID(),
			[]commands.ItemInput{{Name: "Pastilha", Quantity: 1, UnitCost: 1}}, commands.CostsInput{})
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition), "got %v", err)
		assert.Equal(t, int64(15000), f.stored(t, q.ID()).Total().Cents())
	})
}

// =============================================================================
// Send Tests
// =============================================================================

func TestQuoteCommands_SendToCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("success: resend keeps a live link", func(t *testing.T) {
		f := newFixture(t)
		q, token := f.sent(t)

		f.clock.Add(24 * time.Hour)
		res, err := f.quotes.SendToCustomer(ctx, f.b.Manager(), q.ID())
		require.NoError(t, err)
		assert.True(t, res.Reused)
		assert.Equal(t, token, res.Quote.Link().Token)
		assert.Equal(t, 1, f.publisher.count(commands.EventSent))
	})

	t.Run("success: resend replaces a lapsed link", func(t *testing.T) {
		f := newFixture(t)
		q, token := f.sent(t)

		f.clock.Add(200 * time.Hour)
		assert.Equal(t, quote.StatusExpired, f.stored(t, q.ID()).EffectiveStatus(f.clock.Now()))

		res, err := f.quotes.SendToCustomer(ctx, f.b.Manager(), q.ID())
		require.NoError(t, err)
		assert.False(t, res.Reused)
		assert.NotEqual(t, token, res.Quote.Link().Token)
		assert.Equal(t, f.clock.Now().Add(168*time.Hour), res.Quote.Link().ExpiresAt)
		assert.Equal(t, quote.StatusSent, res.Quote.EffectiveStatus(f.clock.Now()))
	})

	t.Run("error: quote not diagnosed yet", func(t *testing.T) {
		f := newFixture(t)
		q := f.create(t)

		_, err := f.quotes.SendToCustomer(ctx, f.b.Manager(), q.ID())
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition), "got %v", err)
		assert.Nil(t, f.stored(t, q.ID()).Link())
	})

	t.Run("error: regenerating the link of a draft", func(t *testing.T) {
		f := newFixture(t)
		q := f.create(t)

		_, err := f.quotes.RegenerateToken(ctx, f.b.Manager(), q.ID())
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition))
	})
}

// =============================================================================
// Revision Tests
// =============================================================================

func TestQuoteCommands_CreateRevision(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rejected quote gets a new draft version", func(t *testing.T) {
		f := newFixture(t)
		q, token := f.sent(t)
		_, err := f.approval.RejectByToken(ctx, f.b.TenantID, token, "caro demais")
		require.NoError(t, err)

		rev, err := f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		require.NoError(t, err)
		assert.NotEqual(t, q.ID(), rev.ID())
		assert.Equal(t, q.Number(), rev.Number())
		assert.Equal(t, 2, rev.Version())
		assert.Equal(t, quote.StatusDraft, rev.Status())
		require.NotNil(t, rev.ParentQuoteID())
		assert.Equal(t, q.ID(), *rev.ParentQuoteID())
		assert.Nil(t, rev.Diagnosis())
		assert.Nil(t, rev.Link())
		assert.Equal(t, q.Total(), rev.Total())

		assert.Equal(t, quote.StatusRejected, f.stored(t, q.ID()).Status())
		assert.Equal(t, 1, f.publisher.count(commands.EventRevised))
	})

	t.Run("success: expired quote can be revised", func(t *testing.T) {
		f := newFixture(t)
		q, _ := f.sent(t)
		f.clock.Add(169 * time.Hour)

		rev, err := f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, rev.Version())
	})

	t.Run("error: revising the same quote twice", func(t *testing.T) {
		f := newFixture(t)
		q, token := f.sent(t)
		_, err := f.approval.RejectByToken(ctx, f.b.TenantID, token, "caro demais")
		require.NoError(t, err)
		_, err = f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		require.NoError(t, err)

		_, err = f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		var transition *quote.InvalidTransitionError
		require.True(t, errors.As(err, &transition), "got %v", err)
		assert.Equal(t, quote.ActionRevise, transition.Action)
		assert.Equal(t, quote.ReasonSuperseded, transition.Reason)
		assert.True(t, quote.IsSuperseded(err))
		assert.Equal(t, 1, f.publisher.count(commands.EventRevised))
	})

	t.Run("error: revising a sent quote that already has a newer version", func(t *testing.T) {
		f := newFixture(t)
		q, _ := f.sent(t)
		rev, err := f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		require.NoError(t, err)

		_, err = f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition), "got %v", err)
		assert.True(t, quote.IsSuperseded(err))
		assert.Equal(t, quote.StatusSent, f.stored(t, q.ID()).Status())
		assert.Equal(t, quote.StatusDraft, f.stored(t, rev.ID()).Status())
	})

	t.Run("error: draft cannot be revised", func(t *testing.T) {
		f := newFixture(t)
		q := f.create(t)

		_, err := f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition))
	})

	t.Run("error: converted quote cannot be revised", func(t *testing.T) {
		f := newFixture(t)
		q, token := f.sent(t)
		_, err := f.approval.ApproveByToken(ctx, f.b.TenantID, token, nil)
		require.NoError(t, err)

		_, err = f.quotes.CreateRevision(ctx, f.b.Manager(), q.ID())
		assert.True(t, errs.Is(err, quote.ErrInvalidTransition))
	})
}

// =============================================================================
// PDF Tests
// =============================================================================

func TestQuoteCommands_GeneratePDF(t *testing.T) {
	ctx := context.Background()

	t.Run("success: renders the stored quote", func(t *testing.T) {
		f := newFixture(t)
		q, _ := f.sent(t)

		doc, err := f.quotes.GeneratePDF(ctx, f.b.Manager(), q.ID())
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", doc.ContentType)
		assert.Equal(t, "ORC-000001.pdf", doc.Filename)
		require.Len(t, f.renderer.rendered, 1)
		assert.Equal(t, quote.StatusSent, f.renderer.rendered[0].Status)
	})

	t.Run("error: no renderer configured", func(t *testing.T) {
		f := newFixture(t)
		q := f.create(t)
		uc := commands.NewQuoteUseCase(f.store, f.clock, f.issuer, nil, nil, nil, nil, commands.PublicLinks{})

		_, err := uc.GeneratePDF(ctx, f.b.Manager(), q.ID())
		assert.True(t, errs.Is(err, shared.ErrRendererUnavailable))
	})

	t.Run("error: unknown quote", func(t *testing.T) {
		f := newFixture(t)
		other := f.b.Manager()
		other.TenantID = f.b.CustomerID

		q := f.create(t)
		_, err := f.quotes.GeneratePDF(ctx, other, q.ID())
		assert.True(t, errs.Is(err, quote.ErrNotFound))
	})
}
