//go:build unit

package queries_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/infra/memstore"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/queries"
	"workshop-quotes/internal/usecase/shared"
	"workshop-quotes/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Cursor Tests
// =============================================================================

func TestCursor_RoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 30, 15, 123456789, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.Equal(t, at.Truncate(time.Microsecond), gotAt)
	assert.Equal(t, id, gotID)
}

func TestCursor_DecodeRejectsGarbage(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "error: empty", cursor: ""},
		{name: "error: not base64", cursor: "!!!"},
		{name: "error: unknown version", cursor: enc("v2:1_" + uuid.NewString())},
		{name: "error: missing separator", cursor: enc("v1:12345")},
		{name: "error: bad timestamp", cursor: enc("v1:abc_" + uuid.NewString())},
		{name: "error: bad uuid", cursor: enc("v1:12345_not-a-uuid")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}

// =============================================================================
// Quote Queries Tests
// =============================================================================

type listFixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	tenantID uuid.UUID
	base     time.Time
	queries  queries.QuoteQueries
}

func newListFixture() *listFixture {
	base := builder.NewQuoteBuilder().Now
	store := memstore.New()
	clk := clock.NewMockClock(base.Add(time.Hour))
	return &listFixture{
		store:    store,
		clock:    clk,
		tenantID: uuid.New(),
		base:     base,
		queries:  queries.NewQuoteQueries(store.QuoteReadStore(), clk),
	}
}

// seed stores a quote created n minutes after base in the given status.
func (f *listFixture) seed(t *testing.T, n int, status quote.Status, mutate func(*builder.QuoteBuilder)) *quote.Quote {
	t.Helper()
	b := builder.NewQuoteBuilder().
		WithTenantID(f.tenantID).
		WithNow(f.base.Add(time.Duration(n) * time.Minute)).
		With(func(b *builder.QuoteBuilder) { b.Number = quote.FormatNumber(int64(n + 1)) })
	if mutate != nil {
		b.With(mutate)
	}
	q, err := b.BuildInStatus(status)
	require.NoError(t, err)
	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Quotes().Create(ctx, q)
	}))
	return q
}

func TestQuoteQueries_ListPagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newListFixture()

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = f.seed(t, i, quote.StatusDraft, nil).ID()
	}
	f.seed(t, 10, quote.StatusDraft, func(b *builder.QuoteBuilder) { b.TenantID = uuid.New() })

	page1, next, err := f.queries.List(ctx, f.tenantID, queries.QuoteFilters{}, nil, 2)
	require.NoError(t, err)
	require.NotNil(t, next)
	page2, next, err := f.queries.List(ctx, f.tenantID, queries.QuoteFilters{}, next, 2)
	require.NoError(t, err)
	require.NotNil(t, next)
	page3, next, err := f.queries.List(ctx, f.tenantID, queries.QuoteFilters{}, next, 2)
	require.NoError(t, err)
	assert.Nil(t, next)

	got := make([]uuid.UUID, 0, 5)
	for _, page := range [][]*queries.QuoteListItem{page1, page2, page3} {
		for _, item := range page {
			got = append(got, item.ID)
		}
	}
	want := []uuid.UUID{ids[4], ids[3], ids[2], ids[1], ids[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("page order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 150.0, page1[0].Total)
}

func TestQuoteQueries_ListFilters(t *testing.T) {
	ctx := context.Background()
	f := newListFixture()
	mechanic := uuid.New()

	draft := f.seed(t, 0, quote.StatusDraft, nil)
	assigned := f.seed(t, 1, quote.StatusAwaitingDiagnosis, func(b *builder.QuoteBuilder) { b.MechanicID = mechanic })
	sent := f.seed(t, 2, quote.StatusSent, nil)
	lapsed := f.seed(t, 3, quote.StatusSent, func(b *builder.QuoteBuilder) { b.TokenTTL = 30 * time.Minute })

	statusOf := func(s quote.Status) *quote.Status { return &s }

	testCases := []struct {
		name    string
		filters queries.QuoteFilters
		want    []uuid.UUID
	}{
		{
			name:    "success: unassigned pool",
			filters: queries.QuoteFilters{UnassignedOnly: true},
			want:    []uuid.UUID{draft.ID()},
		},
		{
			name:    "success: by mechanic",
			filters: queries.QuoteFilters{MechanicID: &mechanic},
			want:    []uuid.UUID{assigned.ID()},
		},
		{
			name:    "success: SENT excludes lapsed links",
			filters: queries.QuoteFilters{Status: statusOf(quote.StatusSent)},
			want:    []uuid.UUID{sent.ID()},
		},
		{
			name:    "success: EXPIRED is derived",
			filters: queries.QuoteFilters{Status: statusOf(quote.StatusExpired)},
			want:    []uuid.UUID{lapsed.ID()},
		},
		{
			name:    "success: nothing matches",
			filters: queries.QuoteFilters{Status: statusOf(quote.StatusConverted)},
			want:    []uuid.UUID{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, next, err := f.queries.List(ctx, f.tenantID, tc.filters, nil, 0)
			require.NoError(t, err)
			assert.Nil(t, next)
			got := make([]uuid.UUID, 0, len(items))
			for _, item := range items {
				got = append(got, item.ID)
			}
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestQuoteQueries_ListRejectsBadCursor(t *testing.T) {
	f := newListFixture()
	_, _, err := f.queries.List(context.Background(), f.tenantID, queries.QuoteFilters{}, &queries.Cursor{After: "garbage"}, 10)
	assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
}

func TestQuoteQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: lapsed link reads as EXPIRED", func(t *testing.T) {
		f := newListFixture()
		q := f.seed(t, 0, quote.StatusSent, nil)

		view, err := f.queries.GetByID(ctx, f.tenantID, q.ID())
		require.NoError(t, err)
		assert.Equal(t, quote.StatusSent, view.Status)
		require.NotNil(t, view.PublicToken)
		assert.Equal(t, q.Link().Token, *view.PublicToken)

		f.clock.Add(200 * time.Hour)
		view, err = f.queries.GetByID(ctx, f.tenantID, q.ID())
		require.NoError(t, err)
		assert.Equal(t, quote.StatusExpired, view.Status)
	})

	t.Run("success: view carries the commercial breakdown", func(t *testing.T) {
		f := newListFixture()
		q := f.seed(t, 0, quote.StatusDiagnosed, func(b *builder.QuoteBuilder) {
			b.Costs = quote.Costs{LaborCost: quote.NewMoney(5000), Discount: quote.NewMoney(1000)}
		})

		view, err := f.queries.GetByID(ctx, f.tenantID, q.ID())
		require.NoError(t, err)
		assert.Equal(t, 200.0, view.Subtotal)
		assert.Equal(t, 190.0, view.Total)
		require.Len(t, view.Items, 2)
		assert.Equal(t, 50.0, view.Items[1].TotalCost)
		require.NotNil(t, view.Diagnosis)
		assert.Equal(t, "Óleo vencido", view.Diagnosis.Problem.Description)
	})

	t.Run("error: other tenant", func(t *testing.T) {
		f := newListFixture()
		q := f.seed(t, 0, quote.StatusDraft, nil)

		_, err := f.queries.GetByID(ctx, uuid.New(), q.ID())
		assert.True(t, errs.Is(err, quote.ErrNotFound))
	})
}
