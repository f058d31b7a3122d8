//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/infra/memstore"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/shared"
	"workshop-quotes/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Notification
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, n shared.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, n)
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, n := range p.events {
		out = append(out, n.Event)
	}
	return out
}

func (p *recordingPublisher) count(event string) int {
	n := 0
	for _, name := range p.names() {
		if name == event {
			n++
		}
	}
	return n
}

type fakeEntitlements struct {
	featureErr error
	usageErr   error

	mu      sync.Mutex
	checked map[shared.Feature]int
}

func (f *fakeEntitlements) CheckFeature(_ context.Context, _ uuid.UUID, feature shared.Feature) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.checked == nil {
		f.checked = make(map[shared.Feature]int)
	}
	f.checked[feature]++
	return f.featureErr
}

// checks counts the feature checks made for feature.
func (f *fakeEntitlements) checks(feature shared.Feature) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checked[feature]
}

func (f *fakeEntitlements) CheckUsage(context.Context, uuid.UUID, shared.Feature) error {
	return f.usageErr
}

type stubRenderer struct {
	rendered []quote.Snapshot
}

func (r *stubRenderer) Render(_ context.Context, snap quote.Snapshot) (*shared.Document, error) {
	r.rendered = append(r.rendered, snap)
	return &shared.Document{ContentType: "application/pdf", Filename: snap.Number + ".pdf", Body: []byte("%PDF-1.7")}, nil
}

// failingOrdersUoW behaves like the store except that inserting a service order fails.
type failingOrdersUoW struct {
	*memstore.Store
}

func (u failingOrdersUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, failingOrdersTx{Tx: tx})
	})
}

type failingOrdersTx struct {
	shared.Tx
}

func (failingOrdersTx) ServiceOrders() shared.ServiceOrderRepository {
	return failingOrders{}
}

type failingOrders struct{}

func (failingOrders) Create(context.Context, *serviceorder.ServiceOrder) error {
	return errors.New("insert service order: connection reset")
}

type fixture struct {
	b            *builder.QuoteBuilder
	store        *memstore.Store
	clock        *clock.MockClock
	issuer       *quote.TokenIssuer
	publisher    *recordingPublisher
	entitlements *fakeEntitlements
	renderer     *stubRenderer

	quotes     commands.QuoteCommands
	assignment commands.AssignmentCommands
	diagnosis  commands.DiagnosisCommands
	approval   commands.ApprovalCommands
	conversion commands.ConversionCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	return newFixtureOn(t, store, store)
}

func newFixtureOn(t *testing.T, store *memstore.Store, uow shared.UnitOfWork) *fixture {
	t.Helper()
	b := builder.NewQuoteBuilder()
	f := &fixture{
		b:            b,
		store:        store,
		clock:        clock.NewMockClock(b.Now),
		issuer:       b.Issuer(),
		publisher:    &recordingPublisher{},
		entitlements: &fakeEntitlements{},
		renderer:     &stubRenderer{},
	}
	f.wire(uow)
	return f
}

// wire rebuilds the use cases on uow, keeping the fixture's collaborators.
func (f *fixture) wire(uow shared.UnitOfWork) {
	f.quotes = commands.NewQuoteUseCase(uow, f.clock, f.issuer, f.entitlements, nil, f.renderer, f.publisher,
		commands.PublicLinks{BaseURL: "https://quotes.example.test/p"})
	f.assignment = commands.NewAssignmentUseCase(uow, f.clock, f.publisher)
	f.diagnosis = commands.NewDiagnosisUseCase(uow, f.clock, f.publisher)
	f.conversion = commands.NewConversionUseCase(uow, f.clock, f.entitlements, f.publisher)
	f.approval = commands.NewApprovalUseCase(uow, f.clock, f.issuer, f.conversion, f.entitlements, nil, f.publisher)
}

func (f *fixture) createInput() commands.CreateQuoteInput {
	items := make([]commands.ItemInput, 0, len(f.b.Items))
	for _, item := range f.b.Items {
		items = append(items, commands.ItemInput{Name: item.Name, Quantity: item.Quantity, UnitCost: item.UnitCost})
	}
	return commands.CreateQuoteInput{
		CustomerID: f.b.CustomerID,
		VehicleID:  f.b.VehicleID,
		Reported:   f.b.Reported,
		Items:      items,
	}
}

func (f *fixture) create(t *testing.T) *quote.Quote {
	t.Helper()
	q, err := f.quotes.Create(context.Background(), f.b.Manager(), f.createInput())
	require.NoError(t, err)
	return q
}

func (f *fixture) diagnosisInput() quote.DiagnosisInput {
	return quote.DiagnosisInput{
		Problem:         quote.IdentifiedProblem{Category: "engine", Description: "Óleo vencido"},
		Recommendations: "Trocar óleo e filtro",
		EstimatedHours:  1.5,
	}
}

// diagnosed returns a quote the builder's mechanic has diagnosed.
func (f *fixture) diagnosed(t *testing.T) *quote.Quote {
	t.Helper()
	ctx := context.Background()
	q := f.create(t)
	_, err := f.quotes.SendForDiagnosis(ctx, f.b.Manager(), q.ID())
	require.NoError(t, err)
	_, err = f.assignment.Claim(ctx, f.b.Mechanic(), q.ID())
	require.NoError(t, err)
	q, err = f.diagnosis.Complete(ctx, f.b.Mechanic(), q.ID(), f.diagnosisInput())
	require.NoError(t, err)
	return q
}

// sent returns a quote sent to the customer together with its public token.
func (f *fixture) sent(t *testing.T) (*quote.Quote, string) {
	t.Helper()
	q := f.diagnosed(t)
	res, err := f.quotes.SendToCustomer(context.Background(), f.b.Manager(), q.ID())
	require.NoError(t, err)
	return res.Quote, res.Quote.Link().Token
}

func (f *fixture) stored(t *testing.T, id uuid.UUID) *quote.Quote {
	t.Helper()
	q, err := f.store.Reads().QuoteByID(context.Background(), f.b.TenantID, id)
	require.NoError(t, err)
	return q
}
