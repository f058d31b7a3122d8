// Package memstore is an in-process store with the same transactional and
// compare-and-set contract as the postgres implementation. Transactions are
// serialized and run against a staged copy that is discarded on error.
package memstore

import (
	"context"
	"sync"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/pkg/patch"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	quotes        map[uuid.UUID]quote.Snapshot
	serviceOrders map[uuid.UUID]serviceorder.ServiceOrder
	counters      map[uuid.UUID]int64
}

func newState() *state {
	return &state{
		quotes:        make(map[uuid.UUID]quote.Snapshot),
		serviceOrders: make(map[uuid.UUID]serviceorder.ServiceOrder),
		counters:      make(map[uuid.UUID]int64),
	}
}

func (s *state) clone() *state {
	out := newState()
	for id, q := range s.quotes {
		out.quotes[id] = quote.Rehydrate(q).Snapshot()
	}
	for id, so := range s.serviceOrders {
		out.serviceOrders[id] = cloneServiceOrder(so)
	}
	for tenant, n := range s.counters {
		out.counters[tenant] = n
	}
	return out
}

type Store struct {
	mu     sync.RWMutex
	state  *state
	outbox *Outbox
}

func New() *Store {
	return &Store{state: newState(), outbox: newOutbox()}
}

var _ shared.UnitOfWork = (*Store)(nil)

// Within must not call Reads on the same store; the write lock is held for the whole callback.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(ctx, &memTx{state: staged}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) Reads() shared.CommandReads {
	return &reads{store: s}
}

func (s *Store) Outbox() *Outbox {
	return s.outbox
}

func (s *Store) QuoteReadStore() *QuoteReadStore {
	return &QuoteReadStore{store: s}
}

func (s *Store) ServiceOrderReadStore() *ServiceOrderReadStore {
	return &ServiceOrderReadStore{store: s}
}

// CountServiceOrders reports how many orders exist for a quote.
func (s *Store) CountServiceOrders(quoteID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, so := range s.state.serviceOrders {
		if so.QuoteID == quoteID {
			n++
		}
	}
	return n
}

type memTx struct {
	state *state
}

func (t *memTx) Quotes() shared.QuoteRepository {
	return &quoteRepo{state: t.state}
}

func (t *memTx) ServiceOrders() shared.ServiceOrderRepository {
	return &serviceOrderRepo{state: t.state}
}

type reads struct {
	store *Store
}

func (r *reads) QuoteByID(_ context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return findQuote(r.store.state, tenantID, id)
}

func (r *reads) QuoteByToken(_ context.Context, tenantID uuid.UUID, token string) (*quote.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, snap := range r.store.state.quotes {
		if snap.TenantID == tenantID && snap.Link != nil && snap.Link.Token == token {
			return quote.Rehydrate(snap), nil
		}
	}
	return nil, quote.ErrNotFound
}

func (r *reads) ServiceOrderByID(_ context.Context, tenantID, id uuid.UUID) (*serviceorder.ServiceOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return findServiceOrder(r.store.state, tenantID, id)
}

func (r *reads) HasRevision(_ context.Context, tenantID, id uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return hasRevision(r.store.state, tenantID, id), nil
}

func hasRevision(st *state, tenantID, id uuid.UUID) bool {
	for _, snap := range st.quotes {
		if snap.TenantID == tenantID && snap.ParentQuoteID != nil && *snap.ParentQuoteID == id {
			return true
		}
	}
	return false
}

func findQuote(st *state, tenantID, id uuid.UUID) (*quote.Quote, error) {
	snap, ok := st.quotes[id]
	if !ok || snap.TenantID != tenantID {
		return nil, quote.ErrNotFound
	}
	return quote.Rehydrate(snap), nil
}

func findServiceOrder(st *state, tenantID, id uuid.UUID) (*serviceorder.ServiceOrder, error) {
	so, ok := st.serviceOrders[id]
	if !ok || so.TenantID != tenantID {
		return nil, serviceorder.ErrNotFound
	}
	out := cloneServiceOrder(so)
	return &out, nil
}

func cloneServiceOrder(so serviceorder.ServiceOrder) serviceorder.ServiceOrder {
	out := so
	out.Items = append([]serviceorder.Item(nil), so.Items...)
	if so.ElevatorID != nil {
		out.ElevatorID = patch.Ptr(*so.ElevatorID)
	}
	if so.MechanicID != nil {
		out.MechanicID = patch.Ptr(*so.MechanicID)
	}
	return out
}
