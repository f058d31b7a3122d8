package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/usecase/queries"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

type quoteRepo struct {
	state *state
}

func (r *quoteRepo) NextNumber(_ context.Context, tenantID uuid.UUID) (string, error) {
	r.state.counters[tenantID]++
	return quote.FormatNumber(r.state.counters[tenantID]), nil
}

func (r *quoteRepo) Create(_ context.Context, q *quote.Quote) error {
	snap := q.Snapshot()
	if _, exists := r.state.quotes[snap.ID]; exists {
		return fmt.Errorf("quote %s already exists", snap.ID)
	}
	for _, other := range r.state.quotes {
		if other.TenantID == snap.TenantID && other.Number == snap.Number && other.Version == snap.Version {
			return fmt.Errorf("quote %s v%d already exists", snap.Number, snap.Version)
		}
	}
	r.state.quotes[snap.ID] = snap
	return nil
}

func (r *quoteRepo) FindForUpdate(_ context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	return findQuote(r.state, tenantID, id)
}

func (r *quoteRepo) HasRevision(_ context.Context, tenantID, id uuid.UUID) (bool, error) {
	return hasRevision(r.state, tenantID, id), nil
}

func (r *quoteRepo) stored(q *quote.Quote) (quote.Snapshot, error) {
	current, ok := r.state.quotes[q.ID()]
	if !ok || current.TenantID != q.TenantID() {
		return quote.Snapshot{}, quote.ErrNotFound
	}
	return current, nil
}

func (r *quoteRepo) CompareAndSetStatus(_ context.Context, q *quote.Quote, expected quote.Status) error {
	current, err := r.stored(q)
	if err != nil {
		return err
	}
	if current.Status != expected {
		return shared.ErrStaleQuote
	}
	next := q.Snapshot()
	// The assignee and the conversion have their own compare-and-set.
	next.Assignment = current.Assignment
	next.Conversion = current.Conversion
	r.state.quotes[next.ID] = next
	return nil
}

func (r *quoteRepo) CompareAndSetAssignee(_ context.Context, q *quote.Quote, expected *uuid.UUID) error {
	current, err := r.stored(q)
	if err != nil {
		return err
	}
	if !sameAssignee(current.Assignment, expected) || !q.IsInPreparation() || current.Status != q.Status() {
		return shared.ErrStaleQuote
	}
	current.Assignment = q.Assignment()
	current.UpdatedAt = q.UpdatedAt()
	r.state.quotes[current.ID] = current
	return nil
}

func sameAssignee(a *quote.Assignment, expected *uuid.UUID) bool {
	if a == nil || expected == nil {
		return a == nil && expected == nil
	}
	return a.MechanicID == *expected
}

func (r *quoteRepo) CompareAndSetConversion(_ context.Context, q *quote.Quote) error {
	current, err := r.stored(q)
	if err != nil {
		return err
	}
	if current.Status != quote.StatusAccepted || current.Conversion != nil {
		return quote.ErrConversionConflict
	}
	conv := q.Conversion()
	if conv == nil {
		return fmt.Errorf("quote %s has no conversion to store", q.ID())
	}
	current.Conversion = conv
	current.Status = quote.StatusConverted
	current.UpdatedAt = q.UpdatedAt()
	r.state.quotes[current.ID] = current
	return nil
}

type serviceOrderRepo struct {
	state *state
}

func (r *serviceOrderRepo) Create(_ context.Context, so *serviceorder.ServiceOrder) error {
	for _, existing := range r.state.serviceOrders {
		if existing.QuoteID == so.QuoteID {
			return quote.ErrConversionConflict
		}
	}
	r.state.serviceOrders[so.ID] = cloneServiceOrder(*so)
	return nil
}

// QuoteReadStore serves the quote read side from memory.
type QuoteReadStore struct {
	store *Store
}

var _ queries.QuoteReadStore = (*QuoteReadStore)(nil)

func (s *QuoteReadStore) FindByID(_ context.Context, tenantID, id uuid.UUID) (*quote.Quote, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return findQuote(s.store.state, tenantID, id)
}

func (s *QuoteReadStore) ListFirstPage(ctx context.Context, tenantID uuid.UUID, filters queries.QuoteFilters, now time.Time, limit int32) ([]*quote.Quote, error) {
	return s.list(tenantID, filters, now, nil, uuid.Nil, limit), nil
}

func (s *QuoteReadStore) ListKeyset(ctx context.Context, tenantID uuid.UUID, filters queries.QuoteFilters, now time.Time, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*quote.Quote, error) {
	return s.list(tenantID, filters, now, &lastCreatedAt, lastID, limit), nil
}

func (s *QuoteReadStore) list(tenantID uuid.UUID, filters queries.QuoteFilters, now time.Time, afterCreatedAt *time.Time, afterID uuid.UUID, limit int32) []*quote.Quote {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	matches := make([]*quote.Quote, 0)
	for _, snap := range s.store.state.quotes {
		if snap.TenantID != tenantID {
			continue
		}
		q := quote.Rehydrate(snap)
		if !matchesFilters(q, filters, now) {
			continue
		}
		if afterCreatedAt != nil && !before(snap.CreatedAt, snap.ID, *afterCreatedAt, afterID) {
			continue
		}
		matches = append(matches, q)
	}

	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i].Snapshot(), matches[j].Snapshot()
		return before(b.CreatedAt, b.ID, a.CreatedAt, a.ID)
	})
	if int(limit) < len(matches) {
		matches = matches[:limit]
	}
	return matches
}

// before reports whether (t, id) sorts strictly before (refT, refID) in ascending order.
func before(t time.Time, id uuid.UUID, refT time.Time, refID uuid.UUID) bool {
	t, refT = t.Truncate(time.Microsecond), refT.Truncate(time.Microsecond)
	if !t.Equal(refT) {
		return t.Before(refT)
	}
	return id.String() < refID.String()
}

func matchesFilters(q *quote.Quote, f queries.QuoteFilters, now time.Time) bool {
	if f.Status != nil && q.EffectiveStatus(now) != *f.Status {
		return false
	}
	a := q.Assignment()
	if f.UnassignedOnly && a != nil {
		return false
	}
	if f.MechanicID != nil && (a == nil || a.MechanicID != *f.MechanicID) {
		return false
	}
	return true
}

type ServiceOrderReadStore struct {
	store *Store
}

var _ queries.ServiceOrderReadStore = (*ServiceOrderReadStore)(nil)

func (s *ServiceOrderReadStore) FindByID(_ context.Context, tenantID, id uuid.UUID) (*serviceorder.ServiceOrder, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return findServiceOrder(s.store.state, tenantID, id)
}
