package commands

import (
	"context"
	"log/slog"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxStaleRetries = 3

// quoteChange applies a domain transition and reports whether anything must be written.
type quoteChange func(q *quote.Quote) (bool, error)

// mutateQuote loads the quote under lock, applies change and writes it back guarded by
// the status it was loaded in. A lost compare-and-set reloads and re-applies, so a
// loser observes the winner's state instead of overwriting it. A quote replaced by a
// newer revision refuses action.
func mutateQuote(ctx context.Context, uow shared.UnitOfWork, tenantID, id uuid.UUID, action quote.Action, change quoteChange) (*quote.Quote, bool, error) {
	var (
		result  *quote.Quote
		changed bool
	)
	for attempt := 0; ; attempt++ {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			q, err := tx.Quotes().FindForUpdate(ctx, tenantID, id)
			if err != nil {
				return err
			}
			if q.Supersedable() {
				if err := ensureCurrent(ctx, tx.Quotes(), q, action); err != nil {
					return err
				}
			}
			from := q.Status()
			dirty, err := change(q)
			if err != nil {
				return err
			}
			if dirty {
				if err := tx.Quotes().CompareAndSetStatus(ctx, q, from); err != nil {
					return err
				}
			}
			result, changed = q, dirty
			return nil
		})
		if err == nil {
			return result, changed, nil
		}
		if !errs.Is(err, shared.ErrStaleQuote) || attempt+1 >= maxStaleRetries {
			return nil, false, err
		}
		slog.DebugContext(ctx, "quote changed underneath, retrying",
			"quote_id", id.String(),
			"attempt", attempt+1)
	}
}

// revisionLookup is satisfied by both the transactional repository and CommandReads.
type revisionLookup interface {
	HasRevision(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
}

// ensureCurrent refuses action when a newer version names q as its parent.
func ensureCurrent(ctx context.Context, lookup revisionLookup, q *quote.Quote, action quote.Action) error {
	superseded, err := lookup.HasRevision(ctx, q.TenantID(), q.ID())
	if err != nil {
		return err
	}
	if superseded {
		return quote.Superseded(action, q.Status())
	}
	return nil
}
