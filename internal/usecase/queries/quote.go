package queries

import (
	"context"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/patch"

	"github.com/google/uuid"
)

type ItemView struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitCost  float64 `json:"unit_cost"`
	TotalCost float64 `json:"total_cost"`
}

type ProblemView struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Symptoms    []string `json:"symptoms,omitempty"`
}

type DiagnosisView struct {
	Problem         ProblemView `json:"identified_problem"`
	Recommendations string      `json:"recommendations"`
	EstimatedHours  float64     `json:"estimated_hours"`
	DiagnosedBy     uuid.UUID   `json:"diagnosed_by"`
	DiagnosedAt     time.Time   `json:"diagnosed_at"`
}

// QuoteView is the staff read model. Status is the observed status, so a lapsed
// outstanding quote reads as EXPIRED.
type QuoteView struct {
	ID                        uuid.UUID      `json:"id"`
	TenantID                  uuid.UUID      `json:"tenant_id"`
	Number                    string         `json:"number"`
	Version                   int            `json:"version"`
	ParentQuoteID             *uuid.UUID     `json:"parent_quote_id,omitempty"`
	Status                    quote.Status   `json:"status"`
	CustomerID                uuid.UUID      `json:"customer_id"`
	VehicleID                 uuid.UUID      `json:"vehicle_id"`
	ElevatorID                *uuid.UUID     `json:"elevator_id,omitempty"`
	AssignedMechanicID        *uuid.UUID     `json:"assigned_mechanic_id,omitempty"`
	AssignedAt                *time.Time     `json:"assigned_at,omitempty"`
	ReportedProblem           ProblemView    `json:"reported_problem"`
	Diagnosis                 *DiagnosisView `json:"diagnosis,omitempty"`
	Items                     []ItemView     `json:"items"`
	LaborCost                 float64        `json:"labor_cost"`
	PartsCost                 float64        `json:"parts_cost"`
	Discount                  float64        `json:"discount"`
	TaxAmount                 float64        `json:"tax_amount"`
	Subtotal                  float64        `json:"subtotal"`
	Total                     float64        `json:"total"`
	PublicToken               *string        `json:"public_token,omitempty"`
	PublicTokenExpiresAt      *time.Time     `json:"public_token_expires_at,omitempty"`
	SentAt                    *time.Time     `json:"sent_at,omitempty"`
	ViewedAt                  *time.Time     `json:"viewed_at,omitempty"`
	ApprovalMethod            *string        `json:"approval_method,omitempty"`
	CustomerSignature         *string        `json:"customer_signature,omitempty"`
	ApprovalNotes             string         `json:"approval_notes,omitempty"`
	AcceptedAt                *time.Time     `json:"accepted_at,omitempty"`
	RejectedAt                *time.Time     `json:"rejected_at,omitempty"`
	RejectedReason            *string        `json:"rejected_reason,omitempty"`
	ConvertedAt               *time.Time     `json:"converted_at,omitempty"`
	ConvertedToServiceOrderID *uuid.UUID     `json:"converted_to_service_order_id,omitempty"`
	CreatedAt                 time.Time      `json:"created_at"`
	UpdatedAt                 time.Time      `json:"updated_at"`
}

type QuoteListItem struct {
	ID                 uuid.UUID    `json:"id"`
	Number             string       `json:"number"`
	Version            int          `json:"version"`
	Status             quote.Status `json:"status"`
	CustomerID         uuid.UUID    `json:"customer_id"`
	VehicleID          uuid.UUID    `json:"vehicle_id"`
	AssignedMechanicID *uuid.UUID   `json:"assigned_mechanic_id,omitempty"`
	Total              float64      `json:"total"`
	CreatedAt          time.Time    `json:"created_at"`
}

type QuoteFilters struct {
	// Status may be EXPIRED; it is matched against the observed status.
	Status         *quote.Status
	MechanicID     *uuid.UUID
	UnassignedOnly bool
}

type QuoteReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*quote.Quote, error)
	ListFirstPage(ctx context.Context, tenantID uuid.UUID, filters QuoteFilters, now time.Time, limit int32) ([]*quote.Quote, error)
	ListKeyset(ctx context.Context, tenantID uuid.UUID, filters QuoteFilters, now time.Time, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*quote.Quote, error)
}

type QuoteQueries interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*QuoteView, error)
	List(ctx context.Context, tenantID uuid.UUID, filters QuoteFilters, cursor *Cursor, limit int) ([]*QuoteListItem, *Cursor, error)
	// View renders an aggregate already in hand, such as a command result.
	View(q *quote.Quote) *QuoteView
}

type quoteQueriesImpl struct {
	repo  QuoteReadStore
	clock clock.Clock
}

func NewQuoteQueries(repo QuoteReadStore, clk clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{repo: repo, clock: clk}
}

func (qq *quoteQueriesImpl) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*QuoteView, error) {
	q, err := qq.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return qq.View(q), nil
}

func (qq *quoteQueriesImpl) List(ctx context.Context, tenantID uuid.UUID, filters QuoteFilters, cursor *Cursor, limit int) ([]*QuoteListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	now := qq.clock.Now()

	var (
		rows []*quote.Quote
		err  error
	)
	if cursor == nil || cursor.After == "" {
		rows, err = qq.repo.ListFirstPage(ctx, tenantID, filters, now, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = qq.repo.ListKeyset(ctx, tenantID, filters, now, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1].Snapshot()
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}

	items := make([]*QuoteListItem, len(rows))
	for i, q := range rows {
		items[i] = &QuoteListItem{
			ID:         q.ID(),
			Number:     q.Number(),
			Version:    q.Version(),
			Status:     q.EffectiveStatus(now),
			CustomerID: q.CustomerID(),
			VehicleID:  q.VehicleID(),
			Total:      q.Total().Float(),
			CreatedAt:  q.Snapshot().CreatedAt,
		}
		if a := q.Assignment(); a != nil {
			items[i].AssignedMechanicID = &a.MechanicID
		}
	}
	return items, next, nil
}

func (qq *quoteQueriesImpl) View(q *quote.Quote) *QuoteView {
	return NewQuoteView(q, qq.clock.Now())
}

func NewQuoteView(q *quote.Quote, now time.Time) *QuoteView {
	s := q.Snapshot()
	v := &QuoteView{
		ID:            s.ID,
		TenantID:      s.TenantID,
		Number:        s.Number,
		Version:       s.Version,
		ParentQuoteID: s.ParentQuoteID,
		Status:        q.EffectiveStatus(now),
		CustomerID:    s.CustomerID,
		VehicleID:     s.VehicleID,
		ElevatorID:    s.ElevatorID,
		ReportedProblem: ProblemView{
			Category:    s.Reported.Category,
			Description: s.Reported.Description,
			Symptoms:    s.Reported.Symptoms,
		},
		Items:     make([]ItemView, len(s.Items)),
		LaborCost: s.Costs.LaborCost.Float(),
		PartsCost: s.Costs.PartsCost.Float(),
		Discount:  s.Costs.Discount.Float(),
		TaxAmount: s.Costs.TaxAmount.Float(),
		Subtotal:  q.Subtotal().Float(),
		Total:     q.Total().Float(),
		SentAt:    s.SentAt,
		ViewedAt:  s.ViewedAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	for i, it := range s.Items {
		v.Items[i] = ItemView{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost.Float(),
			TotalCost: it.TotalCost.Float(),
		}
	}
	if a := s.Assignment; a != nil {
		v.AssignedMechanicID = &a.MechanicID
		v.AssignedAt = &a.AssignedAt
	}
	if d := s.Diagnosis; d != nil {
		v.Diagnosis = &DiagnosisView{
			Problem:         ProblemView{Category: d.Problem.Category, Description: d.Problem.Description},
			Recommendations: d.Recommendations,
			EstimatedHours:  d.EstimatedHours,
			DiagnosedBy:     d.DiagnosedBy,
			DiagnosedAt:     d.DiagnosedAt,
		}
	}
	if l := s.Link; l != nil {
		v.PublicToken = &l.Token
		v.PublicTokenExpiresAt = &l.ExpiresAt
	}
	if a := s.Approval; a != nil {
		v.ApprovalMethod = patch.Ptr(string(a.Method))
		v.CustomerSignature = a.Signature
		v.ApprovalNotes = a.Notes
		v.AcceptedAt = &a.AcceptedAt
	}
	if r := s.Rejection; r != nil {
		v.RejectedAt = &r.RejectedAt
		v.RejectedReason = &r.Reason
	}
	if c := s.Conversion; c != nil {
		v.ConvertedAt = &c.ConvertedAt
		v.ConvertedToServiceOrderID = &c.ServiceOrderID
	}
	return v
}
