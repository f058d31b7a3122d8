package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxDescriptionLength = 4000
	MaxReasonLength      = 1000
)

type ReportedProblem struct {
	Category    string
	Description string
	Symptoms    []string
}

type IdentifiedProblem struct {
	Category    string
	Description string
}

// Assignment is nil while the quote sits in the mechanic pool.
type Assignment struct {
	MechanicID uuid.UUID
	AssignedAt time.Time
}

type Diagnosis struct {
	Problem         IdentifiedProblem
	Recommendations string
	EstimatedHours  float64
	DiagnosedBy     uuid.UUID
	DiagnosedAt     time.Time
}

// PublicLink is nil until the first send-to-customer.
type PublicLink struct {
	Token     string
	ExpiresAt time.Time
}

func (l PublicLink) ExpiredAt(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

type Approval struct {
	Method     ApprovalMethod
	AcceptedAt time.Time
	Signature  *string
	Notes      string
	ApprovedBy *uuid.UUID
}

type Rejection struct {
	RejectedAt time.Time
	Reason     string
	RejectedBy *uuid.UUID
}

// Conversion is set at most once and never changes afterwards.
type Conversion struct {
	ServiceOrderID uuid.UUID
	ConvertedAt    time.Time
}

// Snapshot is the full persisted state of a quote. Each lifecycle phase is an optional
// pointer; Quote methods keep the combinations legal.
type Snapshot struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	Number        string
	Version       int
	ParentQuoteID *uuid.UUID
	Status        Status

	CustomerID uuid.UUID
	VehicleID  uuid.UUID
	ElevatorID *uuid.UUID
	CreatedBy  uuid.UUID

	Reported   ReportedProblem
	Diagnosis  *Diagnosis
	Assignment *Assignment

	Items []Item
	Costs Costs

	Link       *PublicLink
	SentAt     *time.Time
	ViewedAt   *time.Time
	Approval   *Approval
	Rejection  *Rejection
	Conversion *Conversion

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Quote struct {
	s Snapshot
}

type NewQuoteParams struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Number     string
	CustomerID uuid.UUID
	VehicleID  uuid.UUID
	ElevatorID *uuid.UUID
	CreatedBy  uuid.UUID
	Reported   ReportedProblem
	Items      []Item
	Costs      Costs
}

func NewQuote(p NewQuoteParams, now time.Time) (*Quote, error) {
	if p.TenantID == uuid.Nil {
		return nil, newValidationError("tenant_id", "is required")
	}
	if p.CustomerID == uuid.Nil {
		return nil, newValidationError("customer_id", "is required")
	}
	if p.VehicleID == uuid.Nil {
		return nil, newValidationError("vehicle_id", "is required")
	}
	if strings.TrimSpace(p.Number) == "" {
		return nil, newValidationError("number", "is required")
	}
	reported, err := normalizeReported(p.Reported)
	if err != nil {
		return nil, err
	}
	if err := validatePricing(p.Items, p.Costs); err != nil {
		return nil, err
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Quote{s: Snapshot{
		ID:         id,
		TenantID:   p.TenantID,
		Number:     p.Number,
		Version:    1,
		Status:     StatusDraft,
		CustomerID: p.CustomerID,
		VehicleID:  p.VehicleID,
		ElevatorID: cloneUUID(p.ElevatorID),
		CreatedBy:  p.CreatedBy,
		Reported:   reported,
		Items:      cloneItems(p.Items),
		Costs:      p.Costs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}}, nil
}

// Rehydrate rebuilds an aggregate from stored state.
func Rehydrate(s Snapshot) *Quote {
	return &Quote{s: s.clone()}
}

func (q *Quote) Snapshot() Snapshot {
	return q.s.clone()
}

func (q *Quote) ID() uuid.UUID              { return q.s.ID }
func (q *Quote) TenantID() uuid.UUID        { return q.s.TenantID }
func (q *Quote) Number() string             { return q.s.Number }
func (q *Quote) Version() int               { return q.s.Version }
func (q *Quote) ParentQuoteID() *uuid.UUID  { return cloneUUID(q.s.ParentQuoteID) }
func (q *Quote) Status() Status             { return q.s.Status }
func (q *Quote) CustomerID() uuid.UUID      { return q.s.CustomerID }
func (q *Quote) VehicleID() uuid.UUID       { return q.s.VehicleID }
func (q *Quote) Items() []Item              { return cloneItems(q.s.Items) }
func (q *Quote) Costs() Costs               { return q.s.Costs }
func (q *Quote) Subtotal() Money            { return Subtotal(q.s.Items, q.s.Costs) }
func (q *Quote) Total() Money               { return GrandTotal(q.s.Items, q.s.Costs) }
func (q *Quote) UpdatedAt() time.Time       { return q.s.UpdatedAt }
func (q *Quote) HasConversion() bool        { return q.s.Conversion != nil }
func (q *Quote) IsAssigned() bool           { return q.s.Assignment != nil }
func (q *Quote) Assignment() *Assignment    { return cloneAssignment(q.s.Assignment) }
func (q *Quote) Link() *PublicLink          { return cloneLink(q.s.Link) }
func (q *Quote) Approval() *Approval        { return cloneApproval(q.s.Approval) }
func (q *Quote) Rejection() *Rejection      { return cloneRejection(q.s.Rejection) }
func (q *Quote) Conversion() *Conversion    { return cloneConversion(q.s.Conversion) }
func (q *Quote) ViewedAt() *time.Time       { return cloneTime(q.s.ViewedAt) }
func (q *Quote) Reported() ReportedProblem  { return cloneReported(q.s.Reported) }
func (q *Quote) Diagnosis() *Diagnosis      { return cloneDiagnosis(q.s.Diagnosis) }

// EffectiveStatus reports EXPIRED for an outstanding quote whose public link lapsed.
func (q *Quote) EffectiveStatus(now time.Time) Status {
	if q.s.Status.in(StatusSent, StatusViewed) && q.s.Link != nil && q.s.Link.ExpiredAt(now) {
		return StatusExpired
	}
	return q.s.Status
}

func normalizeReported(r ReportedProblem) (ReportedProblem, error) {
	r.Category = strings.TrimSpace(r.Category)
	r.Description = strings.TrimSpace(r.Description)
	if len(r.Description) > MaxDescriptionLength {
		return ReportedProblem{}, newValidationError("reported_problem.description", "exceeds maximum length")
	}
	symptoms := make([]string, 0, len(r.Symptoms))
	for _, s := range r.Symptoms {
		if s = strings.TrimSpace(s); s != "" {
			symptoms = append(symptoms, s)
		}
	}
	r.Symptoms = symptoms
	return r, nil
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.ParentQuoteID = cloneUUID(s.ParentQuoteID)
	out.ElevatorID = cloneUUID(s.ElevatorID)
	out.Reported = cloneReported(s.Reported)
	out.Diagnosis = cloneDiagnosis(s.Diagnosis)
	out.Assignment = cloneAssignment(s.Assignment)
	out.Items = cloneItems(s.Items)
	out.Link = cloneLink(s.Link)
	out.SentAt = cloneTime(s.SentAt)
	out.ViewedAt = cloneTime(s.ViewedAt)
	out.Approval = cloneApproval(s.Approval)
	out.Rejection = cloneRejection(s.Rejection)
	out.Conversion = cloneConversion(s.Conversion)
	return out
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneReported(r ReportedProblem) ReportedProblem {
	if r.Symptoms != nil {
		r.Symptoms = append([]string(nil), r.Symptoms...)
	}
	return r
}

func cloneDiagnosis(d *Diagnosis) *Diagnosis {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

func cloneAssignment(a *Assignment) *Assignment {
	if a == nil {
		return nil
	}
	v := *a
	return &v
}

func cloneLink(l *PublicLink) *PublicLink {
	if l == nil {
		return nil
	}
	v := *l
	return &v
}

func cloneApproval(a *Approval) *Approval {
	if a == nil {
		return nil
	}
	v := *a
	if a.Signature != nil {
		sig := *a.Signature
		v.Signature = &sig
	}
	v.ApprovedBy = cloneUUID(a.ApprovedBy)
	return &v
}

func cloneRejection(r *Rejection) *Rejection {
	if r == nil {
		return nil
	}
	v := *r
	v.RejectedBy = cloneUUID(r.RejectedBy)
	return &v
}

func cloneConversion(c *Conversion) *Conversion {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// FormatNumber renders the n-th quote number of a tenant.
func FormatNumber(n int64) string {
	return fmt.Sprintf("ORC-%06d", n)
}
