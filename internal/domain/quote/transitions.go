package quote

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Statuses in which the commercial content and the assignee may still change.
var preparationStatuses = []Status{StatusDraft, StatusAwaitingDiagnosis, StatusDiagnosed}

func (q *Quote) IsInPreparation() bool {
	return q.s.Status.in(preparationStatuses...)
}

func (q *Quote) touch(now time.Time) {
	q.s.UpdatedAt = now
}

func (q *Quote) UpdatePricing(items []Item, costs Costs, now time.Time) error {
	if !q.IsInPreparation() {
		return invalidTransition(ActionUpdateItems, q.s.Status)
	}
	if err := validatePricing(items, costs); err != nil {
		return err
	}
	q.s.Items = cloneItems(items)
	q.s.Costs = costs
	q.touch(now)
	return nil
}

func (q *Quote) SendForDiagnosis(now time.Time) error {
	if q.s.Status != StatusDraft {
		return invalidTransition(ActionSendForDiagnosis, q.s.Status)
	}
	q.s.Status = StatusAwaitingDiagnosis
	q.touch(now)
	return nil
}

// AssignMechanic overwrites the assignee. A nil mechanic returns the quote to the pool.
func (q *Quote) AssignMechanic(mechanicID *uuid.UUID, now time.Time) error {
	if !q.IsInPreparation() {
		return invalidTransition(ActionAssign, q.s.Status)
	}
	if mechanicID == nil {
		q.s.Assignment = nil
	} else {
		if *mechanicID == uuid.Nil {
			return newValidationError("mechanic_id", "must be a valid id")
		}
		q.s.Assignment = &Assignment{MechanicID: *mechanicID, AssignedAt: now}
	}
	q.touch(now)
	return nil
}

// Claim assigns an unassigned quote to mechanicID. It reports false when the
// mechanic already holds the quote.
func (q *Quote) Claim(mechanicID uuid.UUID, now time.Time) (bool, error) {
	if !q.IsInPreparation() {
		return false, invalidTransition(ActionClaim, q.s.Status)
	}
	if q.s.Assignment != nil {
		if q.s.Assignment.MechanicID == mechanicID {
			return false, nil
		}
		return false, ErrAlreadyClaimed
	}
	q.s.Assignment = &Assignment{MechanicID: mechanicID, AssignedAt: now}
	q.touch(now)
	return true, nil
}

type DiagnosisInput struct {
	Problem         IdentifiedProblem
	Recommendations string
	EstimatedHours  float64
}

func (q *Quote) CompleteDiagnosis(caller uuid.UUID, in DiagnosisInput, now time.Time) error {
	if !q.s.Status.in(StatusAwaitingDiagnosis, StatusDiagnosed) {
		return invalidTransition(ActionCompleteDiagnosis, q.s.Status)
	}
	if q.s.Assignment == nil {
		return invalidTransitionBecause(ActionCompleteDiagnosis, q.s.Status, "no mechanic assigned")
	}
	if q.s.Assignment.MechanicID != caller {
		return invalidTransitionBecause(ActionCompleteDiagnosis, q.s.Status, "caller is not the assigned mechanic")
	}

	problem := IdentifiedProblem{
		Category:    strings.TrimSpace(in.Problem.Category),
		Description: strings.TrimSpace(in.Problem.Description),
	}
	if problem.Description == "" {
		return newValidationError("identified_problem.description", "must not be empty")
	}
	if len(problem.Description) > MaxDescriptionLength {
		return newValidationError("identified_problem.description", "exceeds maximum length")
	}
	if in.EstimatedHours < 0 {
		return newValidationError("estimated_hours", "must not be negative")
	}

	q.s.Diagnosis = &Diagnosis{
		Problem:         problem,
		Recommendations: strings.TrimSpace(in.Recommendations),
		EstimatedHours:  in.EstimatedHours,
		DiagnosedBy:     caller,
		DiagnosedAt:     now,
	}
	q.s.Status = StatusDiagnosed
	q.touch(now)
	return nil
}

// SendToCustomer publishes the quote. A resend keeps a live link and reports true;
// a lapsed link is replaced.
func (q *Quote) SendToCustomer(issuer *TokenIssuer, now time.Time) (bool, error) {
	if !q.s.Status.in(StatusDiagnosed, StatusSent) {
		return false, invalidTransition(ActionSendToCustomer, q.s.Status)
	}
	if len(q.s.Items) == 0 {
		return false, newValidationError("items", "must not be empty to send a quote")
	}

	if q.s.Status == StatusSent && q.s.Link != nil && !q.s.Link.ExpiredAt(now) {
		return true, nil
	}
	link, err := issuer.Issue(now)
	if err != nil {
		return false, err
	}
	q.s.Link = &link
	if q.s.SentAt == nil {
		q.s.SentAt = &now
	}
	q.s.Status = StatusSent
	q.touch(now)
	return false, nil
}

// RegenerateToken replaces the public link; the previous token stops validating.
func (q *Quote) RegenerateToken(issuer *TokenIssuer, now time.Time) error {
	if !q.s.Status.in(StatusSent, StatusViewed) {
		return invalidTransition(ActionRegenerateToken, q.s.Status)
	}
	link, err := issuer.Issue(now)
	if err != nil {
		return err
	}
	q.s.Link = &link
	q.touch(now)
	return nil
}

// View records the first customer view. It reports whether anything changed.
func (q *Quote) View(now time.Time) (bool, error) {
	switch q.s.Status {
	case StatusSent, StatusViewed:
	case StatusAccepted, StatusConverted, StatusRejected:
		return false, nil
	default:
		return false, invalidTransition(ActionView, q.s.Status)
	}
	if q.s.ViewedAt != nil {
		return false, nil
	}
	q.s.ViewedAt = &now
	q.s.Status = StatusViewed
	q.touch(now)
	return true, nil
}

type ApprovalInput struct {
	Method     ApprovalMethod
	Signature  *string
	Notes      string
	ApprovedBy *uuid.UUID
}

// Approve accepts an outstanding quote. Approving an already accepted or converted
// quote reports true and leaves it untouched.
func (q *Quote) Approve(in ApprovalInput, now time.Time) (bool, error) {
	switch q.s.Status {
	case StatusAccepted, StatusConverted:
		return true, nil
	case StatusSent, StatusViewed:
	default:
		return false, invalidTransition(ActionApprove, q.s.Status)
	}
	if !in.Method.IsValid() {
		return false, newValidationError("approval_method", "unknown approval method")
	}
	if len(in.Notes) > MaxReasonLength {
		return false, newValidationError("notes", "exceeds maximum length")
	}

	approval := &Approval{
		Method:     in.Method,
		AcceptedAt: now,
		Notes:      strings.TrimSpace(in.Notes),
		ApprovedBy: cloneUUID(in.ApprovedBy),
	}
	if in.Signature != nil && *in.Signature != "" {
		sig := *in.Signature
		approval.Signature = &sig
	}
	q.s.Approval = approval
	q.s.Status = StatusAccepted
	q.touch(now)
	return false, nil
}

// Reject closes an outstanding quote. Rejecting an already rejected quote reports true.
func (q *Quote) Reject(reason string, rejectedBy *uuid.UUID, now time.Time) (bool, error) {
	switch q.s.Status {
	case StatusRejected:
		return true, nil
	case StatusSent, StatusViewed:
	default:
		return false, invalidTransition(ActionReject, q.s.Status)
	}
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxReasonLength {
		return false, newValidationError("reason", "exceeds maximum length")
	}
	q.s.Rejection = &Rejection{
		RejectedAt: now,
		Reason:     reason,
		RejectedBy: cloneUUID(rejectedBy),
	}
	q.s.Status = StatusRejected
	q.touch(now)
	return false, nil
}

func (q *Quote) MarkConverted(serviceOrderID uuid.UUID, now time.Time) error {
	if q.s.Conversion != nil {
		return ErrConversionConflict
	}
	if q.s.Status != StatusAccepted {
		return invalidTransition(ActionConvert, q.s.Status)
	}
	q.s.Conversion = &Conversion{ServiceOrderID: serviceOrderID, ConvertedAt: now}
	q.s.Status = StatusConverted
	q.touch(now)
	return nil
}

// CanRevise reports whether a new version may supersede this quote.
func (q *Quote) CanRevise(now time.Time) bool {
	return q.EffectiveStatus(now).in(StatusSent, StatusViewed, StatusRejected, StatusExpired)
}

// Supersedable reports whether a revision may already have replaced the quote.
// Only quotes that reached the customer can be revised.
func (q *Quote) Supersedable() bool {
	return q.s.Status.in(StatusSent, StatusViewed, StatusRejected)
}

// NewRevision drafts the next version of a sent quote. The receiver is not modified.
func (q *Quote) NewRevision(id uuid.UUID, createdBy uuid.UUID, now time.Time) (*Quote, error) {
	if !q.CanRevise(now) {
		return nil, invalidTransition(ActionRevise, q.EffectiveStatus(now))
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	parent := q.s.ID
	return &Quote{s: Snapshot{
		ID:            id,
		TenantID:      q.s.TenantID,
		Number:        q.s.Number,
		Version:       q.s.Version + 1,
		ParentQuoteID: &parent,
		Status:        StatusDraft,
		CustomerID:    q.s.CustomerID,
		VehicleID:     q.s.VehicleID,
		ElevatorID:    cloneUUID(q.s.ElevatorID),
		CreatedBy:     createdBy,
		Reported:      cloneReported(q.s.Reported),
		Assignment:    cloneAssignment(q.s.Assignment),
		Items:         cloneItems(q.s.Items),
		Costs:         q.s.Costs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}}, nil
}
