package request

import (
	"strings"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/pkg/patch"
	"workshop-quotes/internal/usecase/commands"
	"workshop-quotes/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidFilter = errs.New("invalid list filter")

type ItemRequest struct {
	Name     string  `json:"name" binding:"required,max=200"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	UnitCost float64 `json:"unit_cost" binding:"gte=0"`
}

type CostsRequest struct {
	LaborCost float64 `json:"labor_cost" binding:"gte=0"`
	PartsCost float64 `json:"parts_cost" binding:"gte=0"`
	Discount  float64 `json:"discount" binding:"gte=0"`
	TaxAmount float64 `json:"tax_amount" binding:"gte=0"`
}

type CreateQuoteRequest struct {
	CustomerID         uuid.UUID     `json:"customer_id" binding:"required"`
	VehicleID          uuid.UUID     `json:"vehicle_id" binding:"required"`
	ElevatorID         *uuid.UUID    `json:"elevator_id"`
	ProblemCategory    string        `json:"problem_category" binding:"max=100"`
	ProblemDescription string        `json:"problem_description" binding:"max=4000"`
	Symptoms           []string      `json:"symptoms" binding:"max=50"`
	Items              []ItemRequest `json:"items" binding:"dive"`
	CostsRequest
}

func toItemInputs(items []ItemRequest) []commands.ItemInput {
	out := make([]commands.ItemInput, len(items))
	for i, it := range items {
		out[i] = commands.ItemInput{Name: it.Name, Quantity: it.Quantity, UnitCost: it.UnitCost}
	}
	return out
}

func (r CostsRequest) ToInput() commands.CostsInput {
	return commands.CostsInput{
		LaborCost: r.LaborCost,
		PartsCost: r.PartsCost,
		Discount:  r.Discount,
		TaxAmount: r.TaxAmount,
	}
}

func (r *CreateQuoteRequest) ToInput() commands.CreateQuoteInput {
	return commands.CreateQuoteInput{
		CustomerID: r.CustomerID,
		VehicleID:  r.VehicleID,
		ElevatorID: r.ElevatorID,
		Reported: quote.ReportedProblem{
			Category:    strings.TrimSpace(r.ProblemCategory),
			Description: strings.TrimSpace(r.ProblemDescription),
			Symptoms:    r.Symptoms,
		},
		Items: toItemInputs(r.Items),
		Costs: r.CostsRequest.ToInput(),
	}
}

type UpdateItemsRequest struct {
	Items []ItemRequest `json:"items" binding:"dive"`
	CostsRequest
}

func (r *UpdateItemsRequest) ToInput() ([]commands.ItemInput, commands.CostsInput) {
	return toItemInputs(r.Items), r.CostsRequest.ToInput()
}

// AssignMechanicRequest with a null mechanic_id returns the quote to the pool.
type AssignMechanicRequest struct {
	MechanicID *uuid.UUID `json:"mechanic_id"`
	Reason     string     `json:"reason" binding:"max=1000"`
}

type CompleteDiagnosisRequest struct {
	ProblemCategory    string  `json:"problem_category" binding:"max=100"`
	ProblemDescription string  `json:"problem_description" binding:"required,max=4000"`
	Recommendations    string  `json:"recommendations" binding:"max=4000"`
	EstimatedHours     float64 `json:"estimated_hours" binding:"gte=0"`
}

func (r *CompleteDiagnosisRequest) ToInput() quote.DiagnosisInput {
	return quote.DiagnosisInput{
		Problem: quote.IdentifiedProblem{
			Category:    strings.TrimSpace(r.ProblemCategory),
			Description: strings.TrimSpace(r.ProblemDescription),
		},
		Recommendations: strings.TrimSpace(r.Recommendations),
		EstimatedHours:  r.EstimatedHours,
	}
}

type ApproveQuoteRequest struct {
	CustomerSignature *string `json:"customer_signature" binding:"omitempty,max=20000"`
	Notes             string  `json:"notes" binding:"max=1000"`
}

type RejectQuoteRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

type PublicApproveRequest struct {
	CustomerSignature *string `json:"customer_signature" binding:"omitempty,max=20000"`
}

type ListQuotesQuery struct {
	Status         string `form:"status"`
	MechanicID     string `form:"mechanic_id"`
	UnassignedOnly bool   `form:"unassigned"`
	Limit          int    `form:"limit"`
	After          string `form:"after"`
}

// ToFilters returns ErrInvalidFilter for an unknown status or malformed mechanic id.
func (q *ListQuotesQuery) ToFilters() (queries.QuoteFilters, error) {
	var f queries.QuoteFilters
	if q.Status != "" {
		st := quote.Status(strings.ToUpper(q.Status))
		if !st.IsValid() {
			return f, ErrInvalidFilter
		}
		f.Status = patch.Ptr(st)
	}
	if q.MechanicID != "" {
		id, err := uuid.Parse(q.MechanicID)
		if err != nil {
			return f, ErrInvalidFilter
		}
		f.MechanicID = &id
	}
	f.UnassignedOnly = q.UnassignedOnly
	return f, nil
}
