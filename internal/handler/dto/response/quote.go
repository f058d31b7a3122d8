package response

import (
	"time"

	"workshop-quotes/internal/usecase/queries"
)

type QuoteListResponse struct {
	Quotes     []*queries.QuoteListItem `json:"quotes"`
	NextCursor string                   `json:"next_cursor,omitempty"`
}

func FromQuoteList(items []*queries.QuoteListItem, next *queries.Cursor) *QuoteListResponse {
	resp := &QuoteListResponse{Quotes: items}
	if resp.Quotes == nil {
		resp.Quotes = []*queries.QuoteListItem{}
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

type SendQuoteResponse struct {
	Quote     *queries.QuoteView `json:"quote"`
	PublicURL string             `json:"public_url"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`
	Reused    bool               `json:"reused"`
}

func FromSend(view *queries.QuoteView, publicURL string, reused bool) *SendQuoteResponse {
	return &SendQuoteResponse{
		Quote:     view,
		PublicURL: publicURL,
		ExpiresAt: view.PublicTokenExpiresAt,
		Reused:    reused,
	}
}

type ApprovalResponse struct {
	Quote           *queries.QuoteView        `json:"quote"`
	ServiceOrder    *queries.ServiceOrderView `json:"service_order,omitempty"`
	AlreadyApproved bool                      `json:"already_approved"`
}

type ConversionResponse struct {
	Quote            *queries.QuoteView        `json:"quote"`
	ServiceOrder     *queries.ServiceOrderView `json:"service_order"`
	AlreadyConverted bool                      `json:"already_converted"`
}

// PublicQuoteResponse is what a customer sees through the approval link. It carries
// no staff ids and no token.
type PublicQuoteResponse struct {
	Number          string              `json:"number"`
	Version         int                 `json:"version"`
	Status          string              `json:"status"`
	ReportedProblem queries.ProblemView `json:"reported_problem"`
	Diagnosis       *PublicDiagnosis    `json:"diagnosis,omitempty"`
	Items           []queries.ItemView  `json:"items"`
	LaborCost       float64             `json:"labor_cost"`
	PartsCost       float64             `json:"parts_cost"`
	Discount        float64             `json:"discount"`
	TaxAmount       float64             `json:"tax_amount"`
	Subtotal        float64             `json:"subtotal"`
	Total           float64             `json:"total"`
	ValidUntil      *time.Time          `json:"valid_until,omitempty"`
	ApprovalMethod  *string             `json:"approval_method,omitempty"`
	AcceptedAt      *time.Time          `json:"accepted_at,omitempty"`
	RejectedAt      *time.Time          `json:"rejected_at,omitempty"`
}

type PublicDiagnosis struct {
	Problem         queries.ProblemView `json:"identified_problem"`
	Recommendations string              `json:"recommendations"`
	EstimatedHours  float64             `json:"estimated_hours"`
}

type PublicApprovalResponse struct {
	Quote              *PublicQuoteResponse `json:"quote"`
	ServiceOrderNumber string               `json:"service_order_number,omitempty"`
}

func FromPublicQuote(v *queries.QuoteView) *PublicQuoteResponse {
	resp := &PublicQuoteResponse{
		Number:          v.Number,
		Version:         v.Version,
		Status:          string(v.Status),
		ReportedProblem: v.ReportedProblem,
		Items:           v.Items,
		LaborCost:       v.LaborCost,
		PartsCost:       v.PartsCost,
		Discount:        v.Discount,
		TaxAmount:       v.TaxAmount,
		Subtotal:        v.Subtotal,
		Total:           v.Total,
		ValidUntil:      v.PublicTokenExpiresAt,
		ApprovalMethod:  v.ApprovalMethod,
		AcceptedAt:      v.AcceptedAt,
		RejectedAt:      v.RejectedAt,
	}
	if d := v.Diagnosis; d != nil {
		resp.Diagnosis = &PublicDiagnosis{
			Problem:         d.Problem,
			Recommendations: d.Recommendations,
			EstimatedHours:  d.EstimatedHours,
		}
	}
	return resp
}
