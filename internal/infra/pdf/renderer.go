// Package pdf sends quote snapshots to the external document renderer.
package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxDocumentSize caps the rendered document; larger output is refused.
const MaxDocumentSize = 20 << 20

type HTTPRenderer struct {
	url        string
	httpClient *http.Client
}

var _ shared.PDFRenderer = (*HTTPRenderer)(nil)

func NewHTTPRenderer(url string, timeout time.Duration) *HTTPRenderer {
	return &HTTPRenderer{
		url:        strings.TrimRight(url, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type itemPayload struct {
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	UnitCostCents  int64   `json:"unit_cost_cents"`
	TotalCostCents int64   `json:"total_cost_cents"`
}

// documentPayload is the renderer's input. The public token is never sent.
type documentPayload struct {
	ID                 uuid.UUID     `json:"id"`
	TenantID           uuid.UUID     `json:"tenant_id"`
	Number             string        `json:"number"`
	Version            int           `json:"version"`
	Status             string        `json:"status"`
	CustomerID         uuid.UUID     `json:"customer_id"`
	VehicleID          uuid.UUID     `json:"vehicle_id"`
	ProblemCategory    string        `json:"problem_category"`
	ProblemDescription string        `json:"problem_description"`
	Diagnosis          string        `json:"diagnosis,omitempty"`
	Recommendations    string        `json:"recommendations,omitempty"`
	EstimatedHours     float64       `json:"estimated_hours,omitempty"`
	Items              []itemPayload `json:"items"`
	LaborCostCents     int64         `json:"labor_cost_cents"`
	PartsCostCents     int64         `json:"parts_cost_cents"`
	DiscountCents      int64         `json:"discount_cents"`
	TaxAmountCents     int64         `json:"tax_amount_cents"`
	TotalCents         int64         `json:"total_cents"`
	ValidUntil         *time.Time    `json:"valid_until,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

func newDocumentPayload(s quote.Snapshot) documentPayload {
	p := documentPayload{
		ID:                 s.ID,
		TenantID:           s.TenantID,
		Number:             s.Number,
		Version:            s.Version,
		Status:             string(s.Status),
		CustomerID:         s.CustomerID,
		VehicleID:          s.VehicleID,
		ProblemCategory:    s.Reported.Category,
		ProblemDescription: s.Reported.Description,
		Items:              make([]itemPayload, len(s.Items)),
		LaborCostCents:     s.Costs.LaborCost.Cents(),
		PartsCostCents:     s.Costs.PartsCost.Cents(),
		DiscountCents:      s.Costs.Discount.Cents(),
		TaxAmountCents:     s.Costs.TaxAmount.Cents(),
		TotalCents:         quote.GrandTotal(s.Items, s.Costs).Cents(),
		CreatedAt:          s.CreatedAt,
	}
	for i, it := range s.Items {
		p.Items[i] = itemPayload{
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitCostCents:  it.UnitCost.Cents(),
			TotalCostCents: it.TotalCost.Cents(),
		}
	}
	if s.Diagnosis != nil {
		p.Diagnosis = s.Diagnosis.Problem.Description
		p.Recommendations = s.Diagnosis.Recommendations
		p.EstimatedHours = s.Diagnosis.EstimatedHours
	}
	if s.Link != nil {
		expires := s.Link.ExpiresAt
		p.ValidUntil = &expires
	}
	return p
}

func (r *HTTPRenderer) Render(ctx context.Context, snapshot quote.Snapshot) (*shared.Document, error) {
	body, err := json.Marshal(newDocumentPayload(snapshot))
	if err != nil {
		return nil, errs.Wrap(err, "encode quote snapshot")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url+"/render/quote", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build render request"), shared.ErrRendererUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "call renderer"), shared.ErrRendererUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(errs.Newf("renderer returned status %d", resp.StatusCode), shared.ErrRendererUnavailable)
	}

	doc, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read rendered document"), shared.ErrRendererUnavailable)
	}
	if len(doc) > MaxDocumentSize {
		return nil, errs.Mark(errs.Newf("rendered document exceeds %d bytes", MaxDocumentSize), shared.ErrRendererUnavailable)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return &shared.Document{
		ContentType: contentType,
		Filename:    Filename(snapshot),
		Body:        doc,
	}, nil
}

// Filename is e.g. "ORC-000042-v2.pdf".
func Filename(s quote.Snapshot) string {
	if s.Version > 1 {
		return s.Number + "-v" + strconv.Itoa(s.Version) + ".pdf"
	}
	return s.Number + ".pdf"
}

// Unavailable is used when no renderer is configured.
type Unavailable struct{}

func (Unavailable) Render(context.Context, quote.Snapshot) (*shared.Document, error) {
	return nil, shared.ErrRendererUnavailable
}
