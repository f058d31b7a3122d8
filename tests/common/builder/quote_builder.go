//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/staff"
	reqdto "workshop-quotes/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ItemSpec struct {
	Name     string
	Quantity float64
	UnitCost float64
}

type QuoteBuilder struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	Number     string
	CustomerID uuid.UUID
	VehicleID  uuid.UUID
	CreatedBy  uuid.UUID
	MechanicID uuid.UUID
	Reported   quote.ReportedProblem
	Items      []ItemSpec
	Costs      quote.Costs
	Now        time.Time
	TokenTTL   time.Duration
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		ID:         uuid.New(),
		TenantID:   uuid.New(),
		Number:     "ORC-000001",
		CustomerID: uuid.New(),
		VehicleID:  uuid.New(),
		CreatedBy:  uuid.New(),
		MechanicID: uuid.New(),
		Reported: quote.ReportedProblem{
			Category:    "engine",
			Description: "Barulho ao dar partida",
			Symptoms:    []string{"noise", "vibration"},
		},
		Items: []ItemSpec{
			{Name: "Troca de óleo", Quantity: 1, UnitCost: 100},
			{Name: "Filtro", Quantity: 2, UnitCost: 25},
		},
		Now:      time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		TokenTTL: 168 * time.Hour,
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) WithTenantID(tenantID uuid.UUID) *QuoteBuilder {
	b.TenantID = tenantID
	return b
}

func (b *QuoteBuilder) WithItems(items ...ItemSpec) *QuoteBuilder {
	b.Items = items
	return b
}

func (b *QuoteBuilder) WithCosts(costs quote.Costs) *QuoteBuilder {
	b.Costs = costs
	return b
}

func (b *QuoteBuilder) WithNow(now time.Time) *QuoteBuilder {
	b.Now = now
	return b
}

func (b *QuoteBuilder) WithMechanicID(mechanicID uuid.UUID) *QuoteBuilder {
	b.MechanicID = mechanicID
	return b
}

func (b *QuoteBuilder) Mechanic() staff.Actor {
	return staff.Actor{UserID: b.MechanicID, TenantID: b.TenantID, Role: staff.RoleMechanic}
}

func (b *QuoteBuilder) Manager() staff.Actor {
	return staff.Actor{UserID: b.CreatedBy, TenantID: b.TenantID, Role: staff.RoleManager}
}

func (b *QuoteBuilder) Issuer() *quote.TokenIssuer {
	return quote.NewTokenIssuer(b.TokenTTL)
}

func (b *QuoteBuilder) BuildItems() ([]quote.Item, error) {
	items := make([]quote.Item, 0, len(b.Items))
	for _, s := range b.Items {
		it, err := quote.NewItem(s.Name, s.Quantity, quote.MoneyFromFloat(s.UnitCost))
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (b *QuoteBuilder) BuildDomain() (*quote.Quote, error) {
	items, err := b.BuildItems()
	if err != nil {
		return nil, err
	}
	return quote.NewQuote(quote.NewQuoteParams{
		ID:         b.ID,
		TenantID:   b.TenantID,
		Number:     b.Number,
		CustomerID: b.CustomerID,
		VehicleID:  b.VehicleID,
		CreatedBy:  b.CreatedBy,
		Reported:   b.Reported,
		Items:      items,
		Costs:      b.Costs,
	}, b.Now)
}

// BuildInStatus drives a fresh quote through the lifecycle up to status.
// Stored statuses only; EXPIRED is reached by moving the clock past the link.
func (b *QuoteBuilder) BuildInStatus(status quote.Status) (*quote.Quote, error) {
	q, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	issuer := b.Issuer()
	now := b.Now

	steps := []struct {
		reach quote.Status
		apply func() error
	}{
		{quote.StatusAwaitingDiagnosis, func() error {
			if err := q.SendForDiagnosis(now); err != nil {
				return err
			}
			mechanic := b.MechanicID
			return q.AssignMechanic(&mechanic, now)
		}},
		{quote.StatusDiagnosed, func() error {
			return q.CompleteDiagnosis(b.MechanicID, quote.DiagnosisInput{
				Problem:         quote.IdentifiedProblem{Category: "engine", Description: "Óleo vencido"},
				Recommendations: "Trocar óleo e filtro",
				EstimatedHours:  1.5,
			}, now)
		}},
		{quote.StatusSent, func() error {
			_, err := q.SendToCustomer(issuer, now)
			return err
		}},
		{quote.StatusViewed, func() error {
			_, err := q.View(now)
			return err
		}},
	}

	for _, step := range steps {
		if q.Status() == status {
			return q, nil
		}
		if err := step.apply(); err != nil {
			return nil, err
		}
	}

	switch status {
	case quote.StatusViewed:
		return q, nil
	case quote.StatusAccepted, quote.StatusConverted:
		if _, err := q.Approve(quote.ApprovalInput{Method: quote.ApprovalManual, ApprovedBy: &b.CreatedBy}, now); err != nil {
			return nil, err
		}
		if status == quote.StatusConverted {
			if err := q.MarkConverted(uuid.New(), now); err != nil {
				return nil, err
			}
		}
		return q, nil
	case quote.StatusRejected:
		if _, err := q.Reject("too expensive", nil, now); err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, fmt.Errorf("builder cannot reach status %s", status)
}

func (b *QuoteBuilder) BuildCreateRequestDTO() reqdto.CreateQuoteRequest {
	items := make([]reqdto.ItemRequest, len(b.Items))
	for i, s := range b.Items {
		items[i] = reqdto.ItemRequest{Name: s.Name, Quantity: s.Quantity, UnitCost: s.UnitCost}
	}
	return reqdto.CreateQuoteRequest{
		CustomerID:         b.CustomerID,
		VehicleID:          b.VehicleID,
		ProblemCategory:    b.Reported.Category,
		ProblemDescription: b.Reported.Description,
		Symptoms:           b.Reported.Symptoms,
		Items:              items,
		CostsRequest: reqdto.CostsRequest{
			LaborCost: b.Costs.LaborCost.Float(),
			PartsCost: b.Costs.PartsCost.Float(),
			Discount:  b.Costs.Discount.Float(),
			TaxAmount: b.Costs.TaxAmount.Float(),
		},
	}
}
