package queries

import (
	"context"
	"time"

	"workshop-quotes/internal/domain/serviceorder"

	"github.com/google/uuid"
)

type ServiceOrderView struct {
	ID         uuid.UUID  `json:"id"`
	TenantID   uuid.UUID  `json:"tenant_id"`
	QuoteID    uuid.UUID  `json:"quote_id"`
	Number     string     `json:"number"`
	Status     string     `json:"status"`
	CustomerID uuid.UUID  `json:"customer_id"`
	VehicleID  uuid.UUID  `json:"vehicle_id"`
	ElevatorID *uuid.UUID `json:"elevator_id,omitempty"`
	MechanicID *uuid.UUID `json:"mechanic_id,omitempty"`
	Items      []ItemView `json:"items"`
	LaborCost  float64    `json:"labor_cost"`
	PartsCost  float64    `json:"parts_cost"`
	Discount   float64    `json:"discount"`
	TaxAmount  float64    `json:"tax_amount"`
	Total      float64    `json:"total"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ServiceOrderReadStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*serviceorder.ServiceOrder, error)
}

type ServiceOrderQueries interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ServiceOrderView, error)
}

type serviceOrderQueriesImpl struct {
	repo ServiceOrderReadStore
}

func NewServiceOrderQueries(repo ServiceOrderReadStore) ServiceOrderQueries {
	return &serviceOrderQueriesImpl{repo: repo}
}

func (q *serviceOrderQueriesImpl) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ServiceOrderView, error) {
	so, err := q.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return NewServiceOrderView(so), nil
}

func NewServiceOrderView(so *serviceorder.ServiceOrder) *ServiceOrderView {
	v := &ServiceOrderView{
		ID:         so.ID,
		TenantID:   so.TenantID,
		QuoteID:    so.QuoteID,
		Number:     so.Number,
		Status:     string(so.Status),
		CustomerID: so.CustomerID,
		VehicleID:  so.VehicleID,
		ElevatorID: so.ElevatorID,
		MechanicID: so.MechanicID,
		Items:      make([]ItemView, len(so.Items)),
		LaborCost:  so.LaborCost.Float(),
		PartsCost:  so.PartsCost.Float(),
		Discount:   so.Discount.Float(),
		TaxAmount:  so.TaxAmount.Float(),
		Total:      so.Total.Float(),
		CreatedAt:  so.CreatedAt,
	}
	for i, it := range so.Items {
		v.Items[i] = ItemView{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost.Float(),
			TotalCost: it.TotalCost.Float(),
		}
	}
	return v
}
