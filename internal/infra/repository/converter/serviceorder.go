package converter

import (
	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/pkg/pgconv"
)

func ServiceOrderToRows(so *serviceorder.ServiceOrder) (pgsql.ServiceOrder, []pgsql.ServiceOrderItem) {
	row := pgsql.ServiceOrder{
		ID:             so.ID,
		TenantID:       so.TenantID,
		QuoteID:        so.QuoteID,
		Number:         so.Number,
		Status:         string(so.Status),
		CustomerID:     so.CustomerID,
		VehicleID:      so.VehicleID,
		ElevatorID:     pgconv.UUIDPtrToPgtype(so.ElevatorID),
		MechanicID:     pgconv.UUIDPtrToPgtype(so.MechanicID),
		LaborCostCents: so.LaborCost.Cents(),
		PartsCostCents: so.PartsCost.Cents(),
		DiscountCents:  so.Discount.Cents(),
		TaxAmountCents: so.TaxAmount.Cents(),
		TotalCents:     so.Total.Cents(),
		CreatedAt:      pgconv.TimeToPgtype(so.CreatedAt),
	}
	items := make([]pgsql.ServiceOrderItem, len(so.Items))
	for i, it := range so.Items {
		items[i] = pgsql.ServiceOrderItem{
			ServiceOrderID: so.ID,
			Position:       int32(i),
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitCostCents:  it.UnitCost.Cents(),
			TotalCostCents: it.TotalCost.Cents(),
		}
	}
	return row, items
}

func ServiceOrderFromRows(row pgsql.ServiceOrder, items []pgsql.ServiceOrderItem) *serviceorder.ServiceOrder {
	so := &serviceorder.ServiceOrder{
		ID:         row.ID,
		TenantID:   row.TenantID,
		QuoteID:    row.QuoteID,
		Number:     row.Number,
		Status:     serviceorder.Status(row.Status),
		CustomerID: row.CustomerID,
		VehicleID:  row.VehicleID,
		ElevatorID: pgconv.UUIDPtrFromPgtype(row.ElevatorID),
		MechanicID: pgconv.UUIDPtrFromPgtype(row.MechanicID),
		Items:      make([]serviceorder.Item, len(items)),
		LaborCost:  quote.NewMoney(row.LaborCostCents),
		PartsCost:  quote.NewMoney(row.PartsCostCents),
		Discount:   quote.NewMoney(row.DiscountCents),
		TaxAmount:  quote.NewMoney(row.TaxAmountCents),
		Total:      quote.NewMoney(row.TotalCents),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
	for i, it := range items {
		so.Items[i] = serviceorder.Item{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitCost:  quote.NewMoney(it.UnitCostCents),
			TotalCost: quote.NewMoney(it.TotalCostCents),
		}
	}
	return so
}
