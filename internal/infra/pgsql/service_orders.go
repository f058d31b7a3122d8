package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createServiceOrder = `
INSERT INTO service_orders (
	id, tenant_id, quote_id, number, status, customer_id, vehicle_id, elevator_id, mechanic_id,
	labor_cost_cents, parts_cost_cents, discount_cents, tax_amount_cents, total_cents, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

func (q *Queries) CreateServiceOrder(ctx context.Context, db DBTX, arg ServiceOrder) error {
	_, err := db.Exec(ctx, createServiceOrder,
		arg.ID, arg.TenantID, arg.QuoteID, arg.Number, arg.Status,
		arg.CustomerID, arg.VehicleID, arg.ElevatorID, arg.MechanicID,
		arg.LaborCostCents, arg.PartsCostCents, arg.DiscountCents, arg.TaxAmountCents, arg.TotalCents,
		arg.CreatedAt,
	)
	return err
}

// CreateServiceOrderItems inserts all lines in one round trip.
func (q *Queries) CreateServiceOrderItems(ctx context.Context, db DBTX, items []ServiceOrderItem) error {
	if len(items) == 0 {
		return nil
	}
	const stmt = `
INSERT INTO service_order_items (service_order_id, position, name, quantity, unit_cost_cents, total_cost_cents)
SELECT $1, pos, name, qty, unit, total
FROM unnest($2::int[], $3::text[], $4::float8[], $5::bigint[], $6::bigint[]) AS t(pos, name, qty, unit, total)`

	var (
		positions = make([]int32, len(items))
		names     = make([]string, len(items))
		qtys      = make([]float64, len(items))
		units     = make([]int64, len(items))
		totals    = make([]int64, len(items))
	)
	for i, it := range items {
		positions[i] = it.Position
		names[i] = it.Name
		qtys[i] = it.Quantity
		units[i] = it.UnitCostCents
		totals[i] = it.TotalCostCents
	}
	_, err := db.Exec(ctx, stmt, items[0].ServiceOrderID, positions, names, qtys, units, totals)
	return err
}

const getServiceOrderByID = `
SELECT id, tenant_id, quote_id, number, status, customer_id, vehicle_id, elevator_id, mechanic_id,
	labor_cost_cents, parts_cost_cents, discount_cents, tax_amount_cents, total_cents, created_at
FROM service_orders WHERE tenant_id = $1 AND id = $2`

func (q *Queries) GetServiceOrderByID(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (ServiceOrder, error) {
	row := db.QueryRow(ctx, getServiceOrderByID, tenantID, id)
	var so ServiceOrder
	err := row.Scan(
		&so.ID, &so.TenantID, &so.QuoteID, &so.Number, &so.Status,
		&so.CustomerID, &so.VehicleID, &so.ElevatorID, &so.MechanicID,
		&so.LaborCostCents, &so.PartsCostCents, &so.DiscountCents, &so.TaxAmountCents, &so.TotalCents,
		&so.CreatedAt,
	)
	return so, err
}

const listServiceOrderItems = `
SELECT service_order_id, position, name, quantity, unit_cost_cents, total_cost_cents
FROM service_order_items WHERE service_order_id = $1 ORDER BY position`

func (q *Queries) ListServiceOrderItems(ctx context.Context, db DBTX, serviceOrderID uuid.UUID) ([]ServiceOrderItem, error) {
	rows, err := db.Query(ctx, listServiceOrderItems, serviceOrderID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ServiceOrderItem, error) {
		var it ServiceOrderItem
		err := row.Scan(&it.ServiceOrderID, &it.Position, &it.Name, &it.Quantity, &it.UnitCostCents, &it.TotalCostCents)
		return it, err
	})
}
