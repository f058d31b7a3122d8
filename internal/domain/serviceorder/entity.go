package serviceorder

import (
	"strconv"
	"strings"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrNotFound       = errs.New("service order not found")
	ErrNotConvertible = errs.New("quote is not ready for conversion")
)

type Status string

// Execution statuses beyond OPEN belong to the scheduling workflow.
const StatusOpen Status = "OPEN"

type Item struct {
	Name      string
	Quantity  float64
	UnitCost  quote.Money
	TotalCost quote.Money
}

// ServiceOrder is the commercial snapshot taken from an accepted quote.
type ServiceOrder struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	QuoteID    uuid.UUID
	Number     string
	Status     Status
	CustomerID uuid.UUID
	VehicleID  uuid.UUID
	ElevatorID *uuid.UUID
	MechanicID *uuid.UUID
	Items      []Item
	LaborCost  quote.Money
	PartsCost  quote.Money
	Discount   quote.Money
	TaxAmount  quote.Money
	Total      quote.Money
	CreatedAt  time.Time
}

// FromQuote copies the accepted commercial terms of q into a new service order.
func FromQuote(q *quote.Quote, id uuid.UUID, now time.Time) (*ServiceOrder, error) {
	if q.Status() != quote.StatusAccepted || q.HasConversion() {
		return nil, errs.Wrapf(ErrNotConvertible, "quote %s in status %s", q.ID(), q.Status())
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	snap := q.Snapshot()
	so := &ServiceOrder{
		ID:         id,
		TenantID:   snap.TenantID,
		QuoteID:    snap.ID,
		Number:     numberFor(snap.Number, snap.Version),
		Status:     StatusOpen,
		CustomerID: snap.CustomerID,
		VehicleID:  snap.VehicleID,
		Total:      q.Total(),
		CreatedAt:  now,
	}
	if err := copier.Copy(so, &snap.Costs); err != nil {
		return nil, errs.Wrap(err, "copy quote costs")
	}
	if err := copier.Copy(&so.Items, &snap.Items); err != nil {
		return nil, errs.Wrap(err, "copy quote items")
	}
	if snap.ElevatorID != nil {
		elevator := *snap.ElevatorID
		so.ElevatorID = &elevator
	}
	if snap.Assignment != nil {
		mechanic := snap.Assignment.MechanicID
		so.MechanicID = &mechanic
	}
	return so, nil
}

// numberFor derives "OS-000001" from "ORC-000001"; revisions get a "-v2" suffix.
func numberFor(quoteNumber string, version int) string {
	n := "OS-" + strings.TrimPrefix(quoteNumber, "ORC-")
	if version > 1 {
		n += "-v" + strconv.Itoa(version)
	}
	return n
}
