package converter

import (
	"encoding/json"
	"fmt"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/pkg/patch"
	"workshop-quotes/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func QuoteToRow(q *quote.Quote) (pgsql.Quote, error) {
	s := q.Snapshot()

	items := make([]pgsql.QuoteItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = pgsql.QuoteItem{
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitCostCents:  it.UnitCost.Cents(),
			TotalCostCents: it.TotalCost.Cents(),
		}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return pgsql.Quote{}, fmt.Errorf("encode quote items: %w", err)
	}

	symptoms := s.Reported.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	row := pgsql.Quote{
		ID:                 s.ID,
		TenantID:           s.TenantID,
		Number:             s.Number,
		Version:            int32(s.Version),
		ParentQuoteID:      pgconv.UUIDPtrToPgtype(s.ParentQuoteID),
		Status:             s.Status.String(),
		CustomerID:         s.CustomerID,
		VehicleID:          s.VehicleID,
		ElevatorID:         pgconv.UUIDPtrToPgtype(s.ElevatorID),
		CreatedBy:          optionalUUID(s.CreatedBy),
		ProblemCategory:    s.Reported.Category,
		ProblemDescription: s.Reported.Description,
		ProblemSymptoms:    symptoms,
		Items:              itemsJSON,
		LaborCostCents:     s.Costs.LaborCost.Cents(),
		PartsCostCents:     s.Costs.PartsCost.Cents(),
		DiscountCents:      s.Costs.Discount.Cents(),
		TaxAmountCents:     s.Costs.TaxAmount.Cents(),
		SentAt:             pgconv.TimePtrToPgtype(s.SentAt),
		ViewedAt:           pgconv.TimePtrToPgtype(s.ViewedAt),
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
	}
	if d := s.Diagnosis; d != nil {
		row.IdentifiedProblemCategory = pgconv.StringToPgtype(d.Problem.Category)
		row.IdentifiedProblemDescription = pgconv.StringToPgtype(d.Problem.Description)
		row.Recommendations = pgconv.StringToPgtype(d.Recommendations)
		row.EstimatedHours = pgconv.Float64ToPgtype(d.EstimatedHours)
		row.DiagnosedBy = pgconv.UUIDToPgtype(d.DiagnosedBy)
		row.DiagnosedAt = pgconv.TimeToPgtype(d.DiagnosedAt)
	}
	if a := s.Assignment; a != nil {
		row.AssignedMechanicID = pgconv.UUIDToPgtype(a.MechanicID)
		row.AssignedAt = pgconv.TimeToPgtype(a.AssignedAt)
	}
	if l := s.Link; l != nil {
		row.PublicToken = pgconv.StringToPgtype(l.Token)
		row.PublicTokenExpiresAt = pgconv.TimeToPgtype(l.ExpiresAt)
	}
	if a := s.Approval; a != nil {
		row.ApprovalMethod = pgconv.StringToPgtype(string(a.Method))
		row.AcceptedAt = pgconv.TimeToPgtype(a.AcceptedAt)
		row.CustomerSignature = pgconv.StringPtrToPgtype(a.Signature)
		row.ApprovalNotes = pgconv.StringToPgtype(a.Notes)
		row.ApprovedBy = pgconv.UUIDPtrToPgtype(a.ApprovedBy)
	}
	if r := s.Rejection; r != nil {
		row.RejectedAt = pgconv.TimeToPgtype(r.RejectedAt)
		row.RejectedReason = pgconv.StringToPgtype(r.Reason)
		row.RejectedBy = pgconv.UUIDPtrToPgtype(r.RejectedBy)
	}
	if c := s.Conversion; c != nil {
		row.ConvertedToServiceOrderID = pgconv.UUIDToPgtype(c.ServiceOrderID)
		row.ConvertedAt = pgconv.TimeToPgtype(c.ConvertedAt)
	}
	return row, nil
}

func QuoteFromRow(row pgsql.Quote) (*quote.Quote, error) {
	var rowItems []pgsql.QuoteItem
	if len(row.Items) > 0 {
		if err := json.Unmarshal(row.Items, &rowItems); err != nil {
			return nil, fmt.Errorf("decode items of quote %s: %w", row.ID, err)
		}
	}
	items := make([]quote.Item, len(rowItems))
	for i, it := range rowItems {
		items[i] = quote.Item{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitCost:  quote.NewMoney(it.UnitCostCents),
			TotalCost: quote.NewMoney(it.TotalCostCents),
		}
	}

	s := quote.Snapshot{
		ID:            row.ID,
		TenantID:      row.TenantID,
		Number:        row.Number,
		Version:       int(row.Version),
		ParentQuoteID: pgconv.UUIDPtrFromPgtype(row.ParentQuoteID),
		Status:        quote.Status(row.Status),
		CustomerID:    row.CustomerID,
		VehicleID:     row.VehicleID,
		ElevatorID:    pgconv.UUIDPtrFromPgtype(row.ElevatorID),
		Reported: quote.ReportedProblem{
			Category:    row.ProblemCategory,
			Description: row.ProblemDescription,
			Symptoms:    row.ProblemSymptoms,
		},
		Items: items,
		Costs: quote.Costs{
			LaborCost: quote.NewMoney(row.LaborCostCents),
			PartsCost: quote.NewMoney(row.PartsCostCents),
			Discount:  quote.NewMoney(row.DiscountCents),
			TaxAmount: quote.NewMoney(row.TaxAmountCents),
		},
		SentAt:    pgconv.TimePtrFromPgtype(row.SentAt),
		ViewedAt:  pgconv.TimePtrFromPgtype(row.ViewedAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if !s.Status.IsStored() {
		return nil, fmt.Errorf("quote %s has unknown stored status %q", row.ID, row.Status)
	}
	if row.CreatedBy.Valid {
		s.CreatedBy = uuid.UUID(row.CreatedBy.Bytes)
	}
	if row.DiagnosedAt.Valid {
		hours, err := pgconv.Float64PtrFromPgtype(row.EstimatedHours)
		if err != nil {
			return nil, err
		}
		d := &quote.Diagnosis{
			Problem: quote.IdentifiedProblem{
				Category:    pgconv.StringFromPgtype(row.IdentifiedProblemCategory),
				Description: pgconv.StringFromPgtype(row.IdentifiedProblemDescription),
			},
			Recommendations: pgconv.StringFromPgtype(row.Recommendations),
			EstimatedHours:  patch.Coalesce(hours, 0),
			DiagnosedAt:     row.DiagnosedAt.Time,
		}
		if row.DiagnosedBy.Valid {
			d.DiagnosedBy = uuid.UUID(row.DiagnosedBy.Bytes)
		}
		s.Diagnosis = d
	}
	if row.AssignedMechanicID.Valid {
		s.Assignment = &quote.Assignment{
			MechanicID: uuid.UUID(row.AssignedMechanicID.Bytes),
			AssignedAt: row.AssignedAt.Time,
		}
	}
	if row.PublicToken.Valid {
		s.Link = &quote.PublicLink{Token: row.PublicToken.String, ExpiresAt: row.PublicTokenExpiresAt.Time}
	}
	if row.AcceptedAt.Valid {
		s.Approval = &quote.Approval{
			Method:     quote.ApprovalMethod(row.ApprovalMethod.String),
			AcceptedAt: row.AcceptedAt.Time,
			Signature:  pgconv.StringPtrFromPgtype(row.CustomerSignature),
			Notes:      pgconv.StringFromPgtype(row.ApprovalNotes),
			ApprovedBy: pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		}
	}
	if row.RejectedAt.Valid {
		s.Rejection = &quote.Rejection{
			RejectedAt: row.RejectedAt.Time,
			Reason:     pgconv.StringFromPgtype(row.RejectedReason),
			RejectedBy: pgconv.UUIDPtrFromPgtype(row.RejectedBy),
		}
	}
	if row.ConvertedToServiceOrderID.Valid {
		s.Conversion = &quote.Conversion{
			ServiceOrderID: uuid.UUID(row.ConvertedToServiceOrderID.Bytes),
			ConvertedAt:    row.ConvertedAt.Time,
		}
	}
	return quote.Rehydrate(s), nil
}

func optionalUUID(id uuid.UUID) pgtype.UUID {
	if id == uuid.Nil {
		return pgtype.UUID{}
	}
	return pgconv.UUIDToPgtype(id)
}
