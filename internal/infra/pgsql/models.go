package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Quote struct {
	ID                           uuid.UUID
	TenantID                     uuid.UUID
	Number                       string
	Version                      int32
	ParentQuoteID                pgtype.UUID
	Status                       string
	CustomerID                   uuid.UUID
	VehicleID                    uuid.UUID
	ElevatorID                   pgtype.UUID
	CreatedBy                    pgtype.UUID
	ProblemCategory              string
	ProblemDescription           string
	ProblemSymptoms              []string
	IdentifiedProblemCategory    pgtype.Text
	IdentifiedProblemDescription pgtype.Text
	Recommendations              pgtype.Text
	EstimatedHours               pgtype.Float8
	DiagnosedBy                  pgtype.UUID
	DiagnosedAt                  pgtype.Timestamptz
	AssignedMechanicID           pgtype.UUID
	AssignedAt                   pgtype.Timestamptz
	Items                        []byte
	LaborCostCents               int64
	PartsCostCents               int64
	DiscountCents                int64
	TaxAmountCents               int64
	PublicToken                  pgtype.Text
	PublicTokenExpiresAt         pgtype.Timestamptz
	SentAt                       pgtype.Timestamptz
	ViewedAt                     pgtype.Timestamptz
	ApprovalMethod               pgtype.Text
	AcceptedAt                   pgtype.Timestamptz
	CustomerSignature            pgtype.Text
	ApprovalNotes                pgtype.Text
	ApprovedBy                   pgtype.UUID
	RejectedAt                   pgtype.Timestamptz
	RejectedReason               pgtype.Text
	RejectedBy                   pgtype.UUID
	ConvertedToServiceOrderID    pgtype.UUID
	ConvertedAt                  pgtype.Timestamptz
	CreatedAt                    pgtype.Timestamptz
	UpdatedAt                    pgtype.Timestamptz
}

// QuoteItem is the jsonb element of quotes.items.
type QuoteItem struct {
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	UnitCostCents  int64   `json:"unit_cost_cents"`
	TotalCostCents int64   `json:"total_cost_cents"`
}

type ServiceOrder struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	QuoteID        uuid.UUID
	Number         string
	Status         string
	CustomerID     uuid.UUID
	VehicleID      uuid.UUID
	ElevatorID     pgtype.UUID
	MechanicID     pgtype.UUID
	LaborCostCents int64
	PartsCostCents int64
	DiscountCents  int64
	TaxAmountCents int64
	TotalCents     int64
	CreatedAt      pgtype.Timestamptz
}

type ServiceOrderItem struct {
	ServiceOrderID uuid.UUID
	Position       int32
	Name           string
	Quantity       float64
	UnitCostCents  int64
	TotalCostCents int64
}

type NotificationJob struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Event     string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
