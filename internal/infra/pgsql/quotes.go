package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const quoteColumns = `id, tenant_id, number, version, parent_quote_id, status,
	customer_id, vehicle_id, elevator_id, created_by,
	problem_category, problem_description, problem_symptoms,
	identified_problem_category, identified_problem_description, recommendations,
	estimated_hours, diagnosed_by, diagnosed_at,
	assigned_mechanic_id, assigned_at,
	items, labor_cost_cents, parts_cost_cents, discount_cents, tax_amount_cents,
	public_token, public_token_expires_at, sent_at, viewed_at,
	approval_method, accepted_at, customer_signature, approval_notes, approved_by,
	rejected_at, rejected_reason, rejected_by,
	converted_to_service_order_id, converted_at,
	created_at, updated_at`

func scanQuote(row pgx.Row) (Quote, error) {
	var q Quote
	err := row.Scan(
		&q.ID, &q.TenantID, &q.Number, &q.Version, &q.ParentQuoteID, &q.Status,
		&q.CustomerID, &q.VehicleID, &q.ElevatorID, &q.CreatedBy,
		&q.ProblemCategory, &q.ProblemDescription, &q.ProblemSymptoms,
		&q.IdentifiedProblemCategory, &q.IdentifiedProblemDescription, &q.Recommendations,
		&q.EstimatedHours, &q.DiagnosedBy, &q.DiagnosedAt,
		&q.AssignedMechanicID, &q.AssignedAt,
		&q.Items, &q.LaborCostCents, &q.PartsCostCents, &q.DiscountCents, &q.TaxAmountCents,
		&q.PublicToken, &q.PublicTokenExpiresAt, &q.SentAt, &q.ViewedAt,
		&q.ApprovalMethod, &q.AcceptedAt, &q.CustomerSignature, &q.ApprovalNotes, &q.ApprovedBy,
		&q.RejectedAt, &q.RejectedReason, &q.RejectedBy,
		&q.ConvertedToServiceOrderID, &q.ConvertedAt,
		&q.CreatedAt, &q.UpdatedAt,
	)
	return q, err
}

func scanQuotes(rows pgx.Rows) ([]Quote, error) {
	defer rows.Close()
	var items []Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const nextQuoteNumber = `
INSERT INTO quote_counters (tenant_id, last_value) VALUES ($1, 1)
ON CONFLICT (tenant_id) DO UPDATE SET last_value = quote_counters.last_value + 1
RETURNING last_value`

func (q *Queries) NextQuoteNumber(ctx context.Context, db DBTX, tenantID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, nextQuoteNumber, tenantID)
	var n int64
	err := row.Scan(&n)
	return n, err
}

const createQuote = `
INSERT INTO quotes (` + quoteColumns + `) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
	$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
	$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
	$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
	$41, $42)`

func (q *Queries) CreateQuote(ctx context.Context, db DBTX, arg Quote) error {
	_, err := db.Exec(ctx, createQuote,
		arg.ID, arg.TenantID, arg.Number, arg.Version, arg.ParentQuoteID, arg.Status,
		arg.CustomerID, arg.VehicleID, arg.ElevatorID, arg.CreatedBy,
		arg.ProblemCategory, arg.ProblemDescription, arg.ProblemSymptoms,
		arg.IdentifiedProblemCategory, arg.IdentifiedProblemDescription, arg.Recommendations,
		arg.EstimatedHours, arg.DiagnosedBy, arg.DiagnosedAt,
		arg.AssignedMechanicID, arg.AssignedAt,
		arg.Items, arg.LaborCostCents, arg.PartsCostCents, arg.DiscountCents, arg.TaxAmountCents,
		arg.PublicToken, arg.PublicTokenExpiresAt, arg.SentAt, arg.ViewedAt,
		arg.ApprovalMethod, arg.AcceptedAt, arg.CustomerSignature, arg.ApprovalNotes, arg.ApprovedBy,
		arg.RejectedAt, arg.RejectedReason, arg.RejectedBy,
		arg.ConvertedToServiceOrderID, arg.ConvertedAt,
		arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const getQuoteByID = `SELECT ` + quoteColumns + ` FROM quotes WHERE tenant_id = $1 AND id = $2`

func (q *Queries) GetQuoteByID(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (Quote, error) {
	return scanQuote(db.QueryRow(ctx, getQuoteByID, tenantID, id))
}

const getQuoteByIDForUpdate = getQuoteByID + ` FOR UPDATE`

func (q *Queries) GetQuoteByIDForUpdate(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (Quote, error) {
	return scanQuote(db.QueryRow(ctx, getQuoteByIDForUpdate, tenantID, id))
}

const getQuoteByToken = `SELECT ` + quoteColumns + ` FROM quotes WHERE tenant_id = $1 AND public_token = $2`

func (q *Queries) GetQuoteByToken(ctx context.Context, db DBTX, tenantID uuid.UUID, token string) (Quote, error) {
	return scanQuote(db.QueryRow(ctx, getQuoteByToken, tenantID, token))
}

const quoteHasRevision = `SELECT EXISTS (SELECT 1 FROM quotes WHERE tenant_id = $1 AND parent_quote_id = $2)`

func (q *Queries) QuoteHasRevision(ctx context.Context, db DBTX, tenantID, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, quoteHasRevision, tenantID, id).Scan(&exists)
	return exists, err
}

// Assignment and conversion columns are left to their own statements.
const updateQuoteIfStatus = `
UPDATE quotes SET
	status = $4,
	identified_problem_category = $5,
	identified_problem_description = $6,
	recommendations = $7,
	estimated_hours = $8,
	diagnosed_by = $9,
	diagnosed_at = $10,
	items = $11,
	labor_cost_cents = $12,
	parts_cost_cents = $13,
	discount_cents = $14,
	tax_amount_cents = $15,
	public_token = $16,
	public_token_expires_at = $17,
	sent_at = $18,
	viewed_at = $19,
	approval_method = $20,
	accepted_at = $21,
	customer_signature = $22,
	approval_notes = $23,
	approved_by = $24,
	rejected_at = $25,
	rejected_reason = $26,
	rejected_by = $27,
	updated_at = $28
WHERE tenant_id = $1 AND id = $2 AND status = $3`

func (q *Queries) UpdateQuoteIfStatus(ctx context.Context, db DBTX, arg Quote, expectedStatus string) (int64, error) {
	tag, err := db.Exec(ctx, updateQuoteIfStatus,
		arg.TenantID, arg.ID, expectedStatus,
		arg.Status,
		arg.IdentifiedProblemCategory, arg.IdentifiedProblemDescription, arg.Recommendations,
		arg.EstimatedHours, arg.DiagnosedBy, arg.DiagnosedAt,
		arg.Items, arg.LaborCostCents, arg.PartsCostCents, arg.DiscountCents, arg.TaxAmountCents,
		arg.PublicToken, arg.PublicTokenExpiresAt, arg.SentAt, arg.ViewedAt,
		arg.ApprovalMethod, arg.AcceptedAt, arg.CustomerSignature, arg.ApprovalNotes, arg.ApprovedBy,
		arg.RejectedAt, arg.RejectedReason, arg.RejectedBy,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateQuoteAssignee = `
UPDATE quotes SET
	assigned_mechanic_id = $5,
	assigned_at = $6,
	updated_at = $7
WHERE tenant_id = $1 AND id = $2
	AND status = $3
	AND assigned_mechanic_id IS NOT DISTINCT FROM $4
	AND status IN ('DRAFT', 'AWAITING_DIAGNOSIS', 'DIAGNOSED')`

type UpdateQuoteAssigneeParams struct {
	TenantID           uuid.UUID
	ID                 uuid.UUID
	Status             string
	ExpectedMechanicID pgtype.UUID
	MechanicID         pgtype.UUID
	AssignedAt         pgtype.Timestamptz
	UpdatedAt          pgtype.Timestamptz
}

func (q *Queries) UpdateQuoteAssignee(ctx context.Context, db DBTX, arg UpdateQuoteAssigneeParams) (int64, error) {
	tag, err := db.Exec(ctx, updateQuoteAssignee,
		arg.TenantID, arg.ID, arg.Status, arg.ExpectedMechanicID,
		arg.MechanicID, arg.AssignedAt, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const markQuoteConverted = `
UPDATE quotes SET
	status = 'CONVERTED',
	converted_to_service_order_id = $3,
	converted_at = $4,
	updated_at = $4
WHERE tenant_id = $1 AND id = $2
	AND status = 'ACCEPTED'
	AND converted_to_service_order_id IS NULL`

type MarkQuoteConvertedParams struct {
	TenantID       uuid.UUID
	ID             uuid.UUID
	ServiceOrderID uuid.UUID
	ConvertedAt    pgtype.Timestamptz
}

func (q *Queries) MarkQuoteConverted(ctx context.Context, db DBTX, arg MarkQuoteConvertedParams) (int64, error) {
	tag, err := db.Exec(ctx, markQuoteConverted, arg.TenantID, arg.ID, arg.ServiceOrderID, arg.ConvertedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type ListQuotesParams struct {
	TenantID       uuid.UUID
	Status         pgtype.Text
	MechanicID     pgtype.UUID
	UnassignedOnly bool
	Now            time.Time
	// Keyset position; zero for the first page.
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

// observedStatus mirrors the derived EXPIRED status of the domain.
func observedStatus(nowParam string) string {
	return `CASE WHEN status IN ('SENT', 'VIEWED') AND public_token_expires_at <= ` + nowParam +
		` THEN 'EXPIRED' ELSE status END`
}

func (q *Queries) ListQuotes(ctx context.Context, db DBTX, arg ListQuotesParams) ([]Quote, error) {
	var (
		sb   strings.Builder
		args = []interface{}{arg.TenantID}
	)
	sb.WriteString(`SELECT ` + quoteColumns + ` FROM quotes WHERE tenant_id = $1`)
	next := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if arg.Status.Valid {
		sb.WriteString(` AND ` + observedStatus(next(arg.Now)) + ` = ` + next(arg.Status.String))
	}
	if arg.MechanicID.Valid {
		sb.WriteString(` AND assigned_mechanic_id = ` + next(arg.MechanicID))
	}
	if arg.UnassignedOnly {
		sb.WriteString(` AND assigned_mechanic_id IS NULL`)
	}
	if arg.AfterCreatedAt.Valid && arg.AfterID.Valid {
		sb.WriteString(` AND (created_at, id) < (` + next(arg.AfterCreatedAt) + `, ` + next(arg.AfterID) + `)`)
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC LIMIT ` + next(arg.Limit))

	rows, err := db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	return scanQuotes(rows)
}
