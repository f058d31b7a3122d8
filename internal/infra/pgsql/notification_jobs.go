package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotificationJob = `
INSERT INTO notification_jobs (id, tenant_id, event, payload, run_at, attempts, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $7)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg NotificationJob) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.ID, arg.TenantID, arg.Event, arg.Payload, arg.RunAt, arg.Status, arg.CreatedAt)
	return err
}

// The lease pushes run_at forward so a crashed dispatcher's jobs become due again.
const claimNotificationJobs = `
UPDATE notification_jobs SET
	attempts = attempts + 1,
	run_at = $2,
	updated_at = $1
WHERE id IN (
	SELECT id FROM notification_jobs
	WHERE status IN ('queued', 'failed') AND run_at <= $1
	ORDER BY run_at
	LIMIT $3
	FOR UPDATE SKIP LOCKED
)
RETURNING id, tenant_id, event, payload, run_at, attempts, status, last_error, created_at, updated_at`

type ClaimNotificationJobsParams struct {
	Now        pgtype.Timestamptz
	LeaseUntil pgtype.Timestamptz
	Limit      int32
}

func (q *Queries) ClaimNotificationJobs(ctx context.Context, db DBTX, arg ClaimNotificationJobsParams) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimNotificationJobs, arg.Now, arg.LeaseUntil, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (NotificationJob, error) {
		var j NotificationJob
		err := row.Scan(&j.ID, &j.TenantID, &j.Event, &j.Payload, &j.RunAt, &j.Attempts,
			&j.Status, &j.LastError, &j.CreatedAt, &j.UpdatedAt)
		return j, err
	})
}

const updateNotificationJobStatus = `
UPDATE notification_jobs SET status = $2, last_error = $3, run_at = $4, updated_at = $5
WHERE id = $1`

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.LastError, arg.RunAt, arg.UpdatedAt)
	return err
}
