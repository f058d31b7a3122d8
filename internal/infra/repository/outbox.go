package repository

import (
	"context"
	"time"

	"workshop-quotes/internal/infra"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/pkg/pgconv"
	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ClaimLease is how long a claimed job stays invisible to other dispatchers.
const ClaimLease = 5 * time.Minute

type OutboxQueries interface {
	CreateNotificationJob(ctx context.Context, db pgsql.DBTX, arg pgsql.NotificationJob) error
	ClaimNotificationJobs(ctx context.Context, db pgsql.DBTX, arg pgsql.ClaimNotificationJobsParams) ([]pgsql.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateNotificationJobStatusParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      pgsql.DBTX
}

var _ shared.OutboxRepository = (*OutboxRepository)(nil)

func NewOutboxRepository(queries OutboxQueries, db pgsql.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, job shared.OutboxJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = shared.OutboxQueued
	}
	err := r.queries.CreateNotificationJob(ctx, r.db, pgsql.NotificationJob{
		ID:        job.ID,
		TenantID:  job.TenantID,
		Event:     job.Event,
		Payload:   job.Payload,
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
		Status:    job.Status,
		CreatedAt: pgconv.TimeToPgtype(job.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimPending(ctx context.Context, now time.Time, limit int) ([]shared.OutboxJob, error) {
	rows, err := r.queries.ClaimNotificationJobs(ctx, r.db, pgsql.ClaimNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		LeaseUntil: pgconv.TimeToPgtype(now.Add(ClaimLease)),
		Limit:      int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.OutboxJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.OutboxJob{
			ID:        row.ID,
			TenantID:  row.TenantID,
			Event:     row.Event,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  int(row.Attempts),
			Status:    row.Status,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return jobs, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uuid.UUID, now time.Time) error {
	return r.updateStatus(ctx, id, shared.OutboxSent, pgtype.Text{}, now, now)
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, retryAt, now time.Time) error {
	return r.updateStatus(ctx, id, shared.OutboxFailed, pgconv.StringToPgtype(lastError), retryAt, now)
}

func (r *OutboxRepository) MarkDead(ctx context.Context, id uuid.UUID, lastError string, now time.Time) error {
	return r.updateStatus(ctx, id, shared.OutboxDead, pgconv.StringToPgtype(lastError), now, now)
}

func (r *OutboxRepository) updateStatus(ctx context.Context, id uuid.UUID, status string, lastError pgtype.Text, runAt, now time.Time) error {
	err := r.queries.UpdateNotificationJobStatus(ctx, r.db, pgsql.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    status,
		LastError: lastError,
		RunAt:     pgconv.TimeToPgtype(runAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
