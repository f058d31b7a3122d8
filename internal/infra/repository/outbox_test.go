//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workshop-quotes/internal/infra"
	"workshop-quotes/internal/infra/pgsql"
	"workshop-quotes/internal/infra/repository"
	"workshop-quotes/internal/pkg/pgconv"
	"workshop-quotes/internal/usecase/shared"
	repositorymock "workshop-quotes/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var outboxNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestOutboxRepository_Enqueue(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		job        shared.OutboxJob
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: id and status defaulted",
			job:  shared.OutboxJob{TenantID: uuid.New(), Event: "quote.sent", Payload: []byte(`{}`), RunAt: outboxNow, CreatedAt: outboxNow},
		},
		{
			name:       "error: database error occurs",
			job:        shared.OutboxJob{TenantID: uuid.New(), Event: "quote.sent", RunAt: outboxNow},
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOutboxRepository(mockQueries, mockDB)

			mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgsql.DBTX, row pgsql.NotificationJob) error {
					assert.NotEqual(t, uuid.Nil, row.ID)
					assert.Equal(t, shared.OutboxQueued, row.Status)
					assert.Equal(t, tc.job.Event, row.Event)
					assert.True(t, row.RunAt.Time.Equal(outboxNow))
					return tc.queryErr
				})

			err := repo.Enqueue(ctx, tc.job)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	row := pgsql.NotificationJob{
		ID:        uuid.New(),
		TenantID:  uuid.New(),
		Event:     "quote.approved",
		Payload:   []byte(`{"quote_id":"x"}`),
		RunAt:     pgconv.TimeToPgtype(outboxNow),
		Attempts:  3,
		Status:    shared.OutboxFailed,
		LastError: pgconv.StringToPgtype("timeout"),
		CreatedAt: pgconv.TimeToPgtype(outboxNow.Add(-time.Hour)),
	}
	mockQueries.EXPECT().ClaimNotificationJobs(ctx, mockDB, pgsql.ClaimNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(outboxNow),
		LeaseUntil: pgconv.TimeToPgtype(outboxNow.Add(repository.ClaimLease)),
		Limit:      25,
	}).Return([]pgsql.NotificationJob{row}, nil)

	jobs, err := repo.ClaimPending(ctx, outboxNow, 25)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, row.ID, jobs[0].ID)
	assert.Equal(t, 3, jobs[0].Attempts)
	require.NotNil(t, jobs[0].LastError)
	assert.Equal(t, "timeout", *jobs[0].LastError)
	assert.Equal(t, outboxNow.Add(-time.Hour), jobs[0].CreatedAt)
}

func TestOutboxRepository_ClaimPendingDatabaseError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ClaimNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("database connection error"))

	jobs, err := repo.ClaimPending(ctx, outboxNow, 10)
	assert.Nil(t, jobs)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestOutboxRepository_Mark(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	retryAt := outboxNow.Add(2 * time.Minute)

	testCases := []struct {
		name       string
		mark       func(*repository.OutboxRepository) error
		wantStatus string
		wantError  string
		wantRunAt  time.Time
	}{
		{
			name:       "success: sent clears the error",
			mark:       func(r *repository.OutboxRepository) error { return r.MarkSent(ctx, id, outboxNow) },
			wantStatus: shared.OutboxSent,
			wantRunAt:  outboxNow,
		},
		{
			name:       "success: failed schedules a retry",
			mark:       func(r *repository.OutboxRepository) error { return r.MarkFailed(ctx, id, "503 from sink", retryAt, outboxNow) },
			wantStatus: shared.OutboxFailed,
			wantError:  "503 from sink",
			wantRunAt:  retryAt,
		},
		{
			name:       "success: dead keeps the last error",
			mark:       func(r *repository.OutboxRepository) error { return r.MarkDead(ctx, id, "gave up", outboxNow) },
			wantStatus: shared.OutboxDead,
			wantError:  "gave up",
			wantRunAt:  outboxNow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOutboxQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOutboxRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ pgsql.DBTX, arg pgsql.UpdateNotificationJobStatusParams) error {
					assert.Equal(t, id, arg.ID)
					assert.Equal(t, tc.wantStatus, arg.Status)
					assert.Equal(t, tc.wantError != "", arg.LastError.Valid)
					assert.Equal(t, tc.wantError, arg.LastError.String)
					assert.True(t, arg.RunAt.Time.Equal(tc.wantRunAt))
					assert.True(t, arg.UpdatedAt.Time.Equal(outboxNow), "updated_at follows the caller's clock, got %v", arg.UpdatedAt.Time)
					return nil
				})

			require.NoError(t, tc.mark(repo))
		})
	}
}
