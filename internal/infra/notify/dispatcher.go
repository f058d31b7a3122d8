package notify

import (
	"context"
	"log/slog"
	"time"

	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/usecase/shared"
)

const (
	DefaultMaxAttempts = 8
	baseRetryDelay     = 10 * time.Second
	maxRetryDelay      = time.Hour
)

type Dispatcher struct {
	outbox      shared.OutboxRepository
	sink        Sink
	clock       clock.Clock
	batchSize   int
	maxAttempts int
}

func NewDispatcher(outbox shared.OutboxRepository, sink Sink, clk clock.Clock, batchSize int) *Dispatcher {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Dispatcher{
		outbox:      outbox,
		sink:        sink,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: DefaultMaxAttempts,
	}
}

// RunOnce delivers one batch of due jobs and reports how many were sent.
// Delivery failures are rescheduled, never returned.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	now := d.clock.Now()
	jobs, err := d.outbox.ClaimPending(ctx, now, d.batchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		err := d.sink.Deliver(ctx, Message{
			ID:       job.ID,
			TenantID: job.TenantID,
			Event:    job.Event,
			Body:     job.Payload,
			Attempt:  job.Attempts,
		})
		if err == nil {
			if err := d.outbox.MarkSent(ctx, job.ID, d.clock.Now()); err != nil {
				slog.ErrorContext(ctx, "failed to mark notification sent",
					"job_id", job.ID.String(), "error", err.Error())
				continue
			}
			sent++
			continue
		}

		if job.Attempts >= d.maxAttempts {
			slog.ErrorContext(ctx, "notification gave up after max attempts",
				"job_id", job.ID.String(),
				"event", job.Event,
				"attempts", job.Attempts,
				"error", err.Error())
			if merr := d.outbox.MarkDead(ctx, job.ID, err.Error(), d.clock.Now()); merr != nil {
				slog.ErrorContext(ctx, "failed to mark notification dead",
					"job_id", job.ID.String(), "error", merr.Error())
			}
			continue
		}

		failedAt := d.clock.Now()
		retryAt := failedAt.Add(RetryDelay(job.Attempts))
		slog.WarnContext(ctx, "notification delivery failed, rescheduling",
			"job_id", job.ID.String(),
			"event", job.Event,
			"attempts", job.Attempts,
			"retry_at", retryAt,
			"error", err.Error())
		if merr := d.outbox.MarkFailed(ctx, job.ID, err.Error(), retryAt, failedAt); merr != nil {
			slog.ErrorContext(ctx, "failed to reschedule notification",
				"job_id", job.ID.String(), "error", merr.Error())
		}
	}
	return sent, nil
}

// RetryDelay doubles per attempt from 10s, capped at one hour.
func RetryDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := baseRetryDelay
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
