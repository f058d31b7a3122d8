package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"workshop-quotes/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outbox keeps notification jobs in memory. Claimed jobs stay invisible until
// marked, mirroring the SKIP LOCKED claim of the postgres outbox.
type Outbox struct {
	mu      sync.Mutex
	jobs    map[uuid.UUID]*shared.OutboxJob
	claimed map[uuid.UUID]bool
}

var _ shared.OutboxRepository = (*Outbox)(nil)

func newOutbox() *Outbox {
	return &Outbox{
		jobs:    make(map[uuid.UUID]*shared.OutboxJob),
		claimed: make(map[uuid.UUID]bool),
	}
}

func (o *Outbox) Enqueue(_ context.Context, job shared.OutboxJob) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = shared.OutboxQueued
	}
	stored := job
	o.jobs[job.ID] = &stored
	return nil
}

func (o *Outbox) ClaimPending(_ context.Context, now time.Time, limit int) ([]shared.OutboxJob, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	due := make([]*shared.OutboxJob, 0)
	for id, job := range o.jobs {
		if o.claimed[id] || job.Status == shared.OutboxSent || job.Status == shared.OutboxDead || job.RunAt.After(now) {
			continue
		}
		due = append(due, job)
	}
	sort.Slice(due, func(i, j int) bool { return due[i].RunAt.Before(due[j].RunAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	out := make([]shared.OutboxJob, len(due))
	for i, job := range due {
		job.Attempts++
		o.claimed[job.ID] = true
		out[i] = *job
	}
	return out, nil
}

func (o *Outbox) MarkSent(_ context.Context, id uuid.UUID, _ time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if job, ok := o.jobs[id]; ok {
		job.Status = shared.OutboxSent
		job.LastError = nil
	}
	delete(o.claimed, id)
	return nil
}

func (o *Outbox) MarkFailed(_ context.Context, id uuid.UUID, lastError string, retryAt, _ time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if job, ok := o.jobs[id]; ok {
		job.Status = shared.OutboxFailed
		job.LastError = &lastError
		job.RunAt = retryAt
	}
	delete(o.claimed, id)
	return nil
}

func (o *Outbox) MarkDead(_ context.Context, id uuid.UUID, lastError string, _ time.Time) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if job, ok := o.jobs[id]; ok {
		job.Status = shared.OutboxDead
		job.LastError = &lastError
	}
	delete(o.claimed, id)
	return nil
}

// Jobs returns a copy of every job, oldest first.
func (o *Outbox) Jobs() []shared.OutboxJob {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]shared.OutboxJob, 0, len(o.jobs))
	for _, job := range o.jobs {
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
