package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler polls the outbox on a fixed interval. Runs never overlap.
type Scheduler struct {
	scheduler  gocron.Scheduler
	dispatcher *Dispatcher
	interval   time.Duration
}

func NewScheduler(dispatcher *Dispatcher, interval time.Duration) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: s, dispatcher: dispatcher, interval: interval}, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			sent, err := s.dispatcher.RunOnce(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "outbox dispatch failed", "error", err.Error())
				return
			}
			if sent > 0 {
				slog.DebugContext(ctx, "outbox dispatched", "sent", sent)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("outbox-dispatcher"),
	)
	if err != nil {
		return err
	}
	s.scheduler.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
