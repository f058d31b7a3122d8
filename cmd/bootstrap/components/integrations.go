package components

import (
	"context"
	"log/slog"

	"workshop-quotes/internal/infra/billing"
	"workshop-quotes/internal/infra/notify"
	"workshop-quotes/internal/infra/pdf"
	"workshop-quotes/internal/pkg/clock"
	"workshop-quotes/internal/pkg/config"
	"workshop-quotes/internal/usecase/shared"

	"go.uber.org/fx"
)

// IntegrationModule wires the external collaborators: billing, the PDF renderer
// and the notification outbox with its dispatcher.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewEntitlementChecker,
		NewPDFRenderer,
		NewNotificationSink,
		fx.Annotate(
			notify.NewOutboxPublisher,
			fx.As(new(shared.NotificationPublisher)),
		),
		NewDispatcher,
		NewOutboxScheduler,
	),
	fx.Invoke(func(*notify.Scheduler) {}),
)

func NewEntitlementChecker(cfg config.Config, logger *slog.Logger) shared.EntitlementChecker {
	if cfg.Billing.BaseURL == "" {
		logger.Warn("BILLING_BASE_URL not set, all plan features are allowed")
		return billing.AllowAll{}
	}
	return billing.NewClient(cfg.Billing.BaseURL, cfg.Billing.Timeout)
}

func NewPDFRenderer(cfg config.Config) shared.PDFRenderer {
	if cfg.PDF.RendererURL == "" {
		return pdf.Unavailable{}
	}
	return pdf.NewHTTPRenderer(cfg.PDF.RendererURL, cfg.PDF.Timeout)
}

func NewNotificationSink(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Sink, error) {
	var sink notify.Sink
	if cfg.ServiceBus.Enabled() {
		sb, err := notify.NewServiceBusSink(cfg.ServiceBus.ConnectionString, cfg.ServiceBus.QueueName)
		if err != nil {
			return nil, err
		}
		logger.Info("Service Bus notification sink enabled", "queue", cfg.ServiceBus.QueueName)
		sink = sb
	} else {
		logger.Info("SERVICEBUS_CONNECTION_STRING not set, notifications are logged only")
		sink = notify.NewLogSink(logger)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return sink.Close(ctx)
		},
	})
	return sink, nil
}

func NewDispatcher(outbox shared.OutboxRepository, sink notify.Sink, clk clock.Clock, cfg config.Config) *notify.Dispatcher {
	return notify.NewDispatcher(outbox, sink, clk, cfg.Outbox.BatchSize)
}

func NewOutboxScheduler(lc fx.Lifecycle, dispatcher *notify.Dispatcher, cfg config.Config) (*notify.Scheduler, error) {
	scheduler, err := notify.NewScheduler(dispatcher, cfg.Outbox.PollInterval)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return scheduler.Start(ctx)
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return scheduler.Stop()
		},
	})
	return scheduler, nil
}
