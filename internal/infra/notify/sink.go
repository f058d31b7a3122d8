package notify

import (
	"context"
	"log/slog"
	"time"

	"workshop-quotes/internal/pkg/errs"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/google/uuid"
)

// Message is one outbox job on its way to a sink.
type Message struct {
	ID       uuid.UUID
	TenantID uuid.UUID
	Event    string
	Body     []byte
	Attempt  int
}

type Sink interface {
	Deliver(ctx context.Context, msg Message) error
	Close(ctx context.Context) error
}

// ServiceBusSender is the subset of *azservicebus.Sender the sink uses.
type ServiceBusSender interface {
	SendMessage(ctx context.Context, message *azservicebus.Message, options *azservicebus.SendMessageOptions) error
	Close(ctx context.Context) error
}

type ServiceBusSink struct {
	client *azservicebus.Client
	sender ServiceBusSender
	queue  string
}

func NewServiceBusSink(connectionString, queue string) (*ServiceBusSink, error) {
	client, err := azservicebus.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create Service Bus client")
	}
	sender, err := client.NewSender(queue, nil)
	if err != nil {
		_ = client.Close(context.Background())
		return nil, errs.Wrap(err, "failed to create Service Bus sender")
	}
	return &ServiceBusSink{client: client, sender: sender, queue: queue}, nil
}

// NewServiceBusSinkWithSender is used by tests and by callers that manage the client.
func NewServiceBusSinkWithSender(sender ServiceBusSender, queue string) *ServiceBusSink {
	return &ServiceBusSink{sender: sender, queue: queue}
}

// Deliver uses the outbox job id as MessageID so broker-side duplicate detection
// drops redeliveries of the same job.
func (s *ServiceBusSink) Deliver(ctx context.Context, msg Message) error {
	messageID := msg.ID.String()
	subject := msg.Event
	contentType := "application/json"
	sbMsg := &azservicebus.Message{
		MessageID:   &messageID,
		Subject:     &subject,
		ContentType: &contentType,
		Body:        msg.Body,
		ApplicationProperties: map[string]any{
			"event":     msg.Event,
			"tenant_id": msg.TenantID.String(),
			"attempt":   msg.Attempt,
			"time":      time.Now().UTC().Format(time.RFC3339),
		},
	}
	if err := s.sender.SendMessage(ctx, sbMsg, nil); err != nil {
		return errs.Wrapf(err, "send %s to queue %s", msg.Event, s.queue)
	}
	return nil
}

func (s *ServiceBusSink) Close(ctx context.Context) error {
	if s.sender != nil {
		if err := s.sender.Close(ctx); err != nil {
			return err
		}
	}
	if s.client != nil {
		return s.client.Close(ctx)
	}
	return nil
}

// LogSink writes events to the log for local development.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Deliver(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "notification delivered",
		"event", msg.Event,
		"tenant_id", msg.TenantID.String(),
		"job_id", msg.ID.String(),
		"body", string(msg.Body))
	return nil
}

func (s *LogSink) Close(context.Context) error {
	return nil
}
