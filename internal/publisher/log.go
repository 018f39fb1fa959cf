package publisher

import (
	"context"
	"log/slog"

	"github.com/dukerupert/vagn/internal/domain"
)

// LogPublisher writes events to the logger instead of a broker. Used in
// development when no NATS URL is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that logs each event.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each event with its type, cart, and timestamp.
func (p *LogPublisher) Publish(_ context.Context, events []domain.DomainEvent) error {
	for _, event := range events {
		p.logger.Info("event published",
			"event_type", event.EventType(),
			"cart_id", event.AggregateID(),
			"occurred_on", event.OccurredOn(),
		)
	}
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error {
	return nil
}
