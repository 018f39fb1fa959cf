// Package publisher hands drained domain events to the outside world. The
// aggregate's DrainEvents gives each event out exactly once; a publisher
// consumes that batch after the events have been persisted.
package publisher

import (
	"context"

	"github.com/dukerupert/vagn/internal/domain"
)

// Publisher delivers a batch of domain events.
// Implementations: NATSPublisher, LogPublisher, MockPublisher.
type Publisher interface {
	// Publish delivers events in order. A failure may leave the batch
	// partially delivered; callers decide whether to retry the remainder.
	Publish(ctx context.Context, events []domain.DomainEvent) error

	// Close releases the publisher's resources.
	Close() error
}
