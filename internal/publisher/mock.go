package publisher

import (
	"context"

	"github.com/dukerupert/vagn/internal/domain"
)

// MockPublisher is a test implementation of Publisher.
type MockPublisher struct {
	PublishFunc func(ctx context.Context, events []domain.DomainEvent) error

	// Published records every event handed to Publish, in order.
	Published []domain.DomainEvent
	Closed    bool
}

// NewMockPublisher creates a mock that accepts every batch by default.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// Publish records the batch, then delegates to the configured function if set.
func (m *MockPublisher) Publish(ctx context.Context, events []domain.DomainEvent) error {
	m.Published = append(m.Published, events...)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, events)
	}
	return nil
}

// Close marks the publisher closed.
func (m *MockPublisher) Close() error {
	m.Closed = true
	return nil
}
