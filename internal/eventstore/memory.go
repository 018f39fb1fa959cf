package eventstore

import (
	"context"
	"sync"

	"github.com/dukerupert/vagn/internal/domain"
	"github.com/google/uuid"
)

// MemoryStore implements Store with in-memory streams. The store is shared
// infrastructure and therefore mutex-guarded, unlike the aggregate itself.
type MemoryStore struct {
	mu      sync.RWMutex
	streams map[uuid.UUID][]domain.DomainEvent
}

// NewMemoryStore creates an empty in-memory event store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		streams: make(map[uuid.UUID][]domain.DomainEvent),
	}
}

// Append adds events to the cart's stream after an optimistic version check.
// A stream's version is the aggregate version its last event produced:
// len(stream)-1, or -1 for an empty stream.
func (s *MemoryStore) Append(_ context.Context, cartID uuid.UUID, expectedVersion int, events []domain.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stream := s.streams[cartID]
	if current := len(stream) - 1; current != expectedVersion {
		return ErrVersionConflict
	}

	s.streams[cartID] = append(stream, events...)
	return nil
}

// Load returns a copy of the cart's full ordered event history.
func (s *MemoryStore) Load(_ context.Context, cartID uuid.UUID) ([]domain.DomainEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream, ok := s.streams[cartID]
	if !ok {
		return nil, ErrStreamNotFound
	}

	out := make([]domain.DomainEvent, len(stream))
	copy(out, stream)
	return out, nil
}
