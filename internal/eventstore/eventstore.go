// Package eventstore holds the historical event streams used for replay.
// This is the full per-cart history, distinct from the aggregate's
// pending-event buffer, which only holds events raised since the last drain.
package eventstore

import (
	"context"

	"github.com/dukerupert/vagn/internal/domain"
	"github.com/google/uuid"
)

// Store appends and loads per-cart event streams.
type Store interface {
	// Append adds events to the cart's stream. expectedVersion is the stream
	// version the caller last observed (-1 for a new stream); a mismatch
	// returns ErrVersionConflict and appends nothing.
	Append(ctx context.Context, cartID uuid.UUID, expectedVersion int, events []domain.DomainEvent) error

	// Load returns the cart's full ordered event history.
	Load(ctx context.Context, cartID uuid.UUID) ([]domain.DomainEvent, error)
}

var (
	// ErrVersionConflict signals a concurrent append: the stream advanced
	// past the version the caller based its events on.
	ErrVersionConflict = &domain.Error{Code: domain.ECONFLICT, Message: "Event stream version conflict"}

	// ErrStreamNotFound signals a load for a cart with no stored events.
	ErrStreamNotFound = &domain.Error{Code: domain.ENOTFOUND, Message: "Event stream not found"}
)
