package domain

import (
	"github.com/google/uuid"
)

// aggregateRoot carries the event-sourcing bookkeeping shared by aggregate
// roots: identity, a version counter, and the buffer of events raised since
// the last drain. The version starts at -1 and advances once per applied
// event, so an external persistence layer can use it for optimistic
// concurrency checks.
type aggregateRoot struct {
	id      uuid.UUID
	version int
	pending []DomainEvent
}

func newAggregateRoot() aggregateRoot {
	return aggregateRoot{
		id:      uuid.New(),
		version: -1,
	}
}

// ID returns the aggregate identity.
func (a *aggregateRoot) ID() uuid.UUID {
	return a.id
}

// Version returns the number of events applied so far, minus one.
// A freshly constructed aggregate reports -1.
func (a *aggregateRoot) Version() int {
	return a.version
}

// Events returns a snapshot of the events raised since the last drain
// without clearing them. Safe to call repeatedly.
func (a *aggregateRoot) Events() []DomainEvent {
	out := make([]DomainEvent, len(a.pending))
	copy(out, a.pending)
	return out
}

// DrainEvents returns the events raised since the last drain and clears the
// buffer. Intended for publish-once-after-persistence semantics: each event
// is handed out exactly once.
func (a *aggregateRoot) DrainEvents() []DomainEvent {
	out := a.pending
	a.pending = nil
	return out
}

// record appends a freshly raised event to the pending buffer. Replay never
// calls this; only live command handling does.
func (a *aggregateRoot) record(event DomainEvent) {
	a.pending = append(a.pending, event)
}
