package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dukerupert/vagn/internal/domain"
	"github.com/nats-io/nats.go"
)

// NATSPublisher publishes domain events to NATS, one subject per event type:
// "<prefix>.<event_type>", e.g. "vagn.cart.item_added".
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url, subjectPrefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("vagn-publisher"))
	if err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, "publisher.connect", "failed to connect to NATS")
	}

	return &NATSPublisher{
		conn:   conn,
		prefix: subjectPrefix,
	}, nil
}

// Publish marshals each event to JSON and publishes it on its subject, then
// flushes so the batch is on the wire before returning.
func (p *NATSPublisher) Publish(ctx context.Context, events []domain.DomainEvent) error {
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			return domain.WrapError(err, domain.EINTERNAL, "publisher.publish", "failed to marshal event")
		}

		subject := fmt.Sprintf("%s.%s", p.prefix, event.EventType())
		if err := p.conn.Publish(subject, data); err != nil {
			return domain.WrapError(err, domain.EINTERNAL, "publisher.publish", "failed to publish event")
		}
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return domain.WrapError(err, domain.EINTERNAL, "publisher.publish", "failed to flush events")
	}
	return nil
}

// Close drains the connection so buffered messages are delivered.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
