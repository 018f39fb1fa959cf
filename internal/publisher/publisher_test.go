package publisher_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dukerupert/vagn/internal/domain"
	"github.com/dukerupert/vagn/internal/publisher"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvents(cartID uuid.UUID) []domain.DomainEvent {
	return []domain.DomainEvent{
		domain.NewItemAdded(cartID, 101, 2, decimal.RequireFromString("99.99")),
		domain.NewCheckedOut(cartID, decimal.RequireFromString("199.98"), 1),
	}
}

func Test_LogPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pub := publisher.NewLogPublisher(logger)

	require.NoError(t, pub.Publish(context.Background(), testEvents(uuid.New())))
	require.NoError(t, pub.Publish(context.Background(), nil))
	assert.NoError(t, pub.Close())
}

func Test_MockPublisher_RecordsBatches(t *testing.T) {
	pub := publisher.NewMockPublisher()
	cartID := uuid.New()

	require.NoError(t, pub.Publish(context.Background(), testEvents(cartID)))

	require.Len(t, pub.Published, 2)
	assert.Equal(t, "item_added", pub.Published[0].EventType())
	assert.Equal(t, "checked_out", pub.Published[1].EventType())

	require.NoError(t, pub.Close())
	assert.True(t, pub.Closed)
}

func Test_MockPublisher_PropagatesFailure(t *testing.T) {
	pub := publisher.NewMockPublisher()
	pub.PublishFunc = func(context.Context, []domain.DomainEvent) error {
		return domain.Errorf(domain.EINTERNAL, "publisher.publish", "broker unavailable")
	}

	err := pub.Publish(context.Background(), testEvents(uuid.New()))

	require.Error(t, err)
	assert.Equal(t, domain.EINTERNAL, domain.ErrorCode(err))
}

func Test_DrainThenPublish_DeliversEachEventOnce(t *testing.T) {
	// The intended hand-off: drain gives the batch out exactly once, so
	// publishing twice around a drain cannot duplicate events.
	pub := publisher.NewMockPublisher()
	cart := domain.NewShoppingCart(alwaysInStock{})
	ctx := context.Background()

	require.NoError(t, cart.AddItem(101, 2, decimal.RequireFromString("99.99")))
	require.NoError(t, cart.Checkout(ctx))

	require.NoError(t, pub.Publish(ctx, cart.DrainEvents()))
	require.NoError(t, pub.Publish(ctx, cart.DrainEvents()))

	assert.Len(t, pub.Published, 2, "second drain is empty, nothing is republished")
}

type alwaysInStock struct{}

func (alwaysInStock) CheckStock(context.Context, int, int) error { return nil }
