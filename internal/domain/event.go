package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is an immutable fact raised by the shopping cart aggregate.
// The variant set is closed: only types in this package can implement the
// interface, so the apply dispatch can match exhaustively.
type DomainEvent interface {
	// EventType returns the wire name of the event (e.g., "item_added").
	EventType() string

	// AggregateID returns the ID of the cart the event belongs to.
	AggregateID() uuid.UUID

	// OccurredOn returns the UTC wall-clock time the event was constructed.
	OccurredOn() time.Time

	isDomainEvent()
}

// occurredNow takes the single fresh clock reading an event gets at
// construction time.
func occurredNow() time.Time {
	return time.Now().UTC()
}

// ItemAdded records that a new product line entered the cart.
type ItemAdded struct {
	CartID     uuid.UUID       `json:"cart_id"`
	ProductID  int             `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewItemAdded constructs an ItemAdded event stamped with the current time.
func NewItemAdded(cartID uuid.UUID, productID, quantity int, unitPrice decimal.Decimal) ItemAdded {
	return ItemAdded{
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		OccurredAt: occurredNow(),
	}
}

func (e ItemAdded) EventType() string      { return "item_added" }
func (e ItemAdded) AggregateID() uuid.UUID { return e.CartID }
func (e ItemAdded) OccurredOn() time.Time  { return e.OccurredAt }
func (ItemAdded) isDomainEvent()           {}

// QuantityChanged records a new quantity for an existing product line.
type QuantityChanged struct {
	CartID     uuid.UUID `json:"cart_id"`
	ProductID  int       `json:"product_id"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewQuantityChanged constructs a QuantityChanged event stamped with the current time.
func NewQuantityChanged(cartID uuid.UUID, productID, quantity int) QuantityChanged {
	return QuantityChanged{
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
		OccurredAt: occurredNow(),
	}
}

func (e QuantityChanged) EventType() string      { return "quantity_changed" }
func (e QuantityChanged) AggregateID() uuid.UUID { return e.CartID }
func (e QuantityChanged) OccurredOn() time.Time  { return e.OccurredAt }
func (QuantityChanged) isDomainEvent()           {}

// ItemRemoved records that a product line left the cart.
type ItemRemoved struct {
	CartID     uuid.UUID `json:"cart_id"`
	ProductID  int       `json:"product_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewItemRemoved constructs an ItemRemoved event stamped with the current time.
func NewItemRemoved(cartID uuid.UUID, productID int) ItemRemoved {
	return ItemRemoved{
		CartID:     cartID,
		ProductID:  productID,
		OccurredAt: occurredNow(),
	}
}

func (e ItemRemoved) EventType() string      { return "item_removed" }
func (e ItemRemoved) AggregateID() uuid.UUID { return e.CartID }
func (e ItemRemoved) OccurredOn() time.Time  { return e.OccurredAt }
func (ItemRemoved) isDomainEvent()           {}

// DiscountApplied records a new discount percentage for a product line.
type DiscountApplied struct {
	CartID             uuid.UUID       `json:"cart_id"`
	ProductID          int             `json:"product_id"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

// NewDiscountApplied constructs a DiscountApplied event stamped with the current time.
func NewDiscountApplied(cartID uuid.UUID, productID int, discountPercentage decimal.Decimal) DiscountApplied {
	return DiscountApplied{
		CartID:             cartID,
		ProductID:          productID,
		DiscountPercentage: discountPercentage,
		OccurredAt:         occurredNow(),
	}
}

func (e DiscountApplied) EventType() string      { return "discount_applied" }
func (e DiscountApplied) AggregateID() uuid.UUID { return e.CartID }
func (e DiscountApplied) OccurredOn() time.Time  { return e.OccurredAt }
func (DiscountApplied) isDomainEvent()           {}

// CheckedOut records the final state of the cart at checkout.
type CheckedOut struct {
	CartID     uuid.UUID       `json:"cart_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewCheckedOut constructs a CheckedOut event stamped with the current time.
func NewCheckedOut(cartID uuid.UUID, totalPrice decimal.Decimal, itemCount int) CheckedOut {
	return CheckedOut{
		CartID:     cartID,
		TotalPrice: totalPrice,
		ItemCount:  itemCount,
		OccurredAt: occurredNow(),
	}
}

func (e CheckedOut) EventType() string      { return "checked_out" }
func (e CheckedOut) AggregateID() uuid.UUID { return e.CartID }
func (e CheckedOut) OccurredOn() time.Time  { return e.OccurredAt }
func (CheckedOut) isDomainEvent()           {}

// Cleared records that all items were removed from the cart at once.
type Cleared struct {
	CartID     uuid.UUID `json:"cart_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewCleared constructs a Cleared event stamped with the current time.
func NewCleared(cartID uuid.UUID) Cleared {
	return Cleared{
		CartID:     cartID,
		OccurredAt: occurredNow(),
	}
}

func (e Cleared) EventType() string      { return "cleared" }
func (e Cleared) AggregateID() uuid.UUID { return e.CartID }
func (e Cleared) OccurredOn() time.Time  { return e.OccurredAt }
func (Cleared) isDomainEvent()           {}
