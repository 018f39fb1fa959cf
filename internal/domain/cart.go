package domain

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cart-level business limits.
const (
	maxCartItems         = 50
	maxCartTotalQuantity = 999
)

var maxCartTotalPrice = decimal.NewFromInt(1_000_000)

// StockChecker answers whether a product has sufficient stock to check out.
// Implementations: inventory.ParityChecker, inventory.AvailabilityChecker,
// inventory.MockChecker.
type StockChecker interface {
	// CheckStock returns nil when the product can be fulfilled at the given
	// quantity, or ErrInsufficientStock when it cannot.
	CheckStock(ctx context.Context, productID, quantity int) error
}

// ShoppingCart is the aggregate root for a single shopper's cart. Commands
// validate against current state (decide), and only validated commands raise
// events that mutate state (apply). A command either transitions the cart
// atomically via exactly one event or leaves it completely unchanged.
//
// The cart assumes a single logical writer; it takes no internal locks.
type ShoppingCart struct {
	aggregateRoot

	stock      StockChecker
	items      []*CartItem
	totalPrice decimal.Decimal
	checkedOut bool
}

// NewShoppingCart creates an empty cart with a fresh identity and version -1.
// The stock checker is consulted only at checkout.
func NewShoppingCart(stock StockChecker) *ShoppingCart {
	return &ShoppingCart{
		aggregateRoot: newAggregateRoot(),
		stock:         stock,
		totalPrice:    decimal.Zero,
	}
}

// LoadShoppingCart reconstructs a cart by replaying an ordered event history
// from the initial empty state. Replay does not re-validate, raises no new
// events, and advances the version once per event. The cart's identity is
// taken from the history.
func LoadShoppingCart(stock StockChecker, events []DomainEvent) *ShoppingCart {
	cart := NewShoppingCart(stock)
	if len(events) > 0 {
		cart.id = events[0].AggregateID()
	}
	for _, event := range events {
		cart.apply(event)
	}
	return cart
}

// AddItem adds a new product line to the cart.
func (c *ShoppingCart) AddItem(productID, quantity int, unitPrice decimal.Decimal) error {
	if c.checkedOut {
		return ErrAlreadyCheckedOut
	}
	if c.findItem(productID) != nil {
		return ErrDuplicateProduct
	}
	if len(c.items) >= maxCartItems {
		return ErrMaxItemsExceeded
	}
	if err := validateNewItem(productID, quantity, unitPrice); err != nil {
		return err
	}
	if c.TotalQuantity()+quantity > maxCartTotalQuantity {
		return ErrMaxTotalQuantityExceeded
	}
	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if c.totalPrice.Add(lineTotal).GreaterThan(maxCartTotalPrice) {
		return ErrMaxTotalPriceExceeded
	}

	c.raise(NewItemAdded(c.id, productID, quantity, unitPrice))
	return nil
}

// ChangeItemQuantity sets a new quantity for an existing product line.
func (c *ShoppingCart) ChangeItemQuantity(productID, quantity int) error {
	if c.checkedOut {
		return ErrAlreadyCheckedOut
	}
	item := c.findItem(productID)
	if item == nil {
		return ErrItemNotFound
	}
	if err := validateItemQuantity(quantity); err != nil {
		return err
	}
	// Limits are checked against the hypothetical post-command totals: the
	// current total minus this line's old contribution plus its new one.
	if c.TotalQuantity()-item.quantity+quantity > maxCartTotalQuantity {
		return ErrMaxTotalQuantityExceeded
	}
	newLineTotal := item.DiscountedUnitPrice().Mul(decimal.NewFromInt(int64(quantity)))
	if c.totalPrice.Sub(item.TotalPrice()).Add(newLineTotal).GreaterThan(maxCartTotalPrice) {
		return ErrMaxTotalPriceExceeded
	}

	c.raise(NewQuantityChanged(c.id, productID, quantity))
	return nil
}

// RemoveItem removes a product line from the cart.
func (c *ShoppingCart) RemoveItem(productID int) error {
	if c.checkedOut {
		return ErrAlreadyCheckedOut
	}
	if c.findItem(productID) == nil {
		return ErrItemNotFound
	}

	c.raise(NewItemRemoved(c.id, productID))
	return nil
}

// ApplyDiscount sets a discount percentage on an existing product line.
// Discounts are monotonic: a lower percentage than the current one is
// rejected.
func (c *ShoppingCart) ApplyDiscount(productID int, percentage decimal.Decimal) error {
	if c.checkedOut {
		return ErrAlreadyCheckedOut
	}
	item := c.findItem(productID)
	if item == nil {
		return ErrItemNotFound
	}
	if err := item.validateDiscount(percentage); err != nil {
		return err
	}

	c.raise(NewDiscountApplied(c.id, productID, percentage))
	return nil
}

// Checkout finalizes the cart after verifying stock for every line. Once
// checked out, the cart accepts no further commands.
func (c *ShoppingCart) Checkout(ctx context.Context) error {
	if c.checkedOut {
		return ErrAlreadyCheckedOut
	}
	if len(c.items) == 0 {
		return ErrEmptyCart
	}
	for _, item := range c.items {
		if err := c.stock.CheckStock(ctx, item.productID, item.quantity); err != nil {
			return err
		}
	}

	c.raise(NewCheckedOut(c.id, c.totalPrice, len(c.items)))
	return nil
}

// Clear removes all items from the cart at once.
func (c *ShoppingCart) Clear() error {
	if c.checkedOut {
		return ErrAlreadyCheckedOut
	}

	c.raise(NewCleared(c.id))
	return nil
}

// Items returns a snapshot of the cart's lines in insertion order.
func (c *ShoppingCart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	for i, item := range c.items {
		out[i] = *item
	}
	return out
}

// TotalPrice returns the sum of every line's discounted total. It is
// maintained incrementally on each apply and never drifts from the item sum.
func (c *ShoppingCart) TotalPrice() decimal.Decimal {
	return c.totalPrice
}

// TotalQuantity returns the sum of every line's quantity.
func (c *ShoppingCart) TotalQuantity() int {
	total := 0
	for _, item := range c.items {
		total += item.quantity
	}
	return total
}

// IsCheckedOut reports whether the cart has been finalized.
func (c *ShoppingCart) IsCheckedOut() bool {
	return c.checkedOut
}

// raise applies a freshly decided event to live state and records it in the
// pending buffer for a later drain.
func (c *ShoppingCart) raise(event DomainEvent) {
	c.apply(event)
	c.record(event)
}

// apply is the single event dispatch. It never validates and never fails:
// by the time an event exists, the transition it describes is a fact. The
// same dispatch serves live mutation and batch replay. An unmatched variant
// is an invariant violation, not a silent no-op.
func (c *ShoppingCart) apply(event DomainEvent) {
	switch e := event.(type) {
	case ItemAdded:
		item := newCartItem(e.ProductID, e.Quantity, e.UnitPrice)
		c.items = append(c.items, item)
		c.totalPrice = c.totalPrice.Add(item.TotalPrice())
	case QuantityChanged:
		item := c.mustFindItem(e.ProductID)
		c.totalPrice = c.totalPrice.Sub(item.TotalPrice())
		item.setQuantity(e.Quantity)
		c.totalPrice = c.totalPrice.Add(item.TotalPrice())
	case ItemRemoved:
		item := c.mustFindItem(e.ProductID)
		c.totalPrice = c.totalPrice.Sub(item.TotalPrice())
		c.deleteItem(e.ProductID)
	case DiscountApplied:
		item := c.mustFindItem(e.ProductID)
		c.totalPrice = c.totalPrice.Sub(item.TotalPrice())
		item.setDiscount(e.DiscountPercentage)
		c.totalPrice = c.totalPrice.Add(item.TotalPrice())
	case CheckedOut:
		c.checkedOut = true
	case Cleared:
		c.items = nil
		c.totalPrice = decimal.Zero
	default:
		panic(fmt.Sprintf("shopping cart: unhandled event type %T", event))
	}
	c.version++
}

func (c *ShoppingCart) findItem(productID int) *CartItem {
	for _, item := range c.items {
		if item.productID == productID {
			return item
		}
	}
	return nil
}

// mustFindItem resolves a product line during apply. Events reference lines
// that existed when the event was decided, so a miss means a corrupt or
// reordered history.
func (c *ShoppingCart) mustFindItem(productID int) *CartItem {
	item := c.findItem(productID)
	if item == nil {
		panic(fmt.Sprintf("shopping cart: event references unknown product %d", productID))
	}
	return item
}

func (c *ShoppingCart) deleteItem(productID int) {
	for i, item := range c.items {
		if item.productID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}
