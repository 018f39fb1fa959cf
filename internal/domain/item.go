package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Per-item business limits.
const (
	minItemQuantity = 1
	maxItemQuantity = 100
)

var (
	minUnitPrice          = decimal.RequireFromString("0.01")
	maxUnitPrice          = decimal.RequireFromString("999999.99")
	maxDiscountPercentage = decimal.NewFromInt(100)
	oneHundred            = decimal.NewFromInt(100)
)

// hasCurrencyPrecision reports whether d carries at most 2 fractional
// digits: rounding to 2 digits must leave the value unchanged.
func hasCurrencyPrecision(d decimal.Decimal) bool {
	return d.Round(2).Equal(d)
}

// CartItem is a single product line owned by a ShoppingCart. Its identity is
// an internally generated ID, distinct from the ProductID business key.
// Items are created only through the cart's AddItem pathway and mutated only
// through the cart's apply dispatch.
type CartItem struct {
	id                 uuid.UUID
	productID          int
	quantity           int
	unitPrice          decimal.Decimal
	discountPercentage decimal.Decimal
}

// newCartItem is the item's create-apply: unconditional construction after
// validateNewItem has passed.
func newCartItem(productID, quantity int, unitPrice decimal.Decimal) *CartItem {
	return &CartItem{
		id:        uuid.New(),
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}
}

// validateNewItem is the item's create-decide: product ID, quantity range,
// unit price range and precision, in that order.
func validateNewItem(productID, quantity int, unitPrice decimal.Decimal) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}
	if err := validateItemQuantity(quantity); err != nil {
		return err
	}
	return validateUnitPrice(unitPrice)
}

func validateItemQuantity(quantity int) error {
	if quantity < minItemQuantity {
		return ErrInvalidQuantity
	}
	if quantity > maxItemQuantity {
		return ErrMaxItemQuantityExceeded
	}
	return nil
}

func validateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.LessThan(minUnitPrice) {
		return ErrInvalidUnitPrice
	}
	if unitPrice.GreaterThan(maxUnitPrice) {
		return ErrMaxUnitPriceExceeded
	}
	if !hasCurrencyPrecision(unitPrice) {
		return ErrInvalidUnitPricePrecision
	}
	return nil
}

// validateDiscount checks range, precision, and monotonicity: a discount,
// once raised, can never be lowered.
func (i *CartItem) validateDiscount(percentage decimal.Decimal) error {
	if percentage.IsNegative() || percentage.GreaterThan(maxDiscountPercentage) {
		return ErrInvalidDiscountPercentage
	}
	if !hasCurrencyPrecision(percentage) {
		return ErrInvalidDiscountPrecision
	}
	if percentage.LessThan(i.discountPercentage) {
		return ErrDiscountCannotBeReduced
	}
	return nil
}

func (i *CartItem) setQuantity(quantity int) {
	i.quantity = quantity
}

func (i *CartItem) setDiscount(percentage decimal.Decimal) {
	i.discountPercentage = percentage
}

// UpdateUnitPrice revalidates and sets the unit price. It is part of the
// item's contract for pricing flows, not one of the cart's primary commands.
func (i *CartItem) UpdateUnitPrice(unitPrice decimal.Decimal) error {
	if err := validateUnitPrice(unitPrice); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

// ID returns the item's internal identity.
func (i *CartItem) ID() uuid.UUID {
	return i.id
}

// ProductID returns the business key, unique within a cart.
func (i *CartItem) ProductID() int {
	return i.productID
}

// Quantity returns the number of units on this line.
func (i *CartItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the undiscounted price per unit.
func (i *CartItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// DiscountPercentage returns the current discount, 0 to 100.
func (i *CartItem) DiscountPercentage() decimal.Decimal {
	return i.discountPercentage
}

// DiscountedUnitPrice returns the per-unit price after discount.
func (i *CartItem) DiscountedUnitPrice() decimal.Decimal {
	return i.unitPrice.Mul(oneHundred.Sub(i.discountPercentage)).Div(oneHundred)
}

// TotalPrice returns the discounted line total.
func (i *CartItem) TotalPrice() decimal.Decimal {
	return i.DiscountedUnitPrice().Mul(decimal.NewFromInt(int64(i.quantity)))
}

// OriginalTotalPrice returns the line total before discount.
func (i *CartItem) OriginalTotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
