package inventory

import (
	"context"

	"github.com/dukerupert/vagn/internal/domain"
)

// ParityChecker is the demo stand-in for a real inventory lookup: odd
// product IDs are "low stock" items that cannot be fulfilled above the
// bulk threshold. It exists so checkout has a stock gate to exercise
// without a live inventory system behind it.
type ParityChecker struct {
	bulkThreshold int
}

// NewParityChecker creates the placeholder stock checker with the default
// bulk threshold of 50 units.
func NewParityChecker() *ParityChecker {
	return &ParityChecker{bulkThreshold: 50}
}

// CheckStock fails when the product ID is odd and the quantity exceeds the
// bulk threshold.
func (c *ParityChecker) CheckStock(_ context.Context, productID, quantity int) error {
	if productID%2 != 0 && quantity > c.bulkThreshold {
		return domain.ErrInsufficientStock
	}
	return nil
}
