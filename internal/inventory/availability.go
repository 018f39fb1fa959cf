package inventory

import (
	"context"
	"sync"

	"github.com/dukerupert/vagn/internal/domain"
)

// AvailabilityChecker verifies quantities against a stock table. Products
// absent from the table are treated as unlimited, so a partially seeded
// table only constrains the products it knows about.
type AvailabilityChecker struct {
	mu     sync.RWMutex
	levels map[int]int
}

// NewAvailabilityChecker creates a checker with an empty stock table.
func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{
		levels: make(map[int]int),
	}
}

// SetStock sets the available quantity for a product.
func (c *AvailabilityChecker) SetStock(productID, available int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels[productID] = available
}

// CheckStock fails when the product has a known stock level below the
// requested quantity.
func (c *AvailabilityChecker) CheckStock(_ context.Context, productID, quantity int) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	available, known := c.levels[productID]
	if known && quantity > available {
		return domain.ErrInsufficientStock
	}
	return nil
}
