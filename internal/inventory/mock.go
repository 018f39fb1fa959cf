package inventory

import (
	"context"
)

// MockChecker is a test implementation of domain.StockChecker.
type MockChecker struct {
	CheckStockFunc func(ctx context.Context, productID, quantity int) error

	// Calls records every (productID, quantity) pair checked, in order.
	Calls [][2]int
}

// NewMockChecker creates a mock that passes every check by default.
func NewMockChecker() *MockChecker {
	return &MockChecker{}
}

// CheckStock delegates to the configured function, or passes when none is set.
func (m *MockChecker) CheckStock(ctx context.Context, productID, quantity int) error {
	m.Calls = append(m.Calls, [2]int{productID, quantity})
	if m.CheckStockFunc != nil {
		return m.CheckStockFunc(ctx, productID, quantity)
	}
	return nil
}
