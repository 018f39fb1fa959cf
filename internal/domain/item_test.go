package domain_test

import (
	"testing"

	"github.com/dukerupert/vagn/internal/domain"
	"github.com/dukerupert/vagn/internal/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func Test_AddItem_ItemCreateRules(t *testing.T) {
	tests := []struct {
		name         string
		productID    int
		quantity     int
		unitPrice    string
		expectedCode string
		explanation  string
	}{
		{
			name:         "zero product id",
			productID:    0,
			quantity:     1,
			unitPrice:    "1.00",
			expectedCode: domain.EINVALIDPRODUCTID,
			explanation:  "product IDs start at 1",
		},
		{
			name:         "negative product id",
			productID:    -5,
			quantity:     1,
			unitPrice:    "1.00",
			expectedCode: domain.EINVALIDPRODUCTID,
			explanation:  "negative IDs are never valid",
		},
		{
			name:         "zero quantity",
			productID:    101,
			quantity:     0,
			unitPrice:    "1.00",
			expectedCode: domain.EINVALIDQUANTITY,
			explanation:  "a line needs at least one unit",
		},
		{
			name:         "quantity above per-item cap",
			productID:    101,
			quantity:     101,
			unitPrice:    "1.00",
			expectedCode: domain.EMAXITEMQUANTITY,
			explanation:  "per-item cap is 100 units",
		},
		{
			name:         "price below minimum",
			productID:    101,
			quantity:     1,
			unitPrice:    "0.001",
			expectedCode: domain.EINVALIDUNITPRICE,
			explanation:  "0.001 < 0.01 fails the range check before precision",
		},
		{
			name:         "zero price",
			productID:    101,
			quantity:     1,
			unitPrice:    "0",
			expectedCode: domain.EINVALIDUNITPRICE,
			explanation:  "minimum unit price is 0.01",
		},
		{
			name:         "price above maximum",
			productID:    101,
			quantity:     1,
			unitPrice:    "1000000.00",
			expectedCode: domain.EMAXUNITPRICE,
			explanation:  "maximum unit price is 999999.99",
		},
		{
			name:         "three fractional digits",
			productID:    104,
			quantity:     1,
			unitPrice:    "12.345",
			expectedCode: domain.EUNITPRICEPRECISION,
			explanation:  "currency values carry at most 2 fractional digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewShoppingCart(inventory.NewMockChecker())

			err := cart.AddItem(tt.productID, tt.quantity, price(t, tt.unitPrice))

			require.Error(t, err, tt.explanation)
			assert.Equal(t, tt.expectedCode, domain.ErrorCode(err), tt.explanation)
			assert.Empty(t, cart.Items(), "rejected command must not create an item")
			assert.Equal(t, -1, cart.Version(), "rejected command must not advance the version")
		})
	}
}

func Test_CartItem_DerivedPrices(t *testing.T) {
	cart := domain.NewShoppingCart(inventory.NewMockChecker())
	require.NoError(t, cart.AddItem(101, 2, price(t, "99.99")))

	items := cart.Items()
	require.Len(t, items, 1)
	item := items[0]

	assert.Equal(t, 101, item.ProductID())
	assert.Equal(t, 2, item.Quantity())
	assert.True(t, item.UnitPrice().Equal(price(t, "99.99")))
	assert.True(t, item.DiscountedUnitPrice().Equal(price(t, "99.99")), "no discount yet")
	assert.True(t, item.TotalPrice().Equal(price(t, "199.98")), "2 * 99.99")
	assert.True(t, item.OriginalTotalPrice().Equal(price(t, "199.98")))
	assert.NotEqual(t, item.ID().String(), "00000000-0000-0000-0000-000000000000", "item identity is generated")
}

func Test_CartItem_DiscountedPrices(t *testing.T) {
	cart := domain.NewShoppingCart(inventory.NewMockChecker())
	require.NoError(t, cart.AddItem(101, 2, price(t, "100.00")))
	require.NoError(t, cart.ApplyDiscount(101, price(t, "20.00")))

	item := cart.Items()[0]
	assert.True(t, item.DiscountedUnitPrice().Equal(price(t, "80.00")), "100.00 * (1 - 0.20)")
	assert.True(t, item.TotalPrice().Equal(price(t, "160.00")), "80.00 * 2")
	assert.True(t, item.OriginalTotalPrice().Equal(price(t, "200.00")), "undiscounted total is preserved")
	assert.True(t, cart.TotalPrice().Equal(price(t, "160.00")))
}

func Test_ApplyDiscount_Rules(t *testing.T) {
	tests := []struct {
		name         string
		percentage   string
		expectedCode string
		explanation  string
	}{
		{
			name:         "negative percentage",
			percentage:   "-1",
			expectedCode: domain.EINVALIDDISCOUNT,
			explanation:  "discounts are 0 to 100",
		},
		{
			name:         "above one hundred",
			percentage:   "100.01",
			expectedCode: domain.EINVALIDDISCOUNT,
			explanation:  "range is checked before precision",
		},
		{
			name:         "three fractional digits",
			percentage:   "5.125",
			expectedCode: domain.EDISCOUNTPRECISION,
			explanation:  "discounts carry at most 2 fractional digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewShoppingCart(inventory.NewMockChecker())
			require.NoError(t, cart.AddItem(101, 1, price(t, "10.00")))

			err := cart.ApplyDiscount(101, price(t, tt.percentage))

			require.Error(t, err, tt.explanation)
			assert.Equal(t, tt.expectedCode, domain.ErrorCode(err), tt.explanation)
			assert.True(t, cart.Items()[0].DiscountPercentage().IsZero(), "rejected discount must not stick")
		})
	}
}

func Test_ApplyDiscount_Monotonicity(t *testing.T) {
	cart := domain.NewShoppingCart(inventory.NewMockChecker())
	require.NoError(t, cart.AddItem(101, 1, price(t, "10.00")))
	require.NoError(t, cart.ApplyDiscount(101, price(t, "20.00")))

	err := cart.ApplyDiscount(101, price(t, "10.00"))
	require.Error(t, err)
	assert.Equal(t, domain.EDISCOUNTREDUCED, domain.ErrorCode(err))
	assert.True(t, cart.Items()[0].DiscountPercentage().Equal(price(t, "20.00")), "discount stays at 20%")

	// Re-applying the same percentage is allowed; raising it is allowed.
	assert.NoError(t, cart.ApplyDiscount(101, price(t, "20.00")))
	assert.NoError(t, cart.ApplyDiscount(101, price(t, "25.50")))
	assert.True(t, cart.Items()[0].DiscountPercentage().Equal(price(t, "25.50")))
}

func Test_CartItem_UpdateUnitPrice(t *testing.T) {
	cart := domain.NewShoppingCart(inventory.NewMockChecker())
	require.NoError(t, cart.AddItem(101, 1, price(t, "10.00")))

	item := cart.Items()[0]
	require.NoError(t, item.UpdateUnitPrice(price(t, "12.50")))
	assert.True(t, item.UnitPrice().Equal(price(t, "12.50")))

	err := item.UpdateUnitPrice(price(t, "12.555"))
	require.Error(t, err)
	assert.Equal(t, domain.EUNITPRICEPRECISION, domain.ErrorCode(err))
	assert.True(t, item.UnitPrice().Equal(price(t, "12.50")), "rejected update must not stick")

	// Items() returns snapshots: updating the copy leaves the cart alone.
	assert.True(t, cart.Items()[0].UnitPrice().Equal(price(t, "10.00")))
}
