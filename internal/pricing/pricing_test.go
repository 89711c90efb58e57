package pricing

import (
	"testing"

	"golang-coffee-backend/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceCart() *cart.Cart {
	c := cart.New()
	c.Restore([]cart.LineItem{
		{ProductID: 1, Name: "Dalgona Crunch", UnitPrice: 130, Quantity: 2},
		{ProductID: 2, Name: "Hallyu Cold Brew", UnitPrice: 100, Quantity: 1},
	})
	return c
}

func TestSubtotalAndDeliveryFee(t *testing.T) {
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(referenceCart(), ModeDelivery, NoDiscount(), DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, 360.00, breakdown.Subtotal)
	assert.Equal(t, 50.00, breakdown.FulfillmentFee)
	assert.Equal(t, 0.00, breakdown.DiscountAmount)
	assert.Equal(t, 410.00, breakdown.Total)
}

func TestPickupHasNoFee(t *testing.T) {
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(referenceCart(), ModePickup, NoDiscount(), DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, 0.00, breakdown.FulfillmentFee)
	assert.Equal(t, 360.00, breakdown.Total)
}

func TestFixedVoucher(t *testing.T) {
	c := cart.New()
	c.Restore([]cart.LineItem{{ProductID: 1, Name: "Dalgona Crunch", UnitPrice: 100, Quantity: 5}})
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(c, ModePickup, Voucher("KOPI100"), DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 500.00, breakdown.Subtotal)
	assert.Equal(t, 100.00, breakdown.DiscountAmount)
	assert.Equal(t, "Voucher (KOPI100)", breakdown.DiscountLabel)
	assert.Equal(t, 400.00, breakdown.Total)

	breakdown, err = engine.ComputeBreakdown(c, ModeDelivery, Voucher("KOPI100"), DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 450.00, breakdown.Total)
}

func TestPercentVoucher(t *testing.T) {
	c := cart.New()
	c.Restore([]cart.LineItem{{ProductID: 2, Name: "Hallyu Cold Brew", UnitPrice: 150, Quantity: 2}})
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(c, ModePickup, Voucher("KOPI20"), DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, 300.00, breakdown.Subtotal)
	assert.Equal(t, 60.00, breakdown.DiscountAmount)
	assert.Equal(t, 240.00, breakdown.Total)
}

func TestVoucherCodeIsNormalized(t *testing.T) {
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(referenceCart(), ModePickup, Voucher("  kopi100 "), DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 100.00, breakdown.DiscountAmount)
}

func TestUnknownVoucher(t *testing.T) {
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(referenceCart(), ModePickup, Voucher("XYZ"), DefaultCatalog())
	assert.ErrorIs(t, err, ErrInvalidVoucher)
	assert.Nil(t, breakdown)
}

func TestSeniorCitizenDiscount(t *testing.T) {
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(referenceCart(), ModeDelivery, SeniorCitizen(), DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, 72.00, breakdown.DiscountAmount) // 20% of 360
	assert.Equal(t, "Senior Citizen (20%)", breakdown.DiscountLabel)
	assert.Equal(t, 338.00, breakdown.Total)
}

func TestDiscountClampedToSubtotal(t *testing.T) {
	c := cart.New()
	c.Restore([]cart.LineItem{{ProductID: 8, Name: "Soju Shot Espresso", UnitPrice: 90, Quantity: 1}})
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(c, ModeDelivery, Voucher("KOPI100"), DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, 90.00, breakdown.DiscountAmount)
	assert.Equal(t, 50.00, breakdown.Total) // fee only, never negative
}

func TestDiscountBoundsProperty(t *testing.T) {
	engine := NewEngine(DefaultDeliveryFee)
	catalog := DefaultCatalog()
	c := referenceCart()

	selections := []DiscountSelection{
		NoDiscount(),
		SeniorCitizen(),
		Voucher("KOPI100"),
		Voucher("FREEDEL"),
		Voucher("KOPI20"),
	}
	for _, selection := range selections {
		breakdown, err := engine.ComputeBreakdown(c, ModeDelivery, selection, catalog)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, breakdown.DiscountAmount, 0.00)
		assert.LessOrEqual(t, breakdown.DiscountAmount, breakdown.Subtotal)
		assert.GreaterOrEqual(t, breakdown.Total, 0.00)
	}
}

func TestEmptyCartBreakdown(t *testing.T) {
	engine := NewEngine(DefaultDeliveryFee)

	breakdown, err := engine.ComputeBreakdown(cart.New(), ModeDelivery, NoDiscount(), DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0.00, breakdown.Subtotal)
	assert.Equal(t, 50.00, breakdown.Total)

	breakdown, err = engine.ComputeBreakdown(cart.New(), ModePickup, NoDiscount(), DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0.00, breakdown.Total)
}

func TestSubtotalHoldsAfterMutations(t *testing.T) {
	c := cart.New()
	engine := NewEngine(DefaultDeliveryFee)

	c.Add(1, "Dalgona Crunch", 130)
	c.Add(1, "Dalgona Crunch", 130)
	c.Add(2, "Hallyu Cold Brew", 100)
	c.Add(3, "Seoul Sweet Vanilla", 120)
	c.UpdateQuantity(3, -1) // removes product 3
	c.Remove(99)            // no-op

	breakdown, err := engine.ComputeBreakdown(c, ModePickup, NoDiscount(), DefaultCatalog())
	require.NoError(t, err)
	assert.Equal(t, 360.00, breakdown.Subtotal)
}

func TestCatalogLookupCaseInsensitive(t *testing.T) {
	catalog := DefaultCatalog()

	rule, ok := catalog.Lookup("freedel")
	require.True(t, ok)
	assert.Equal(t, RuleFixedAmount, rule.Type)
	assert.Equal(t, 50.00, rule.Value)

	_, ok = catalog.Lookup("NOPE")
	assert.False(t, ok)
}
