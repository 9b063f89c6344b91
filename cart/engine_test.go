package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielterto2000/broadcastmotion-api/models"
	"github.com/danielterto2000/broadcastmotion-api/store"
)

var testCoupons = []models.Coupon{
	{Code: "SAVE10", DiscountType: models.DiscountTypePercentage, Value: 10, Description: "10% off", IsActive: true},
	{Code: "FLAT50", DiscountType: models.DiscountTypeFixed, Value: 50, Description: "R$50 off", MinPurchase: 200, IsActive: true},
	{Code: "DEAD", DiscountType: models.DiscountTypeFixed, Value: 5, IsActive: false},
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewEngine(st, testCoupons)
}

func item(id string, price float64) models.CartItem {
	return models.CartItem{ID: id, Name: "Item " + id, Price: price, Quantity: 1}
}

func TestAddRejectsDuplicate(t *testing.T) {
	e := newTestEngine(t)

	ok, _ := e.Add(item("t1", 100))
	assert.True(t, ok)

	ok, notice := e.Add(item("t1", 100))
	assert.False(t, ok)
	assert.Equal(t, "Item t1 já está no carrinho.", notice)
	assert.Len(t, e.Items(), 1)
}

func TestTotalsPercentageDiscount(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 100))

	ok, _ := e.ApplyCoupon("SAVE10")
	require.True(t, ok)

	totals := e.Totals()
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 10.0, totals.Discount)
	assert.Equal(t, 90.0, totals.Total)
}

func TestTotalsDiscountClampedToSubtotal(t *testing.T) {
	e := NewEngine(mustStore(t), []models.Coupon{
		{Code: "BIG", DiscountType: models.DiscountTypeFixed, Value: 500, IsActive: true},
	})
	e.Add(item("t1", 30))

	ok, _ := e.ApplyCoupon("BIG")
	require.True(t, ok)

	totals := e.Totals()
	assert.Equal(t, 30.0, totals.Discount)
	assert.Equal(t, 0.0, totals.Total)
}

func TestApplyCouponCaseInsensitive(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 100))

	ok, msg := e.ApplyCoupon("save10")
	assert.True(t, ok)
	assert.Equal(t, `Cupom "SAVE10" aplicado! 10% off`, msg)
}

func TestApplyCouponInvalidOrInactive(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 100))

	ok, msg := e.ApplyCoupon("NOPE")
	assert.False(t, ok)
	assert.Equal(t, "Cupom inválido ou inativo.", msg)

	// Inactive codes behave like unknown ones
	ok, msg = e.ApplyCoupon("DEAD")
	assert.False(t, ok)
	assert.Equal(t, "Cupom inválido ou inativo.", msg)
}

func TestApplyCouponFailureClearsPrevious(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 100))

	ok, _ := e.ApplyCoupon("SAVE10")
	require.True(t, ok)

	ok, _ = e.ApplyCoupon("NOPE")
	assert.False(t, ok)
	assert.Nil(t, e.AppliedCoupon())
	assert.Equal(t, 0.0, e.Totals().Discount)
}

func TestApplyCouponBelowMinimum(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 100))

	ok, msg := e.ApplyCoupon("FLAT50")
	assert.False(t, ok)
	assert.Equal(t, "Este cupom requer uma compra mínima de R$200.00. Subtotal atual: R$100.00", msg)
}

func TestRemoveDeactivatesCouponBelowMinimum(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 150))
	e.Add(item("t2", 100))

	ok, _ := e.ApplyCoupon("FLAT50")
	require.True(t, ok)

	notice := e.Remove("t2")
	assert.Equal(t, "Cupom FLAT50 removido pois o valor mínimo da compra não foi atingido.", notice)
	assert.Nil(t, e.AppliedCoupon())

	totals := e.Totals()
	assert.Equal(t, 150.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Discount)
}

func TestRemoveKeepsCouponWhileMinimumMet(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 300))
	e.Add(item("t2", 100))

	ok, _ := e.ApplyCoupon("FLAT50")
	require.True(t, ok)

	notice := e.Remove("t2")
	assert.Empty(t, notice)
	require.NotNil(t, e.AppliedCoupon())
	assert.Equal(t, 50.0, e.Totals().Discount)
}

func TestCartPersistsAcrossEngines(t *testing.T) {
	st := mustStore(t)

	e := NewEngine(st, testCoupons)
	e.Add(item("t1", 100))
	e.ApplyCoupon("SAVE10")

	restored := NewEngine(st, testCoupons)
	assert.Len(t, restored.Items(), 1)
	// The applied coupon is session state and does not survive
	assert.Nil(t, restored.AppliedCoupon())
}

func TestClearEmptiesCartAndCoupon(t *testing.T) {
	e := newTestEngine(t)
	e.Add(item("t1", 100))
	e.ApplyCoupon("SAVE10")

	e.Clear()
	assert.Empty(t, e.Items())
	assert.Nil(t, e.AppliedCoupon())
	assert.Equal(t, 0.0, e.Totals().Subtotal)
}

func mustStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return st
}
