// Package cart maintains the shopping cart and computes totals under an
// optional single active coupon.
package cart

import (
	"fmt"
	"strings"

	"github.com/danielterto2000/broadcastmotion-api/models"
	"github.com/danielterto2000/broadcastmotion-api/store"
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type Engine struct {
	store   store.Store
	coupons []models.Coupon

	items   []models.CartItem
	applied *models.Coupon
}

// NewEngine restores the persisted cart lines. The applied coupon is
// session state and starts empty.
func NewEngine(st store.Store, coupons []models.Coupon) *Engine {
	e := &Engine{store: st, coupons: coupons}
	st.Get(store.KeyCart, &e.items)
	return e
}

func (e *Engine) persist() {
	e.store.Put(store.KeyCart, e.items)
}

func (e *Engine) Items() []models.CartItem { return e.items }
func (e *Engine) Len() int                 { return len(e.items) }

func (e *Engine) AppliedCoupon() *models.Coupon { return e.applied }

// Add appends a cart line with quantity 1. An item already in the cart is
// rejected without any state change; the returned notice is user-visible
// either way.
func (e *Engine) Add(item models.CartItem) (bool, string) {
	for _, existing := range e.items {
		if existing.ID == item.ID {
			return false, fmt.Sprintf("%s já está no carrinho.", item.Name)
		}
	}
	item.Quantity = 1
	e.items = append(e.items, item)
	e.persist()
	return true, ""
}

// Remove drops the line with the given id. If the applied coupon's minimum
// purchase is no longer met by the remaining lines, the coupon is
// deactivated and the returned notice says so.
func (e *Engine) Remove(id string) string {
	kept := e.items[:0]
	for _, item := range e.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	e.items = kept
	e.persist()

	if e.applied != nil && e.applied.MinPurchase > 0 && e.subtotal() < e.applied.MinPurchase {
		code := e.applied.Code
		e.applied = nil
		return fmt.Sprintf("Cupom %s removido pois o valor mínimo da compra não foi atingido.", code)
	}
	return ""
}

func (e *Engine) subtotal() float64 {
	var sum float64
	for _, item := range e.items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Totals derives subtotal, discount and total. A coupon whose minimum is
// unmet contributes no discount but stays applied until the next
// apply/remove event touches it. The discount never exceeds the subtotal.
func (e *Engine) Totals() Totals {
	subtotal := e.subtotal()
	var discount float64
	if e.applied != nil && !(e.applied.MinPurchase > 0 && subtotal < e.applied.MinPurchase) {
		if e.applied.DiscountType == models.DiscountTypePercentage {
			discount = subtotal * e.applied.Value / 100
		} else {
			discount = e.applied.Value
		}
		if discount > subtotal {
			discount = subtotal
		}
	}
	return Totals{Subtotal: subtotal, Discount: discount, Total: subtotal - discount}
}

// ApplyCoupon looks the code up case-insensitively among active coupons.
// Failure clears any currently applied coupon; at most one coupon is
// active at a time. The returned message is user-visible in all branches.
func (e *Engine) ApplyCoupon(code string) (bool, string) {
	var coupon *models.Coupon
	for i := range e.coupons {
		if strings.EqualFold(e.coupons[i].Code, code) && e.coupons[i].IsActive {
			coupon = &e.coupons[i]
			break
		}
	}
	subtotal := e.subtotal()

	if coupon == nil {
		e.applied = nil
		return false, "Cupom inválido ou inativo."
	}
	if coupon.MinPurchase > 0 && subtotal < coupon.MinPurchase {
		e.applied = nil
		return false, fmt.Sprintf("Este cupom requer uma compra mínima de R$%.2f. Subtotal atual: R$%.2f", coupon.MinPurchase, subtotal)
	}
	e.applied = coupon
	return true, fmt.Sprintf("Cupom %q aplicado! %s", coupon.Code, coupon.Description)
}

// ClearCoupon drops the applied coupon without touching the cart.
func (e *Engine) ClearCoupon() {
	e.applied = nil
}

// Clear empties the cart and drops the applied coupon. Used after a
// successful checkout.
func (e *Engine) Clear() {
	e.items = nil
	e.applied = nil
	e.persist()
}
