// Package checkout converts a cart plus payment details into an immutable
// order record, simulating gateway latency and a deterministic outcome.
package checkout

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/danielterto2000/broadcastmotion-api/cart"
	"github.com/danielterto2000/broadcastmotion-api/models"
	"github.com/danielterto2000/broadcastmotion-api/session"
	"github.com/danielterto2000/broadcastmotion-api/store"
)

// SimulatedGatewayDelay models the payment gateway round trip.
const SimulatedGatewayDelay = 2000 * time.Millisecond

// ErrSubmissionInFlight is returned while a previous submission for this
// checkout is still resolving.
var ErrSubmissionInFlight = errors.New("checkout: submission already in flight")

type Processor struct {
	store    store.Store
	sessions *session.Manager
	cart     *cart.Engine

	// stateMu guards the shared storefront state. Taken briefly for the
	// identity guard, released across the simulated delay, and taken
	// again while the order is recorded.
	stateMu *sync.Mutex

	delay time.Duration
	now   func() time.Time

	flightMu sync.Mutex
	inFlight bool

	orders    []models.Order
	lastOrder *models.Order

	// OnOrder, when set, observes every appended order (live admin feed).
	OnOrder func(models.Order)
}

// NewProcessor restores the persisted order ledger.
func NewProcessor(st store.Store, sessions *session.Manager, engine *cart.Engine, stateMu *sync.Mutex) *Processor {
	p := &Processor{
		store:    st,
		sessions: sessions,
		cart:     engine,
		stateMu:  stateMu,
		delay:    SimulatedGatewayDelay,
		now:      time.Now,
	}
	st.Get(store.KeyOrders, &p.orders)
	return p
}

// SetDelay overrides the simulated gateway delay. Tests use zero.
func (p *Processor) SetDelay(d time.Duration) { p.delay = d }

// SetClock overrides the wall clock used for order ids and dates.
func (p *Processor) SetClock(now func() time.Time) { p.now = now }

// paymentFails is the deterministic gateway decision: a credit card whose
// number ends in "0000" is declined, everything else is approved.
func paymentFails(details models.PaymentDetails) bool {
	return details.Method == models.PaymentMethodCreditCard &&
		details.CardDetails != nil &&
		strings.HasSuffix(details.CardDetails.Number, "0000")
}

// identity is the submitting user, captured when the attempt starts so a
// login change during the gateway delay cannot leak into the order.
type identity struct {
	userID string
	name   string
	email  string
}

// PlaceOrder runs one checkout attempt: identity guard, simulated delay,
// gateway decision, ledger append. The caller must not hold the state
// mutex; it is taken for the guard, released across the delay, and taken
// again to record the order. The returned view is where the storefront
// navigates next; a nil order with ViewCart means the attempt was aborted
// before submission.
func (p *Processor) PlaceOrder(details models.PaymentDetails) (models.AppView, *models.Order, error) {
	p.stateMu.Lock()
	complete := p.sessions.IdentityComplete()
	who := identity{
		userID: p.sessions.UserID,
		name:   p.sessions.UserName,
		email:  p.sessions.UserEmail,
	}
	p.stateMu.Unlock()
	if !complete {
		return models.ViewCart, nil, nil
	}

	p.flightMu.Lock()
	if p.inFlight {
		p.flightMu.Unlock()
		return "", nil, ErrSubmissionInFlight
	}
	p.inFlight = true
	p.flightMu.Unlock()
	defer func() {
		p.flightMu.Lock()
		p.inFlight = false
		p.flightMu.Unlock()
	}()

	time.Sleep(p.delay)

	p.stateMu.Lock()
	defer p.stateMu.Unlock()

	totals := p.cart.Totals()
	now := p.now()
	millis := now.UnixMilli()

	buyer := models.BuyerDetails{
		Name:  details.BuyerInfo.Name,
		Email: details.BuyerInfo.Email,
		CPF:   details.BuyerInfo.CPF,
	}
	if buyer.Name == "" {
		buyer.Name = who.name
	}
	if buyer.Email == "" {
		buyer.Email = who.email
	}

	order := models.Order{
		UserID:          who.userID,
		Items:           append([]models.CartItem(nil), p.cart.Items()...),
		Subtotal:        totals.Subtotal,
		DiscountApplied: totals.Discount,
		Total:           totals.Total,
		OrderDate:       now,
		PaymentMethod:   details.Method,
		BuyerDetails:    buyer,
	}
	if c := p.cart.AppliedCoupon(); c != nil {
		order.CouponCode = c.Code
	}

	if paymentFails(details) {
		order.ID = fmt.Sprintf("FAIL-%d", millis)
		order.Status = models.OrderStatusFailed
		// Cart stays intact so the user can retry
		p.append(order)
		return models.ViewPaymentError, &p.orders[len(p.orders)-1], nil
	}

	order.ID = fmt.Sprintf("ORD-%d", millis)
	order.Status = models.OrderStatusCompleted
	for _, item := range order.Items {
		order.DownloadLinks = append(order.DownloadLinks, models.DownloadLink{
			TemplateID: item.ID,
			Name:       item.Name,
			Link:       fmt.Sprintf("/download/simulated/%s/%d", item.ID, millis),
		})
	}
	p.append(order)
	p.cart.Clear()
	return models.ViewOrderSuccess, &p.orders[len(p.orders)-1], nil
}

// append records the attempt on the ledger. Orders are never mutated or
// removed afterwards.
func (p *Processor) append(order models.Order) {
	p.orders = append(p.orders, order)
	p.lastOrder = &p.orders[len(p.orders)-1]
	p.store.Put(store.KeyOrders, p.orders)
	if p.OnOrder != nil {
		p.OnOrder(order)
	}
}

// Orders returns the full ledger, oldest first.
func (p *Processor) Orders() []models.Order { return p.orders }

// UserOrders returns the ledger entries belonging to one user.
func (p *Processor) UserOrders(userID string) []models.Order {
	var out []models.Order
	for _, o := range p.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// LastOrder is the most recent attempt, shown by the order-success and
// payment-error views.
func (p *Processor) LastOrder() *models.Order { return p.lastOrder }
