package checkout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielterto2000/broadcastmotion-api/cart"
	"github.com/danielterto2000/broadcastmotion-api/models"
	"github.com/danielterto2000/broadcastmotion-api/session"
	"github.com/danielterto2000/broadcastmotion-api/store"
)

type fixture struct {
	store    store.Store
	sessions *session.Manager
	cart     *cart.Engine
	proc     *Processor
	mu       sync.Mutex
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	f := &fixture{store: st}
	f.sessions = session.NewManager(st)
	f.cart = cart.NewEngine(st, []models.Coupon{
		{Code: "SAVE10", DiscountType: models.DiscountTypePercentage, Value: 10, Description: "10% off", IsActive: true},
	})
	f.proc = NewProcessor(st, f.sessions, f.cart, &f.mu)
	f.proc.SetDelay(0)
	f.proc.SetClock(func() time.Time { return time.UnixMilli(1700000000000) })
	return f
}

func (f *fixture) login() {
	f.sessions.Login(session.LoginParams{Email: "buyer@x.com", Name: "Buyer", UserID: "user_1"})
}

func cardPayment(number string) models.PaymentDetails {
	return models.PaymentDetails{
		Method:      models.PaymentMethodCreditCard,
		BuyerInfo:   models.BuyerDetails{CPF: "000.000.000-00"},
		CardDetails: &models.CardDetails{Number: number},
	}
}

func TestPlaceOrderRequiresCompleteIdentity(t *testing.T) {
	f := newFixture(t)
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})

	view, order, err := f.proc.PlaceOrder(cardPayment("4111111111111111"))

	require.NoError(t, err)
	assert.Equal(t, models.ViewCart, view)
	assert.Nil(t, order)
	assert.Empty(t, f.proc.Orders())
}

func TestPlaceOrderSuccess(t *testing.T) {
	f := newFixture(t)
	f.login()
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})
	f.cart.Add(models.CartItem{ID: "t2", Name: "T2", Price: 50})
	f.cart.ApplyCoupon("SAVE10")

	view, order, err := f.proc.PlaceOrder(cardPayment("4111111111111111"))

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.ViewOrderSuccess, view)
	assert.Equal(t, "ORD-1700000000000", order.ID)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, "user_1", order.UserID)
	assert.Equal(t, 150.0, order.Subtotal)
	assert.Equal(t, 15.0, order.DiscountApplied)
	assert.Equal(t, "SAVE10", order.CouponCode)
	assert.Equal(t, 135.0, order.Total)

	// Buyer identity defaults to the session
	assert.Equal(t, "Buyer", order.BuyerDetails.Name)
	assert.Equal(t, "buyer@x.com", order.BuyerDetails.Email)
	assert.Equal(t, "000.000.000-00", order.BuyerDetails.CPF)

	// One download link per item
	require.Len(t, order.DownloadLinks, 2)
	assert.Equal(t, "/download/simulated/t1/1700000000000", order.DownloadLinks[0].Link)

	// Cart and coupon cleared
	assert.Empty(t, f.cart.Items())
	assert.Nil(t, f.cart.AppliedCoupon())
}

func TestPlaceOrderDeclinedCard(t *testing.T) {
	f := newFixture(t)
	f.login()
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})

	view, order, err := f.proc.PlaceOrder(cardPayment("4111111111110000"))

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.ViewPaymentError, view)
	assert.Equal(t, "FAIL-1700000000000", order.ID)
	assert.Equal(t, models.OrderStatusFailed, order.Status)
	assert.Empty(t, order.DownloadLinks)

	// Failed attempts still land on the ledger, and the cart survives
	assert.Len(t, f.proc.Orders(), 1)
	assert.Len(t, f.cart.Items(), 1)
}

func TestZeroSuffixOnlyDeclinesCreditCard(t *testing.T) {
	f := newFixture(t)
	f.login()
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})

	view, order, err := f.proc.PlaceOrder(models.PaymentDetails{
		Method:    models.PaymentMethodPix,
		BuyerInfo: models.BuyerDetails{},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, models.ViewOrderSuccess, view)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestPlaceOrderSingleFlight(t *testing.T) {
	f := newFixture(t)
	f.login()
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})
	f.proc.SetDelay(100 * time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, _, err := f.proc.PlaceOrder(cardPayment("4111111111111111"))
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)

	_, _, err := f.proc.PlaceOrder(cardPayment("4111111111111111"))
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	require.NoError(t, <-done)
	assert.Len(t, f.proc.Orders(), 1)
}

func TestPlaceOrderSnapshotsIdentityBeforeDelay(t *testing.T) {
	f := newFixture(t)
	f.login()
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})
	f.proc.SetDelay(50 * time.Millisecond)

	done := make(chan *models.Order, 1)
	go func() {
		_, order, _ := f.proc.PlaceOrder(cardPayment("4111111111111111"))
		done <- order
	}()
	time.Sleep(10 * time.Millisecond)

	// A different account logs in, under the state mutex, while the
	// gateway is still resolving
	f.mu.Lock()
	f.sessions.Login(session.LoginParams{Email: "other@x.com", Name: "Other", UserID: "user_2"})
	f.mu.Unlock()

	order := <-done
	require.NotNil(t, order)
	assert.Equal(t, "user_1", order.UserID)
	assert.Equal(t, "Buyer", order.BuyerDetails.Name)
	assert.Equal(t, "buyer@x.com", order.BuyerDetails.Email)
}

func TestLedgerPersistsAcrossProcessors(t *testing.T) {
	f := newFixture(t)
	f.login()
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})
	f.proc.PlaceOrder(cardPayment("4111111111111111"))

	restored := NewProcessor(f.store, f.sessions, f.cart, &f.mu)
	require.Len(t, restored.Orders(), 1)
	assert.Equal(t, "ORD-1700000000000", restored.Orders()[0].ID)
}

func TestUserOrdersFiltersByUser(t *testing.T) {
	f := newFixture(t)
	f.login()
	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})
	f.proc.PlaceOrder(cardPayment("4111111111111111"))

	assert.Len(t, f.proc.UserOrders("user_1"), 1)
	assert.Empty(t, f.proc.UserOrders("someone_else"))
}

func TestLastOrderTracksMostRecentAttempt(t *testing.T) {
	f := newFixture(t)
	f.login()
	assert.Nil(t, f.proc.LastOrder())

	f.cart.Add(models.CartItem{ID: "t1", Name: "T1", Price: 100})
	f.proc.PlaceOrder(cardPayment("4111111111110000"))

	require.NotNil(t, f.proc.LastOrder())
	assert.Equal(t, models.OrderStatusFailed, f.proc.LastOrder().Status)
}
