package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/checkout"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

// POST /user/checkout/place-order
//
// Runs the simulated gateway round trip. The app mutex is NOT held across
// the call; the processor locks it itself once the delay resolves, so the
// rest of the storefront stays responsive while the payment is pending.
func PlaceOrder(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details models.PaymentDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		view, order, err := a.Checkout.PlaceOrder(details)
		if errors.Is(err, checkout.ErrSubmissionInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "Pedido já está sendo processado."})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		if order == nil {
			// Identity guard tripped: back to the cart without an attempt.
			a.SetView(view)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Dados do comprador incompletos.",
				"view":  a.View(),
			})
			return
		}

		a.SetView(view)
		c.JSON(http.StatusOK, gin.H{
			"order": order,
			"view":  a.View(),
		})
	}
}

// GET /user/checkout/last-order
//
// The order-success and payment-error views read the most recent attempt
// from here.
func GetLastOrder(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		order := a.Checkout.LastOrder()
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nenhum pedido recente."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
