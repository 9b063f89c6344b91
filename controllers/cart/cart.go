package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

// GET /user/cart
func GetCart(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		c.JSON(http.StatusOK, gin.H{
			"items":         a.Cart.Items(),
			"totals":        a.Cart.Totals(),
			"appliedCoupon": a.Cart.AppliedCoupon(),
		})
	}
}

// POST /cart/items
//
// The buy action. Logged out, the add is deferred: the item is remembered
// as a pending intent and replayed automatically after the next login.
func AddCartItem(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ItemID string `json:"itemId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		if !a.Sessions.LoggedIn {
			a.Sessions.SetPendingIntent(models.PendingIntent{Kind: models.IntentOpenCart, ItemID: input.ItemID})
			c.JSON(http.StatusUnauthorized, gin.H{"requiresAuth": true})
			return
		}

		item, ok := a.Catalog.FindItem(input.ItemID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado."})
			return
		}

		added, notice := a.Cart.Add(item)
		if !added {
			c.JSON(http.StatusOK, gin.H{"added": false, "message": notice, "items": a.Cart.Items()})
			return
		}

		a.SetView(models.ViewCart)
		c.JSON(http.StatusOK, gin.H{
			"added":  true,
			"items":  a.Cart.Items(),
			"totals": a.Cart.Totals(),
			"view":   a.View(),
		})
	}
}

// DELETE /user/cart/:item_id
func RemoveCartItem(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		notice := a.Cart.Remove(c.Param("item_id"))
		resp := gin.H{
			"items":         a.Cart.Items(),
			"totals":        a.Cart.Totals(),
			"appliedCoupon": a.Cart.AppliedCoupon(),
		}
		if notice != "" {
			resp["message"] = notice
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /user/cart/coupon
func ApplyCoupon(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Code string `json:"code" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		applied, message := a.Cart.ApplyCoupon(input.Code)
		c.JSON(http.StatusOK, gin.H{
			"applied":       applied,
			"message":       message,
			"totals":        a.Cart.Totals(),
			"appliedCoupon": a.Cart.AppliedCoupon(),
		})
	}
}

// POST /cart/checkout
//
// Logged out, the navigation is deferred just like the buy action. An
// empty cart bounces back to the main view.
func ProceedToCheckout(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		if !a.Sessions.LoggedIn {
			a.Sessions.SetPendingIntent(models.PendingIntent{Kind: models.IntentOpenCheckout})
			c.JSON(http.StatusUnauthorized, gin.H{"requiresAuth": true})
			return
		}

		if a.Cart.Len() == 0 {
			a.SetView(models.ViewMain)
			c.JSON(http.StatusOK, gin.H{"message": "Seu carrinho está vazio.", "view": a.View()})
			return
		}

		a.SetView(models.ViewCheckout)
		c.JSON(http.StatusOK, gin.H{"view": a.View()})
	}
}
