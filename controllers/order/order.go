package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

// GET /user/orders
func GetUserOrders(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		a.SetView(models.ViewUserOrders)
		c.JSON(http.StatusOK, gin.H{
			"orders": a.Checkout.UserOrders(a.Sessions.UserID),
			"view":   a.View(),
		})
	}
}

// GET /user/orders/:id
func GetOrderByID(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		id := c.Param("id")
		for _, order := range a.Checkout.UserOrders(a.Sessions.UserID) {
			if order.ID == id {
				c.JSON(http.StatusOK, gin.H{"order": order})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado."})
	}
}
