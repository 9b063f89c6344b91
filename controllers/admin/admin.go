package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/catalog"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

// GET /admin/dashboard
func GetDashboard(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		a.SetView(models.ViewAdminDashboard)
		c.JSON(http.StatusOK, gin.H{
			"userCount":  len(a.Sessions.Users()),
			"orderCount": len(a.Checkout.Orders()),
			"view":       a.View(),
		})
	}
}

// GET /admin/users
func GetAllUsers(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		c.JSON(http.StatusOK, gin.H{"users": a.Sessions.Users()})
	}
}

// GET /admin/orders
func GetAllOrders(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		c.JSON(http.StatusOK, gin.H{"orders": a.Checkout.Orders()})
	}
}

// GET /admin/coupons
func GetCoupons(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"coupons": catalog.Coupons})
	}
}
