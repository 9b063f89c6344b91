package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	adminControllers "github.com/danielterto2000/broadcastmotion-api/controllers/admin"
	orderControllers "github.com/danielterto2000/broadcastmotion-api/controllers/order"
	"github.com/danielterto2000/broadcastmotion-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. The gate checks
// the stored token and identity record, not the in-memory session.
func SetupAdminRoutes(r *gin.Engine, a *app.App) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(a))
	{
		adminGroup.GET("/dashboard", adminControllers.GetDashboard(a))
		adminGroup.GET("/users", adminControllers.GetAllUsers(a))
		adminGroup.GET("/coupons", adminControllers.GetCoupons(a))

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminControllers.GetAllOrders(a))
			orderAdmin.GET("/export-excel", adminControllers.ExportOrdersToExcel(a))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
