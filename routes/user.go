package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	cartControllers "github.com/danielterto2000/broadcastmotion-api/controllers/cart"
	checkoutControllers "github.com/danielterto2000/broadcastmotion-api/controllers/checkout"
	orderControllers "github.com/danielterto2000/broadcastmotion-api/controllers/order"
	sessionControllers "github.com/danielterto2000/broadcastmotion-api/controllers/session"
	"github.com/danielterto2000/broadcastmotion-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a logged-in
// session.
func SetupUserRoutes(r *gin.Engine, a *app.App) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireLogin(a))
	{
		userGroup.GET("/profile", sessionControllers.GetProfile(a))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(a))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveCartItem(a))
			cartGroup.POST("/coupon", cartControllers.ApplyCoupon(a))
		}

		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.POST("/place-order", checkoutControllers.PlaceOrder(a))
			checkoutGroup.GET("/last-order", checkoutControllers.GetLastOrder(a))
		}

		userGroup.GET("/orders", orderControllers.GetUserOrders(a))
		userGroup.GET("/orders/:id", orderControllers.GetOrderByID(a))
	}
}
