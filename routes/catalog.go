package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	cartControllers "github.com/danielterto2000/broadcastmotion-api/controllers/cart"
	catalogControllers "github.com/danielterto2000/broadcastmotion-api/controllers/catalog"
	supportControllers "github.com/danielterto2000/broadcastmotion-api/controllers/support"
	viewControllers "github.com/danielterto2000/broadcastmotion-api/controllers/view"
)

// SetupCatalogRoutes registers the public storefront endpoints: view
// navigation, the three catalog sections, the buy/checkout entry points
// (which defer to the login flow when logged out), and the support hub.
func SetupCatalogRoutes(r *gin.Engine, a *app.App) {
	r.GET("/view", viewControllers.GetView(a))
	r.POST("/view", viewControllers.Navigate(a))

	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/templates", catalogControllers.GetTemplates(a))
		catalogGroup.GET("/templates/:id", catalogControllers.GetTemplateByID(a))
		catalogGroup.POST("/templates/category", catalogControllers.SetTemplateCategory(a))
		catalogGroup.POST("/templates/load-more", catalogControllers.LoadMoreTemplates(a))

		catalogGroup.GET("/chroma-key", catalogControllers.GetChromaKeyTemplates(a))
		catalogGroup.POST("/chroma-key/category", catalogControllers.SetChromaKeyCategory(a))
		catalogGroup.POST("/chroma-key/load-more", catalogControllers.LoadMoreChromaKey(a))

		catalogGroup.GET("/mogrt", catalogControllers.GetMogrtTemplates(a))
		catalogGroup.POST("/mogrt/category", catalogControllers.SetMogrtCategory(a))
		catalogGroup.POST("/mogrt/load-more", catalogControllers.LoadMoreMogrt(a))
	}

	// Buy and checkout are reachable logged out: they queue a pending
	// intent instead of rejecting, so they sit outside the user group.
	r.POST("/cart/items", cartControllers.AddCartItem(a))
	r.POST("/cart/checkout", cartControllers.ProceedToCheckout(a))

	r.GET("/support", supportControllers.GetSupportHub(a))
	r.POST("/support/tickets", supportControllers.SubmitTicket(a))
}
