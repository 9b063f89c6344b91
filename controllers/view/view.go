package viewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

var knownViews = map[models.AppView]bool{
	models.ViewMain:             true,
	models.ViewCreatorSignup:    true,
	models.ViewCreatorDashboard: true,
	models.ViewCart:             true,
	models.ViewCheckout:         true,
	models.ViewOrderSuccess:     true,
	models.ViewPaymentError:     true,
	models.ViewUserOrders:       true,
	models.ViewUserProfile:      true,
	models.ViewSupportHub:       true,
	models.ViewMogrtPage:        true,
	models.ViewChromaKeyPage:    true,
	models.ViewAdminDashboard:   true,
}

// GET /view
func GetView(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"view": a.View()})
	}
}

// POST /view
//
// Navigates to a named view. The admin dashboard is gated separately; a
// navigation request for it without the stored admin credentials falls
// back to the main view.
func Navigate(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			View models.AppView `json:"view" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !knownViews[input.View] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown view"})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		if input.View == models.ViewAdminDashboard && !a.Sessions.IsAdminAuthenticated() {
			a.SetView(models.ViewMain)
			c.JSON(http.StatusForbidden, gin.H{"error": "Acesso negado.", "view": a.View()})
			return
		}

		a.SetView(input.View)
		c.JSON(http.StatusOK, gin.H{"view": a.View()})
	}
}
