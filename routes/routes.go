package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
)

// SetupRoutes is the single entry-point that wires up the public,
// authenticated-user, and admin route groups.
func SetupRoutes(r *gin.Engine, a *app.App) {
	// Public routes (no middleware)
	SetupAuthRoutes(r, a)
	SetupCatalogRoutes(r, a)

	// User routes (session-protected)
	SetupUserRoutes(r, a)

	// Admin routes (stored-credential-protected)
	SetupAdminRoutes(r, a)
}
