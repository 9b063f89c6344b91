package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/auth"
	sessionControllers "github.com/danielterto2000/broadcastmotion-api/controllers/session"
)

// SetupAuthRoutes registers the "/auth/*" endpoints plus the session
// probe. All public; login failure is an application response, not a
// middleware rejection.
func SetupAuthRoutes(r *gin.Engine, a *app.App) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(a))
		authGroup.POST("/register", sessionControllers.Register(a))
		authGroup.POST("/creator-signup", sessionControllers.CreatorSignup(a))
		authGroup.POST("/logout", sessionControllers.Logout(a))
	}

	r.GET("/session", sessionControllers.GetSession(a))
}
