package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
)

// RequireLogin gates the user-scoped endpoints on the in-memory session.
func RequireLogin(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		loggedIn := a.Sessions.LoggedIn
		a.Mu.Unlock()

		if !loggedIn {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login necessário.", "requiresAuth": true})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates the admin endpoints on the stored credentials, not
// the in-memory session: the token slot must hold a token and the
// persisted identity record must carry the admin flag. Any parse failure
// denies.
func RequireAdmin(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		authenticated := a.Sessions.IsAdminAuthenticated()
		a.Mu.Unlock()

		if !authenticated {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Acesso negado."})
			c.Abort()
			return
		}
		c.Next()
	}
}
