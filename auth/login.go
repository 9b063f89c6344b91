// Package auth is the authentication collaborator: it validates
// credentials against the stored user list and hands the session manager
// the identity fields plus a bearer token for admin accounts.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/session"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func LoginHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		user, ok := a.Sessions.FindUserByEmail(req.Email)
		if !ok || user.PasswordHash != req.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "E-mail ou senha inválidos."})
			return
		}

		var token string
		if user.IsAdmin {
			token = IssueToken(user.ID, user.Email, user.Name)
		}

		intent, adminSession := a.Sessions.Login(session.LoginParams{
			Email:     user.Email,
			Name:      user.Name,
			UserID:    user.ID,
			IsAdmin:   user.IsAdmin,
			IsCreator: user.IsCreator,
			Token:     token,
		})
		a.AfterLogin(intent, adminSession)

		resp := gin.H{
			"message": fmt.Sprintf("Login bem-sucedido! Bem-vindo(a), %s!", user.Name),
			"user": gin.H{
				"id":        user.ID,
				"name":      user.Name,
				"email":     user.Email,
				"isAdmin":   user.IsAdmin,
				"isCreator": user.IsCreator,
			},
			"view": a.View(),
		}
		if token != "" {
			resp["token"] = token
		}
		c.JSON(http.StatusOK, resp)
	}
}
