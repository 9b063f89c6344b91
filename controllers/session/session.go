package sessionControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

type RegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// POST /auth/register
func Register(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		if a.Sessions.IsEmailTaken(input.Email) {
			c.JSON(http.StatusConflict, gin.H{"error": "Este e-mail já está cadastrado."})
			return
		}

		intent, adminSession := a.Sessions.Register(input.Name, input.Email)
		a.AfterLogin(intent, adminSession)

		c.JSON(http.StatusCreated, gin.H{
			"message": fmt.Sprintf("Login bem-sucedido! Bem-vindo(a), %s!", input.Name),
			"user": gin.H{
				"id":    a.Sessions.UserID,
				"name":  a.Sessions.UserName,
				"email": a.Sessions.UserEmail,
			},
			"view": a.View(),
		})
	}
}

// POST /auth/creator-signup
func CreatorSignup(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data models.CreatorSignupData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		intent, adminSession := a.Sessions.CreatorSignup(data)
		a.AfterLogin(intent, adminSession)
		// Creator signup always lands on the dashboard
		a.SetView(models.ViewCreatorDashboard)

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Cadastro de criador bem-sucedido, %s! Você será redirecionado para o seu painel.", data.FullName),
			"view":    a.View(),
		})
	}
}

// POST /auth/logout
func Logout(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		view := a.Sessions.Logout()
		a.Cart.ClearCoupon()
		a.SetView(view)

		c.JSON(http.StatusOK, gin.H{"message": "Você foi desconectado.", "view": view})
	}
}

// GET /session
func GetSession(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		c.JSON(http.StatusOK, gin.H{
			"isLoggedIn": a.Sessions.LoggedIn,
			"name":       a.Sessions.UserName,
			"email":      a.Sessions.UserEmail,
			"userId":     a.Sessions.UserID,
			"accountRoles": gin.H{
				"isAdmin":   a.Sessions.TrueAdmin,
				"isCreator": a.Sessions.TrueCreator,
			},
			"sessionGrants": gin.H{
				"isAdminSession":   a.Sessions.AdminSession,
				"isCreatorSession": a.Sessions.CreatorSession,
			},
			"creatorName":          a.Sessions.CreatorName,
			"isAdminAuthenticated": a.Sessions.IsAdminAuthenticated(),
			"view":                 a.View(),
		})
	}
}

// GET /user/profile
func GetProfile(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		a.SetView(models.ViewUserProfile)
		c.JSON(http.StatusOK, gin.H{
			"name":      a.Sessions.UserName,
			"email":     a.Sessions.UserEmail,
			"userId":    a.Sessions.UserID,
			"isCreator": a.Sessions.CreatorSession,
			"isAdmin":   a.Sessions.IsAdminAuthenticated(),
			"view":      a.View(),
		})
	}
}
