package supportControllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

// Portuguese display names for the ticket subjects offered by the
// support hub.
var ticketSubjectsPT = map[string]string{
	"doubt":                 "Dúvida Técnica Geral",
	"template_issue":        "Problema com Template Adquirido",
	"customization_request": "Solicitação de Personalização",
	"system_integration":    "Ajuda com Integração de Sistema",
	"suggestion":            "Sugestão ou Feedback",
	"billing":               "Questões sobre Pagamento/Cobrança",
	"other":                 "Outro Assunto",
	"instalação":            "Instalação e Integração",
	"consultoria":           "Falar com um Especialista",
	"problema":              "Reportar Problema Técnico",
	"mogrt_support":         "Suporte para .MOGRT",
}

type TicketInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// GET /support
func GetSupportHub(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		a.SetView(models.ViewSupportHub)
		c.JSON(http.StatusOK, gin.H{
			"subjects": ticketSubjectsPT,
			"view":     a.View(),
		})
	}
}

// POST /support/tickets
//
// Tickets are acknowledged, not stored. Contact happens out of band.
func SubmitTicket(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TicketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		subject := ticketSubjectsPT[input.Subject]
		if subject == "" {
			subject = input.Subject
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Chamado sobre %q enviado com sucesso! Entraremos em contato em breve no e-mail %s. (Simulação)", subject, input.Email),
		})
	}
}
