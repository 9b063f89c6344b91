package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielterto2000/broadcastmotion-api/app"
	"github.com/danielterto2000/broadcastmotion-api/catalog"
	"github.com/danielterto2000/broadcastmotion-api/models"
)

type CategoryInput struct {
	Category string `json:"category" binding:"required"`
}

// GET /catalog/templates
func GetTemplates(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		p := a.Catalog.Templates
		c.JSON(http.StatusOK, gin.H{
			"categories":     catalog.Categories,
			"activeCategory": p.ActiveCategory(),
			"templates":      p.Visible(),
			"canLoadMore":    p.CanLoadMore(),
		})
	}
}

// GET /catalog/templates/:id
func GetTemplateByID(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		template, ok := a.Catalog.FindTemplate(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template não encontrado."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"template": template})
	}
}

// POST /catalog/templates/category
func SetTemplateCategory(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		a.Catalog.SetTemplateCategory(input.Category)
		p := a.Catalog.Templates
		c.JSON(http.StatusOK, gin.H{
			"activeCategory": p.ActiveCategory(),
			"templates":      p.Visible(),
			"canLoadMore":    p.CanLoadMore(),
		})
	}
}

// POST /catalog/templates/load-more
func LoadMoreTemplates(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		p := a.Catalog.Templates
		p.LoadMore()
		c.JSON(http.StatusOK, gin.H{
			"templates":   p.Visible(),
			"canLoadMore": p.CanLoadMore(),
		})
	}
}

// chromaPager picks the main-section or dedicated-page pager from the
// "section" query parameter. The dedicated page starts with the whole
// list visible and pages in larger steps.
func chromaPager(a *app.App, c *gin.Context) *catalog.Pager[models.ChromaKeyTemplate] {
	if c.Query("section") == "page" {
		return a.Catalog.ChromaPage
	}
	return a.Catalog.ChromaMain
}

func mogrtPager(a *app.App, c *gin.Context) *catalog.Pager[models.MogrtTemplate] {
	if c.Query("section") == "page" {
		return a.Catalog.MogrtPage
	}
	return a.Catalog.MogrtMain
}

// GET /catalog/chroma-key?section=main|page
func GetChromaKeyTemplates(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		p := chromaPager(a, c)
		c.JSON(http.StatusOK, gin.H{
			"categories":     catalog.ChromaKeyCategories,
			"activeCategory": p.ActiveCategory(),
			"templates":      p.Visible(),
			"canLoadMore":    p.CanLoadMore(),
		})
	}
}

// POST /catalog/chroma-key/category
//
// Category changes apply to both the main section and the dedicated page,
// resetting each to its own initial visible count.
func SetChromaKeyCategory(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		a.Catalog.SetChromaKeyCategory(input.Category)
		p := chromaPager(a, c)
		c.JSON(http.StatusOK, gin.H{
			"activeCategory": p.ActiveCategory(),
			"templates":      p.Visible(),
			"canLoadMore":    p.CanLoadMore(),
		})
	}
}

// POST /catalog/chroma-key/load-more?section=main|page
func LoadMoreChromaKey(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		p := chromaPager(a, c)
		p.LoadMore()
		c.JSON(http.StatusOK, gin.H{
			"templates":   p.Visible(),
			"canLoadMore": p.CanLoadMore(),
		})
	}
}

// GET /catalog/mogrt?section=main|page
func GetMogrtTemplates(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		p := mogrtPager(a, c)
		c.JSON(http.StatusOK, gin.H{
			"categories":     catalog.MogrtCategories,
			"activeCategory": p.ActiveCategory(),
			"templates":      p.Visible(),
			"canLoadMore":    p.CanLoadMore(),
		})
	}
}

// POST /catalog/mogrt/category
func SetMogrtCategory(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		a.Mu.Lock()
		defer a.Mu.Unlock()

		a.Catalog.SetMogrtCategory(input.Category)
		p := mogrtPager(a, c)
		c.JSON(http.StatusOK, gin.H{
			"activeCategory": p.ActiveCategory(),
			"templates":      p.Visible(),
			"canLoadMore":    p.CanLoadMore(),
		})
	}
}

// POST /catalog/mogrt/load-more?section=main|page
func LoadMoreMogrt(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		a.Mu.Lock()
		defer a.Mu.Unlock()

		p := mogrtPager(a, c)
		p.LoadMore()
		c.JSON(http.StatusOK, gin.H{
			"templates":   p.Visible(),
			"canLoadMore": p.CanLoadMore(),
		})
	}
}
