package filter

import (
	"net/http"

	"chhaon/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *menu.Catalog
}

func NewHandler(catalog *menu.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// GET /menu/filters
// --------------------------------------------------

func (h *Handler) GlobalFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"filters": ExtractUniqueFilters(h.catalog.Categories()),
	})
}

// --------------------------------------------------
// GET /menu/categories/:name/filters
// --------------------------------------------------

func (h *Handler) CategoryFilters(c *gin.Context) {
	cat, _ := h.catalog.Category(c.Param("name"))
	c.JSON(http.StatusOK, gin.H{
		"filters": ExtractUniqueFilters([]menu.Category{cat}),
	})
}

// --------------------------------------------------
// GET /menu/categories/:name?labels=...&global=...
// --------------------------------------------------

// GetCategory returns one category view with the effective selection
// (union of global and local label params) applied. An unknown category
// name yields an empty view, not an error.
func (h *Handler) GetCategory(c *gin.Context) {
	name := c.Param("name")
	cat, _ := h.catalog.Category(name)

	sel := Selection{
		Global: c.QueryArray("global"),
		Local:  map[string][]string{name: c.QueryArray("labels")},
	}

	c.JSON(http.StatusOK, FilterCategory(cat, sel.EffectiveFor(name)))
}
