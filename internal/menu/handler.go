package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// GET /menu
// --------------------------------------------------

func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.catalog.Categories(),
	})
}
