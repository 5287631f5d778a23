package cart

import (
	"net/http"

	"chhaon/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sessions *Sessions
	catalog  *menu.Catalog
}

func NewHandler(sessions *Sessions, catalog *menu.Catalog) *Handler {
	return &Handler{sessions: sessions, catalog: catalog}
}

func (h *Handler) store(c *gin.Context) *Store {
	return h.sessions.Get(c.GetString("sessionID"))
}

func view(s *Store) gin.H {
	t := s.Totals()
	return gin.H{
		"lines":        s.Lines(),
		"totalItems":   t.Items,
		"totalPrice":   t.Price,
		"totalSavings": t.Savings,
		"subtotal":     t.Subtotal,
		"isOpen":       s.IsOpen(),
		"phase":        s.Phase(),
	}
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, view(h.store(c)))
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------

func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, ok := h.catalog.Item(req.Name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not on the menu"})
		return
	}

	store := h.store(c)
	store.AddItem(item)
	c.JSON(http.StatusOK, view(store))
}

// --------------------------------------------------
// PATCH /cart/items/:name
// --------------------------------------------------

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	store := h.store(c)
	store.UpdateQuantity(c.Param("name"), req.Quantity)
	c.JSON(http.StatusOK, view(store))
}

// --------------------------------------------------
// DELETE /cart/items/:name
// --------------------------------------------------

func (h *Handler) RemoveItem(c *gin.Context) {
	store := h.store(c)
	store.RemoveItem(c.Param("name"))
	c.JSON(http.StatusOK, view(store))
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------

func (h *Handler) Clear(c *gin.Context) {
	store := h.store(c)
	store.Clear()
	c.JSON(http.StatusOK, view(store))
}

// --------------------------------------------------
// PUT /cart/panel
// --------------------------------------------------

func (h *Handler) SetPanel(c *gin.Context) {
	var req struct {
		Open *bool `json:"open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	store := h.store(c)
	store.SetOpen(*req.Open)
	c.JSON(http.StatusOK, view(store))
}
