package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	flows *Flows
}

func NewHandler(flows *Flows) *Handler {
	return &Handler{flows: flows}
}

func (h *Handler) flow(c *gin.Context) *Flow {
	return h.flows.Get(c.GetString("sessionID"))
}

// --------------------------------------------------
// GET /checkout
// --------------------------------------------------

func (h *Handler) Status(c *gin.Context) {
	flow := h.flow(c)
	resp := gin.H{
		"confirmed": flow.Confirmed(),
	}
	if order := flow.Order(); order != nil && flow.Confirmed() {
		resp["order"] = order
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// POST /checkout
// --------------------------------------------------

func (h *Handler) Request(c *gin.Context) {
	if !h.flow(c).Request() {
		logrus.WithField("session", c.GetString("sessionID")).Warn("checkout requested with empty cart")
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checkout started"})
}

// --------------------------------------------------
// POST /checkout/back
// --------------------------------------------------

func (h *Handler) Back(c *gin.Context) {
	if !h.flow(c).Back() {
		c.JSON(http.StatusConflict, gin.H{"error": "not in checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "back to order"})
}

// --------------------------------------------------
// POST /checkout/submit
// --------------------------------------------------

func (h *Handler) Submit(c *gin.Context) {
	var info CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, fieldErrs := h.flow(c).Submit(info)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	if order == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "not in checkout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "order placed",
		"order":   order,
	})
}

// --------------------------------------------------
// POST /cart/close
// --------------------------------------------------

func (h *Handler) Close(c *gin.Context) {
	h.flow(c).Close()
	c.JSON(http.StatusOK, gin.H{"message": "cart closed"})
}
