package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sailakshmimedida/Menu-Management/internal/billing"
	"github.com/sailakshmimedida/Menu-Management/internal/menu"
)

// Sessions resolves a session id to that session's order.
type Sessions interface {
	Order(sessionID string) (*Service, error)
}

type Handler struct {
	sessions Sessions
	clock    billing.Clock
}

func NewHandler(sessions Sessions, clock billing.Clock) *Handler {
	return &Handler{sessions: sessions, clock: clock}
}

// --------------------------------------------------
// Add an item to the order
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	service, err := h.sessions.Order(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		ItemID   int `json:"item_id"`
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	line, err := service.Add(req.ItemID, req.Quantity)
	if err != nil {
		if errors.Is(err, menu.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Info().Int("item_id", line.ItemID).Int("quantity", line.Quantity).Msg("item added to order")
	c.JSON(http.StatusCreated, line)
}

// --------------------------------------------------
// Order summary: formatted lines + total
// --------------------------------------------------
func (h *Handler) Summary(c *gin.Context) {
	service, err := h.sessions.Order(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.Summary())
}

// --------------------------------------------------
// Bill with the day-of-week discount applied
// --------------------------------------------------
func (h *Handler) Bill(c *gin.Context) {
	service, err := h.sessions.Order(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.Bill(h.clock.Now().Weekday()))
}
