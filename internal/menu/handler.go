package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Sessions resolves a session id to that session's catalog service.
type Sessions interface {
	Menu(sessionID string) (*Service, error)
}

type Handler struct {
	sessions Sessions
}

type AdminHandler struct {
	sessions Sessions
}

func NewHandler(sessions Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func NewAdminHandler(sessions Sessions) *AdminHandler {
	return &AdminHandler{sessions: sessions}
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// --------------------------------------------------
// Customer: browse / search the menu
// --------------------------------------------------
func (h *Handler) Browse(c *gin.Context) {
	service, err := h.sessions.Menu(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	items, err := service.SearchItems(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// --------------------------------------------------
// Customer: single item lookup
// --------------------------------------------------
func (h *Handler) GetItem(c *gin.Context) {
	service, err := h.sessions.Menu(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := service.GetItem(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Admin: full catalog view
// --------------------------------------------------
func (h *AdminHandler) ListItems(c *gin.Context) {
	service, err := h.sessions.Menu(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	items, err := service.ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// --------------------------------------------------
// Admin: add item
// --------------------------------------------------
func (h *AdminHandler) AddItem(c *gin.Context) {
	service, err := h.sessions.Menu(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := service.AddItem(req.Name, req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Info().Int("item_id", item.ID).Str("name", item.Name).Msg("menu item added")
	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// Admin: partial update
// --------------------------------------------------
func (h *AdminHandler) UpdateItem(c *gin.Context) {
	service, err := h.sessions.Menu(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	var upd ItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := service.UpdateItem(id, upd); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := service.GetItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Info().Int("item_id", id).Msg("menu item updated")
	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Admin: remove item (204 even when the id is unknown)
// --------------------------------------------------
func (h *AdminHandler) RemoveItem(c *gin.Context) {
	service, err := h.sessions.Menu(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := service.RemoveItem(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Info().Int("item_id", id).Msg("menu item removed")
	c.Status(http.StatusNoContent)
}
