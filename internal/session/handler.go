package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// --------------------------------------------------
// Start a session (seeded menu + empty order)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	sess := h.store.Create()

	log.Info().Str("session_id", sess.ID).Msg("session created")
	c.JSON(http.StatusCreated, sess)
}

func (h *Handler) Get(c *gin.Context) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sess)
}

// --------------------------------------------------
// End a session (no error for unknown ids)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	h.store.Delete(c.Param("id"))

	log.Info().Str("session_id", c.Param("id")).Msg("session discarded")
	c.Status(http.StatusNoContent)
}
