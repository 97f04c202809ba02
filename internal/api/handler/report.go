package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nammareport/backend/internal/workflow"
)

// SubmitReport accepts a photo upload and files a new ticket. Only the
// filename matters: classification is a substring match, not image analysis.
func (h *Handler) SubmitReport(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file attached"})
		return
	}

	ticket, err := h.workflow(store).SubmitReport(file.Filename)
	switch {
	case errors.Is(err, workflow.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "verification required"})
	case errors.Is(err, workflow.ErrNoFile):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file attached"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to file report"})
	default:
		c.JSON(http.StatusCreated, gin.H{"ticket": ticket})
	}
}

// ListReports returns the session's tickets in insertion order.
func (h *Handler) ListReports(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": h.workflow(store).Tickets()})
}
