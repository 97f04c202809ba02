package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"nammareport/backend/internal/report"
	"nammareport/backend/internal/session"
)

// ListTickets returns every ticket in the caller's session for triage.
func (h *Handler) ListTickets(c *gin.Context) {
	svc, ok := h.adminWorkflow(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": svc.Tickets()})
}

// ResolveTicket applies the Open → Resolved transition and fires the
// simulated citizen notification.
func (h *Handler) ResolveTicket(c *gin.Context) {
	svc, ok := h.adminWorkflow(c)
	if !ok {
		return
	}

	err := svc.MarkResolved(c.Param("id"))
	switch {
	case errors.Is(err, session.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve ticket"})
	default:
		c.JSON(http.StatusOK, gin.H{"resolved": true})
	}
}

// DownloadDocument renders the incident PDF for one ticket.
func (h *Handler) DownloadDocument(c *gin.Context) {
	svc, ok := h.adminWorkflow(c)
	if !ok {
		return
	}

	ticket, err := svc.Store.FindTicket(c.Param("id"))
	if errors.Is(err, session.ErrTicketNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}

	data, err := report.RenderDocument(ticket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render document"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.DocumentFilename(ticket)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetTelemetry returns one fabricated dashboard snapshot.
func (h *Handler) GetTelemetry(c *gin.Context) {
	if _, ok := h.adminWorkflow(c); !ok {
		return
	}
	c.JSON(http.StatusOK, h.Telemetry.Snapshot())
}
