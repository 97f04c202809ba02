package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"nammareport/backend/internal/models"
	"nammareport/backend/internal/telemetry"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeTelemetryWS upgrades the connection and streams telemetry snapshots
// to an admin dashboard until it disconnects.
func (h *Handler) ServeTelemetryWS(c *gin.Context) {
	if _, ok := h.adminWorkflow(c); !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &telemetry.WSClient{
		Hub:  h.Hub,
		Conn: conn,
		Send: make(chan models.TelemetrySnapshot, 16),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
