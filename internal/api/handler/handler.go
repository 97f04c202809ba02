// Package handler wires the HTTP event surface to the ticket workflow.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nammareport/backend/internal/config"
	"nammareport/backend/internal/localization"
	"nammareport/backend/internal/models"
	"nammareport/backend/internal/notify"
	"nammareport/backend/internal/session"
	"nammareport/backend/internal/telemetry"
	"nammareport/backend/internal/token"
	"nammareport/backend/internal/workflow"
)

// Handler carries the shared dependencies for every route.
type Handler struct {
	Sessions  *session.Registry
	Tokens    *token.Manager
	Localizer *localization.Localizer
	Hub       *telemetry.Hub
	Telemetry *telemetry.Generator
	Notifier  notify.Notifier
	Rng       models.Rand
	Cfg       config.Config
}

func NewHandler(
	sessions *session.Registry,
	tokens *token.Manager,
	localizer *localization.Localizer,
	hub *telemetry.Hub,
	gen *telemetry.Generator,
	notifier notify.Notifier,
	rng models.Rand,
	cfg config.Config,
) *Handler {
	return &Handler{
		Sessions:  sessions,
		Tokens:    tokens,
		Localizer: localizer,
		Hub:       hub,
		Telemetry: gen,
		Notifier:  notifier,
		Rng:       rng,
		Cfg:       cfg,
	}
}

// Register mounts every route on the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/session", h.CreateSession)
	r.GET("/labels", h.GetLabels)

	auth := r.Group("/auth")
	auth.POST("/otp/request", h.RequestOTP)
	auth.POST("/otp/verify", h.VerifyOTP)
	auth.POST("/logout", h.Logout)

	r.POST("/reports", h.SubmitReport)
	r.GET("/reports", h.ListReports)

	admin := r.Group("/admin")
	admin.GET("/tickets", h.ListTickets)
	admin.POST("/tickets/:id/resolve", h.ResolveTicket)
	admin.GET("/tickets/:id/document", h.DownloadDocument)
	admin.GET("/telemetry", h.GetTelemetry)
	admin.GET("/telemetry/live", h.ServeTelemetryWS)
}

// workflow builds the controller bound to one session's store.
func (h *Handler) workflow(store *session.Store) *workflow.Service {
	cfg := workflow.Config{
		AdminMobile:   h.Cfg.AdminMobile,
		Location:      models.Location{Lat: config.DeploymentLat, Lon: config.DeploymentLon},
		IntegrityTags: h.Cfg.IntegrityTags,
		CodeSendDelay: h.Cfg.CodeSendDelay,
		AnalysisDelay: h.Cfg.AnalysisDelay,
	}
	return workflow.NewService(store, cfg, h.Rng, h.Notifier)
}

// sessionStore resolves the caller's session from the bearer token. On
// failure it aborts with 401 and returns false.
func (h *Handler) sessionStore(c *gin.Context) (*session.Store, bool) {
	raw, err := token.FromBearer(c.GetHeader("Authorization"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token missing"})
		return nil, false
	}
	sessionID, err := h.Tokens.Parse(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return nil, false
	}
	return h.Sessions.Get(sessionID), true
}

// adminWorkflow resolves the session and requires the administrator role.
func (h *Handler) adminWorkflow(c *gin.Context) (*workflow.Service, bool) {
	store, ok := h.sessionStore(c)
	if !ok {
		return nil, false
	}
	svc := h.workflow(store)
	if err := svc.Authorize(true); err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator role required"})
		return nil, false
	}
	return svc, true
}

// GetLabels returns the localized label table for the requested language.
func (h *Handler) GetLabels(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	c.JSON(http.StatusOK, gin.H{
		"lang":      lang,
		"labels":    h.Localizer.Table(lang),
		"languages": h.Localizer.Languages(),
	})
}
