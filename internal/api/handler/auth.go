package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nammareport/backend/internal/workflow"
)

// CreateSession allocates a fresh session and returns its bearer token.
func (h *Handler) CreateSession(c *gin.Context) {
	sessionID, _ := h.Sessions.NewSession()

	signed, err := h.Tokens.Issue(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed, "session_id": sessionID})
}

type otpRequest struct {
	Mobile string `json:"mobile"`
}

// RequestOTP generates a verification code for the submitted mobile number.
// The code is returned in the response body: delivery is simulated, there is
// no SMS dispatch. A malformed number is silently ignored (sent=false, no
// state change), mirroring the reference UI's re-prompt behavior.
func (h *Handler) RequestOTP(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	code, err := h.workflow(store).RequestVerificationCode(req.Mobile)
	if errors.Is(err, workflow.ErrMobileLength) {
		c.JSON(http.StatusOK, gin.H{"sent": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true, "code": code})
}

type verifyRequest struct {
	Code string `json:"code"`
}

// VerifyOTP checks the submitted code against the most recently issued one.
func (h *Handler) VerifyOTP(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.workflow(store).VerifyCode(req.Code)
	switch {
	case errors.Is(err, workflow.ErrCodeNotRequested):
		c.JSON(http.StatusConflict, gin.H{"error": "no verification code requested"})
	case errors.Is(err, workflow.ErrInvalidCode):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid verification code"})
	default:
		c.JSON(http.StatusOK, gin.H{"verified": true})
	}
}

// Logout clears the caller's authentication state. Tickets reported in this
// session are kept.
func (h *Handler) Logout(c *gin.Context) {
	store, ok := h.sessionStore(c)
	if !ok {
		return
	}
	h.workflow(store).Logout()
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}
