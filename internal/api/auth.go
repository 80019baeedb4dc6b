package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type createSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

type refreshSessionRequest struct {
	Token string `json:"token"`
}

// CreateSession validates a bearer token against the upstream and installs
// it as the active session. An already-authenticated caller gets the current
// session back; the login screen redirects away on that answer.
func (h *Handler) CreateSession(c *gin.Context) {
	if h.session.Active() {
		user, _ := h.session.User()
		c.JSON(http.StatusOK, gin.H{
			"status":   statusSuccess,
			"data":     gin.H{"user": user},
			"redirect": "/admin",
		})
		return
	}

	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "token is required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	profile, err := h.session.Login(ctx, req.Token)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	// Populate the reference caches now that a token exists; the login
	// response does not wait on them.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		h.caches.WarmUp(ctx)
	}()

	respondData(c, gin.H{"user": profile})
}

// GetSession reports the current session for screen hydration.
func (h *Handler) GetSession(c *gin.Context) {
	user, ok := h.session.User()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"status": statusSuccess,
			"data":   gin.H{"authenticated": false},
		})
		return
	}
	respondData(c, gin.H{"authenticated": true, "user": user})
}

// DeleteSession logs out, clearing memory and every persisted slot.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.session.Logout(); err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, gin.H{"status": statusFailure, "des": "logout failed"})
		return
	}
	respondOK(c, "logged out")
}

// RefreshSession re-fetches the operator profile, optionally with a caller-
// supplied token.
func (h *Handler) RefreshSession(c *gin.Context) {
	var req refreshSessionRequest
	_ = c.ShouldBindJSON(&req)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.session.RefreshUser(ctx, req.Token); err != nil {
		respondUpstreamError(c, err)
		return
	}
	user, _ := h.session.User()
	respondData(c, gin.H{"user": user})
}
