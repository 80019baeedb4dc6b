// Package api exposes the admin screens as JSON endpoints. Responses reuse
// the upstream's {status, data, des} envelope shape so the front end keeps a
// single result convention end to end.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/cache"
	"github.com/beatystore/admin-gateway/internal/session"
	"github.com/beatystore/admin-gateway/internal/upstream"
)

// statusSuccess / statusFailure mirror the upstream envelope convention.
const (
	statusSuccess = 1
	statusFailure = 0
)

const requestTimeout = 15 * time.Second

// Handler holds the injected collaborators for every screen endpoint.
type Handler struct {
	client  *upstream.Client
	session *session.Manager
	caches  *cache.Registry
}

// NewHandler creates a new handler instance.
func NewHandler(client *upstream.Client, sess *session.Manager, caches *cache.Registry) *Handler {
	return &Handler{client: client, session: sess, caches: caches}
}

// Health reports liveness plus whether a session is present.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"authenticated": h.session.Active(),
	})
}

// requestContext bounds a handler's upstream work.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// respondData writes a success envelope with a payload.
func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "data": data})
}

// respondOK writes a bare success envelope with a message.
func respondOK(c *gin.Context, des string) {
	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "des": des})
}

// respondInvalid rejects a request before any upstream call is made.
func respondInvalid(c *gin.Context, des string) {
	c.JSON(http.StatusBadRequest, gin.H{"status": statusFailure, "des": des})
}

// refreshAfterMutation runs the owning cache's refresh once the upstream
// accepted a mutation. Every mutation goes through here; no screen patches a
// local copy instead. A failed refresh is logged by the cache and leaves the
// previous snapshot standing; the mutation itself already succeeded.
func (h *Handler) refreshAfterMutation(c *gin.Context, refresh func(context.Context) error) {
	ctx, cancel := requestContext(c)
	defer cancel()
	if err := refresh(ctx); err != nil {
		c.Error(err) //nolint:errcheck
	}
}

// formUpload reads an optional file field into memory. ok is false only when
// the field exists but cannot be read; a missing field returns (nil, true).
func formUpload(c *gin.Context, field string) (*upstream.Upload, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil {
		return nil, true
	}
	up, ok := readUpload(c, fileHeader)
	if !ok {
		return nil, false
	}
	return &up, true
}

// respondUpstreamError maps the three upstream failure categories onto one
// envelope: the des message when the upstream provided one, a generic
// message otherwise. Application-level rejections come back 400, everything
// else 502.
func respondUpstreamError(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusBadRequest, gin.H{"status": statusFailure, "des": upstream.Description(err)})
		return
	}
	c.Error(err) //nolint:errcheck
	c.JSON(http.StatusBadGateway, gin.H{"status": statusFailure, "des": upstream.Description(err)})
}
