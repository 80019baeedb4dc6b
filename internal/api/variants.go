package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type addVariantRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListVariants serves the variants screen from the cache.
func (h *Handler) ListVariants(c *gin.Context) {
	items := h.caches.Variants.Items()
	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := items[:0]
		for _, v := range items {
			if strings.Contains(strings.ToLower(v.Name), search) {
				filtered = append(filtered, v)
			}
		}
		items = filtered
	}
	respondData(c, items)
}

// AddVariant creates a variant type and refreshes the cache.
func (h *Handler) AddVariant(c *gin.Context) {
	var req addVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondInvalid(c, "name is required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.AddVariant(ctx, h.session.Token(), strings.TrimSpace(req.Name)); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Variants.Refresh)
	respondData(c, h.caches.Variants.Items())
}

// DeleteVariant removes a variant type and refreshes the cache.
func (h *Handler) DeleteVariant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid variant id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.DeleteVariant(ctx, h.session.Token(), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Variants.Refresh)
	respondOK(c, "variant deleted")
}

// RefreshVariants is the cache's manual refresh operation.
func (h *Handler) RefreshVariants(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.caches.Variants.Refresh(ctx); err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, h.caches.Variants.Items())
}
