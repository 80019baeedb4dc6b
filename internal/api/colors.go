package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type addColorRequest struct {
	Name     string `json:"name" binding:"required"`
	HexValue string `json:"hexValue" binding:"required"`
}

// ListColors serves the colors screen from the cache; the search box
// matches on name or hex value.
func (h *Handler) ListColors(c *gin.Context) {
	items := h.caches.Colors.Items()
	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := items[:0]
		for _, col := range items {
			if strings.Contains(strings.ToLower(col.Name), search) ||
				strings.Contains(strings.ToLower(col.HexValue), search) {
				filtered = append(filtered, col)
			}
		}
		items = filtered
	}
	respondData(c, items)
}

// AddColor creates a color and refreshes the cache. The original screen
// patched its local list with a guessed id instead; here the refetched list
// is authoritative for every reader.
func (h *Handler) AddColor(c *gin.Context) {
	var req addColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "name and hexValue are required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.AddColor(ctx, h.session.Token(), req.Name, req.HexValue); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Colors.Refresh)
	respondData(c, h.caches.Colors.Items())
}

// DeleteColor removes a color and refreshes the cache.
func (h *Handler) DeleteColor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid color id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.DeleteColor(ctx, h.session.Token(), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Colors.Refresh)
	respondOK(c, "color deleted")
}

// RefreshColors is the cache's manual refresh operation.
func (h *Handler) RefreshColors(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.caches.Colors.Refresh(ctx); err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, h.caches.Colors.Items())
}
