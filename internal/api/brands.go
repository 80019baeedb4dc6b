package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/upstream"
)

// ListBrands serves the brands screen from the cache, with the screen's
// search box applied in memory.
func (h *Handler) ListBrands(c *gin.Context) {
	items := h.caches.Brands.Items()
	if search := c.Query("search"); search != "" {
		filtered := items[:0]
		for _, b := range items {
			if strings.Contains(strings.ToLower(b.Name), strings.ToLower(search)) {
				filtered = append(filtered, b)
			}
		}
		items = filtered
	}
	respondData(c, items)
}

// GetBrand fetches one brand for the edit form, bypassing the cache.
func (h *Handler) GetBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid brand id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	brand, err := h.client.Brand(ctx, h.session.Token(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, brand)
}

// CreateBrand forwards the add-brand form. An empty name is rejected before
// any upstream call.
func (h *Handler) CreateBrand(c *gin.Context) {
	form, ok := h.bindBrandForm(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.CreateBrand(ctx, h.session.Token(), form); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Brands.Refresh)
	respondOK(c, "brand created")
}

// UpdateBrand forwards the edit-brand form.
func (h *Handler) UpdateBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid brand id")
		return
	}
	form, ok := h.bindBrandForm(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.UpdateBrand(ctx, h.session.Token(), id, form); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Brands.Refresh)
	respondOK(c, "brand updated")
}

// DeleteBrand removes a brand and refreshes the cache so every screen
// reading it sees the entity gone.
func (h *Handler) DeleteBrand(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid brand id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.DeleteBrand(ctx, h.session.Token(), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Brands.Refresh)
	respondOK(c, "brand deleted")
}

// RefreshBrands is the cache's manual refresh operation.
func (h *Handler) RefreshBrands(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.caches.Brands.Refresh(ctx); err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, h.caches.Brands.Items())
}

// bindBrandForm reads the shared multipart shape of the brand screens.
func (h *Handler) bindBrandForm(c *gin.Context) (upstream.BrandForm, bool) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		respondInvalid(c, "name is required")
		return upstream.BrandForm{}, false
	}
	form := upstream.BrandForm{
		Name:        name,
		Description: c.PostForm("description"),
	}

	thumb, ok := formUpload(c, "thumbNail")
	if !ok {
		return upstream.BrandForm{}, false
	}
	form.Thumbnail = thumb
	return form, true
}
