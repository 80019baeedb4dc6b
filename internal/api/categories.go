package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/upstream"
)

// ListCategories serves the categories screen from the cache.
func (h *Handler) ListCategories(c *gin.Context) {
	items := h.caches.Categories.Items()
	if search := c.Query("search"); search != "" {
		filtered := items[:0]
		for _, cat := range items {
			if strings.Contains(strings.ToLower(cat.Name), strings.ToLower(search)) {
				filtered = append(filtered, cat)
			}
		}
		items = filtered
	}
	respondData(c, items)
}

// GetCategory fetches one category for the edit form.
func (h *Handler) GetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid category id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	category, err := h.client.Category(ctx, h.session.Token(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, category)
}

// CreateCategory forwards the add-category form.
func (h *Handler) CreateCategory(c *gin.Context) {
	form, ok := h.bindCategoryForm(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.CreateCategory(ctx, h.session.Token(), form); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Categories.Refresh)
	respondOK(c, "category created")
}

// UpdateCategory forwards the edit-category form.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid category id")
		return
	}
	form, ok := h.bindCategoryForm(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.UpdateCategory(ctx, h.session.Token(), id, form); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Categories.Refresh)
	respondOK(c, "category updated")
}

// DeleteCategory removes a category and refreshes the cache.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid category id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.DeleteCategory(ctx, h.session.Token(), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Categories.Refresh)
	respondOK(c, "category deleted")
}

// RefreshCategories is the cache's manual refresh operation.
func (h *Handler) RefreshCategories(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.caches.Categories.Refresh(ctx); err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, h.caches.Categories.Items())
}

func (h *Handler) bindCategoryForm(c *gin.Context) (upstream.CategoryForm, bool) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		respondInvalid(c, "name is required")
		return upstream.CategoryForm{}, false
	}
	form := upstream.CategoryForm{
		Name:        name,
		Description: c.PostForm("description"),
	}

	thumb, ok := formUpload(c, "thumbNail")
	if !ok {
		return upstream.CategoryForm{}, false
	}
	form.Thumbnail = thumb
	return form, true
}
