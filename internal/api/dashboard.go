package api

import (
	"github.com/gin-gonic/gin"
)

type setYearRequest struct {
	Year int `json:"year" binding:"required"`
}

// GetDashboard serves the statistics bundle for the selected year, fetching
// it on first visit.
func (h *Handler) GetDashboard(c *gin.Context) {
	data, year, ok := h.caches.Dashboard.Data()
	if !ok {
		ctx, cancel := requestContext(c)
		defer cancel()
		if err := h.caches.Dashboard.Refresh(ctx); err != nil {
			respondUpstreamError(c, err)
			return
		}
		data, year, _ = h.caches.Dashboard.Data()
	}
	respondData(c, gin.H{"selectedYear": year, "chart": data})
}

// SetDashboardYear is the screen's year filter: it updates the selection and
// refetches. Returning to a previously viewed year refetches too; nothing is
// kept across years.
func (h *Handler) SetDashboardYear(c *gin.Context) {
	var req setYearRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Year < 2000 || req.Year > 2100 {
		respondInvalid(c, "year is required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.caches.Dashboard.SetYear(ctx, req.Year); err != nil {
		respondUpstreamError(c, err)
		return
	}
	data, year, _ := h.caches.Dashboard.Data()
	respondData(c, gin.H{"selectedYear": year, "chart": data})
}

// RefreshDashboard refetches the bundle for the current year.
func (h *Handler) RefreshDashboard(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.caches.Dashboard.Refresh(ctx); err != nil {
		respondUpstreamError(c, err)
		return
	}
	data, year, _ := h.caches.Dashboard.Data()
	respondData(c, gin.H{"selectedYear": year, "chart": data})
}
