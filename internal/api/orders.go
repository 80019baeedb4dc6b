package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/models"
)

type updateOrderStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// ListOrders fetches the admin order list. Orders are not reference data;
// every visit reads server truth directly.
func (h *Handler) ListOrders(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := h.client.Orders(ctx, h.session.Token())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if strings.Contains(strconv.Itoa(o.ID), search) ||
				strings.Contains(strings.ToLower(o.UserName), search) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	respondData(c, orders)
}

// GetOrder fetches one order with line items and its status timeline.
func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid order id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	detail, err := h.client.OrderHistory(ctx, h.session.Token(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, detail)
}

// UpdateOrderStatus forwards a status change. Any of the six codes may be
// requested from any current status; the upstream is the authority on
// whether the transition is allowed. On success the refreshed detail is
// returned so the screen shows the new timeline immediately.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "status is required")
		return
	}
	status := models.OrderStatus(req.Status)
	if !status.IsValid() {
		respondInvalid(c, "unknown status code")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.UpdateOrderStatus(ctx, h.session.Token(), id, status); err != nil {
		respondUpstreamError(c, err)
		return
	}

	detail, err := h.client.OrderHistory(ctx, h.session.Token(), id)
	if err != nil {
		// The status change took; report success without the fresh detail.
		c.Error(err) //nolint:errcheck
		respondOK(c, "order status updated")
		return
	}
	respondData(c, detail)
}
