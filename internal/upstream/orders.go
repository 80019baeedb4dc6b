package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/beatystore/admin-gateway/internal/models"
)

// Orders fetches the full admin order list.
func (c *Client) Orders(ctx context.Context, token string) ([]models.Order, error) {
	env, err := c.get(ctx, token, "/api/Order/GetAllOrderAdmin", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Order](env, "/api/Order/GetAllOrderAdmin")
}

// OrderHistory fetches one order with its line items and status timeline.
func (c *Client) OrderHistory(ctx context.Context, token string, orderID int) (models.OrderDetail, error) {
	q := url.Values{"orderId": {strconv.Itoa(orderID)}}
	env, err := c.get(ctx, token, "/api/Order/Get-Order-history", q)
	if err != nil {
		return models.OrderDetail{}, err
	}
	return decode[models.OrderDetail](env, "/api/Order/Get-Order-history")
}

// UpdateOrderStatus sets an order's status code. No transition graph is
// enforced here; the upstream accepts or rejects the change.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int, status models.OrderStatus) error {
	q := url.Values{
		"orderId": {strconv.Itoa(orderID)},
		"status":  {strconv.Itoa(int(status))},
	}
	_, err := c.call(ctx, token, http.MethodPut, "/api/Order/Update-order-status-admin", q, "", nil)
	return err
}

// OrderChart fetches the dashboard statistics bundle for a year.
func (c *Client) OrderChart(ctx context.Context, token string, year int) (models.ChartData, error) {
	q := url.Values{"year": {strconv.Itoa(year)}}
	env, err := c.get(ctx, token, "/api/Order/Get-order-chart", q)
	if err != nil {
		return models.ChartData{}, err
	}
	return decode[models.ChartData](env, "/api/Order/Get-order-chart")
}
