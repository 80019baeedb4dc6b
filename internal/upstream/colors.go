package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/beatystore/admin-gateway/internal/models"
)

// Colors fetches the full admin color list.
func (c *Client) Colors(ctx context.Context, token string) ([]models.Color, error) {
	env, err := c.get(ctx, token, "/api/Color/Get-all-color-admin", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Color](env, "/api/Color/Get-all-color-admin")
}

// AddColor creates a color. This is the one JSON-body mutation in the API.
func (c *Client) AddColor(ctx context.Context, token, name, hexValue string) error {
	payload, err := json.Marshal(map[string]string{
		"colorHexaValue": hexValue,
		"colorName":      name,
	})
	if err != nil {
		return fmt.Errorf("encode color payload: %w", err)
	}
	_, err = c.call(ctx, token, http.MethodPost, "/api/Color/AddNewColor", nil, "application/json", bytes.NewReader(payload))
	return err
}

// DeleteColor removes a color by id.
func (c *Client) DeleteColor(ctx context.Context, token string, id int) error {
	q := url.Values{"ColorId": {strconv.Itoa(id)}}
	_, err := c.call(ctx, token, http.MethodDelete, "/api/Color/DeleteColor", q, "", nil)
	return err
}
