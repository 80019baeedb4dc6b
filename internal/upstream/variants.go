package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/beatystore/admin-gateway/internal/models"
)

// Variants fetches the full admin variant-type list.
func (c *Client) Variants(ctx context.Context, token string) ([]models.Variant, error) {
	env, err := c.get(ctx, token, "/api/VariantType/Get-all-variantype-admin", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Variant](env, "/api/VariantType/Get-all-variantype-admin")
}

// AddVariant creates a variant type. The upstream takes the name as a query
// parameter rather than a body.
func (c *Client) AddVariant(ctx context.Context, token, name string) error {
	q := url.Values{"variant": {name}}
	_, err := c.call(ctx, token, http.MethodPost, "/api/VariantType/AddNewVariant", q, "", nil)
	return err
}

// DeleteVariant removes a variant type by id.
func (c *Client) DeleteVariant(ctx context.Context, token string, id int) error {
	q := url.Values{"variantId": {strconv.Itoa(id)}}
	_, err := c.call(ctx, token, http.MethodDelete, "/api/VariantType/DeleteVariant", q, "", nil)
	return err
}
