package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/beatystore/admin-gateway/internal/models"
)

// BrandForm carries the create/update fields for a brand. Thumbnail is
// optional; when nil the upstream keeps (or omits) the image.
type BrandForm struct {
	Name        string
	Description string
	Thumbnail   *Upload
}

// Brands fetches the full admin brand list.
func (c *Client) Brands(ctx context.Context, token string) ([]models.Brand, error) {
	env, err := c.get(ctx, token, "/api/Brand/GetAllBrandAdmin", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Brand](env, "/api/Brand/GetAllBrandAdmin")
}

// Brand fetches a single brand for the edit form.
func (c *Client) Brand(ctx context.Context, token string, id int) (models.Brand, error) {
	q := url.Values{"id": {strconv.Itoa(id)}}
	env, err := c.get(ctx, token, "/api/Brand/Get-brand-id", q)
	if err != nil {
		return models.Brand{}, err
	}
	return decode[models.Brand](env, "/api/Brand/Get-brand-id")
}

// CreateBrand submits a new brand as a multipart form.
func (c *Client) CreateBrand(ctx context.Context, token string, form BrandForm) error {
	f := newForm()
	f.field("name", form.Name)
	f.field("description", form.Description)
	if form.Thumbnail != nil {
		f.file("thumbNail", *form.Thumbnail)
	}
	contentType, body, err := f.close()
	if err != nil {
		return err
	}
	_, err = c.call(ctx, token, http.MethodPost, "/api/Brand/CreateNewBrand", nil, contentType, body)
	return err
}

// UpdateBrand submits changed brand fields as a multipart form.
func (c *Client) UpdateBrand(ctx context.Context, token string, id int, form BrandForm) error {
	f := newForm()
	f.field("brandId", strconv.Itoa(id))
	f.field("name", form.Name)
	f.field("description", form.Description)
	if form.Thumbnail != nil {
		f.file("thumbNail", *form.Thumbnail)
	}
	contentType, body, err := f.close()
	if err != nil {
		return err
	}
	_, err = c.call(ctx, token, http.MethodPut, "/api/Brand/Update-brand", nil, contentType, body)
	return err
}

// DeleteBrand removes a brand by id.
func (c *Client) DeleteBrand(ctx context.Context, token string, id int) error {
	q := url.Values{"id": {strconv.Itoa(id)}}
	_, err := c.call(ctx, token, http.MethodDelete, "/api/Brand/DeleteBrand", q, "", nil)
	return err
}
