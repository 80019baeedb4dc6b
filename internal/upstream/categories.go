package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/beatystore/admin-gateway/internal/models"
)

// CategoryForm carries the create/update fields for a category.
type CategoryForm struct {
	Name        string
	Description string
	Thumbnail   *Upload
}

// Categories fetches the full admin category list.
func (c *Client) Categories(ctx context.Context, token string) ([]models.Category, error) {
	env, err := c.get(ctx, token, "/api/Category/Get-all-categories-admin", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Category](env, "/api/Category/Get-all-categories-admin")
}

// Category fetches a single category for the edit form.
func (c *Client) Category(ctx context.Context, token string, id int) (models.Category, error) {
	q := url.Values{"id": {strconv.Itoa(id)}}
	env, err := c.get(ctx, token, "/api/Category/Get-category-id", q)
	if err != nil {
		return models.Category{}, err
	}
	return decode[models.Category](env, "/api/Category/Get-category-id")
}

// CreateCategory submits a new category as a multipart form.
func (c *Client) CreateCategory(ctx context.Context, token string, form CategoryForm) error {
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
	_, err = c.call(ctx, token, http.MethodPost, "/api/Category/Create-new-category", nil, contentType, body)
	return err
}

// UpdateCategory submits changed category fields as a multipart form.
func (c *Client) UpdateCategory(ctx context.Context, token string, id int, form CategoryForm) error {
	f := newForm()
	f.field("categoryId", strconv.Itoa(id))
	f.field("name", form.Name)
	f.field("description", form.Description)
	if form.Thumbnail != nil {
		f.file("thumbNail", *form.Thumbnail)
	}
	contentType, body, err := f.close()
	if err != nil {
		return err
	}
	_, err = c.call(ctx, token, http.MethodPut, "/api/Category/Update-category", nil, contentType, body)
	return err
}

// DeleteCategory removes a category by id.
func (c *Client) DeleteCategory(ctx context.Context, token string, id int) error {
	q := url.Values{"categoryid": {strconv.Itoa(id)}}
	_, err := c.call(ctx, token, http.MethodDelete, "/api/Category/Delete-category-admin", q, "", nil)
	return err
}
