package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/beatystore/admin-gateway/internal/models"
)

// ProductCreateForm carries the multipart fields for Create-product-images.
// Variant and color selections travel as JSON-encoded string fields inside
// the form, matching the upstream's convention.
type ProductCreateForm struct {
	Name           string
	Description    string
	Price          float64
	Stock          int
	Discount       float64
	CategoryID     int
	BrandID        int
	Ingredient     string
	UserManual     string
	Variants       []models.VariantSelection
	Colors         []models.ColorSelection
	Images         []Upload
	MainImageIndex int
}

// ProductUpdateForm carries the multipart fields for Update-product.
// ExistingImageIDs lists the already-uploaded images to keep; new files are
// appended after them and MainImageIndex addresses the combined sequence.
type ProductUpdateForm struct {
	Name             string
	Description      string
	Price            float64
	Discount         float64
	Ingredient       string
	UserManual       string
	Variants         []models.VariantSelection
	Colors           []models.ColorSelection
	ExistingImageIDs []int
	NewImages        []Upload
	MainImageIndex   int
}

// Products fetches the full admin product list.
func (c *Client) Products(ctx context.Context, token string) ([]models.Product, error) {
	env, err := c.get(ctx, token, "/api/Product/Get-all-product-admin", nil)
	if err != nil {
		return nil, err
	}
	return decode[[]models.Product](env, "/api/Product/Get-all-product-admin")
}

// ProductDetail fetches the expanded edit-form record for one product.
func (c *Client) ProductDetail(ctx context.Context, token string, id int) (models.ProductDetail, error) {
	q := url.Values{"productId": {strconv.Itoa(id)}}
	env, err := c.get(ctx, token, "/api/Product/Get-product-update", q)
	if err != nil {
		return models.ProductDetail{}, err
	}
	return decode[models.ProductDetail](env, "/api/Product/Get-product-update")
}

// CreateProduct submits a new product with its images.
func (c *Client) CreateProduct(ctx context.Context, token string, form ProductCreateForm) error {
	variantsJSON, err := json.Marshal(form.Variants)
	if err != nil {
		return fmt.Errorf("encode variant selections: %w", err)
	}

	f := newForm()
	f.field("productName", form.Name)
	f.field("productDescription", form.Description)
	f.field("productPrice", formatFloat(form.Price))
	f.field("productStock", strconv.Itoa(form.Stock))
	f.field("productDiscount", formatFloat(form.Discount))
	f.field("categoryID", strconv.Itoa(form.CategoryID))
	f.field("brandID", strconv.Itoa(form.BrandID))
	f.field("productIngredient", form.Ingredient)
	f.field("productUserManual", form.UserManual)
	f.field("mainImageIndex", strconv.Itoa(form.MainImageIndex))
	f.field("variantTypesJson", string(variantsJSON))
	for _, img := range form.Images {
		f.file("files", img)
	}
	contentType, body, err := f.close()
	if err != nil {
		return err
	}
	_, err = c.call(ctx, token, http.MethodPost, "/api/Product/Create-product-images", nil, contentType, body)
	return err
}

// UpdateProduct submits changed product fields, kept image ids and new
// images.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int, form ProductUpdateForm) error {
	variantsJSON, err := json.Marshal(form.Variants)
	if err != nil {
		return fmt.Errorf("encode variant selections: %w", err)
	}
	colorsJSON, err := json.Marshal(form.Colors)
	if err != nil {
		return fmt.Errorf("encode color selections: %w", err)
	}

	keep := make([]string, len(form.ExistingImageIDs))
	for i, imgID := range form.ExistingImageIDs {
		keep[i] = strconv.Itoa(imgID)
	}

	f := newForm()
	f.field("ProductID", strconv.Itoa(id))
	f.field("ProductName", form.Name)
	f.field("ProductDescription", form.Description)
	f.field("ProductPrice", formatFloat(form.Price))
	f.field("ProductDiscount", formatFloat(form.Discount))
	f.field("ProductIngredient", form.Ingredient)
	f.field("ProductUserManual", form.UserManual)
	f.field("VariantID", string(variantsJSON))
	f.field("colorID", string(colorsJSON))
	f.field("ExistingImageIdsToKeep", strings.Join(keep, ","))
	f.field("MainImageIndex", strconv.Itoa(form.MainImageIndex))
	for _, img := range form.NewImages {
		f.file("Files", img)
	}
	contentType, body, err := f.close()
	if err != nil {
		return err
	}
	_, err = c.call(ctx, token, http.MethodPut, "/api/Product/Update-product", nil, contentType, body)
	return err
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	q := url.Values{"id": {strconv.Itoa(id)}}
	_, err := c.call(ctx, token, http.MethodDelete, "/api/Product/Delete-product/", q, "", nil)
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
