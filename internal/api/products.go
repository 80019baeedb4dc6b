package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/models"
	"github.com/beatystore/admin-gateway/internal/upstream"
)

// ListProducts serves the products screen from the cache.
func (h *Handler) ListProducts(c *gin.Context) {
	items := h.caches.Products.Items()
	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := items[:0]
		for _, p := range items {
			if strings.Contains(strings.ToLower(p.Name), search) {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}
	respondData(c, items)
}

// GetProduct fetches the expanded edit-form record, bypassing the cache.
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid product id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	detail, err := h.client.ProductDetail(ctx, h.session.Token(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, detail)
}

// CreateProduct forwards the add-product form: scalar fields, the
// JSON-encoded variant selections and the image files.
func (h *Handler) CreateProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("productName"))
	if name == "" {
		respondInvalid(c, "productName is required")
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("productPrice"), 64)
	if err != nil {
		respondInvalid(c, "productPrice must be numeric")
		return
	}
	stock, err := strconv.Atoi(c.DefaultPostForm("productStock", "0"))
	if err != nil {
		respondInvalid(c, "productStock must be numeric")
		return
	}
	discount, err := strconv.ParseFloat(c.DefaultPostForm("productDiscount", "0"), 64)
	if err != nil {
		respondInvalid(c, "productDiscount must be numeric")
		return
	}
	categoryID, err := strconv.Atoi(c.PostForm("categoryID"))
	if err != nil {
		respondInvalid(c, "categoryID is required")
		return
	}
	brandID, err := strconv.Atoi(c.PostForm("brandID"))
	if err != nil {
		respondInvalid(c, "brandID is required")
		return
	}
	mainImageIndex, err := strconv.Atoi(c.DefaultPostForm("mainImageIndex", "0"))
	if err != nil {
		respondInvalid(c, "mainImageIndex must be numeric")
		return
	}

	variants, ok := decodeVariantSelections(c, c.PostForm("variantTypesJson"))
	if !ok {
		return
	}
	images, ok := formUploads(c, "files")
	if !ok {
		return
	}

	form := upstream.ProductCreateForm{
		Name:           name,
		Description:    c.PostForm("productDescription"),
		Price:          price,
		Stock:          stock,
		Discount:       discount,
		CategoryID:     categoryID,
		BrandID:        brandID,
		Ingredient:     c.PostForm("productIngredient"),
		UserManual:     c.PostForm("productUserManual"),
		Variants:       variants,
		Images:         images,
		MainImageIndex: mainImageIndex,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.CreateProduct(ctx, h.session.Token(), form); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Products.Refresh)
	respondOK(c, "product created")
}

// UpdateProduct forwards the edit-product form, including which existing
// images to keep and any newly added files.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid product id")
		return
	}
	name := strings.TrimSpace(c.PostForm("ProductName"))
	if name == "" {
		respondInvalid(c, "ProductName is required")
		return
	}
	price, err := strconv.ParseFloat(c.PostForm("ProductPrice"), 64)
	if err != nil {
		respondInvalid(c, "ProductPrice must be numeric")
		return
	}
	discount, err := strconv.ParseFloat(c.DefaultPostForm("ProductDiscount", "0"), 64)
	if err != nil {
		respondInvalid(c, "ProductDiscount must be numeric")
		return
	}
	mainImageIndex, err := strconv.Atoi(c.DefaultPostForm("MainImageIndex", "0"))
	if err != nil {
		respondInvalid(c, "MainImageIndex must be numeric")
		return
	}

	variants, ok := decodeVariantSelections(c, c.PostForm("VariantID"))
	if !ok {
		return
	}
	colors, ok := decodeColorSelections(c, c.PostForm("colorID"))
	if !ok {
		return
	}
	keepIDs, ok := parseIDList(c, c.PostForm("ExistingImageIdsToKeep"))
	if !ok {
		return
	}
	newImages, ok := formUploads(c, "Files")
	if !ok {
		return
	}

	form := upstream.ProductUpdateForm{
		Name:             name,
		Description:      c.PostForm("ProductDescription"),
		Price:            price,
		Discount:         discount,
		Ingredient:       c.PostForm("ProductIngredient"),
		UserManual:       c.PostForm("ProductUserManual"),
		Variants:         variants,
		Colors:           colors,
		ExistingImageIDs: keepIDs,
		NewImages:        newImages,
		MainImageIndex:   mainImageIndex,
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.UpdateProduct(ctx, h.session.Token(), id, form); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Products.Refresh)
	respondOK(c, "product updated")
}

// DeleteProduct removes a product and refreshes the cache.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondInvalid(c, "invalid product id")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.client.DeleteProduct(ctx, h.session.Token(), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.refreshAfterMutation(c, h.caches.Products.Refresh)
	respondOK(c, "product deleted")
}

// RefreshProducts is the cache's manual refresh operation.
func (h *Handler) RefreshProducts(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.caches.Products.Refresh(ctx); err != nil {
		respondUpstreamError(c, err)
		return
	}
	respondData(c, h.caches.Products.Items())
}

// decodeVariantSelections validates the JSON-encoded variant field at the
// boundary instead of passing it through opaque.
func decodeVariantSelections(c *gin.Context, raw string) ([]models.VariantSelection, bool) {
	if raw == "" {
		return nil, true
	}
	var selections []models.VariantSelection
	if err := json.Unmarshal([]byte(raw), &selections); err != nil {
		respondInvalid(c, "malformed variant selections")
		return nil, false
	}
	return selections, true
}

func decodeColorSelections(c *gin.Context, raw string) ([]models.ColorSelection, bool) {
	if raw == "" {
		return nil, true
	}
	var selections []models.ColorSelection
	if err := json.Unmarshal([]byte(raw), &selections); err != nil {
		respondInvalid(c, "malformed color selections")
		return nil, false
	}
	return selections, true
}

// parseIDList parses the comma-separated kept-image id field.
func parseIDList(c *gin.Context, raw string) ([]int, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			respondInvalid(c, "malformed image id list")
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// formUploads reads every file under a repeated multipart field into
// memory.
func formUploads(c *gin.Context, field string) ([]upstream.Upload, bool) {
	mf, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all; treat as no files.
		return nil, true
	}
	headers := mf.File[field]
	uploads := make([]upstream.Upload, 0, len(headers))
	for _, fh := range headers {
		up, ok := readUpload(c, fh)
		if !ok {
			return nil, false
		}
		uploads = append(uploads, up)
	}
	return uploads, true
}

func readUpload(c *gin.Context, fh *multipart.FileHeader) (upstream.Upload, bool) {
	f, err := fh.Open()
	if err != nil {
		respondInvalid(c, "unreadable file "+fh.Filename)
		return upstream.Upload{}, false
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		respondInvalid(c, "unreadable file "+fh.Filename)
		return upstream.Upload{}, false
	}
	return upstream.Upload{Filename: fh.Filename, Content: bytes.NewReader(content)}, true
}
