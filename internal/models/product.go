package models

// Product is the flat list-view record returned by Get-all-product-admin.
// Category and brand arrive pre-resolved as display names.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Discount float64 `json:"discount"`
}

// ProductVariant is a variant association on the product edit form.
type ProductVariant struct {
	ID    int     `json:"id"`
	Name  string  `json:"variantName"`
	Price float64 `json:"variantPrice"`
	Stock int     `json:"variantStock"`
}

// ProductColor is a color association on the product edit form.
type ProductColor struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	HexValue string `json:"hexaValue"`
}

// ProductImage is an already-uploaded image; exactly one per product is main.
type ProductImage struct {
	ID     int    `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

// ProductDetail is the expanded form returned by Get-product-update.
type ProductDetail struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Price          float64          `json:"price"`
	Stock          int              `json:"stock"`
	Discount       float64          `json:"discount"`
	CategoryID     int              `json:"categoryId"`
	BrandID        int              `json:"brandId"`
	Ingredient     string           `json:"ingredient"`
	UserManual     string           `json:"userManual"`
	Variants       []ProductVariant `json:"variants"`
	Colors         []ProductColor   `json:"colors"`
	ExistingImages []ProductImage   `json:"existingImages"`
}

// VariantSelection is the wire shape the upstream expects inside the
// JSON-encoded variantTypesJson multipart field.
type VariantSelection struct {
	VariantID    int     `json:"VariantID"`
	VariantPrice float64 `json:"VariantPrice"`
	VariantStock int     `json:"VariantStock"`
}

// ColorSelection is the wire shape inside the colorID multipart field.
type ColorSelection struct {
	ColorID int `json:"ColorID"`
}
