package models

// Brand represents a product brand as returned by the admin list endpoint.
type Brand struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// Category represents a product category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// Variant represents a size/unit option (e.g. a volume in ml) that products
// can be offered in. The upstream stores the size in the name field.
type Variant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Color represents a selectable product color.
type Color struct {
	ID       int    `json:"id"`
	HexValue string `json:"hexaValue"`
	Name     string `json:"name"`
}
