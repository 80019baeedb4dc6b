package cache

import (
	"context"

	"github.com/beatystore/admin-gateway/internal/models"
	"github.com/beatystore/admin-gateway/internal/upstream"
)

// Registry bundles the five reference-data caches and the dashboard cache,
// built once at the composition root and injected into the handlers.
type Registry struct {
	Brands     *Cache[models.Brand]
	Categories *Cache[models.Category]
	Variants   *Cache[models.Variant]
	Colors     *Cache[models.Color]
	Products   *Cache[models.Product]
	Dashboard  *Dashboard
}

// NewRegistry wires every cache to its upstream list endpoint.
func NewRegistry(tokens TokenSource, client *upstream.Client) *Registry {
	return &Registry{
		Brands:     New("brands", tokens, client.Brands),
		Categories: New("categories", tokens, client.Categories),
		Variants:   New("variants", tokens, client.Variants),
		Colors:     New("colors", tokens, client.Colors),
		Products:   New("products", tokens, client.Products),
		Dashboard:  NewDashboard(tokens, client.OrderChart),
	}
}

// WarmUp populates every cache when a session is already present. Failures
// are logged by the caches themselves; a cold cache just stays empty until
// its next refresh.
func (r *Registry) WarmUp(ctx context.Context) {
	_ = r.Brands.WarmUp(ctx)
	_ = r.Categories.WarmUp(ctx)
	_ = r.Variants.WarmUp(ctx)
	_ = r.Colors.WarmUp(ctx)
	_ = r.Products.WarmUp(ctx)
	_ = r.Dashboard.WarmUp(ctx)
}
