package cache

import (
	"context"
	"sync"
	"time"

	"github.com/beatystore/admin-gateway/internal/logging"
	"github.com/beatystore/admin-gateway/internal/models"
)

// ChartFetchFunc fetches the statistics bundle for one year.
type ChartFetchFunc func(ctx context.Context, token string, year int) (models.ChartData, error)

// Dashboard caches the statistics bundle for the selected year. Switching
// years always refetches; there is no memoization across years.
type Dashboard struct {
	tokens TokenSource
	fetch  ChartFetchFunc

	mu           sync.Mutex
	year         int
	data         models.ChartData
	populated    bool
	nextGen      uint64
	installedGen uint64
}

// NewDashboard creates the dashboard cache with the selected year defaulted
// to the current calendar year.
func NewDashboard(tokens TokenSource, fetch ChartFetchFunc) *Dashboard {
	return &Dashboard{tokens: tokens, fetch: fetch, year: time.Now().Year()}
}

// Year returns the currently selected year.
func (d *Dashboard) Year() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.year
}

// Data returns the current bundle; ok is false before the first successful
// fetch.
func (d *Dashboard) Data() (models.ChartData, int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data, d.year, d.populated
}

// SetYear updates the selected year and refetches its bundle.
func (d *Dashboard) SetYear(ctx context.Context, year int) error {
	d.mu.Lock()
	d.year = year
	d.mu.Unlock()
	return d.Refresh(ctx)
}

// Refresh refetches the bundle for the selected year. Idempotent for a
// given year: repeated calls simply overwrite. A fetch that resolves after
// the year changed, or after a newer fetch installed, is discarded.
func (d *Dashboard) Refresh(ctx context.Context) error {
	token := d.tokens.Token()
	if token == "" {
		return ErrNoToken
	}

	d.mu.Lock()
	d.nextGen++
	gen := d.nextGen
	year := d.year
	d.mu.Unlock()

	data, err := d.fetch(ctx, token, year)
	if err != nil {
		logging.Error("dashboard refresh failed", map[string]interface{}{
			"year":  year,
			"error": err.Error(),
		})
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen < d.installedGen || year != d.year {
		return nil
	}
	d.data = data
	d.populated = true
	d.installedGen = gen
	return nil
}

// WarmUp performs the deferred first fetch, skipping silently without a
// session.
func (d *Dashboard) WarmUp(ctx context.Context) error {
	if !d.tokens.Loaded() {
		return nil
	}
	err := d.Refresh(ctx)
	if err == ErrNoToken {
		return nil
	}
	return err
}
