// Package cache holds the reference-data caches: one full-list snapshot per
// entity, replaced wholesale by Refresh and never patched element-wise. The
// authoritative list is always the result of the last successful fetch.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/beatystore/admin-gateway/internal/logging"
)

// ErrNoToken is returned by Refresh when no session token is available; the
// fetch is skipped entirely rather than attempted unauthenticated.
var ErrNoToken = errors.New("no session token")

// TokenSource supplies the bearer token for cache fetches. Satisfied by
// session.Manager.
type TokenSource interface {
	Token() string
	Loaded() bool
}

// FetchFunc fetches the full entity collection from the upstream.
type FetchFunc[T any] func(ctx context.Context, token string) ([]T, error)

// Cache is a full-list snapshot of one entity type. A failed refresh leaves
// the previous snapshot in place (stale-but-present); the list is empty only
// before the first successful fetch. A generation counter keeps a superseded
// in-flight refresh from overwriting a newer result.
type Cache[T any] struct {
	name   string
	tokens TokenSource
	fetch  FetchFunc[T]

	mu           sync.Mutex
	items        []T
	populated    bool
	lastRefresh  time.Time
	nextGen      uint64
	installedGen uint64
}

// New creates a cache for one entity type. name appears in log lines only.
func New[T any](name string, tokens TokenSource, fetch FetchFunc[T]) *Cache[T] {
	return &Cache[T]{name: name, tokens: tokens, fetch: fetch}
}

// Items returns a snapshot copy of the current list; empty before the first
// successful refresh.
func (c *Cache[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Populated reports whether at least one refresh has succeeded.
func (c *Cache[T]) Populated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.populated
}

// LastRefresh returns when the current snapshot was installed.
func (c *Cache[T]) LastRefresh() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRefresh
}

// Refresh fetches the full collection and replaces the list. On any failure
// the list keeps its previous value. Concurrent refreshes may race on the
// wire, but only the newest started one installs its result.
func (c *Cache[T]) Refresh(ctx context.Context) error {
	token := c.tokens.Token()
	if token == "" {
		return ErrNoToken
	}

	c.mu.Lock()
	c.nextGen++
	gen := c.nextGen
	c.mu.Unlock()

	items, err := c.fetch(ctx, token)
	if err != nil {
		logging.Error("cache refresh failed", map[string]interface{}{
			"cache": c.name,
			"error": err.Error(),
		})
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.installedGen {
		// A refresh that started later already installed its result.
		logging.Warn("cache refresh superseded", map[string]interface{}{"cache": c.name})
		return nil
	}
	c.items = items
	c.populated = true
	c.installedGen = gen
	c.lastRefresh = time.Now()
	logging.Info("cache refreshed", map[string]interface{}{
		"cache": c.name,
		"count": len(items),
	})
	return nil
}

// WarmUp performs the deferred first fetch: a no-op until the session is
// hydrated and a token is present.
func (c *Cache[T]) WarmUp(ctx context.Context) error {
	if !c.tokens.Loaded() {
		return nil
	}
	err := c.Refresh(ctx)
	if err == ErrNoToken {
		return nil
	}
	return err
}
