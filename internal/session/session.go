// Package session owns the gateway's single operator session: the upstream
// bearer token and the profile it belongs to, hydrated from local storage at
// startup and persisted on every change.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/beatystore/admin-gateway/internal/logging"
	"github.com/beatystore/admin-gateway/internal/models"
	"github.com/beatystore/admin-gateway/internal/upstream"
)

// Manager holds the active session. All accessors are safe for concurrent
// use by the HTTP handlers.
type Manager struct {
	store  *Store
	client *upstream.Client

	mu     sync.RWMutex
	token  string
	user   models.Profile
	active bool
	loaded bool
}

// NewManager wires the manager to its persistence and the upstream client
// used for token validation and profile refresh.
func NewManager(store *Store, client *upstream.Client) *Manager {
	return &Manager{store: store, client: client}
}

// Hydrate loads the persisted record into memory. It runs once at startup,
// before the server accepts requests, so consumers never observe a
// half-hydrated session. A missing record is not an error.
func (m *Manager) Hydrate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.store.Load()
	if err == ErrNoSession {
		m.loaded = true
		return nil
	}
	if err != nil {
		m.loaded = true
		return err
	}

	m.token = rec.Token
	m.user = rec.User
	m.active = true
	m.loaded = true
	logging.Info("session hydrated", map[string]interface{}{
		"user": rec.User.UserName,
		"role": rec.User.Role,
	})
	return nil
}

// Loaded reports whether hydration has completed. Caches defer their first
// fetch until this is true.
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Active reports whether a session with an unexpired token is present.
func (m *Manager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active && !tokenExpired(m.token)
}

// Token returns the bearer token, or the empty string when logged out.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.active {
		return ""
	}
	return m.token
}

// User returns the operator profile; ok is false when logged out.
func (m *Manager) User() (models.Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.active
}

// Login validates the supplied token against the upstream, then stores and
// persists the session as one record.
func (m *Manager) Login(ctx context.Context, token string) (models.Profile, error) {
	profile, err := m.client.UserInfo(ctx, token)
	if err != nil {
		return models.Profile{}, fmt.Errorf("validate token: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = profile
	m.active = true

	if err := m.store.Save(Record{Token: token, User: profile, SavedAt: time.Now()}); err != nil {
		// The in-memory session stands; persistence failure only costs the
		// next restart its hydration.
		logging.Error("persist session failed", map[string]interface{}{"error": err.Error()})
	}
	logging.Info("session login", map[string]interface{}{
		"user": profile.UserName,
		"role": profile.Role,
	})
	return profile, nil
}

// Logout clears the in-memory session and every persisted slot.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = models.Profile{}
	m.active = false

	if err := m.store.Clear(); err != nil {
		return err
	}
	logging.Info("session logout", nil)
	return nil
}

// RefreshUser re-fetches the operator profile using the passed token, or the
// stored one when empty. A failed refresh logs and leaves the session
// unchanged; there is no retry.
func (m *Manager) RefreshUser(ctx context.Context, customToken string) error {
	token := customToken
	if token == "" {
		token = m.Token()
	}
	if token == "" {
		return nil
	}

	profile, err := m.client.UserInfo(ctx, token)
	if err != nil {
		logging.Error("refresh user failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = profile
	if err := m.store.Save(Record{Token: m.token, User: profile, SavedAt: time.Now()}); err != nil {
		logging.Error("persist session failed", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; the upstream is the authority on validity, this only spares a
// round trip for tokens that are already dead. Tokens without an exp claim,
// or that are not JWTs at all, are passed through to the upstream.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
