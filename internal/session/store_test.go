package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/beatystore/admin-gateway/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	rec := Record{
		Token: "tok-abc",
		User: models.Profile{
			UserID:   7,
			UserName: "admin",
			Email:    "admin@example.com",
			Role:     models.RoleAdmin,
		},
		SavedAt: time.Now(),
	}
	if err := store.Save(rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Token != "tok-abc" || got.User.UserName != "admin" || got.User.Role != models.RoleAdmin {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestStore_SaveOverwritesSingleSlot(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(Record{Token: "first", SavedAt: time.Now()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(Record{Token: "second", SavedAt: time.Now()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Token != "second" {
		t.Fatalf("expected the later record, got %q", got.Token)
	}
}

func TestStore_LoadWithoutRecord(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load(); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestStore_ClearRemovesRecord(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(Record{Token: "tok", SavedAt: time.Now()}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := store.Load(); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}
