package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/beatystore/admin-gateway/internal/models"
)

// storeKey is the single slot the session record lives under. The record
// carries the role; roles never derive storage keys.
const storeKey = "current"

// ErrNoSession is returned when no session record has been persisted.
var ErrNoSession = errors.New("no persisted session")

// Record is the persisted session: the upstream bearer token and the
// operator profile it belongs to.
type Record struct {
	Token   string
	User    models.Profile
	SavedAt time.Time
}

// Store persists the session record in a local sqlite database, the
// gateway's stand-in for the browser's persistent storage.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the sqlite file and ensures the
// schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping session db: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS session (
		key TEXT PRIMARY KEY,
		token TEXT NOT NULL,
		user_json TEXT NOT NULL,
		saved_at DATETIME NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create session schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save upserts the session record under the constant key.
func (s *Store) Save(rec Record) error {
	userJSON, err := json.Marshal(rec.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO session (key, token, user_json, saved_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET token = excluded.token, user_json = excluded.user_json, saved_at = excluded.saved_at`,
		storeKey, rec.Token, string(userJSON), rec.SavedAt.UTC())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads the persisted record, or ErrNoSession when none exists.
func (s *Store) Load() (Record, error) {
	var rec Record
	var userJSON string
	err := s.db.QueryRow(
		`SELECT token, user_json, saved_at FROM session WHERE key = ?`, storeKey,
	).Scan(&rec.Token, &userJSON, &rec.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNoSession
	}
	if err != nil {
		return Record{}, fmt.Errorf("load session: %w", err)
	}
	if err := json.Unmarshal([]byte(userJSON), &rec.User); err != nil {
		return Record{}, fmt.Errorf("decode session user: %w", err)
	}
	return rec, nil
}

// Clear removes any persisted record.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session WHERE key = ?`, storeKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
