// Package store persists the tracker's two state snapshots, the friends
// roster and the designated profile, as JSON blobs in SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fortstats/tracker/internal/fortnite"
)

// The slot keys are kept byte-compatible with the snapshots written by
// earlier versions of the tracker.
const (
	rosterKey  = "fortniteFriends"
	profileKey = "fortniteMyProfile"
)

// store handles all database operations for snapshots.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SnapshotStore backed by db.
func New(db *sql.DB) SnapshotStore {
	return &store{db: db}
}

var _ SnapshotStore = (*store)(nil)

// LoadRoster reads the persisted roster snapshot. A missing slot is an
// empty roster, not an error.
func (s *store) LoadRoster() ([]fortnite.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.get(rosterKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var entries []fortnite.PlayerStats
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to decode roster snapshot: %w", err)
	}
	return entries, nil
}

// SaveRoster rewrites the full roster snapshot.
func (s *store) SaveRoster(entries []fortnite.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries == nil {
		entries = []fortnite.PlayerStats{}
	}
	blob, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode roster snapshot: %w", err)
	}
	return s.put(rosterKey, string(blob))
}

// LoadProfile reads the persisted profile snapshot; nil when none is set.
func (s *store) LoadProfile() (*fortnite.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.get(profileKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var profile fortnite.PlayerStats
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile snapshot: %w", err)
	}
	return &profile, nil
}

// SaveProfile rewrites the profile snapshot. A nil profile clears the slot.
func (s *store) SaveProfile(profile *fortnite.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile == nil {
		_, err := s.db.Exec("DELETE FROM snapshots WHERE key = ?", profileKey)
		return err
	}
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile snapshot: %w", err)
	}
	return s.put(profileKey, string(blob))
}

// Clear drops both snapshots.
func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM snapshots")
	if err != nil {
		log.Error("Failed to clear snapshots", "error", err)
	}
	return err
}

func (s *store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return value, nil
}

func (s *store) put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;
	`, key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	log.Debug("Persisted snapshot", "key", key)
	return nil
}
