// Package roster owns the in-memory collection of tracked players.
package roster

import (
	"errors"
	"strings"
	"sync"

	"github.com/fortstats/tracker/internal/fortnite"
)

// ErrDuplicateMember is reported when adding a player whose username is
// already present (compared case-insensitively).
var ErrDuplicateMember = errors.New("player is already in the friends list")

// Roster is an insertion-ordered set of players, unique by username.
// It is safe for concurrent use.
type Roster struct {
	mu      sync.RWMutex
	entries []fortnite.PlayerStats
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{}
}

// Load replaces the roster contents with a persisted snapshot.
func (r *Roster) Load(entries []fortnite.PlayerStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]fortnite.PlayerStats(nil), entries...)
}

// Add appends a player to the end of the roster. It reports
// ErrDuplicateMember when an entry with the same username already exists,
// comparing case-insensitively, and leaves the roster unchanged.
func (r *Roster) Add(stats fortnite.PlayerStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if strings.EqualFold(e.Username, stats.Username) {
			return ErrDuplicateMember
		}
	}
	r.entries = append(r.entries, stats)
	return nil
}

// Remove deletes the entry whose username matches exactly. Removal is
// case-sensitive, matching the identifier as displayed; absent usernames
// are a no-op.
func (r *Roster) Remove(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.Username == username {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Contains reports whether an entry with exactly this username exists.
// Note the asymmetry with Add: membership checks are case-sensitive while
// add-dedup is not. This matches the behavior the UI gating relies on.
func (r *Roster) Contains(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Username == username {
			return true
		}
	}
	return false
}

// All returns a copy of the current entries in insertion order.
func (r *Roster) All() []fortnite.PlayerStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]fortnite.PlayerStats(nil), r.entries...)
}

// Len returns the number of tracked players.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
