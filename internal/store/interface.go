package store

import "github.com/fortstats/tracker/internal/fortnite"

// SnapshotStore defines the interface for persisting the roster and
// profile snapshots. Each slot holds one full JSON-encoded value and is
// rewritten in full on every save; the two slots are independent.
type SnapshotStore interface {
	LoadRoster() ([]fortnite.PlayerStats, error)
	SaveRoster(entries []fortnite.PlayerStats) error
	LoadProfile() (*fortnite.PlayerStats, error)
	SaveProfile(profile *fortnite.PlayerStats) error
	Clear() error
}
