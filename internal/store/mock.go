package store

import (
	"sync"

	"github.com/fortstats/tracker/internal/fortnite"
)

// Mock is an in-memory implementation of the SnapshotStore interface for
// testing. It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	roster  []fortnite.PlayerStats
	profile *fortnite.PlayerStats

	// Error overrides for failure-path tests.
	SaveRosterErr  error
	SaveProfileErr error

	// Call counters
	RosterSaves  int
	ProfileSaves int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

var _ SnapshotStore = (*Mock)(nil)

func (m *Mock) LoadRoster() ([]fortnite.PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]fortnite.PlayerStats(nil), m.roster...), nil
}

func (m *Mock) SaveRoster(entries []fortnite.PlayerStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RosterSaves++
	if m.SaveRosterErr != nil {
		return m.SaveRosterErr
	}
	m.roster = append([]fortnite.PlayerStats(nil), entries...)
	return nil
}

func (m *Mock) LoadProfile() (*fortnite.PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil, nil
	}
	p := *m.profile
	return &p, nil
}

func (m *Mock) SaveProfile(profile *fortnite.PlayerStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProfileSaves++
	if m.SaveProfileErr != nil {
		return m.SaveProfileErr
	}
	if profile == nil {
		m.profile = nil
		return nil
	}
	p := *profile
	m.profile = &p
	return nil
}

func (m *Mock) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roster = nil
	m.profile = nil
	return nil
}
