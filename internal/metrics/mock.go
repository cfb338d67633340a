package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu              sync.Mutex
	lookups         int
	lookupFailures  map[string]int
	friendsAdded    int
	friendsRemoved  int
	lookupDurations []float64
	startupTime     float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		lookupFailures:  make(map[string]int),
		lookupDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncLookups() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
}

func (m *Mock) IncLookupFailures(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupFailures[kind]++
}

func (m *Mock) IncFriendsAdded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.friendsAdded++
}

func (m *Mock) IncFriendsRemoved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.friendsRemoved++
}

func (m *Mock) ObserveLookupDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupDurations = append(m.lookupDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Lookups returns the number of times IncLookups was called.
func (m *Mock) Lookups() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups
}

// LookupFailures returns the number of failures recorded for a kind.
func (m *Mock) LookupFailures(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookupFailures[kind]
}

// FriendsAdded returns the number of times IncFriendsAdded was called.
func (m *Mock) FriendsAdded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.friendsAdded
}

// FriendsRemoved returns the number of times IncFriendsRemoved was called.
func (m *Mock) FriendsRemoved() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.friendsRemoved
}
