package fortnite

import "sync"

// MockClient is a mock implementation of the StatsClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetPlayerStatsFunc func(name string) (PlayerStats, error)

	// Call records
	GetPlayerStatsCalls []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerStatsCalls = nil
}

func (m *MockClient) GetPlayerStats(name string) (PlayerStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetPlayerStatsCalls = append(m.GetPlayerStatsCalls, name)
	if m.GetPlayerStatsFunc != nil {
		return m.GetPlayerStatsFunc(name)
	}
	return PlayerStats{}, nil
}
