package fortnite

// StatsClient defines the interface for looking up player statistics.
// This allows for mock implementations to be used in tests.
type StatsClient interface {
	GetPlayerStats(name string) (PlayerStats, error)
}
