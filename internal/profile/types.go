package profile

import "errors"

// SearchState is the lifecycle of the active player search.
type SearchState string

const (
	StateIdle      SearchState = "IDLE"
	StateSearching SearchState = "SEARCHING"
	StateFound     SearchState = "FOUND"
	StateFailed    SearchState = "FAILED"
)

var (
	// ErrLookupInFlight is returned when a lookup is requested while
	// another one is still outstanding on the same controller.
	ErrLookupInFlight = errors.New("a lookup is already in progress")

	// ErrNoViewedPlayer is returned when designating a profile with no
	// successful search result to designate.
	ErrNoViewedPlayer = errors.New("no player is currently viewed")
)
