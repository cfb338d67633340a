package fortnite

import "errors"

var (
	// ErrEmptyName is returned when the looked-up name is empty after
	// trimming. No request is made in that case.
	ErrEmptyName = errors.New("player name must not be empty")

	// ErrNotFound is returned when the stats source has no data for the
	// requested player.
	ErrNotFound = errors.New("player not found")

	// ErrUnauthorized is returned when the stats source rejects the API key.
	ErrUnauthorized = errors.New("stats API rejected the API key")
)
