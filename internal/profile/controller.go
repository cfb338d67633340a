// Package profile orchestrates player lookups and keeps the roster and
// the designated profile synchronized with durable storage.
package profile

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fortstats/tracker/internal/fortnite"
	"github.com/fortstats/tracker/internal/metrics"
	"github.com/fortstats/tracker/internal/roster"
	"github.com/fortstats/tracker/internal/store"
)

// Controller owns the search state machine and all roster/profile
// mutations. Failures never mutate state; every successful mutation is
// followed by a full snapshot write to the store.
type Controller struct {
	client  fortnite.StatsClient
	roster  *roster.Roster
	store   store.SnapshotStore
	metrics metrics.Metrics

	mu      sync.Mutex
	state   SearchState
	busy    bool
	viewed  *fortnite.PlayerStats
	profile *fortnite.PlayerStats
}

// New creates a controller in the Idle state with an empty roster view.
func New(client fortnite.StatsClient, r *roster.Roster, s store.SnapshotStore, m metrics.Metrics) *Controller {
	return &Controller{
		client:  client,
		roster:  r,
		store:   s,
		metrics: m,
		state:   StateIdle,
	}
}

// LoadSnapshots restores the roster and profile from the store. It is
// called once at startup, before the controller serves any request.
func (c *Controller) LoadSnapshots() error {
	entries, err := c.store.LoadRoster()
	if err != nil {
		return fmt.Errorf("failed to load roster snapshot: %w", err)
	}
	c.roster.Load(entries)

	profile, err := c.store.LoadProfile()
	if err != nil {
		return fmt.Errorf("failed to load profile snapshot: %w", err)
	}

	c.mu.Lock()
	c.profile = profile
	c.mu.Unlock()

	log.Info("Restored snapshots", "friends", len(entries), "has_profile", profile != nil)
	return nil
}

// Search looks up a player and stores the result as the viewed player.
// It never mutates the roster or the profile; a failed search leaves
// everything as it was.
func (c *Controller) Search(name string) (fortnite.PlayerStats, error) {
	if err := c.beginLookup(true); err != nil {
		return fortnite.PlayerStats{}, err
	}

	stats, err := c.lookup(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		c.state = StateFailed
		return fortnite.PlayerStats{}, err
	}
	c.state = StateFound
	c.viewed = &stats
	return stats, nil
}

// AddFriend looks up a player and appends it to the roster. A duplicate
// (any case) is reported via roster.ErrDuplicateMember with the roster
// left unchanged; lookup failures are wrapped to indicate the add failed.
func (c *Controller) AddFriend(name string) (fortnite.PlayerStats, error) {
	if err := c.beginLookup(false); err != nil {
		return fortnite.PlayerStats{}, err
	}
	defer c.endLookup()

	stats, err := c.lookup(name)
	if err != nil {
		return fortnite.PlayerStats{}, fmt.Errorf("couldn't add friend: %w", err)
	}

	if err := c.roster.Add(stats); err != nil {
		return fortnite.PlayerStats{}, err
	}
	c.metrics.IncFriendsAdded()
	log.Info("Added friend", "username", stats.Username)
	return stats, c.persist()
}

// SetAsProfile designates stats as the local user's own profile and makes
// sure it is also a roster member. Being both is expected, so a duplicate
// roster entry is not an error here.
func (c *Controller) SetAsProfile(stats fortnite.PlayerStats) error {
	if err := c.roster.Add(stats); err != nil && !errors.Is(err, roster.ErrDuplicateMember) {
		return err
	}

	c.mu.Lock()
	c.profile = &stats
	c.mu.Unlock()

	log.Info("Designated profile", "username", stats.Username)
	return c.persist()
}

// SetViewedAsProfile designates the currently viewed player as the profile.
func (c *Controller) SetViewedAsProfile() (fortnite.PlayerStats, error) {
	c.mu.Lock()
	viewed := c.viewed
	c.mu.Unlock()

	if viewed == nil {
		return fortnite.PlayerStats{}, ErrNoViewedPlayer
	}
	return *viewed, c.SetAsProfile(*viewed)
}

// RemoveFriend removes the entry with exactly this username. The profile
// is deliberately left alone even when the removed friend was the
// designated profile.
func (c *Controller) RemoveFriend(username string) error {
	before := c.roster.Len()
	c.roster.Remove(username)
	if c.roster.Len() < before {
		c.metrics.IncFriendsRemoved()
		log.Info("Removed friend", "username", username)
	}
	return c.persist()
}

// State returns the current search state.
func (c *Controller) State() SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Viewed returns a copy of the last successful search result, nil when
// nothing has been viewed yet.
func (c *Controller) Viewed() *fortnite.PlayerStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.viewed == nil {
		return nil
	}
	v := *c.viewed
	return &v
}

// Profile returns a copy of the designated profile, nil when unset.
func (c *Controller) Profile() *fortnite.PlayerStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile == nil {
		return nil
	}
	p := *c.profile
	return &p
}

// Clear wipes the roster, the profile and both persisted snapshots.
func (c *Controller) Clear() error {
	c.roster.Load(nil)

	c.mu.Lock()
	c.profile = nil
	c.viewed = nil
	c.state = StateIdle
	c.mu.Unlock()

	return c.store.Clear()
}

// beginLookup sets the busy flag, rejecting a second in-flight lookup.
func (c *Controller) beginLookup(search bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrLookupInFlight
	}
	c.busy = true
	if search {
		c.state = StateSearching
	}
	return nil
}

func (c *Controller) endLookup() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// lookup performs a single instrumented stats fetch.
func (c *Controller) lookup(name string) (fortnite.PlayerStats, error) {
	c.metrics.IncLookups()
	start := time.Now()
	stats, err := c.client.GetPlayerStats(name)
	c.metrics.ObserveLookupDuration(time.Since(start).Seconds())
	if err != nil {
		c.metrics.IncLookupFailures(failureKind(err))
		log.Warn("Lookup failed", "name", name, "error", err)
		return fortnite.PlayerStats{}, err
	}
	return stats, nil
}

// persist writes both snapshots back to the store. The slots are written
// independently; a roster write failure does not block the profile write.
func (c *Controller) persist() error {
	c.mu.Lock()
	profile := c.profile
	c.mu.Unlock()

	rosterErr := c.store.SaveRoster(c.roster.All())
	if rosterErr != nil {
		log.Error("Failed to persist roster snapshot", "error", rosterErr)
	}
	profileErr := c.store.SaveProfile(profile)
	if profileErr != nil {
		log.Error("Failed to persist profile snapshot", "error", profileErr)
	}
	if rosterErr != nil {
		return rosterErr
	}
	return profileErr
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, fortnite.ErrEmptyName):
		return "empty_input"
	case errors.Is(err, fortnite.ErrNotFound):
		return "not_found"
	case errors.Is(err, fortnite.ErrUnauthorized):
		return "unauthorized"
	default:
		return "transport"
	}
}
