package profile_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fortstats/tracker/internal/fortnite"
	"github.com/fortstats/tracker/internal/metrics"
	"github.com/fortstats/tracker/internal/profile"
	"github.com/fortstats/tracker/internal/roster"
	"github.com/fortstats/tracker/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ninjaStats() fortnite.PlayerStats {
	return fortnite.PlayerStats{Username: "Ninja", Kills: 500, Wins: 100, KD: 2.0, WinRate: 30.0, Level: 50}
}

func setup(t *testing.T) (*profile.Controller, *fortnite.MockClient, *roster.Roster, *store.Mock, *metrics.Mock) {
	t.Helper()
	client := fortnite.NewMockClient()
	r := roster.New()
	s := store.NewMock()
	m := metrics.NewMock()
	return profile.New(client, r, s, m), client, r, s, m
}

func TestSearch_Success(t *testing.T) {
	c, client, r, s, m := setup(t)
	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		return ninjaStats(), nil
	}

	stats, err := c.Search("Ninja")
	require.NoError(t, err)

	assert.Equal(t, "Ninja", stats.Username)
	assert.Equal(t, profile.StateFound, c.State())
	require.NotNil(t, c.Viewed())
	assert.Equal(t, "Ninja", c.Viewed().Username)

	// Searching must not touch the roster, the profile, or the store.
	assert.Zero(t, r.Len())
	assert.Nil(t, c.Profile())
	assert.Zero(t, s.RosterSaves)
	assert.Zero(t, s.ProfileSaves)
	assert.Equal(t, 1, m.Lookups())
}

func TestSearch_Failure(t *testing.T) {
	c, client, r, s, m := setup(t)
	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		return fortnite.PlayerStats{}, fmt.Errorf("%w: %s", fortnite.ErrNotFound, name)
	}

	_, err := c.Search("nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, fortnite.ErrNotFound)
	assert.Equal(t, profile.StateFailed, c.State())
	assert.Nil(t, c.Viewed())
	assert.Zero(t, r.Len())
	assert.Zero(t, s.RosterSaves)
	assert.Equal(t, 1, m.LookupFailures("not_found"))
}

func TestSearch_RejectsConcurrentLookup(t *testing.T) {
	c, client, _, _, _ := setup(t)

	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		once.Do(func() {
			close(started)
			<-release
		})
		return ninjaStats(), nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := c.Search("Ninja")
		done <- err
	}()

	<-started
	_, err := c.Search("Ninja")
	assert.ErrorIs(t, err, profile.ErrLookupInFlight)
	_, err = c.AddFriend("Ninja")
	assert.ErrorIs(t, err, profile.ErrLookupInFlight)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("first lookup never completed")
	}

	// Once the outstanding lookup finishes, new lookups are accepted.
	_, err = c.Search("Ninja")
	require.NoError(t, err)
}

func TestAddFriend_Success(t *testing.T) {
	c, client, r, s, m := setup(t)
	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		return ninjaStats(), nil
	}

	stats, err := c.AddFriend("Ninja")
	require.NoError(t, err)
	assert.Equal(t, "Ninja", stats.Username)
	assert.True(t, r.Contains("Ninja"))

	// Both snapshots are persisted after the mutation.
	assert.Equal(t, 1, s.RosterSaves)
	assert.Equal(t, 1, s.ProfileSaves)
	assert.Equal(t, 1, m.FriendsAdded())

	saved, err := s.LoadRoster()
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Ninja", saved[0].Username)
}

func TestAddFriend_DuplicateAnyCase(t *testing.T) {
	c, client, r, s, _ := setup(t)
	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		return fortnite.PlayerStats{Username: name}, nil
	}

	_, err := c.AddFriend("Ninja")
	require.NoError(t, err)
	savesBefore := s.RosterSaves

	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		return fortnite.PlayerStats{Username: "ninja"}, nil
	}
	_, err = c.AddFriend("ninja")
	assert.ErrorIs(t, err, roster.ErrDuplicateMember)
	assert.Equal(t, 1, r.Len(), "duplicate add must leave the roster unchanged")
	assert.Equal(t, savesBefore, s.RosterSaves, "a rejected add must not persist")
}

func TestAddFriend_LookupFailure(t *testing.T) {
	c, client, r, _, _ := setup(t)
	lookupErr := errors.New("connection refused")
	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		return fortnite.PlayerStats{}, lookupErr
	}

	_, err := c.AddFriend("Ninja")
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
	assert.Contains(t, err.Error(), "couldn't add friend")
	assert.Zero(t, r.Len())
}

func TestSetAsProfile(t *testing.T) {
	c, _, r, s, _ := setup(t)

	require.NoError(t, c.SetAsProfile(ninjaStats()))

	require.NotNil(t, c.Profile())
	assert.Equal(t, "Ninja", c.Profile().Username)
	assert.True(t, r.Contains("Ninja"), "the profile is also added to the roster")
	assert.Equal(t, 1, s.ProfileSaves)
}

func TestSetAsProfile_SwallowsDuplicate(t *testing.T) {
	c, _, r, _, _ := setup(t)
	require.NoError(t, r.Add(ninjaStats()))

	require.NoError(t, c.SetAsProfile(ninjaStats()))
	assert.Equal(t, 1, r.Len())
	require.NotNil(t, c.Profile())
}

func TestSetViewedAsProfile(t *testing.T) {
	c, client, _, _, _ := setup(t)

	_, err := c.SetViewedAsProfile()
	assert.ErrorIs(t, err, profile.ErrNoViewedPlayer)

	client.GetPlayerStatsFunc = func(name string) (fortnite.PlayerStats, error) {
		return ninjaStats(), nil
	}
	_, err = c.Search("Ninja")
	require.NoError(t, err)

	stats, err := c.SetViewedAsProfile()
	require.NoError(t, err)
	assert.Equal(t, "Ninja", stats.Username)
	require.NotNil(t, c.Profile())
	assert.Equal(t, "Ninja", c.Profile().Username)
}

func TestRemoveFriend_KeepsProfile(t *testing.T) {
	c, _, r, s, m := setup(t)
	require.NoError(t, c.SetAsProfile(ninjaStats()))

	require.NoError(t, c.RemoveFriend("Ninja"))

	assert.False(t, r.Contains("Ninja"))
	require.NotNil(t, c.Profile(), "removing the friend must not clear the profile")
	assert.Equal(t, "Ninja", c.Profile().Username)
	assert.Equal(t, 1, m.FriendsRemoved())

	saved, err := s.LoadRoster()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestRemoveFriend_AbsentIsNoOp(t *testing.T) {
	c, _, _, _, m := setup(t)

	require.NoError(t, c.RemoveFriend("nobody"))
	assert.Zero(t, m.FriendsRemoved())
}

func TestLoadSnapshots(t *testing.T) {
	c, _, r, s, _ := setup(t)
	require.NoError(t, s.SaveRoster([]fortnite.PlayerStats{{Username: "a"}, {Username: "b"}}))
	require.NoError(t, s.SaveProfile(&fortnite.PlayerStats{Username: "a"}))

	require.NoError(t, c.LoadSnapshots())

	assert.Equal(t, 2, r.Len())
	require.NotNil(t, c.Profile())
	assert.Equal(t, "a", c.Profile().Username)
}

func TestClear(t *testing.T) {
	c, _, r, s, _ := setup(t)
	require.NoError(t, c.SetAsProfile(ninjaStats()))

	require.NoError(t, c.Clear())

	assert.Zero(t, r.Len())
	assert.Nil(t, c.Profile())
	assert.Equal(t, profile.StateIdle, c.State())

	saved, err := s.LoadRoster()
	require.NoError(t, err)
	assert.Empty(t, saved)
}
