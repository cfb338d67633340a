package roster_test

import (
	"testing"

	"github.com/fortstats/tracker/internal/fortnite"
	"github.com/fortstats/tracker/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_DedupsCaseInsensitively(t *testing.T) {
	r := roster.New()

	require.NoError(t, r.Add(fortnite.PlayerStats{Username: "Ninja"}))
	err := r.Add(fortnite.PlayerStats{Username: "ninja"})
	assert.ErrorIs(t, err, roster.ErrDuplicateMember)
	assert.Equal(t, 1, r.Len(), "duplicate add must leave exactly one entry")
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	r := roster.New()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, r.Add(fortnite.PlayerStats{Username: name}))
	}

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "charlie", all[0].Username)
	assert.Equal(t, "alpha", all[1].Username)
	assert.Equal(t, "bravo", all[2].Username)
}

func TestRemove_ThenAddRestoresMembership(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add(fortnite.PlayerStats{Username: "Ninja"}))

	r.Remove("Ninja")
	assert.False(t, r.Contains("Ninja"))
	assert.Zero(t, r.Len())

	require.NoError(t, r.Add(fortnite.PlayerStats{Username: "Ninja"}))
	assert.True(t, r.Contains("Ninja"))
}

func TestRemove_IsCaseSensitiveAndNoOpWhenAbsent(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add(fortnite.PlayerStats{Username: "Ninja"}))

	r.Remove("ninja")
	assert.Equal(t, 1, r.Len(), "removal matches the displayed identifier exactly")

	r.Remove("nobody")
	assert.Equal(t, 1, r.Len())
}

func TestContains_IsCaseSensitive(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add(fortnite.PlayerStats{Username: "Ninja"}))

	assert.True(t, r.Contains("Ninja"))
	assert.False(t, r.Contains("ninja"))
}

func TestAll_ReturnsACopy(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add(fortnite.PlayerStats{Username: "Ninja", Kills: 1}))

	all := r.All()
	all[0].Username = "mutated"

	assert.True(t, r.Contains("Ninja"), "mutating the returned slice must not affect the roster")
}

func TestLoad_ReplacesContents(t *testing.T) {
	r := roster.New()
	require.NoError(t, r.Add(fortnite.PlayerStats{Username: "old"}))

	r.Load([]fortnite.PlayerStats{{Username: "a"}, {Username: "b"}})

	assert.Equal(t, 2, r.Len())
	assert.False(t, r.Contains("old"))
	assert.True(t, r.Contains("a"))
}
