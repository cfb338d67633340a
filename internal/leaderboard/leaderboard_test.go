package leaderboard_test

import (
	"testing"

	"github.com/fortstats/tracker/internal/fortnite"
	"github.com/fortstats/tracker/internal/leaderboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_ByKillsDesc(t *testing.T) {
	entries := []fortnite.PlayerStats{
		{Username: "low", Kills: 10},
		{Username: "first50", Kills: 50},
		{Username: "second50", Kills: 50},
	}

	sorted := leaderboard.Order(entries, leaderboard.DefaultDirective())

	require.Len(t, sorted, 3)
	assert.Equal(t, "first50", sorted[0].Username)
	assert.Equal(t, "second50", sorted[1].Username, "ties keep input order")
	assert.Equal(t, "low", sorted[2].Username)
}

func TestOrder_IsStableInBothDirections(t *testing.T) {
	entries := []fortnite.PlayerStats{
		{Username: "a", Wins: 5},
		{Username: "b", Wins: 5},
		{Username: "c", Wins: 5},
	}

	for _, dir := range []leaderboard.Direction{leaderboard.Asc, leaderboard.Desc} {
		sorted := leaderboard.Order(entries, leaderboard.Directive{Key: leaderboard.SortByWins, Direction: dir})
		assert.Equal(t, "a", sorted[0].Username, "direction %s", dir)
		assert.Equal(t, "b", sorted[1].Username, "direction %s", dir)
		assert.Equal(t, "c", sorted[2].Username, "direction %s", dir)
	}
}

func TestOrder_Ascending(t *testing.T) {
	entries := []fortnite.PlayerStats{
		{Username: "high", KD: 3.5},
		{Username: "low", KD: 0.5},
	}

	sorted := leaderboard.Order(entries, leaderboard.Directive{Key: leaderboard.SortByKD, Direction: leaderboard.Asc})
	assert.Equal(t, "low", sorted[0].Username)
	assert.Equal(t, "high", sorted[1].Username)
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	entries := []fortnite.PlayerStats{
		{Username: "b", Kills: 1},
		{Username: "a", Kills: 2},
	}

	_ = leaderboard.Order(entries, leaderboard.DefaultDirective())
	assert.Equal(t, "b", entries[0].Username)
}

func TestToggle(t *testing.T) {
	d := leaderboard.DefaultDirective()
	assert.Equal(t, leaderboard.SortByKills, d.Key)
	assert.Equal(t, leaderboard.Desc, d.Direction)

	// Same key flips; flipping twice returns to the original direction.
	d = leaderboard.Toggle(d, leaderboard.SortByKills)
	assert.Equal(t, leaderboard.Asc, d.Direction)
	d = leaderboard.Toggle(d, leaderboard.SortByKills)
	assert.Equal(t, leaderboard.Desc, d.Direction)

	// A new key resets to descending even if the old direction was asc.
	d = leaderboard.Toggle(d, leaderboard.SortByKills)
	require.Equal(t, leaderboard.Asc, d.Direction)
	d = leaderboard.Toggle(d, leaderboard.SortByWinRate)
	assert.Equal(t, leaderboard.SortByWinRate, d.Key)
	assert.Equal(t, leaderboard.Desc, d.Direction)
}

func TestTopStats(t *testing.T) {
	entries := []fortnite.PlayerStats{
		{Username: "killer", Kills: 900, Wins: 10, KD: 1.2},
		{Username: "winner", Kills: 100, Wins: 80, KD: 1.5},
		{Username: "sniper", Kills: 300, Wins: 20, KD: 4.0},
	}

	leaders := leaderboard.TopStats(entries)
	require.NotNil(t, leaders)
	assert.Equal(t, "killer", leaders.TopKills.Username)
	assert.Equal(t, "winner", leaders.TopWins.Username)
	assert.Equal(t, "sniper", leaders.TopKD.Username)
}

func TestTopStats_TieGoesToEarlierEntry(t *testing.T) {
	entries := []fortnite.PlayerStats{
		{Username: "early", Kills: 50},
		{Username: "late", Kills: 50},
	}

	leaders := leaderboard.TopStats(entries)
	require.NotNil(t, leaders)
	assert.Equal(t, "early", leaders.TopKills.Username)
}

func TestTopStats_EmptyRoster(t *testing.T) {
	assert.Nil(t, leaderboard.TopStats(nil))
	assert.Nil(t, leaderboard.TopStats([]fortnite.PlayerStats{}))
}

func TestValidKey(t *testing.T) {
	assert.True(t, leaderboard.ValidKey(leaderboard.SortByKills))
	assert.True(t, leaderboard.ValidKey(leaderboard.SortByWinRate))
	assert.False(t, leaderboard.ValidKey(leaderboard.SortKey("level")))
}
