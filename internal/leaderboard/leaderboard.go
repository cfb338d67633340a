// Package leaderboard turns roster contents into display-ready orderings.
// Everything here is a pure function over a snapshot of entries; callers
// recompute whenever they need fresh output.
package leaderboard

import (
	"sort"

	"github.com/fortstats/tracker/internal/fortnite"
)

// SortKey names a sortable leaderboard metric.
type SortKey string

const (
	SortByKills   SortKey = "kills"
	SortByWins    SortKey = "wins"
	SortByWinRate SortKey = "winRate"
	SortByKD      SortKey = "kd"
)

// Direction is the sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Directive is the active (key, direction) pair controlling order.
type Directive struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// DefaultDirective is the initial sort: kills, descending.
func DefaultDirective() Directive {
	return Directive{Key: SortByKills, Direction: Desc}
}

// ValidKey reports whether k names a sortable metric.
func ValidKey(k SortKey) bool {
	switch k {
	case SortByKills, SortByWins, SortByWinRate, SortByKD:
		return true
	}
	return false
}

// Toggle applies a user sort request to the current directive: selecting
// the key already active flips the direction, selecting a new key resets
// to descending.
func Toggle(current Directive, key SortKey) Directive {
	if current.Key == key && current.Direction == Desc {
		return Directive{Key: key, Direction: Asc}
	}
	return Directive{Key: key, Direction: Desc}
}

// Order returns the entries sorted per the directive. The sort is stable:
// entries with equal key values keep their relative input order. The
// input slice is not modified.
func Order(entries []fortnite.PlayerStats, directive Directive) []fortnite.PlayerStats {
	sorted := append([]fortnite.PlayerStats(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := metric(sorted[i], directive.Key), metric(sorted[j], directive.Key)
		if directive.Direction == Asc {
			return a < b
		}
		return a > b
	})
	return sorted
}

// Leaders holds the top entry for each headline metric.
type Leaders struct {
	TopKills fortnite.PlayerStats `json:"topKills"`
	TopWins  fortnite.PlayerStats `json:"topWins"`
	TopKD    fortnite.PlayerStats `json:"topKD"`
}

// TopStats computes the per-metric leaders independently. Ties go to the
// earlier entry, the same rule the stable descending sort applies. Returns
// nil when there are no entries.
func TopStats(entries []fortnite.PlayerStats) *Leaders {
	if len(entries) == 0 {
		return nil
	}
	return &Leaders{
		TopKills: top(entries, SortByKills),
		TopWins:  top(entries, SortByWins),
		TopKD:    top(entries, SortByKD),
	}
}

func top(entries []fortnite.PlayerStats, key SortKey) fortnite.PlayerStats {
	best := entries[0]
	for _, e := range entries[1:] {
		if metric(e, key) > metric(best, key) {
			best = e
		}
	}
	return best
}

func metric(s fortnite.PlayerStats, key SortKey) float64 {
	switch key {
	case SortByWins:
		return float64(s.Wins)
	case SortByWinRate:
		return s.WinRate
	case SortByKD:
		return s.KD
	default:
		return float64(s.Kills)
	}
}
