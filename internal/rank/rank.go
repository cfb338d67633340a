// Package rank derives a cosmetic rank tier from a player's aggregate
// stats. Classification is pure and recomputed on demand; tiers are never
// persisted.
package rank

import "github.com/fortstats/tracker/internal/fortnite"

// Tier is one of the six named rank tiers, ordered Common < Uncommon <
// Rare < Epic < Legendary < Mythic.
type Tier string

const (
	TierCommon    Tier = "Common"
	TierUncommon  Tier = "Uncommon"
	TierRare      Tier = "Rare"
	TierEpic      Tier = "Epic"
	TierLegendary Tier = "Legendary"
	TierMythic    Tier = "Mythic"
)

// Rank pairs a tier with its display accent token.
type Rank struct {
	Name   Tier   `json:"name"`
	Accent string `json:"accent"`
}

// Score computes the weighted rank score for a player.
func Score(stats fortnite.PlayerStats) float64 {
	return float64(stats.Wins)*5 + float64(stats.Kills)*0.5 + stats.WinRate*2 + stats.KD*10
}

// Classify maps a player's stats to a rank. Thresholds are strict: a
// score of exactly 1000 is Legendary, not Mythic.
func Classify(stats fortnite.PlayerStats) Rank {
	score := Score(stats)

	switch {
	case score > 1000:
		return Rank{Name: TierMythic, Accent: "from-purple-500 to-pink-600"}
	case score > 750:
		return Rank{Name: TierLegendary, Accent: "from-yellow-500 to-orange-600"}
	case score > 500:
		return Rank{Name: TierEpic, Accent: "from-indigo-500 to-purple-600"}
	case score > 300:
		return Rank{Name: TierRare, Accent: "from-blue-500 to-indigo-600"}
	case score > 150:
		return Rank{Name: TierUncommon, Accent: "from-green-500 to-teal-600"}
	default:
		return Rank{Name: TierCommon, Accent: "from-gray-500 to-gray-600"}
	}
}
