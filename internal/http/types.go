package http

import (
	"net/http"
	"sync"

	"github.com/fortstats/tracker/internal/config"
	"github.com/fortstats/tracker/internal/leaderboard"
	"github.com/fortstats/tracker/internal/metrics"
	"github.com/fortstats/tracker/internal/profile"
	"github.com/fortstats/tracker/internal/rank"
	"github.com/fortstats/tracker/internal/roster"
)

type Server struct {
	Controller     *profile.Controller
	Roster         *roster.Roster
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux

	// The active sort directive is surface state: it lives with the
	// dashboard, not with the roster.
	mu        sync.Mutex
	directive leaderboard.Directive
}

// playerView is a stat record decorated for display.
type playerView struct {
	Username      string    `json:"username"`
	Level         int       `json:"level"`
	Kills         int       `json:"kills"`
	Wins          int       `json:"wins"`
	KD            float64   `json:"kd"`
	MatchesPlayed int       `json:"matchesPlayed"`
	WinRate       float64   `json:"winRate"`
	Rank          rank.Rank `json:"rank"`
	IsMyProfile   bool      `json:"isMyProfile"`
	InFriends     bool      `json:"inFriends"`
}

// leaderboardResponse is the payload served for the friends leaderboard.
type leaderboardResponse struct {
	Directive leaderboard.Directive `json:"directive"`
	Leaders   *leadersView          `json:"leaders,omitempty"`
	Entries   []playerView          `json:"entries"`
}

type leadersView struct {
	TopKills playerView `json:"topKills"`
	TopWins  playerView `json:"topWins"`
	TopKD    playerView `json:"topKD"`
}

type errorResponse struct {
	Error string `json:"error"`
}
