package http

import (
	"net/http"

	"github.com/fortstats/tracker/internal/config"
	"github.com/fortstats/tracker/internal/leaderboard"
	"github.com/fortstats/tracker/internal/metrics"
	"github.com/fortstats/tracker/internal/profile"
	"github.com/fortstats/tracker/internal/roster"
)

func NewServer(controller *profile.Controller, r *roster.Roster, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Controller:     controller,
		Roster:         r,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		directive:      leaderboard.DefaultDirective(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/search", Chain(s.SearchHandler(), paramsMiddleware))
	s.Router.Handle("/player", Chain(s.PlayerHandler(), paramsMiddleware))
	s.Router.Handle("/profile", Chain(s.ProfileHandler(), paramsMiddleware))
	s.Router.Handle("/profile/set", Chain(s.SetProfileHandler(), paramsMiddleware))
	s.Router.Handle("/friends", Chain(s.LeaderboardHandler(), paramsMiddleware))
	s.Router.Handle("/friends/add", Chain(s.AddFriendHandler(), paramsMiddleware))
	s.Router.Handle("/friends/remove", Chain(s.RemoveFriendHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
