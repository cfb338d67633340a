package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/fortstats/tracker/internal/fortnite"
	"github.com/fortstats/tracker/internal/leaderboard"
	"github.com/fortstats/tracker/internal/profile"
	"github.com/fortstats/tracker/internal/rank"
	"github.com/fortstats/tracker/internal/roster"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// SearchHandler looks up a player and returns it as the viewed player.
// The roster and profile are never touched by a search.
func (s *Server) SearchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")

		stats, err := s.Controller.Search(name)
		if err != nil {
			s.writeLookupError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, s.decorate(stats))
	}
}

// PlayerHandler returns the currently viewed player, if any.
func (s *Server) PlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewed := s.Controller.Viewed()
		if viewed == nil {
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no player viewed yet"})
			return
		}
		s.writeJSON(w, http.StatusOK, s.decorate(*viewed))
	}
}

// ProfileHandler returns the designated profile, if any.
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := s.Controller.Profile()
		if p == nil {
			s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no profile set"})
			return
		}
		s.writeJSON(w, http.StatusOK, s.decorate(*p))
	}
}

// SetProfileHandler designates the viewed player as "my profile" and
// makes sure it is part of the friends roster.
func (s *Server) SetProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Controller.SetViewedAsProfile()
		if err != nil {
			if errors.Is(err, profile.ErrNoViewedPlayer) {
				s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "search for a player first"})
				return
			}
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save profile"})
			return
		}
		s.writeJSON(w, http.StatusOK, s.decorate(stats))
	}
}

// LeaderboardHandler serves the sorted friends leaderboard plus the
// per-metric leaders. Passing ?sort=<key> applies the toggle semantics:
// reselecting the active key flips the direction, a new key resets to
// descending.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sortParam := r.URL.Query().Get("sort"); sortParam != "" {
			key := leaderboard.SortKey(sortParam)
			if !leaderboard.ValidKey(key) {
				s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown sort key %q", sortParam)})
				return
			}
			s.mu.Lock()
			s.directive = leaderboard.Toggle(s.directive, key)
			s.mu.Unlock()
		}

		s.mu.Lock()
		directive := s.directive
		s.mu.Unlock()

		entries := s.Roster.All()
		ordered := leaderboard.Order(entries, directive)

		resp := leaderboardResponse{
			Directive: directive,
			Entries:   make([]playerView, 0, len(ordered)),
		}
		for _, e := range ordered {
			resp.Entries = append(resp.Entries, s.decorate(e))
		}
		if leaders := leaderboard.TopStats(entries); leaders != nil {
			resp.Leaders = &leadersView{
				TopKills: s.decorate(leaders.TopKills),
				TopWins:  s.decorate(leaders.TopWins),
				TopKD:    s.decorate(leaders.TopKD),
			}
		}
		s.writeJSON(w, http.StatusOK, resp)
	}
}

// AddFriendHandler looks up a player and adds it to the roster.
func (s *Server) AddFriendHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")

		stats, err := s.Controller.AddFriend(name)
		if err != nil {
			if errors.Is(err, roster.ErrDuplicateMember) {
				s.writeJSON(w, http.StatusConflict, errorResponse{Error: "This player is already in your friends list"})
				return
			}
			s.writeLookupError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, s.decorate(stats))
	}
}

// RemoveFriendHandler removes a friend by exact username.
func (s *Server) RemoveFriendHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "username is required"})
			return
		}

		if err := s.Controller.RemoveFriend(username); err != nil {
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save friends list"})
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Removed %s from friends!", username)
	}
}

// ClearHandler wipes the roster, the profile and the persisted snapshots.
func (s *Server) ClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear the tracker state")
		if err := s.Controller.Clear(); err != nil {
			s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to clear store"})
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
	}
}

// decorate attaches the computed rank and the display flags to a record.
// The membership flag uses the case-sensitive check, same as the gating
// for the add-friend action.
func (s *Server) decorate(stats fortnite.PlayerStats) playerView {
	p := s.Controller.Profile()
	return playerView{
		Username:      stats.Username,
		Level:         stats.Level,
		Kills:         stats.Kills,
		Wins:          stats.Wins,
		KD:            stats.KD,
		MatchesPlayed: stats.MatchesPlayed,
		WinRate:       stats.WinRate,
		Rank:          rank.Classify(stats),
		IsMyProfile:   p != nil && p.Username == stats.Username,
		InFriends:     s.Roster.Contains(stats.Username),
	}
}

// writeLookupError maps a lookup failure to a status code and a
// user-facing message. None of these is fatal; the caller simply retries
// with a fresh request.
func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fortnite.ErrEmptyName):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "enter a player name"})
	case errors.Is(err, fortnite.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, fortnite.ErrUnauthorized):
		s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	case errors.Is(err, profile.ErrLookupInFlight):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: "another lookup is still running"})
	default:
		s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
