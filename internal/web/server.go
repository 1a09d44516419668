// Package web exposes the score store as a small JSON API, so a
// leaderboard can be served next to the SSH arcade.
package web

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/gamealchemy/arcade/internal/registry"
	"github.com/gamealchemy/arcade/internal/storage"
)

// Server serves the read-only leaderboard API.
type Server struct {
	store  *storage.Store
	router *mux.Router
	logger *log.Logger
}

// NewServer builds the API around an open score store.
func NewServer(store *storage.Store) *Server {
	s := &Server{
		store: store,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-web",
		}),
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/games", s.handleGames).Methods(http.MethodGet)
	r.HandleFunc("/api/games/{id}/scores", s.handleScores).Methods(http.MethodGet)
	r.HandleFunc("/api/games/{id}/stats", s.handleStats).Methods(http.MethodGet)
	r.Use(s.loggingMiddleware)
	s.router = r

	return s
}

// Router returns the configured HTTP handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the API on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting web server", "address", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

type gameInfo struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
}

type scoreEntry struct {
	Rank       int       `json:"rank"`
	Score      int       `json:"score"`
	Difficulty string    `json:"difficulty,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type gameStats struct {
	GameID     string    `json:"game_id"`
	GamesCount int       `json:"games_count"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	LastPlayed time.Time `json:"last_played,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGames lists the playable games from the registry table.
func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	entries := registry.All()
	out := make([]gameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, gameInfo{ID: e.ID, Title: e.Title, Tagline: e.Tagline})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleScores returns the top scores for one game.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := registry.Lookup(id); !ok {
		writeError(w, http.StatusNotFound, "unknown game")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be 1-100")
			return
		}
		limit = n
	}

	entries, err := s.store.TopScores(id, limit)
	if err != nil {
		s.logger.Error("loading scores", "game", id, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}

	out := make([]scoreEntry, 0, len(entries))
	for i, e := range entries {
		out = append(out, scoreEntry{
			Rank:       i + 1,
			Score:      e.Score,
			Difficulty: e.Difficulty,
			CreatedAt:  e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleStats returns aggregate numbers for one game.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := registry.Lookup(id); !ok {
		writeError(w, http.StatusNotFound, "unknown game")
		return
	}

	stats, err := s.store.GetGameStats(id)
	if err != nil {
		s.logger.Error("loading stats", "game", id, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}

	writeJSON(w, http.StatusOK, gameStats{
		GameID:     stats.GameID,
		GamesCount: stats.GamesCount,
		HighScore:  stats.HighScore,
		AvgScore:   stats.AvgScore,
		LastPlayed: stats.LastPlayed,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Response writer errors are the client's problem
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
