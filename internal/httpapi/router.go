package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/omarshaarawi/playoffpool/internal/models"
	"github.com/omarshaarawi/playoffpool/internal/service"
)

const defaultLeaderLimit = 25

type Pool interface {
	Refresh(ctx context.Context) error
	Board() (*models.Board, error)
	FindTeam(name string) (models.TeamRoster, error)
	FindSelection(playerName string) (models.SelectionCount, bool, error)
	GetStandingsChart() ([]byte, error)
}

type Handlers struct {
	pool    Pool
	metrics http.Handler
}

// NewHandlers wires the read-only pool API. metrics may be nil.
func NewHandlers(pool Pool, metrics http.Handler) *Handlers {
	return &Handlers{pool: pool, metrics: metrics}
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	r.Get("/chart.png", h.handleChart)

	r.Route("/api", func(r chi.Router) {
		r.Get("/board", h.handleBoard)
		r.Get("/standings", h.handleStandings)
		r.Get("/leaderboard", h.handleLeaderboard)
		r.Get("/teams/{team}", h.handleTeam)
		r.Get("/selections", h.handleSelections)
		r.Get("/selections/unique", h.handleUniqueSelections)
		r.Get("/players/{player}", h.handlePlayer)
		r.Post("/refresh", h.handleRefresh)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) handleBoard(w http.ResponseWriter, r *http.Request) {
	board, ok := h.board(w)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, board)
}

func (h *Handlers) handleStandings(w http.ResponseWriter, r *http.Request) {
	board, ok := h.board(w)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"rounds":      board.Rounds,
		"standings":   board.Standings,
		"computed_at": board.ComputedAt,
	})
}

func (h *Handlers) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, ok := h.board(w)
	if !ok {
		return
	}

	limit := defaultLeaderLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	rows := board.Leaderboard
	if len(rows) > limit {
		rows = rows[:limit]
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *Handlers) handleTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.pool.FindTeam(chi.URLParam(r, "team"))
	if err != nil {
		if errors.Is(err, service.ErrNotReady) {
			respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, team)
}

func (h *Handlers) handleSelections(w http.ResponseWriter, r *http.Request) {
	board, ok := h.board(w)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, board.Selections)
}

func (h *Handlers) handleUniqueSelections(w http.ResponseWriter, r *http.Request) {
	board, ok := h.board(w)
	if !ok {
		return
	}
	unique := make([]models.SelectionCount, 0)
	for _, sc := range board.Selections {
		if sc.Count == 1 {
			unique = append(unique, sc)
		}
	}
	respondJSON(w, http.StatusOK, unique)
}

func (h *Handlers) handlePlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "player")
	selection, found, err := h.pool.FindSelection(name)
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "no team picked "+name)
		return
	}
	respondJSON(w, http.StatusOK, selection)
}

func (h *Handlers) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.Refresh(r.Context()); err != nil {
		slog.Error("Manual refresh failed", "error", err)
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.handleStandings(w, r)
}

func (h *Handlers) handleChart(w http.ResponseWriter, r *http.Request) {
	png, err := h.pool.GetStandingsChart()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(png); err != nil {
		slog.Error("Error writing chart", "error", err)
	}
}

func (h *Handlers) board(w http.ResponseWriter) (*models.Board, bool) {
	board, err := h.pool.Board()
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return nil, false
	}
	return board, true
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("Error encoding response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
