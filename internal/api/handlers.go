package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/utakatalp/bowling-league/internal/league"
	"github.com/utakatalp/bowling-league/internal/service"
)

type StandingsService interface {
	Standings(ctx context.Context, week string) (*league.Standings, error)
	LatestStandings(ctx context.Context) (*league.Standings, error)
	SearchPlayers(ctx context.Context, query string) ([]league.PlayerRanking, error)
}

type Handlers struct {
	svc StandingsService
}

// NewRouter wires the read-only standings endpoints.
func NewRouter(svc StandingsService) *mux.Router {
	h := &Handlers{svc: svc}
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.HandleFunc("/standings", h.latest).Methods(http.MethodGet)
	r.HandleFunc("/weeks/{week}/players", h.players).Methods(http.MethodGet)
	r.HandleFunc("/weeks/{week}/teams", h.teams).Methods(http.MethodGet)
	r.HandleFunc("/players/search", h.search).Methods(http.MethodGet)
	return r
}

type playersResponse struct {
	Week     int                    `json:"week"`
	HasGames bool                   `json:"has_games"`
	Players  []league.PlayerRanking `json:"players"`
}

type teamsResponse struct {
	Week     int                  `json:"week"`
	HasGames bool                 `json:"has_games"`
	Teams    []league.TeamRanking `json:"teams"`
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) latest(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.LatestStandings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) players(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Standings(r.Context(), mux.Vars(r)["week"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playersResponse{Week: st.Week, HasGames: st.HasGames, Players: st.Players})
}

func (h *Handlers) teams(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Standings(r.Context(), mux.Vars(r)["week"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, teamsResponse{Week: st.Week, HasGames: st.HasGames, Teams: st.Teams})
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.SearchPlayers(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	if found == nil {
		found = []league.PlayerRanking{}
	}
	writeJSON(w, http.StatusOK, found)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, league.ErrInvalidWeek):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		slog.Error("Error serving standings", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}
