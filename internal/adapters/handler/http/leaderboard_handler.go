package http

import (
	"net/http"

	"github.com/companyvote/api/internal/core/ports"
)

type LeaderboardHandler struct {
	service ports.LeaderboardService
}

func NewLeaderboardHandler(service ports.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		service: service,
	}
}

func (h *LeaderboardHandler) Standings(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := h.service.Standings(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	respondJSON(w, http.StatusOK, leaderboard)
}
