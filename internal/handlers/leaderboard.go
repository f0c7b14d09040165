package handlers

import (
	"net/http"
	"strconv"

	"studyshare/internal/services"
	"studyshare/internal/utils/helpers"
)

type LeaderboardHandler struct{ svc services.LeaderboardService }

func NewLeaderboardHandler(svc services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Top
// @Summary      Таблица лидеров
// @Tags         leaderboard
// @Produce      json
// @Param        limit  query  int  false  "Сколько строк (по умолч. 10, макс. 100)"
// @Success      200  {object}  helpers.Response{data=[]models.LeaderboardEntry}
// @Router       /api/leaderboard [get]
func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			helpers.Error(w, http.StatusBadRequest, "bad limit")
			return
		}
		limit = v
	}

	entries, err := h.svc.Top(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, entries)
}
