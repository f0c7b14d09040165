package handlers

import (
	"context"
	"net/http"

	"studyshare/internal/logger"
	"studyshare/internal/utils/helpers"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct{ db Pinger }

func NewHealthHandler(db Pinger) *HealthHandler { return &HealthHandler{db: db} }

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logger.WithCtx(r.Context()).Error("healthz: БД недоступна", zap.Error(err))
		helpers.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	helpers.Message(w, http.StatusOK, "ok", nil)
}
