package handlers

import (
	"context"
	"net/http"

	"studyshare/internal/logger"
	"studyshare/internal/models"
	"studyshare/internal/services"
	"studyshare/internal/utils/helpers"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ModerationHandler struct {
	svc services.ModerationService
}

func NewModerationHandler(svc services.ModerationService) *ModerationHandler {
	return &ModerationHandler{svc: svc}
}

// Approve
// @Summary      Одобрить материал
// @Description  Переводит материал в статус approved и возвращает его вместе с автором
// @Tags         moderation
// @Security     ApiKeyAuth
// @Produce      json
// @Param        id   path      string  true  "ID материала (UUID)"
// @Success      200  {object}  helpers.Response{data=models.ContentWithUploader}
// @Failure      400  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Failure      500  {object}  helpers.Response
// @Router       /api/content/{id}/approve [put]
func (h *ModerationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "approved", h.svc.Approve)
}

// Reject
// @Summary      Отклонить материал
// @Description  Переводит материал в статус rejected и возвращает его вместе с автором
// @Tags         moderation
// @Security     ApiKeyAuth
// @Produce      json
// @Param        id   path      string  true  "ID материала (UUID)"
// @Success      200  {object}  helpers.Response{data=models.ContentWithUploader}
// @Failure      400  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Failure      500  {object}  helpers.Response
// @Router       /api/content/{id}/reject [put]
func (h *ModerationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "rejected", h.svc.Reject)
}

func (h *ModerationHandler) transition(
	w http.ResponseWriter, r *http.Request, verb string,
	apply func(context.Context, uuid.UUID) (*models.ContentWithUploader, error),
) {
	log := logger.WithCtx(r.Context())

	id, ok := pathID(r)
	if !ok {
		log.Warn("moderation: неверный id материала")
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}

	c, err := apply(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("moderation: готово", zap.String("content_id", id.String()), zap.String("status", verb))
	helpers.Message(w, http.StatusOK, "Content "+verb, c)
}
