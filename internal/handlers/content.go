package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"studyshare/internal/logger"
	"studyshare/internal/models"
	"studyshare/internal/reqctx"
	"studyshare/internal/services"
	"studyshare/internal/utils/helpers"

	"go.uber.org/zap"
)

type ContentHandler struct {
	svc services.ContentService
}

func NewContentHandler(svc services.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// ListApproved
// @Summary      Одобренные материалы
// @Description  Публичная выдача: только status=approved. Ответ не кэшируется.
// @Tags         content
// @Produce      json
// @Param        status      query  string  false  "Только approved"
// @Param        department  query  string  false  "Факультет"
// @Param        branch      query  string  false  "Направление"
// @Param        year        query  string  false  "Курс"
// @Param        subject     query  string  false  "Предмет"
// @Param        topic       query  string  false  "Тема"
// @Param        type        query  string  false  "note|video|pyq|important|syllabus|timetable"
// @Param        _t          query  string  false  "Cache-bust"
// @Success      200  {object}  helpers.Response{data=[]models.ContentWithUploader}
// @Failure      400  {object}  helpers.Response
// @Failure      500  {object}  helpers.Response
// @Router       /api/content [get]
func (h *ContentHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	w.Header().Set("Cache-Control", "no-store")

	if st := strings.TrimSpace(r.URL.Query().Get("status")); st != "" && st != models.StatusApproved.String() {
		log.Warn("content: запрошен неодобренный статус на публичном пути", zap.String("status", st))
		helpers.Error(w, http.StatusBadRequest, "status: only approved content is public")
		return
	}

	f := filterFromQuery(r.URL.Query())
	list, err := h.svc.ListApproved(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug("content: выдача одобренных", zap.Int("count", len(list)))
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary      Одобренный материал по ID
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "ID материала (UUID)"
// @Success      200  {object}  helpers.Response{data=models.ContentWithUploader}
// @Failure      404  {object}  helpers.Response
// @Router       /api/content/{id} [get]
func (h *ContentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}
	c, err := h.svc.GetApproved(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	helpers.JSON(w, http.StatusOK, c)
}

// Create
// @Summary      Загрузить материал
// @Description  Материал создаётся со статусом pending и появится в выдаче после модерации. Сам файл хранится во внешнем сервисе.
// @Tags         content
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateContentRequest  true  "Данные материала"
// @Success      201   {object}  helpers.Response{data=models.Content}
// @Failure      400   {object}  helpers.Response
// @Router       /api/content [post]
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	uploaderID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("content: невалидный JSON при создании", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	c, err := h.svc.Create(r.Context(), uploaderID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.Message(w, http.StatusCreated, "Content submitted for review", c)
}

// AdminList
// @Summary      Очередь модерации
// @Tags         admin
// @Security     ApiKeyAuth
// @Produce      json
// @Param        status  query  string  false  "pending|approved|rejected (пусто: все)"
// @Success      200  {object}  helpers.Response{data=[]models.ContentWithUploader}
// @Failure      400  {object}  helpers.Response
// @Router       /api/admin/content [get]
func (h *ContentHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	var status *models.Status
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		st, err := models.ParseStatus(raw)
		if err != nil {
			helpers.Error(w, http.StatusBadRequest, "status: "+err.Error())
			return
		}
		status = &st
	}

	list, err := h.svc.ListForModeration(r.Context(), status, filterFromQuery(r.URL.Query()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Delete
// @Summary      Удалить материал
// @Tags         admin
// @Security     ApiKeyAuth
// @Param        id   path      string  true  "ID материала (UUID)"
// @Success      200  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Router       /api/admin/content/{id} [delete]
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		helpers.Error(w, http.StatusBadRequest, "bad id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	logger.WithCtx(r.Context()).Info("content: материал удалён", zap.String("content_id", id.String()))
	helpers.Message(w, http.StatusOK, "Content deleted", nil)
}
