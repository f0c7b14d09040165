package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"studyshare/internal/logger"
	"studyshare/internal/models"
	"studyshare/internal/services"
	"studyshare/internal/utils/helpers"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// writeServiceError переводит ошибку сервиса в HTTP-статус.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.Error(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrUnauthorized):
		helpers.Error(w, http.StatusUnauthorized, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("Необработанная ошибка", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, err.Error())
	}
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func filterFromQuery(q url.Values) models.ContentFilter {
	get := func(k string) string { return strings.TrimSpace(q.Get(k)) }
	return models.ContentFilter{
		Department: get("department"),
		Branch:     get("branch"),
		Year:       get("year"),
		Subject:    get("subject"),
		Topic:      get("topic"),
		Type:       models.ContentType(get("type")),
	}
}
