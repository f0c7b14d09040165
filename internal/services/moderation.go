package services

import (
	"context"
	"errors"
	"fmt"

	"studyshare/internal/logger"
	"studyshare/internal/models"
	"studyshare/internal/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var moderationTransitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "studyshare_moderation_transitions_total",
		Help: "Количество выполненных переходов статуса модерации.",
	},
	[]string{"status"},
)

// ModerationService переводит материал в approved/rejected и возвращает его вместе с автором.
// Повторное одобрение тоже пишет в БД. При одновременных approve/reject остаётся последняя запись.
type ModerationService interface {
	Approve(ctx context.Context, id uuid.UUID) (*models.ContentWithUploader, error)
	Reject(ctx context.Context, id uuid.UUID) (*models.ContentWithUploader, error)
}

type moderationService struct {
	content ContentStore
	users   UserStore
}

func NewModerationService(content ContentStore, users UserStore) ModerationService {
	return &moderationService{content: content, users: users}
}

func (s *moderationService) Approve(ctx context.Context, id uuid.UUID) (*models.ContentWithUploader, error) {
	return s.transition(ctx, id, models.StatusApproved)
}

func (s *moderationService) Reject(ctx context.Context, id uuid.UUID) (*models.ContentWithUploader, error) {
	return s.transition(ctx, id, models.StatusRejected)
}

func (s *moderationService) transition(ctx context.Context, id uuid.UUID, status models.Status) (*models.ContentWithUploader, error) {
	log := logger.WithCtx(ctx).With(zap.String("content_id", id.String()), zap.Stringer("status", status))
	log.Info("Модерация: смена статуса")

	c, err := s.content.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Модерация: материал не найден")
			return nil, ErrNotFound
		}
		log.Error("Модерация: ошибка обновления статуса (repo)", zap.Error(err))
		return nil, fmt.Errorf("обновление статуса: %w", err)
	}
	moderationTransitions.WithLabelValues(status.String()).Inc()

	out := &models.ContentWithUploader{Content: *c}
	u, err := s.users.GetUserByID(ctx, c.UploaderID)
	switch {
	case err == nil:
		out.Uploader = u.Summary()
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("Модерация: автор материала не найден", zap.String("uploader_id", c.UploaderID.String()))
	default:
		log.Error("Модерация: ошибка получения автора (repo)", zap.Error(err))
		return nil, fmt.Errorf("получение автора: %w", err)
	}

	log.Info("Модерация: статус изменён")
	return out, nil
}
