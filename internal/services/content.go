package services

import (
	"context"
	"errors"
	"html"
	"net/url"
	"strings"
	"unicode/utf8"

	"studyshare/internal/logger"
	"studyshare/internal/models"
	"studyshare/internal/repository"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	titleMinRunes       = 3
	titleMaxRunes       = 200
	descriptionMaxRunes = 5000
)

type ContentService interface {
	Create(ctx context.Context, uploaderID uuid.UUID, req models.CreateContentRequest) (*models.Content, error)
	ListApproved(ctx context.Context, f models.ContentFilter) ([]*models.ContentWithUploader, error)
	GetApproved(ctx context.Context, id uuid.UUID) (*models.ContentWithUploader, error)
	ListForModeration(ctx context.Context, status *models.Status, f models.ContentFilter) ([]*models.ContentWithUploader, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentService struct {
	content ContentStore
	users   UserStore
	policy  *bluemonday.Policy
}

func NewContentService(content ContentStore, users UserStore) ContentService {
	return &contentService{content: content, users: users, policy: bluemonday.StrictPolicy()}
}

// Create сохраняет новый материал. Статус всегда pending, публикует только модерация.
func (s *contentService) Create(ctx context.Context, uploaderID uuid.UUID, req models.CreateContentRequest) (*models.Content, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание материала", zap.String("title", strings.TrimSpace(req.Title)), zap.String("type", string(req.Type)))

	title := s.plainText(req.Title)
	if l := utf8.RuneCountInString(title); l < titleMinRunes || l > titleMaxRunes {
		log.Warn("Валидация не пройдена: заголовок", zap.Int("runes", l))
		return nil, invalid("title", "length must be between 3 and 200 characters")
	}
	description := s.plainText(req.Description)
	if utf8.RuneCountInString(description) > descriptionMaxRunes {
		return nil, invalid("description", "too long")
	}
	if !req.Type.Valid() {
		log.Warn("Валидация не пройдена: тип", zap.String("type", string(req.Type)))
		return nil, invalid("type", "unknown content type")
	}
	fileURL := strings.TrimSpace(req.FileURL)
	if fileURL != "" {
		u, err := url.Parse(fileURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, invalid("fileUrl", "must be an absolute http(s) URL")
		}
	}

	c := &models.Content{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Type:        req.Type,
		Status:      models.StatusPending,
		UploaderID:  uploaderID,
		FileURL:     fileURL,
		Department:  strings.TrimSpace(req.Department),
		Branch:      strings.TrimSpace(req.Branch),
		Year:        strings.TrimSpace(req.Year),
		Subject:     strings.TrimSpace(req.Subject),
		Topic:       strings.TrimSpace(req.Topic),
	}
	if err := s.content.Create(ctx, c); err != nil {
		log.Error("Ошибка создания материала (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Материал создан, ожидает модерации", zap.String("content_id", c.ID.String()))
	return c, nil
}

// ListApproved: публичная выборка, только approved.
func (s *contentService) ListApproved(ctx context.Context, f models.ContentFilter) ([]*models.ContentWithUploader, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, invalid("type", "unknown content type")
	}
	list, err := s.content.ListApproved(ctx, f)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения одобренных материалов (repo)", zap.Error(err))
		return nil, err
	}
	return s.withUploaders(ctx, list)
}

// GetApproved отдаёт материал, только если он одобрен, иначе ErrNotFound.
func (s *contentService) GetApproved(ctx context.Context, id uuid.UUID) (*models.ContentWithUploader, error) {
	c, err := s.content.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.Status != models.StatusApproved {
		return nil, ErrNotFound
	}
	out, err := s.withUploaders(ctx, []*models.Content{c})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// ListForModeration: очередь для админа, status == nil означает все статусы.
func (s *contentService) ListForModeration(ctx context.Context, status *models.Status, f models.ContentFilter) ([]*models.ContentWithUploader, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, invalid("type", "unknown content type")
	}
	list, err := s.content.List(ctx, status, f)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения очереди модерации (repo)", zap.Error(err))
		return nil, err
	}
	return s.withUploaders(ctx, list)
}

func (s *contentService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление материала", zap.String("content_id", id.String()))
	if err := s.content.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("Ошибка удаления материала (repo)", zap.Error(err))
		return err
	}
	return nil
}

func (s *contentService) withUploaders(ctx context.Context, list []*models.Content) ([]*models.ContentWithUploader, error) {
	seen := make(map[uuid.UUID]struct{}, len(list))
	ids := make([]uuid.UUID, 0, len(list))
	for _, c := range list {
		if _, ok := seen[c.UploaderID]; ok {
			continue
		}
		seen[c.UploaderID] = struct{}{}
		ids = append(ids, c.UploaderID)
	}

	users, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения авторов (repo)", zap.Error(err))
		return nil, err
	}

	out := make([]*models.ContentWithUploader, 0, len(list))
	for _, c := range list {
		item := &models.ContentWithUploader{Content: *c}
		if u, ok := users[c.UploaderID]; ok {
			item.Uploader = u.Summary()
		}
		out = append(out, item)
	}
	return out, nil
}

// plainText вырезает разметку; сущности раскодируем обратно, экранирует уже фронт.
func (s *contentService) plainText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(raw)))
}
