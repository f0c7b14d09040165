package services

import (
	"context"

	"studyshare/internal/models"

	"github.com/google/uuid"
)

// ContentStore реализует repository.ContentRepository.
type ContentStore interface {
	Create(ctx context.Context, c *models.Content) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Content, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Content, error)
	ListApproved(ctx context.Context, f models.ContentFilter) ([]*models.Content, error)
	List(ctx context.Context, status *models.Status, f models.ContentFilter) ([]*models.Content, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.User, error)
	TopByPoints(ctx context.Context, limit int) ([]*models.User, error)
}
