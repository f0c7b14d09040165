package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"studyshare/internal/logger"
	"studyshare/internal/models"
	"studyshare/internal/repository"
	"studyshare/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const passwordMinRunes = 8

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	LoginUser(ctx context.Context, email, password string) (string, *models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type authService struct {
	repo      UserStore
	jwtSecret string
	accessTTL time.Duration
}

func NewAuthService(repo UserStore, jwtSecret string, accessTTL time.Duration) AuthService {
	return &authService{repo: repo, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

func (s *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	log.Info("Регистрация пользователя (service)", zap.String("email", email))

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("email", "malformed address")
	}
	if utf8.RuneCountInString(req.Password) < passwordMinRunes {
		return nil, invalid("password", "must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	u := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleStudent,
		Branch:       strings.TrimSpace(req.Branch),
		Year:         strings.TrimSpace(req.Year),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			log.Warn("Email уже зарегистрирован", zap.String("email", email))
			return nil, invalid("email", "already registered")
		}
		log.Error("Ошибка создания пользователя", zap.Error(err))
		return nil, err
	}

	log.Info("Пользователь зарегистрирован (service)", zap.String("user_id", u.ID.String()))
	return u, nil
}

func (s *authService) LoginUser(ctx context.Context, email, password string) (string, *models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Пользователь не найден (service)", zap.String("email", email))
			return "", nil, ErrUnauthorized
		}
		return "", nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("email", email))
		return "", nil, ErrUnauthorized
	}

	token, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Role, s.accessTTL)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", nil, err
	}

	log.Info("Вход выполнен (service)", zap.String("user_id", user.ID.String()))
	return token, user, nil
}

func (s *authService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}
