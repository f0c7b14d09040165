package repository

import (
	"context"
	"errors"

	"studyshare/internal/logger"
	"studyshare/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrEmailTaken — нарушение уникальности email.
var ErrEmailTaken = errors.New("email already registered")

const userColumns = `id, name, email, avatar, password_hash, role, branch, year, points, created_at, updated_at`

// Параметр — uuid[]; id сравнивается без приведения к text.
const usersByIDsQuery = `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *models.User) error {
	logger.WithCtx(ctx).Info("Создание пользователя (repo)", zap.String("email", u.Email))
	const q = `
		INSERT INTO users (id, name, email, avatar, password_hash, role, branch, year)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING points, created_at, updated_at`
	err := r.db.QueryRow(ctx, q, u.ID, u.Name, u.Email, u.Avatar, u.PasswordHash, u.Role, u.Branch, u.Year).
		Scan(&u.Points, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		logger.WithCtx(ctx).Error("Ошибка создания пользователя (repo)", zap.Error(err))
	}
	return err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// TopByPoints сортирует по очкам, при равенстве выше тот, кто раньше зарегистрировался.
func (r *UserRepository) TopByPoints(ctx context.Context, limit int) ([]*models.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY points DESC, created_at ASC LIMIT $1`, limit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения таблицы лидеров (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) getOne(ctx context.Context, q string, arg any) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка получения пользователя (repo)", zap.Error(err))
		return nil, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Avatar, &u.PasswordHash, &u.Role,
		&u.Branch, &u.Year, &u.Points, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUsersByIDs достаёт авторов одним запросом.
func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.User, error) {
	out := make(map[uuid.UUID]*models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx, usersByIDsQuery, ids)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения авторов (repo)", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}
