package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"studyshare/internal/logger"
	"studyshare/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const contentColumns = `id, title, description, type, status, uploader_id, file_url,
	department, branch, year, subject, topic, created_at, updated_at`

type ContentRepository struct {
	db *pgxpool.Pool
}

func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) Create(ctx context.Context, c *models.Content) error {
	logger.WithCtx(ctx).Info("Репозиторий: сохранение материала",
		zap.String("content_id", c.ID.String()), zap.String("uploader_id", c.UploaderID.String()))

	const q = `
		INSERT INTO content (id, title, description, type, status, uploader_id, file_url,
			department, branch, year, subject, topic)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, q,
		c.ID, c.Title, c.Description, string(c.Type), c.Status.String(), c.UploaderID, c.FileURL,
		c.Department, c.Branch, c.Year, c.Subject, c.Topic,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка сохранения материала (repo)", zap.Error(err))
	}
	return err
}

func (r *ContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	q := `SELECT ` + contentColumns + ` FROM content WHERE id = $1`
	c, err := scanContent(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка получения материала по ID (repo)", zap.String("content_id", id.String()), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// SetStatus пишет статус одним UPDATE. Пишет всегда, даже если статус уже такой.
func (r *ContentRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Content, error) {
	q := `UPDATE content SET status = $2, updated_at = now() WHERE id = $1 RETURNING ` + contentColumns
	c, err := scanContent(r.db.QueryRow(ctx, q, id, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.WithCtx(ctx).Error("Ошибка обновления статуса (repo)",
			zap.String("content_id", id.String()), zap.Stringer("status", status), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// ListApproved: публичное чтение, статус зашит в запрос.
func (r *ContentRepository) ListApproved(ctx context.Context, f models.ContentFilter) ([]*models.Content, error) {
	approved := models.StatusApproved
	return r.List(ctx, &approved, f)
}

// List — выборка для админки; status == nil означает любой статус.
func (r *ContentRepository) List(ctx context.Context, status *models.Status, f models.ContentFilter) ([]*models.Content, error) {
	q, args := buildListQuery(status, f)
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка материалов (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := make([]*models.Content, 0)
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			logger.WithCtx(ctx).Error("Ошибка сканирования материала (repo)", zap.Error(err))
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.WithCtx(ctx).Info("Репозиторий: удаление материала", zap.String("content_id", id.String()))
	tag, err := r.db.Exec(ctx, `DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка удаления материала (repo)", zap.String("content_id", id.String()), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func buildListQuery(status *models.Status, f models.ContentFilter) (string, []any) {
	where := []string{}
	args := []any{}
	i := 1

	add := func(column string, value any) {
		where = append(where, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}

	if status != nil {
		add("status", status.String())
	}
	if f.Department != "" {
		add("department", f.Department)
	}
	if f.Branch != "" {
		add("branch", f.Branch)
	}
	if f.Year != "" {
		add("year", f.Year)
	}
	if f.Subject != "" {
		add("subject", f.Subject)
	}
	if f.Topic != "" {
		add("topic", f.Topic)
	}
	if f.Type != "" {
		add("type", string(f.Type))
	}

	sql := `SELECT ` + contentColumns + ` FROM content`
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY created_at DESC"
	return sql, args
}

func scanContent(row pgx.Row) (*models.Content, error) {
	var (
		c      models.Content
		typ    string
		status string
	)
	if err := row.Scan(
		&c.ID, &c.Title, &c.Description, &typ, &status, &c.UploaderID, &c.FileURL,
		&c.Department, &c.Branch, &c.Year, &c.Subject, &c.Topic, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", c.ID, err)
	}
	c.Status = parsed
	c.Type = models.ContentType(typ)
	return &c, nil
}
