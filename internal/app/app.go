package app

import (
	"context"
	"fmt"

	"studyshare/internal/config"
	"studyshare/internal/db"
	"studyshare/internal/handlers"
	"studyshare/internal/repository"
	"studyshare/internal/routes"
	"studyshare/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitApp поднимает БД, сервисы и маршруты. Пул возвращается, чтобы main закрыл его.
func InitApp(ctx context.Context, cfg *config.Config) (*mux.Router, *pgxpool.Pool, error) {
	if cfg.MigrateOnStart {
		if err := db.Migrate(cfg); err != nil {
			return nil, nil, fmt.Errorf("миграции: %w", err)
		}
	}

	conn, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	contentRepo := repository.NewContentRepository(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTTL())
	contentService := services.NewContentService(contentRepo, userRepo)
	moderationService := services.NewModerationService(contentRepo, userRepo)
	leaderboardService := services.NewLeaderboardService(userRepo)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Content:     handlers.NewContentHandler(contentService),
		Moderation:  handlers.NewModerationHandler(moderationService),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService),
		Health:      handlers.NewHealthHandler(conn),
	})

	return router, conn, nil
}
