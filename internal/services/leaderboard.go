package services

import (
	"context"

	"studyshare/internal/logger"
	"studyshare/internal/models"

	"go.uber.org/zap"
)

const (
	leaderboardDefaultLimit = 10
	leaderboardMaxLimit     = 100
)

type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

type leaderboardService struct {
	users UserStore
}

func NewLeaderboardService(users UserStore) LeaderboardService {
	return &leaderboardService{users: users}
}

// Top отдаёт первые limit пользователей по очкам. limit <= 0 означает значение по умолчанию.
func (s *leaderboardService) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = leaderboardDefaultLimit
	}
	if limit > leaderboardMaxLimit {
		limit = leaderboardMaxLimit
	}

	users, err := s.users.TopByPoints(ctx, limit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения таблицы лидеров", zap.Error(err))
		return nil, err
	}

	out := make([]models.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		out = append(out, models.LeaderboardEntry{
			Rank:   i + 1,
			ID:     u.ID,
			Name:   u.Name,
			Avatar: u.Avatar,
			Branch: u.Branch,
			Year:   u.Year,
			Points: u.Points,
		})
	}
	return out, nil
}
