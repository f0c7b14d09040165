package services

import (
	"context"
	"testing"

	"studyshare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_RanksAndClamp(t *testing.T) {
	a, b := testUploader(), testUploader()
	a.Points, b.Points = 90, 30
	users := new(mockUserStore)
	users.On("TopByPoints", mock.Anything, leaderboardDefaultLimit).Return([]*models.User{a, b}, nil).Once()
	users.On("TopByPoints", mock.Anything, leaderboardMaxLimit).Return([]*models.User{}, nil).Once()
	svc := NewLeaderboardService(users)

	top, err := svc.Top(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, 90, top[0].Points)
	assert.Equal(t, 2, top[1].Rank)

	_, err = svc.Top(context.Background(), 5000)
	require.NoError(t, err)
	users.AssertExpectations(t)
}
