package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsReturnServiceInterfaces(t *testing.T) {
	users := new(mockUserStore)
	store := newMemContentStore()

	assert.Implements(t, (*ModerationService)(nil), NewModerationService(store, users))
	assert.Implements(t, (*ContentService)(nil), NewContentService(store, users))
	assert.Implements(t, (*AuthService)(nil), NewAuthService(users, "secret", time.Hour))
	assert.Implements(t, (*LeaderboardService)(nil), NewLeaderboardService(users))

	assert.IsType(t, &moderationService{}, NewModerationService(store, users))
	assert.IsType(t, &contentService{}, NewContentService(store, users))
}
