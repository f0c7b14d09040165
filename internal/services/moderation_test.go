package services

import (
	"context"
	"errors"
	"testing"

	"studyshare/internal/models"
	"studyshare/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestModeration_ApprovePending(t *testing.T) {
	uploader := testUploader()
	c := testContent(uploader.ID, "DBMS notes", models.StatusPending, "UIT", models.TypeNote)
	store := newMemContentStore(c)
	users := new(mockUserStore)
	users.On("GetUserByID", mock.Anything, uploader.ID).Return(uploader, nil)

	svc := NewModerationService(store, users)
	got, err := svc.Approve(context.Background(), c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, models.StatusApproved, got.Status)
	require.NotNil(t, got.Uploader)
	assert.Equal(t, "Asha Verma", got.Uploader.Name)
	assert.Equal(t, 40, got.Uploader.Points)

	stored, err := store.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
	users.AssertExpectations(t)
}

func TestModeration_TransitionsThenRead(t *testing.T) {
	uploader := testUploader()
	users := new(mockUserStore)
	users.On("GetUserByID", mock.Anything, uploader.ID).Return(uploader, nil)

	statuses := []models.Status{models.StatusPending, models.StatusApproved, models.StatusRejected}
	for _, start := range statuses {
		c := testContent(uploader.ID, "x", start, "", models.TypeVideo)
		store := newMemContentStore(c)
		svc := NewModerationService(store, users)

		_, err := svc.Approve(context.Background(), c.ID)
		require.NoError(t, err)
		read, _ := store.GetByID(context.Background(), c.ID)
		assert.Equal(t, models.StatusApproved, read.Status, "approve из %s", start)

		_, err = svc.Reject(context.Background(), c.ID)
		require.NoError(t, err)
		read, _ = store.GetByID(context.Background(), c.ID)
		assert.Equal(t, models.StatusRejected, read.Status, "reject после approve из %s", start)
	}
}

func TestModeration_RepeatedApproveAlwaysWrites(t *testing.T) {
	uploader := testUploader()
	c := testContent(uploader.ID, "x", models.StatusApproved, "", models.TypeNote)
	store := newMemContentStore(c)
	users := new(mockUserStore)
	users.On("GetUserByID", mock.Anything, uploader.ID).Return(uploader, nil)
	svc := NewModerationService(store, users)

	for i := 0; i < 3; i++ {
		got, err := svc.Approve(context.Background(), c.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, got.Status)
	}
	assert.Equal(t, 3, store.writes)
}

func TestModeration_NotFoundDoesNotWrite(t *testing.T) {
	store := newMemContentStore()
	users := new(mockUserStore)
	svc := NewModerationService(store, users)

	_, err := svc.Approve(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Reject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Zero(t, store.writes)
	users.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestModeration_MissingUploaderLeavesNil(t *testing.T) {
	c := testContent(uuid.New(), "orphan", models.StatusPending, "", models.TypeSyllabus)
	users := new(mockUserStore)
	users.On("GetUserByID", mock.Anything, c.UploaderID).Return(nil, repository.ErrNotFound)

	got, err := NewModerationService(newMemContentStore(c), users).Reject(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.Nil(t, got.Uploader)
}

func TestModeration_UploaderLookupFailure(t *testing.T) {
	c := testContent(uuid.New(), "x", models.StatusPending, "", models.TypeNote)
	users := new(mockUserStore)
	users.On("GetUserByID", mock.Anything, c.UploaderID).Return(nil, errors.New("connection reset"))

	_, err := NewModerationService(newMemContentStore(c), users).Approve(context.Background(), c.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}
