package services

import (
	"context"
	"testing"

	"studyshare/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContentService_CreateIsPending(t *testing.T) {
	store := newMemContentStore()
	svc := NewContentService(store, new(mockUserStore))
	uploader := uuid.New()

	c, err := svc.Create(context.Background(), uploader, models.CreateContentRequest{
		Title:       "  <b>OS</b> Unit 3 ",
		Description: `<script>alert(1)</script>Paging & TLB`,
		Type:        models.TypeNote,
		FileURL:     "https://files.example.com/os.pdf",
		Department:  " UIT ",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, uploader, c.UploaderID)
	assert.Equal(t, "OS Unit 3", c.Title)
	assert.Equal(t, "Paging & TLB", c.Description)
	assert.Equal(t, "UIT", c.Department)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestContentService_CreateValidation(t *testing.T) {
	svc := NewContentService(newMemContentStore(), new(mockUserStore))
	cases := map[string]models.CreateContentRequest{
		"title":   {Title: "ab", Type: models.TypeNote},
		"type":    {Title: "Valid title", Type: "podcast"},
		"fileUrl": {Title: "Valid title", Type: models.TypeNote, FileURL: "ftp://x/y"},
	}
	for field, req := range cases {
		_, err := svc.Create(context.Background(), uuid.New(), req)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestContentService_ListApprovedOnlyApproved(t *testing.T) {
	uploader := testUploader()
	store := newMemContentStore(
		testContent(uploader.ID, "a-uit-note", models.StatusApproved, "UIT", models.TypeNote),
		testContent(uploader.ID, "b-uit-note-pending", models.StatusPending, "UIT", models.TypeNote),
		testContent(uploader.ID, "c-uit-note-rejected", models.StatusRejected, "UIT", models.TypeNote),
		testContent(uploader.ID, "d-uit-video", models.StatusApproved, "UIT", models.TypeVideo),
		testContent(uploader.ID, "e-soit-note", models.StatusApproved, "SOIT", models.TypeNote),
	)
	users := new(mockUserStore)
	users.On("GetUsersByIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*models.User{uploader.ID: uploader}, nil)
	svc := NewContentService(store, users)

	all, err := svc.ListApproved(context.Background(), models.ContentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, c := range all {
		assert.Equal(t, models.StatusApproved, c.Status)
		require.NotNil(t, c.Uploader)
	}

	notes, err := svc.ListApproved(context.Background(), models.ContentFilter{Department: "UIT", Type: models.TypeNote})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "a-uit-note", notes[0].Title)

	_, err = svc.ListApproved(context.Background(), models.ContentFilter{Type: "podcast"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestContentService_UploadersFetchedOnce(t *testing.T) {
	uploader := testUploader()
	store := newMemContentStore(
		testContent(uploader.ID, "a", models.StatusApproved, "", models.TypeNote),
		testContent(uploader.ID, "b", models.StatusApproved, "", models.TypeNote),
	)
	users := new(mockUserStore)
	users.On("GetUsersByIDs", mock.Anything, []uuid.UUID{uploader.ID}).
		Return(map[uuid.UUID]*models.User{}, nil).Once()

	list, err := NewContentService(store, users).ListApproved(context.Background(), models.ContentFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Nil(t, list[0].Uploader)
	users.AssertExpectations(t)
}

func TestContentService_GetApprovedHidesOthers(t *testing.T) {
	uploader := testUploader()
	pending := testContent(uploader.ID, "p", models.StatusPending, "", models.TypeNote)
	approved := testContent(uploader.ID, "a", models.StatusApproved, "", models.TypeNote)
	users := new(mockUserStore)
	users.On("GetUsersByIDs", mock.Anything, mock.Anything).
		Return(map[uuid.UUID]*models.User{uploader.ID: uploader}, nil)
	svc := NewContentService(newMemContentStore(pending, approved), users)

	_, err := svc.GetApproved(context.Background(), pending.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetApproved(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.GetApproved(context.Background(), approved.ID)
	require.NoError(t, err)
	assert.Equal(t, approved.ID, got.ID)
}

func TestContentService_ModerationQueueAndDelete(t *testing.T) {
	uploader := testUploader()
	pending := testContent(uploader.ID, "p", models.StatusPending, "", models.TypeNote)
	store := newMemContentStore(pending, testContent(uploader.ID, "a", models.StatusApproved, "", models.TypeNote))
	users := new(mockUserStore)
	users.On("GetUsersByIDs", mock.Anything, mock.Anything).Return(map[uuid.UUID]*models.User{}, nil)
	svc := NewContentService(store, users)

	st := models.StatusPending
	queue, err := svc.ListForModeration(context.Background(), &st, models.ContentFilter{})
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, pending.ID, queue[0].ID)

	everything, err := svc.ListForModeration(context.Background(), nil, models.ContentFilter{})
	require.NoError(t, err)
	assert.Len(t, everything, 2)

	require.NoError(t, svc.Delete(context.Background(), pending.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), pending.ID), ErrNotFound)
}
