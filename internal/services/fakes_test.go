package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"studyshare/internal/models"
	"studyshare/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memContentStore — хранилище материалов в памяти с той же семантикой, что и repository.ContentRepository.
type memContentStore struct {
	mu     sync.Mutex
	items  map[uuid.UUID]models.Content
	writes int
}

func newMemContentStore(items ...models.Content) *memContentStore {
	s := &memContentStore{items: make(map[uuid.UUID]models.Content)}
	for _, c := range items {
		s.items[c.ID] = c
	}
	return s
}

func (s *memContentStore) Create(_ context.Context, c *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.items[c.ID] = *c
	s.writes++
	return nil
}

func (s *memContentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *memContentStore) SetStatus(_ context.Context, id uuid.UUID, status models.Status) (*models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	s.items[id] = c
	s.writes++
	return &c, nil
}

func (s *memContentStore) ListApproved(ctx context.Context, f models.ContentFilter) ([]*models.Content, error) {
	approved := models.StatusApproved
	return s.List(ctx, &approved, f)
}

func (s *memContentStore) List(_ context.Context, status *models.Status, f models.ContentFilter) ([]*models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	match := func(want, got string) bool { return want == "" || want == got }

	var out []*models.Content
	for _, c := range s.items {
		if status != nil && c.Status != *status {
			continue
		}
		if !match(f.Department, c.Department) || !match(f.Branch, c.Branch) || !match(f.Year, c.Year) ||
			!match(f.Subject, c.Subject) || !match(f.Topic, c.Topic) || !match(string(f.Type), string(c.Type)) {
			continue
		}
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *memContentStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)
	s.writes++
	return nil
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) CreateUser(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserStore) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]*models.User), args.Error(1)
}

func (m *mockUserStore) TopByPoints(ctx context.Context, limit int) ([]*models.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func testUploader() *models.User {
	return &models.User{
		ID:        uuid.New(),
		Name:      "Asha Verma",
		Email:     "asha@example.com",
		Role:      models.RoleStudent,
		Branch:    "CSE",
		Year:      "2",
		Points:    40,
		CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func testContent(uploader uuid.UUID, title string, status models.Status, dept string, typ models.ContentType) models.Content {
	return models.Content{
		ID:         uuid.New(),
		Title:      title,
		Type:       typ,
		Status:     status,
		UploaderID: uploader,
		Department: dept,
	}
}
