package service

import (
	"context"

	"github.com/skycast/skycast-go/internal/model"
	"github.com/skycast/skycast-go/internal/repository"
)

// fakeUserStore keeps users in memory, mirroring the repository's sentinel
// errors.
type fakeUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User), nextID: 1}
}

func (s *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	if _, exists := s.users[user.Username]; exists {
		return repository.ErrDuplicateUsername
	}
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.Username] = &copied
	return nil
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// fakeLocationStore keeps locations in memory with owner-scoped delete, the
// same contract the SQL repository enforces with its WHERE clause.
type fakeLocationStore struct {
	locations []model.Location
	nextID    int64
}

func newFakeLocationStore() *fakeLocationStore {
	return &fakeLocationStore{nextID: 1}
}

func (s *fakeLocationStore) Add(ctx context.Context, loc *model.Location) error {
	loc.ID = s.nextID
	s.nextID++
	s.locations = append(s.locations, *loc)
	return nil
}

func (s *fakeLocationStore) ListByUser(ctx context.Context, userID int64) ([]model.Location, error) {
	var out []model.Location
	for _, loc := range s.locations {
		if loc.UserID == userID {
			out = append(out, loc)
		}
	}
	return out, nil
}

func (s *fakeLocationStore) Delete(ctx context.Context, id, userID int64) (bool, error) {
	for i, loc := range s.locations {
		if loc.ID == id && loc.UserID == userID {
			s.locations = append(s.locations[:i], s.locations[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
