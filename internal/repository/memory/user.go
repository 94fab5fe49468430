package memory

import (
	"context"
	"sync"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
)

type UserStore struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) Create(ctx context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	s.users = append(s.users, u)
	return u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *UserStore) List(ctx context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out, nil
}
