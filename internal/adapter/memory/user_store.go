package memory

import (
	"context"
	"sync"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

// UserStore is an in-memory implementation of port.UserStore.
type UserStore struct {
	mutex  sync.RWMutex
	users  map[model.UserID]model.User
	tokens map[model.AuthTokenID]model.AuthToken
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:  map[model.UserID]model.User{},
		tokens: map[model.AuthTokenID]model.AuthToken{},
	}
}

// CreateUser implements port.UserStore.
func (s *UserStore) CreateUser(ctx context.Context, user model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.users[user.ID()] = user

	return nil
}

// GetUserByID implements port.UserStore.
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

// FindAuthToken implements port.UserStore.
func (s *UserStore) FindAuthToken(ctx context.Context, token string) (model.AuthToken, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, t := range s.tokens {
		if t.Value() == token {
			return t, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// GetUserAuthTokens implements port.UserStore.
func (s *UserStore) GetUserAuthTokens(ctx context.Context, userID model.UserID) ([]model.AuthToken, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tokens := make([]model.AuthToken, 0)
	for _, t := range s.tokens {
		if t.OwnerID() == userID {
			tokens = append(tokens, t)
		}
	}

	return tokens, nil
}

// CreateAuthToken implements port.UserStore.
func (s *UserStore) CreateAuthToken(ctx context.Context, token model.AuthToken) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.tokens[token.ID()] = token

	return nil
}

// DeleteAuthToken implements port.UserStore.
func (s *UserStore) DeleteAuthToken(ctx context.Context, tokenID model.AuthTokenID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.tokens, tokenID)

	return nil
}

var _ port.UserStore = &UserStore{}
