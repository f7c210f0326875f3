package port

import (
	"context"

	"github.com/bornholm/todo/internal/core/model"
)

type UserStore interface {
	// CreateUser saves a new user in the store
	CreateUser(ctx context.Context, user model.User) error

	// GetUserByID finds a user by its ID, or returns ErrNotFound
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)

	// FindAuthToken searches for an AuthToken by its value, or returns ErrNotFound
	FindAuthToken(ctx context.Context, token string) (model.AuthToken, error)

	// GetUserAuthTokens returns all the AuthToken associated to a User
	GetUserAuthTokens(ctx context.Context, userID model.UserID) ([]model.AuthToken, error)

	// CreateAuthToken creates a new AuthToken for a User
	CreateAuthToken(ctx context.Context, token model.AuthToken) error

	// DeleteAuthToken deletes an AuthToken by its ID
	DeleteAuthToken(ctx context.Context, tokenID model.AuthTokenID) error
}
