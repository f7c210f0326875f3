package gorm

import (
	"time"

	"github.com/bornholm/todo/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Email       string `gorm:"unique"`
	DisplayName string
}

type AuthToken struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	OwnerID string `gorm:"index"`

	Label string
	Value string `gorm:"unique"`
}

func fromUser(u model.User) *User {
	return &User{
		ID:          string(u.ID()),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
	}
}

func fromAuthToken(t model.AuthToken) *AuthToken {
	return &AuthToken{
		ID:      string(t.ID()),
		OwnerID: string(t.OwnerID()),
		Label:   t.Label(),
		Value:   t.Value(),
	}
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Email implements model.User.
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// DisplayName implements model.User.
func (w *wrappedUser) DisplayName() string {
	return w.u.DisplayName
}

var _ model.User = &wrappedUser{}

type wrappedAuthToken struct {
	t *AuthToken
}

// ID implements model.AuthToken.
func (w *wrappedAuthToken) ID() model.AuthTokenID {
	return model.AuthTokenID(w.t.ID)
}

// OwnerID implements model.AuthToken.
func (w *wrappedAuthToken) OwnerID() model.UserID {
	return model.UserID(w.t.OwnerID)
}

// Label implements model.AuthToken.
func (w *wrappedAuthToken) Label() string {
	return w.t.Label
}

// Value implements model.AuthToken.
func (w *wrappedAuthToken) Value() string {
	return w.t.Value
}

var _ model.AuthToken = &wrappedAuthToken{}
