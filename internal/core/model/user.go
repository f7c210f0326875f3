package model

import (
	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type User interface {
	WithID[UserID]

	Email() string
	DisplayName() string
}

type ReadOnlyUser struct {
	id          UserID
	email       string
	displayName string
}

// ID implements User.
func (u *ReadOnlyUser) ID() UserID {
	return u.id
}

// Email implements User.
func (u *ReadOnlyUser) Email() string {
	return u.email
}

// DisplayName implements User.
func (u *ReadOnlyUser) DisplayName() string {
	return u.displayName
}

func NewReadOnlyUser(id UserID, email string, displayName string) *ReadOnlyUser {
	return &ReadOnlyUser{
		id:          id,
		email:       email,
		displayName: displayName,
	}
}

var _ User = &ReadOnlyUser{}

type AuthTokenID string

func NewAuthTokenID() AuthTokenID {
	return AuthTokenID(xid.New().String())
}

type AuthToken interface {
	WithID[AuthTokenID]
	WithOwner

	Label() string
	Value() string
}

type ReadOnlyAuthToken struct {
	id      AuthTokenID
	ownerID UserID
	label   string
	value   string
}

// ID implements AuthToken.
func (t *ReadOnlyAuthToken) ID() AuthTokenID {
	return t.id
}

// OwnerID implements AuthToken.
func (t *ReadOnlyAuthToken) OwnerID() UserID {
	return t.ownerID
}

// Label implements AuthToken.
func (t *ReadOnlyAuthToken) Label() string {
	return t.label
}

// Value implements AuthToken.
func (t *ReadOnlyAuthToken) Value() string {
	return t.value
}

func NewReadOnlyAuthToken(id AuthTokenID, ownerID UserID, label string, value string) *ReadOnlyAuthToken {
	return &ReadOnlyAuthToken{
		id:      id,
		ownerID: ownerID,
		label:   label,
		value:   value,
	}
}

var _ AuthToken = &ReadOnlyAuthToken{}
