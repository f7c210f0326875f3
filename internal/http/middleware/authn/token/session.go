package token

import (
	"net/http"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/pkg/errors"
)

const sessionKeyUserID = "userID"

var errSessionNotFound = errors.New("session not found")

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user model.User) error {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	session.Values[sessionKeyUserID] = string(user.ID())

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// retrieveSessionUser resolves the session cookie into a user. A
// session without a usable user identifier is indistinguishable from no
// session at all.
func (h *Handler) retrieveSessionUser(r *http.Request) (model.User, error) {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return nil, errors.WithStack(errSessionNotFound)
	}

	rawUserID, exists := session.Values[sessionKeyUserID]
	if !exists {
		return nil, errors.WithStack(errSessionNotFound)
	}

	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		return nil, errors.WithStack(errSessionNotFound)
	}

	user, err := h.userStore.GetUserByID(r.Context(), model.UserID(userID))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
