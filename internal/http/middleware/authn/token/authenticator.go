package token

import (
	"context"
	"net/http"
	"strings"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

// Authenticate implements [authn.Authenticator]. A bearer token takes
// precedence over a session cookie; an unknown token or an empty
// session resolves to no user, never to a distinct error kind.
func (h *Handler) Authenticate(r *http.Request) (model.User, error) {
	authorization := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authorization, "Bearer ")

	if token != "" && token != authorization {
		user, err := h.getUserFromToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, port.ErrNotFound) {
				return nil, nil
			}

			return nil, errors.WithStack(err)
		}

		return user, nil
	}

	user, err := h.retrieveSessionUser(r)
	if err != nil {
		if errors.Is(err, errSessionNotFound) || errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

func (h *Handler) getUserFromToken(ctx context.Context, token string) (model.User, error) {
	authToken, err := h.userStore.FindAuthToken(ctx, token)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, err := h.userStore.GetUserByID(ctx, authToken.OwnerID())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

var _ authn.Authenticator = &Handler{}
