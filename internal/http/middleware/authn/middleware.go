package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/todo/internal/core/model"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/pkg/errors"
)

// Authenticator resolves the evidence carried by a request into a user.
// A nil user with a nil error means "no evidence, try the next one".
type Authenticator interface {
	Authenticate(r *http.Request) (model.User, error)
}

func Middleware(onUnauthenticated func(w http.ResponseWriter, r *http.Request), authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(r)
				if err != nil {
					slog.ErrorContext(r.Context(), "could not authenticate user", slog.Any("error", errors.WithStack(err)))
					onUnauthenticated(w, r)
					return
				}

				if user == nil {
					continue
				}

				ctx := httpCtx.SetUser(r.Context(), user)

				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			onUnauthenticated(w, r)
		}

		return fn
	}
}
