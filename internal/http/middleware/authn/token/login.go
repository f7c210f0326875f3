package token

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/http/handler/api"
	"github.com/pkg/errors"
)

type LoginRequest struct {
	Token string `json:"token"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, r, errors.WithStack(port.NewValidationError(port.ValidationSourceBody, port.FieldError{
			Path:    "token",
			Message: "token is required",
		})))
		return
	}

	if req.Token == "" {
		api.HandleError(w, r, errors.WithStack(port.NewValidationError(port.ValidationSourceBody, port.FieldError{
			Path:    "token",
			Message: "token is required",
		})))
		return
	}

	user, err := h.getUserFromToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			if err := h.clearSession(w, r); err != nil {
				slog.ErrorContext(ctx, "could not clear user session", slogx.Error(err))
			}

			api.HandleError(w, r, errors.WithStack(port.ErrUnauthenticated))
			return
		}

		api.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		api.HandleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.clearSession(w, r); err != nil {
		api.HandleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
