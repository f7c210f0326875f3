package api

import (
	"net/http"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/core/service"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/pkg/errors"
)

type Handler struct {
	todoManager *service.TodoManager
	mux         *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(todoManager *service.TodoManager) *Handler {
	h := &Handler{
		todoManager: todoManager,
		mux:         &http.ServeMux{},
	}

	h.mux.Handle("GET /todos", http.HandlerFunc(h.handleListTodos))
	h.mux.Handle("POST /todos", http.HandlerFunc(h.handleCreateTodo))
	h.mux.Handle("GET /todos/{todoID}", http.HandlerFunc(h.handleGetTodo))
	h.mux.Handle("PATCH /todos/{todoID}", http.HandlerFunc(h.handleUpdateTodo))
	h.mux.Handle("DELETE /todos/{todoID}", http.HandlerFunc(h.handleDeleteTodo))

	return h
}

// requireUser resolves the caller identity placed in the context by the
// authn middleware. It is the first step of every operation.
func requireUser(r *http.Request) (model.UserID, error) {
	user := httpCtx.User(r.Context())
	if user == nil || user.ID() == "" {
		return "", errors.WithStack(port.ErrUnauthenticated)
	}

	return user.ID(), nil
}

var _ http.Handler = &Handler{}
