package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/pkg/errors"
)

type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Due         *time.Time `json:"due"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func fromTodo(t model.Todo) Todo {
	return Todo{
		ID:          string(t.ID()),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
		Priority:    string(t.Priority()),
		Due:         t.Due(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func (h *Handler) handleListTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := requireUser(r)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	query, err := parseTodoQuery(r.URL.Query())
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	todos, err := h.todoManager.QueryTodos(ctx, userID, query)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	res := make([]Todo, 0, len(todos))
	for _, t := range todos {
		res = append(res, fromTodo(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := requireUser(r)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	todoID := model.TodoID(r.PathValue("todoID"))

	todo, err := h.todoManager.GetTodo(ctx, userID, todoID)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, fromTodo(todo))
}

func (h *Handler) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := requireUser(r)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	req, err := decodeBody[CreateTodoRequest](r.Body)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	params, err := req.Validate()
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	todo, err := h.todoManager.CreateTodo(ctx, userID, params)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, fromTodo(todo))
}

func (h *Handler) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := requireUser(r)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	todoID := model.TodoID(r.PathValue("todoID"))

	req, err := decodeBody[UpdateTodoRequest](r.Body)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	updates, err := req.Validate()
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	todo, err := h.todoManager.UpdateTodo(ctx, userID, todoID, updates)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	writeJSON(w, r, http.StatusOK, fromTodo(todo))
}

func (h *Handler) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := requireUser(r)
	if err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	todoID := model.TodoID(r.PathValue("todoID"))

	if err := h.todoManager.DeleteTodo(ctx, userID, todoID); err != nil {
		HandleError(w, r, errors.WithStack(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, payload any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}
