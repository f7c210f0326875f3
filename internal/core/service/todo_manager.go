package service

import (
	"context"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/metrics"
	"github.com/pkg/errors"
)

// TodoManager implements the request orchestration around the todo
// store: every operation resolves ownership first, then performs at
// most one mutating store call.
type TodoManager struct {
	store port.TodoStore
	now   func() time.Time
}

type TodoManagerOptions struct {
	// Clock used to stamp createdAt/updatedAt, overridable in tests
	Now func() time.Time
}

type TodoManagerOptionFunc func(opts *TodoManagerOptions)

func WithTodoManagerClock(now func() time.Time) TodoManagerOptionFunc {
	return func(opts *TodoManagerOptions) {
		opts.Now = now
	}
}

func NewTodoManagerOptions(funcs ...TodoManagerOptionFunc) *TodoManagerOptions {
	opts := &TodoManagerOptions{
		Now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func NewTodoManager(store port.TodoStore, funcs ...TodoManagerOptionFunc) *TodoManager {
	opts := NewTodoManagerOptions(funcs...)
	return &TodoManager{
		store: store,
		now:   opts.Now,
	}
}

// CreateTodoParams is a validated, normalized creation payload.
type CreateTodoParams struct {
	Title       string
	Description string
	Status      model.TodoStatus
	Priority    model.TodoPriority
	Due         *time.Time
}

// QueryTodos returns every todo of the given owner matching the query.
// An empty result is a success, not an error.
func (m *TodoManager) QueryTodos(ctx context.Context, ownerID model.UserID, query TodoQuery) ([]model.Todo, error) {
	filter, sort := BuildTodoFilter(ownerID, query)

	todos, err := m.store.QueryTodos(ctx, filter, sort)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return todos, nil
}

// GetTodo returns the todo identified by todoID if it belongs to ownerID.
func (m *TodoManager) GetTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID) (model.Todo, error) {
	todo, err := m.ownedTodo(ctx, ownerID, todoID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return todo, nil
}

// CreateTodo persists a new todo owned by ownerID. The owner is always
// the caller; the params cannot spoof ownership.
func (m *TodoManager) CreateTodo(ctx context.Context, ownerID model.UserID, params CreateTodoParams) (model.Todo, error) {
	now := m.now()

	todo := model.NewReadOnlyTodo(
		model.NewTodoID(),
		ownerID,
		params.Title,
		params.Description,
		params.Status,
		params.Priority,
		params.Due,
		now,
		now,
	)

	if err := m.store.CreateTodo(ctx, todo); err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalCreatedTodos.Inc()

	return todo, nil
}

// UpdateTodo applies a partial update to a todo owned by ownerID. The
// ownership check completes before the store is mutated.
func (m *TodoManager) UpdateTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID, updates port.TodoUpdates) (model.Todo, error) {
	if _, err := m.ownedTodo(ctx, ownerID, todoID); err != nil {
		return nil, errors.WithStack(err)
	}

	todo, err := m.store.UpdateTodo(ctx, todoID, updates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalUpdatedTodos.Inc()

	return todo, nil
}

// DeleteTodo removes a todo owned by ownerID. There is no soft delete.
func (m *TodoManager) DeleteTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID) error {
	if _, err := m.ownedTodo(ctx, ownerID, todoID); err != nil {
		return errors.WithStack(err)
	}

	if err := m.store.DeleteTodo(ctx, todoID); err != nil {
		return errors.WithStack(err)
	}

	metrics.TotalDeletedTodos.Inc()

	return nil
}

// ownedTodo fetches a todo and enforces that it belongs to ownerID.
// It performs exactly one store lookup; the existence check comes
// first, so a todo owned by someone else is reported as ErrForbidden,
// never as ErrNotFound.
func (m *TodoManager) ownedTodo(ctx context.Context, ownerID model.UserID, todoID model.TodoID) (model.Todo, error) {
	todo, err := m.store.GetTodoByID(ctx, todoID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if todo.OwnerID() != ownerID {
		return nil, errors.WithStack(port.ErrForbidden)
	}

	return todo, nil
}
