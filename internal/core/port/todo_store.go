package port

import (
	"context"
	"time"

	"github.com/bornholm/todo/internal/core/model"
)

type SortField string

const (
	SortFieldUpdatedAt SortField = "updatedAt"
	SortFieldCreatedAt SortField = "createdAt"
	SortFieldDue       SortField = "due"
	SortFieldPriority  SortField = "priority"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortFieldUpdatedAt, SortFieldCreatedAt, SortFieldDue, SortFieldPriority:
		return true
	}

	return false
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	switch o {
	case SortOrderAsc, SortOrderDesc:
		return true
	}

	return false
}

// TodoFilter is the store-agnostic filter produced by the query builder.
// OwnerID is always set; every other criterion is optional.
type TodoFilter struct {
	// Only todos belonging to this owner
	OwnerID model.UserID

	// Filters

	// Todos with this exact status
	Status *model.TodoStatus

	// Todos with this exact priority
	Priority *model.TodoPriority

	// Todos with a deadline inside the given bounds (inclusive)
	DueFrom *time.Time
	DueTo   *time.Time

	// Todos whose title or description contains the keyword, matched
	// case-insensitively
	Keyword string
}

// TodoSort is a single sort key. Stores order ties by id ascending so
// that identical queries return rows in a stable order.
type TodoSort struct {
	Field SortField
	Order SortOrder
}

// TodoUpdates describes a partial update. Nil pointer fields are left
// untouched. Due uses a three-state wrapper: absent, explicitly null
// (clear the deadline) or set to a new instant.
type TodoUpdates struct {
	Title       *string
	Description *string
	Status      *model.TodoStatus
	Priority    *model.TodoPriority
	Due         model.Nullable[time.Time]
}

type TodoStore interface {
	// GetTodoByID finds a todo by its ID, or returns ErrNotFound
	GetTodoByID(ctx context.Context, id model.TodoID) (model.Todo, error)

	// QueryTodos returns every todo matching the filter, ordered by the
	// given sort key
	QueryTodos(ctx context.Context, filter TodoFilter, sort TodoSort) ([]model.Todo, error)

	// CreateTodo persists a new todo
	CreateTodo(ctx context.Context, todo model.Todo) error

	// UpdateTodo applies a partial update and returns the updated todo,
	// or ErrNotFound if no todo with that id exists. The updatedAt
	// timestamp is refreshed on every call.
	UpdateTodo(ctx context.Context, id model.TodoID, updates TodoUpdates) (model.Todo, error)

	// DeleteTodo removes a todo, or returns ErrNotFound if it does not exist
	DeleteTodo(ctx context.Context, id model.TodoID) error
}
