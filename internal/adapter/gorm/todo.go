package gorm

import (
	"time"

	"github.com/bornholm/todo/internal/core/model"
)

type Todo struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	OwnerID string `gorm:"index"`

	Title       string
	Description string

	Status   string `gorm:"index"`
	Priority string `gorm:"index"`

	Due *time.Time `gorm:"index"`
}

func fromTodo(t model.Todo) *Todo {
	return &Todo{
		ID:          string(t.ID()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		OwnerID:     string(t.OwnerID()),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      string(t.Status()),
		Priority:    string(t.Priority()),
		Due:         t.Due(),
	}
}

type wrappedTodo struct {
	t *Todo
}

// ID implements model.Todo.
func (w *wrappedTodo) ID() model.TodoID {
	return model.TodoID(w.t.ID)
}

// OwnerID implements model.Todo.
func (w *wrappedTodo) OwnerID() model.UserID {
	return model.UserID(w.t.OwnerID)
}

// Title implements model.Todo.
func (w *wrappedTodo) Title() string {
	return w.t.Title
}

// Description implements model.Todo.
func (w *wrappedTodo) Description() string {
	return w.t.Description
}

// Status implements model.Todo.
func (w *wrappedTodo) Status() model.TodoStatus {
	return model.TodoStatus(w.t.Status)
}

// Priority implements model.Todo.
func (w *wrappedTodo) Priority() model.TodoPriority {
	return model.TodoPriority(w.t.Priority)
}

// Due implements model.Todo.
func (w *wrappedTodo) Due() *time.Time {
	return w.t.Due
}

// CreatedAt implements model.Todo.
func (w *wrappedTodo) CreatedAt() time.Time {
	return w.t.CreatedAt
}

// UpdatedAt implements model.Todo.
func (w *wrappedTodo) UpdatedAt() time.Time {
	return w.t.UpdatedAt
}

var _ model.Todo = &wrappedTodo{}
