package model

import (
	"time"

	"github.com/rs/xid"
)

type TodoID string

func NewTodoID() TodoID {
	return TodoID(xid.New().String())
}

type TodoStatus string

const (
	TodoStatusOpen TodoStatus = "open"
	TodoStatusDone TodoStatus = "done"
)

// TodoStatuses lists every legal status value.
var TodoStatuses = []TodoStatus{TodoStatusOpen, TodoStatusDone}

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusOpen, TodoStatusDone:
		return true
	}

	return false
}

type TodoPriority string

const (
	TodoPriorityLow  TodoPriority = "low"
	TodoPriorityMid  TodoPriority = "mid"
	TodoPriorityHigh TodoPriority = "high"
)

// TodoPriorities lists every legal priority value.
var TodoPriorities = []TodoPriority{TodoPriorityLow, TodoPriorityMid, TodoPriorityHigh}

func (p TodoPriority) IsValid() bool {
	switch p {
	case TodoPriorityLow, TodoPriorityMid, TodoPriorityHigh:
		return true
	}

	return false
}

type Todo interface {
	WithID[TodoID]
	WithOwner
	WithLifecycle

	Title() string
	Description() string
	Status() TodoStatus
	Priority() TodoPriority

	// Due returns the deadline of the todo, or nil when none is set.
	Due() *time.Time
}

type ReadOnlyTodo struct {
	id          TodoID
	ownerID     UserID
	title       string
	description string
	status      TodoStatus
	priority    TodoPriority
	due         *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// ID implements Todo.
func (t *ReadOnlyTodo) ID() TodoID {
	return t.id
}

// OwnerID implements Todo.
func (t *ReadOnlyTodo) OwnerID() UserID {
	return t.ownerID
}

// Title implements Todo.
func (t *ReadOnlyTodo) Title() string {
	return t.title
}

// Description implements Todo.
func (t *ReadOnlyTodo) Description() string {
	return t.description
}

// Status implements Todo.
func (t *ReadOnlyTodo) Status() TodoStatus {
	return t.status
}

// Priority implements Todo.
func (t *ReadOnlyTodo) Priority() TodoPriority {
	return t.priority
}

// Due implements Todo.
func (t *ReadOnlyTodo) Due() *time.Time {
	return t.due
}

// CreatedAt implements Todo.
func (t *ReadOnlyTodo) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt implements Todo.
func (t *ReadOnlyTodo) UpdatedAt() time.Time {
	return t.updatedAt
}

func NewReadOnlyTodo(id TodoID, ownerID UserID, title string, description string, status TodoStatus, priority TodoPriority, due *time.Time, createdAt time.Time, updatedAt time.Time) *ReadOnlyTodo {
	return &ReadOnlyTodo{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		due:         due,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

var _ Todo = &ReadOnlyTodo{}
