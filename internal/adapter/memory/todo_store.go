package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

// TodoStore is an in-memory implementation of port.TodoStore, mostly
// used in tests as a substitute for the sqlite-backed store.
type TodoStore struct {
	mutex sync.RWMutex
	todos map[model.TodoID]*todoRecord
}

type todoRecord struct {
	id          model.TodoID
	ownerID     model.UserID
	title       string
	description string
	status      model.TodoStatus
	priority    model.TodoPriority
	due         *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func (r *todoRecord) asTodo() model.Todo {
	return model.NewReadOnlyTodo(r.id, r.ownerID, r.title, r.description, r.status, r.priority, r.due, r.createdAt, r.updatedAt)
}

func NewTodoStore() *TodoStore {
	return &TodoStore{
		todos: map[model.TodoID]*todoRecord{},
	}
}

// GetTodoByID implements port.TodoStore.
func (s *TodoStore) GetTodoByID(ctx context.Context, id model.TodoID) (model.Todo, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, exists := s.todos[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return record.asTodo(), nil
}

// QueryTodos implements port.TodoStore.
func (s *TodoStore) QueryTodos(ctx context.Context, filter port.TodoFilter, todoSort port.TodoSort) ([]model.Todo, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	matched := make([]*todoRecord, 0)
	for _, record := range s.todos {
		if !matches(record, filter) {
			continue
		}

		matched = append(matched, record)
	}

	sort.Slice(matched, func(i, j int) bool {
		less, equal := compare(matched[i], matched[j], todoSort.Field)
		if equal {
			return matched[i].id < matched[j].id
		}

		if todoSort.Order == port.SortOrderDesc {
			return !less
		}

		return less
	})

	todos := make([]model.Todo, 0, len(matched))
	for _, record := range matched {
		todos = append(todos, record.asTodo())
	}

	return todos, nil
}

// CreateTodo implements port.TodoStore.
func (s *TodoStore) CreateTodo(ctx context.Context, todo model.Todo) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.todos[todo.ID()] = &todoRecord{
		id:          todo.ID(),
		ownerID:     todo.OwnerID(),
		title:       todo.Title(),
		description: todo.Description(),
		status:      todo.Status(),
		priority:    todo.Priority(),
		due:         todo.Due(),
		createdAt:   todo.CreatedAt(),
		updatedAt:   todo.UpdatedAt(),
	}

	return nil
}

// UpdateTodo implements port.TodoStore.
func (s *TodoStore) UpdateTodo(ctx context.Context, id model.TodoID, updates port.TodoUpdates) (model.Todo, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, exists := s.todos[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if updates.Title != nil {
		record.title = *updates.Title
	}

	if updates.Description != nil {
		record.description = *updates.Description
	}

	if updates.Status != nil {
		record.status = *updates.Status
	}

	if updates.Priority != nil {
		record.priority = *updates.Priority
	}

	if updates.Due.Set {
		if updates.Due.Null {
			record.due = nil
		} else {
			due := updates.Due.Value
			record.due = &due
		}
	}

	record.updatedAt = time.Now().UTC()

	return record.asTodo(), nil
}

// DeleteTodo implements port.TodoStore.
func (s *TodoStore) DeleteTodo(ctx context.Context, id model.TodoID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.todos[id]; !exists {
		return errors.WithStack(port.ErrNotFound)
	}

	delete(s.todos, id)

	return nil
}

func matches(record *todoRecord, filter port.TodoFilter) bool {
	if record.ownerID != filter.OwnerID {
		return false
	}

	if filter.Status != nil && record.status != *filter.Status {
		return false
	}

	if filter.Priority != nil && record.priority != *filter.Priority {
		return false
	}

	if filter.DueFrom != nil && (record.due == nil || record.due.Before(*filter.DueFrom)) {
		return false
	}

	if filter.DueTo != nil && (record.due == nil || record.due.After(*filter.DueTo)) {
		return false
	}

	if filter.Keyword != "" {
		keyword := strings.ToLower(filter.Keyword)
		title := strings.ToLower(record.title)
		description := strings.ToLower(record.description)

		if !strings.Contains(title, keyword) && !strings.Contains(description, keyword) {
			return false
		}
	}

	return true
}

// compare mirrors the ordering of the sqlite store: enum fields sort on
// their stored string value and a missing deadline sorts before any
// deadline, like a SQL NULL.
func compare(a *todoRecord, b *todoRecord, field port.SortField) (less bool, equal bool) {
	switch field {
	case port.SortFieldCreatedAt:
		return a.createdAt.Before(b.createdAt), a.createdAt.Equal(b.createdAt)
	case port.SortFieldDue:
		if a.due == nil || b.due == nil {
			return a.due == nil && b.due != nil, a.due == nil && b.due == nil
		}
		return a.due.Before(*b.due), a.due.Equal(*b.due)
	case port.SortFieldPriority:
		return a.priority < b.priority, a.priority == b.priority
	default:
		return a.updatedAt.Before(b.updatedAt), a.updatedAt.Equal(b.updatedAt)
	}
}

var _ port.TodoStore = &TodoStore{}
