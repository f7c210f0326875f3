package gorm

import (
	"context"
	"strings"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetTodoByID implements port.TodoStore.
func (s *Store) GetTodoByID(ctx context.Context, id model.TodoID) (model.Todo, error) {
	var todo Todo

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&todo, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTodo{&todo}, nil
}

// QueryTodos implements port.TodoStore.
func (s *Store) QueryTodos(ctx context.Context, filter port.TodoFilter, sort port.TodoSort) ([]model.Todo, error) {
	var todos []*Todo

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Todo{}).Where("owner_id = ?", string(filter.OwnerID))

		if filter.Status != nil {
			query = query.Where("status = ?", string(*filter.Status))
		}

		if filter.Priority != nil {
			query = query.Where("priority = ?", string(*filter.Priority))
		}

		if filter.DueFrom != nil {
			query = query.Where("due >= ?", *filter.DueFrom)
		}

		if filter.DueTo != nil {
			query = query.Where("due <= ?", *filter.DueTo)
		}

		if filter.Keyword != "" {
			// SQLite LIKE is case-insensitive for ASCII
			keyword := "%" + escapeLike(filter.Keyword) + "%"
			query = query.Where("title LIKE ? ESCAPE '\\' OR description LIKE ? ESCAPE '\\'", keyword, keyword)
		}

		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: sortColumn(sort.Field)},
			Desc:   sort.Order == port.SortOrderDesc,
		})

		// Stable ordering for identical sort keys
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: "id"},
		})

		if err := query.Find(&todos).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedTodos := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		wrappedTodos = append(wrappedTodos, &wrappedTodo{t})
	}

	return wrappedTodos, nil
}

// CreateTodo implements port.TodoStore.
func (s *Store) CreateTodo(ctx context.Context, todo model.Todo) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if res := db.Omit("Owner").Create(fromTodo(todo)); res.Error != nil {
			return errors.WithStack(res.Error)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// UpdateTodo implements port.TodoStore.
func (s *Store) UpdateTodo(ctx context.Context, id model.TodoID, updates port.TodoUpdates) (model.Todo, error) {
	var todo Todo

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&todo, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		values := map[string]any{
			"updated_at": time.Now().UTC(),
		}

		if updates.Title != nil {
			values["title"] = *updates.Title
		}

		if updates.Description != nil {
			values["description"] = *updates.Description
		}

		if updates.Status != nil {
			values["status"] = string(*updates.Status)
		}

		if updates.Priority != nil {
			values["priority"] = string(*updates.Priority)
		}

		if updates.Due.Set {
			if updates.Due.Null {
				values["due"] = nil
			} else {
				values["due"] = updates.Due.Value
			}
		}

		if err := db.Model(&todo).Updates(values).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := db.First(&todo, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedTodo{&todo}, nil
}

// DeleteTodo implements port.TodoStore.
func (s *Store) DeleteTodo(ctx context.Context, id model.TodoID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var todo Todo
		if err := db.First(&todo, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		if err := db.Delete(&todo).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func sortColumn(field port.SortField) string {
	switch field {
	case port.SortFieldCreatedAt:
		return "created_at"
	case port.SortFieldDue:
		return "due"
	case port.SortFieldPriority:
		return "priority"
	default:
		return "updated_at"
	}
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}

var _ port.TodoStore = &Store{}
