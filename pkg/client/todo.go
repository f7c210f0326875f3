package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bornholm/todo/internal/http/handler/api"
	"github.com/pkg/errors"
)

type ListTodosOptions struct {
	Status    string
	Priority  string
	DueFrom   string
	DueTo     string
	Keyword   string
	SortBy    string
	SortOrder string
}

type ListTodosOptionFunc func(opts *ListTodosOptions)

func WithStatus(status string) ListTodosOptionFunc {
	return func(opts *ListTodosOptions) {
		opts.Status = status
	}
}

func WithPriority(priority string) ListTodosOptionFunc {
	return func(opts *ListTodosOptions) {
		opts.Priority = priority
	}
}

func WithDueRange(from, to string) ListTodosOptionFunc {
	return func(opts *ListTodosOptions) {
		opts.DueFrom = from
		opts.DueTo = to
	}
}

func WithKeyword(keyword string) ListTodosOptionFunc {
	return func(opts *ListTodosOptions) {
		opts.Keyword = keyword
	}
}

func WithSort(by, order string) ListTodosOptionFunc {
	return func(opts *ListTodosOptions) {
		opts.SortBy = by
		opts.SortOrder = order
	}
}

func NewListTodosOptions(funcs ...ListTodosOptionFunc) *ListTodosOptions {
	opts := &ListTodosOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func (c *Client) ListTodos(ctx context.Context, funcs ...ListTodosOptionFunc) ([]api.Todo, error) {
	opts := NewListTodosOptions(funcs...)

	query := url.Values{}
	for name, value := range map[string]string{
		"status":    opts.Status,
		"priority":  opts.Priority,
		"dueFrom":   opts.DueFrom,
		"dueTo":     opts.DueTo,
		"q":         opts.Keyword,
		"sortBy":    opts.SortBy,
		"sortOrder": opts.SortOrder,
	} {
		if value != "" {
			query.Set(name, value)
		}
	}

	var todos []api.Todo
	if err := c.jsonRequest(ctx, http.MethodGet, "/todos", query, nil, &todos); err != nil {
		return nil, errors.WithStack(err)
	}

	return todos, nil
}

func (c *Client) GetTodo(ctx context.Context, todoID string) (*api.Todo, error) {
	var todo api.Todo
	if err := c.jsonRequest(ctx, http.MethodGet, fmt.Sprintf("/todos/%s", todoID), nil, nil, &todo); err != nil {
		return nil, errors.WithStack(err)
	}

	return &todo, nil
}

func (c *Client) CreateTodo(ctx context.Context, req api.CreateTodoRequest) (*api.Todo, error) {
	var todo api.Todo
	if err := c.jsonRequest(ctx, http.MethodPost, "/todos", nil, req, &todo); err != nil {
		return nil, errors.WithStack(err)
	}

	return &todo, nil
}

func (c *Client) UpdateTodo(ctx context.Context, todoID string, req api.UpdateTodoRequest) (*api.Todo, error) {
	var todo api.Todo
	if err := c.jsonRequest(ctx, http.MethodPatch, fmt.Sprintf("/todos/%s", todoID), nil, req, &todo); err != nil {
		return nil, errors.WithStack(err)
	}

	return &todo, nil
}

func (c *Client) DeleteTodo(ctx context.Context, todoID string) error {
	if err := c.jsonRequest(ctx, http.MethodDelete, fmt.Sprintf("/todos/%s", todoID), nil, nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
