package service

import (
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
)

// TodoQuery is a validated, normalized list query.
type TodoQuery struct {
	Status    *model.TodoStatus
	Priority  *model.TodoPriority
	DueFrom   *time.Time
	DueTo     *time.Time
	Keyword   string
	SortBy    port.SortField
	SortOrder port.SortOrder
}

// NewTodoQuery returns a query with the default sort key
// (updatedAt descending).
func NewTodoQuery() TodoQuery {
	return TodoQuery{
		SortBy:    port.SortFieldUpdatedAt,
		SortOrder: port.SortOrderDesc,
	}
}

// BuildTodoFilter translates a query into a store-agnostic filter and
// sort descriptor. The filter is always scoped to ownerID; an absent
// keyword produces no text filter at all.
func BuildTodoFilter(ownerID model.UserID, query TodoQuery) (port.TodoFilter, port.TodoSort) {
	filter := port.TodoFilter{
		OwnerID: ownerID,
	}

	if query.Status != nil {
		filter.Status = query.Status
	}

	if query.Priority != nil {
		filter.Priority = query.Priority
	}

	if query.DueFrom != nil {
		filter.DueFrom = query.DueFrom
	}

	if query.DueTo != nil {
		filter.DueTo = query.DueTo
	}

	if query.Keyword != "" {
		filter.Keyword = query.Keyword
	}

	sort := port.TodoSort{
		Field: query.SortBy,
		Order: query.SortOrder,
	}

	if sort.Field == "" {
		sort.Field = port.SortFieldUpdatedAt
	}

	if sort.Order == "" {
		sort.Order = port.SortOrderDesc
	}

	return filter, sort
}
