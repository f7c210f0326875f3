package service

import (
	"testing"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
)

func TestBuildTodoFilterDefaults(t *testing.T) {
	ownerID := model.UserID("user-alice")

	filter, sort := BuildTodoFilter(ownerID, NewTodoQuery())

	if e, g := ownerID, filter.OwnerID; e != g {
		t.Errorf("filter.OwnerID: expected '%s', got '%s'", e, g)
	}

	if filter.Status != nil || filter.Priority != nil || filter.DueFrom != nil || filter.DueTo != nil {
		t.Errorf("filter: expected no optional criteria, got %+v", filter)
	}

	// No keyword means no text filter at all
	if e, g := "", filter.Keyword; e != g {
		t.Errorf("filter.Keyword: expected '%s', got '%s'", e, g)
	}

	if e, g := port.SortFieldUpdatedAt, sort.Field; e != g {
		t.Errorf("sort.Field: expected '%s', got '%s'", e, g)
	}

	if e, g := port.SortOrderDesc, sort.Order; e != g {
		t.Errorf("sort.Order: expected '%s', got '%s'", e, g)
	}
}

func TestBuildTodoFilterComposition(t *testing.T) {
	ownerID := model.UserID("user-alice")

	status := model.TodoStatusOpen
	priority := model.TodoPriorityHigh
	dueFrom := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	dueTo := time.Date(2026, time.March, 31, 23, 59, 59, 999000000, time.UTC)

	query := TodoQuery{
		Status:    &status,
		Priority:  &priority,
		DueFrom:   &dueFrom,
		DueTo:     &dueTo,
		Keyword:   "report",
		SortBy:    port.SortFieldDue,
		SortOrder: port.SortOrderAsc,
	}

	filter, sort := BuildTodoFilter(ownerID, query)

	if e, g := ownerID, filter.OwnerID; e != g {
		t.Errorf("filter.OwnerID: expected '%s', got '%s'", e, g)
	}

	if filter.Status == nil || *filter.Status != status {
		t.Errorf("filter.Status: expected '%s', got '%v'", status, filter.Status)
	}

	if filter.Priority == nil || *filter.Priority != priority {
		t.Errorf("filter.Priority: expected '%s', got '%v'", priority, filter.Priority)
	}

	if filter.DueFrom == nil || !filter.DueFrom.Equal(dueFrom) {
		t.Errorf("filter.DueFrom: expected '%s', got '%v'", dueFrom, filter.DueFrom)
	}

	if filter.DueTo == nil || !filter.DueTo.Equal(dueTo) {
		t.Errorf("filter.DueTo: expected '%s', got '%v'", dueTo, filter.DueTo)
	}

	if e, g := "report", filter.Keyword; e != g {
		t.Errorf("filter.Keyword: expected '%s', got '%s'", e, g)
	}

	if e, g := port.SortFieldDue, sort.Field; e != g {
		t.Errorf("sort.Field: expected '%s', got '%s'", e, g)
	}

	if e, g := port.SortOrderAsc, sort.Order; e != g {
		t.Errorf("sort.Order: expected '%s', got '%s'", e, g)
	}
}

func TestBuildTodoFilterEmptySort(t *testing.T) {
	// A zero-value query still produces a usable sort key
	_, sort := BuildTodoFilter(model.UserID("user-alice"), TodoQuery{})

	if e, g := port.SortFieldUpdatedAt, sort.Field; e != g {
		t.Errorf("sort.Field: expected '%s', got '%s'", e, g)
	}

	if e, g := port.SortOrderDesc, sort.Order; e != g {
		t.Errorf("sort.Order: expected '%s', got '%s'", e, g)
	}
}
