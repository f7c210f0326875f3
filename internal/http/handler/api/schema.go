package api

import (
	"encoding/json"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/bornholm/todo/internal/core/service"
	"github.com/pkg/errors"
)

const (
	titleMaxLength       = 120
	descriptionMaxLength = 2000

	messageTitleRequired      = "title is required"
	messageTitleTooLong       = "title must be 120 characters or less"
	messageDescriptionTooLong = "description must be 2000 characters or less"
	messageNotNull            = "must not be null"
	messageInvalidStatus      = "status must be one of open, done"
	messageInvalidPriority    = "priority must be one of low, mid, high"
	messageInvalidDate        = "must be a date (YYYY-MM-DD) or a RFC 3339 timestamp"
	messageInvalidSortBy      = "sortBy must be one of updatedAt, createdAt, due, priority"
	messageInvalidSortOrder   = "sortOrder must be one of asc, desc"
)

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type CreateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Due         *string `json:"due"`
}

// Validate normalizes the payload into creation params, applying the
// documented defaults, or returns a ValidationError naming every
// offending field.
func (req *CreateTodoRequest) Validate() (service.CreateTodoParams, error) {
	fields := make([]port.FieldError, 0)

	params := service.CreateTodoParams{
		Status:   model.TodoStatusOpen,
		Priority: model.TodoPriorityMid,
	}

	title := ""
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}

	switch {
	case title == "":
		fields = append(fields, port.FieldError{Path: "title", Message: messageTitleRequired})
	case utf8.RuneCountInString(title) > titleMaxLength:
		fields = append(fields, port.FieldError{Path: "title", Message: messageTitleTooLong})
	default:
		params.Title = title
	}

	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > descriptionMaxLength {
			fields = append(fields, port.FieldError{Path: "description", Message: messageDescriptionTooLong})
		} else {
			params.Description = *req.Description
		}
	}

	if req.Status != nil {
		status := model.TodoStatus(*req.Status)
		if !status.IsValid() {
			fields = append(fields, port.FieldError{Path: "status", Message: messageInvalidStatus})
		} else {
			params.Status = status
		}
	}

	if req.Priority != nil {
		priority := model.TodoPriority(*req.Priority)
		if !priority.IsValid() {
			fields = append(fields, port.FieldError{Path: "priority", Message: messageInvalidPriority})
		} else {
			params.Priority = priority
		}
	}

	if req.Due != nil {
		due, err := parseDateOrTime(*req.Due, false)
		if err != nil {
			fields = append(fields, port.FieldError{Path: "due", Message: messageInvalidDate})
		} else {
			params.Due = &due
		}
	}

	if len(fields) > 0 {
		return service.CreateTodoParams{}, errors.WithStack(port.NewValidationError(port.ValidationSourceBody, fields...))
	}

	return params, nil
}

type UpdateTodoRequest struct {
	Title       model.Nullable[string] `json:"title,omitzero"`
	Description model.Nullable[string] `json:"description,omitzero"`
	Status      model.Nullable[string] `json:"status,omitzero"`
	Priority    model.Nullable[string] `json:"priority,omitzero"`
	Due         model.Nullable[string] `json:"due,omitzero"`
}

// Validate normalizes the payload into a partial update. Every field is
// optional and omitted fields stay untouched. Only due may be
// explicitly null, which clears the deadline; null on any other field
// is rejected.
func (req *UpdateTodoRequest) Validate() (port.TodoUpdates, error) {
	fields := make([]port.FieldError, 0)

	var updates port.TodoUpdates

	if req.Title.Set {
		title := strings.TrimSpace(req.Title.Value)

		switch {
		case req.Title.Null:
			fields = append(fields, port.FieldError{Path: "title", Message: messageNotNull})
		case title == "":
			fields = append(fields, port.FieldError{Path: "title", Message: messageTitleRequired})
		case utf8.RuneCountInString(title) > titleMaxLength:
			fields = append(fields, port.FieldError{Path: "title", Message: messageTitleTooLong})
		default:
			updates.Title = &title
		}
	}

	if req.Description.Set {
		switch {
		case req.Description.Null:
			fields = append(fields, port.FieldError{Path: "description", Message: messageNotNull})
		case utf8.RuneCountInString(req.Description.Value) > descriptionMaxLength:
			fields = append(fields, port.FieldError{Path: "description", Message: messageDescriptionTooLong})
		default:
			updates.Description = &req.Description.Value
		}
	}

	if req.Status.Set {
		status := model.TodoStatus(req.Status.Value)

		switch {
		case req.Status.Null:
			fields = append(fields, port.FieldError{Path: "status", Message: messageNotNull})
		case !status.IsValid():
			fields = append(fields, port.FieldError{Path: "status", Message: messageInvalidStatus})
		default:
			updates.Status = &status
		}
	}

	if req.Priority.Set {
		priority := model.TodoPriority(req.Priority.Value)

		switch {
		case req.Priority.Null:
			fields = append(fields, port.FieldError{Path: "priority", Message: messageNotNull})
		case !priority.IsValid():
			fields = append(fields, port.FieldError{Path: "priority", Message: messageInvalidPriority})
		default:
			updates.Priority = &priority
		}
	}

	if req.Due.Set {
		if req.Due.Null {
			updates.Due = model.NewNull[time.Time]()
		} else {
			due, err := parseDateOrTime(req.Due.Value, false)
			if err != nil {
				fields = append(fields, port.FieldError{Path: "due", Message: messageInvalidDate})
			} else {
				updates.Due = model.NewNullable(due)
			}
		}
	}

	if len(fields) > 0 {
		return port.TodoUpdates{}, errors.WithStack(port.NewValidationError(port.ValidationSourceBody, fields...))
	}

	return updates, nil
}

func decodeBody[T any](body io.Reader) (*T, error) {
	var req T
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, errors.WithStack(port.NewValidationError(port.ValidationSourceBody))
	}

	return &req, nil
}

// parseTodoQuery validates the list query string. Absent parameters
// fall back to their defaults; any value outside the documented
// enumerations names the offending parameter.
func parseTodoQuery(query url.Values) (service.TodoQuery, error) {
	fields := make([]port.FieldError, 0)

	todoQuery := service.NewTodoQuery()

	if raw := query.Get("status"); raw != "" {
		status := model.TodoStatus(raw)
		if !status.IsValid() {
			fields = append(fields, port.FieldError{Path: "status", Message: messageInvalidStatus})
		} else {
			todoQuery.Status = &status
		}
	}

	if raw := query.Get("priority"); raw != "" {
		priority := model.TodoPriority(raw)
		if !priority.IsValid() {
			fields = append(fields, port.FieldError{Path: "priority", Message: messageInvalidPriority})
		} else {
			todoQuery.Priority = &priority
		}
	}

	if raw := query.Get("dueFrom"); raw != "" {
		dueFrom, err := parseDateOrTime(raw, false)
		if err != nil {
			fields = append(fields, port.FieldError{Path: "dueFrom", Message: messageInvalidDate})
		} else {
			todoQuery.DueFrom = &dueFrom
		}
	}

	if raw := query.Get("dueTo"); raw != "" {
		dueTo, err := parseDateOrTime(raw, true)
		if err != nil {
			fields = append(fields, port.FieldError{Path: "dueTo", Message: messageInvalidDate})
		} else {
			todoQuery.DueTo = &dueTo
		}
	}

	todoQuery.Keyword = query.Get("q")

	if raw := query.Get("sortBy"); raw != "" {
		sortBy := port.SortField(raw)
		if !sortBy.IsValid() {
			fields = append(fields, port.FieldError{Path: "sortBy", Message: messageInvalidSortBy})
		} else {
			todoQuery.SortBy = sortBy
		}
	}

	if raw := query.Get("sortOrder"); raw != "" {
		sortOrder := port.SortOrder(raw)
		if !sortOrder.IsValid() {
			fields = append(fields, port.FieldError{Path: "sortOrder", Message: messageInvalidSortOrder})
		} else {
			todoQuery.SortOrder = sortOrder
		}
	}

	if len(fields) > 0 {
		return service.TodoQuery{}, errors.WithStack(port.NewValidationError(port.ValidationSourceQuery, fields...))
	}

	return todoQuery, nil
}

// parseDateOrTime accepts either a bare YYYY-MM-DD date or a RFC 3339
// timestamp. A bare date is normalized to the start of that day in UTC,
// or to its last millisecond when endOfDay is set, so that a single-day
// range is inclusive.
func parseDateOrTime(value string, endOfDay bool) (time.Time, error) {
	if dateOnlyPattern.MatchString(value) {
		day, err := time.ParseInLocation(time.DateOnly, value, time.UTC)
		if err != nil {
			return time.Time{}, errors.WithStack(err)
		}

		if endOfDay {
			return day.Add(24*time.Hour - time.Millisecond), nil
		}

		return day, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}

	return parsed.UTC(), nil
}
