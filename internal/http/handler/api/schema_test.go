package api

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

func TestCreateTodoRequestValidate(t *testing.T) {
	type testCase struct {
		Name           string
		Payload        string
		ExpectedFields []string
		Check          func(t *testing.T, req *CreateTodoRequest)
	}

	testCases := []testCase{
		{
			Name:    "Defaults",
			Payload: `{"title":"Buy milk"}`,
			Check: func(t *testing.T, req *CreateTodoRequest) {
				params, err := req.Validate()
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				if e, g := "Buy milk", params.Title; e != g {
					t.Errorf("params.Title: expected '%s', got '%s'", e, g)
				}

				if e, g := model.TodoStatusOpen, params.Status; e != g {
					t.Errorf("params.Status: expected '%s', got '%s'", e, g)
				}

				if e, g := model.TodoPriorityMid, params.Priority; e != g {
					t.Errorf("params.Priority: expected '%s', got '%s'", e, g)
				}

				if e, g := "", params.Description; e != g {
					t.Errorf("params.Description: expected '%s', got '%s'", e, g)
				}

				if params.Due != nil {
					t.Errorf("params.Due: expected nil, got '%v'", params.Due)
				}
			},
		},
		{
			Name:    "TitleTrimmed",
			Payload: `{"title":"  Buy milk  "}`,
			Check: func(t *testing.T, req *CreateTodoRequest) {
				params, err := req.Validate()
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				if e, g := "Buy milk", params.Title; e != g {
					t.Errorf("params.Title: expected '%s', got '%s'", e, g)
				}
			},
		},
		{
			Name:           "TitleMissing",
			Payload:        `{}`,
			ExpectedFields: []string{"title"},
		},
		{
			Name:           "TitleBlank",
			Payload:        `{"title":"   "}`,
			ExpectedFields: []string{"title"},
		},
		{
			Name:    "TitleAtLimit",
			Payload: `{"title":"` + strings.Repeat("a", 120) + `"}`,
			Check: func(t *testing.T, req *CreateTodoRequest) {
				if _, err := req.Validate(); err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}
			},
		},
		{
			Name:           "TitleOverLimit",
			Payload:        `{"title":"` + strings.Repeat("a", 121) + `"}`,
			ExpectedFields: []string{"title"},
		},
		{
			Name:    "DescriptionAtLimit",
			Payload: `{"title":"Buy milk","description":"` + strings.Repeat("a", 2000) + `"}`,
			Check: func(t *testing.T, req *CreateTodoRequest) {
				if _, err := req.Validate(); err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}
			},
		},
		{
			Name:           "DescriptionOverLimit",
			Payload:        `{"title":"Buy milk","description":"` + strings.Repeat("a", 2001) + `"}`,
			ExpectedFields: []string{"description"},
		},
		{
			Name:           "InvalidStatus",
			Payload:        `{"title":"Buy milk","status":"archived"}`,
			ExpectedFields: []string{"status"},
		},
		{
			Name:           "InvalidPriority",
			Payload:        `{"title":"Buy milk","priority":"urgent"}`,
			ExpectedFields: []string{"priority"},
		},
		{
			Name:           "InvalidDue",
			Payload:        `{"title":"Buy milk","due":"tomorrow"}`,
			ExpectedFields: []string{"due"},
		},
		{
			Name:           "AllInvalid",
			Payload:        `{"status":"archived","priority":"urgent","due":"tomorrow"}`,
			ExpectedFields: []string{"title", "status", "priority", "due"},
		},
		{
			Name:    "DueDateOnly",
			Payload: `{"title":"Buy milk","due":"2026-06-15"}`,
			Check: func(t *testing.T, req *CreateTodoRequest) {
				params, err := req.Validate()
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				expected := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

				if params.Due == nil || !params.Due.Equal(expected) {
					t.Errorf("params.Due: expected '%s', got '%v'", expected, params.Due)
				}
			},
		},
		{
			Name:    "DueTimestamp",
			Payload: `{"title":"Buy milk","due":"2026-06-15T18:30:00+02:00"}`,
			Check: func(t *testing.T, req *CreateTodoRequest) {
				params, err := req.Validate()
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				expected := time.Date(2026, time.June, 15, 16, 30, 0, 0, time.UTC)

				if params.Due == nil || !params.Due.Equal(expected) {
					t.Errorf("params.Due: expected '%s', got '%v'", expected, params.Due)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var req CreateTodoRequest
			if err := json.Unmarshal([]byte(tc.Payload), &req); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if len(tc.ExpectedFields) > 0 {
				_, err := req.Validate()
				assertValidationFields(t, err, port.ValidationSourceBody, tc.ExpectedFields)
				return
			}

			tc.Check(t, &req)
		})
	}
}

func TestUpdateTodoRequestValidate(t *testing.T) {
	t.Run("DueOmitted", func(t *testing.T) {
		var req UpdateTodoRequest
		if err := json.Unmarshal([]byte(`{"title":"Renamed"}`), &req); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		updates, err := req.Validate()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if updates.Title == nil || *updates.Title != "Renamed" {
			t.Errorf("updates.Title: expected 'Renamed', got '%v'", updates.Title)
		}

		if updates.Due.Set {
			t.Errorf("updates.Due.Set: expected false, got true")
		}
	})

	t.Run("DueNull", func(t *testing.T) {
		var req UpdateTodoRequest
		if err := json.Unmarshal([]byte(`{"due":null}`), &req); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		updates, err := req.Validate()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if !updates.Due.Set || !updates.Due.Null {
			t.Errorf("updates.Due: expected explicit null, got %+v", updates.Due)
		}
	})

	t.Run("DueSet", func(t *testing.T) {
		var req UpdateTodoRequest
		if err := json.Unmarshal([]byte(`{"due":"2026-06-15"}`), &req); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		updates, err := req.Validate()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		expected := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

		if !updates.Due.Set || updates.Due.Null || !updates.Due.Value.Equal(expected) {
			t.Errorf("updates.Due: expected '%s', got %+v", expected, updates.Due)
		}
	})

	t.Run("TitleBlank", func(t *testing.T) {
		var req UpdateTodoRequest
		if err := json.Unmarshal([]byte(`{"title":"  "}`), &req); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		_, err := req.Validate()
		assertValidationFields(t, err, port.ValidationSourceBody, []string{"title"})
	})

	t.Run("NullFieldsRejected", func(t *testing.T) {
		var req UpdateTodoRequest
		if err := json.Unmarshal([]byte(`{"title":null,"description":null,"status":null,"priority":null}`), &req); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		_, err := req.Validate()
		assertValidationFields(t, err, port.ValidationSourceBody, []string{"title", "description", "status", "priority"})
	})

	t.Run("DescriptionOverLimit", func(t *testing.T) {
		var req UpdateTodoRequest
		if err := json.Unmarshal([]byte(`{"description":"`+strings.Repeat("a", 2001)+`"}`), &req); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		_, err := req.Validate()
		assertValidationFields(t, err, port.ValidationSourceBody, []string{"description"})
	})

	t.Run("Empty", func(t *testing.T) {
		var req UpdateTodoRequest
		if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		updates, err := req.Validate()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if updates.Title != nil || updates.Description != nil || updates.Status != nil || updates.Priority != nil || updates.Due.Set {
			t.Errorf("updates: expected no changes, got %+v", updates)
		}
	})
}

func TestParseTodoQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		query, err := parseTodoQuery(url.Values{})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := port.SortFieldUpdatedAt, query.SortBy; e != g {
			t.Errorf("query.SortBy: expected '%s', got '%s'", e, g)
		}

		if e, g := port.SortOrderDesc, query.SortOrder; e != g {
			t.Errorf("query.SortOrder: expected '%s', got '%s'", e, g)
		}

		if query.Status != nil || query.Priority != nil || query.DueFrom != nil || query.DueTo != nil || query.Keyword != "" {
			t.Errorf("query: expected no criteria, got %+v", query)
		}
	})

	t.Run("DueToEndOfDay", func(t *testing.T) {
		query, err := parseTodoQuery(url.Values{
			"dueFrom": []string{"2026-06-01"},
			"dueTo":   []string{"2026-06-30"},
		})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		expectedFrom := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		// A bare dueTo date covers the whole day
		expectedTo := time.Date(2026, time.June, 30, 23, 59, 59, 999000000, time.UTC)

		if query.DueFrom == nil || !query.DueFrom.Equal(expectedFrom) {
			t.Errorf("query.DueFrom: expected '%s', got '%v'", expectedFrom, query.DueFrom)
		}

		if query.DueTo == nil || !query.DueTo.Equal(expectedTo) {
			t.Errorf("query.DueTo: expected '%s', got '%v'", expectedTo, query.DueTo)
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		_, err := parseTodoQuery(url.Values{
			"status":    []string{"archived"},
			"priority":  []string{"urgent"},
			"dueFrom":   []string{"junk"},
			"sortBy":    []string{"title"},
			"sortOrder": []string{"sideways"},
		})

		assertValidationFields(t, err, port.ValidationSourceQuery, []string{"status", "priority", "dueFrom", "sortBy", "sortOrder"})
	})
}

func assertValidationFields(t *testing.T, err error, source port.ValidationSource, expected []string) {
	t.Helper()

	var validationErr *port.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err: expected *port.ValidationError, got '%v'", err)
	}

	if e, g := source, validationErr.Source; e != g {
		t.Errorf("validationErr.Source: expected '%s', got '%s'", e, g)
	}

	if e, g := len(expected), len(validationErr.Fields); e != g {
		t.Fatalf("len(validationErr.Fields): expected '%d', got '%d' (%s)", e, g, validationErr)
	}

	found := map[string]bool{}
	for _, f := range validationErr.Fields {
		found[f.Path] = true
	}

	for _, path := range expected {
		if !found[path] {
			t.Errorf("validationErr.Fields: expected a '%s' entry", path)
		}
	}
}
