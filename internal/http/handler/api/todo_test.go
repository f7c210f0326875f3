package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/todo/internal/adapter/memory"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/service"
	httpCtx "github.com/bornholm/todo/internal/http/context"
	"github.com/pkg/errors"
)

func TestTodoLifecycle(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	alice := model.NewReadOnlyUser("user-alice", "alice@example.net", "Alice")

	// An empty listing is an empty array, not null
	res := doRequest(t, server, alice, http.MethodGet, "/todos", "")
	assertStatus(t, res, http.StatusOK)

	var todos []Todo
	decode(t, res, &todos)

	if e, g := 0, len(todos); e != g {
		t.Errorf("len(todos): expected '%d', got '%d'", e, g)
	}

	res = doRequest(t, server, alice, http.MethodPost, "/todos", `{"title":"Buy milk","due":"2026-06-15"}`)
	assertStatus(t, res, http.StatusCreated)

	var created Todo
	decode(t, res, &created)

	if created.ID == "" {
		t.Errorf("created.ID: expected a non-empty id")
	}

	if e, g := "open", created.Status; e != g {
		t.Errorf("created.Status: expected '%s', got '%s'", e, g)
	}

	if e, g := "mid", created.Priority; e != g {
		t.Errorf("created.Priority: expected '%s', got '%s'", e, g)
	}

	if created.Due == nil || created.Due.Format("2006-01-02T15:04:05Z") != "2026-06-15T00:00:00Z" {
		t.Errorf("created.Due: expected '2026-06-15T00:00:00Z', got '%v'", created.Due)
	}

	res = doRequest(t, server, alice, http.MethodGet, "/todos/"+created.ID, "")
	assertStatus(t, res, http.StatusOK)

	res = doRequest(t, server, alice, http.MethodPatch, "/todos/"+created.ID, `{"status":"done","due":null}`)
	assertStatus(t, res, http.StatusOK)

	var updated Todo
	decode(t, res, &updated)

	if e, g := "done", updated.Status; e != g {
		t.Errorf("updated.Status: expected '%s', got '%s'", e, g)
	}

	if updated.Due != nil {
		t.Errorf("updated.Due: expected nil, got '%v'", updated.Due)
	}

	res = doRequest(t, server, alice, http.MethodDelete, "/todos/"+created.ID, "")
	assertStatus(t, res, http.StatusNoContent)

	res = doRequest(t, server, alice, http.MethodGet, "/todos/"+created.ID, "")
	assertErrorResponse(t, res, http.StatusNotFound, CodeNotFound)
}

func TestTodoOwnership(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	alice := model.NewReadOnlyUser("user-alice", "alice@example.net", "Alice")
	bob := model.NewReadOnlyUser("user-bob", "bob@example.net", "Bob")

	res := doRequest(t, server, alice, http.MethodPost, "/todos", `{"title":"Private"}`)
	assertStatus(t, res, http.StatusCreated)

	var created Todo
	decode(t, res, &created)

	// Another account sees a 403, not a 404
	res = doRequest(t, server, bob, http.MethodGet, "/todos/"+created.ID, "")
	assertErrorResponse(t, res, http.StatusForbidden, CodeForbidden)

	res = doRequest(t, server, bob, http.MethodPatch, "/todos/"+created.ID, `{"title":"Hijacked"}`)
	assertErrorResponse(t, res, http.StatusForbidden, CodeForbidden)

	res = doRequest(t, server, bob, http.MethodDelete, "/todos/"+created.ID, "")
	assertErrorResponse(t, res, http.StatusForbidden, CodeForbidden)

	// Bob's own listing stays empty
	res = doRequest(t, server, bob, http.MethodGet, "/todos", "")
	assertStatus(t, res, http.StatusOK)

	var todos []Todo
	decode(t, res, &todos)

	if e, g := 0, len(todos); e != g {
		t.Errorf("len(todos): expected '%d', got '%d'", e, g)
	}
}

func TestTodoUnauthenticated(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	res := doRequest(t, server, nil, http.MethodGet, "/todos", "")
	assertErrorResponse(t, res, http.StatusUnauthorized, CodeUnauthorized)

	res = doRequest(t, server, nil, http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	assertErrorResponse(t, res, http.StatusUnauthorized, CodeUnauthorized)
}

func TestTodoValidationErrors(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	alice := model.NewReadOnlyUser("user-alice", "alice@example.net", "Alice")

	res := doRequest(t, server, alice, http.MethodPost, "/todos", `{}`)
	body := assertErrorResponse(t, res, http.StatusBadRequest, CodeInvalidBody)

	if e, g := 1, len(body.Details); e != g {
		t.Fatalf("len(body.Details): expected '%d', got '%d'", e, g)
	}

	if e, g := "title", body.Details[0].Path; e != g {
		t.Errorf("body.Details[0].Path: expected '%s', got '%s'", e, g)
	}

	if e, g := "title is required", body.Details[0].Message; e != g {
		t.Errorf("body.Details[0].Message: expected '%s', got '%s'", e, g)
	}

	// Malformed JSON is a body error without details
	res = doRequest(t, server, alice, http.MethodPost, "/todos", `{"title":`)
	assertErrorResponse(t, res, http.StatusBadRequest, CodeInvalidBody)

	res = doRequest(t, server, alice, http.MethodGet, "/todos?status=archived", "")
	body = assertErrorResponse(t, res, http.StatusBadRequest, CodeInvalidParameter)

	if e, g := 1, len(body.Details); e != g {
		t.Fatalf("len(body.Details): expected '%d', got '%d'", e, g)
	}

	if e, g := "status", body.Details[0].Path; e != g {
		t.Errorf("body.Details[0].Path: expected '%s', got '%s'", e, g)
	}
}

func TestTodoQueryParameters(t *testing.T) {
	server := newTestServer(t)
	defer server.Close()

	alice := model.NewReadOnlyUser("user-alice", "alice@example.net", "Alice")

	for _, payload := range []string{
		`{"title":"File taxes","priority":"high","due":"2026-03-01"}`,
		`{"title":"Water the garden","description":"tomatoes first","due":"2026-04-01"}`,
		`{"title":"Learn piano"}`,
	} {
		res := doRequest(t, server, alice, http.MethodPost, "/todos", payload)
		assertStatus(t, res, http.StatusCreated)
	}

	type testCase struct {
		Name           string
		Query          string
		ExpectedTitles []string
	}

	testCases := []testCase{
		{
			Name:           "ByPriority",
			Query:          "?priority=high",
			ExpectedTitles: []string{"File taxes"},
		},
		{
			Name:           "ByKeyword",
			Query:          "?q=TOMATO",
			ExpectedTitles: []string{"Water the garden"},
		},
		{
			Name:           "ByDueRange",
			Query:          "?dueFrom=2026-03-01&dueTo=2026-03-31",
			ExpectedTitles: []string{"File taxes"},
		},
		{
			Name:           "SortByDueAsc",
			Query:          "?sortBy=due&sortOrder=asc",
			ExpectedTitles: []string{"Learn piano", "File taxes", "Water the garden"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			res := doRequest(t, server, alice, http.MethodGet, "/todos"+tc.Query, "")
			assertStatus(t, res, http.StatusOK)

			var todos []Todo
			decode(t, res, &todos)

			if e, g := len(tc.ExpectedTitles), len(todos); e != g {
				t.Fatalf("len(todos): expected '%d', got '%d'", e, g)
			}

			for i, title := range tc.ExpectedTitles {
				if e, g := title, todos[i].Title; e != g {
					t.Errorf("todos[%d].Title: expected '%s', got '%s'", i, e, g)
				}
			}
		})
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	handler := NewHandler(service.NewTodoManager(memory.NewTodoStore()))

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Stand-in for the authn middleware
		rawUser := r.Header.Get("X-Test-User")
		if rawUser != "" {
			parts := strings.SplitN(rawUser, "|", 3)
			user := model.NewReadOnlyUser(model.UserID(parts[0]), parts[1], parts[2])
			r = r.WithContext(httpCtx.SetUser(r.Context(), user))
		}

		handler.ServeHTTP(w, r)
	}))
}

func doRequest(t *testing.T, server *httptest.Server, user model.User, method string, path string, body string) *http.Response {
	t.Helper()

	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}

	req, err := http.NewRequest(method, server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if user != nil {
		req.Header.Set("X-Test-User", fmt.Sprintf("%s|%s|%s", user.ID(), user.Email(), user.DisplayName()))
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return res
}

func assertStatus(t *testing.T, res *http.Response, expected int) {
	t.Helper()

	if e, g := expected, res.StatusCode; e != g {
		t.Fatalf("res.StatusCode: expected '%d', got '%d'", e, g)
	}
}

func assertErrorResponse(t *testing.T, res *http.Response, statusCode int, code string) *ErrorResponse {
	t.Helper()

	assertStatus(t, res, statusCode)

	var body ErrorResponse
	decode(t, res, &body)

	if e, g := code, body.Code; e != g {
		t.Errorf("body.Code: expected '%s', got '%s'", e, g)
	}

	return &body
}

func decode(t *testing.T, res *http.Response, target any) {
	t.Helper()

	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
}
