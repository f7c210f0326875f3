package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
)

func TestListTodos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e, g := "/api/v1/todos", r.URL.Path; e != g {
			t.Errorf("r.URL.Path: expected '%s', got '%s'", e, g)
		}

		if e, g := "Bearer test-token", r.Header.Get("Authorization"); e != g {
			t.Errorf("Authorization: expected '%s', got '%s'", e, g)
		}

		if e, g := "open", r.URL.Query().Get("status"); e != g {
			t.Errorf("status: expected '%s', got '%s'", e, g)
		}

		if e, g := "due", r.URL.Query().Get("sortBy"); e != g {
			t.Errorf("sortBy: expected '%s', got '%s'", e, g)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "todo-1", "title": "Buy milk"},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	todos, err := client.ListTodos(context.Background(),
		WithStatus("open"),
		WithSort("due", "asc"),
	)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(todos); e != g {
		t.Fatalf("len(todos): expected '%d', got '%d'", e, g)
	}

	if e, g := "Buy milk", todos[0].Title; e != g {
		t.Errorf("todos[0].Title: expected '%s', got '%s'", e, g)
	}
}

func TestErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "NOT_FOUND",
			"message": "resource not found",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.GetTodo(context.Background(), "missing")

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err: expected *client.Error, got '%v'", err)
	}

	if e, g := "NOT_FOUND", apiErr.Code; e != g {
		t.Errorf("apiErr.Code: expected '%s', got '%s'", e, g)
	}

	if e, g := http.StatusNotFound, apiErr.StatusCode; e != g {
		t.Errorf("apiErr.StatusCode: expected '%d', got '%d'", e, g)
	}
}

func TestRetryTransport(t *testing.T) {
	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer server.Close()

	client := newTestClient(t, server)

	if _, err := client.ListTodos(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(2), calls.Load(); e != g {
		t.Errorf("calls: expected '%d', got '%d'", e, g)
	}
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	baseURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return New(
		WithBaseURL(baseURL),
		WithToken("test-token"),
	)
}
