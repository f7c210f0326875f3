package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

// TestTodoStore runs the port.TodoStore contract against the store
// returned by the given factory. The factory is called once per
// subtest and must return an empty store.
func TestTodoStore(t *testing.T, factory func(t *testing.T) (port.TodoStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.TodoStore) error
	}

	alice := model.UserID("user-alice")
	bob := model.UserID("user-bob")

	testCases := []testCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

				created := newTodo(alice, todoSpec{
					Title:       "Buy groceries",
					Description: "milk, eggs",
					Status:      model.TodoStatusOpen,
					Priority:    model.TodoPriorityHigh,
					Due:         &due,
				})

				if err := store.CreateTodo(ctx, created); err != nil {
					return errors.WithStack(err)
				}

				todo, err := store.GetTodoByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := created.ID(), todo.ID(); e != g {
					t.Errorf("todo.ID(): expected '%s', got '%s'", e, g)
				}

				if e, g := "Buy groceries", todo.Title(); e != g {
					t.Errorf("todo.Title(): expected '%s', got '%s'", e, g)
				}

				if e, g := "milk, eggs", todo.Description(); e != g {
					t.Errorf("todo.Description(): expected '%s', got '%s'", e, g)
				}

				if e, g := model.TodoPriorityHigh, todo.Priority(); e != g {
					t.Errorf("todo.Priority(): expected '%s', got '%s'", e, g)
				}

				if todo.Due() == nil || !todo.Due().Equal(due) {
					t.Errorf("todo.Due(): expected '%s', got '%v'", due, todo.Due())
				}

				return nil
			},
		},
		{
			Name: "GetMissing",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				_, err := store.GetTodoByID(ctx, model.NewTodoID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%v'", err)
				}

				return nil
			},
		},
		{
			Name: "QueryScopedToOwner",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				mine := newTodo(alice, todoSpec{Title: "Mine"})
				theirs := newTodo(bob, todoSpec{Title: "Theirs"})

				for _, todo := range []model.Todo{mine, theirs} {
					if err := store.CreateTodo(ctx, todo); err != nil {
						return errors.WithStack(err)
					}
				}

				todos, err := store.QueryTodos(ctx, port.TodoFilter{OwnerID: alice}, defaultSort())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(todos); e != g {
					t.Fatalf("len(todos): expected '%d', got '%d'", e, g)
				}

				if e, g := mine.ID(), todos[0].ID(); e != g {
					t.Errorf("todos[0].ID(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "QueryFilters",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				march1 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
				march15 := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
				april1 := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

				taxes := newTodo(alice, todoSpec{Title: "File taxes", Priority: model.TodoPriorityHigh, Due: &march1})
				report := newTodo(alice, todoSpec{Title: "Quarterly Report", Description: "numbers", Status: model.TodoStatusDone, Due: &march15})
				garden := newTodo(alice, todoSpec{Title: "Garden", Description: "plant tomatoes", Due: &april1})
				someday := newTodo(alice, todoSpec{Title: "Learn piano"})

				for _, todo := range []model.Todo{taxes, report, garden, someday} {
					if err := store.CreateTodo(ctx, todo); err != nil {
						return errors.WithStack(err)
					}
				}

				status := model.TodoStatusDone
				priority := model.TodoPriorityHigh

				assertQuery(t, ctx, store, "status", port.TodoFilter{OwnerID: alice, Status: &status}, report.ID())
				assertQuery(t, ctx, store, "priority", port.TodoFilter{OwnerID: alice, Priority: &priority}, taxes.ID())
				assertQuery(t, ctx, store, "dueRange", port.TodoFilter{OwnerID: alice, DueFrom: &march1, DueTo: &march15}, taxes.ID(), report.ID())
				assertQuery(t, ctx, store, "dueFromExcludesNil", port.TodoFilter{OwnerID: alice, DueFrom: &march1}, taxes.ID(), report.ID(), garden.ID())
				assertQuery(t, ctx, store, "keywordTitle", port.TodoFilter{OwnerID: alice, Keyword: "report"}, report.ID())
				assertQuery(t, ctx, store, "keywordDescription", port.TodoFilter{OwnerID: alice, Keyword: "TOMATO"}, garden.ID())
				assertQuery(t, ctx, store, "keywordNoMatch", port.TodoFilter{OwnerID: alice, Keyword: "unrelated"})

				open := model.TodoStatusOpen
				assertQuery(t, ctx, store, "combined", port.TodoFilter{OwnerID: alice, Status: &open, Priority: &priority, Keyword: "taxes"}, taxes.ID())
				assertQuery(t, ctx, store, "combinedNoMatch", port.TodoFilter{OwnerID: alice, Status: &status, Priority: &priority, Keyword: "taxes"})

				return nil
			},
		},
		{
			Name: "QuerySort",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				march1 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
				april1 := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

				base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

				first := newTodo(alice, todoSpec{Title: "First", Priority: model.TodoPriorityLow, Due: &april1, CreatedAt: base, UpdatedAt: base.Add(2 * time.Hour)})
				second := newTodo(alice, todoSpec{Title: "Second", Priority: model.TodoPriorityHigh, Due: &march1, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(time.Hour)})
				third := newTodo(alice, todoSpec{Title: "Third", Priority: model.TodoPriorityMid, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base})

				for _, todo := range []model.Todo{first, second, third} {
					if err := store.CreateTodo(ctx, todo); err != nil {
						return errors.WithStack(err)
					}
				}

				filter := port.TodoFilter{OwnerID: alice}

				// Default ordering, most recently touched first
				assertSort(t, ctx, store, "updatedAtDesc", filter, port.TodoSort{Field: port.SortFieldUpdatedAt, Order: port.SortOrderDesc}, first.ID(), second.ID(), third.ID())
				assertSort(t, ctx, store, "createdAtAsc", filter, port.TodoSort{Field: port.SortFieldCreatedAt, Order: port.SortOrderAsc}, first.ID(), second.ID(), third.ID())
				// A missing deadline sorts like a SQL NULL, before any value
				assertSort(t, ctx, store, "dueAsc", filter, port.TodoSort{Field: port.SortFieldDue, Order: port.SortOrderAsc}, third.ID(), second.ID(), first.ID())
				assertSort(t, ctx, store, "dueDesc", filter, port.TodoSort{Field: port.SortFieldDue, Order: port.SortOrderDesc}, first.ID(), second.ID(), third.ID())
				// Priorities order on their stored representation
				assertSort(t, ctx, store, "priorityAsc", filter, port.TodoSort{Field: port.SortFieldPriority, Order: port.SortOrderAsc}, second.ID(), first.ID(), third.ID())

				return nil
			},
		},
		{
			Name: "QuerySortTiebreak",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

				first := newTodo(alice, todoSpec{Title: "First", Due: &due})
				second := newTodo(alice, todoSpec{Title: "Second", Due: &due})

				for _, todo := range []model.Todo{first, second} {
					if err := store.CreateTodo(ctx, todo); err != nil {
						return errors.WithStack(err)
					}
				}

				// Equal sort keys fall back to id ascending, whatever the order
				assertSort(t, ctx, store, "asc", port.TodoFilter{OwnerID: alice}, port.TodoSort{Field: port.SortFieldDue, Order: port.SortOrderAsc}, first.ID(), second.ID())
				assertSort(t, ctx, store, "desc", port.TodoFilter{OwnerID: alice}, port.TodoSort{Field: port.SortFieldDue, Order: port.SortOrderDesc}, first.ID(), second.ID())

				return nil
			},
		},
		{
			Name: "UpdatePartial",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

				created := newTodo(alice, todoSpec{Title: "Original", Description: "keep me", Due: &due})

				if err := store.CreateTodo(ctx, created); err != nil {
					return errors.WithStack(err)
				}

				title := "Renamed"
				status := model.TodoStatusDone

				todo, err := store.UpdateTodo(ctx, created.ID(), port.TodoUpdates{
					Title:  &title,
					Status: &status,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Renamed", todo.Title(); e != g {
					t.Errorf("todo.Title(): expected '%s', got '%s'", e, g)
				}

				if e, g := model.TodoStatusDone, todo.Status(); e != g {
					t.Errorf("todo.Status(): expected '%s', got '%s'", e, g)
				}

				if e, g := "keep me", todo.Description(); e != g {
					t.Errorf("todo.Description(): expected '%s', got '%s'", e, g)
				}

				// An untouched due survives unrelated updates
				if todo.Due() == nil || !todo.Due().Equal(due) {
					t.Errorf("todo.Due(): expected '%s', got '%v'", due, todo.Due())
				}

				if !todo.UpdatedAt().After(created.UpdatedAt()) {
					t.Errorf("todo.UpdatedAt(): expected a timestamp after '%s', got '%s'", created.UpdatedAt(), todo.UpdatedAt())
				}

				return nil
			},
		},
		{
			Name: "UpdateDueThreeStates",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

				created := newTodo(alice, todoSpec{Title: "Deadline"})

				if err := store.CreateTodo(ctx, created); err != nil {
					return errors.WithStack(err)
				}

				todo, err := store.UpdateTodo(ctx, created.ID(), port.TodoUpdates{
					Due: model.NewNullable(due),
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if todo.Due() == nil || !todo.Due().Equal(due) {
					t.Errorf("todo.Due(): expected '%s', got '%v'", due, todo.Due())
				}

				todo, err = store.UpdateTodo(ctx, created.ID(), port.TodoUpdates{
					Due: model.NewNull[time.Time](),
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if todo.Due() != nil {
					t.Errorf("todo.Due(): expected nil, got '%v'", todo.Due())
				}

				return nil
			},
		},
		{
			Name: "UpdateMissing",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				title := "Renamed"

				_, err := store.UpdateTodo(ctx, model.NewTodoID(), port.TodoUpdates{Title: &title})
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%v'", err)
				}

				return nil
			},
		},
		{
			Name: "Delete",
			Run: func(t *testing.T, ctx context.Context, store port.TodoStore) error {
				created := newTodo(alice, todoSpec{Title: "Ephemeral"})

				if err := store.CreateTodo(ctx, created); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteTodo(ctx, created.ID()); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeleteTodo(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%v'", err)
				}

				if _, err := store.GetTodoByID(ctx, created.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%v'", err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}

type todoSpec struct {
	Title       string
	Description string
	Status      model.TodoStatus
	Priority    model.TodoPriority
	Due         *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func newTodo(ownerID model.UserID, spec todoSpec) model.Todo {
	if spec.Status == "" {
		spec.Status = model.TodoStatusOpen
	}

	if spec.Priority == "" {
		spec.Priority = model.TodoPriorityMid
	}

	if spec.CreatedAt.IsZero() {
		spec.CreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	if spec.UpdatedAt.IsZero() {
		spec.UpdatedAt = spec.CreatedAt
	}

	return model.NewReadOnlyTodo(model.NewTodoID(), ownerID, spec.Title, spec.Description, spec.Status, spec.Priority, spec.Due, spec.CreatedAt, spec.UpdatedAt)
}

func assertQuery(t *testing.T, ctx context.Context, store port.TodoStore, name string, filter port.TodoFilter, expected ...model.TodoID) {
	t.Helper()

	todos, err := store.QueryTodos(ctx, filter, defaultSort())
	if err != nil {
		t.Fatalf("[%s] %+v", name, errors.WithStack(err))
	}

	if e, g := len(expected), len(todos); e != g {
		t.Errorf("[%s] len(todos): expected '%d', got '%d'", name, e, g)
		return
	}

	found := map[model.TodoID]bool{}
	for _, todo := range todos {
		found[todo.ID()] = true
	}

	for _, id := range expected {
		if !found[id] {
			t.Errorf("[%s] todos: expected todo '%s' in results", name, id)
		}
	}
}

func assertSort(t *testing.T, ctx context.Context, store port.TodoStore, name string, filter port.TodoFilter, sort port.TodoSort, expected ...model.TodoID) {
	t.Helper()

	todos, err := store.QueryTodos(ctx, filter, sort)
	if err != nil {
		t.Fatalf("[%s] %+v", name, errors.WithStack(err))
	}

	if e, g := len(expected), len(todos); e != g {
		t.Fatalf("[%s] len(todos): expected '%d', got '%d'", name, e, g)
	}

	for i, id := range expected {
		if e, g := id, todos[i].ID(); e != g {
			t.Errorf("[%s] todos[%d].ID(): expected '%s', got '%s'", name, i, e, g)
		}
	}
}

func defaultSort() port.TodoSort {
	return port.TodoSort{
		Field: port.SortFieldUpdatedAt,
		Order: port.SortOrderDesc,
	}
}
