package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

// TestUserStore runs the port.UserStore contract against the store
// returned by the given factory.
func TestUserStore(t *testing.T, factory func(t *testing.T) (port.UserStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.UserStore) error
	}

	testCases := []testCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				created := model.NewReadOnlyUser(model.NewUserID(), "alice@example.net", "Alice")

				if err := store.CreateUser(ctx, created); err != nil {
					return errors.WithStack(err)
				}

				user, err := store.GetUserByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "alice@example.net", user.Email(); e != g {
					t.Errorf("user.Email(): expected '%s', got '%s'", e, g)
				}

				if e, g := "Alice", user.DisplayName(); e != g {
					t.Errorf("user.DisplayName(): expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetMissing",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				_, err := store.GetUserByID(ctx, model.NewUserID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%v'", err)
				}

				return nil
			},
		},
		{
			Name: "AuthTokens",
			Run: func(t *testing.T, ctx context.Context, store port.UserStore) error {
				user := model.NewReadOnlyUser(model.NewUserID(), "bob@example.net", "Bob")

				if err := store.CreateUser(ctx, user); err != nil {
					return errors.WithStack(err)
				}

				token := model.NewReadOnlyAuthToken(model.NewAuthTokenID(), user.ID(), "laptop", "secret-token-value")

				if err := store.CreateAuthToken(ctx, token); err != nil {
					return errors.WithStack(err)
				}

				found, err := store.FindAuthToken(ctx, "secret-token-value")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := user.ID(), found.OwnerID(); e != g {
					t.Errorf("found.OwnerID(): expected '%s', got '%s'", e, g)
				}

				if e, g := "laptop", found.Label(); e != g {
					t.Errorf("found.Label(): expected '%s', got '%s'", e, g)
				}

				if _, err := store.FindAuthToken(ctx, "unknown-token-value"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got '%v'", err)
				}

				tokens, err := store.GetUserAuthTokens(ctx, user.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(tokens); e != g {
					t.Fatalf("len(tokens): expected '%d', got '%d'", e, g)
				}

				if err := store.DeleteAuthToken(ctx, token.ID()); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.FindAuthToken(ctx, "secret-token-value"); !errors.Is(err, port.ErrNotFound) {
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
