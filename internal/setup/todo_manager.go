package setup

import (
	"context"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/core/service"
	"github.com/pkg/errors"
)

var getTodoManager = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.TodoManager, error) {
	todoStore, err := getTodoStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewTodoManager(todoStore), nil
})
