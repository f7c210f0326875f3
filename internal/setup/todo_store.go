package setup

import (
	"context"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/core/port"
	"github.com/pkg/errors"
)

var getTodoStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TodoStore, error) {
	store, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
})
