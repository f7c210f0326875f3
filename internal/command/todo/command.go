package todo

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/bornholm/todo/internal/command/common"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/http/handler/api"
	todoClient "github.com/bornholm/todo/pkg/client"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "Manage todos on a remote server",
		Subcommands: []*cli.Command{
			listCommand(),
			createCommand(),
			doneCommand(),
			removeCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List todos",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:  "status",
				Usage: "Only list todos with this status (open|done)",
			},
			&cli.StringFlag{
				Name:  "priority",
				Usage: "Only list todos with this priority (low|mid|high)",
			},
			&cli.StringFlag{
				Name:    "keyword",
				Aliases: []string{"q"},
				Usage:   "Only list todos matching this keyword",
			},
			&cli.StringFlag{
				Name:  "sort-by",
				Usage: "Sort key (updatedAt|createdAt|due|priority)",
			},
			&cli.StringFlag{
				Name:  "sort-order",
				Usage: "Sort order (asc|desc)",
			},
		),
		Action: func(ctx *cli.Context) error {
			client, err := common.GetTodoClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve todo client")
			}

			funcs := make([]todoClient.ListTodosOptionFunc, 0)

			if status := ctx.String("status"); status != "" {
				funcs = append(funcs, todoClient.WithStatus(status))
			}

			if priority := ctx.String("priority"); priority != "" {
				funcs = append(funcs, todoClient.WithPriority(priority))
			}

			if keyword := ctx.String("keyword"); keyword != "" {
				funcs = append(funcs, todoClient.WithKeyword(keyword))
			}

			if sortBy := ctx.String("sort-by"); sortBy != "" {
				funcs = append(funcs, todoClient.WithSort(sortBy, ctx.String("sort-order")))
			}

			todos, err := client.ListTodos(ctx.Context, funcs...)
			if err != nil {
				return errors.Wrap(err, "could not list todos")
			}

			return errors.WithStack(printJSON(todos))
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new todo",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Todo title",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Todo description",
			},
			&cli.StringFlag{
				Name:  "priority",
				Usage: "Todo priority (low|mid|high)",
			},
			&cli.StringFlag{
				Name:  "due",
				Usage: "Due date (YYYY-MM-DD or RFC 3339)",
			},
		),
		Action: func(ctx *cli.Context) error {
			client, err := common.GetTodoClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve todo client")
			}

			title := ctx.String("title")

			req := api.CreateTodoRequest{
				Title: &title,
			}

			if description := ctx.String("description"); description != "" {
				req.Description = &description
			}

			if priority := ctx.String("priority"); priority != "" {
				req.Priority = &priority
			}

			if due := ctx.String("due"); due != "" {
				req.Due = &due
			}

			todo, err := client.CreateTodo(ctx.Context, req)
			if err != nil {
				return errors.Wrap(err, "could not create todo")
			}

			return errors.WithStack(printJSON(todo))
		},
	}
}

func doneCommand() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark a todo as done",
		ArgsUsage: "TODO_ID",
		Flags:     common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			todoID := ctx.Args().First()
			if todoID == "" {
				return errors.New("missing todo id")
			}

			client, err := common.GetTodoClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve todo client")
			}

			todo, err := client.UpdateTodo(ctx.Context, todoID, api.UpdateTodoRequest{
				Status: model.NewNullable(string(model.TodoStatusDone)),
			})
			if err != nil {
				return errors.Wrap(err, "could not update todo")
			}

			return errors.WithStack(printJSON(todo))
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a todo",
		ArgsUsage: "TODO_ID",
		Flags:     common.WithCommonFlags(),
		Action: func(ctx *cli.Context) error {
			todoID := ctx.Args().First()
			if todoID == "" {
				return errors.New("missing todo id")
			}

			client, err := common.GetTodoClient(ctx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve todo client")
			}

			if err := client.DeleteTodo(ctx.Context, todoID); err != nil {
				return errors.Wrap(err, "could not delete todo")
			}

			return nil
		},
	}
}

func printJSON(payload any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(payload); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
