package common

import (
	"net/url"

	"github.com/bornholm/todo/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramServer = "server"
	paramToken  = "token"
)

var (
	flagServer = &cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3002",
		EnvVars: []string{"TODO_CLI_SERVER"},
		Usage:   "Todo server base url",
	}
	flagToken = &cli.StringFlag{
		Name:    paramToken,
		Aliases: []string{"t"},
		EnvVars: []string{"TODO_CLI_TOKEN"},
		Usage:   "Api token used to authenticate requests",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagToken,
	}, flags...)
}

func GetTodoClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return client.New(
		client.WithBaseURL(serverURL),
		client.WithToken(ctx.String(paramToken)),
	), nil
}
