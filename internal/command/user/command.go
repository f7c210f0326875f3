package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/core/model"
	"github.com/bornholm/todo/internal/setup"
)

// Command manages accounts directly against the configured storage,
// for bootstrapping a fresh server.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage user accounts and api tokens",
		Subcommands: []*cli.Command{
			createCommand(),
			createTokenCommand(),
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new user account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Usage:    "User email",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "User display name",
			},
		},
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			userStore, err := setup.NewUserStoreFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not configure user store")
			}

			user := model.NewReadOnlyUser(model.NewUserID(), ctx.String("email"), ctx.String("name"))

			if err := userStore.CreateUser(ctx.Context, user); err != nil {
				return errors.Wrap(err, "could not create user")
			}

			fmt.Println(user.ID())

			return nil
		},
	}
}

func createTokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-token",
		Usage: "Create a new api token for a user",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "User id",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "Token label",
				Value: "default",
			},
		},
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			userStore, err := setup.NewUserStoreFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.Wrap(err, "could not configure user store")
			}

			userID := model.UserID(ctx.String("user"))

			if _, err := userStore.GetUserByID(ctx.Context, userID); err != nil {
				return errors.Wrapf(err, "could not find user '%s'", userID)
			}

			value, err := generateTokenValue()
			if err != nil {
				return errors.Wrap(err, "could not generate token value")
			}

			token := model.NewReadOnlyAuthToken(model.NewAuthTokenID(), userID, ctx.String("label"), value)

			if err := userStore.CreateAuthToken(ctx.Context, token); err != nil {
				return errors.Wrap(err, "could not create token")
			}

			fmt.Println(token.Value())

			return nil
		},
	}
}

func generateTokenValue() (string, error) {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(data), nil
}
