package main

import (
	"github.com/bornholm/todo/internal/command"
	"github.com/bornholm/todo/internal/command/todo"
	"github.com/bornholm/todo/internal/command/user"
)

func main() {
	command.Main(
		"todo-cli", "a todo server management tool",
		todo.Command(),
		user.Command(),
	)
}
