package ports

import "github.com/AntonioJCosta/lolbunny/internal/core/domain/command"

/*
CommandParser defines the contract for splitting raw user input into a
shortcut token and its arguments.
This is a driven port, representing a domain capability.
*/
type CommandParser interface {
	Parse(raw string) command.Parsed
}
