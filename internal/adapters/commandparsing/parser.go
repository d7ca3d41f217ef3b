package commandparsing

import (
	"strings"

	"github.com/AntonioJCosta/lolbunny/internal/core/domain/command"
	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
)

// SpaceParser splits input at the first space character.
type SpaceParser struct{}

// NewSpaceParser creates a new SpaceParser.
func NewSpaceParser() ports.CommandParser {
	return &SpaceParser{}
}

/*
Parse trims raw, takes everything up to the first space as the command and
the trimmed remainder as the argument. Only ' ' splits; other whitespace
inside the first word stays part of the command. Empty input yields three
empty strings.
*/
func (p *SpaceParser) Parse(raw string) command.Parsed {
	trimmed := strings.TrimSpace(raw)

	idx := strings.IndexByte(trimmed, ' ')
	if idx < 0 {
		idx = len(trimmed)
	}

	return command.Parsed{
		Command:  trimmed[:idx],
		Argument: strings.TrimSpace(trimmed[idx:]),
		Original: trimmed,
	}
}
