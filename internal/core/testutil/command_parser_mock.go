package testutil

import (
	"strings"

	"github.com/AntonioJCosta/lolbunny/internal/core/domain/command"
)

// MockCommandParser is a mock implementation of ports.CommandParser.
type MockCommandParser struct {
	ParseFunc func(raw string) command.Parsed
	Calls     []string
}

// Parse calls the mock ParseFunc, or splits on the first space if it is not set.
func (m *MockCommandParser) Parse(raw string) command.Parsed {
	m.Calls = append(m.Calls, raw)
	if m.ParseFunc != nil {
		return m.ParseFunc(raw)
	}
	trimmed := strings.TrimSpace(raw)
	cmd, arg, _ := strings.Cut(trimmed, " ")
	return command.Parsed{Command: cmd, Argument: strings.TrimSpace(arg), Original: trimmed}
}
