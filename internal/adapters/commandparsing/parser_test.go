package commandparsing

import (
	"testing"

	"github.com/AntonioJCosta/lolbunny/internal/core/domain/command"
)

func TestNewSpaceParser(t *testing.T) {
	parser := NewSpaceParser()
	if parser == nil {
		t.Fatal("NewSpaceParser() returned nil")
	}
	if _, ok := parser.(*SpaceParser); !ok {
		t.Errorf("NewSpaceParser() did not return a *SpaceParser, got %T", parser)
	}
}

func TestSpaceParser_Parse(t *testing.T) {
	parser := NewSpaceParser()
	tests := []struct {
		name string
		raw  string
		want command.Parsed
	}{
		{
			name: "command without params",
			raw:  "cal",
			want: command.Parsed{Command: "cal", Argument: "", Original: "cal"},
		},
		{
			name: "command with params",
			raw:  "cal param1 param2",
			want: command.Parsed{Command: "cal", Argument: "param1 param2", Original: "cal param1 param2"},
		},
		{
			name: "prepended whitespace",
			raw:  " cal param1 param2",
			want: command.Parsed{Command: "cal", Argument: "param1 param2", Original: "cal param1 param2"},
		},
		{
			name: "appended whitespace",
			raw:  "cal param1 param2 ",
			want: command.Parsed{Command: "cal", Argument: "param1 param2", Original: "cal param1 param2"},
		},
		{
			name: "surrounding whitespace",
			raw:  " cal param1 param2 ",
			want: command.Parsed{Command: "cal", Argument: "param1 param2", Original: "cal param1 param2"},
		},
		{
			name: "internal whitespace kept in argument",
			raw:  "g  rust   lang",
			want: command.Parsed{Command: "g", Argument: "rust   lang", Original: "g  rust   lang"},
		},
		{
			name: "empty input",
			raw:  "",
			want: command.Parsed{},
		},
		{
			name: "whitespace only",
			raw:  " \t\n ",
			want: command.Parsed{},
		},
		{
			name: "tab does not split the command",
			raw:  "jira\tFOO-1",
			want: command.Parsed{Command: "jira\tFOO-1", Argument: "", Original: "jira\tFOO-1"},
		},
		{
			name: "unicode argument",
			raw:  "g café crème",
			want: command.Parsed{Command: "g", Argument: "café crème", Original: "g café crème"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.Parse(tt.raw); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
