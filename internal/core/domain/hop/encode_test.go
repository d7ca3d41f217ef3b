package hop

import (
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"safe string untouched", "https://x/a?b=c&d=e#f", "https://x/a?b=c&d=e#f"},
		{"space", "a b", "a%20b"},
		{"quote and angle brackets", `"<x>"`, "%22%3Cx%3E%22"},
		{"backtick", "a`b", "a%60b"},
		{"control characters", "a\tb\nc\x7f", "a%09b%0Ac%7F"},
		{"multi-byte utf8", "✓", "%E2%9C%93"},
		{"percent is not escaped", "100%", "100%"},
		{"punctuation passes", "!#$&'()*+,/:;=?@[]{}|~^\\", "!#$&'()*+,/:;=?@[]{}|~^\\"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.in); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode_Idempotent(t *testing.T) {
	inputs := []string{
		"https://google.com/search?q=rust",
		"plain",
		"a b <c>",
		"search?utf8=✓&search=x",
	}
	for _, in := range inputs {
		once := Encode(in)
		if twice := Encode(once); twice != once {
			t.Errorf("Encode(Encode(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestEncode_NeverRemovesCharacters(t *testing.T) {
	in := "a \"b\" <c> `d`\x01"
	out := Encode(in)
	if len(out) < len(in) {
		t.Fatalf("Encode(%q) shrank to %q", in, out)
	}
	for _, r := range "abcd" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("Encode(%q) = %q lost %q", in, out, r)
		}
	}
}
