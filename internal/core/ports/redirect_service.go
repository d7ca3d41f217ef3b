package ports

import (
	"github.com/AntonioJCosta/lolbunny/internal/core/domain/command"
	"github.com/AntonioJCosta/lolbunny/internal/core/domain/shortcut"
)

// Resolution describes how a piece of input was resolved.
type Resolution struct {
	Parsed      command.Parsed
	Matched     bool           // false when the fallback search was used
	Entry       shortcut.Entry // zero unless Matched
	Destination string
}

// ShortcutExample pairs a registry entry with the URL it produces for the
// example argument.
type ShortcutExample struct {
	Entry      shortcut.Entry
	ExampleURL string
}

// RedirectService defines the contract for turning typed shortcuts into URLs.
type RedirectService interface {
	// Resolve returns the destination URL for raw input. It never fails;
	// unknown shortcuts resolve to the fallback search.
	Resolve(raw string) string

	// Explain resolves raw input and reports how the result was reached.
	Explain(raw string) Resolution

	// Examples lists every registry entry in order with its example URL.
	Examples() []ShortcutExample

	// HelpPage returns the rendered help page. It is computed once and cached.
	HelpPage() (string, error)
}
