package redirect

import (
	"github.com/AntonioJCosta/lolbunny/internal/core/domain/command"
	"github.com/AntonioJCosta/lolbunny/internal/core/domain/hop"
	"github.com/AntonioJCosta/lolbunny/internal/core/domain/shortcut"
	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
	"github.com/rs/zerolog"
)

const (
	// DefaultFallbackURL receives the encoded input when no shortcut matches.
	DefaultFallbackURL = "https://google.com/search?q="
	// DefaultTitle is the name shown on the help page and search descriptor.
	DefaultTitle = "lolbunny"
)

// Option customizes a service.
type Option func(*service)

// WithFallbackURL sets the search URL used for unknown shortcuts.
func WithFallbackURL(u string) Option {
	return func(s *service) {
		if u != "" {
			s.fallbackURL = u
		}
	}
}

// WithSearchDescriptorURL sets the OpenSearch descriptor linked from the help page.
func WithSearchDescriptorURL(u string) Option {
	return func(s *service) { s.searchDescriptorURL = u }
}

// WithTitle sets the help page title.
func WithTitle(title string) Option {
	return func(s *service) {
		if title != "" {
			s.title = title
		}
	}
}

// WithLogger sets the logger used for resolution debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *service) { s.log = l }
}

type service struct {
	parser   ports.CommandParser
	registry *shortcut.Registry
	tables   hop.Tables

	fallbackURL         string
	searchDescriptorURL string
	title               string
	log                 zerolog.Logger

	help helpCache
}

// NewService creates a new redirect service over a fixed registry and
// alias tables. It panics if parser or registry is nil.
func NewService(
	parser ports.CommandParser,
	registry *shortcut.Registry,
	tables hop.Tables,
	opts ...Option,
) ports.RedirectService {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if registry == nil {
		panic("registry cannot be nil")
	}
	s := &service{
		parser:              parser,
		registry:            registry,
		tables:              tables,
		fallbackURL:         DefaultFallbackURL,
		searchDescriptorURL: "/opensearch.xml",
		title:               DefaultTitle,
		log:                 zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the destination URL for raw input.
func (s *service) Resolve(raw string) string {
	return s.Explain(raw).Destination
}

// Explain parses raw, resolves it and reports which path was taken.
func (s *service) Explain(raw string) ports.Resolution {
	parsed := s.parser.Parse(raw)
	res := s.resolveParsed(parsed)

	s.log.Debug().
		Str("command", parsed.Command).
		Bool("matched", res.Matched).
		Str("destination", res.Destination).
		Msg("resolved shortcut")

	return res
}

func (s *service) resolveParsed(parsed command.Parsed) ports.Resolution {
	entry, ok := s.registry.Lookup(parsed.Command)
	if !ok {
		return ports.Resolution{
			Parsed:      parsed,
			Destination: s.fallbackURL + hop.Encode(parsed.Original),
		}
	}
	return ports.Resolution{
		Parsed:      parsed,
		Matched:     true,
		Entry:       entry,
		Destination: entry.Hop.Apply(s.tables, parsed.Argument),
	}
}

// Examples lists every entry in registry order with its example URL.
func (s *service) Examples() []ports.ShortcutExample {
	entries := s.registry.Entries()
	examples := make([]ports.ShortcutExample, 0, len(entries))
	for _, e := range entries {
		examples = append(examples, ports.ShortcutExample{
			Entry:      e,
			ExampleURL: e.Hop.Example(s.tables),
		})
	}
	return examples
}

// HelpPage renders the help page on first use and returns the cached copy
// afterwards.
func (s *service) HelpPage() (string, error) {
	return s.help.get(func() (string, error) {
		return renderHelpPage(helpPageData{
			Title:               s.title,
			SearchDescriptorURL: s.searchDescriptorURL,
			Examples:            s.Examples(),
		})
	})
}
