package shortcutdata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/lolbunny/internal/core/domain/shortcut"
	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
	"gopkg.in/yaml.v3"
)

//go:embed shortcuts.yaml
var embeddedShortcuts []byte

// YAMLProvider implements the ShortcutProvider interface by decoding the
// catalog compiled into the binary.
type YAMLProvider struct{}

// NewYAMLProvider creates a new YAMLProvider.
func NewYAMLProvider() (ports.ShortcutProvider, error) {
	return &YAMLProvider{}, nil
}

// GetCatalog decodes the embedded catalog. Unknown fields and unknown hop
// kinds are errors. An empty document yields an empty catalog.
func (p *YAMLProvider) GetCatalog() (shortcut.Catalog, error) {
	var catalog shortcut.Catalog

	if len(embeddedShortcuts) == 0 {
		return catalog, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(embeddedShortcuts))
	decoder.KnownFields(true)

	if err := decoder.Decode(&catalog); err != nil {
		// A document holding only comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return shortcut.Catalog{}, nil
		}
		return shortcut.Catalog{}, fmt.Errorf("failed to unmarshal embedded shortcut catalog: %w", err)
	}

	if err := validateCatalog(catalog); err != nil {
		return shortcut.Catalog{}, fmt.Errorf("invalid embedded shortcut catalog: %w", err)
	}
	return catalog, nil
}

// validateCatalog rejects entries that could never be reached by a parsed
// command.
func validateCatalog(c shortcut.Catalog) error {
	for i, e := range c.Shortcuts {
		if e.Token == "" {
			return fmt.Errorf("shortcut #%d has an empty token", i+1)
		}
		if strings.Contains(e.Token, " ") {
			return fmt.Errorf("shortcut %q contains a space", e.Token)
		}
		if !e.Hop.Kind.Valid() {
			return fmt.Errorf("shortcut %q has invalid kind %v", e.Token, e.Hop.Kind)
		}
		if e.Hop.Base == "" {
			return fmt.Errorf("shortcut %q has an empty base", e.Token)
		}
	}
	return nil
}
