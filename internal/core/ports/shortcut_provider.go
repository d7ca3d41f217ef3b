package ports

import "github.com/AntonioJCosta/lolbunny/internal/core/domain/shortcut"

// ShortcutProvider defines the interface for sourcing the shortcut catalog,
// such as a compiled-in configuration file.
type ShortcutProvider interface {
	// GetCatalog loads the ordered shortcut entries and their alias tables.
	GetCatalog() (shortcut.Catalog, error)
}
