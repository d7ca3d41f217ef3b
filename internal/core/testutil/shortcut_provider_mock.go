package testutil

import "github.com/AntonioJCosta/lolbunny/internal/core/domain/shortcut"

// MockShortcutProvider is a mock implementation of ports.ShortcutProvider.
type MockShortcutProvider struct {
	GetCatalogFunc func() (shortcut.Catalog, error)
}

func (m *MockShortcutProvider) GetCatalog() (shortcut.Catalog, error) {
	if m.GetCatalogFunc != nil {
		return m.GetCatalogFunc()
	}
	return shortcut.Catalog{}, nil // Default behavior
}
