package testutil

import (
	"errors"

	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
)

// MockRedirectService is a mock implementation of ports.RedirectService.
type MockRedirectService struct {
	ResolveFunc  func(raw string) string
	ExplainFunc  func(raw string) ports.Resolution
	ExamplesFunc func() []ports.ShortcutExample
	HelpPageFunc func() (string, error)
}

func (m *MockRedirectService) Resolve(raw string) string {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(raw)
	}
	return ""
}

func (m *MockRedirectService) Explain(raw string) ports.Resolution {
	if m.ExplainFunc != nil {
		return m.ExplainFunc(raw)
	}
	return ports.Resolution{Destination: m.Resolve(raw)}
}

func (m *MockRedirectService) Examples() []ports.ShortcutExample {
	if m.ExamplesFunc != nil {
		return m.ExamplesFunc()
	}
	return nil
}

func (m *MockRedirectService) HelpPage() (string, error) {
	if m.HelpPageFunc != nil {
		return m.HelpPageFunc()
	}
	return "", errors.New("MockRedirectService.HelpPageFunc not implemented")
}
