package redirect

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"

	"github.com/AntonioJCosta/lolbunny/internal/core/ports"
)

//go:embed help.html
var helpFS embed.FS

var helpTemplate = template.Must(template.ParseFS(helpFS, "help.html"))

type helpPageData struct {
	Title               string
	SearchDescriptorURL string
	Examples            []ports.ShortcutExample
}

func renderHelpPage(data helpPageData) (string, error) {
	var buf bytes.Buffer
	if err := helpTemplate.ExecuteTemplate(&buf, "help.html", data); err != nil {
		return "", fmt.Errorf("failed to render help page: %w", err)
	}
	return buf.String(), nil
}

// helpCache computes the page once. Concurrent first callers block until the
// single render finishes; later calls only read.
type helpCache struct {
	once sync.Once
	page string
	err  error
}

func (c *helpCache) get(render func() (string, error)) (string, error) {
	c.once.Do(func() {
		c.page, c.err = render()
	})
	return c.page, c.err
}
