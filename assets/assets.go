// Package assets bundles the built-in presentation assets for directory
// listings: the page template, the stylesheet, and the icon set, together
// with the process-wide cache of base64-encoded icon bytes.
package assets

import (
	"embed"
	"fmt"
	"path"
)

var (
	//go:embed directory.html
	pageTemplate string

	//go:embed style.css
	styleSheet string

	//go:embed icons
	iconFS embed.FS
)

// Template returns the built-in listing page markup. The page carries the
// four placeholders {style}, {files}, {directory}, and {linked-path}.
func Template() string {
	return pageTemplate
}

// Style returns the built-in stylesheet.
func Style() string {
	return styleSheet
}

// Loader fetches raw asset bytes by file name.
type Loader interface {
	Load(name string) ([]byte, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) ([]byte, error)

func (f LoaderFunc) Load(name string) ([]byte, error) {
	return f(name)
}

// Icons returns a Loader over the embedded icon set.
func Icons() Loader {
	return LoaderFunc(func(name string) ([]byte, error) {
		b, err := iconFS.ReadFile(path.Join("icons", name))
		if err != nil {
			return nil, fmt.Errorf("load icon %s: %w", name, err)
		}
		return b, nil
	})
}
