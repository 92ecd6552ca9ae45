package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/dmitrymomot/hijri/pkg/i18n"
)

// Namespace is the translation namespace holding calendar names.
const Namespace = "calendar"

//go:embed locales
var localesFS embed.FS

var catalog = sync.OnceValues(func() (*i18n.I18n, error) {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	return i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithYAMLDir(sub),
	)
})

// Catalog returns the built-in calendar translations (en, ar, fr, ru, tr, id).
// The catalog is loaded once and shared.
func Catalog() *i18n.I18n {
	c, err := catalog()
	if err != nil {
		panic(fmt.Sprintf("hijri: embedded locales: %v", err))
	}
	return c
}
