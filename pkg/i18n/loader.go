package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

type unmarshalFunc func(data []byte, v any) error

// WithJSONDir returns an Option that loads translations from JSON files in an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.json
//
// Example structure:
//
//	en/calendar.json
//	ar/calendar.json
func WithJSONDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, unmarshalFor(".json"), ".json")
	}
}

// WithYAMLDir returns an Option that loads translations from YAML files in an fs.FS.
// The fs.FS root must contain language directories directly.
// File convention: {lang}/{namespace}.yaml or {lang}/{namespace}.yml
//
// Lists are keyed by index, so a "months" list yields "months.0" ... "months.11".
func WithYAMLDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, unmarshalFor(".yaml"), ".yaml", ".yml")
	}
}

func unmarshalFor(ext string) unmarshalFunc {
	if ext == ".json" {
		return json.Unmarshal
	}
	return yaml.Unmarshal
}

func loadDir(i *I18n, fsys fs.FS, unmarshal unmarshalFunc, exts ...string) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExt(filePath, exts) {
			return nil
		}

		dir := path.Dir(filePath)
		if dir == "." || dir == "" {
			return fmt.Errorf("%w: file %q must be inside a language directory", ErrInvalidFile, filePath)
		}

		lang := path.Base(dir)
		namespace := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		i.add(lang, namespace, translations)
		return nil
	})
}

func hasExt(filePath string, exts []string) bool {
	ext := strings.ToLower(path.Ext(filePath))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
