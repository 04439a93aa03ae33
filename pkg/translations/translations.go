// Package translations loads the YAML translation file that supplies
// per-language poster labels.
//
// A default English table is embedded in the binary (so the tool works with
// no external file at all), and a user-supplied YAML file can override or
// extend it. Lookups fall back to the default language when a key has no
// entry for the requested language.
package translations

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/postersmith/postersmith/pkg/errors"
)

// DefaultLanguage is the fallback language for missing entries.
const DefaultLanguage = "en"

//go:embed defaults.yml
var defaultsYAML []byte

// file is the on-disk YAML shape.
type file struct {
	// Translations maps key -> language -> label.
	Translations map[string]map[string]string `yaml:"translations"`
}

// Table holds the merged translation entries.
type Table struct {
	entries map[string]map[string]string
}

// Default returns a table containing only the embedded defaults.
func Default() (*Table, error) {
	return parse(defaultsYAML)
}

// Load reads a translation file and merges it over the embedded defaults.
// User entries win over embedded ones.
func Load(path string) (*Table, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read translation file %s", path)
	}

	user, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse translation file %s: %w", path, err)
	}

	for key, langs := range user.entries {
		if t.entries[key] == nil {
			t.entries[key] = make(map[string]string)
		}
		for lang, label := range langs {
			t.entries[key][lang] = label
		}
	}
	return t, nil
}

func parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Translations == nil {
		f.Translations = make(map[string]map[string]string)
	}
	return &Table{entries: f.Translations}, nil
}

// Lookup returns the label for key in lang, falling back to the default
// language. A key missing in both is an error.
func (t *Table) Lookup(key, lang string) (string, error) {
	langs, ok := t.entries[key]
	if !ok {
		return "", errors.New(errors.ErrCodeTranslationNotFound, "no translation entry for key %q", key)
	}
	if label, ok := langs[lang]; ok {
		return label, nil
	}
	if label, ok := langs[DefaultLanguage]; ok {
		return label, nil
	}
	return "", errors.New(errors.ErrCodeTranslationNotFound,
		"key %q has no %q or %q entry", key, lang, DefaultLanguage)
}

// Languages returns the set of languages that appear anywhere in the table.
func (t *Table) Languages() []string {
	seen := make(map[string]bool)
	var langs []string
	for _, entry := range t.entries {
		for lang := range entry {
			if !seen[lang] {
				seen[lang] = true
				langs = append(langs, lang)
			}
		}
	}
	return langs
}

// Len returns the number of translation keys.
func (t *Table) Len() int {
	return len(t.entries)
}
