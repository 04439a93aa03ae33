// Package catalog holds the per-category poster definition tables.
//
// Each category (language, genre, decade, network, award) defines the shared
// geometry for its posters plus one entry per variant: the translation key
// for its label, the output filename slug, and the colors or background
// asset the external tool should use. The tables are pure configuration;
// all behavior lives in the generator.
package catalog

import (
	"sort"

	"github.com/postersmith/postersmith/pkg/errors"
)

// Poster canvas and caption geometry shared by all categories.
// The canvas matches the standard media-server poster resolution; the
// caption box leaves margins for background artwork.
const (
	CanvasWidth  = 2000
	CanvasHeight = 3000

	DefaultBoxWidth  = 1800
	DefaultBoxHeight = 1000

	DefaultMinPointSize = 100
	DefaultMaxPointSize = 250

	// DefaultFont is used by every category that doesn't override it.
	DefaultFont = "ComfortAa-Medium"
)

// Entry is one poster variant within a category.
type Entry struct {
	Key        string // translation key, e.g. "genre_western"
	Slug       string // output filename slug, e.g. "western"
	BackColor  string // canvas color when Background is empty
	Background string // optional background asset filename
	FillColor  string // label color
	OffsetY    int    // vertical label offset from center
}

// Category groups entries that share geometry and font.
type Category struct {
	Name         string // category name, e.g. "genre"
	Font         string
	BoxWidth     int
	BoxHeight    int
	MinPointSize int
	MaxPointSize int
	Entries      []Entry
}

// registry maps category name to its table.
var registry = map[string]Category{
	"language": Languages,
	"genre":    Genres,
	"decade":   Decades,
	"network":  Networks,
	"award":    Awards,
}

// Names returns all category names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the category table for name.
func Get(name string) (Category, error) {
	c, ok := registry[name]
	if !ok {
		return Category{}, errors.New(errors.ErrCodeInvalidCategory,
			"unknown category: %s (known: %v)", name, Names())
	}
	return c, nil
}

// All returns every category table, in Names() order.
func All() []Category {
	names := Names()
	cats := make([]Category, 0, len(names))
	for _, name := range names {
		cats = append(cats, registry[name])
	}
	return cats
}

// base fills the shared geometry defaults into a category.
func base(name string, entries []Entry) Category {
	return Category{
		Name:         name,
		Font:         DefaultFont,
		BoxWidth:     DefaultBoxWidth,
		BoxHeight:    DefaultBoxHeight,
		MinPointSize: DefaultMinPointSize,
		MaxPointSize: DefaultMaxPointSize,
		Entries:      entries,
	}
}
