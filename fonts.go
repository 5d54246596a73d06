package profilecard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bjaus/profilecard/figfont"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
)

// Code points probed to decide which letter case a font draws.
const (
	probeUpper = 'A'
	probeLower = 'a'
)

// FontRepository loads FIGfonts from a directory into a registry and renders
// text with them.
type FontRepository struct {
	dir      string
	registry *figfont.Registry
}

// NewFontRepository returns a repository reading custom fonts from dir. A
// nil registry gets a fresh one backed by the bundled fonts. An empty dir
// disables custom fonts.
func NewFontRepository(dir string, registry *figfont.Registry) *FontRepository {
	if registry == nil {
		registry = figfont.NewRegistry()
	}
	return &FontRepository{dir: dir, registry: registry}
}

// Dir returns the custom font directory.
func (fr *FontRepository) Dir() string { return fr.dir }

// Registry returns the registry fonts are loaded into.
func (fr *FontRepository) Registry() *figfont.Registry { return fr.registry }

// Names lists the fonts available to render with, sorted: those in the font
// directory plus every name the registry knows.
func (fr *FontRepository) Names() ([]string, error) {
	names := fr.registry.Names()
	if fr.dir == "" {
		return names, nil
	}
	matches, err := filepath.Glob(filepath.Join(fr.dir, "*"+figfont.Ext))
	if err != nil {
		return nil, fmt.Errorf("list fonts: %w", err)
	}
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), figfont.Ext)
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// LoadCustomFont loads <name>.flf from the font directory, patches a
// zero-width space glyph and registers the result under name, replacing any
// font already registered. It returns false without error when the file does
// not exist, in which case a bundled font of that name may still be used.
func (fr *FontRepository) LoadCustomFont(name string) (bool, error) {
	if fr.dir == "" || name == "" || strings.ContainsAny(name, `/\`) {
		return false, nil
	}
	raw, err := os.ReadFile(filepath.Join(fr.dir, name+figfont.Ext))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read font %q: %w", name, err)
	}
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return false, fmt.Errorf("decode font %q: %w", name, err)
	}
	if _, err := fr.registry.Parse(name, figfont.PatchSpace(string(text))); err != nil {
		return false, err
	}
	return true, nil
}

// HasInk reports whether font draws anything visible for code. Hardblanks
// count as blank. Unknown fonts and glyphs have no ink.
func (fr *FontRepository) HasInk(font string, code rune) bool {
	f, err := fr.registry.Lookup(font)
	if err != nil {
		return false
	}
	rows, ok := f.Glyph(code)
	if !ok {
		return false
	}
	for _, row := range rows {
		if f.Hardblank != 0 {
			row = strings.ReplaceAll(row, string(f.Hardblank), " ")
		}
		if strings.TrimSpace(row) != "" {
			return true
		}
	}
	return false
}

// ProcessTextForFont folds text to the only letter case font draws. Fonts
// with both cases, or neither, leave text unchanged.
func (fr *FontRepository) ProcessTextForFont(text, font string) string {
	upper := fr.HasInk(font, probeUpper)
	lower := fr.HasInk(font, probeLower)
	switch {
	case upper && !lower:
		return cases.Upper(language.Und).String(text)
	case lower && !upper:
		return cases.Lower(language.Und).String(text)
	default:
		return text
	}
}

// RenderASCII renders the trimmed text as block letters in font. Blank
// text fails with [ErrEmptyText]; an unknown font fails with
// [figfont.ErrFontNotFound].
func (fr *FontRepository) RenderASCII(text, font string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	f, err := fr.registry.Lookup(font)
	if err != nil {
		return "", err
	}
	return f.Render(trimmed), nil
}
