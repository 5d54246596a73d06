package profilecard_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/profilecard"
	"github.com/bjaus/profilecard/figfont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flf builds a full-width two-row FIGfont covering codes 32 through 'z'.
// Glyphs not listed are zero-width.
func flf(glyphs map[rune][]string) string {
	lines := []string{"flf2a$ 2 2 4 -1 1", "test font"}
	for code := rune(32); code <= 'z'; code++ {
		rows, ok := glyphs[code]
		if !ok {
			rows = []string{"", ""}
		}
		lines = append(lines, rows[0]+"@", rows[1]+"@@")
	}
	return strings.Join(lines, "\n") + "\n"
}

func writeFont(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+figfont.Ext), []byte(data), 0o600))
}

var (
	upperOnly = map[rune][]string{'A': {"A", "A"}, 'B': {"B", "B"}}
	lowerOnly = map[rune][]string{'a': {"a", "a"}, 'b': {"b", "b"}}
	bothCases = map[rune][]string{'A': {"A", "A"}, 'a': {"a", "a"}}
)

func TestLoadCustomFont(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Mini", flf(upperOnly))
	fr := profilecard.NewFontRepository(dir, nil)

	loaded, err := fr.LoadCustomFont("Mini")
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, dir, fr.Dir())

	_, err = fr.Registry().Lookup("Mini")
	require.NoError(t, err)
}

func TestLoadCustomFontSkips(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Mini", flf(upperOnly))

	tests := []struct {
		name string
		dir  string
		font string
	}{
		{"missing file", dir, "Nope"},
		{"no directory", "", "Mini"},
		{"empty name", dir, ""},
		{"slash", dir, "../Mini"},
		{"backslash", dir, `sub\Mini`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loaded, err := profilecard.NewFontRepository(tt.dir, nil).LoadCustomFont(tt.font)
			require.NoError(t, err)
			assert.False(t, loaded)
		})
	}
}

func TestLoadCustomFontParseError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Broken", "not a font\n")
	fr := profilecard.NewFontRepository(dir, nil)

	loaded, err := fr.LoadCustomFont("Broken")
	require.Error(t, err)
	assert.False(t, loaded)

	var perr *figfont.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Broken", perr.Font)
	assert.ErrorIs(t, err, figfont.ErrNotFIGfont)

	_, err = fr.Registry().Lookup("Broken")
	assert.ErrorIs(t, err, figfont.ErrFontNotFound)
}

func TestLoadCustomFontReadError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Dir"+figfont.Ext), 0o700))

	_, err := profilecard.NewFontRepository(dir, nil).LoadCustomFont("Dir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `read font "Dir"`)
}

func TestLoadCustomFontBOM(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Bom", "\ufeff"+flf(upperOnly))
	fr := profilecard.NewFontRepository(dir, nil)

	loaded, err := fr.LoadCustomFont("Bom")
	require.NoError(t, err)
	require.True(t, loaded)

	out, err := fr.RenderASCII("AB", "Bom")
	require.NoError(t, err)
	assert.Equal(t, "AB\nAB", out)
}

func TestLoadCustomFontLastLoadWins(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fr := profilecard.NewFontRepository(dir, nil)

	writeFont(t, dir, "Mini", flf(upperOnly))
	_, err := fr.LoadCustomFont("Mini")
	require.NoError(t, err)

	writeFont(t, dir, "Mini", flf(map[rune][]string{'A': {"X", "Y"}}))
	_, err = fr.LoadCustomFont("Mini")
	require.NoError(t, err)

	out, err := fr.RenderASCII("A", "Mini")
	require.NoError(t, err)
	assert.Equal(t, "X\nY", out)
}

func TestLoadCustomFontPatchesSpace(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Mini", flf(upperOnly))
	fr := profilecard.NewFontRepository(dir, nil)
	_, err := fr.LoadCustomFont("Mini")
	require.NoError(t, err)

	out, err := fr.RenderASCII("  A A  ", "Mini")
	require.NoError(t, err)
	assert.Equal(t, "A    A\nA    A", out)
}

func TestHasInk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Blanks", flf(map[rune][]string{'A': {"$$", "$ "}, 'a': {" a", "  "}}))
	fr := profilecard.NewFontRepository(dir, nil)
	_, err := fr.LoadCustomFont("Blanks")
	require.NoError(t, err)

	assert.False(t, fr.HasInk("Blanks", 'A'))
	assert.True(t, fr.HasInk("Blanks", 'a'))
	assert.False(t, fr.HasInk("Blanks", 0x263A))
	assert.False(t, fr.HasInk("Nope", 'A'))

	assert.True(t, fr.HasInk("Block", 'A'))
	assert.False(t, fr.HasInk("Block", ' '))
}

func TestProcessTextForFont(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Upper", flf(upperOnly))
	writeFont(t, dir, "Lower", flf(lowerOnly))
	writeFont(t, dir, "Both", flf(bothCases))
	writeFont(t, dir, "Neither", flf(nil))
	fr := profilecard.NewFontRepository(dir, nil)
	for _, name := range []string{"Upper", "Lower", "Both", "Neither"} {
		_, err := fr.LoadCustomFont(name)
		require.NoError(t, err, name)
	}

	tests := []struct {
		font string
		want string
	}{
		{"Upper", "HELLO, WORLD"},
		{"Lower", "hello, world"},
		{"Both", "Hello, World"},
		{"Neither", "Hello, World"},
		{"Block", "Hello, World"},
		{"Nope", "Hello, World"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fr.ProcessTextForFont("Hello, World", tt.font), tt.font)
	}
}

func TestRenderASCIIErrors(t *testing.T) {
	t.Parallel()
	fr := profilecard.NewFontRepository("", nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := fr.RenderASCII(text, "Block")
		assert.ErrorIs(t, err, profilecard.ErrEmptyText, "%q", text)
	}

	_, err := fr.RenderASCII("hi", "Nope")
	assert.ErrorIs(t, err, figfont.ErrFontNotFound)
}

func TestRendererFoldsCaseForCustomFont(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Upper", flf(upperOnly))
	r := profilecard.New(profilecard.WithFontsDir(dir))

	cfg := offConfig(profilecard.StyleClassic)
	cfg.Sections.ASCII = profilecard.ASCIIConfig{Enabled: true, Text: "ab", Font: "Upper"}
	got, err := r.Render(profilecard.ProfileData{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "<!-- START_SECTION:ascii -->\n```text\nAB\nAB\n```\n<!-- END_SECTION:ascii -->", got)
}

func TestCustomFontOverridesBundled(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, profilecard.DefaultFont, flf(bothCases))
	r := profilecard.New(profilecard.WithFontsDir(dir))

	cfg := offConfig(profilecard.StyleTerminal)
	cfg.Sections.ASCII = profilecard.ASCIIConfig{Enabled: true, Text: "Aa"}
	got, err := r.Render(profilecard.ProfileData{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, styled("Aa", "Aa"), got)

	// Other renderers keep the bundled font.
	got, err = profilecard.Render(profilecard.ProfileData{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, got, "█")
}

func TestRendererSharesFonts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Mini", flf(upperOnly))
	fr := profilecard.NewFontRepository(dir, nil)
	r := profilecard.New(profilecard.WithFonts(fr))
	assert.Same(t, fr, r.Fonts())

	cfg := offConfig(profilecard.StyleCompact)
	cfg.Sections.ASCII = profilecard.ASCIIConfig{Enabled: true, Text: "A", Font: "Mini"}
	_, err := r.Render(profilecard.ProfileData{}, cfg)
	require.NoError(t, err)

	_, err = fr.Registry().Lookup("Mini")
	assert.NoError(t, err)
}

func TestFontRepositoryNames(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFont(t, dir, "Mini", flf(upperOnly))
	writeFont(t, dir, profilecard.DefaultFont, flf(bothCases))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	fr := profilecard.NewFontRepository(dir, nil)
	_, err := fr.Registry().Parse("Inline", flf(lowerOnly))
	require.NoError(t, err)

	names, err := fr.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Block", "Inline", "Mini"}, names)

	names, err = profilecard.NewFontRepository("", nil).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Block"}, names)
}
