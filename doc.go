// Package profilecard renders a developer profile as monospaced text for a
// README.
//
// A profile has four sections: block-letter art, headline stats, a language
// breakdown and recent activity. [Renderer.Render] arranges the enabled
// sections in one of three styles selected by [Config].Style:
//
//   - [StyleTerminal] (default): bordered boxes under the art
//   - [StyleCompact]: unboxed sections in two columns
//   - [StyleClassic]: one marker-delimited block per section
//
// Terminal and compact output sits inside a single marker pair:
//
//	<!-- START_SECTION:style -->
//	```text
//	...
//	```
//	<!-- END_SECTION:style -->
//
// Use [Splice] to copy generated sections into an existing document.
//
// # Fonts
//
// Art is drawn with FIGlet fonts from the [figfont] package. A
// [FontRepository] loads <name>.flf files from a directory on top of the
// fonts bundled with figfont, widening zero-width space glyphs and folding
// text to the letter case a font actually draws:
//
//	r := profilecard.New(profilecard.WithFontsDir("assets/fonts"))
//	out, err := r.Render(data, cfg)
//
// # Box Drawing
//
// The building blocks used by the layouts are exported: [BuildBox],
// [BuildValueBox], [CenterText], [MergeColumns], [StackBlocks],
// [TrimEmptyLines] and [ExtractCodeBlock].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedStyle]: unknown style string
//   - [ErrEmptyText]: blank art text
//   - [figfont.ErrFontNotFound]: font neither loaded nor bundled
//
// Section failures are returned as [*SectionError]; font parse failures as
// [*figfont.ParseError].
package profilecard
