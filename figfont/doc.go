// Package figfont parses and renders FIGlet fonts (.flf).
//
// [Parse] reads a font into a glyph table. [Font.Render] lays out text using
// the font's declared horizontal layout: full width, fitting, or smushing
// with either the controlled rules from the header or universal smushing.
//
// A [Registry] holds parsed fonts by name and falls back to a file system
// of .flf files, by default the fonts bundled with this package:
//
//	reg := figfont.NewRegistry()
//	f, err := reg.Lookup("Block")
//	if err != nil { ... }
//	fmt.Println(f.Render("hi"))
//
// [PatchSpace] repairs fonts whose space glyph has zero width before they are
// parsed.
package figfont
