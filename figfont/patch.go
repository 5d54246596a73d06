package figfont

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// spaceWidth is the width, in hardblanks, given to a zero-width space glyph.
const spaceWidth = 4

var (
	lineBreak    = regexp.MustCompile(`\r?\n`)
	onlyEndmarks = regexp.MustCompile(`^@+$`)
)

// PatchSpace widens a space glyph that some fonts ship with zero width.
//
// When every row of the glyph for code 32 consists only of '@' end marks,
// each row is prefixed with four hardblanks and the rewritten font is
// returned. Data without a FIGfont header, with non-numeric height or
// comment count, or whose space glyph has ink, is returned unchanged. A
// leading byte order mark is always dropped.
func PatchSpace(data string) string {
	data = strings.TrimPrefix(data, "\ufeff")

	lines := lineBreak.Split(data, -1)
	hdr := lines[0]
	if !strings.HasPrefix(hdr, Signature) || len(hdr) <= len(Signature) {
		return data
	}
	hb, _ := utf8.DecodeRuneInString(hdr[len(Signature):])
	hardblank := string(hb)

	parts := strings.Split(hdr, " ")
	height, err := strconv.Atoi(field(parts, 1))
	if err != nil {
		return data
	}
	comments, err := strconv.Atoi(field(parts, 5))
	if err != nil {
		return data
	}

	start := 1 + comments
	if height < 1 || start < 1 || len(lines) < start+height {
		return data
	}
	for _, line := range lines[start : start+height] {
		if !onlyEndmarks.MatchString(line) {
			return data
		}
	}

	spacer := strings.Repeat(hardblank, spaceWidth)
	for i := start; i < start+height; i++ {
		lines[i] = spacer + lines[i]
	}
	return strings.Join(lines, "\n")
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return "0"
}
