package profilecard

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Gaps used when merging boxes side by side.
const (
	ColumnGap = 4
	BoxGap    = 2
)

type boxChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
}

var box = boxChars{
	topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
	horizontal: "─", vertical: "│",
}

// cells measures strings in terminal cells. Ambiguous-width characters such
// as the box and bar glyphs count as one cell regardless of locale.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func width(s string) int { return cells.StringWidth(s) }

func padRight(s string, w int) string {
	if pad := w - width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func padLeft(s string, w int) string {
	if pad := w - width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func maxWidth(lines []string) int {
	n := 0
	for _, l := range lines {
		if w := width(l); w > n {
			n = w
		}
	}
	return n
}

// CenterText centers text in a field of w cells. When the padding is odd the
// extra space goes on the right. Text at least w wide is returned unchanged.
func CenterText(text string, w int) string {
	pad := w - width(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// BuildBox draws a titled border around lines. The inner width is the
// largest of minWidth, the title and the widest line, and every returned
// line has the same width. No lines means no box.
func BuildBox(title string, lines []string, minWidth int) []string {
	if len(lines) == 0 {
		return nil
	}
	inner := max(minWidth, width(title), maxWidth(lines))

	var filler string
	if remaining := inner - width(title); remaining > 0 {
		filler = " " + strings.Repeat(box.horizontal, remaining-1)
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, box.topLeft+" "+title+filler+" "+box.topRight)
	for _, l := range lines {
		out = append(out, box.vertical+" "+padRight(l, inner)+" "+box.vertical)
	}
	out = append(out, box.bottomLeft+strings.Repeat(box.horizontal, inner+2)+box.bottomRight)
	return out
}

// BuildValueBox draws a one-line box holding value centered under title.
func BuildValueBox(title string, value int) []string {
	text := strconv.Itoa(value)
	w := max(width(title), width(text))
	return BuildBox(title, []string{CenterText(text, w)}, w)
}

// MergeColumns places right beside left, gap cells after the widest left
// line. Merged rows have trailing whitespace trimmed. If either side is
// empty the other is returned as is.
func MergeColumns(left, right []string, gap int) []string {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}
	lw := maxWidth(left)
	sep := strings.Repeat(" ", max(gap, 0))
	rows := max(len(left), len(right))
	merged := make([]string, rows)
	for i := range rows {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		merged[i] = strings.TrimRight(padRight(l, lw)+sep+r, " \t")
	}
	return merged
}

// StackBlocks joins non-empty blocks top to bottom with one blank line
// between them.
func StackBlocks(blocks ...[]string) []string {
	var out []string
	for _, b := range blocks {
		if len(b) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, b...)
	}
	return out
}

// TrimEmptyLines drops blank lines from both ends of lines. Blank lines in
// the middle are kept.
func TrimEmptyLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

const (
	fenceOpen  = "```text"
	fenceClose = "```"
)

// fence wraps lines in a text code fence.
func fence(lines []string) string {
	return fenceOpen + "\n" + strings.Join(lines, "\n") + "\n" + fenceClose
}

// ExtractCodeBlock returns the lines inside the first "```text" fenced block
// in text. The opening fence may be followed by whitespace before its
// newline. Blank lines directly after the opening fence are skipped. Without
// a complete fence, or with an empty one, it returns nil.
func ExtractCodeBlock(text string) []string {
	for off := 0; off < len(text); {
		i := strings.Index(text[off:], fenceOpen)
		if i < 0 {
			return nil
		}
		rest := text[off+i+len(fenceOpen):]
		off += i + len(fenceOpen)

		ws := len(rest) - len(strings.TrimLeft(rest, " \t\r\n\v\f"))
		nl := strings.LastIndexByte(rest[:ws], '\n')
		if nl < 0 {
			continue
		}
		body := rest[nl+1:]
		end := strings.Index(body, "\n"+fenceClose)
		if end < 0 {
			continue
		}
		if end == 0 {
			return nil
		}
		return strings.Split(body[:end], "\n")
	}
	return nil
}
