package figfont

import (
	"strings"
)

// Render lays out text with the font's horizontal layout and returns the
// rows joined by newlines. Each newline in text starts a new block of rows.
// Characters without a glyph are skipped and tabs render as spaces.
// Hardblanks print as spaces; trailing spaces are trimmed from every row.
// There is no width limit.
func (f *Font) Render(text string) string {
	blocks := strings.Split(text, "\n")
	out := make([]string, 0, len(blocks)*f.Height)
	for _, line := range blocks {
		for _, row := range f.renderLine(line) {
			out = append(out, strings.TrimRight(strings.ReplaceAll(string(row), string(f.Hardblank), " "), " "))
		}
	}
	return strings.Join(out, "\n")
}

func (f *Font) renderLine(line string) [][]rune {
	rows := make([][]rune, f.Height)
	prevWidth := 0
	for _, r := range line {
		if r == '\t' {
			r = ' '
		}
		g, ok := f.Glyphs[r]
		if !ok {
			continue
		}
		cur := make([][]rune, f.Height)
		for i := range cur {
			cur[i] = []rune(g[i])
		}
		width := len(cur[0])

		amt := f.smushAmount(rows, cur, prevWidth, width)
		for i := range rows {
			out := rows[i]
			for k := 0; k < amt && k < len(cur[i]); k++ {
				col := len(out) - amt + k
				if col < 0 {
					continue
				}
				out[col], _ = f.smush(out[col], cur[i][k], prevWidth, width)
			}
			if amt < len(cur[i]) {
				out = append(out, cur[i][amt:]...)
			}
			rows[i] = out
		}
		prevWidth = width
	}
	return rows
}

// smushAmount returns how many columns the next glyph may overlap the
// output built so far.
func (f *Font) smushAmount(rows, cur [][]rune, prevWidth, width int) int {
	if f.Layout&(Fitting|Smushing) == 0 {
		return 0
	}
	best := width
	for i := range rows {
		out := rows[i]

		lineBD := len(out)
		var left rune
		for {
			if lineBD < len(out) {
				left = out[lineBD]
			} else {
				left = 0
			}
			if lineBD > 0 && (left == 0 || left == ' ') {
				lineBD--
				continue
			}
			break
		}

		charBD := 0
		for charBD < len(cur[i]) && cur[i][charBD] == ' ' {
			charBD++
		}
		var right rune
		if charBD < len(cur[i]) {
			right = cur[i][charBD]
		}

		amt := charBD + len(out) - 1 - lineBD
		if left == 0 || left == ' ' {
			amt++
		} else if right != 0 {
			if _, ok := f.smush(left, right, prevWidth, width); ok {
				amt++
			}
		}
		if amt < best {
			best = amt
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// smush merges two overlapping cells. It reports false when the pair may not
// be merged under the font's layout.
func (f *Font) smush(left, right rune, prevWidth, width int) (rune, bool) {
	if left == ' ' {
		return right, true
	}
	if right == ' ' {
		return left, true
	}
	if prevWidth < 2 || width < 2 {
		return 0, false
	}
	if f.Layout&Smushing == 0 {
		return 0, false
	}

	hb := f.Hardblank
	rules := f.Layout.Rules()
	if rules == 0 {
		switch {
		case left == hb:
			return right, true
		case right == hb:
			return left, true
		default:
			return right, true
		}
	}

	if rules&RuleHardblank != 0 && left == hb && right == hb {
		return left, true
	}
	if left == hb || right == hb {
		return 0, false
	}
	if rules&RuleEqual != 0 && left == right {
		return left, true
	}
	if rules&RuleUnderscore != 0 {
		const borders = "|/\\[]{}()<>"
		if left == '_' && strings.ContainsRune(borders, right) {
			return right, true
		}
		if right == '_' && strings.ContainsRune(borders, left) {
			return left, true
		}
	}
	if rules&RuleHierarchy != 0 {
		if r, ok := hierarchy(left, right); ok {
			return r, true
		}
	}
	if rules&RulePair != 0 {
		switch string([]rune{left, right}) {
		case "[]", "][", "{}", "}{", "()", ")(":
			return '|', true
		}
	}
	if rules&RuleBigX != 0 {
		switch {
		case left == '/' && right == '\\':
			return '|', true
		case left == '\\' && right == '/':
			return 'Y', true
		case left == '>' && right == '<':
			return 'X', true
		}
	}
	return 0, false
}

// hierarchyClasses lists smushing classes from weakest to strongest; the
// character from the stronger class wins.
var hierarchyClasses = []string{"|", "/\\", "[]", "{}", "()", "<>"}

func hierarchy(left, right rune) (rune, bool) {
	lc, rc := class(left), class(right)
	if lc < 0 || rc < 0 || lc == rc {
		return 0, false
	}
	if rc > lc {
		return right, true
	}
	return left, true
}

func class(r rune) int {
	for i, c := range hierarchyClasses {
		if strings.ContainsRune(c, r) {
			return i
		}
	}
	return -1
}
