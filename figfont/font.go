package figfont

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Signature is the magic prefix of every FIGfont header line.
const Signature = "flf2a"

// Sentinel errors for programmatic error handling.
var (
	ErrNotFIGfont   = errors.New("missing flf2a signature")
	ErrFontNotFound = errors.New("font not found")
)

// deutschCodes are the code points that follow the printable ASCII glyphs
// in a FIGfont, in file order.
var deutschCodes = []rune{196, 214, 220, 228, 246, 252, 223}

// ParseError reports a FIGfont whose structure cannot be parsed.
type ParseError struct {
	Font string
	Line int // 1-based line in the font file, 0 when unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("figfont: parse %q: line %d: %v", e.Font, e.Line, e.Err)
	}
	return fmt.Sprintf("figfont: parse %q: %v", e.Font, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Layout is a horizontal layout bitmask using the FIGfont full_layout bits.
type Layout int

const (
	RuleEqual      Layout = 1
	RuleUnderscore Layout = 2
	RuleHierarchy  Layout = 4
	RulePair       Layout = 8
	RuleBigX       Layout = 16
	RuleHardblank  Layout = 32
	Fitting        Layout = 64
	Smushing       Layout = 128

	ruleMask Layout = 63
)

// Rules returns the controlled smushing rules. Zero with [Smushing] set means
// universal smushing.
func (l Layout) Rules() Layout { return l & ruleMask }

// Font is a parsed FIGfont.
type Font struct {
	Name      string
	Hardblank rune
	Height    int
	Baseline  int
	MaxLength int
	Layout    Layout
	Comment   string

	// Glyphs maps a code point to its rows. Every row of a glyph has the same
	// rune count.
	Glyphs map[rune][]string
}

// Glyph returns the rows for r.
func (f *Font) Glyph(r rune) ([]string, bool) {
	g, ok := f.Glyphs[r]
	return g, ok
}

type header struct {
	hardblank  rune
	height     int
	baseline   int
	maxLength  int
	oldLayout  int
	comments   int
	fullLayout int
	hasFull    bool
}

func parseHeader(line string) (header, error) {
	if !strings.HasPrefix(line, Signature) {
		return header{}, ErrNotFIGfont
	}
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return header{}, fmt.Errorf("header has %d fields, want at least 6", len(fields))
	}
	hb, size := utf8.DecodeRuneInString(fields[0][len(Signature):])
	if size == 0 {
		return header{}, errors.New("header has no hardblank")
	}
	nums := make([]int, 0, len(fields)-1)
	for i, s := range fields[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			// Only the first five numeric fields are mandatory.
			if i < 5 {
				return header{}, fmt.Errorf("header field %d: %w", i+2, err)
			}
			break
		}
		nums = append(nums, n)
	}
	h := header{
		hardblank: hb,
		height:    nums[0],
		baseline:  nums[1],
		maxLength: nums[2],
		oldLayout: nums[3],
		comments:  nums[4],
	}
	if len(nums) >= 7 {
		h.fullLayout = nums[6]
		h.hasFull = true
	}
	if h.height < 1 {
		return header{}, fmt.Errorf("invalid height %d", h.height)
	}
	if h.comments < 0 {
		return header{}, fmt.Errorf("invalid comment line count %d", h.comments)
	}
	return h, nil
}

func (h header) layout() Layout {
	if h.hasFull {
		return Layout(h.fullLayout) & (ruleMask | Fitting | Smushing)
	}
	switch {
	case h.oldLayout < 0:
		return 0
	case h.oldLayout == 0:
		return Fitting
	default:
		return Smushing | Layout(h.oldLayout)&ruleMask
	}
}

// Parse parses FIGfont data. Glyphs for printable ASCII are read in order,
// followed by the Deutsch glyphs and any code-tagged glyphs. A font that ends
// early on a glyph boundary is accepted as long as it defines at least one
// glyph.
func Parse(name, data string) (*Font, error) {
	data = strings.TrimPrefix(data, "\ufeff")
	lines := strings.Split(data, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	h, err := parseHeader(lines[0])
	if err != nil {
		return nil, &ParseError{Font: name, Line: 1, Err: err}
	}
	if 1+h.comments > len(lines) {
		return nil, &ParseError{Font: name, Err: fmt.Errorf("expected %d comment lines", h.comments)}
	}

	f := &Font{
		Name:      name,
		Hardblank: h.hardblank,
		Height:    h.height,
		Baseline:  h.baseline,
		MaxLength: h.maxLength,
		Layout:    h.layout(),
		Comment:   strings.Join(lines[1:1+h.comments], "\n"),
		Glyphs:    make(map[rune][]string),
	}

	p := &glyphReader{font: name, lines: lines, pos: 1 + h.comments, height: h.height}

	for code := rune(32); code <= 126; code++ {
		if p.done() {
			return p.finish(f)
		}
		rows, err := p.next()
		if err != nil {
			return nil, err
		}
		f.Glyphs[code] = rows
	}
	for _, code := range deutschCodes {
		if p.done() {
			return p.finish(f)
		}
		rows, err := p.next()
		if err != nil {
			return nil, err
		}
		f.Glyphs[code] = rows
	}
	for !p.done() {
		if strings.TrimSpace(p.lines[p.pos]) == "" {
			p.pos++
			continue
		}
		tag := strings.Fields(p.lines[p.pos])
		code, err := strconv.ParseInt(tag[0], 0, 32)
		if err != nil {
			return nil, &ParseError{Font: name, Line: p.pos + 1, Err: fmt.Errorf("code tag: %w", err)}
		}
		p.pos++
		rows, err := p.next()
		if err != nil {
			return nil, err
		}
		f.Glyphs[rune(code)] = rows
	}
	return p.finish(f)
}

type glyphReader struct {
	font   string
	lines  []string
	pos    int
	height int
	read   int
}

// done reports whether only blank lines remain.
func (p *glyphReader) done() bool {
	for _, l := range p.lines[p.pos:] {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}

func (p *glyphReader) next() ([]string, error) {
	if p.pos+p.height > len(p.lines) {
		return nil, &ParseError{
			Font: p.font,
			Line: p.pos + 1,
			Err:  fmt.Errorf("glyph truncated: want %d lines, have %d", p.height, len(p.lines)-p.pos),
		}
	}
	rows := make([]string, p.height)
	width := 0
	for i := range rows {
		rows[i] = stripEndmark(p.lines[p.pos+i])
		if n := utf8.RuneCountInString(rows[i]); n > width {
			width = n
		}
	}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n < width {
			rows[i] = row + strings.Repeat(" ", width-n)
		}
	}
	p.pos += p.height
	p.read++
	return rows, nil
}

func (p *glyphReader) finish(f *Font) (*Font, error) {
	if p.read == 0 {
		return nil, &ParseError{Font: p.font, Err: errors.New("no glyphs")}
	}
	return f, nil
}

// stripEndmark removes trailing whitespace and then every trailing copy of
// the line's final character.
func stripEndmark(line string) string {
	line = strings.TrimRight(line, " \t")
	if line == "" {
		return line
	}
	mark, _ := utf8.DecodeLastRuneInString(line)
	return strings.TrimRight(line, string(mark))
}
