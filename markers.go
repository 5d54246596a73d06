package profilecard

import (
	"strings"
)

// StyleMarkerID is the marker id wrapping terminal and compact output.
const StyleMarkerID = "style"

// StartMarker returns the comment opening the span for id.
func StartMarker(id string) string { return "<!-- START_SECTION:" + id + " -->" }

// EndMarker returns the comment closing the span for id.
func EndMarker(id string) string { return "<!-- END_SECTION:" + id + " -->" }

func placeholder(id string) string {
	return StartMarker(id) + "\n" + EndMarker(id)
}

func wrapMarkers(id, content string) string {
	return StartMarker(id) + "\n" + content + "\n" + EndMarker(id)
}

// span is the byte range of one marker pair, end marker included.
type span struct {
	start, end int
}

// findSpans returns every non-overlapping marker pair for id, in order.
func findSpans(doc, id string) []span {
	open, closing := StartMarker(id), EndMarker(id)
	var spans []span
	for off := 0; off < len(doc); {
		i := strings.Index(doc[off:], open)
		if i < 0 {
			break
		}
		start := off + i
		j := strings.Index(doc[start+len(open):], closing)
		if j < 0 {
			break
		}
		end := start + len(open) + j + len(closing)
		spans = append(spans, span{start: start, end: end})
		off = end
	}
	return spans
}

// replaceSpans rewrites every marker pair for id to hold content. It reports
// whether any pair was found.
func replaceSpans(doc, id, content string) (string, bool) {
	spans := findSpans(doc, id)
	if len(spans) == 0 {
		return doc, false
	}
	repl := wrapMarkers(id, content)
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(doc[last:s.start])
		b.WriteString(repl)
		last = s.end
	}
	b.WriteString(doc[last:])
	return b.String(), true
}

// sectionContent returns the text between the first marker pair for id.
func sectionContent(doc, id string) (string, bool) {
	spans := findSpans(doc, id)
	if len(spans) == 0 {
		return "", false
	}
	s := spans[0]
	inner := doc[s.start+len(StartMarker(id)) : s.end-len(EndMarker(id))]
	inner = strings.TrimPrefix(inner, "\n")
	inner = strings.TrimSuffix(inner, "\n")
	return inner, true
}

// ReplaceSection sets the content of the marker pair for id in doc. Every
// existing pair is rewritten; when there is none, a new pair is appended
// after a blank line.
func ReplaceSection(doc, id, content string) string {
	if out, ok := replaceSpans(doc, id, content); ok {
		return out
	}
	doc = strings.TrimRight(doc, "\n")
	if doc == "" {
		return wrapMarkers(id, content) + "\n"
	}
	return doc + "\n\n" + wrapMarkers(id, content) + "\n"
}

// Splice copies every marker section of generated into doc, as produced by
// [Renderer.Render]. Sections of doc that generated does not mention are
// left alone.
func Splice(doc, generated string) string {
	ids := make([]string, 0, len(sections)+1)
	ids = append(ids, StyleMarkerID)
	for _, s := range sections {
		ids = append(ids, s.ID())
	}
	for _, id := range ids {
		content, ok := sectionContent(generated, id)
		if !ok {
			continue
		}
		doc = ReplaceSection(doc, id, content)
	}
	return doc
}
