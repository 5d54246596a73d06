package profilecard

import (
	"fmt"
	"io"
	"strings"
)

// Render renders data with a default [Renderer].
func Render(data ProfileData, cfg Config) (string, error) {
	return New().Render(data, cfg)
}

// Render lays out the enabled sections in the configured style.
//
// Terminal and compact output is wrapped in one "style" marker pair and
// fails as a whole when any section fails. Classic output carries one marker
// pair per enabled section; a section that fails is logged and left empty
// while the rest still render.
func (r *Renderer) Render(data ProfileData, cfg Config) (string, error) {
	switch cfg.style() {
	case StyleTerminal:
		body, err := r.renderTerminal(data, cfg)
		if err != nil {
			return "", err
		}
		return wrapMarkers(StyleMarkerID, body), nil
	case StyleCompact:
		body, err := r.renderCompact(data, cfg)
		if err != nil {
			return "", err
		}
		return wrapMarkers(StyleMarkerID, body), nil
	default:
		return r.renderClassic(data, cfg), nil
	}
}

// Write renders the profile to w followed by a newline.
func (r *Renderer) Write(w io.Writer, data ProfileData, cfg Config) error {
	out, err := r.Render(data, cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func styleLines(cfg Config) []string {
	st := strings.TrimSpace(cfg.StyleText)
	if st == "" {
		return nil
	}
	return strings.Split(st, "\n")
}

// captionFor returns the style text lines shown under art. Without art there
// is no caption.
func captionFor(art []string, cfg Config) []string {
	if len(art) == 0 {
		return nil
	}
	return styleLines(cfg)
}

func finish(body []string) string {
	body = TrimEmptyLines(body)
	if len(body) == 0 {
		return ""
	}
	return fence(body)
}

func (r *Renderer) renderTerminal(data ProfileData, cfg Config) (string, error) {
	sc := cfg.Sections

	var asciiLines []string
	if sc.ASCII.Enabled {
		// The overlay decorates the boxes below, never the glyph art.
		artCfg := cfg
		artCfg.Sections.ASCII.ShowCats = false
		out, err := r.renderSection(SectionASCII, data, artCfg)
		if err != nil {
			return "", err
		}
		asciiLines = TrimEmptyLines(ExtractCodeBlock(out))
	}

	var followers, stars []string
	if sc.Stats.Enabled && sc.Stats.ShowFollowers {
		followers = BuildValueBox("Followers", data.Followers)
	}
	if sc.Stats.Enabled && sc.Stats.ShowStars {
		stars = BuildValueBox("Stars", data.TotalStars)
	}
	middle := MergeColumns(followers, stars, BoxGap)
	if sc.Languages.Enabled {
		middle = append(middle, BuildBox("Languages", languageLines(data, sc.Languages), 0)...)
	}
	middle = TrimEmptyLines(middle)
	if sc.ASCII.ShowCats && len(middle) > 0 {
		middle = strings.Split(r.overlay(strings.Join(middle, "\n")), "\n")
	}

	var activity, stats []string
	if sc.Activity.Enabled {
		activity = BuildBox("Activity", activityLines(data, sc.Activity), 0)
	}
	if sc.Stats.Enabled && sc.Stats.ShowCommits {
		stats = BuildBox("Stats", []string{fmt.Sprintf("Commits %d", data.TotalCommits)}, 0)
	}
	bottom := MergeColumns(activity, stats, BoxGap)

	return finish(StackBlocks(asciiLines, captionFor(asciiLines, cfg), middle, bottom)), nil
}

func (r *Renderer) renderCompact(data ProfileData, cfg Config) (string, error) {
	raw := make(map[Section][]string, len(sections))
	for _, s := range sections {
		if !cfg.Enabled(s) {
			continue
		}
		out, err := r.renderSection(s, data, cfg)
		if err != nil {
			return "", err
		}
		raw[s] = ExtractCodeBlock(out)
	}

	left := StackBlocks(raw[SectionLanguages], raw[SectionActivity])
	right := StackBlocks(raw[SectionStats])

	head := append(raw[SectionASCII], captionFor(raw[SectionASCII], cfg)...)
	return finish(StackBlocks(head, MergeColumns(left, right, ColumnGap))), nil
}

func (r *Renderer) renderClassic(data ProfileData, cfg Config) string {
	var enabled []Section
	var parts []string
	for _, s := range sections {
		if cfg.Enabled(s) {
			enabled = append(enabled, s)
			parts = append(parts, placeholder(s.ID()))
		}
	}
	doc := strings.Join(parts, "\n\n")

	for _, s := range enabled {
		out, err := r.renderSection(s, data, cfg)
		if err != nil {
			r.logger.Warn("section render failed", "section", s.ID(), "error", err)
			continue
		}
		if out == "" {
			continue
		}
		doc, _ = replaceSpans(doc, s.ID(), out)
	}
	return doc
}
