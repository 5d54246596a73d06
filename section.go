package profilecard

import (
	"fmt"
	"math"
	"strings"
)

// Section identifies one of the fixed profile sections.
type Section int

const (
	SectionASCII Section = iota
	SectionStats
	SectionLanguages
	SectionActivity
)

// sections is the render order.
var sections = []Section{SectionASCII, SectionStats, SectionLanguages, SectionActivity}

// Sections returns all sections in render order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// ID returns the identifier used in marker comments.
func (s Section) ID() string {
	switch s {
	case SectionASCII:
		return "ascii"
	case SectionStats:
		return "stats"
	case SectionLanguages:
		return "languages"
	case SectionActivity:
		return "activity"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

func (s Section) String() string { return s.ID() }

const barWidth = 12

// renderSection renders s as a fenced text block. A section with nothing to
// show renders as the empty string.
func (r *Renderer) renderSection(s Section, data ProfileData, cfg Config) (string, error) {
	var (
		out string
		err error
	)
	switch s {
	case SectionASCII:
		out, err = r.renderASCIISection(cfg)
	case SectionStats:
		out = fenceLines(statLines(data, cfg.Sections.Stats))
	case SectionLanguages:
		out = fenceLines(languageLines(data, cfg.Sections.Languages))
	case SectionActivity:
		out = fenceLines(activityLines(data, cfg.Sections.Activity))
	default:
		err = fmt.Errorf("unknown section %d", int(s))
	}
	if err != nil {
		return "", &SectionError{Section: s, Err: err}
	}
	return out, nil
}

func fenceLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return fence(lines)
}

func (r *Renderer) renderASCIISection(cfg Config) (string, error) {
	ac := cfg.Sections.ASCII
	font := ac.Font
	if font == "" {
		font = DefaultFont
	}
	text := ac.Text

	loaded, err := r.fonts.LoadCustomFont(font)
	if err != nil {
		return "", err
	}
	if loaded {
		r.logger.Debug("loaded custom font", "font", font, "dir", r.fonts.Dir())
		text = r.fonts.ProcessTextForFont(text, font)
	}

	art, err := r.fonts.RenderASCII(text, font)
	if err != nil {
		return "", err
	}
	if ac.ShowCats {
		art = r.overlay(art)
	}
	lines := strings.Split(art, "\n")
	if cfg.style() == StyleClassic {
		if st := strings.TrimSpace(cfg.StyleText); st != "" {
			lines = append(lines, st)
		}
	}
	return fence(lines), nil
}

// statLines lists the enabled headline numbers with aligned labels.
func statLines(data ProfileData, sc StatsConfig) []string {
	type stat struct {
		label string
		value int
	}
	var stats []stat
	if sc.ShowFollowers {
		stats = append(stats, stat{"Followers", data.Followers})
	}
	if sc.ShowStars {
		stats = append(stats, stat{"Stars", data.TotalStars})
	}
	if sc.ShowCommits {
		stats = append(stats, stat{"Commits", data.TotalCommits})
	}
	lw := 0
	for _, s := range stats {
		lw = max(lw, width(s.label))
	}
	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		lines = append(lines, fmt.Sprintf("%s %d", padRight(s.label, lw), s.value))
	}
	return lines
}

func topLanguages(data ProfileData, lc LanguagesConfig) []Language {
	n := min(max(lc.TopN, 0), len(data.TopLanguages))
	return data.TopLanguages[:n]
}

func recentEvents(data ProfileData, ac ActivityConfig) []Event {
	n := min(max(ac.Limit, 0), len(data.RecentEvents))
	return data.RecentEvents[:n]
}

// languageLines renders one bar per language: the name padded to the longest
// name, a bar of barWidth cells and the percentage.
func languageLines(data ProfileData, lc LanguagesConfig) []string {
	langs := topLanguages(data, lc)
	nw := 0
	for _, l := range langs {
		nw = max(nw, width(l.Name))
	}
	lines := make([]string, 0, len(langs))
	for _, l := range langs {
		lines = append(lines, padRight(l.Name, nw)+" "+bar(l.Percentage)+" "+
			padLeft(percent(l.Percentage), 5)+"%")
	}
	return lines
}

// percent formats pct with one decimal, rounding halves up.
func percent(pct float64) string {
	return fmt.Sprintf("%.1f", math.Floor(pct*10+0.5)/10)
}

func bar(pct float64) string {
	filled := int(math.Floor(pct/100*barWidth + 0.5))
	filled = min(max(filled, 0), barWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// activityLines renders one line per event with the type padded to at least
// four cells.
func activityLines(data ProfileData, ac ActivityConfig) []string {
	events := recentEvents(data, ac)
	tw := 4
	for _, e := range events {
		tw = max(tw, width(e.Type))
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, padRight(e.Type, tw)+" "+e.Repo)
	}
	return lines
}
