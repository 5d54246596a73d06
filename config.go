package profilecard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Style selects how sections are arranged.
type Style string

const (
	StyleClassic  Style = "classic"
	StyleCompact  Style = "compact"
	StyleTerminal Style = "terminal"
)

var styles = []Style{StyleClassic, StyleCompact, StyleTerminal}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported style names.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style name. The empty string selects [StyleTerminal].
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleTerminal, nil
	}
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedStyle, s)
}

// DefaultFont is the bundled font used when none is configured.
const DefaultFont = "Block"

// ASCIIConfig configures the block-letter art section.
type ASCIIConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Text    string `yaml:"text" json:"text"`
	Font    string `yaml:"font" json:"font"`

	// ShowCats passes the art through the renderer's overlay.
	ShowCats bool `yaml:"showCats" json:"showCats"`
}

// StatsConfig configures the stats section.
type StatsConfig struct {
	Enabled       bool `yaml:"enabled" json:"enabled"`
	ShowCommits   bool `yaml:"showCommits" json:"showCommits"`
	ShowStars     bool `yaml:"showStars" json:"showStars"`
	ShowFollowers bool `yaml:"showFollowers" json:"showFollowers"`
}

// LanguagesConfig configures the languages section. At most TopN languages
// are shown; a non-positive TopN shows none.
type LanguagesConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	TopN    int  `yaml:"topN" json:"topN"`
}

// ActivityConfig configures the activity section. At most Limit events are
// shown; a non-positive Limit shows none.
type ActivityConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	Limit   int  `yaml:"limit" json:"limit"`
}

// SectionsConfig holds one block per section.
type SectionsConfig struct {
	ASCII     ASCIIConfig     `yaml:"ascii" json:"ascii"`
	Stats     StatsConfig     `yaml:"stats" json:"stats"`
	Languages LanguagesConfig `yaml:"languages" json:"languages"`
	Activity  ActivityConfig  `yaml:"activity" json:"activity"`
}

// Config describes one profile rendering.
type Config struct {
	Username string `yaml:"username" json:"username"`

	// Style defaults to [StyleTerminal] when empty. Values other than
	// terminal and compact render the classic layout.
	Style Style `yaml:"style,omitempty" json:"style,omitempty"`

	// StyleText is free text placed under the art.
	StyleText string `yaml:"styleText,omitempty" json:"styleText,omitempty"`

	Sections SectionsConfig `yaml:"sections" json:"sections"`
}

// DefaultConfig returns the configuration a new profile starts from.
func DefaultConfig() Config {
	return Config{
		Style: StyleTerminal,
		Sections: SectionsConfig{
			ASCII:     ASCIIConfig{Enabled: true, Text: "hello", Font: DefaultFont},
			Stats:     StatsConfig{Enabled: true, ShowCommits: true, ShowStars: true, ShowFollowers: true},
			Languages: LanguagesConfig{Enabled: true, TopN: 5},
			Activity:  ActivityConfig{Enabled: true, Limit: 5},
		},
	}
}

// Enabled reports whether section s is switched on.
func (c Config) Enabled(s Section) bool {
	switch s {
	case SectionASCII:
		return c.Sections.ASCII.Enabled
	case SectionStats:
		return c.Sections.Stats.Enabled
	case SectionLanguages:
		return c.Sections.Languages.Enabled
	case SectionActivity:
		return c.Sections.Activity.Enabled
	default:
		return false
	}
}

func (c Config) style() Style {
	if c.Style == "" {
		return StyleTerminal
	}
	return c.Style
}

// LoadConfig decodes a YAML or JSON config over [DefaultConfig]. Keys that
// are absent keep their defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}
