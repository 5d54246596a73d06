package profilecard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Language is one entry of a profile's language breakdown.
type Language struct {
	Name       string  `yaml:"name" json:"name"`
	Percentage float64 `yaml:"percentage" json:"percentage"`
}

// Event is one recent public event.
type Event struct {
	Type string `yaml:"type" json:"type"`
	Repo string `yaml:"repo" json:"repo"`
}

// ProfileData holds the statistics a profile is rendered from. TopLanguages
// is sorted by descending percentage and RecentEvents most recent first; the
// renderer does not reorder either.
type ProfileData struct {
	Followers    int        `yaml:"followers" json:"followers"`
	TotalStars   int        `yaml:"totalStars" json:"totalStars"`
	TotalCommits int        `yaml:"totalCommits" json:"totalCommits"`
	TopLanguages []Language `yaml:"topLanguages" json:"topLanguages"`
	RecentEvents []Event    `yaml:"recentEvents" json:"recentEvents"`
}

// Fetcher retrieves profile data for a user.
type Fetcher interface {
	Fetch(ctx context.Context, username string) (ProfileData, error)
}

// FetcherFunc adapts a function to [Fetcher].
type FetcherFunc func(ctx context.Context, username string) (ProfileData, error)

// Fetch calls fn.
func (fn FetcherFunc) Fetch(ctx context.Context, username string) (ProfileData, error) {
	return fn(ctx, username)
}

// Generate fetches the profile for cfg.Username and renders it. Fetch errors
// are returned wrapped and are not retried.
func (r *Renderer) Generate(ctx context.Context, f Fetcher, cfg Config) (string, error) {
	data, err := f.Fetch(ctx, cfg.Username)
	if err != nil {
		return "", fmt.Errorf("fetch profile %q: %w", cfg.Username, err)
	}
	return r.Render(data, cfg)
}

// LoadProfile decodes YAML or JSON profile data.
func LoadProfile(r io.Reader) (ProfileData, error) {
	var data ProfileData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return ProfileData{}, fmt.Errorf("decode profile: %w", err)
	}
	return data, nil
}

// LoadProfileFile reads profile data from path.
func LoadProfileFile(path string) (ProfileData, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProfileData{}, err
	}
	defer f.Close()
	return LoadProfile(f)
}
