package main

import (
	"context"
	"strings"

	"github.com/bjaus/profilecard"
)

type demoFetcher struct{}

func (demoFetcher) Fetch(_ context.Context, username string) (profilecard.ProfileData, error) {
	if username == "" {
		username = "demo"
	}
	return profilecard.ProfileData{
		Followers:    10,
		TotalStars:   32,
		TotalCommits: 1287,
		TopLanguages: []profilecard.Language{
			{Name: "Go", Percentage: 70},
			{Name: "TypeScript", Percentage: 20},
			{Name: "Lua", Percentage: 10},
		},
		RecentEvents: []profilecard.Event{
			{Type: "push", Repo: username + "/profilecard"},
			{Type: "star", Repo: "golang/go"},
			{Type: "fork", Repo: "charmbracelet/bubbletea"},
		},
	}, nil
}

var cat = []string{
	` /\_/\`,
	`( o.o )`,
	` > ^ <`,
}

// catOverlay puts a cat on top of the block.
func catOverlay(s string) string {
	return strings.Join(cat, "\n") + "\n" + s
}
