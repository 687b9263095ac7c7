package view

import (
	"github.com/naka-gawa/devfolio/internal/domain"
)

const (
	// MaxTopics is the number of topic badges shown per repository card.
	MaxTopics = 4
	// NoDescription replaces a missing repository description.
	NoDescription = "No description provided."
	// NeutralLanguageColor is used for languages without a dedicated colour.
	NeutralLanguageColor = "#9ca3af"
)

var languageColors = map[string]string{
	"TypeScript": "#3b82f6",
	"JavaScript": "#eab308",
	"Python":     "#16a34a",
	"Go":         "#0891b2",
	"Rust":       "#ea580c",
	"HTML":       "#dc2626",
	"CSS":        "#9333ea",
	"Shell":      "#059669",
	"Ruby":       "#dc2626",
	"Java":       "#d97706",
}

// LanguageColor returns the dot colour for a primary language.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return NeutralLanguageColor
}

// PanelKind says which variant of a panel is rendered.
type PanelKind string

const (
	PanelHidden    PanelKind = "hidden"
	PanelSkeleton  PanelKind = "skeleton"
	PanelStats     PanelKind = "stats"
	PanelErrorCard PanelKind = "error"
	PanelGrid      PanelKind = "grid"
)

// Stat is one profile counter.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ProfilePanel is the render model of the profile counters.
type ProfilePanel struct {
	Kind  PanelKind `json:"kind"`
	Stats []Stat    `json:"stats,omitempty"`
	// Skeletons is the number of placeholder counters while loading.
	Skeletons int `json:"skeletons,omitempty"`
}

// RepoCard is the render model of one repository.
type RepoCard struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	// Language is empty when the repository has no primary language.
	Language      string `json:"language,omitempty"`
	LanguageColor string `json:"language_color,omitempty"`
	Stars         int    `json:"stars"`
	Forks         int    `json:"forks"`
}

// RepoPanel is the render model of the repository area.
type RepoPanel struct {
	Kind       PanelKind  `json:"kind"`
	Skeletons  int        `json:"skeletons,omitempty"`
	Cards      []RepoCard `json:"cards,omitempty"`
	ViewAllURL string     `json:"view_all_url,omitempty"`
	// ProfileURL is the external link of the error card.
	ProfileURL string `json:"profile_url,omitempty"`
}

// BuildProfilePanel maps the profile slice to its panel.
func BuildProfilePanel(profile Result[domain.Profile]) ProfilePanel {
	switch profile.Status() {
	case Loading:
		return ProfilePanel{Kind: PanelSkeleton, Skeletons: 3}
	case Success:
		p, _ := profile.Value()
		return ProfilePanel{
			Kind: PanelStats,
			Stats: []Stat{
				{Label: "Repositories", Value: p.PublicRepos},
				{Label: "Followers", Value: p.Followers},
				{Label: "Following", Value: p.Following},
			},
		}
	default:
		return ProfilePanel{Kind: PanelHidden}
	}
}

// BuildRepoPanel maps the repository slice to its panel. A failed repository
// fetch shows the error card whatever the profile state; profileURL is the
// external page linked from the error card and, unless the profile loaded,
// from the "view all" button.
func BuildRepoPanel(repos Result[[]domain.Repository], profile Result[domain.Profile], profileURL string) RepoPanel {
	switch repos.Status() {
	case Failure:
		return RepoPanel{Kind: PanelErrorCard, ProfileURL: profileURL}
	case Loading:
		return RepoPanel{Kind: PanelSkeleton, Skeletons: domain.RepoPageSize}
	}

	list, _ := repos.Value()
	if len(list) == 0 {
		return RepoPanel{Kind: PanelHidden}
	}
	if len(list) > domain.RepoPageSize {
		list = list[:domain.RepoPageSize]
	}

	cards := make([]RepoCard, 0, len(list))
	for _, r := range list {
		cards = append(cards, NewRepoCard(r))
	}

	viewAll := profileURL
	if p, ok := profile.Value(); ok && p.HTMLURL != "" {
		viewAll = p.HTMLURL
	}
	return RepoPanel{Kind: PanelGrid, Cards: cards, ViewAllURL: viewAll}
}

// NewRepoCard builds the card of one repository. The description is only
// replaced when absent; clamping long text is left to CSS.
func NewRepoCard(r domain.Repository) RepoCard {
	card := RepoCard{
		Name:        r.Name,
		URL:         r.HTMLURL,
		Description: NoDescription,
		Stars:       r.StargazersCount,
		Forks:       r.ForksCount,
	}
	if r.Description != nil && *r.Description != "" {
		card.Description = *r.Description
	}

	n := min(len(r.Topics), MaxTopics)
	card.Topics = append(make([]string, 0, n), r.Topics[:n]...)

	if r.Language != nil && *r.Language != "" {
		card.Language = *r.Language
		card.LanguageColor = LanguageColor(card.Language)
	}
	return card
}

// Panels is the complete render model of the GitHub section.
type Panels struct {
	Profile ProfilePanel `json:"profile"`
	Repos   RepoPanel    `json:"repos"`
}

// BuildPanels maps a snapshot to both panels.
func BuildPanels(snap Snapshot, profileURL string) Panels {
	return Panels{
		Profile: BuildProfilePanel(snap.Profile),
		Repos:   BuildRepoPanel(snap.Repos, snap.Profile, profileURL),
	}
}
