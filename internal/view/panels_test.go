package view

import (
	"errors"
	"fmt"
	"testing"

	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfileURL = "https://github.com/example"

func profileResult(t *testing.T, status Status) Result[domain.Profile] {
	t.Helper()
	r := Pending[domain.Profile]()
	var err error
	switch status {
	case Success:
		r, err = r.Succeed(domain.Profile{HTMLURL: "https://github.com/live", PublicRepos: 5, Followers: 6, Following: 7})
	case Failure:
		r, err = r.Fail(errors.New("profile down"))
	}
	require.NoError(t, err)
	return r
}

func reposResult(t *testing.T, status Status, n int) Result[[]domain.Repository] {
	t.Helper()
	r := Pending[[]domain.Repository]()
	var err error
	switch status {
	case Success:
		repos := make([]domain.Repository, 0, n)
		for i := 0; i < n; i++ {
			repos = append(repos, domain.Repository{ID: int64(i), Name: fmt.Sprintf("repo-%d", i)})
		}
		r, err = r.Succeed(repos)
	case Failure:
		r, err = r.Fail(errors.New("repos down"))
	}
	require.NoError(t, err)
	return r
}

func TestBuildProfilePanel(t *testing.T) {
	assert.Equal(t, ProfilePanel{Kind: PanelSkeleton, Skeletons: 3}, BuildProfilePanel(profileResult(t, Loading)))
	assert.Equal(t, ProfilePanel{Kind: PanelHidden}, BuildProfilePanel(profileResult(t, Failure)))
	assert.Equal(t, ProfilePanel{
		Kind: PanelStats,
		Stats: []Stat{
			{Label: "Repositories", Value: 5},
			{Label: "Followers", Value: 6},
			{Label: "Following", Value: 7},
		},
	}, BuildProfilePanel(profileResult(t, Success)))
}

func TestBuildRepoPanel(t *testing.T) {
	allProfileStates := []Status{Loading, Success, Failure}

	t.Run("failed repos show the error card regardless of profile", func(t *testing.T) {
		for _, ps := range allProfileStates {
			panel := BuildRepoPanel(reposResult(t, Failure, 0), profileResult(t, ps), testProfileURL)
			assert.Equal(t, RepoPanel{Kind: PanelErrorCard, ProfileURL: testProfileURL}, panel, ps.String())
		}
	})

	t.Run("loading repos show six skeletons", func(t *testing.T) {
		for _, ps := range allProfileStates {
			panel := BuildRepoPanel(reposResult(t, Loading, 0), profileResult(t, ps), testProfileURL)
			assert.Equal(t, PanelSkeleton, panel.Kind)
			assert.Equal(t, 6, panel.Skeletons)
			assert.Empty(t, panel.Cards)
		}
	})

	t.Run("loaded repos show one card each and a view-all link", func(t *testing.T) {
		for n := 1; n <= domain.RepoPageSize; n++ {
			panel := BuildRepoPanel(reposResult(t, Success, n), profileResult(t, Loading), testProfileURL)
			assert.Equal(t, PanelGrid, panel.Kind)
			assert.Len(t, panel.Cards, n)
			assert.Equal(t, testProfileURL, panel.ViewAllURL)
		}
	})

	t.Run("view-all link prefers the loaded profile page", func(t *testing.T) {
		panel := BuildRepoPanel(reposResult(t, Success, 2), profileResult(t, Success), testProfileURL)
		assert.Equal(t, "https://github.com/live", panel.ViewAllURL)
	})

	t.Run("cards are capped at the page size", func(t *testing.T) {
		panel := BuildRepoPanel(reposResult(t, Success, 9), profileResult(t, Success), testProfileURL)
		assert.Len(t, panel.Cards, domain.RepoPageSize)
	})

	t.Run("empty list renders nothing", func(t *testing.T) {
		for _, ps := range allProfileStates {
			panel := BuildRepoPanel(reposResult(t, Success, 0), profileResult(t, ps), testProfileURL)
			assert.Equal(t, RepoPanel{Kind: PanelHidden}, panel)
		}
	})
}

func TestNewRepoCard(t *testing.T) {
	desc := "A long description that the stylesheet clamps to two lines."
	lang := "Go"
	odd := "Zig"
	topics := []string{"one", "two", "three", "four", "five", "six", "seven"}

	t.Run("topics are capped at four without touching the repository", func(t *testing.T) {
		card := NewRepoCard(domain.Repository{Name: "r", Topics: topics, Description: &desc, Language: &lang, StargazersCount: 3, ForksCount: 2})
		assert.Equal(t, []string{"one", "two", "three", "four"}, card.Topics)
		assert.Len(t, topics, 7)
		assert.Equal(t, desc, card.Description)
		assert.Equal(t, "Go", card.Language)
		assert.Equal(t, "#0891b2", card.LanguageColor)
		assert.Equal(t, 3, card.Stars)
		assert.Equal(t, 2, card.Forks)
	})

	t.Run("missing description and language", func(t *testing.T) {
		card := NewRepoCard(domain.Repository{Name: "bare"})
		assert.Equal(t, NoDescription, card.Description)
		assert.Empty(t, card.Language)
		assert.Empty(t, card.LanguageColor)
		assert.NotNil(t, card.Topics)
		assert.Empty(t, card.Topics)
	})

	t.Run("unknown language gets the neutral colour", func(t *testing.T) {
		card := NewRepoCard(domain.Repository{Name: "z", Language: &odd})
		assert.Equal(t, NeutralLanguageColor, card.LanguageColor)
	})
}
