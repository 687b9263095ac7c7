package usecase

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/devfolio/internal/domain"
)

// Summarize aggregates star, fork and language counts over repos.
// Repositories without a language are not counted in the histogram.
func Summarize(repos []domain.Repository) (domain.RepoSummary, error) {
	summary := domain.RepoSummary{
		Repositories: len(repos),
		Languages:    make(map[string]int),
	}
	if len(repos) == 0 {
		return summary, nil
	}

	starData := make(stats.Float64Data, 0, len(repos))
	for _, r := range repos {
		starData = append(starData, float64(r.StargazersCount))
		summary.TotalStars += r.StargazersCount
		summary.TotalForks += r.ForksCount
		if r.Language != nil && *r.Language != "" {
			summary.Languages[*r.Language]++
		}
	}

	mean, err := starData.Mean()
	if err != nil {
		return domain.RepoSummary{}, fmt.Errorf("failed to compute mean stars: %w", err)
	}
	median, err := starData.Median()
	if err != nil {
		return domain.RepoSummary{}, fmt.Errorf("failed to compute median stars: %w", err)
	}
	summary.MeanStars, err = stats.Round(mean, 2)
	if err != nil {
		return domain.RepoSummary{}, fmt.Errorf("failed to round mean stars: %w", err)
	}
	summary.MedianStars = median
	return summary, nil
}
