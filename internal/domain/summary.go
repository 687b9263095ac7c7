package domain

// RepoSummary aggregates a batch of repositories.
type RepoSummary struct {
	Repositories int            `json:"repositories"`
	TotalStars   int            `json:"total_stars"`
	MeanStars    float64        `json:"mean_stars"`
	MedianStars  float64        `json:"median_stars"`
	TotalForks   int            `json:"total_forks"`
	Languages    map[string]int `json:"languages"`
}
