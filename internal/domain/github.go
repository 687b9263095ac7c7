// Package domain contains the core data structures of the portfolio:
// the GitHub records served by the proxy and the static site content.
package domain

import "time"

// Profile is the public GitHub profile shown in the activity section.
// Field names follow the GitHub REST API so the JSON served by the proxy
// is interchangeable with the upstream payload.
type Profile struct {
	Login       string  `json:"login"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

// Repository is a summary of one repository owned by the profile.
type Repository struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Description     *string    `json:"description"`
	HTMLURL         string     `json:"html_url"`
	Homepage        *string    `json:"homepage"`
	Language        *string    `json:"language"`
	StargazersCount int        `json:"stargazers_count"`
	ForksCount      int        `json:"forks_count"`
	Topics          []string   `json:"topics"`
	UpdatedAt       *time.Time `json:"updated_at"`
	Fork            bool       `json:"fork"`
}

// RepoPageSize is the number of repositories requested from GitHub and the
// hard cap on what the activity section displays.
const RepoPageSize = 6

// OwnedRepositories drops forks and caps the batch at RepoPageSize.
// A nil input yields an empty, non-nil slice.
func OwnedRepositories(repos []Repository) []Repository {
	owned := make([]Repository, 0, RepoPageSize)
	for _, r := range repos {
		if r.Fork {
			continue
		}
		if r.Topics == nil {
			r.Topics = []string{}
		}
		owned = append(owned, r)
		if len(owned) == RepoPageSize {
			break
		}
	}
	return owned
}
