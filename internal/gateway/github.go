// Package gateway provides gateways to the upstream APIs the portfolio
// depends on: the GitHub REST API and a generative-language model.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (domain.Profile, error)
	// FetchRepositories returns one page of the user's most recently updated
	// repositories, mapped verbatim. Forks are not filtered here.
	FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient *github.Client
	logger     zerolog.Logger
}

// NewGitHubGateway creates a gateway authenticated with the given token.
// An empty apiURL targets api.github.com.
//
// Secondary rate limits are never waited out and no request is ever sent
// twice: a limited response comes back to the caller as an error.
func NewGitHubGateway(token, apiURL string, logger zerolog.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(attemptLimiter{base: http.DefaultTransport},
		github_ratelimit.WithSingleSleepLimit(0, func(*github_ratelimit.CallbackContext) {
			logger.Warn().Msg("GitHub secondary rate limit hit, not waiting")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   singleAttempt{next: rateLimitWaiter},
			Source: ts,
		},
	}

	restClient := github.NewClient(httpClient)
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
		}
		restClient.BaseURL = baseURL
	}
	restClient.UserAgent = "Portfolio"

	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

func (g *GitHubGateway) FetchProfile(ctx context.Context, username string) (domain.Profile, error) {
	g.logger.Debug().Str("user", username).Msg("fetching GitHub profile")
	user, _, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to fetch profile of %s: %w", username, err)
	}
	return domain.Profile{
		Login:       user.GetLogin(),
		AvatarURL:   user.GetAvatarURL(),
		HTMLURL:     user.GetHTMLURL(),
		Name:        user.Name,
		Bio:         user.Bio,
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

func (g *GitHubGateway) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Debug().Str("user", username).Msg("fetching GitHub repositories")
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: domain.RepoPageSize},
	}
	repos, _, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories of %s: %w", username, err)
	}

	mapped := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		topics := r.Topics
		if topics == nil {
			topics = []string{}
		}
		mapped = append(mapped, domain.Repository{
			ID:              r.GetID(),
			Name:            r.GetName(),
			FullName:        r.GetFullName(),
			Description:     r.Description,
			HTMLURL:         r.GetHTMLURL(),
			Homepage:        r.Homepage,
			Language:        r.Language,
			StargazersCount: r.GetStargazersCount(),
			ForksCount:      r.GetForksCount(),
			Topics:          topics,
			UpdatedAt:       r.UpdatedAt.GetTime(),
			Fork:            r.GetFork(),
		})
	}
	return mapped, nil
}
