// Package usecase contains the business logic of the application.
package usecase

import (
	"context"

	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/naka-gawa/devfolio/internal/gateway"
	"github.com/rs/zerolog"
)

// Proxy serves GitHub data with a fallback policy: callers always receive a
// value. When no fetcher is configured (no token) the proxy runs in demo mode
// and never touches the network. When the single upstream call fails for any
// reason the error is logged and the fixed fallback record is returned.
type Proxy struct {
	fetcher         gateway.Fetcher
	defaultUsername string
	logger          zerolog.Logger
}

// NewProxy creates a Proxy. A nil fetcher selects demo mode.
func NewProxy(fetcher gateway.Fetcher, defaultUsername string, logger zerolog.Logger) *Proxy {
	if defaultUsername == "" {
		defaultUsername = domain.FallbackLogin
	}
	return &Proxy{
		fetcher:         fetcher,
		defaultUsername: defaultUsername,
		logger:          logger,
	}
}

// DemoMode reports whether the proxy serves fallback data without calling GitHub.
func (p *Proxy) DemoMode() bool {
	return p.fetcher == nil
}

// DefaultUsername is the account used when a request names none.
func (p *Proxy) DefaultUsername() string {
	return p.defaultUsername
}

// Profile returns the profile of username, or of the default account when
// username is empty.
func (p *Proxy) Profile(ctx context.Context, username string) domain.Profile {
	username = p.resolve(username)
	if p.fetcher == nil {
		p.logger.Debug().Str("user", username).Msg("no GitHub token, serving fallback profile")
		return domain.FallbackProfile()
	}

	profile, err := p.fetcher.FetchProfile(ctx, username)
	if err != nil {
		p.logger.Warn().Err(err).Str("user", username).Msg("GitHub unavailable, serving fallback profile")
		return domain.FallbackProfile()
	}
	return profile
}

// Repositories returns at most domain.RepoPageSize non-fork repositories of
// username, most recently updated first.
func (p *Proxy) Repositories(ctx context.Context, username string) []domain.Repository {
	username = p.resolve(username)
	if p.fetcher == nil {
		p.logger.Debug().Str("user", username).Msg("no GitHub token, serving fallback repositories")
		return domain.FallbackRepositories()
	}

	repos, err := p.fetcher.FetchRepositories(ctx, username)
	if err != nil {
		p.logger.Warn().Err(err).Str("user", username).Msg("GitHub unavailable, serving fallback repositories")
		return domain.FallbackRepositories()
	}
	return domain.OwnedRepositories(repos)
}

func (p *Proxy) resolve(username string) string {
	if username == "" {
		return p.defaultUsername
	}
	return username
}

// ProxySource adapts a Proxy to consumers that expect fetch errors. The
// proxy itself never fails, so the only error reported is a done context.
type ProxySource struct {
	Proxy *Proxy
}

func (s ProxySource) Profile(ctx context.Context, username string) (domain.Profile, error) {
	profile := s.Proxy.Profile(ctx, username)
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s ProxySource) Repositories(ctx context.Context, username string) ([]domain.Repository, error) {
	repos := s.Proxy.Repositories(ctx, username)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return repos, nil
}
