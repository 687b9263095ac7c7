// Package client reads GitHub data from a running portfolio server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// APIClient calls the /api/github endpoints of a portfolio server. Unlike
// the server-side proxy it reports every failure to the caller.
type APIClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewAPIClient creates a client for the server at endpoint. A nil
// httpClient selects one with a 15 second timeout.
func NewAPIClient(endpoint string, httpClient *http.Client, logger zerolog.Logger) (*APIClient, error) {
	u, err := url.Parse(strings.TrimSuffix(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q must be an http or https URL", endpoint)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &APIClient{
		baseURL:    u,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *APIClient) Profile(ctx context.Context, username string) (domain.Profile, error) {
	var profile domain.Profile
	if err := c.get(ctx, "/api/github/profile", username, &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (c *APIClient) Repositories(ctx context.Context, username string) ([]domain.Repository, error) {
	var repos []domain.Repository
	if err := c.get(ctx, "/api/github/repos", username, &repos); err != nil {
		return nil, err
	}
	if repos == nil {
		repos = []domain.Repository{}
	}
	return repos, nil
}

func (c *APIClient) get(ctx context.Context, path, username string, out any) error {
	u := *c.baseURL
	u.Path += path
	if username != "" {
		u.RawQuery = url.Values{"username": {username}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", u.String()).Msg("requesting")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request to %s failed with status %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s: %w", path, err)
	}
	return nil
}
