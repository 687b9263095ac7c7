package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchProfile(ctx context.Context, username string) (domain.Profile, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.Profile), args.Error(1)
}

func (m *mockFetcher) FetchRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repository), args.Error(1)
}

func TestProxy_DemoMode(t *testing.T) {
	proxy := NewProxy(nil, "", zerolog.Nop())
	require.True(t, proxy.DemoMode())
	assert.Equal(t, domain.FallbackLogin, proxy.DefaultUsername())

	for _, username := range []string{"", "someone-else"} {
		assert.Equal(t, domain.FallbackProfile(), proxy.Profile(context.Background(), username))
		assert.Equal(t, domain.FallbackRepositories(), proxy.Repositories(context.Background(), username))
	}
}

func TestProxy_Profile(t *testing.T) {
	live := domain.Profile{Login: "octocat", HTMLURL: "https://github.com/octocat", PublicRepos: 3}

	testCases := []struct {
		name          string
		username      string
		expectedUser  string
		mockProfile   domain.Profile
		mockErr       error
		expectedValue domain.Profile
	}{
		{
			name:          "happy path - live profile is returned",
			username:      "octocat",
			expectedUser:  "octocat",
			mockProfile:   live,
			expectedValue: live,
		},
		{
			name:          "empty username resolves to the default account",
			username:      "",
			expectedUser:  "default-user",
			mockProfile:   live,
			expectedValue: live,
		},
		{
			name:          "upstream failure degrades to fallback",
			username:      "octocat",
			expectedUser:  "octocat",
			mockErr:       errors.New("github api error"),
			expectedValue: domain.FallbackProfile(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			fetcher.On("FetchProfile", mock.Anything, tc.expectedUser).Return(tc.mockProfile, tc.mockErr).Once()

			proxy := NewProxy(fetcher, "default-user", zerolog.Nop())
			assert.False(t, proxy.DemoMode())
			assert.Equal(t, tc.expectedValue, proxy.Profile(context.Background(), tc.username))

			fetcher.AssertExpectations(t)
		})
	}
}

func TestProxy_Repositories(t *testing.T) {
	many := make([]domain.Repository, 0, 9)
	for i := 0; i < 9; i++ {
		many = append(many, domain.Repository{ID: int64(i), Name: fmt.Sprintf("repo-%d", i), Fork: i == 0})
	}

	testCases := []struct {
		name          string
		mockRepos     []domain.Repository
		mockErr       error
		expectedNames []string
	}{
		{
			name:          "forks are filtered and the batch is capped",
			mockRepos:     many,
			expectedNames: []string{"repo-1", "repo-2", "repo-3", "repo-4", "repo-5", "repo-6"},
		},
		{
			name:          "empty upstream list stays empty",
			mockRepos:     []domain.Repository{},
			expectedNames: []string{},
		},
		{
			name:          "upstream failure degrades to the six fallback repositories",
			mockErr:       errors.New("connection refused"),
			expectedNames: []string{"taskflow-pro", "code-snippet-hub", "weather-viz", "express-rate-limiter", "pixel-canvas", "go-api-gateway"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := new(mockFetcher)
			var mockReturn interface{}
			if tc.mockRepos != nil {
				mockReturn = tc.mockRepos
			}
			fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(mockReturn, tc.mockErr).Once()

			proxy := NewProxy(fetcher, "octocat", zerolog.Nop())
			repos := proxy.Repositories(context.Background(), "")

			require.NotNil(t, repos)
			assert.LessOrEqual(t, len(repos), domain.RepoPageSize)
			names := make([]string, 0, len(repos))
			for _, r := range repos {
				assert.False(t, r.Fork)
				names = append(names, r.Name)
			}
			assert.Equal(t, tc.expectedNames, names)

			fetcher.AssertExpectations(t)
		})
	}
}

func TestProxySource(t *testing.T) {
	source := ProxySource{Proxy: NewProxy(nil, "", zerolog.Nop())}

	profile, err := source.Profile(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackProfile(), profile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = source.Repositories(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
