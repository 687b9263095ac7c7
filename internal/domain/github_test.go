package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRepositories(t *testing.T) {
	repos := FallbackRepositories()
	require.Len(t, repos, RepoPageSize)

	seen := make(map[int64]bool)
	for _, r := range repos {
		assert.False(t, r.Fork, r.Name)
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
		assert.Equal(t, FallbackProfileURL+"/"+r.Name, r.HTMLURL)
		assert.NotNil(t, r.Topics)
		if assert.NotNil(t, r.UpdatedAt, r.Name) {
			assert.False(t, r.UpdatedAt.IsZero(), r.Name)
		}
	}
	assert.Equal(t, "taskflow-pro", repos[0].Name)
	assert.Equal(t, "go-api-gateway", repos[5].Name)
	assert.Nil(t, repos[1].Homepage)
}

func TestFallbackIsIdempotent(t *testing.T) {
	first := FallbackRepositories()
	first[0].Topics[0] = "mutated"
	first[0].Name = "mutated"
	*first[0].Description = "mutated"

	second := FallbackRepositories()
	assert.Equal(t, "taskflow-pro", second[0].Name)
	assert.Equal(t, "react", second[0].Topics[0])
	assert.NotEqual(t, "mutated", *second[0].Description)

	p := FallbackProfile()
	*p.Name = "mutated"
	assert.Equal(t, "Yash Priyam", *FallbackProfile().Name)
	assert.Equal(t, FallbackLogin, FallbackProfile().Login)
	assert.Equal(t, FallbackProfileURL, FallbackProfile().HTMLURL)
}

func TestOwnedRepositories(t *testing.T) {
	makeRepos := func(n int, forkEvery int) []Repository {
		repos := make([]Repository, 0, n)
		for i := 0; i < n; i++ {
			repos = append(repos, Repository{
				ID:   int64(i),
				Name: fmt.Sprintf("repo-%d", i),
				Fork: forkEvery > 0 && i%forkEvery == 0,
			})
		}
		return repos
	}

	testCases := []struct {
		name          string
		input         []Repository
		expectedNames []string
	}{
		{
			name:          "nil input yields empty slice",
			input:         nil,
			expectedNames: []string{},
		},
		{
			name:          "forks are dropped",
			input:         makeRepos(4, 2),
			expectedNames: []string{"repo-1", "repo-3"},
		},
		{
			name:          "batch is capped at page size",
			input:         makeRepos(10, 0),
			expectedNames: []string{"repo-0", "repo-1", "repo-2", "repo-3", "repo-4", "repo-5"},
		},
		{
			name:          "cap applies after filtering",
			input:         makeRepos(12, 3),
			expectedNames: []string{"repo-1", "repo-2", "repo-4", "repo-5", "repo-7", "repo-8"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owned := OwnedRepositories(tc.input)
			require.NotNil(t, owned)
			names := make([]string, 0, len(owned))
			for _, r := range owned {
				assert.False(t, r.Fork)
				assert.NotNil(t, r.Topics)
				names = append(names, r.Name)
			}
			assert.Equal(t, tc.expectedNames, names)
		})
	}
}
