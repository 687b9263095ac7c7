package domain

import "time"

// FallbackLogin is the account the demo payloads describe.
const FallbackLogin = "Raunak-24"

// FallbackProfileURL is the external profile page of the demo account.
const FallbackProfileURL = "https://github.com/" + FallbackLogin

// FallbackProfile returns the profile served when GitHub cannot be reached
// or no token is configured. Every call builds a new value.
func FallbackProfile() Profile {
	return Profile{
		Login:       FallbackLogin,
		AvatarURL:   "",
		HTMLURL:     FallbackProfileURL,
		Name:        ptr("Yash Priyam"),
		Bio:         ptr("Full-stack developer. Building elegant web experiences."),
		PublicRepos: 42,
		Followers:   128,
		Following:   67,
	}
}

type fallbackRepo struct {
	name        string
	description string
	homepage    string
	language    string
	stars       int
	forks       int
	topics      []string
	updatedAt   string
}

var fallbackRepos = [...]fallbackRepo{
	{
		name:        "taskflow-pro",
		description: "Real-time collaborative project management with kanban boards and team workflows",
		homepage:    "https://taskflow.dev",
		language:    "TypeScript",
		stars:       234,
		forks:       45,
		topics:      []string{"react", "typescript", "websocket", "kanban"},
		updatedAt:   "2026-02-01T10:00:00Z",
	},
	{
		name:        "code-snippet-hub",
		description: "Developer-focused snippet manager with syntax highlighting, tagging, and sharing",
		language:    "TypeScript",
		stars:       189,
		forks:       32,
		topics:      []string{"nextjs", "prisma", "tailwindcss", "trpc"},
		updatedAt:   "2026-01-28T14:30:00Z",
	},
	{
		name:        "weather-viz",
		description: "Interactive weather visualization with D3.js animated charts and 7-day forecasts",
		homepage:    "https://weatherviz.app",
		language:    "JavaScript",
		stars:       156,
		forks:       28,
		topics:      []string{"d3js", "react", "visualization", "weather-api"},
		updatedAt:   "2026-01-20T09:15:00Z",
	},
	{
		name:        "express-rate-limiter",
		description: "Lightweight Express middleware for API rate limiting with sliding window algorithm",
		language:    "TypeScript",
		stars:       312,
		forks:       67,
		topics:      []string{"express", "middleware", "rate-limiting", "api"},
		updatedAt:   "2026-01-15T16:45:00Z",
	},
	{
		name:        "pixel-canvas",
		description: "Collaborative pixel art editor with layers, animation frames, and GIF export",
		homepage:    "https://pixelcanvas.io",
		language:    "JavaScript",
		stars:       98,
		forks:       14,
		topics:      []string{"canvas-api", "websocket", "pixel-art", "collaborative"},
		updatedAt:   "2026-01-10T11:20:00Z",
	},
	{
		name:        "go-api-gateway",
		description: "High-performance API gateway with caching, load balancing, and monitoring",
		language:    "Go",
		stars:       445,
		forks:       89,
		topics:      []string{"go", "api-gateway", "microservices", "prometheus"},
		updatedAt:   "2026-01-05T08:30:00Z",
	},
}

// FallbackRepositories returns the six demo repositories. Every call builds
// new values, so callers may modify the result freely.
func FallbackRepositories() []Repository {
	repos := make([]Repository, 0, len(fallbackRepos))
	for i, f := range fallbackRepos {
		updated, _ := time.Parse(time.RFC3339, f.updatedAt)
		r := Repository{
			ID:              int64(i + 1),
			Name:            f.name,
			FullName:        FallbackLogin + "/" + f.name,
			Description:     ptr(f.description),
			HTMLURL:         FallbackProfileURL + "/" + f.name,
			Language:        ptr(f.language),
			StargazersCount: f.stars,
			ForksCount:      f.forks,
			Topics:          append([]string(nil), f.topics...),
			UpdatedAt:       &updated,
		}
		if f.homepage != "" {
			r.Homepage = ptr(f.homepage)
		}
		repos = append(repos, r)
	}
	return repos
}

func ptr(s string) *string {
	return &s
}
