package content

import (
	"strings"

	"github.com/naka-gawa/devfolio/internal/domain"
)

// SkillsAll selects every category.
const SkillsAll = "all"

// SkillCategories lists the category tabs in display order.
var SkillCategories = []struct {
	Value string
	Label string
}{
	{SkillsAll, "All"},
	{string(domain.SkillFrontend), "Frontend"},
	{string(domain.SkillBackend), "Backend"},
	{string(domain.SkillLanguages), "Languages"},
	{string(domain.SkillTools), "Tools"},
}

// DefaultSkillIcon is shown for skills without a known icon.
const DefaultSkillIcon = "◆"

var skillIcons = map[string]string{
	"react":       "⚛",
	"typescript":  "TS",
	"javascript":  "JS",
	"nodejs":      "⬢",
	"python":      "Py",
	"go":          "Go",
	"rust":        "Rs",
	"nextjs":      "N",
	"tailwindcss": "≋",
	"postgresql":  "PG",
	"mongodb":     "M",
	"redis":       "R",
	"docker":      "🐳",
	"git":         "⎇",
	"graphql":     "◈",
	"figma":       "F",
	"aws":         "☁",
	"vercel":      "▲",
	"vite":        "⚡",
	"linux":       "🐧",
}

// SkillIcon returns the glyph for a skill icon id.
func SkillIcon(id string) string {
	if g, ok := skillIcons[id]; ok {
		return g
	}
	return DefaultSkillIcon
}

var skills = []domain.Skill{
	{Name: "React", Icon: "react", Category: domain.SkillFrontend, Proficiency: 95},
	{Name: "TypeScript", Icon: "typescript", Category: domain.SkillLanguages, Proficiency: 92},
	{Name: "Next.js", Icon: "nextjs", Category: domain.SkillFrontend, Proficiency: 88},
	{Name: "TailwindCSS", Icon: "tailwindcss", Category: domain.SkillFrontend, Proficiency: 94},
	{Name: "Vite", Icon: "vite", Category: domain.SkillFrontend, Proficiency: 85},
	{Name: "Node.js", Icon: "nodejs", Category: domain.SkillBackend, Proficiency: 90},
	{Name: "Python", Icon: "python", Category: domain.SkillLanguages, Proficiency: 82},
	{Name: "Go", Icon: "go", Category: domain.SkillLanguages, Proficiency: 70},
	{Name: "Rust", Icon: "rust", Category: domain.SkillLanguages, Proficiency: 55},
	{Name: "JavaScript", Icon: "javascript", Category: domain.SkillLanguages, Proficiency: 95},
	{Name: "PostgreSQL", Icon: "postgresql", Category: domain.SkillBackend, Proficiency: 85},
	{Name: "MongoDB", Icon: "mongodb", Category: domain.SkillBackend, Proficiency: 78},
	{Name: "Redis", Icon: "redis", Category: domain.SkillBackend, Proficiency: 75},
	{Name: "GraphQL", Icon: "graphql", Category: domain.SkillBackend, Proficiency: 80},
	{Name: "Docker", Icon: "docker", Category: domain.SkillTools, Proficiency: 82},
	{Name: "Git", Icon: "git", Category: domain.SkillTools, Proficiency: 92},
	{Name: "AWS", Icon: "aws", Category: domain.SkillTools, Proficiency: 72},
	{Name: "Vercel", Icon: "vercel", Category: domain.SkillTools, Proficiency: 88},
	{Name: "Figma", Icon: "figma", Category: domain.SkillTools, Proficiency: 70},
	{Name: "Linux", Icon: "linux", Category: domain.SkillTools, Proficiency: 80},
}

// ParseSkillCategory maps a query value to a category. Unknown values select all.
func ParseSkillCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range SkillCategories {
		if c.Value == s {
			return s
		}
	}
	return SkillsAll
}

// Skills returns the skills of category, or every skill for SkillsAll.
func Skills(category string) []domain.Skill {
	out := make([]domain.Skill, 0, len(skills))
	for _, s := range skills {
		if category == SkillsAll || string(s.Category) == category {
			out = append(out, s)
		}
	}
	return out
}
