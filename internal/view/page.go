package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/naka-gawa/devfolio/internal/content"
	"github.com/naka-gawa/devfolio/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageData is everything the portfolio page displays.
type PageData struct {
	Hero          domain.Hero
	Projects      []domain.Project
	ProjectFilter content.ProjectFilter
	Demos         []domain.CodeDemo
	Skills        []domain.Skill
	SkillCategory string
	GitHub        Panels
	Contact       domain.Contact
	Year          int
}

// NewPageData assembles the static sections around the GitHub panels.
func NewPageData(projectFilter content.ProjectFilter, skillCategory string, github Panels, year int) PageData {
	return PageData{
		Hero:          content.Hero(),
		Projects:      content.Projects(projectFilter),
		ProjectFilter: projectFilter,
		Demos:         content.Demos(),
		Skills:        content.Skills(skillCategory),
		SkillCategory: skillCategory,
		GitHub:        github,
		Contact:       content.Contact(),
		Year:          year,
	}
}

// Renderer renders the portfolio page.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"join":             strings.Join,
		"skillIcon":        content.SkillIcon,
		"projectFilters":   func() any { return content.ProjectFilters },
		"skillCategories":  func() any { return content.SkillCategories },
		"seq":              seq,
		"isKind":           func(k PanelKind, want string) bool { return string(k) == want },
		"demoTabID":        func(id string) string { return "demo-" + id },
		"proficiencyStyle": proficiencyStyle,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page to w. Nothing is written if rendering fails.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// StaticFS holds the stylesheet and scripts served under /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func proficiencyStyle(p int) template.CSS {
	p = max(0, min(p, 100))
	return template.CSS(fmt.Sprintf("width: %d%%", p))
}
