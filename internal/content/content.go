// Package content holds the static portfolio content and the pure filters
// used by the projects and skills sections.
package content

import (
	"strings"

	"github.com/naka-gawa/devfolio/internal/domain"
)

func Hero() domain.Hero {
	return domain.Hero{
		Name: "Yash Priyam",
		TypingTexts: []string{
			"Full-Stack Developer",
			"React Specialist",
			"Open Source Contributor",
			"UI/UX Enthusiast",
		},
		Description: "I build elegant, performant web applications with modern technologies. " +
			"Passionate about clean code, open source, and creating delightful user experiences.",
		Location:    "San Francisco, CA",
		GitHubURL:   domain.FallbackProfileURL,
		LinkedInURL: "https://linkedin.com",
	}
}

func Contact() domain.Contact {
	return domain.Contact{
		Email:        "yash@devportfolio.com",
		Location:     "San Francisco, CA",
		Availability: "Open to new roles",
		GitHubHandle: "@" + domain.FallbackLogin,
		GitHubURL:    domain.FallbackProfileURL,
		LinkedInURL:  "https://linkedin.com",
	}
}

// ProjectFilter selects a subset of projects.
type ProjectFilter string

const (
	ProjectsAll        ProjectFilter = "all"
	ProjectsFeatured   ProjectFilter = "featured"
	ProjectsLiveDemo   ProjectFilter = "live-demo"
	ProjectsOpenSource ProjectFilter = "open-source"
)

// ProjectFilters lists the filter tabs in display order.
var ProjectFilters = []struct {
	Value ProjectFilter
	Label string
}{
	{ProjectsAll, "All"},
	{ProjectsFeatured, "Featured"},
	{ProjectsLiveDemo, "Live Demo"},
	{ProjectsOpenSource, "Open Source"},
}

// ParseProjectFilter maps a query value to a filter. Unknown values select all.
func ParseProjectFilter(s string) ProjectFilter {
	f := ProjectFilter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case ProjectsFeatured, ProjectsLiveDemo, ProjectsOpenSource:
		return f
	default:
		return ProjectsAll
	}
}

var projects = []domain.Project{
	{
		ID:          "1",
		Title:       "Resume Screening & Ranking System",
		Description: "An AI-powered system that parses resumes using NLP, extracts key skills, and ranks candidates based on job descriptions.",
		Tags:        []string{"Python", "NLP", "Scikit-learn", "Flask", "Pandas"},
		CodeURL:     "https://github.com",
		Featured:    true,
	},
	{
		ID:          "2",
		Title:       "Emotion Detection from Facial Expressions",
		Description: "Real-time emotion recognition using Deep Learning (CNNs) to detect human emotions like happy, sad, angry, and neutral from video feeds.",
		Tags:        []string{"Python", "TensorFlow", "Keras", "OpenCV"},
		CodeURL:     "https://github.com",
		Featured:    true,
	},
	{
		ID:          "3",
		Title:       "Face Recognition Attendance System",
		Description: "An automated attendance system that recognizes students/employees using LBPH algorithms and logs attendance in real-time.",
		Tags:        []string{"Python", "OpenCV", "SQLite", "NumPy"},
		CodeURL:     "https://github.com",
		Featured:    true,
	},
	{
		ID:          "4",
		Title:       "Personal Portfolio-builder Website",
		Description: "A dynamic web application that allows users to create, customize, and host their professional portfolios with ease.",
		Tags:        []string{"React", "Node.js", "MongoDB", "TailwindCSS"},
		LiveURL:     "https://example.com",
		CodeURL:     "https://github.com",
	},
	{
		ID:          "5",
		Title:       "License Plate Recognition System",
		Description: "An automated vehicle tracking system that extracts characters from license plates using OCR and edge detection techniques.",
		Tags:        []string{"Python", "OpenCV", "Tesseract OCR", "Matplotlib"},
		CodeURL:     "https://github.com",
	},
}

// Projects returns the projects matching filter, in display order.
func Projects(filter ProjectFilter) []domain.Project {
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		var keep bool
		switch filter {
		case ProjectsFeatured:
			keep = p.Featured
		case ProjectsLiveDemo:
			keep = p.CodePenURL != "" || p.LiveURL != ""
		case ProjectsOpenSource:
			keep = p.CodeURL != ""
		default:
			keep = true
		}
		if keep {
			p.Tags = append([]string(nil), p.Tags...)
			out = append(out, p)
		}
	}
	return out
}
