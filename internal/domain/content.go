package domain

// Hero is the introduction shown at the top of the page.
type Hero struct {
	Name        string
	TypingTexts []string
	Description string
	Location    string
	GitHubURL   string
	LinkedInURL string
}

// Project is a showcased piece of work.
type Project struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	LiveURL     string
	CodeURL     string
	CodePenURL  string
	Featured    bool
}

// SkillCategory groups skills in the skills section.
type SkillCategory string

const (
	SkillFrontend  SkillCategory = "frontend"
	SkillBackend   SkillCategory = "backend"
	SkillLanguages SkillCategory = "languages"
	SkillTools     SkillCategory = "tools"
)

// Skill is one technology with a self-assessed proficiency in percent.
type Skill struct {
	Name        string
	Icon        string
	Category    SkillCategory
	Proficiency int
}

// CodeDemo is a code sample displayed next to its expected output.
type CodeDemo struct {
	ID          string
	Title       string
	Description string
	Language    string
	Code        string
	Output      string
}

// Contact holds the contact card details.
type Contact struct {
	Email        string
	Location     string
	Availability string
	GitHubHandle string
	GitHubURL    string
	LinkedInURL  string
}
