package resume

import "strings"

// Section identifiers as they appear in a document's section order.
const (
	SectionHeader         = "header"
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
	SectionProjects       = "projects"
)

// PersonalInfo holds the resume header fields.
type PersonalInfo struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Links    []string `json:"links,omitempty"`
	Photo    string   `json:"photo,omitempty"`
}

// SkillGroup is a named category of skill terms.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// ExperienceEntry is a single position with its achievement bullets.
type ExperienceEntry struct {
	Company   string   `json:"company"`
	Position  string   `json:"position"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Current   bool     `json:"current,omitempty"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry is a single degree or program.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Certification is a named credential.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Language pairs a language with a proficiency level.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Project is a portfolio entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Bullets     []string `json:"bullets,omitempty"`
}

// Document is the structured resume supplied by the editing surface. The
// scoring engine treats every Document as an immutable snapshot: it never
// mutates one, and all derived data are new values.
type Document struct {
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []SkillGroup      `json:"skills,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Languages      []Language        `json:"languages,omitempty"`
	Projects       []Project         `json:"projects,omitempty"`

	// SectionOrder is the display order of sections as arranged in the
	// editor. When empty, DefaultSectionOrder applies.
	SectionOrder []string `json:"sectionOrder,omitempty"`
}

// DefaultSectionOrder is the order assumed when a document carries none.
func DefaultSectionOrder() []string {
	return []string{
		SectionHeader,
		SectionSummary,
		SectionSkills,
		SectionExperience,
		SectionEducation,
		SectionCertifications,
		SectionLanguages,
		SectionProjects,
	}
}

// Order returns the document's effective section order.
func (d *Document) Order() []string {
	if len(d.SectionOrder) > 0 {
		return d.SectionOrder
	}
	return DefaultSectionOrder()
}

// Bullets returns all experience bullets in document order.
func (d *Document) Bullets() []string {
	var bullets []string
	for _, entry := range d.Experience {
		bullets = append(bullets, entry.Bullets...)
	}
	return bullets
}

// SkillTerms returns the distinct skill terms across all groups, first-seen
// order, deduplicated case-insensitively.
func (d *Document) SkillTerms() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, group := range d.Skills {
		for _, skill := range group.Skills {
			trimmed := strings.TrimSpace(skill)
			if trimmed == "" {
				continue
			}
			key := strings.ToLower(trimmed)
			if seen[key] {
				continue
			}
			seen[key] = true
			terms = append(terms, trimmed)
		}
	}
	return terms
}

// FullText flattens the document into a single searchable string for keyword
// membership tests. Photo content never participates.
func (d *Document) FullText() string {
	var b strings.Builder

	writeLine := func(s string) {
		if strings.TrimSpace(s) == "" {
			return
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}

	writeLine(d.PersonalInfo.Name)
	writeLine(d.PersonalInfo.Title)
	writeLine(d.PersonalInfo.Email)
	writeLine(d.PersonalInfo.Location)
	for _, link := range d.PersonalInfo.Links {
		writeLine(link)
	}
	writeLine(d.Summary)
	for _, group := range d.Skills {
		writeLine(group.Category)
		for _, skill := range group.Skills {
			writeLine(skill)
		}
	}
	for _, entry := range d.Experience {
		writeLine(entry.Company)
		writeLine(entry.Position)
		writeLine(entry.Location)
		for _, bullet := range entry.Bullets {
			writeLine(bullet)
		}
	}
	for _, entry := range d.Education {
		writeLine(entry.Institution)
		writeLine(entry.Degree)
		writeLine(entry.Field)
	}
	for _, cert := range d.Certifications {
		writeLine(cert.Name)
		writeLine(cert.Issuer)
	}
	for _, lang := range d.Languages {
		writeLine(lang.Name)
	}
	for _, project := range d.Projects {
		writeLine(project.Name)
		writeLine(project.Description)
		for _, bullet := range project.Bullets {
			writeLine(bullet)
		}
	}

	return b.String()
}
