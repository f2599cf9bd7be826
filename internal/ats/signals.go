package ats

import (
	"fmt"
	"strings"

	"atsgrader/internal/resume"
	"atsgrader/internal/types"
)

// Signals derives per-section feedback from a document and its breakdown.
// One signal per evaluated section, regenerated on every pass.
func Signals(doc *resume.Document, breakdown types.ScoreBreakdown) []types.SectionSignal {
	return []types.SectionSignal{
		headerSignal(doc),
		summarySignal(doc),
		skillsSignal(doc),
		experienceSignal(doc, breakdown),
		educationSignal(doc),
	}
}

func headerSignal(doc *resume.Document) types.SectionSignal {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(doc.PersonalInfo.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(doc.PersonalInfo.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(doc.PersonalInfo.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(doc.PersonalInfo.Location) == "" {
		missing = append(missing, "location")
	}

	switch {
	case len(missing) == 0:
		return types.SectionSignal{
			SectionID: resume.SectionHeader,
			Status:    types.StatusStrong,
			Message:   "Contact details are complete.",
		}
	case len(missing) >= 2 || missing[0] == "name":
		return types.SectionSignal{
			SectionID: resume.SectionHeader,
			Status:    types.StatusRisk,
			Message:   fmt.Sprintf("Header is missing %s. Recruiters cannot reach you without complete contact details.", strings.Join(missing, ", ")),
		}
	default:
		return types.SectionSignal{
			SectionID: resume.SectionHeader,
			Status:    types.StatusNeedsImprovement,
			Message:   fmt.Sprintf("Add your %s to the header.", missing[0]),
		}
	}
}

func summarySignal(doc *resume.Document) types.SectionSignal {
	length := len(strings.TrimSpace(doc.Summary))
	switch {
	case length == 0:
		return types.SectionSignal{
			SectionID: resume.SectionSummary,
			Status:    types.StatusRisk,
			Message:   "Add a professional summary. Resumes without one are often filtered early.",
		}
	case length < summaryCharsMin:
		return types.SectionSignal{
			SectionID: resume.SectionSummary,
			Status:    types.StatusNeedsImprovement,
			Message:   fmt.Sprintf("Your summary is short (%d characters). Aim for %d-%d characters.", length, summaryCharsMin, summaryCharsMax),
		}
	case length > summaryCharsMax:
		return types.SectionSignal{
			SectionID: resume.SectionSummary,
			Status:    types.StatusNeedsImprovement,
			Message:   fmt.Sprintf("Your summary is long (%d characters). Tighten it to %d-%d characters.", length, summaryCharsMin, summaryCharsMax),
		}
	default:
		return types.SectionSignal{
			SectionID: resume.SectionSummary,
			Status:    types.StatusStrong,
			Message:   "Summary length is on target.",
		}
	}
}

func skillsSignal(doc *resume.Document) types.SectionSignal {
	count := len(doc.SkillTerms())
	switch {
	case count == 0:
		return types.SectionSignal{
			SectionID: resume.SectionSkills,
			Status:    types.StatusRisk,
			Message:   "List your skills. Keyword scanners rely heavily on this section.",
		}
	case count < 8:
		return types.SectionSignal{
			SectionID: resume.SectionSkills,
			Status:    types.StatusNeedsImprovement,
			Message:   fmt.Sprintf("Only %d distinct skills listed. Add more terms relevant to your target roles.", count),
		}
	default:
		return types.SectionSignal{
			SectionID: resume.SectionSkills,
			Status:    types.StatusStrong,
			Message:   fmt.Sprintf("%d distinct skills listed.", count),
		}
	}
}

func experienceSignal(doc *resume.Document, breakdown types.ScoreBreakdown) types.SectionSignal {
	if len(doc.Bullets()) == 0 {
		return types.SectionSignal{
			SectionID: resume.SectionExperience,
			Status:    types.StatusRisk,
			Message:   "Add achievement bullets to your experience entries.",
		}
	}
	if breakdown.Content >= 70 {
		return types.SectionSignal{
			SectionID: resume.SectionExperience,
			Status:    types.StatusStrong,
			Message:   "Experience bullets are quantified and action-led.",
		}
	}
	return types.SectionSignal{
		SectionID: resume.SectionExperience,
		Status:    types.StatusNeedsImprovement,
		Message:   "Start bullets with strong action verbs and quantify results with numbers.",
	}
}

func educationSignal(doc *resume.Document) types.SectionSignal {
	if len(doc.Education) == 0 {
		return types.SectionSignal{
			SectionID: resume.SectionEducation,
			Status:    types.StatusRisk,
			Message:   "Add your education history.",
		}
	}
	return types.SectionSignal{
		SectionID: resume.SectionEducation,
		Status:    types.StatusStrong,
		Message:   "Education section is present.",
	}
}
