package ats

import (
	"math"
	"slices"
	"strings"

	"atsgrader/internal/resume"
	"atsgrader/internal/types"
)

// Structure analyzer constants. Missing required sections weigh more than
// header gaps; the Experience-before-Education guardrail is a penalty, not a
// hard floor.
const (
	missingSectionPenalty = 15
	sectionOrderPenalty   = 10
	missingContactPenalty = 5
)

// Keyword analyzer generic baseline: this many distinct skill terms count as
// full coverage when no job description has been matched yet.
const skillBaseline = 15

// Content analyzer weighting.
const (
	quantifiedWeight  = 55
	strongVerbWeight  = 45
	weakOpenerPenalty = 20
)

// Readability target ranges.
const (
	bulletWordsMin  = 8
	bulletWordsMax  = 25
	summaryCharsMin = 150
	summaryCharsMax = 400
)

// AnalyzeStructure scores section presence, ordering and header completeness.
// Optional sections never penalize structure.
func AnalyzeStructure(doc *resume.Document) int {
	score := 100

	if strings.TrimSpace(doc.PersonalInfo.Name) == "" {
		score -= missingSectionPenalty
	}
	if strings.TrimSpace(doc.Summary) == "" {
		score -= missingSectionPenalty
	}
	if len(doc.Experience) == 0 {
		score -= missingSectionPenalty
	}
	if len(doc.SkillTerms()) == 0 {
		score -= missingSectionPenalty
	}
	if len(doc.Education) == 0 {
		score -= missingSectionPenalty
	}

	// The editor prevents this reordering outright, but documents arriving
	// from other sources are re-validated here.
	order := doc.Order()
	eduIdx := slices.Index(order, resume.SectionEducation)
	expIdx := slices.Index(order, resume.SectionExperience)
	if eduIdx >= 0 && expIdx >= 0 && eduIdx < expIdx {
		score -= sectionOrderPenalty
	}

	for _, field := range []string{
		doc.PersonalInfo.Email,
		doc.PersonalInfo.Phone,
		doc.PersonalInfo.Location,
	} {
		if strings.TrimSpace(field) == "" {
			score -= missingContactPenalty
		}
	}

	return clampScore(score)
}

// AnalyzeKeywords scores job-description term coverage. With a prior matcher
// result available the score is the matched ratio; without one (or when the
// matcher extracted nothing classifiable) it falls back to a generic skill
// count heuristic.
func AnalyzeKeywords(doc *resume.Document, jd *types.JDAnalysis) int {
	if jd != nil && len(jd.Keywords) > 0 {
		return roundRatio(len(jd.MatchedKeywords), len(jd.Keywords))
	}
	generic := roundRatio(len(doc.SkillTerms()), skillBaseline)
	return min(generic, 100)
}

// AnalyzeContent scores experience bullets on quantification and verb
// strength. An experience section with zero bullets scores 0 regardless of
// other sections.
func AnalyzeContent(doc *resume.Document) int {
	bullets := doc.Bullets()
	if len(bullets) == 0 {
		return 0
	}

	var quantified, strong, weak int
	for _, bullet := range bullets {
		if IsQuantified(bullet) {
			quantified++
		}
		if HasStrongOpener(bullet) {
			strong++
		}
		if HasWeakOpener(bullet) {
			weak++
		}
	}

	total := len(bullets)
	score := float64(quantifiedWeight)*float64(quantified)/float64(total) +
		float64(strongVerbWeight)*float64(strong)/float64(total) -
		float64(weakOpenerPenalty)*float64(weak)/float64(total)

	return clampScore(int(math.Round(score)))
}

// AnalyzeReadability scores average bullet length and summary length against
// their target ranges, decaying linearly outside them in both directions.
func AnalyzeReadability(doc *resume.Document) int {
	bullets := doc.Bullets()
	bulletScore := 0.0
	if len(bullets) > 0 {
		totalWords := 0
		for _, bullet := range bullets {
			totalWords += len(strings.Fields(bullet))
		}
		avg := float64(totalWords) / float64(len(bullets))
		bulletScore = rangeScore(avg, bulletWordsMin, bulletWordsMax)
	}

	summaryScore := 0.0
	if summary := strings.TrimSpace(doc.Summary); summary != "" {
		summaryScore = rangeScore(float64(len(summary)), summaryCharsMin, summaryCharsMax)
	}

	return clampScore(int(math.Round((bulletScore + summaryScore) / 2)))
}

// completenessChecks lists the binary presence checks, photo deliberately
// excluded: photos are an ATS risk factor handled elsewhere and must not
// move the score either way.
func completenessChecks(doc *resume.Document) []bool {
	return []bool{
		strings.TrimSpace(doc.PersonalInfo.Name) != "",
		strings.TrimSpace(doc.PersonalInfo.Title) != "",
		strings.TrimSpace(doc.PersonalInfo.Email) != "",
		strings.TrimSpace(doc.PersonalInfo.Phone) != "",
		strings.TrimSpace(doc.PersonalInfo.Location) != "",
		len(doc.PersonalInfo.Links) > 0,
		strings.TrimSpace(doc.Summary) != "",
		len(doc.SkillTerms()) > 0,
		len(doc.Experience) > 0,
		len(doc.Bullets()) > 0,
		len(doc.Education) > 0,
		len(doc.Certifications) > 0,
		len(doc.Languages) > 0,
		len(doc.Projects) > 0,
	}
}

// AnalyzeCompleteness scores the percentage of checked fields present.
func AnalyzeCompleteness(doc *resume.Document) int {
	checks := completenessChecks(doc)
	present := 0
	for _, ok := range checks {
		if ok {
			present++
		}
	}
	return roundRatio(present, len(checks))
}

// IsQuantified reports whether a bullet contains a numeral or percent sign.
func IsQuantified(bullet string) bool {
	return strings.ContainsAny(bullet, "0123456789%")
}

// HasStrongOpener reports whether a bullet begins with a recognized action
// verb.
func HasStrongOpener(bullet string) bool {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(fields[0], ".,;:"))
	return actionVerbs[first]
}

// HasWeakOpener reports whether a bullet begins with a generic opener.
func HasWeakOpener(bullet string) bool {
	lowered := strings.ToLower(strings.TrimSpace(bullet))
	for _, opener := range weakOpeners {
		if strings.HasPrefix(lowered, opener) {
			return true
		}
	}
	return false
}

// rangeScore is 100 inside [lo,hi] and decays linearly to 0 outside.
func rangeScore(v, lo, hi float64) float64 {
	switch {
	case v >= lo && v <= hi:
		return 100
	case v < lo:
		return math.Max(0, 100*v/lo)
	default:
		return math.Max(0, 100-100*(v-hi)/hi)
	}
}

// roundRatio computes round(100*n/d), resolving a zero denominator to 0 so
// no NaN ever reaches the composite.
func roundRatio(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(d)))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
