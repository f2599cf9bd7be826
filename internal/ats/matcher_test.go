package ats

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"atsgrader/internal/types"
)

const backendJD = "Looking for a Senior Backend Engineer skilled in Node.js, AWS, " +
	"and microservices, with strong communication skills"

func TestMatchJobDescriptionEmptyInput(t *testing.T) {
	tests := []struct {
		name   string
		jdText string
	}{
		{name: "empty string", jdText: ""},
		{name: "whitespace only", jdText: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := MatchJobDescription(tt.jdText, "any resume text")
			if !errors.Is(err, ErrEmptyJobDescription) {
				t.Errorf("expected ErrEmptyJobDescription, got %v", err)
			}
			if analysis != nil {
				t.Errorf("expected no analysis for empty input, got %+v", analysis)
			}
		})
	}
}

func TestMatchJobDescriptionDegenerate(t *testing.T) {
	analysis, err := MatchJobDescription("lorem ipsum dolor sit amet", "resume text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.MatchScore != 0 {
		t.Errorf("match score = %d, want 0", analysis.MatchScore)
	}
	if len(analysis.Keywords) != 0 {
		t.Errorf("expected no classified keywords, got %v", analysis.Keywords)
	}
	if len(analysis.Suggestions) != 0 {
		t.Errorf("degenerate analysis must carry no suggestions, got %v", analysis.Suggestions)
	}
}

func TestMatchJobDescriptionScenario(t *testing.T) {
	resumeText := "Backend developer building services with Node.js and AWS at scale"

	analysis, err := MatchJobDescription(backendJD, resumeText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Node.js", "AWS"} {
		if !slices.Contains(analysis.MatchedKeywords, want) {
			t.Errorf("matched keywords %v should contain %q", analysis.MatchedKeywords, want)
		}
	}
	if !slices.Contains(analysis.MissingKeywords, "microservices") {
		t.Errorf("missing keywords %v should contain microservices", analysis.MissingKeywords)
	}

	var softSkillSuggestion *types.Suggestion
	for i, s := range analysis.Suggestions {
		if strings.EqualFold(s.Keyword, "communication") {
			softSkillSuggestion = &analysis.Suggestions[i]
		}
	}
	if softSkillSuggestion == nil {
		t.Fatal("expected a suggestion for the missing communication keyword")
	}
	if softSkillSuggestion.Section != "summary" {
		t.Errorf("soft-skill suggestion targets %q, want summary", softSkillSuggestion.Section)
	}

	if analysis.MatchScore < 1 || analysis.MatchScore > 99 {
		t.Errorf("partial match score = %d, expected strictly between 0 and 100", analysis.MatchScore)
	}
}

func TestMatchJobDescriptionCategories(t *testing.T) {
	analysis, err := MatchJobDescription(
		"Bachelor degree in computer science required, Kubernetes and teamwork valued",
		"",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[string]types.KeywordCategory)
	for _, kw := range analysis.Keywords {
		got[strings.ToLower(kw.Keyword)] = kw.Category
	}

	expectations := map[string]types.KeywordCategory{
		"bachelor":         types.CategoryQualification,
		"degree":           types.CategoryQualification,
		"computer science": types.CategoryQualification,
		"kubernetes":       types.CategorySkill,
		"teamwork":         types.CategorySoftSkill,
	}
	for keyword, category := range expectations {
		if got[keyword] != category {
			t.Errorf("keyword %q classified as %q, want %q", keyword, got[keyword], category)
		}
	}
}

func TestMatchJobDescriptionSuggestionTargets(t *testing.T) {
	// Empty resume: every classified keyword is missing.
	analysis, err := MatchJobDescription(
		"Kubernetes, mentoring, bachelor degree and communication", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sections := make(map[string]string)
	for _, s := range analysis.Suggestions {
		sections[strings.ToLower(s.Keyword)] = s.Section
	}

	tests := []struct {
		keyword string
		section string
	}{
		{"kubernetes", "skills"},
		{"mentoring", "experience"},
		{"bachelor", "experience"},
		{"communication", "summary"},
	}
	for _, tt := range tests {
		if sections[tt.keyword] != tt.section {
			t.Errorf("suggestion for %q targets %q, want %q",
				tt.keyword, sections[tt.keyword], tt.section)
		}
	}

	// Concrete skills come before soft skills.
	if len(analysis.Suggestions) > 1 {
		first := analysis.Suggestions[0]
		if first.Section != "skills" {
			t.Errorf("first suggestion should target skills, got %q", first.Section)
		}
	}
}

func TestMatchJobDescriptionCaseInsensitive(t *testing.T) {
	analysis, err := MatchJobDescription("Experience with KUBERNETES and python", "We run kubernetes and Python in production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.MissingKeywords) != 0 {
		t.Errorf("all keywords should match case-insensitively, missing: %v", analysis.MissingKeywords)
	}
	if analysis.MatchScore != 100 {
		t.Errorf("match score = %d, want 100", analysis.MatchScore)
	}
}

func TestMatchJobDescriptionIdempotent(t *testing.T) {
	resumeText := "Backend developer building services with Node.js and AWS at scale"

	first, err := MatchJobDescription(backendJD, resumeText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := MatchJobDescription(backendJD, resumeText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("matcher must be idempotent for unchanged input")
	}
}

func TestMatchScoreBounds(t *testing.T) {
	jds := []string{
		backendJD,
		"nothing classifiable here whatsoever",
		"go go go go kubernetes docker terraform aws gcp azure",
	}
	for _, jd := range jds {
		analysis, err := MatchJobDescription(jd, "go kubernetes docker")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if analysis.MatchScore < 0 || analysis.MatchScore > 100 {
			t.Errorf("match score %d out of [0,100] for %q", analysis.MatchScore, jd)
		}
	}
}

func TestTokenizeKeepsTechPunctuation(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Node.js, AWS!", []string{"Node.js", "AWS"}},
		{"C++ and C# developers", []string{"C++", "and", "C#", "developers"}},
		{"CI/CD pipelines.", []string{"CI/CD", "pipelines"}},
	}

	for _, tt := range tests {
		if got := tokenize(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func BenchmarkMatchJobDescription(b *testing.B) {
	resumeText := fullDocument().FullText()
	for b.Loop() {
		_, _ = MatchJobDescription(backendJD, resumeText)
	}
}
