package ats

import (
	"testing"

	"atsgrader/internal/resume"
	"atsgrader/internal/types"
)

func fullDocument() *resume.Document {
	return &resume.Document{
		PersonalInfo: resume.PersonalInfo{
			Name:     "Jordan Rivera",
			Title:    "Senior Backend Engineer",
			Email:    "jordan@example.com",
			Phone:    "+1 555 0100",
			Location: "Austin, TX",
			Links:    []string{"https://github.com/jrivera"},
		},
		Summary: "Backend engineer with nine years of experience designing and operating " +
			"distributed systems on AWS. Led migrations to Kubernetes, cut infrastructure " +
			"spend by 30%, and mentored a team of six engineers across two product lines.",
		Skills: []resume.SkillGroup{
			{Category: "Languages", Skills: []string{"Go", "Python", "SQL"}},
			{Category: "Infrastructure", Skills: []string{"AWS", "Kubernetes", "Docker", "Terraform"}},
		},
		Experience: []resume.ExperienceEntry{
			{
				Company:  "Meridian Labs",
				Position: "Senior Backend Engineer",
				Current:  true,
				Bullets: []string{
					"Architected event-driven pipeline processing 2M+ daily requests",
					"Reduced p99 latency by 40% through query and cache tuning",
					"Led migration of 12 services to Kubernetes with zero downtime",
				},
			},
		},
		Education: []resume.EducationEntry{
			{Institution: "University of Texas", Degree: "BSc", Field: "Computer Science"},
		},
		Certifications: []resume.Certification{{Name: "AWS Solutions Architect"}},
		Languages:      []resume.Language{{Name: "English", Level: "Native"}},
		Projects:       []resume.Project{{Name: "opensched", Description: "Distributed cron"}},
	}
}

// sparseDocument has only name and email filled, per the malformed-document
// handling contract.
func sparseDocument() *resume.Document {
	return &resume.Document{
		PersonalInfo: resume.PersonalInfo{
			Name:  "Jordan Rivera",
			Email: "jordan@example.com",
		},
	}
}

func TestAnalyzeStructure(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*resume.Document)
		expected int
	}{
		{
			name:     "complete document",
			mutate:   func(d *resume.Document) {},
			expected: 100,
		},
		{
			name:     "missing summary",
			mutate:   func(d *resume.Document) { d.Summary = "" },
			expected: 85,
		},
		{
			name:     "missing experience section",
			mutate:   func(d *resume.Document) { d.Experience = nil },
			expected: 85,
		},
		{
			name: "missing contact fields",
			mutate: func(d *resume.Document) {
				d.PersonalInfo.Phone = ""
				d.PersonalInfo.Location = ""
			},
			expected: 90,
		},
		{
			name: "education ordered before experience",
			mutate: func(d *resume.Document) {
				d.SectionOrder = []string{
					resume.SectionHeader,
					resume.SectionSummary,
					resume.SectionSkills,
					resume.SectionEducation,
					resume.SectionExperience,
				}
			},
			expected: 90,
		},
		{
			name: "optional sections absent do not penalize",
			mutate: func(d *resume.Document) {
				d.Certifications = nil
				d.Languages = nil
				d.Projects = nil
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fullDocument()
			tt.mutate(doc)
			if got := AnalyzeStructure(doc); got != tt.expected {
				t.Errorf("AnalyzeStructure() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestStructureOrderGuardrail(t *testing.T) {
	ordered := fullDocument()
	reordered := fullDocument()
	reordered.SectionOrder = []string{
		resume.SectionHeader,
		resume.SectionSummary,
		resume.SectionSkills,
		resume.SectionEducation,
		resume.SectionExperience,
	}

	if AnalyzeStructure(reordered) >= AnalyzeStructure(ordered) {
		t.Errorf("education-first ordering must score strictly lower: got %d vs %d",
			AnalyzeStructure(reordered), AnalyzeStructure(ordered))
	}
}

func TestAnalyzeKeywords(t *testing.T) {
	tests := []struct {
		name     string
		doc      *resume.Document
		jd       *types.JDAnalysis
		expected int
	}{
		{
			name:     "generic heuristic without job description",
			doc:      fullDocument(), // 7 distinct skills against baseline of 15
			jd:       nil,
			expected: 47,
		},
		{
			name:     "generic heuristic with no skills",
			doc:      sparseDocument(),
			jd:       nil,
			expected: 0,
		},
		{
			name: "matched keyword ratio",
			doc:  fullDocument(),
			jd: &types.JDAnalysis{
				Keywords: []types.KeywordMatch{
					{Keyword: "Go", Category: types.CategorySkill, Found: true},
					{Keyword: "AWS", Category: types.CategorySkill, Found: true},
					{Keyword: "Kafka", Category: types.CategorySkill, Found: false},
					{Keyword: "communication", Category: types.CategorySoftSkill, Found: false},
				},
				MatchedKeywords: []string{"Go", "AWS"},
				MissingKeywords: []string{"Kafka", "communication"},
			},
			expected: 50,
		},
		{
			name:     "degenerate analysis falls back to heuristic",
			doc:      fullDocument(),
			jd:       &types.JDAnalysis{},
			expected: 47,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeKeywords(tt.doc, tt.jd); got != tt.expected {
				t.Errorf("AnalyzeKeywords() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAnalyzeKeywordsCap(t *testing.T) {
	doc := &resume.Document{}
	for i := 0; i < 40; i++ {
		doc.Skills = append(doc.Skills, resume.SkillGroup{
			Category: "Misc",
			Skills:   []string{string(rune('a'+i%26)) + string(rune('0'+i/26))},
		})
	}
	if got := AnalyzeKeywords(doc, nil); got != 100 {
		t.Errorf("generic keyword score should cap at 100, got %d", got)
	}
}

func TestAnalyzeContent(t *testing.T) {
	tests := []struct {
		name     string
		bullets  []string
		expected int
	}{
		{
			name:     "no bullets scores zero",
			bullets:  nil,
			expected: 0,
		},
		{
			name:     "quantified strong bullet",
			bullets:  []string{"Architected scalable backend systems processing 2M+ daily requests"},
			expected: 100,
		},
		{
			name:     "weak unquantified bullet",
			bullets:  []string{"Worked on backend systems"},
			expected: 0,
		},
		{
			name:     "strong verb without numbers",
			bullets:  []string{"Led the platform reliability initiative"},
			expected: 45,
		},
		{
			name:     "quantified without strong verb",
			bullets:  []string{"Handled 300 support tickets per month"},
			expected: 55,
		},
		{
			name: "mixed bullets",
			bullets: []string{
				"Architected scalable backend systems processing 2M+ daily requests",
				"Worked on backend systems",
			},
			expected: 40, // (55+45)/2 - 20/2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &resume.Document{
				Experience: []resume.ExperienceEntry{
					{Company: "Acme", Position: "Engineer", Bullets: tt.bullets},
				},
			}
			if got := AnalyzeContent(doc); got != tt.expected {
				t.Errorf("AnalyzeContent() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestContentMonotonicity(t *testing.T) {
	empty := &resume.Document{
		Experience: []resume.ExperienceEntry{{Company: "Acme", Position: "Engineer"}},
	}
	improved := &resume.Document{
		Experience: []resume.ExperienceEntry{{
			Company:  "Acme",
			Position: "Engineer",
			Bullets:  []string{"Architected scalable backend systems processing 2M+ daily requests"},
		}},
	}

	before := AnalyzeContent(empty)
	after := AnalyzeContent(improved)
	if after <= before {
		t.Errorf("adding a quantified strong-verb bullet must strictly increase content score: %d -> %d", before, after)
	}
}

func TestWeakBulletScoresLowerThanStrong(t *testing.T) {
	weak := &resume.Document{
		Experience: []resume.ExperienceEntry{{
			Company: "Acme", Position: "Engineer",
			Bullets: []string{"Worked on backend systems"},
		}},
	}
	strong := &resume.Document{
		Experience: []resume.ExperienceEntry{{
			Company: "Acme", Position: "Engineer",
			Bullets: []string{"Architected scalable backend systems processing 2M+ daily requests"},
		}},
	}

	if AnalyzeContent(strong) <= AnalyzeContent(weak) {
		t.Errorf("quantified action-led bullet must outscore a weak one: strong=%d weak=%d",
			AnalyzeContent(strong), AnalyzeContent(weak))
	}
}

func TestAnalyzeReadability(t *testing.T) {
	summaryOnTarget := "Backend engineer with nine years of experience designing and operating " +
		"distributed systems on AWS, leading cloud migrations and mentoring engineers across teams."

	tests := []struct {
		name     string
		doc      *resume.Document
		expected int
	}{
		{
			name:     "empty document",
			doc:      &resume.Document{},
			expected: 0,
		},
		{
			name: "bullets and summary both in range",
			doc: &resume.Document{
				Summary: summaryOnTarget,
				Experience: []resume.ExperienceEntry{{
					Bullets: []string{"Reduced p99 latency by 40% through query and cache tuning"},
				}},
			},
			expected: 100,
		},
		{
			name: "short bullets decay linearly",
			doc: &resume.Document{
				Summary: summaryOnTarget,
				Experience: []resume.ExperienceEntry{{
					Bullets: []string{"Fixed bugs daily basis"}, // 4 words, 50% of the 8-word floor
				}},
			},
			expected: 75,
		},
		{
			name: "short summary decays linearly",
			doc: &resume.Document{
				Summary: "Engineer with a decade of backend experience in cloud systems.", // 62 chars
				Experience: []resume.ExperienceEntry{{
					Bullets: []string{"Reduced p99 latency by 40% through query and cache tuning"},
				}},
			},
			expected: 71, // (100 + 62/150*100) / 2
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeReadability(tt.doc); got != tt.expected {
				t.Errorf("AnalyzeReadability() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestAnalyzeCompleteness(t *testing.T) {
	if got := AnalyzeCompleteness(fullDocument()); got != 100 {
		t.Errorf("full document completeness = %d, want 100", got)
	}

	sparse := AnalyzeCompleteness(sparseDocument())
	if sparse > 30 {
		t.Errorf("sparse document completeness = %d, want <= 30", sparse)
	}
	if sparse == 0 {
		t.Error("name and email should count toward completeness")
	}
}

func TestPhotoDoesNotAffectScores(t *testing.T) {
	withPhoto := fullDocument()
	withPhoto.PersonalInfo.Photo = "portrait.png"
	without := fullDocument()

	if AnalyzeCompleteness(withPhoto) != AnalyzeCompleteness(without) {
		t.Error("photo presence must not change the completeness score")
	}
	if AnalyzeStructure(withPhoto) != AnalyzeStructure(without) {
		t.Error("photo presence must not change the structure score")
	}
}

func TestSubScoreBounds(t *testing.T) {
	docs := map[string]*resume.Document{
		"full":   fullDocument(),
		"sparse": sparseDocument(),
		"empty":  {},
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			breakdown := ComputeBreakdown(doc, nil)
			for label, score := range map[string]int{
				"structure":    breakdown.Structure,
				"keywords":     breakdown.Keywords,
				"content":      breakdown.Content,
				"readability":  breakdown.Readability,
				"completeness": breakdown.Completeness,
			} {
				if score < 0 || score > 100 {
					t.Errorf("%s sub-score %d out of [0,100]", label, score)
				}
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	doc := fullDocument()
	for b.Loop() {
		Evaluate(doc, nil)
	}
}
