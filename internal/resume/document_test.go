package resume

import (
	"reflect"
	"strings"
	"testing"
)

func TestSkillTermsDeduplication(t *testing.T) {
	doc := &Document{
		Skills: []SkillGroup{
			{Category: "Languages", Skills: []string{"Go", "Python", "go"}},
			{Category: "Cloud", Skills: []string{"AWS", "  ", "Python"}},
		},
	}

	got := doc.SkillTerms()
	expected := []string{"Go", "Python", "AWS"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("SkillTerms() = %v, want %v", got, expected)
	}
}

func TestBulletsPreserveDocumentOrder(t *testing.T) {
	doc := &Document{
		Experience: []ExperienceEntry{
			{Company: "First", Bullets: []string{"one", "two"}},
			{Company: "Second", Bullets: []string{"three"}},
		},
	}

	got := doc.Bullets()
	expected := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Bullets() = %v, want %v", got, expected)
	}
}

func TestOrderDefaults(t *testing.T) {
	doc := &Document{}
	if !reflect.DeepEqual(doc.Order(), DefaultSectionOrder()) {
		t.Error("empty section order should fall back to the default")
	}

	custom := []string{SectionHeader, SectionExperience, SectionEducation}
	doc.SectionOrder = custom
	if !reflect.DeepEqual(doc.Order(), custom) {
		t.Error("explicit section order should be returned as-is")
	}
}

func TestFullTextIncludesAllSections(t *testing.T) {
	doc := &Document{
		PersonalInfo: PersonalInfo{Name: "Jordan Rivera", Email: "jordan@example.com", Photo: "portrait.png"},
		Summary:      "Backend engineer",
		Skills:       []SkillGroup{{Category: "Cloud", Skills: []string{"AWS"}}},
		Experience: []ExperienceEntry{
			{Company: "Meridian Labs", Position: "Engineer", Bullets: []string{"Shipped the billing service"}},
		},
		Education:      []EducationEntry{{Institution: "University of Texas"}},
		Certifications: []Certification{{Name: "CKA"}},
		Languages:      []Language{{Name: "Spanish"}},
		Projects:       []Project{{Name: "opensched", Description: "Distributed cron"}},
	}

	text := doc.FullText()
	for _, want := range []string{
		"Jordan Rivera", "Backend engineer", "AWS", "Meridian Labs",
		"Shipped the billing service", "University of Texas", "CKA",
		"Spanish", "opensched",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("FullText() missing %q", want)
		}
	}

	if strings.Contains(text, "portrait.png") {
		t.Error("FullText() must not include photo content")
	}
}
