package resume

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{
			name: "minimal valid document",
			input: `{
				"personalInfo": {"name": "Jordan Rivera"}
			}`,
		},
		{
			name: "full document",
			input: `{
				"personalInfo": {
					"name": "Jordan Rivera",
					"email": "jordan@example.com",
					"phone": "+1 555 0100",
					"location": "Austin, TX"
				},
				"summary": "Backend engineer.",
				"skills": [{"category": "Cloud", "skills": ["AWS"]}],
				"experience": [{"company": "Meridian", "position": "Engineer", "bullets": ["Shipped it"]}],
				"education": [{"institution": "UT Austin"}],
				"sectionOrder": ["header", "summary", "skills", "experience", "education"]
			}`,
		},
		{
			name:        "missing personalInfo",
			input:       `{"summary": "text"}`,
			expectError: true,
		},
		{
			name:        "missing name",
			input:       `{"personalInfo": {"email": "a@b.c"}}`,
			expectError: true,
		},
		{
			name:        "unknown section in order",
			input:       `{"personalInfo": {"name": "J"}, "sectionOrder": ["hobbies"]}`,
			expectError: true,
		},
		{
			name:        "wrong type for skills",
			input:       `{"personalInfo": {"name": "J"}, "skills": "Go, Python"}`,
			expectError: true,
		},
		{
			name:        "not json",
			input:       `resume.pdf`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if tt.expectError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.TrimSpace(doc.PersonalInfo.Name) == "" {
				t.Error("parsed document should carry the name")
			}
		})
	}
}
