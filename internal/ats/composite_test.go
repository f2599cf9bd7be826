package ats

import (
	"reflect"
	"testing"

	"atsgrader/internal/types"
)

func TestWeightsSumToHundred(t *testing.T) {
	sum := WeightStructure + WeightKeywords + WeightContent + WeightReadability + WeightCompleteness
	if sum != 100 {
		t.Fatalf("composite weights sum to %d, want 100", sum)
	}
}

func TestComposite(t *testing.T) {
	tests := []struct {
		name      string
		breakdown types.ScoreBreakdown
		expected  int
	}{
		{
			name:      "all zero",
			breakdown: types.ScoreBreakdown{},
			expected:  0,
		},
		{
			name: "all hundred",
			breakdown: types.ScoreBreakdown{
				Structure: 100, Keywords: 100, Content: 100, Readability: 100, Completeness: 100,
			},
			expected: 100,
		},
		{
			name: "uniform fifty",
			breakdown: types.ScoreBreakdown{
				Structure: 50, Keywords: 50, Content: 50, Readability: 50, Completeness: 50,
			},
			expected: 50,
		},
		{
			name: "rounding",
			breakdown: types.ScoreBreakdown{
				Structure: 30, Keywords: 0, Content: 0, Readability: 0, Completeness: 14,
			},
			expected: 9, // 7.5 + 1.4 rounds up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Composite(tt.breakdown); got != tt.expected {
				t.Errorf("Composite() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// Changing only the keywords sub-score must move the composite by exactly
// the keyword weight share.
func TestWeightConservation(t *testing.T) {
	base := types.ScoreBreakdown{
		Structure: 60, Keywords: 40, Content: 60, Readability: 60, Completeness: 60,
	}
	bumped := base
	bumped.Keywords += 20

	delta := Composite(bumped) - Composite(base)
	if delta != 6 { // 0.30 * 20
		t.Errorf("composite delta = %d, want 6", delta)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "A+"}, {90, "A+"},
		{89, "A"}, {80, "A"},
		{79, "B+"}, {70, "B+"},
		{69, "B"}, {60, "B"},
		{59, "C"}, {0, "C"},
	}

	for _, tt := range tests {
		if got := Label(tt.score); got != tt.expected {
			t.Errorf("Label(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestEvaluateDeterminism(t *testing.T) {
	doc := fullDocument()
	first := Evaluate(doc, nil)
	second := Evaluate(doc, nil)

	if !reflect.DeepEqual(first, second) {
		t.Error("Evaluate must be deterministic for identical input")
	}
}

func TestEvaluateNeverMutatesDocument(t *testing.T) {
	doc := fullDocument()
	snapshot := *doc
	Evaluate(doc, nil)

	if !reflect.DeepEqual(*doc, snapshot) {
		t.Error("Evaluate must not mutate the document snapshot")
	}
}

// A nearly empty resume must land in C territory.
func TestSparseDocumentScenario(t *testing.T) {
	report := Evaluate(sparseDocument(), nil)

	if report.Breakdown.Content != 0 {
		t.Errorf("content = %d, want 0", report.Breakdown.Content)
	}
	if report.Breakdown.Completeness > 30 {
		t.Errorf("completeness = %d, want <= 30", report.Breakdown.Completeness)
	}
	if report.Score > 25 {
		t.Errorf("composite = %d, want <= 25", report.Score)
	}
	if report.Label != "C" {
		t.Errorf("label = %q, want C", report.Label)
	}
}

func TestScoreTracker(t *testing.T) {
	var tracker ScoreTracker

	if fb := tracker.Observe(70); fb != nil {
		t.Errorf("first observation must produce no feedback, got %+v", fb)
	}
	if fb := tracker.Observe(70); fb != nil {
		t.Errorf("unchanged score must produce no feedback, got %+v", fb)
	}

	fb := tracker.Observe(73)
	if fb == nil || fb.Delta != 3 {
		t.Fatalf("expected +3 feedback, got %+v", fb)
	}
	if fb.Message == "" {
		t.Error("feedback message must not be empty")
	}

	fb = tracker.Observe(71)
	if fb == nil || fb.Delta != -2 {
		t.Fatalf("expected -2 feedback, got %+v", fb)
	}
}

func TestSignalsCoverEvaluatedSections(t *testing.T) {
	report := Evaluate(fullDocument(), nil)

	seen := make(map[string]types.SignalStatus)
	for _, signal := range report.Signals {
		if signal.Message == "" {
			t.Errorf("signal %s has empty message", signal.SectionID)
		}
		seen[signal.SectionID] = signal.Status
	}

	for _, section := range []string{"header", "summary", "skills", "experience", "education"} {
		if _, ok := seen[section]; !ok {
			t.Errorf("missing signal for section %s", section)
		}
	}

	if seen["header"] != types.StatusStrong {
		t.Errorf("complete header should be strong, got %s", seen["header"])
	}
}

func TestSignalsFlagSparseDocument(t *testing.T) {
	report := Evaluate(sparseDocument(), nil)

	statuses := make(map[string]types.SignalStatus)
	for _, signal := range report.Signals {
		statuses[signal.SectionID] = signal.Status
	}

	for _, section := range []string{"summary", "skills", "experience", "education"} {
		if statuses[section] != types.StatusRisk {
			t.Errorf("section %s should be at risk on a sparse document, got %s",
				section, statuses[section])
		}
	}
}
