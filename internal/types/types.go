package types

import "time"

// KeywordCategory classifies a job-description keyword. Phrases that do not
// map to one of these categories are dropped during extraction, never
// defaulted.
type KeywordCategory string

const (
	CategorySkill         KeywordCategory = "skill"
	CategoryExperience    KeywordCategory = "experience"
	CategoryQualification KeywordCategory = "qualification"
	CategorySoftSkill     KeywordCategory = "soft-skill"
)

// SignalStatus is the qualitative status attached to a section signal.
type SignalStatus string

const (
	StatusStrong           SignalStatus = "strong"
	StatusNeedsImprovement SignalStatus = "needs-improvement"
	StatusRisk             SignalStatus = "risk"
)

// ScoreBreakdown holds the five sub-scores, each in [0,100].
type ScoreBreakdown struct {
	Structure    int `json:"structure"`
	Keywords     int `json:"keywords"`
	Content      int `json:"content"`
	Readability  int `json:"readability"`
	Completeness int `json:"completeness"`
}

// SectionSignal carries per-section feedback for presentation. Signals are
// regenerated on every scoring pass and never persisted.
type SectionSignal struct {
	SectionID string       `json:"sectionId"`
	Status    SignalStatus `json:"status"`
	Message   string       `json:"message"`
}

// ScoreFeedback describes the change since the previous scoring pass of the
// same document lineage. It is ephemeral and superseded by the next pass.
type ScoreFeedback struct {
	Message   string    `json:"message"`
	Delta     int       `json:"delta"`
	Timestamp time.Time `json:"timestamp"`
}

// ScoreReport is the full output of one scoring pass.
type ScoreReport struct {
	Score     int             `json:"score"`
	Label     string          `json:"label"`
	Breakdown ScoreBreakdown  `json:"breakdown"`
	Signals   []SectionSignal `json:"sectionSignals"`
	Feedback  *ScoreFeedback  `json:"feedback,omitempty"`
}

// KeywordMatch records whether a classified job-description keyword appears
// in the resume text.
type KeywordMatch struct {
	Keyword  string          `json:"keyword"`
	Category KeywordCategory `json:"category"`
	Found    bool            `json:"found"`
}

// Suggestion proposes where a missing keyword could be worked into the resume.
type Suggestion struct {
	Section string `json:"section"`
	Keyword string `json:"keyword"`
	Text    string `json:"suggestion"`
}

// JDAnalysis is the result of matching a job description against a resume.
// A fresh value is produced per matcher invocation.
type JDAnalysis struct {
	MatchScore      int            `json:"matchScore"`
	Keywords        []KeywordMatch `json:"keywords"`
	MatchedKeywords []string       `json:"matchedKeywords"`
	MissingKeywords []string       `json:"missingKeywords"`
	Suggestions     []Suggestion   `json:"suggestions"`
}

// ImproveTextInput represents the input for an AI text improvement request
type ImproveTextInput struct {
	Text        string `json:"text"`
	Section     string `json:"section"`
	Instruction string `json:"instruction,omitempty"`
}

// ImproveTextOutput represents the output from an AI text improvement request
type ImproveTextOutput struct {
	ImprovedText string   `json:"improvedText"`
	Rationale    string   `json:"rationale,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}
