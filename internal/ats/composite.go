package ats

import (
	"fmt"
	"math"
	"time"

	"atsgrader/internal/resume"
	"atsgrader/internal/types"
)

// Composite weights, in percent. They sum to exactly 100.
const (
	WeightStructure    = 25
	WeightKeywords     = 30
	WeightContent      = 20
	WeightReadability  = 15
	WeightCompleteness = 10
)

// ComputeBreakdown runs all five analyzers over an immutable document
// snapshot. jd may be nil when no job description has been matched yet.
func ComputeBreakdown(doc *resume.Document, jd *types.JDAnalysis) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		Structure:    AnalyzeStructure(doc),
		Keywords:     AnalyzeKeywords(doc, jd),
		Content:      AnalyzeContent(doc),
		Readability:  AnalyzeReadability(doc),
		Completeness: AnalyzeCompleteness(doc),
	}
}

// Composite folds the sub-scores into the single 0-100 score.
func Composite(b types.ScoreBreakdown) int {
	weighted := WeightStructure*b.Structure +
		WeightKeywords*b.Keywords +
		WeightContent*b.Content +
		WeightReadability*b.Readability +
		WeightCompleteness*b.Completeness
	return clampScore(int(math.Round(float64(weighted) / 100)))
}

// Label maps a composite score to its letter label. Thresholds are fixed
// constants, not configuration.
func Label(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B+"
	case score >= 60:
		return "B"
	default:
		return "C"
	}
}

// Evaluate is the full synchronous scoring pass: analyzers, composite and
// section signals. It holds no state; delta feedback is attached by the
// caller through a ScoreTracker it owns.
func Evaluate(doc *resume.Document, jd *types.JDAnalysis) types.ScoreReport {
	breakdown := ComputeBreakdown(doc, jd)
	score := Composite(breakdown)
	return types.ScoreReport{
		Score:     score,
		Label:     Label(score),
		Breakdown: breakdown,
		Signals:   Signals(doc, breakdown),
	}
}

// ScoreTracker tracks the composite score across passes of one document
// lineage. The caller owns one tracker per open document.
type ScoreTracker struct {
	last int
	seen bool
}

// Observe records a newly computed composite and returns delta feedback, or
// nil on the very first pass and whenever the score is unchanged.
func (t *ScoreTracker) Observe(score int) *types.ScoreFeedback {
	defer func() {
		t.last = score
		t.seen = true
	}()

	if !t.seen || score == t.last {
		return nil
	}

	delta := score - t.last
	message := fmt.Sprintf("ATS score up %d points", delta)
	if delta < 0 {
		message = fmt.Sprintf("ATS score down %d points", -delta)
	}
	return &types.ScoreFeedback{
		Message:   message,
		Delta:     delta,
		Timestamp: time.Now(),
	}
}
