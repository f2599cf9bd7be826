package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"atsgrader/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ScoreReport", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreReport", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "JDAnalysis", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "JDAnalysis", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "ImproveTextOutput", &ImproveTextFormatter{})
	registry.RegisterFormatter("markdown", "ImproveTextOutput", &ImproveMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ScoreReport:
		return "ScoreReport"
	case types.JDAnalysis:
		return "JDAnalysis"
	case types.ImproveTextOutput:
		return "ImproveTextOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScoreTextFormatter handles text formatting for score reports
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPATIBILITY SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n", result.Score, result.Label))
	if result.Feedback != nil {
		output.WriteString(fmt.Sprintf("Change: %+d (%s)\n", result.Feedback.Delta, result.Feedback.Message))
	}
	output.WriteString("\n=== BREAKDOWN ===\n")
	output.WriteString(fmt.Sprintf("Structure:    %d/100\n", result.Breakdown.Structure))
	output.WriteString(fmt.Sprintf("Keywords:     %d/100\n", result.Breakdown.Keywords))
	output.WriteString(fmt.Sprintf("Content:      %d/100\n", result.Breakdown.Content))
	output.WriteString(fmt.Sprintf("Readability:  %d/100\n", result.Breakdown.Readability))
	output.WriteString(fmt.Sprintf("Completeness: %d/100\n", result.Breakdown.Completeness))

	if len(result.Signals) > 0 {
		output.WriteString("\n=== SECTION SIGNALS ===\n")
		for _, signal := range result.Signals {
			output.WriteString(fmt.Sprintf("[%s] %s: %s\n", signal.Status, signal.SectionID, signal.Message))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreReport"
}

// ScoreMarkdownFormatter handles markdown formatting for score reports
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ScoreReport)
	if !ok {
		return "", fmt.Errorf("expected ScoreReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compatibility Score\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", result.Score, result.Label))
	if result.Feedback != nil {
		output.WriteString(fmt.Sprintf("**Change:** %+d since last pass\n\n", result.Feedback.Delta))
	}

	output.WriteString("## Breakdown\n\n")
	output.WriteString("| Sub-score | Value |\n")
	output.WriteString("|-----------|-------|\n")
	output.WriteString(fmt.Sprintf("| Structure | %d |\n", result.Breakdown.Structure))
	output.WriteString(fmt.Sprintf("| Keywords | %d |\n", result.Breakdown.Keywords))
	output.WriteString(fmt.Sprintf("| Content | %d |\n", result.Breakdown.Content))
	output.WriteString(fmt.Sprintf("| Readability | %d |\n", result.Breakdown.Readability))
	output.WriteString(fmt.Sprintf("| Completeness | %d |\n", result.Breakdown.Completeness))
	output.WriteString("\n")

	if len(result.Signals) > 0 {
		output.WriteString("## Section Signals\n\n")
		for _, signal := range result.Signals {
			output.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", signal.SectionID, signal.Status, signal.Message))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreReport"
}

// MatchTextFormatter handles text formatting for job-description analyses
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JDAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JDAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== JOB DESCRIPTION MATCH ===\n\n")
	output.WriteString(fmt.Sprintf("Alignment: %d%%\n\n", result.MatchScore))

	if len(result.MatchedKeywords) > 0 {
		output.WriteString("Matched keywords:\n")
		for _, keyword := range result.MatchedKeywords {
			output.WriteString(fmt.Sprintf("  + %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		output.WriteString("Missing keywords:\n")
		for _, keyword := range result.MissingKeywords {
			output.WriteString(fmt.Sprintf("  - %s\n", keyword))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, suggestion.Section, suggestion.Text))
		}
	} else if len(result.Keywords) == 0 {
		output.WriteString("No classifiable keywords found in the job description.\n")
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "JDAnalysis"
}

// MatchMarkdownFormatter handles markdown formatting for job-description analyses
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.JDAnalysis)
	if !ok {
		return "", fmt.Errorf("expected JDAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Job Description Match\n\n")
	output.WriteString(fmt.Sprintf("**Alignment:** %d%%\n\n", result.MatchScore))

	if len(result.Keywords) > 0 {
		output.WriteString("## Keywords\n\n")
		output.WriteString("| Keyword | Category | Found |\n")
		output.WriteString("|---------|----------|-------|\n")
		for _, keyword := range result.Keywords {
			found := "no"
			if keyword.Found {
				found = "yes"
			}
			output.WriteString(fmt.Sprintf("| %s | %s | %s |\n", keyword.Keyword, keyword.Category, found))
		}
		output.WriteString("\n")
	} else {
		output.WriteString("No classifiable keywords found in the job description.\n")
	}

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for _, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("- **%s**: %s\n", suggestion.Section, suggestion.Text))
		}
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "JDAnalysis"
}

// ImproveTextFormatter handles text formatting for AI improvement results
type ImproveTextFormatter struct{}

func (itf *ImproveTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ImproveTextOutput)
	if !ok {
		return "", fmt.Errorf("expected ImproveTextOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== IMPROVED TEXT ===\n\n")
	output.WriteString(result.ImprovedText)
	output.WriteString("\n")

	if result.Rationale != "" {
		output.WriteString("\nRationale:\n")
		output.WriteString(result.Rationale)
		output.WriteString("\n")
	}

	if len(result.Alternatives) > 0 {
		output.WriteString("\nAlternatives:\n")
		for i, alt := range result.Alternatives {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, alt))
		}
	}

	return output.String(), nil
}

func (itf *ImproveTextFormatter) SupportedType() string {
	return "ImproveTextOutput"
}

// ImproveMarkdownFormatter handles markdown formatting for AI improvement results
type ImproveMarkdownFormatter struct{}

func (imf *ImproveMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ImproveTextOutput)
	if !ok {
		return "", fmt.Errorf("expected ImproveTextOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Improved Text\n\n")
	output.WriteString(result.ImprovedText)
	output.WriteString("\n")

	if result.Rationale != "" {
		output.WriteString("\n## Rationale\n\n")
		output.WriteString(result.Rationale)
		output.WriteString("\n")
	}

	if len(result.Alternatives) > 0 {
		output.WriteString("\n## Alternatives\n\n")
		for _, alt := range result.Alternatives {
			output.WriteString(fmt.Sprintf("- %s\n", alt))
		}
	}

	return output.String(), nil
}

func (imf *ImproveMarkdownFormatter) SupportedType() string {
	return "ImproveTextOutput"
}

// GlobalRegistry is the default formatter registry
var GlobalRegistry = NewFormatterRegistry()
