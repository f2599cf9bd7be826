package ats

import (
	"errors"
	"fmt"
	"strings"

	"atsgrader/internal/types"
)

// ErrEmptyJobDescription is returned when the matcher is invoked with an
// empty or whitespace-only job description. Callers distinguish "not yet
// analyzed" from "analyzed, scored zero" through this sentinel.
var ErrEmptyJobDescription = errors.New("job description is empty")

const maxPhraseLen = 3

// MatchJobDescription extracts candidate keywords from free job-description
// text, classifies them against the fixed category lexicon and tests each
// for case-insensitive presence in the resume text.
//
// A job description that yields zero classifiable keywords is a valid
// degenerate result: match score 0, empty keyword lists, no suggestions.
func MatchJobDescription(jdText, resumeText string) (*types.JDAnalysis, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, ErrEmptyJobDescription
	}

	keywords := extractKeywords(jdText)
	analysis := &types.JDAnalysis{
		Keywords:        keywords,
		MatchedKeywords: []string{},
		MissingKeywords: []string{},
		Suggestions:     []types.Suggestion{},
	}
	if len(keywords) == 0 {
		return analysis, nil
	}

	haystack := strings.ToLower(resumeText)
	for i := range keywords {
		keywords[i].Found = strings.Contains(haystack, strings.ToLower(keywords[i].Keyword))
		if keywords[i].Found {
			analysis.MatchedKeywords = append(analysis.MatchedKeywords, keywords[i].Keyword)
		} else {
			analysis.MissingKeywords = append(analysis.MissingKeywords, keywords[i].Keyword)
		}
	}

	analysis.MatchScore = roundRatio(len(analysis.MatchedKeywords), len(keywords))
	analysis.Suggestions = buildSuggestions(keywords)
	return analysis, nil
}

// extractKeywords tokenizes the text, builds 1- to 3-word phrases whose edge
// tokens are not stopwords, deduplicates them case-insensitively and keeps
// only phrases the category lexicon classifies. Original casing of the first
// occurrence is preserved for display.
func extractKeywords(text string) []types.KeywordMatch {
	tokens := tokenize(text)
	seen := make(map[string]bool)
	var keywords []types.KeywordMatch

	for n := 1; n <= maxPhraseLen; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			window := tokens[i : i+n]
			if stopwords[strings.ToLower(window[0])] || stopwords[strings.ToLower(window[n-1])] {
				continue
			}
			phrase := strings.Join(window, " ")
			key := strings.ToLower(phrase)
			if seen[key] {
				continue
			}
			category, ok := categoryLexicon[key]
			if !ok {
				continue
			}
			seen[key] = true
			keywords = append(keywords, types.KeywordMatch{
				Keyword:  phrase,
				Category: category,
			})
		}
	}
	return keywords
}

// tokenize splits text into word tokens, keeping the punctuation that is
// meaningful inside technology names (node.js, c++, c#, ci/cd) and trimming
// it from the edges.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '+', '#', '-', '/':
			return false
		}
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, ".,-/")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// suggestionSection maps a keyword category to the resume section most
// likely to absorb it.
func suggestionSection(category types.KeywordCategory) string {
	switch category {
	case types.CategorySkill:
		return "skills"
	case types.CategoryExperience, types.CategoryQualification:
		return "experience"
	default:
		return "summary"
	}
}

// categoryPrecedence orders suggestions: concrete skills first, soft skills
// last. Within a category, first-seen order is kept.
func categoryPrecedence(category types.KeywordCategory) int {
	switch category {
	case types.CategorySkill:
		return 0
	case types.CategoryExperience:
		return 1
	case types.CategoryQualification:
		return 2
	default:
		return 3
	}
}

func buildSuggestions(keywords []types.KeywordMatch) []types.Suggestion {
	suggestions := []types.Suggestion{}
	for precedence := 0; precedence <= 3; precedence++ {
		for _, kw := range keywords {
			if kw.Found || categoryPrecedence(kw.Category) != precedence {
				continue
			}
			suggestions = append(suggestions, types.Suggestion{
				Section: suggestionSection(kw.Category),
				Keyword: kw.Keyword,
				Text:    suggestionText(kw),
			})
		}
	}
	return suggestions
}

func suggestionText(kw types.KeywordMatch) string {
	switch kw.Category {
	case types.CategorySkill:
		return fmt.Sprintf("Add %q to your skills section if you have hands-on experience with it.", kw.Keyword)
	case types.CategoryExperience:
		return fmt.Sprintf("Work %q into an experience bullet that shows it in practice.", kw.Keyword)
	case types.CategoryQualification:
		return fmt.Sprintf("Mention %q in your experience or education if it applies to you.", kw.Keyword)
	default:
		return fmt.Sprintf("Reference %q in your summary to mirror the posting's language.", kw.Keyword)
	}
}
