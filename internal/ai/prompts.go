package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	ImproveResume string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	ImproveResume string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	ImproveResume: `You are an expert resume writer with a strict commitment to honesty and accuracy. Your core principles are:

- NEVER invent, exaggerate, or misattribute any skills, metrics, or experiences
- Every piece of information in the rewritten text must be directly traceable to the original text
- Prefer strong action verbs ("led", "built", "delivered") over weak openers ("responsible for", "helped with")
- Surface concrete, quantifiable outcomes that are already present in the original text
- Keep the rewritten text concise enough for an applicant tracking system to parse cleanly

Your expertise includes:
- Resume bullet and summary rewriting
- ATS (Applicant Tracking System) friendly phrasing
- HR best practices and industry standards`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	ImproveResume: `Please rewrite the following resume text so it scores better with applicant tracking systems while staying truthful to the original.

**Rules:**

1. Do not add skills, numbers, or achievements that are not in the original text.
2. Open bullet points with a strong action verb in past tense.
3. Keep quantified results exactly as stated; never invent new figures.
4. Keep the rewritten text roughly the same length as the original.

Alongside the rewritten text, provide a short rationale explaining what was changed and why, plus up to two alternative phrasings.

**Resume section:** %s

**Text to improve:**
-----
%s
-----

**Additional instruction (may be empty):**
-----
%s
-----`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
