package ats

import "atsgrader/internal/types"

// actionVerbs are the recognized strong openers for experience bullets,
// matched case-insensitively against the first word.
var actionVerbs = map[string]bool{
	"accelerated":  true,
	"achieved":     true,
	"architected":  true,
	"automated":    true,
	"built":        true,
	"created":      true,
	"delivered":    true,
	"designed":     true,
	"developed":    true,
	"directed":     true,
	"drove":        true,
	"engineered":   true,
	"established":  true,
	"expanded":     true,
	"implemented":  true,
	"improved":     true,
	"increased":    true,
	"launched":     true,
	"led":          true,
	"managed":      true,
	"migrated":     true,
	"optimized":    true,
	"orchestrated": true,
	"owned":        true,
	"pioneered":    true,
	"reduced":      true,
	"redesigned":   true,
	"scaled":       true,
	"shipped":      true,
	"spearheaded":  true,
	"streamlined":  true,
	"transformed":  true,
}

// weakOpeners are generic bullet openings that ATS reviewers flag, matched
// as a case-insensitive prefix.
var weakOpeners = []string{
	"worked on",
	"responsible for",
	"helped with",
	"helped to",
	"assisted with",
	"involved in",
	"participated in",
	"tasked with",
	"duties included",
	"was part of",
}

// stopwords filter job-description tokens before phrase extraction.
var stopwords = map[string]bool{
	"a": true, "about": true, "an": true, "and": true, "are": true,
	"as": true, "at": true, "be": true, "but": true, "by": true,
	"candidate": true, "for": true, "from": true, "has": true, "have": true,
	"ideal": true, "in": true, "is": true, "it": true, "job": true,
	"join": true, "looking": true, "of": true, "on": true, "or": true,
	"our": true, "plus": true, "role": true, "seeking": true, "should": true,
	"skilled": true, "team": true, "that": true, "the": true, "their": true,
	"this": true, "to": true, "we": true, "who": true, "will": true,
	"with": true, "work": true, "you": true, "your": true,
}

// categoryLexicon maps normalized phrases (lowercase, space-joined) to their
// keyword category. Phrases absent from this table are dropped during
// extraction rather than defaulted to a category.
var categoryLexicon = map[string]types.KeywordCategory{
	// Technical skills and tooling.
	"angular": types.CategorySkill, "ansible": types.CategorySkill,
	"aws": types.CategorySkill, "azure": types.CategorySkill,
	"backend": types.CategorySkill, "c++": types.CategorySkill,
	"c#": types.CategorySkill, "ci/cd": types.CategorySkill,
	"data analysis": types.CategorySkill, "django": types.CategorySkill,
	"docker": types.CategorySkill, "elasticsearch": types.CategorySkill,
	"frontend": types.CategorySkill, "gcp": types.CategorySkill,
	"git": types.CategorySkill, "go": types.CategorySkill,
	"golang": types.CategorySkill, "graphql": types.CategorySkill,
	"grpc": types.CategorySkill, "java": types.CategorySkill,
	"javascript": types.CategorySkill, "jenkins": types.CategorySkill,
	"kafka": types.CategorySkill, "kubernetes": types.CategorySkill,
	"linux": types.CategorySkill, "machine learning": types.CategorySkill,
	"microservices": types.CategorySkill, "mongodb": types.CategorySkill,
	"mysql": types.CategorySkill, "node.js": types.CategorySkill,
	"nodejs": types.CategorySkill, "postgresql": types.CategorySkill,
	"python": types.CategorySkill, "rabbitmq": types.CategorySkill,
	"react": types.CategorySkill, "redis": types.CategorySkill,
	"rest": types.CategorySkill, "ruby": types.CategorySkill,
	"rust": types.CategorySkill, "spring": types.CategorySkill,
	"sql": types.CategorySkill, "terraform": types.CategorySkill,
	"typescript": types.CategorySkill, "vue": types.CategorySkill,

	// Experience-shaped requirements.
	"agile": types.CategoryExperience, "architecture": types.CategoryExperience,
	"code review": types.CategoryExperience, "distributed systems": types.CategoryExperience,
	"high availability": types.CategoryExperience, "incident response": types.CategoryExperience,
	"mentoring": types.CategoryExperience, "on-call": types.CategoryExperience,
	"performance tuning": types.CategoryExperience, "production": types.CategoryExperience,
	"project management": types.CategoryExperience, "scalability": types.CategoryExperience,
	"scrum": types.CategoryExperience, "senior": types.CategoryExperience,
	"system design": types.CategoryExperience, "team lead": types.CategoryExperience,

	// Formal qualifications.
	"bachelor": types.CategoryQualification, "certification": types.CategoryQualification,
	"certified": types.CategoryQualification, "computer science": types.CategoryQualification,
	"degree": types.CategoryQualification, "master": types.CategoryQualification,
	"phd": types.CategoryQualification,

	// Soft skills.
	"adaptability": types.CategorySoftSkill, "attention to detail": types.CategorySoftSkill,
	"collaboration": types.CategorySoftSkill, "communication": types.CategorySoftSkill,
	"critical thinking": types.CategorySoftSkill, "leadership": types.CategorySoftSkill,
	"ownership": types.CategorySoftSkill, "problem solving": types.CategorySoftSkill,
	"stakeholder management": types.CategorySoftSkill, "teamwork": types.CategorySoftSkill,
	"time management": types.CategorySoftSkill,
}
