// Package types provides type definitions for structured data used throughout the skillfit system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/skillfit/internal/taxonomy"

// Skill represents a single named competency extracted from a resume or job
// description. Values are immutable once produced by extraction; identity for
// matching purposes is derived from the normalized name, not from any id.
type Skill struct {
	Name       string            `json:"name"`
	Category   taxonomy.Category `json:"category"`
	Confidence *float64          `json:"confidence,omitempty"` // Extraction confidence, 0-1
	Aliases    []string          `json:"aliases,omitempty"`
}

// Education represents an education qualification (resume side) or
// requirement (job-description side).
type Education struct {
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	Required  bool   `json:"required"`
	Preferred bool   `json:"preferred"`
}

// Certification represents a professional certification held or required.
type Certification struct {
	Name      string `json:"name"`
	Issuer    string `json:"issuer,omitempty"`
	Required  bool   `json:"required"`
	Preferred bool   `json:"preferred"`
}

// SkillExtractionResult is the structured output of an extraction
// collaborator for one document. The analysis core is agnostic to how it was
// produced (LLM-backed or rule-based).
type SkillExtractionResult struct {
	Skills           []Skill         `json:"skills"`
	Education        []Education     `json:"education"`
	Certifications   []Certification `json:"certifications"`
	ExtractionMethod string          `json:"extraction_method,omitempty"`
	ConfidenceScore  *float64        `json:"confidence_score,omitempty"`
	RawText          string          `json:"raw_text,omitempty"`
}
