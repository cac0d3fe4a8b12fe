package extraction

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/skillfit/internal/schemas"
	"github.com/jonathan/skillfit/internal/taxonomy"
	"github.com/jonathan/skillfit/internal/types"
)

// Wire shapes for LLM responses. Kept separate from domain types so lenient
// decoding stays out of the core.
type wireSkill struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Confidence *float64 `json:"confidence"`
	Aliases    []string `json:"aliases"`
}

type wireEducation struct {
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	Required  bool   `json:"required"`
	Preferred bool   `json:"preferred"`
}

type wireCertification struct {
	Name      string `json:"name"`
	Issuer    string `json:"issuer"`
	Required  bool   `json:"required"`
	Preferred bool   `json:"preferred"`
}

// extractList pulls the JSON array out of an LLM response. Models sometimes
// return a bare array and sometimes wrap it in an object under one of a few
// plausible keys, so both shapes are accepted.
func extractList(payload string, keys ...string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(payload)

	var asArray []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &asArray); err == nil {
		return json.RawMessage(trimmed), nil
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &asObject); err != nil {
		return nil, &ParseError{Message: "response is neither a JSON array nor an object", Cause: err}
	}

	for _, key := range keys {
		if raw, ok := asObject[key]; ok {
			var inner []json.RawMessage
			if err := json.Unmarshal(raw, &inner); err != nil {
				return nil, &ParseError{Message: "value under " + key + " is not a JSON array", Cause: err}
			}
			return raw, nil
		}
	}

	// An object without any of the expected keys means nothing was extracted
	return json.RawMessage("[]"), nil
}

// parseSkills decodes a skill list response, validating it against the
// embedded schema first. Skills with unrecognized categories have a category
// inferred from the name; nameless entries are dropped.
func parseSkills(payload string, keys ...string) ([]types.Skill, error) {
	listJSON, err := extractList(payload, keys...)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.SkillListSchema, string(listJSON)); err != nil {
		return nil, &ParseError{Message: "skill list failed schema validation", Cause: err}
	}

	var wire []wireSkill
	if err := json.Unmarshal(listJSON, &wire); err != nil {
		return nil, &ParseError{Message: "failed to decode skill list", Cause: err}
	}

	skills := make([]types.Skill, 0, len(wire))
	for _, w := range wire {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			continue
		}

		category := taxonomy.Category(strings.ToLower(strings.TrimSpace(w.Category)))
		if !taxonomy.Valid(category) {
			category = inferCategory(name)
		}

		skills = append(skills, types.Skill{
			Name:       name,
			Category:   category,
			Confidence: w.Confidence,
			Aliases:    w.Aliases,
		})
	}

	return skills, nil
}

// parseEducation decodes an education list response. Required/preferred
// flags only make sense on the job-description side; resume entries are
// qualifications held, not requirements.
func parseEducation(payload string, source SourceType) ([]types.Education, error) {
	listJSON, err := extractList(payload, "education")
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.EducationListSchema, string(listJSON)); err != nil {
		return nil, &ParseError{Message: "education list failed schema validation", Cause: err}
	}

	var wire []wireEducation
	if err := json.Unmarshal(listJSON, &wire); err != nil {
		return nil, &ParseError{Message: "failed to decode education list", Cause: err}
	}

	education := make([]types.Education, 0, len(wire))
	for _, w := range wire {
		entry := types.Education{
			Degree: strings.TrimSpace(w.Degree),
			Field:  strings.TrimSpace(w.Field),
		}
		if source == SourceJobDescription {
			entry.Required = w.Required
			entry.Preferred = w.Preferred
		}
		education = append(education, entry)
	}

	return education, nil
}

// parseCertifications decodes a certification list response with the same
// source-side flag gating as parseEducation.
func parseCertifications(payload string, source SourceType) ([]types.Certification, error) {
	listJSON, err := extractList(payload, "certifications")
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.CertificationListSchema, string(listJSON)); err != nil {
		return nil, &ParseError{Message: "certification list failed schema validation", Cause: err}
	}

	var wire []wireCertification
	if err := json.Unmarshal(listJSON, &wire); err != nil {
		return nil, &ParseError{Message: "failed to decode certification list", Cause: err}
	}

	certifications := make([]types.Certification, 0, len(wire))
	for _, w := range wire {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			continue
		}

		entry := types.Certification{
			Name:   name,
			Issuer: strings.TrimSpace(w.Issuer),
		}
		if source == SourceJobDescription {
			entry.Required = w.Required
			entry.Preferred = w.Preferred
		}
		certifications = append(certifications, entry)
	}

	return certifications, nil
}

// filterSkills deduplicates by lowercased name and keeps only skills whose
// category satisfies the group predicate. Single-character names are noise.
func filterSkills(skills []types.Skill, inGroup func(taxonomy.Category) bool) []types.Skill {
	filtered := make([]types.Skill, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		if !inGroup(skill.Category) {
			continue
		}
		if len(strings.TrimSpace(skill.Name)) < 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(skill.Name))
		if seen[key] {
			continue
		}
		seen[key] = true
		filtered = append(filtered, skill)
	}

	return filtered
}
