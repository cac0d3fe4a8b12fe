package scoring

import (
	"strings"

	"github.com/jonathan/skillfit/internal/types"
)

// preferredBonus is the maximum bonus for matching preferred (non-required)
// education or certification entries on top of a satisfied requirement.
const preferredBonus = 20.0

// degreeMapping normalizes degree labels to a canonical level by substring
// containment. Order matters: entries are tried first to last and the first
// containment wins, so longer spellings precede their abbreviations.
// Hand-curated; extend by adding entries.
var degreeMapping = []struct {
	token string
	level string
}{
	{"bachelor", "bachelor"},
	{"bachelor's", "bachelor"},
	{"bs", "bachelor"},
	{"ba", "bachelor"},
	{"b.sc", "bachelor"},
	{"master", "master"},
	{"master's", "master"},
	{"ms", "master"},
	{"ma", "master"},
	{"m.sc", "master"},
	{"phd", "phd"},
	{"ph.d", "phd"},
	{"doctorate", "phd"},
	{"doctor", "phd"},
}

// calculateEducationScore scores the resume's education against the JD's
// requirements. Nil means the JD had no education entries at all: not
// applicable, which is distinct from 0 (unmet requirement) and 100 (met).
func calculateEducationScore(resumeEducation, jdEducation []types.Education) *float64 {
	if len(jdEducation) == 0 {
		return nil
	}

	var required, preferred []types.Education
	for _, edu := range jdEducation {
		if edu.Required {
			required = append(required, edu)
		}
		if edu.Preferred {
			preferred = append(preferred, edu)
		}
	}

	if len(required) > 0 {
		if len(matchEducation(resumeEducation, required)) == 0 {
			return ptr(0.0)
		}
		if len(preferred) > 0 {
			matched := matchEducation(resumeEducation, preferred)
			bonus := float64(len(matched)) / float64(len(preferred)) * preferredBonus
			return ptr(clamp(100.0+bonus, 0.0, 100.0))
		}
		return ptr(100.0)
	}

	if len(preferred) > 0 {
		matched := matchEducation(resumeEducation, preferred)
		score := float64(len(matched)) / float64(len(preferred)) * 100.0
		return ptr(clamp(score, 0.0, 100.0))
	}

	return nil
}

// matchEducation returns the JD education entries satisfied by the resume.
// A JD entry matches when some resume entry has the same normalized degree
// level and, if the JD names a field of study, the same normalized field.
func matchEducation(resumeEducation, jdEducation []types.Education) []types.Education {
	matched := make([]types.Education, 0)

	for _, jdEdu := range jdEducation {
		for _, resumeEdu := range resumeEducation {
			if jdEdu.Degree == "" || resumeEdu.Degree == "" {
				continue
			}
			if normalizeDegree(jdEdu.Degree) != normalizeDegree(resumeEdu.Degree) {
				continue
			}
			if jdEdu.Field != "" {
				if resumeEdu.Field == "" || normalizeField(jdEdu.Field) != normalizeField(resumeEdu.Field) {
					continue
				}
			}
			matched = append(matched, jdEdu)
			break
		}
	}

	return matched
}

// normalizeDegree maps a degree label to its canonical level, falling back
// to the lowercased label when no table entry applies.
func normalizeDegree(degree string) string {
	lower := strings.ToLower(strings.TrimSpace(degree))

	for _, entry := range degreeMapping {
		if strings.Contains(lower, entry.token) {
			return entry.level
		}
	}

	return lower
}

func normalizeField(field string) string {
	return strings.ToLower(strings.TrimSpace(field))
}

func ptr(v float64) *float64 {
	return &v
}
