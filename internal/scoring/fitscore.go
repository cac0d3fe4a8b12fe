// Package scoring converts a gap analysis into a weighted fit score with
// technical, soft-skill, education and certification sub-scores.
package scoring

import (
	"math"

	"github.com/jonathan/skillfit/internal/taxonomy"
	"github.com/jonathan/skillfit/internal/types"
)

// Default scoring weights
const (
	DefaultTechnicalWeight  = 0.7
	DefaultSoftSkillsWeight = 0.3
)

// Options controls an individual fit score calculation. Nil weight fields
// fall back to the defaults; both weights are re-normalized to sum to 1.0,
// so overriding only one still shifts the other's effective share.
type Options struct {
	TechnicalWeight      *float64
	SoftSkillsWeight     *float64
	IncludeEducation     bool
	IncludeCertification bool
}

// DefaultOptions returns Options with default weights and both optional
// sub-scores enabled.
func DefaultOptions() Options {
	return Options{IncludeEducation: true, IncludeCertification: true}
}

// CalculateFitScore computes the full score breakdown for a gap analysis.
// It is pure and total: zero-count denominators yield the vacuous-pass score
// of 100 rather than an error, and inapplicable education/certification
// scores stay nil.
func CalculateFitScore(
	analysis *types.GapAnalysis,
	resumeSkills, jdSkills *types.SkillExtractionResult,
	opts Options,
) types.FitScoreBreakdown {
	technicalWeight := DefaultTechnicalWeight
	if opts.TechnicalWeight != nil {
		technicalWeight = *opts.TechnicalWeight
	}
	softSkillsWeight := DefaultSoftSkillsWeight
	if opts.SoftSkillsWeight != nil {
		softSkillsWeight = *opts.SoftSkillsWeight
	}

	if total := technicalWeight + softSkillsWeight; total > 0 {
		technicalWeight /= total
		softSkillsWeight /= total
	}

	technicalScore := groupScore(analysis, jdSkills, taxonomy.IsTechnical)
	softSkillsScore := groupScore(analysis, jdSkills, taxonomy.IsSoftSkill)

	overallScore := technicalScore*technicalWeight + softSkillsScore*softSkillsWeight

	var educationScore, certificationScore *float64
	if opts.IncludeEducation {
		educationScore = calculateEducationScore(resumeSkills.Education, jdSkills.Education)
	}
	if opts.IncludeCertification {
		certificationScore = calculateCertificationScore(resumeSkills.Certifications, jdSkills.Certifications)
	}

	return types.FitScoreBreakdown{
		OverallScore:       round2(overallScore),
		TechnicalScore:     round2(technicalScore),
		SoftSkillsScore:    round2(softSkillsScore),
		EducationScore:     round2Ptr(educationScore),
		CertificationScore: round2Ptr(certificationScore),
		MatchedCount:       len(analysis.MatchedSkills),
		MissingCount:       len(analysis.MissingSkills),
		TotalJDSkills:      len(jdSkills.Skills),
		TechnicalWeight:    technicalWeight,
		SoftSkillsWeight:   softSkillsWeight,
	}
}

// groupScore computes the match percentage for one category group. A JD
// with no skills in the group is a vacuous pass: there was nothing to miss.
func groupScore(analysis *types.GapAnalysis, jdSkills *types.SkillExtractionResult, inGroup func(taxonomy.Category) bool) float64 {
	jdCount := 0
	for _, skill := range jdSkills.Skills {
		if inGroup(skill.Category) {
			jdCount++
		}
	}

	if jdCount == 0 {
		return 100.0
	}

	matchedCount := 0
	for _, match := range analysis.MatchedSkills {
		if inGroup(match.Skill.Category) {
			matchedCount++
		}
	}

	score := float64(matchedCount) / float64(jdCount) * 100.0
	return clamp(score, 0.0, 100.0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	rounded := round2(*v)
	return &rounded
}
