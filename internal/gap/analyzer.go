// Package gap analyzes the skill gap between a resume and a job description.
package gap

import (
	"github.com/jonathan/skillfit/internal/matching"
	"github.com/jonathan/skillfit/internal/taxonomy"
	"github.com/jonathan/skillfit/internal/types"
)

// Analyze reconciles the two skill lists into matched, missing and extra
// partitions with a per-category breakdown. It is pure and total: empty
// inputs yield an empty analysis, never an error.
func Analyze(resumeSkills, jdSkills *types.SkillExtractionResult) *types.GapAnalysis {
	resumeList := resumeSkills.Skills
	jdList := jdSkills.Skills

	matched := matching.FindMatches(resumeList, jdList)
	missing := matching.FindMissingSkills(resumeList, jdList)
	extra := matching.FindExtraSkills(resumeList, jdList)

	return &types.GapAnalysis{
		MatchedSkills:     matched,
		MissingSkills:     missing,
		ExtraSkills:       extra,
		CategoryBreakdown: categoryBreakdown(matched, missing, extra),
	}
}

// categoryBreakdown tallies matched/missing/extra counts per category.
// Entries appear only for categories that occur in at least one collection.
func categoryBreakdown(matched []types.SkillMatch, missing, extra []types.Skill) map[string]types.CategoryCounts {
	breakdown := make(map[string]types.CategoryCounts)

	for _, match := range matched {
		counts := breakdown[string(match.Skill.Category)]
		counts.Matched++
		breakdown[string(match.Skill.Category)] = counts
	}
	for _, skill := range missing {
		counts := breakdown[string(skill.Category)]
		counts.Missing++
		breakdown[string(skill.Category)] = counts
	}
	for _, skill := range extra {
		counts := breakdown[string(skill.Category)]
		counts.Extra++
		breakdown[string(skill.Category)] = counts
	}

	return breakdown
}

// CategorizedSkills buckets skills by scoring group.
type CategorizedSkills struct {
	Technical     []types.Skill `json:"technical"`
	SoftSkills    []types.Skill `json:"soft_skills"`
	Methodologies []types.Skill `json:"methodologies"`
	Other         []types.Skill `json:"other"`
}

// CategorizeSkills buckets skills into the fixed scoring groups: technical,
// soft skills, methodologies, and everything else.
func CategorizeSkills(skills []types.Skill) CategorizedSkills {
	categorized := CategorizedSkills{
		Technical:     make([]types.Skill, 0),
		SoftSkills:    make([]types.Skill, 0),
		Methodologies: make([]types.Skill, 0),
		Other:         make([]types.Skill, 0),
	}

	for _, skill := range skills {
		switch {
		case taxonomy.IsTechnical(skill.Category):
			categorized.Technical = append(categorized.Technical, skill)
		case taxonomy.IsSoftSkill(skill.Category):
			categorized.SoftSkills = append(categorized.SoftSkills, skill)
		case taxonomy.IsMethodology(skill.Category):
			categorized.Methodologies = append(categorized.Methodologies, skill)
		default:
			categorized.Other = append(categorized.Other, skill)
		}
	}

	return categorized
}

// MatchTypeDistribution counts matches by tier. All four tiers are present
// in the result, zero-valued when unused.
func MatchTypeDistribution(matches []types.SkillMatch) map[types.MatchType]int {
	distribution := map[types.MatchType]int{
		types.MatchExact:    0,
		types.MatchSynonym:  0,
		types.MatchFuzzy:    0,
		types.MatchCategory: 0,
	}

	for _, match := range matches {
		if _, known := distribution[match.MatchType]; known {
			distribution[match.MatchType]++
		}
	}

	return distribution
}

// CategoryStats extends the per-category counts with side totals.
type CategoryStats struct {
	Matched     int `json:"matched"`
	Missing     int `json:"missing"`
	Extra       int `json:"extra"`
	TotalResume int `json:"total_resume"`
	TotalJD     int `json:"total_jd"`
}

// CategoryStatistics derives per-category totals from a gap analysis:
// the resume side holds matched+extra skills, the JD side matched+missing.
func CategoryStatistics(analysis *types.GapAnalysis) map[string]CategoryStats {
	stats := make(map[string]CategoryStats, len(analysis.CategoryBreakdown))

	for category, counts := range analysis.CategoryBreakdown {
		stats[category] = CategoryStats{
			Matched:     counts.Matched,
			Missing:     counts.Missing,
			Extra:       counts.Extra,
			TotalResume: counts.Matched + counts.Extra,
			TotalJD:     counts.Matched + counts.Missing,
		}
	}

	return stats
}
