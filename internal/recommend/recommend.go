// Package recommend turns a gap analysis and overall fit score into
// narrative advice for the candidate.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skillfit/internal/taxonomy"
	"github.com/jonathan/skillfit/internal/types"
)

// Score bands for the opening recommendation
const (
	excellentThreshold = 80.0
	goodThreshold      = 60.0
	moderateThreshold  = 40.0
)

const (
	maxTechnicalSuggestions = 5
	maxExtraHighlights      = 3
	focusCategoryThreshold  = 3
)

// Generate produces an ordered list of recommendations from a gap analysis
// and the overall fit score. The list is never empty.
func Generate(analysis *types.GapAnalysis, overallScore float64) []string {
	recommendations := []string{scoreBandMessage(overallScore)}

	if advice, ok := missingSkillsAdvice(analysis.MissingSkills); ok {
		recommendations = append(recommendations, advice...)
	}

	if len(analysis.ExtraSkills) > 0 {
		top := analysis.ExtraSkills
		if len(top) > maxExtraHighlights {
			top = top[:maxExtraHighlights]
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"💡 Highlight these additional skills in your application: %s. "+
				"These can differentiate you from other candidates.",
			joinNames(top)))
	}

	if note, ok := fuzzyMatchNote(analysis.MatchedSkills); ok {
		recommendations = append(recommendations, note)
	}

	if focus, ok := focusCategories(analysis.CategoryBreakdown); ok {
		recommendations = append(recommendations, focus)
	}

	return recommendations
}

func scoreBandMessage(overallScore float64) string {
	switch {
	case overallScore >= excellentThreshold:
		return "🎉 Excellent match! Your skills align well with the job requirements. " +
			"Focus on highlighting your strengths in your application."
	case overallScore >= goodThreshold:
		return "✅ Good match! You have a solid foundation. Consider focusing on " +
			"the missing skills below to improve your fit."
	case overallScore >= moderateThreshold:
		return "⚠️ Moderate match. You have some relevant skills, but there are " +
			"significant gaps. Consider upskilling in the areas below."
	default:
		return "❌ Low match. This role may require significant skill development. " +
			"Consider whether this is the right opportunity or if you're willing " +
			"to invest in learning the required skills."
	}
}

func missingSkillsAdvice(missing []types.Skill) ([]string, bool) {
	if len(missing) == 0 {
		return nil, false
	}

	var technical, soft, methodology []types.Skill
	for _, skill := range missing {
		switch {
		case taxonomy.IsTechnical(skill.Category):
			technical = append(technical, skill)
		case taxonomy.IsSoftSkill(skill.Category):
			soft = append(soft, skill)
		case taxonomy.IsMethodology(skill.Category):
			methodology = append(methodology, skill)
		}
	}

	var advice []string
	if len(technical) > 0 {
		if len(technical) > maxTechnicalSuggestions {
			technical = technical[:maxTechnicalSuggestions]
		}
		advice = append(advice, fmt.Sprintf(
			"📚 Prioritize learning these technical skills: %s. "+
				"Consider online courses, tutorials, or hands-on projects to build proficiency.",
			joinNames(technical)))
	}
	if len(soft) > 0 {
		advice = append(advice, fmt.Sprintf(
			"🤝 Develop these soft skills: %s. "+
				"Consider joining professional groups, taking communication courses, "+
				"or seeking mentorship opportunities.",
			joinNames(soft)))
	}
	if len(methodology) > 0 {
		advice = append(advice, fmt.Sprintf(
			"🔄 Learn these methodologies: %s. "+
				"Consider certifications or training programs to demonstrate proficiency.",
			joinNames(methodology)))
	}

	return advice, len(advice) > 0
}

// fuzzyMatchNote flags matches that relied on edit distance rather than
// exact or synonym terminology.
func fuzzyMatchNote(matched []types.SkillMatch) (string, bool) {
	fuzzyCount := 0
	for _, match := range matched {
		if match.MatchType == types.MatchFuzzy {
			fuzzyCount++
		}
	}
	if fuzzyCount == 0 {
		return "", false
	}

	return fmt.Sprintf(
		"📝 Note: %d of your skills matched with lower confidence. "+
			"Consider updating your resume to use the exact terminology from the job description "+
			"to improve keyword matching.", fuzzyCount), true
}

// focusCategories names categories with several missing skills, sorted for
// stable output.
func focusCategories(breakdown map[string]types.CategoryCounts) (string, bool) {
	var names []string
	for category, counts := range breakdown {
		if counts.Missing >= focusCategoryThreshold {
			names = append(names, category)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)

	return fmt.Sprintf(
		"🎯 Focus areas: %s. "+
			"These categories have multiple missing skills, so prioritize learning in these areas.",
		strings.Join(names, ", ")), true
}

func joinNames(skills []types.Skill) string {
	names := make([]string, len(skills))
	for i, skill := range skills {
		names[i] = skill.Name
	}
	return strings.Join(names, ", ")
}
