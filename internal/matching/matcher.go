package matching

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/jonathan/skillfit/internal/types"
)

// Match tier confidences and similarity thresholds
const (
	exactConfidence   = 1.0
	synonymConfidence = 0.95
	fuzzyConfidence   = 0.80
	categoryConfidence = 0.70

	fuzzyThreshold    = 0.85
	categoryThreshold = 0.60
)

// levenshtein is the shared edit-distance metric. It carries only
// configuration, never per-call state, so concurrent use is safe.
var levenshtein = metrics.NewLevenshtein()

// similarity returns the Levenshtein similarity ratio of two normalized
// names, in [0, 1].
func similarity(a, b string) float64 {
	return strutil.Similarity(a, b, levenshtein)
}

// MatchSkills evaluates the four-tier cascade for one resume/JD skill pair
// and returns the best tier result, or nil when no tier succeeds. Tiers are
// tried in decreasing confidence order, so the first hit is the best one.
// The returned match references the resume-side skill.
func MatchSkills(resumeSkill, jdSkill types.Skill) *types.SkillMatch {
	resumeName := Normalize(resumeSkill.Name)
	jdName := Normalize(jdSkill.Name)

	if resumeName == jdName {
		return &types.SkillMatch{
			Skill:      resumeSkill,
			MatchType:  types.MatchExact,
			Confidence: exactConfidence,
		}
	}

	if SynonymEquivalent(resumeSkill.Name, jdSkill.Name) {
		return &types.SkillMatch{
			Skill:      resumeSkill,
			MatchType:  types.MatchSynonym,
			Confidence: synonymConfidence,
		}
	}

	sim := similarity(resumeName, jdName)
	if sim >= fuzzyThreshold {
		return &types.SkillMatch{
			Skill:      resumeSkill,
			MatchType:  types.MatchFuzzy,
			Confidence: sim * fuzzyConfidence,
		}
	}

	if resumeSkill.Category == jdSkill.Category && sim >= categoryThreshold {
		return &types.SkillMatch{
			Skill:      resumeSkill,
			MatchType:  types.MatchCategory,
			Confidence: sim * categoryConfidence,
		}
	}

	return nil
}

// FindMatches pairs job-description skills with resume skills. JD skills are
// processed in their input order; each one greedily takes the unconsumed
// resume skill with the highest cascade confidence, ties going to the
// earliest resume skill. A resume skill is consumed by at most one match.
// This is deliberately a greedy per-JD-skill pass, not an optimal bipartite
// assignment: the order-dependent behavior is the contract.
func FindMatches(resumeSkills, jdSkills []types.Skill) []types.SkillMatch {
	matches := make([]types.SkillMatch, 0, len(jdSkills))
	consumed := make(map[int]bool, len(resumeSkills))

	for _, jdSkill := range jdSkills {
		var best *types.SkillMatch
		bestIdx := -1
		bestConfidence := 0.0

		for idx, resumeSkill := range resumeSkills {
			if consumed[idx] {
				continue
			}

			match := MatchSkills(resumeSkill, jdSkill)
			if match != nil && match.Confidence > bestConfidence {
				best = match
				bestIdx = idx
				bestConfidence = match.Confidence
			}
		}

		if best != nil {
			matches = append(matches, *best)
			consumed[bestIdx] = true
		}
	}

	return matches
}

// FindMissingSkills returns the JD skills the resume does not cover. A JD
// skill is missing only if it was not selected during matching and,
// re-verified independently, no resume skill passes the cascade for it. The
// second check tolerates the asymmetry between being selected for a match
// and being matchable at all.
func FindMissingSkills(resumeSkills, jdSkills []types.Skill) []types.Skill {
	matchedNames := matchedSkillNames(resumeSkills, jdSkills)

	missing := make([]types.Skill, 0)
	for _, jdSkill := range jdSkills {
		if matchedNames[Normalize(jdSkill.Name)] {
			continue
		}
		if matchesAny(jdSkill, resumeSkills, false) {
			continue
		}
		missing = append(missing, jdSkill)
	}

	return missing
}

// FindExtraSkills returns the resume skills the JD never asked for, using
// the same independent re-verification as FindMissingSkills on the resume
// side.
func FindExtraSkills(resumeSkills, jdSkills []types.Skill) []types.Skill {
	matchedNames := matchedSkillNames(resumeSkills, jdSkills)

	extra := make([]types.Skill, 0)
	for _, resumeSkill := range resumeSkills {
		if matchedNames[Normalize(resumeSkill.Name)] {
			continue
		}
		if matchesAny(resumeSkill, jdSkills, true) {
			continue
		}
		extra = append(extra, resumeSkill)
	}

	return extra
}

// matchedSkillNames runs the matcher and collects the normalized names of
// the resume skills that were consumed (SkillMatch references the resume
// side).
func matchedSkillNames(resumeSkills, jdSkills []types.Skill) map[string]bool {
	names := make(map[string]bool)
	for _, match := range FindMatches(resumeSkills, jdSkills) {
		names[Normalize(match.Skill.Name)] = true
	}
	return names
}

// matchesAny reports whether skill passes the cascade against any candidate.
// asResume controls which side of the pair skill sits on.
func matchesAny(skill types.Skill, candidates []types.Skill, asResume bool) bool {
	for _, candidate := range candidates {
		var match *types.SkillMatch
		if asResume {
			match = MatchSkills(skill, candidate)
		} else {
			match = MatchSkills(candidate, skill)
		}
		if match != nil {
			return true
		}
	}
	return false
}
