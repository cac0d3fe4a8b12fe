package types

// MatchType identifies which tier of the matching cascade produced a
// correspondence, in decreasing confidence order.
type MatchType string

// Match tiers
const (
	MatchExact    MatchType = "exact"
	MatchSynonym  MatchType = "synonym"
	MatchFuzzy    MatchType = "fuzzy"
	MatchCategory MatchType = "category"
)

// SkillMatch records a correspondence found for one job-description skill.
// Skill references the resume-side skill, not the job-description one: gap
// reports show the candidate's own skill name for each requirement it covers.
type SkillMatch struct {
	Skill      Skill     `json:"skill"`
	MatchType  MatchType `json:"match_type"`
	Confidence float64   `json:"confidence"` // 0-1
}

// CategoryCounts holds per-category tallies for a gap analysis.
type CategoryCounts struct {
	Matched int `json:"matched"`
	Missing int `json:"missing"`
	Extra   int `json:"extra"`
}

// GapAnalysis partitions two skill lists into matched, missing and extra
// sets. Matched plus missing covers every distinct job-description skill;
// matched plus extra covers every distinct resume skill (one-to-one matching).
type GapAnalysis struct {
	MatchedSkills []SkillMatch `json:"matched_skills"`
	MissingSkills []Skill      `json:"missing_skills"` // In the JD, absent from the resume
	ExtraSkills   []Skill      `json:"extra_skills"`   // On the resume, not asked for by the JD

	CategoryBreakdown map[string]CategoryCounts `json:"category_breakdown"`
}
