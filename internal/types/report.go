package types

import "time"

// FitScoreBreakdown holds the weighted fit score and its sub-scores.
// EducationScore and CertificationScore are nil when the job description has
// no corresponding requirements: absence means "not applicable", which is
// distinct from both 0 (failed requirement) and 100 (perfect match).
type FitScoreBreakdown struct {
	OverallScore       float64  `json:"overall_score"`    // 0-100
	TechnicalScore     float64  `json:"technical_score"`  // 0-100
	SoftSkillsScore    float64  `json:"soft_skills_score"` // 0-100
	EducationScore     *float64 `json:"education_score,omitempty"`
	CertificationScore *float64 `json:"certification_score,omitempty"`

	MatchedCount  int `json:"matched_count"`
	MissingCount  int `json:"missing_count"`
	TotalJDSkills int `json:"total_jd_skills"`

	// Weights actually applied, re-normalized to sum to 1.0
	TechnicalWeight  float64 `json:"technical_weight"`
	SoftSkillsWeight float64 `json:"soft_skills_weight"`
}

// SummaryStats summarizes one input skill set for reporting.
type SummaryStats struct {
	TotalSkills         int      `json:"total_skills"`
	TotalEducation      int      `json:"total_education"`
	TotalCertifications int      `json:"total_certifications"`
	SkillCategories     []string `json:"skill_categories"`
}

// SkillGapReport is the complete analysis output for one resume/job pair.
type SkillGapReport struct {
	ReportID string `json:"report_id,omitempty"`

	ResumeSummary         *SummaryStats `json:"resume_summary,omitempty"`
	JobDescriptionSummary *SummaryStats `json:"job_description_summary,omitempty"`

	FitScore    FitScoreBreakdown `json:"fit_score"`
	GapAnalysis GapAnalysis       `json:"gap_analysis"`

	Recommendations []string `json:"recommendations"`

	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
}
