// Package report assembles a full skill gap report: gap analysis, fit score,
// recommendations and input summaries.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillfit/internal/gap"
	"github.com/jonathan/skillfit/internal/recommend"
	"github.com/jonathan/skillfit/internal/scoring"
	"github.com/jonathan/skillfit/internal/types"
)

// Version is stamped into every generated report.
const Version = "1.0.0"

// Build runs the analysis pipeline for one resume/job pair and assembles the
// complete report. Weight overrides come in keyed "technical" and
// "soft_skills"; missing keys fall back to scoring defaults.
func Build(resumeSkills, jdSkills *types.SkillExtractionResult, weights map[string]float64) *types.SkillGapReport {
	analysis := gap.Analyze(resumeSkills, jdSkills)

	opts := scoring.DefaultOptions()
	if w, ok := weights["technical"]; ok {
		opts.TechnicalWeight = &w
	}
	if w, ok := weights["soft_skills"]; ok {
		opts.SoftSkillsWeight = &w
	}

	fitScore := scoring.CalculateFitScore(analysis, resumeSkills, jdSkills, opts)
	recommendations := recommend.Generate(analysis, fitScore.OverallScore)

	return &types.SkillGapReport{
		ReportID:              uuid.New().String(),
		ResumeSummary:         summarize(resumeSkills),
		JobDescriptionSummary: summarize(jdSkills),
		FitScore:              fitScore,
		GapAnalysis:           *analysis,
		Recommendations:       recommendations,
		GeneratedAt:           time.Now().UTC(),
		Version:               Version,
	}
}

// summarize collects counts and the distinct category set for one input.
func summarize(result *types.SkillExtractionResult) *types.SummaryStats {
	seen := make(map[string]bool, len(result.Skills))
	for _, skill := range result.Skills {
		seen[string(skill.Category)] = true
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &types.SummaryStats{
		TotalSkills:         len(result.Skills),
		TotalEducation:      len(result.Education),
		TotalCertifications: len(result.Certifications),
		SkillCategories:     categories,
	}
}
