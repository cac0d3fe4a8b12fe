package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skillfit/internal/types"
)

func TestPrintExtraction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	confidence := 0.9
	result := &types.SkillExtractionResult{
		Skills: []types.Skill{
			{Name: "Go", Category: "programming_languages"},
			{Name: "Kubernetes", Category: "devops"},
		},
		Education:       []types.Education{{Degree: "Bachelor"}},
		ConfidenceScore: &confidence,
	}

	p.PrintExtraction("resume", result)
	output := buf.String()

	assert.Contains(t, output, "RESUME EXTRACTION")
	assert.Contains(t, output, "Skills:          2")
	assert.Contains(t, output, "Education:       1")
	assert.Contains(t, output, "Confidence:      0.90")
	assert.Contains(t, output, "Go (programming_languages)")
}

func TestPrintExtraction_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExtraction("resume", nil)

	assert.Empty(t, buf.String())
}

func TestPrintExtraction_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := []types.Skill{
		{Name: "Go"}, {Name: "Rust"}, {Name: "Python"},
		{Name: "Java"}, {Name: "Kotlin"}, {Name: "Scala"}, {Name: "Elixir"},
	}
	p.PrintExtraction("resume", &types.SkillExtractionResult{Skills: skills})
	output := buf.String()

	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "Scala")
}

func TestPrintFitScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	eduScore := 100.0
	score := &types.FitScoreBreakdown{
		OverallScore:     72.5,
		TechnicalScore:   70.0,
		SoftSkillsScore:  80.0,
		EducationScore:   &eduScore,
		MatchedCount:     7,
		TotalJDSkills:    10,
		TechnicalWeight:  0.7,
		SoftSkillsWeight: 0.3,
	}

	p.PrintFitScore(score)
	output := buf.String()

	assert.Contains(t, output, "FIT SCORE")
	assert.Contains(t, output, "72.5 / 100")
	assert.Contains(t, output, "weight 0.70")
	assert.Contains(t, output, "Education:       100.0")
	assert.Contains(t, output, "Matched 7 of 10 required skills")
	assert.NotContains(t, output, "Certifications:")
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.GapAnalysis{
		MatchedSkills: []types.SkillMatch{
			{Skill: types.Skill{Name: "Go"}, MatchType: types.MatchExact, Confidence: 1.0},
		},
		MissingSkills: []types.Skill{{Name: "Kafka"}},
		ExtraSkills:   []types.Skill{{Name: "Rust"}, {Name: "Zig"}},
		CategoryBreakdown: map[string]types.CategoryCounts{
			"programming_languages": {Matched: 1, Missing: 0},
			"messaging":             {Matched: 0, Missing: 1},
		},
	}

	p.PrintGapAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "GAP ANALYSIS")
	assert.Contains(t, output, "✓ Go (exact, 1.00)")
	assert.Contains(t, output, "✗ Kafka")
	assert.Contains(t, output, "Extra skills on resume: 2")
	assert.Contains(t, output, "messaging: 0 matched, 1 missing")
	// Category lines are sorted
	assert.Less(t,
		strings.Index(output, "messaging:"),
		strings.Index(output, "programming_languages:"))
}

func TestPrintGapAnalysis_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGapAnalysis(&types.GapAnalysis{})

	assert.Contains(t, buf.String(), "No skills on either side")
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]string{"Learn Kafka", "Highlight Rust"})
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDATIONS")
	assert.Contains(t, output, "Learn Kafka")
	assert.Contains(t, output, "Highlight Rust")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)

	assert.Contains(t, buf.String(), "NO RECOMMENDATIONS")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.SkillGapReport{
		FitScore:        types.FitScoreBreakdown{OverallScore: 50.0},
		Recommendations: []string{"Do the thing"},
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "FIT SCORE")
	assert.Contains(t, output, "RECOMMENDATIONS")
}
