// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/skillfit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs a human-readable summary of one extraction result.
func (p *Printer) PrintExtraction(label string, result *types.SkillExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:          %d\n", len(result.Skills)))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", len(result.Education)))
	sb.WriteString(fmt.Sprintf("Certifications:  %d\n", len(result.Certifications)))
	if result.ConfidenceScore != nil {
		sb.WriteString(fmt.Sprintf("Confidence:      %.2f\n", *result.ConfidenceScore))
	}

	if len(result.Skills) > 0 {
		sb.WriteString("\n")
		count := min(len(result.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := result.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", skill.Name, skill.Category))
		}
		if len(result.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Skills)-maxItemsToShow))
		}
	}

	p.printBox(strings.ToUpper(label)+" EXTRACTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFitScore outputs the weighted fit score and its sub-scores.
func (p *Printer) PrintFitScore(score *types.FitScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:         %.1f / 100\n\n", score.OverallScore))
	sb.WriteString(fmt.Sprintf("Technical:       %.1f (weight %.2f)\n", score.TechnicalScore, score.TechnicalWeight))
	sb.WriteString(fmt.Sprintf("Soft skills:     %.1f (weight %.2f)\n", score.SoftSkillsScore, score.SoftSkillsWeight))
	if score.EducationScore != nil {
		sb.WriteString(fmt.Sprintf("Education:       %.1f\n", *score.EducationScore))
	}
	if score.CertificationScore != nil {
		sb.WriteString(fmt.Sprintf("Certifications:  %.1f\n", *score.CertificationScore))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched %d of %d required skills", score.MatchedCount, score.TotalJDSkills))

	p.printBox("FIT SCORE", sb.String())
}

// PrintGapAnalysis outputs the matched, missing and extra skill sets.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	if len(analysis.MatchedSkills) > 0 {
		sb.WriteString("Matched:\n")
		count := min(len(analysis.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := analysis.MatchedSkills[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s (%s, %.2f)\n", m.Skill.Name, m.MatchType, m.Confidence))
		}
		if len(analysis.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MatchedSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.MissingSkills) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(analysis.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", analysis.MissingSkills[i].Name))
		}
		if len(analysis.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MissingSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.ExtraSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Extra skills on resume: %d\n", len(analysis.ExtraSkills)))
	}

	if len(analysis.CategoryBreakdown) > 0 {
		categories := make([]string, 0, len(analysis.CategoryBreakdown))
		for category := range analysis.CategoryBreakdown {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		sb.WriteString("\nBy category:\n")
		for _, category := range categories {
			counts := analysis.CategoryBreakdown[category]
			sb.WriteString(fmt.Sprintf("  %s: %d matched, %d missing\n", category, counts.Matched, counts.Missing))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("No skills on either side")
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the generated recommendation list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO RECOMMENDATIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, rec := range recommendations {
		sb.WriteString(rec)
		sb.WriteString("\n")
		if i < len(recommendations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the complete report, section by section.
func (p *Printer) PrintReport(report *types.SkillGapReport) {
	if report == nil {
		return
	}
	p.PrintGapAnalysis(&report.GapAnalysis)
	p.PrintFitScore(&report.FitScore)
	p.PrintRecommendations(report.Recommendations)
}
