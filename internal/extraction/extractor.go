// Package extraction turns free text from resumes and job descriptions into
// structured skill, education and certification lists using an LLM. It is a
// producer for the analysis core, which only ever sees the structured result.
package extraction

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillfit/internal/llm"
	"github.com/jonathan/skillfit/internal/prompts"
	"github.com/jonathan/skillfit/internal/taxonomy"
	"github.com/jonathan/skillfit/internal/types"
)

// SourceType identifies which side of the comparison a document is on.
// Required/preferred flags are only meaningful for job descriptions.
type SourceType string

// Document sources
const (
	SourceResume         SourceType = "resume"
	SourceJobDescription SourceType = "job_description"
)

const (
	// minTextLength guards against calling the LLM on empty or junk input.
	minTextLength = 10

	// maxConcurrentCalls bounds in-flight LLM requests per extraction to
	// stay under provider rate limits.
	maxConcurrentCalls = 4

	promptFile = "extraction.json"
)

// Extractor runs LLM-backed extraction for one document at a time. Safe for
// concurrent use.
type Extractor struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewExtractor returns an Extractor using the standard model tier.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client, tier: llm.TierStandard}
}

// NewExtractorWithTier returns an Extractor pinned to a specific model tier.
func NewExtractorWithTier(client llm.Client, tier llm.ModelTier) *Extractor {
	return &Extractor{client: client, tier: tier}
}

// TechnicalSkills extracts technical skills from text. Results are
// deduplicated and restricted to technical categories.
func (e *Extractor) TechnicalSkills(ctx context.Context, text string, source SourceType) ([]types.Skill, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	payload, err := e.generate(ctx, "technical_skills", text, source)
	if err != nil {
		return nil, err
	}

	skills, err := parseSkills(payload, "skills", "technical_skills")
	if err != nil {
		return nil, err
	}

	return filterSkills(skills, taxonomy.IsTechnical), nil
}

// SoftSkills extracts soft skills and methodologies from text. Both groups
// come back from one call; the soft-skills prompt covers ways of working too.
func (e *Extractor) SoftSkills(ctx context.Context, text string, source SourceType) ([]types.Skill, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	payload, err := e.generate(ctx, "soft_skills", text, source)
	if err != nil {
		return nil, err
	}

	skills, err := parseSkills(payload, "skills", "soft_skills")
	if err != nil {
		return nil, err
	}

	return filterSkills(skills, func(c taxonomy.Category) bool {
		return taxonomy.IsSoftSkill(c) || taxonomy.IsMethodology(c)
	}), nil
}

// EducationEntries extracts education qualifications or requirements.
func (e *Extractor) EducationEntries(ctx context.Context, text string, source SourceType) ([]types.Education, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	payload, err := e.generate(ctx, "education", text, source)
	if err != nil {
		return nil, err
	}

	return parseEducation(payload, source)
}

// CertificationEntries extracts certifications held or required.
func (e *Extractor) CertificationEntries(ctx context.Context, text string, source SourceType) ([]types.Certification, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	payload, err := e.generate(ctx, "certifications", text, source)
	if err != nil {
		return nil, err
	}

	return parseCertifications(payload, source)
}

// Extract runs the four extraction calls for one document through a bounded
// pool and combines the results. The overall confidence score is the average
// of the per-skill confidences the model reported, nil when it reported none.
func (e *Extractor) Extract(ctx context.Context, text string, source SourceType) (*types.SkillExtractionResult, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	var (
		technical      []types.Skill
		soft           []types.Skill
		education      []types.Education
		certifications []types.Certification
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentCalls)

	g.Go(func() error {
		var err error
		technical, err = e.TechnicalSkills(ctx, text, source)
		return err
	})
	g.Go(func() error {
		var err error
		soft, err = e.SoftSkills(ctx, text, source)
		return err
	})
	g.Go(func() error {
		var err error
		education, err = e.EducationEntries(ctx, text, source)
		return err
	})
	g.Go(func() error {
		var err error
		certifications, err = e.CertificationEntries(ctx, text, source)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	skills := make([]types.Skill, 0, len(technical)+len(soft))
	skills = append(skills, technical...)
	skills = append(skills, soft...)

	return &types.SkillExtractionResult{
		Skills:           skills,
		Education:        education,
		Certifications:   certifications,
		ExtractionMethod: "llm",
		ConfidenceScore:  averageConfidence(skills),
		RawText:          text,
	}, nil
}

// ExtractPair extracts both documents of a comparison concurrently.
func (e *Extractor) ExtractPair(ctx context.Context, resumeText, jdText string) (resume, jd *types.SkillExtractionResult, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		resume, err = e.Extract(ctx, resumeText, SourceResume)
		return err
	})
	g.Go(func() error {
		var err error
		jd, err = e.Extract(ctx, jdText, SourceJobDescription)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return resume, jd, nil
}

func (e *Extractor) generate(ctx context.Context, promptKey, text string, source SourceType) (string, error) {
	template := prompts.MustGet(promptFile, promptKey)
	data := map[string]string{
		"Text":       text,
		"SourceType": sourceLabel(source),
	}
	switch promptKey {
	case "technical_skills":
		data["Categories"] = categoryGuide(taxonomy.TechnicalCategories)
	case "soft_skills":
		data["Categories"] = categoryGuide(taxonomy.SoftSkillCategories, taxonomy.MethodologyCategories)
	}
	prompt := prompts.Format(template, data)

	payload, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return "", &APICallError{Message: "failed to generate " + promptKey, Cause: err}
	}

	return payload, nil
}

func checkInput(text string) error {
	if len(strings.TrimSpace(text)) < minTextLength {
		return &InputError{Message: "text is too short or empty"}
	}
	return nil
}

// categoryGuide renders one "- category: description" line per category, in
// taxonomy order, for interpolation into the extraction prompts.
func categoryGuide(groups ...[]taxonomy.Category) string {
	var b strings.Builder
	for _, group := range groups {
		for _, category := range group {
			b.WriteString("- ")
			b.WriteString(string(category))
			b.WriteString(": ")
			b.WriteString(taxonomy.Descriptions[category])
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func sourceLabel(source SourceType) string {
	if source == SourceJobDescription {
		return "job description"
	}
	return "resume"
}

func averageConfidence(skills []types.Skill) *float64 {
	sum := 0.0
	count := 0
	for _, skill := range skills {
		if skill.Confidence != nil {
			sum += *skill.Confidence
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}
