package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillfit/internal/taxonomy"
	"github.com/jonathan/skillfit/internal/types"
)

func extraction(skills ...types.Skill) *types.SkillExtractionResult {
	return &types.SkillExtractionResult{Skills: skills}
}

func TestBuild_CompleteReport(t *testing.T) {
	resume := extraction(
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Leadership", Category: taxonomy.Leadership},
	)
	jd := extraction(
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Java", Category: taxonomy.ProgrammingLanguages},
	)

	rep := Build(resume, jd, nil)

	require.NotNil(t, rep)
	assert.NotEmpty(t, rep.ReportID)
	assert.Equal(t, Version, rep.Version)
	assert.False(t, rep.GeneratedAt.IsZero())

	assert.Len(t, rep.GapAnalysis.MatchedSkills, 1)
	assert.Len(t, rep.GapAnalysis.MissingSkills, 1)
	assert.Len(t, rep.GapAnalysis.ExtraSkills, 1)

	assert.Equal(t, 1, rep.FitScore.MatchedCount)
	assert.NotEmpty(t, rep.Recommendations)
}

func TestBuild_Summaries(t *testing.T) {
	resume := &types.SkillExtractionResult{
		Skills: []types.Skill{
			{Name: "Python", Category: taxonomy.ProgrammingLanguages},
			{Name: "Go", Category: taxonomy.ProgrammingLanguages},
			{Name: "Leadership", Category: taxonomy.Leadership},
		},
		Education:      []types.Education{{Degree: "Bachelor's", Field: "Computer Science"}},
		Certifications: []types.Certification{{Name: "CKA"}},
	}
	jd := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})

	rep := Build(resume, jd, nil)

	require.NotNil(t, rep.ResumeSummary)
	assert.Equal(t, 3, rep.ResumeSummary.TotalSkills)
	assert.Equal(t, 1, rep.ResumeSummary.TotalEducation)
	assert.Equal(t, 1, rep.ResumeSummary.TotalCertifications)
	assert.Equal(t, []string{"leadership", "programming_languages"}, rep.ResumeSummary.SkillCategories)

	require.NotNil(t, rep.JobDescriptionSummary)
	assert.Equal(t, 1, rep.JobDescriptionSummary.TotalSkills)
}

func TestBuild_WeightOverrides(t *testing.T) {
	resume := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})
	jd := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})

	rep := Build(resume, jd, map[string]float64{"technical": 0.8, "soft_skills": 0.4})

	assert.InDelta(t, 0.8/1.2, rep.FitScore.TechnicalWeight, 1e-9)
	assert.InDelta(t, 0.4/1.2, rep.FitScore.SoftSkillsWeight, 1e-9)
}

func TestBuild_DistinctReportIDs(t *testing.T) {
	resume := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})
	jd := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})

	first := Build(resume, jd, nil)
	second := Build(resume, jd, nil)

	assert.NotEqual(t, first.ReportID, second.ReportID)
}
