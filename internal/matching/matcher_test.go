package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillfit/internal/taxonomy"
	"github.com/jonathan/skillfit/internal/types"
)

func skill(name string, category taxonomy.Category) types.Skill {
	return types.Skill{Name: name, Category: category}
}

func TestMatchSkills_Exact(t *testing.T) {
	match := MatchSkills(
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("python", taxonomy.ProgrammingLanguages),
	)

	require.NotNil(t, match)
	assert.Equal(t, types.MatchExact, match.MatchType)
	assert.Equal(t, 1.0, match.Confidence)
	assert.Equal(t, "Python", match.Skill.Name)
}

func TestMatchSkills_ExactAfterNormalization(t *testing.T) {
	match := MatchSkills(
		skill("React.js", taxonomy.FrameworksLibraries),
		skill("React", taxonomy.FrameworksLibraries),
	)

	require.NotNil(t, match)
	assert.Equal(t, types.MatchExact, match.MatchType)
	assert.Equal(t, 1.0, match.Confidence)
}

func TestMatchSkills_Synonym(t *testing.T) {
	match := MatchSkills(
		skill("JS", taxonomy.ProgrammingLanguages),
		skill("JavaScript", taxonomy.ProgrammingLanguages),
	)

	require.NotNil(t, match)
	assert.Equal(t, types.MatchSynonym, match.MatchType)
	assert.Equal(t, 0.95, match.Confidence)
	// The resume-side skill is the one reported
	assert.Equal(t, "JS", match.Skill.Name)
}

func TestMatchSkills_Fuzzy(t *testing.T) {
	// "kuberntes" is one edit from "kubernetes": similarity 0.9
	match := MatchSkills(
		skill("Kuberntes", taxonomy.DevOps),
		skill("Kubernetes", taxonomy.DevOps),
	)

	require.NotNil(t, match)
	assert.Equal(t, types.MatchFuzzy, match.MatchType)
	assert.InDelta(t, 0.9*0.80, match.Confidence, 0.01)
}

func TestMatchSkills_CategoryFallback(t *testing.T) {
	// "mysql" vs "mssql": similarity 0.8, below the fuzzy threshold but
	// above the category threshold, and both are databases.
	match := MatchSkills(
		skill("MySQL", taxonomy.Databases),
		skill("MSSQL", taxonomy.Databases),
	)

	require.NotNil(t, match)
	assert.Equal(t, types.MatchCategory, match.MatchType)
	assert.InDelta(t, 0.8*0.70, match.Confidence, 0.01)
}

func TestMatchSkills_CategoryFallbackRequiresSameCategory(t *testing.T) {
	match := MatchSkills(
		skill("MySQL", taxonomy.Databases),
		skill("MSSQL", taxonomy.ToolsPlatforms),
	)

	assert.Nil(t, match)
}

func TestMatchSkills_NoMatch(t *testing.T) {
	match := MatchSkills(
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("Java", taxonomy.ProgrammingLanguages),
	)

	assert.Nil(t, match)
}

func TestFindMatches_Basic(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("JavaScript", taxonomy.ProgrammingLanguages),
	}
	jd := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("Java", taxonomy.ProgrammingLanguages),
	}

	matches := FindMatches(resume, jd)

	require.Len(t, matches, 1)
	assert.Equal(t, "Python", matches[0].Skill.Name)
	assert.Equal(t, types.MatchExact, matches[0].MatchType)
}

func TestFindMatches_ResumeSkillConsumedOnce(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
	}
	jd := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("Python", taxonomy.ProgrammingLanguages),
	}

	matches := FindMatches(resume, jd)

	// One resume skill can satisfy only one requirement
	assert.Len(t, matches, 1)
}

func TestFindMatches_TieGoesToFirstResumeSkill(t *testing.T) {
	// Both resume skills are synonyms of the requirement at 0.95
	resume := []types.Skill{
		skill("JS", taxonomy.ProgrammingLanguages),
		skill("ECMAScript", taxonomy.ProgrammingLanguages),
	}
	jd := []types.Skill{
		skill("JavaScript", taxonomy.ProgrammingLanguages),
	}

	matches := FindMatches(resume, jd)

	require.Len(t, matches, 1)
	assert.Equal(t, "JS", matches[0].Skill.Name)
}

func TestFindMatches_HigherConfidenceWinsOverOrder(t *testing.T) {
	resume := []types.Skill{
		skill("JS", taxonomy.ProgrammingLanguages),     // synonym, 0.95
		skill("Python", taxonomy.ProgrammingLanguages), // exact, 1.0
	}
	jd := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
	}

	matches := FindMatches(resume, jd)

	require.Len(t, matches, 1)
	assert.Equal(t, "Python", matches[0].Skill.Name)
	assert.Equal(t, types.MatchExact, matches[0].MatchType)
}

func TestFindMatches_JDOrderDrivesGreedyConsumption(t *testing.T) {
	// The first JD skill takes the shared resume skill even though the
	// second JD skill could also use it.
	resume := []types.Skill{
		skill("Node.js", taxonomy.FrameworksLibraries),
	}
	jd := []types.Skill{
		skill("NodeJS", taxonomy.FrameworksLibraries),
		skill("Node", taxonomy.FrameworksLibraries),
	}

	matches := FindMatches(resume, jd)

	require.Len(t, matches, 1)
	assert.Equal(t, "Node.js", matches[0].Skill.Name)
}

func TestFindMatches_EmptyInputs(t *testing.T) {
	assert.Empty(t, FindMatches(nil, nil))
	assert.Empty(t, FindMatches([]types.Skill{skill("Go", taxonomy.ProgrammingLanguages)}, nil))
	assert.Empty(t, FindMatches(nil, []types.Skill{skill("Go", taxonomy.ProgrammingLanguages)}))
}

func TestFindMatches_Deterministic(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("Go", taxonomy.ProgrammingLanguages),
		skill("Postgres", taxonomy.Databases),
	}
	jd := []types.Skill{
		skill("Golang", taxonomy.ProgrammingLanguages),
		skill("PostgreSQL", taxonomy.Databases),
		skill("Python", taxonomy.ProgrammingLanguages),
	}

	first := FindMatches(resume, jd)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FindMatches(resume, jd))
	}
}

func TestFindMissingSkills(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
	}
	jd := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("Java", taxonomy.ProgrammingLanguages),
	}

	missing := FindMissingSkills(resume, jd)

	require.Len(t, missing, 1)
	assert.Equal(t, "Java", missing[0].Name)
}

func TestFindMissingSkills_NothingMissing(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("Go", taxonomy.ProgrammingLanguages),
	}
	jd := []types.Skill{
		skill("python", taxonomy.ProgrammingLanguages),
	}

	assert.Empty(t, FindMissingSkills(resume, jd))
}

func TestFindMissingSkills_NoSkillBothMatchedAndMissing(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("JS", taxonomy.ProgrammingLanguages),
	}
	jd := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("JavaScript", taxonomy.ProgrammingLanguages),
		skill("Rust", taxonomy.ProgrammingLanguages),
	}

	matches := FindMatches(resume, jd)
	missing := FindMissingSkills(resume, jd)

	assert.Len(t, matches, 2)
	require.Len(t, missing, 1)
	assert.Equal(t, "Rust", missing[0].Name)
}

func TestFindExtraSkills(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("JavaScript", taxonomy.ProgrammingLanguages),
	}
	jd := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
	}

	extra := FindExtraSkills(resume, jd)

	require.Len(t, extra, 1)
	assert.Equal(t, "JavaScript", extra[0].Name)
}

func TestFindExtraSkills_PartitionsResume(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
		skill("Go", taxonomy.ProgrammingLanguages),
		skill("Terraform", taxonomy.DevOps),
	}
	jd := []types.Skill{
		skill("Golang", taxonomy.ProgrammingLanguages),
	}

	matches := FindMatches(resume, jd)
	extra := FindExtraSkills(resume, jd)

	require.Len(t, matches, 1)
	assert.Equal(t, "Go", matches[0].Skill.Name)
	assert.Len(t, extra, 2)
	for _, s := range extra {
		assert.NotEqual(t, "Go", s.Name)
	}
}

func TestFindExtraSkills_EmptyJD(t *testing.T) {
	resume := []types.Skill{
		skill("Python", taxonomy.ProgrammingLanguages),
	}

	extra := FindExtraSkills(resume, nil)

	assert.Len(t, extra, 1)
}
