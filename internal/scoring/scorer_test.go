package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-filter-go/internal/types"
)

func newScorer(t *testing.T) *Scorer {
	t.Helper()
	s, err := NewScorer(loadCatalog(t))
	require.NoError(t, err, "创建评分器失败")
	return s
}

func TestScoreComposite(t *testing.T) {
	s := newScorer(t)

	text := `John Smith
Senior Engineer, Bangalore

6 years of professional experience with Python and AWS.
AWS Certified Solutions Architect 2024.`

	req := types.JobRequirements{
		Position:           "Backend Engineer",
		RequiredSkills:     []string{"Python", "AWS"},
		ExperienceRequired: "5-8 years",
		Location:           "Bangalore",
	}

	result := s.Score(text, req, testAsOf)

	assert.Equal(t, 1.0, result.SkillScore, "技能全命中应得满分")
	assert.Equal(t, 1.0, result.ExperienceScore, "6年处于5-8区间应得满分")
	assert.Equal(t, 1.0, result.LocationScore, "地点出现应得满分")
	assert.Equal(t, 6, result.DetectedExperienceYears)

	expected := 0.4*result.SkillScore +
		0.3*result.ExperienceScore +
		0.1*result.LocationScore +
		0.2*result.ProfessionalDevelopmentScore
	assert.InDelta(t, expected, result.FinalScore, 1e-9, "最终分应为四个维度的加权和")
	assert.Equal(t, scoringWeights, result.ScoringWeights, "结果应携带使用的权重")
	require.NotNil(t, result.ProfessionalDevelopment)
}

func TestLocationScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		location string
		want     float64
	}{
		{"地点直接出现", "based in Bangalore, India", "Bangalore", 1.0},
		{"简历提到远程", "open to remote positions", "Bangalore", 0.8},
		{"岗位是远程", "based in Pune", "Remote", 0.8},
		{"未设地点要求时平凡包含得满分", "based in Pune", "", 1.0},
		{"未设地点要求且简历为空", "", "", 1.0},
		{"完全不匹配", "based in Pune", "Bangalore", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationScore(tt.text, tt.location), "地点评分不符")
		})
	}
}

func TestAdditionalFeatures(t *testing.T) {
	s := newScorer(t)

	text := "Master of Science. AWS certified. Lead engineer and team manager."
	features := s.additionalFeatures(text)

	assert.Equal(t, 3, features.EducationLevel, "master应判为3级学历")
	assert.True(t, features.HasCertifications, "certified关键词应置标记")
	assert.GreaterOrEqual(t, features.LeadershipExperience, 2, "lead与manager都应计数")
}

func TestScoreEmptyResume(t *testing.T) {
	s := newScorer(t)

	req := types.JobRequirements{
		RequiredSkills:     []string{"Python"},
		ExperienceRequired: "3-5 years",
		Location:           "Pune",
	}
	result := s.Score("", req, testAsOf)

	assert.Zero(t, result.SkillScore)
	assert.Zero(t, result.ExperienceScore)
	assert.Zero(t, result.LocationScore)
	assert.Zero(t, result.FinalScore, "空文本各维度皆0时最终分应为0")
}
