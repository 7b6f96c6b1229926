package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevelopmentScorer(t *testing.T) *DevelopmentScorer {
	t.Helper()
	s, err := NewDevelopmentScorer(loadCatalog(t))
	require.NoError(t, err, "创建职业发展评分器失败")
	return s
}

func TestScoreCertifications(t *testing.T) {
	s := newDevelopmentScorer(t)

	text := "AWS Certified Solutions Architect (2024), CKA, Certified Scrum Master"
	result := s.ScoreCertifications(text, testAsOf)

	assert.Equal(t, 3, result.Count, "应命中3个证书模式")
	assert.Contains(t, result.Categories, "cloud")
	assert.Contains(t, result.Categories, "devops")
	assert.Contains(t, result.Categories, "agile")
	assert.Greater(t, result.Score, 0.6, "3个证书跨3类且含高价值类别，分数应较高")
	assert.Contains(t, result.YearsDetected, 2024, "证书附近的年份应被记录")
	assert.Greater(t, result.RecencyScore, 0.8, "2024年的证书相对2025应视为近期")
}

func TestScoreCertificationsNone(t *testing.T) {
	s := newDevelopmentScorer(t)

	result := s.ScoreCertifications("plain resume without any credentials", testAsOf)
	assert.Zero(t, result.Score)
	assert.Zero(t, result.Count)
	assert.Zero(t, result.RecencyScore, "无证书时时效分应为0")
}

// 时效分随年份变久单调不增
func TestRecencyScoreMonotonic(t *testing.T) {
	s := newDevelopmentScorer(t)

	prev := 2.0
	for _, year := range []int{2025, 2024, 2023, 2022, 2020, 2015} {
		text := fmt.Sprintf("aws certification %d", year)
		result := s.ScoreCertifications(text, testAsOf)
		require.NotZero(t, result.Count, "年份 %d 的证书应命中", year)
		assert.LessOrEqual(t, result.RecencyScore, prev, "年份 %d 的时效分不应高于更近的年份", year)
		prev = result.RecencyScore
	}
}

func TestScoreOnlineLearning(t *testing.T) {
	s := newDevelopmentScorer(t)

	text := "Completed 5 courses on Coursera, including a Specialization in data engineering"
	result := s.ScoreOnlineLearning(text, testAsOf)

	assert.Contains(t, result.Platforms, "coursera")
	assert.True(t, result.SpecializationMentioned, "specialization关键词应置标记")
	assert.GreaterOrEqual(t, result.CourseCountEstimate, 3, "课程指示与专项课程应计入估算")
	assert.Greater(t, result.Score, 0.5, "高级平台加课程数量加专项课程应得高分")
}

func TestScoreOnlineLearningNoPlatform(t *testing.T) {
	s := newDevelopmentScorer(t)

	// 无平台命中时即使有课程表述也不给分
	result := s.ScoreOnlineLearning("completed 3 courses internally", testAsOf)
	assert.Zero(t, result.Score, "平台未命中时不应得分")
	assert.Empty(t, result.Platforms)
}

func TestScoreConferences(t *testing.T) {
	s := newDevelopmentScorer(t)

	text := "Speaker at KubeCon 2024; attended PyCon"
	result := s.ScoreConferences(text)

	assert.NotEmpty(t, result.SpeakerEvents, "speaker at应计为演讲")
	assert.NotEmpty(t, result.MajorConferences, "kubecon/pycon应计为大会")
	assert.Greater(t, result.SpeakingScore, 0.0)
	assert.Greater(t, result.Score, result.AttendanceScore*0.3, "演讲权重应主导综合分")
}

func TestScoreContentCreation(t *testing.T) {
	s := newDevelopmentScorer(t)

	text := "Maintainer of several projects on github.com; writes a technical blog"
	result := s.ScoreContentCreation(text)

	assert.True(t, result.OpenSource)
	assert.True(t, result.Blog)
	assert.False(t, result.Video)
	assert.Greater(t, result.Score, 0.8, "开源1.0与博客0.8的均值加多样性应超过0.8")
}

func TestDevelopmentScoreComposite(t *testing.T) {
	s := newDevelopmentScorer(t)

	text := `AWS Certified Solutions Architect 2024.
Completed 4 courses on Coursera.
Speaker at KubeCon.
Maintainer on github.com, technical blog author.`

	result := s.Score(text, testAsOf)

	require.NotNil(t, result)
	assert.Greater(t, result.Score, 0.5, "四个维度全命中应得高综合分")
	assert.LessOrEqual(t, result.Score, 1.0, "综合分不得超过1.0")
	assert.NotEmpty(t, result.Level)
	assert.NotEmpty(t, result.Summary.KeyHighlights, "应生成亮点")
	assert.True(t, result.Summary.ConferenceSpeaker)
	assert.Contains(t, result.Summary.KeyHighlights, "Cloud certified professional")
}

func TestDevelopmentScoreEmptyText(t *testing.T) {
	s := newDevelopmentScorer(t)

	result := s.Score("", testAsOf)
	assert.Zero(t, result.Score, "空文本综合分应为0")
	assert.Equal(t, "Minimal - Little evidence of continuous learning", result.Level)
}

func TestDevelopmentScoreDeterministic(t *testing.T) {
	s := newDevelopmentScorer(t)

	text := "azure certified 2023, udemy courses, attended strata, stack overflow contributor"
	first := s.Score(text, testAsOf)
	for i := 0; i < 5; i++ {
		again := s.Score(text, testAsOf)
		assert.Equal(t, first, again, "相同输入应产出完全相同的结果")
	}
}

func TestDevelopmentScoreTimeInjection(t *testing.T) {
	s := newDevelopmentScorer(t)

	text := "aws certification 2020"
	recent := s.Score(text, time.Date(2020, 12, 1, 0, 0, 0, 0, time.UTC))
	stale := s.Score(text, time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC))

	assert.Greater(t, recent.Score, stale.Score, "同一文本在更晚的基准时间下时效加成应更低")
}
