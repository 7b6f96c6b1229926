package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testAsOf = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func TestParseExperienceRange(t *testing.T) {
	tests := []struct {
		input    string
		wantLow  int
		wantHigh int
	}{
		{"5-8 years", 5, 8},
		{"5 to 8 years", 5, 8},
		{"5+ years", 5, 10},
		{"5 years", 5, 5},
		{"senior level", 0, 100},
		{"", 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			low, high := ParseExperienceRange(tt.input)
			assert.Equal(t, tt.wantLow, low, "下界不符")
			assert.Equal(t, tt.wantHigh, high, "上界不符")
		})
	}
}

func TestEstimateExperienceDirect(t *testing.T) {
	cat := loadCatalog(t)

	tests := []struct {
		name      string
		text      string
		required  string
		wantScore float64
		wantYears int
	}{
		{
			name:      "年限处于要求区间内得满分",
			text:      "6 years of professional experience in backend systems",
			required:  "5-8 years",
			wantScore: 1.0,
			wantYears: 6,
		},
		{
			name:      "超出上界得0.9",
			text:      "12 years of experience building platforms",
			required:  "5-8 years",
			wantScore: 0.9,
			wantYears: 12,
		},
		{
			name:      "低一年以内得0.8",
			text:      "4 years of experience with data pipelines",
			required:  "5-8 years",
			wantScore: 0.8,
			wantYears: 4,
		},
		{
			name:      "明显不足按比例给分",
			text:      "2 years of experience as a junior developer",
			required:  "6-8 years",
			wantScore: 2.0 / 6.0,
			wantYears: 2,
		},
		{
			name:      "未检出年限得0分",
			text:      "passionate engineer with many skills",
			required:  "5-8 years",
			wantScore: 0,
			wantYears: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, years := EstimateExperience(tt.text, tt.required, testAsOf, cat.Keywords)
			assert.InDelta(t, tt.wantScore, score, 1e-9, "经验评分不符")
			assert.Equal(t, tt.wantYears, years, "检出年限不符")
		})
	}
}

func TestEstimateExperienceYearRange(t *testing.T) {
	cat := loadCatalog(t)

	// 工作年份区间，上下文无教育关键词
	text := "Worked as an engineer at Acme Corp, 2018 - 2023, building APIs"
	score, years := EstimateExperience(text, "5-8 years", testAsOf, cat.Keywords)

	assert.Equal(t, 5, years, "2018-2023应推断为5年")
	assert.Equal(t, 1.0, score)
}

func TestEstimateExperienceExcludesEducation(t *testing.T) {
	cat := loadCatalog(t)

	// 年份区间紧邻教育上下文，应被排除
	text := "Education: Stanford University, 2018 - 2022"
	score, years := EstimateExperience(text, "3-5 years", testAsOf, cat.Keywords)

	assert.Zero(t, years, "教育年份区间不应计入工作年限")
	assert.Zero(t, score)
}

func TestEstimateExperienceSinceStart(t *testing.T) {
	cat := loadCatalog(t)

	text := "Senior engineer, working since January 2019 on cloud infrastructure"
	_, years := EstimateExperience(text, "3-8 years", testAsOf, cat.Keywords)

	assert.Equal(t, 6, years, "since 2019相对2025应推断为6年")
}

// 相同输入和注入时间必须产出相同结果
func TestEstimateExperienceDeterministic(t *testing.T) {
	cat := loadCatalog(t)

	text := "8 years of experience. Worked at Acme 2016 - 2024. Employed since march 2017."
	s1, y1 := EstimateExperience(text, "5-8 years", testAsOf, cat.Keywords)
	for i := 0; i < 10; i++ {
		s2, y2 := EstimateExperience(text, "5-8 years", testAsOf, cat.Keywords)
		assert.Equal(t, s1, s2, "评分应确定")
		assert.Equal(t, y1, y2, "年限应确定")
	}
}

func TestEstimateExperienceRealisticWindow(t *testing.T) {
	cat := loadCatalog(t)

	// 30年的夸张表述与6年的合理表述并存时取合理值
	text := "30 years of experience; recently 6 years of experience in Go"
	_, years := EstimateExperience(text, "5-8 years", testAsOf, cat.Keywords)

	assert.Equal(t, 6, years, "超出合理窗口的候选值应被忽略")
}
