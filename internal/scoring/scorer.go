package scoring

import (
	"strings"
	"time"

	"resume-filter-go/internal/catalog"
	"resume-filter-go/internal/types"
)

// 最终评分的各维度权重
var scoringWeights = map[string]float64{
	"skills":           0.40,
	"experience":       0.30,
	"location":         0.10,
	"professional_dev": 0.20,
}

// Scorer 单份简历对单个岗位的多因子评分器。
// 无内部状态，同一输入（文本、要求、注入时间）总是产出相同结果，可并发复用。
type Scorer struct {
	cat *catalog.Catalog
	dev *DevelopmentScorer
}

// NewScorer 创建评分器
func NewScorer(cat *catalog.Catalog) (*Scorer, error) {
	dev, err := NewDevelopmentScorer(cat)
	if err != nil {
		return nil, err
	}
	return &Scorer{cat: cat, dev: dev}, nil
}

// Score 对单份简历计算多因子评分。
// 最终分 = 0.4·技能 + 0.3·经验 + 0.1·地点 + 0.2·职业发展。
func (s *Scorer) Score(text string, req types.JobRequirements, asOf time.Time) types.ScoreResult {
	skillScore, matched, details := MatchSkills(text, req.RequiredSkills, s.cat)
	expScore, years := EstimateExperience(text, req.ExperienceRequired, asOf, s.cat.Keywords)
	locScore := locationScore(text, req.Location)
	development := s.dev.Score(text, asOf)

	final := scoringWeights["skills"]*skillScore +
		scoringWeights["experience"]*expScore +
		scoringWeights["location"]*locScore +
		scoringWeights["professional_dev"]*development.Score

	return types.ScoreResult{
		FinalScore:                   final,
		SkillScore:                   skillScore,
		ExperienceScore:              expScore,
		LocationScore:                locScore,
		ProfessionalDevelopmentScore: development.Score,
		MatchedSkills:                matched,
		DetailedSkillMatches:         details,
		DetectedExperienceYears:      years,
		ProfessionalDevelopment:      development,
		AdditionalFeatures:           s.additionalFeatures(text),
		ScoringWeights:               scoringWeights,
	}
}

// locationScore 地点匹配：要求地点出现在文本中得满分。
// 未设要求时空串平凡包含于任何文本，同样得满分；
// 任一方提到remote得0.8。
func locationScore(text, location string) float64 {
	textLower := strings.ToLower(text)
	locationLower := strings.ToLower(strings.TrimSpace(location))

	if strings.Contains(textLower, locationLower) {
		return 1.0
	}
	if strings.Contains(locationLower, "remote") || strings.Contains(textLower, "remote") {
		return 0.8
	}
	return 0
}

// additionalFeatures 提取第二阶段精筛加分依赖的附加特征
func (s *Scorer) additionalFeatures(text string) types.AdditionalFeatures {
	textLower := strings.ToLower(text)

	var features types.AdditionalFeatures

	for _, entry := range s.cat.Keywords.EducationLevels {
		if strings.Contains(textLower, entry.Keyword) && entry.Level > features.EducationLevel {
			features.EducationLevel = entry.Level
		}
	}

	features.HasCertifications = containsAnyKeyword(textLower, s.cat.Keywords.CertificationKeywords)

	for _, kw := range s.cat.Keywords.LeadershipKeywords {
		if strings.Contains(textLower, kw) {
			features.LeadershipExperience++
		}
	}

	return features
}
