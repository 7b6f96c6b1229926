package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"resume-filter-go/internal/catalog"
	"resume-filter-go/internal/types"
)

// 职业发展综合评分的各子项权重
var developmentWeights = map[string]float64{
	"certifications":   0.35,
	"online_learning":  0.25,
	"conferences":      0.20,
	"content_creation": 0.20,
}

// 近期证书/学习年份的识别模式：2010-2029
var recentYearPattern = regexp.MustCompile(`\b(20[1-2][0-9])\b`)

// GitHub活动数值统计模式，仅用于展示
var githubStatPatterns = map[string]*regexp.Regexp{
	"stars":         regexp.MustCompile(`(\d+)\+?\s*stars`),
	"followers":     regexp.MustCompile(`(\d+)\+?\s*followers`),
	"repositories":  regexp.MustCompile(`(\d+)\+?\s*repositories`),
	"contributions": regexp.MustCompile(`(\d+)\+?\s*contributions`),
}

// DevelopmentScorer 职业发展评分器。
// 四个子评分器（证书、在线学习、会议参与、内容创作）全部由规则表驱动，
// 本身无状态：评分是 (文本, 注入时间) 的纯函数。
type DevelopmentScorer struct {
	cat              *catalog.Catalog
	courseIndicators []*regexp.Regexp
}

// NewDevelopmentScorer 创建评分器并编译规则表中的课程指示正则
func NewDevelopmentScorer(cat *catalog.Catalog) (*DevelopmentScorer, error) {
	s := &DevelopmentScorer{cat: cat}
	for _, expr := range cat.Learning.CourseIndicators {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("编译课程指示模式 %q 失败: %w", expr, err)
		}
		s.courseIndicators = append(s.courseIndicators, re)
	}
	return s, nil
}

// Score 计算综合职业发展评分：
// 0.35·证书 + 0.25·在线学习 + 0.20·会议 + 0.20·内容创作，
// 再加 0.1·max(证书时效, 学习时效)，上限1.0。
func (s *DevelopmentScorer) Score(text string, asOf time.Time) *types.DevelopmentResult {
	certs := s.ScoreCertifications(text, asOf)
	learning := s.ScoreOnlineLearning(text, asOf)
	conferences := s.ScoreConferences(text)
	content := s.ScoreContentCreation(text)

	weighted := developmentWeights["certifications"]*certs.Score +
		developmentWeights["online_learning"]*learning.Score +
		developmentWeights["conferences"]*conferences.Score +
		developmentWeights["content_creation"]*content.Score

	recencyBonus := 0.1 * maxFloat([]float64{certs.RecencyScore, learning.RecencyScore})

	final := capScore(weighted + recencyBonus)

	return &types.DevelopmentResult{
		Score: final,
		Level: developmentLevel(final),
		Components: types.DevelopmentComponents{
			Certifications:  certs,
			OnlineLearning:  learning,
			Conferences:     conferences,
			ContentCreation: content,
		},
		WeightsUsed: developmentWeights,
		Summary:     buildSummary(certs, learning, conferences, content),
	}
}

// ScoreCertifications 证书子评分。
// 每个模式只计一次；得分 = min(数量·0.15, 0.6) + 类别多样性·0.2 + 高价值类别0.2，
// 上限1.0。各命中模式附近的年份汇入时效评分。
func (s *DevelopmentScorer) ScoreCertifications(text string, asOf time.Time) types.CertificationResult {
	textLower := strings.ToLower(text)

	result := types.CertificationResult{
		RecencyScore: 0,
		Categories:   make(map[string][]string),
	}

	found := make(map[string]struct{})
	var allYears []int
	highValueHit := false

	for _, category := range s.cat.Certifications {
		var categoryCerts []string
		for _, group := range category.Groups {
			for _, pattern := range group.Patterns {
				if _, seen := found[pattern]; seen {
					continue
				}
				if !strings.Contains(textLower, pattern) {
					continue
				}
				found[pattern] = struct{}{}
				result.Count++
				categoryCerts = append(categoryCerts, pattern)
				allYears = append(allYears, yearsNear(textLower, pattern, asOf)...)
			}
		}
		if len(categoryCerts) > 0 {
			result.Categories[category.Name] = categoryCerts
			if category.HighValue {
				highValueHit = true
			}
		}
	}

	if result.Count > 0 {
		base := float64(result.Count) * 0.15
		if base > 0.6 {
			base = 0.6
		}

		diversity := float64(len(result.Categories)) / float64(len(s.cat.Certifications))
		score := base + diversity*0.2
		if highValueHit {
			score += 0.2
		}
		result.Score = capScore(score)
	}

	if len(allYears) > 0 {
		result.YearsDetected = uniqueYearsDesc(allYears)
		result.RecencyScore = recencyScore(allYears, asOf)
	}

	result.Found = sortedKeys(found)

	return result
}

// ScoreOnlineLearning 在线学习子评分。
// 平台命中取权重均值的一半，课程数量加成上限0.3，专项课程额外0.2。
func (s *DevelopmentScorer) ScoreOnlineLearning(text string, asOf time.Time) types.LearningResult {
	textLower := strings.ToLower(text)

	var result types.LearningResult
	var weights []float64

	for _, tier := range s.cat.Learning.Tiers {
		for _, platform := range tier.Patterns {
			if strings.Contains(textLower, platform) {
				result.Platforms = append(result.Platforms, platform)
				weights = append(weights, tier.Weight)
			}
		}
	}

	courseCount := 0
	for _, re := range s.courseIndicators {
		courseCount += len(re.FindAllString(textLower, -1))
	}
	if containsAnyKeyword(textLower, s.cat.Learning.SpecializationTerms) {
		result.SpecializationMentioned = true
		courseCount += 2
	}
	result.CourseCountEstimate = courseCount

	if len(result.Platforms) > 0 {
		platformScore := meanFloat(weights)
		courseBonus := float64(courseCount) * 0.1
		if courseBonus > 0.3 {
			courseBonus = 0.3
		}
		specBonus := 0.0
		if result.SpecializationMentioned {
			specBonus = 0.2
		}
		result.Score = capScore(platformScore*0.5 + courseBonus + specBonus)
	}

	var recentYears []int
	for _, platform := range result.Platforms {
		recentYears = append(recentYears, yearsNear(textLower, platform, asOf)...)
	}
	if len(recentYears) > 0 {
		result.RecencyScore = recencyScore(recentYears, asOf)
	}

	return result
}

// ScoreConferences 会议参与子评分。
// 演讲命中按0.3累计（上限1.0），参会与大会命中按0.15累计（上限0.6），
// 综合 = 0.7·演讲 + 0.3·参会。
func (s *DevelopmentScorer) ScoreConferences(text string) types.ConferenceResult {
	textLower := strings.ToLower(text)

	var result types.ConferenceResult

	for _, pattern := range s.cat.Conferences.Speaking.Patterns {
		if !strings.Contains(textLower, pattern) {
			continue
		}
		result.SpeakerEvents = append(result.SpeakerEvents, pattern)

		eventRe := regexp.MustCompile(regexp.QuoteMeta(pattern) + `[^.]*(?:conference|summit|meetup|workshop)`)
		result.Events = append(result.Events, eventRe.FindAllString(textLower, -1)...)
	}

	for _, pattern := range s.cat.Conferences.Attendance.Patterns {
		if strings.Contains(textLower, pattern) {
			result.Events = append(result.Events, pattern)
		}
	}

	for _, conference := range s.cat.Conferences.MajorConferences.Patterns {
		if strings.Contains(textLower, conference) {
			result.MajorConferences = append(result.MajorConferences, conference)
		}
	}

	if len(result.SpeakerEvents) > 0 {
		result.SpeakingScore = capScore(float64(len(result.SpeakerEvents)) * 0.3)
	}
	if len(result.Events) > 0 || len(result.MajorConferences) > 0 {
		attendance := float64(len(result.Events)+len(result.MajorConferences)) * 0.15
		if attendance > 0.6 {
			attendance = 0.6
		}
		result.AttendanceScore = attendance
	}

	result.Score = capScore(result.SpeakingScore*0.7 + result.AttendanceScore*0.3)

	return result
}

// ScoreContentCreation 内容创作子评分。
// 命中类别权重取均值，再加多样性加成 min(0.1·命中数, 0.3)。
// GitHub数值统计只随手提取用于展示，不参与评分。
func (s *DevelopmentScorer) ScoreContentCreation(text string) types.ContentResult {
	textLower := strings.ToLower(text)

	var result types.ContentResult
	var weights []float64

	for _, category := range s.cat.Content {
		for _, pattern := range category.Patterns {
			if !strings.Contains(textLower, pattern) {
				continue
			}
			markContentCategory(&result, category.Name)
			result.Platforms = append(result.Platforms, pattern)
			weights = append(weights, category.Weight)

			if strings.Contains(pattern, "github") {
				stats := githubStats(textLower)
				if len(stats) > 0 {
					result.GitHubActivity = stats
				}
			}
		}
	}

	if len(weights) > 0 {
		variety := float64(len(weights)) * 0.1
		if variety > 0.3 {
			variety = 0.3
		}
		result.Score = capScore(meanFloat(weights) + variety)
	}

	return result
}

func markContentCategory(result *types.ContentResult, name string) {
	switch name {
	case "blog":
		result.Blog = true
	case "video":
		result.Video = true
	case "open_source":
		result.OpenSource = true
	case "community":
		result.Community = true
	}
}

func githubStats(textLower string) map[string]int {
	stats := make(map[string]int)
	for name, re := range githubStatPatterns {
		if m := re.FindStringSubmatch(textLower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				stats[name] = n
			}
		}
	}
	return stats
}

// yearsNear 提取关键词附近（前30字符、后50字符）出现的近期年份
func yearsNear(textLower, keyword string, asOf time.Time) []int {
	var years []int
	searchFrom := 0
	for {
		idx := strings.Index(textLower[searchFrom:], keyword)
		if idx < 0 {
			break
		}
		idx += searchFrom

		snippet := contextWindow(textLower, idx, idx+len(keyword), 30, 50)
		for _, m := range recentYearPattern.FindAllStringSubmatch(snippet, -1) {
			if y, err := strconv.Atoi(m[1]); err == nil && y >= 2010 && y <= asOf.Year()+1 {
				years = append(years, y)
			}
		}

		searchFrom = idx + len(keyword)
	}
	return years
}

// recencyScore 时效衰减：距今0年=1.0，1年=0.9，2年=0.8，3年=0.6，
// 5年内=0.4，更久=0.2。无年份信息时返回中性的0.5。
func recencyScore(years []int, asOf time.Time) float64 {
	if len(years) == 0 {
		return 0.5
	}

	mostRecent := years[0]
	for _, y := range years[1:] {
		if y > mostRecent {
			mostRecent = y
		}
	}

	switch yearsAgo := asOf.Year() - mostRecent; {
	case yearsAgo == 0:
		return 1.0
	case yearsAgo == 1:
		return 0.9
	case yearsAgo == 2:
		return 0.8
	case yearsAgo == 3:
		return 0.6
	case yearsAgo <= 5:
		return 0.4
	default:
		return 0.2
	}
}

// developmentLevel 按固定分数段给出定性描述
func developmentLevel(score float64) string {
	switch {
	case score >= 0.8:
		return "Exceptional - Continuous learner with strong industry presence"
	case score >= 0.6:
		return "Strong - Active in professional development"
	case score >= 0.4:
		return "Moderate - Some professional development activities"
	case score >= 0.2:
		return "Basic - Limited professional development shown"
	default:
		return "Minimal - Little evidence of continuous learning"
	}
}

// buildSummary 汇总各子评分并生成亮点列表
func buildSummary(certs types.CertificationResult, learning types.LearningResult,
	conferences types.ConferenceResult, content types.ContentResult) types.DevelopmentSummary {

	summary := types.DevelopmentSummary{
		TotalCertifications:       certs.Count,
		CertificationCategories:   sortedCategoryNames(certs.Categories),
		RecentCertifications:      certs.RecencyScore > 0.7,
		LearningPlatformsUsed:     len(learning.Platforms),
		EstimatedCoursesCompleted: learning.CourseCountEstimate,
		ConferenceSpeaker:         len(conferences.SpeakerEvents) > 0,
		ConferencesAttended:       len(conferences.Events),
		ContentCreator:            content.Score > 0.5,
		ContinuousLearner:         certs.RecencyScore > 0.7 || learning.RecencyScore > 0.7,
	}

	if content.Blog {
		summary.ContentTypes = append(summary.ContentTypes, "blog")
	}
	if content.Video {
		summary.ContentTypes = append(summary.ContentTypes, "video")
	}
	if content.OpenSource {
		summary.ContentTypes = append(summary.ContentTypes, "open_source")
	}
	if content.Community {
		summary.ContentTypes = append(summary.ContentTypes, "community")
	}

	var highlights []string
	if summary.TotalCertifications >= 3 {
		highlights = append(highlights, fmt.Sprintf("Has %d professional certifications", summary.TotalCertifications))
	}
	if summary.ConferenceSpeaker {
		highlights = append(highlights, "Conference speaker")
	}
	if summary.ContentCreator {
		highlights = append(highlights, "Active content creator")
	}
	if summary.ContinuousLearner {
		highlights = append(highlights, "Recent learning activities (within 2 years)")
	}
	for _, name := range summary.CertificationCategories {
		if name == "cloud" {
			highlights = append(highlights, "Cloud certified professional")
			break
		}
	}
	summary.KeyHighlights = highlights

	return summary
}

func capScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}

func meanFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedCategoryNames(categories map[string][]string) []string {
	if len(categories) == 0 {
		return nil
	}
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func uniqueYearsDesc(years []int) []int {
	seen := make(map[int]struct{}, len(years))
	var out []int
	for _, y := range years {
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
