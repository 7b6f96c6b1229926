package scoring

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-filter-go/internal/catalog"
)

var (
	rangeNumberPattern = regexp.MustCompile(`\d+`)

	// 直接的"N年经验"表述
	directYearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:professional\s*)?experience`),
		regexp.MustCompile(`experience\s*[:–-]\s*(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*(?:software|data|engineering|development)`),
		regexp.MustCompile(`total\s*experience\s*[:–-]\s*(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*yrs?\s*exp`),
	}

	// YYYY - present/YYYY 形式的年份区间
	yearRangePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(present|current|now|\d{4})`)

	monthAlternatives = `january|february|march|april|may|june|july|august|september|october|november|december`

	// 月份-年份到至今的表述
	monthYearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:` + monthAlternatives + `),?\s*(\d{4})\s*[-–]\s*(?:present|current|now)`),
		regexp.MustCompile(`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*,?\s*(\d{4})\s*[-–]\s*(?:present|current|now)`),
	}

	// 受10年跨度限制的起止年份表述
	spanRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:` + monthAlternatives + `),?\s*(\d{4})\s*[-–]\s*(?:` + monthAlternatives + `),?\s*(\d{4})`),
		regexp.MustCompile(`(\d{4})\s*(?:to|-|–)\s*(\d{4})`),
	}

	// 起始年份到当前的表述
	sinceStartPatterns = []*regexp.Regexp{
		regexp.MustCompile(`from\s+(?:` + monthAlternatives + `),?\s*(\d{4})\s*[-–]\s*(?:present|current|now)`),
		regexp.MustCompile(`since\s+(?:` + monthAlternatives + `),?\s*(\d{4})`),
	}

	monthNames = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
)

// ParseExperienceRange 解析岗位要求的年限范围。
// "5-8 years" -> (5, 8)；"5+ years" -> (5, 10)；"5 years" -> (5, 5)；
// 无数字时返回 (0, 100)，即不设约束。
func ParseExperienceRange(s string) (int, int) {
	numbers := rangeNumberPattern.FindAllString(s, -1)

	switch {
	case len(numbers) >= 2:
		low, _ := strconv.Atoi(numbers[0])
		high, _ := strconv.Atoi(numbers[1])
		return low, high
	case len(numbers) == 1:
		n, _ := strconv.Atoi(numbers[0])
		if strings.Contains(s, "+") {
			return n, n + 5
		}
		return n, n
	default:
		return 0, 100
	}
}

// EstimateExperience 从简历全文推断工作年限并对照要求范围评分。
// 四种启发式的结果汇入同一个候选池：直接年限表述、排除教育背景上下文的
// 年份区间、相对注入时间计算的月份-年份到至今、限制跨度的起止年份。
// 取池中处于(0,15)开区间的"合理值"的最大者（四舍五入、至少1年）；
// 无合理值时退回全部候选的最大者。未检出任何年限时返回(0, 0)。
func EstimateExperience(text, required string, asOf time.Time, kw catalog.KeywordTables) (float64, int) {
	minReq, maxReq := ParseExperienceRange(required)
	textLower := strings.ToLower(text)

	var pool []float64

	for _, pattern := range directYearPatterns {
		for _, m := range pattern.FindAllStringSubmatch(textLower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				pool = append(pool, float64(n))
			}
		}
	}

	pool = append(pool, yearRangeSpans(textLower, asOf, kw.EducationContext)...)
	pool = append(pool, monthYearSpans(textLower, asOf, kw.ExperienceContext)...)
	pool = append(pool, boundedSpans(textLower, asOf, kw.ExperienceContext, kw.EducationContext)...)
	pool = append(pool, sinceStartSpans(textLower, asOf)...)

	if len(pool) == 0 {
		return 0, 0
	}

	years := pickYears(pool)

	switch {
	case minReq <= years && years <= maxReq:
		return 1.0, years
	case years > maxReq:
		return 0.9, years
	case years >= minReq-1:
		return 0.8, years
	case minReq > 0:
		return float64(years) / float64(minReq), years
	default:
		return 0, years
	}
}

// pickYears 从候选池中选出最终年限估计
func pickYears(pool []float64) int {
	var realistic []float64
	for _, y := range pool {
		if y > 0 && y < 15 {
			realistic = append(realistic, y)
		}
	}

	if len(realistic) > 0 {
		best := maxFloat(realistic)
		if best < 1 {
			return 1
		}
		return int(math.Round(best))
	}
	return int(math.Round(maxFloat(pool)))
}

// yearRangeSpans 提取 YYYY - present/YYYY 区间的跨度。
// 匹配位置前后各100字符的上下文中出现教育关键词时排除，
// 避免把在校年份当成工作年限。
func yearRangeSpans(textLower string, asOf time.Time, educationContext []string) []float64 {
	var spans []float64
	for _, m := range yearRangePattern.FindAllStringSubmatchIndex(textLower, -1) {
		startYear, _ := strconv.Atoi(textLower[m[2]:m[3]])
		endText := textLower[m[4]:m[5]]
		endYear := asOf.Year()
		if n, err := strconv.Atoi(endText); err == nil {
			endYear = n
		}

		context := contextWindow(textLower, m[0], m[1], 100, 100)
		if containsAnyKeyword(context, educationContext) {
			continue
		}
		if startYear > 1990 && startYear <= asOf.Year() {
			spans = append(spans, float64(endYear-startYear))
		}
	}
	return spans
}

// monthYearSpans 提取"月份 年份 - 至今"表述，按注入时间的年月计算小数年限。
// 要求匹配位置前200字符内出现工作上下文关键词。
func monthYearSpans(textLower string, asOf time.Time, experienceContext []string) []float64 {
	var spans []float64
	for _, pattern := range monthYearPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(textLower, -1) {
			startYear, _ := strconv.Atoi(textLower[m[2]:m[3]])

			context := contextWindow(textLower, m[0], m[1], 200, 50)
			if !containsAnyKeyword(context, experienceContext) {
				continue
			}
			if startYear <= 1990 || startYear > asOf.Year() {
				continue
			}

			startMonth := monthIn(textLower[m[0]:m[1]])
			months := float64(int(asOf.Month())-startMonth) / 12.0

			var years float64
			switch startYear {
			case asOf.Year():
				years = months
			case asOf.Year() - 1:
				years = 1 + months
			default:
				years = float64(asOf.Year()-startYear) + months
			}

			spans = append(spans, math.Max(0.5, years))
		}
	}
	return spans
}

// boundedSpans 提取起止年份区间，限制跨度小于10年，
// 要求工作上下文关键词出现且教育关键词不出现。
func boundedSpans(textLower string, asOf time.Time, experienceContext, educationContext []string) []float64 {
	var spans []float64
	for _, pattern := range spanRangePatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(textLower, -1) {
			startYear, _ := strconv.Atoi(textLower[m[2]:m[3]])
			endYear, _ := strconv.Atoi(textLower[m[4]:m[5]])

			context := contextWindow(textLower, m[0], m[1], 100, 100)
			if !containsAnyKeyword(context, experienceContext) || containsAnyKeyword(context, educationContext) {
				continue
			}
			if startYear > 1990 && startYear <= asOf.Year() && endYear-startYear < 10 {
				spans = append(spans, float64(endYear-startYear))
			}
		}
	}
	return spans
}

// sinceStartSpans 提取"from/since 月份 年份"表述，按注入时间的年份计算跨度
func sinceStartSpans(textLower string, asOf time.Time) []float64 {
	var spans []float64
	for _, pattern := range sinceStartPatterns {
		for _, m := range pattern.FindAllStringSubmatch(textLower, -1) {
			startYear, _ := strconv.Atoi(m[1])
			if startYear > 1990 && startYear <= asOf.Year() {
				spans = append(spans, float64(asOf.Year()-startYear))
			}
		}
	}
	return spans
}

// monthIn 在匹配文本内查找月份名（先全称再缩写），未找到时按1月处理
func monthIn(matchText string) int {
	for i, name := range monthNames {
		if strings.Contains(matchText, name) {
			return i + 1
		}
	}
	for i, name := range monthNames {
		if strings.Contains(matchText, name[:3]) {
			return i + 1
		}
	}
	return 1
}

func contextWindow(s string, start, end, before, after int) string {
	lo := start - before
	if lo < 0 {
		lo = 0
	}
	hi := end + after
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func maxFloat(values []float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
