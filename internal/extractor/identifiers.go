package extractor

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"resume-filter-go/internal/types"
)

// ExtractIdentifiers 从简历原文中提取全部身份信号。
// 提取永不失败：找不到的标识符返回空集合或空串，空文本产生全空的结果。
func ExtractIdentifiers(text, filename string) types.CandidateIdentifiers {
	return types.CandidateIdentifiers{
		Filename:       filename,
		Emails:         extractEmails(text),
		Phones:         extractPhones(text),
		Names:          extractNames(text),
		GitHub:         firstMatch(githubPatterns, text),
		LinkedIn:       firstMatch(linkedinPatterns, text),
		ContentHash:    contentHash(text),
		EducationHash:  educationHash(text),
		ExperienceHash: experienceHash(text),
	}
}

// extractEmails 提取并校验邮箱：小写化、过滤黑名单、去重排序
func extractEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)

	var valid []string
	for _, email := range matches {
		lower := strings.ToLower(email)
		if containsAny(lower, emailBlacklist) {
			continue
		}
		valid = append(valid, lower)
	}

	return dedupeSorted(valid)
}

// extractPhones 提取并归一化电话号码。
// 每个命中先剥掉所有非数字字符，至少剩10位才接受，且只保留末10位，
// 因此不同写法的国家码（+1、+91）会归一到同一个号码。
func extractPhones(text string) []string {
	var phones []string
	for _, pattern := range phonePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			digits := nonDigitPattern.ReplaceAllString(strings.Join(m[1:], ""), "")
			if len(digits) >= 10 {
				phones = append(phones, digits[len(digits)-10:])
			}
		}
	}
	return dedupeSorted(phones)
}

// extractNames 从前10行中启发式提取候选姓名：
// 2-4个词、每个词首字母大写、且不含简历常见标记词的行。
// 另外补充显式 Name: 标签命中的内容。
func extractNames(text string) []string {
	var names []string

	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if line == "" || containsAny(strings.ToLower(line), nameSkipKeywords) {
			continue
		}

		words := strings.Fields(line)
		if len(words) >= 2 && len(words) <= 4 && allCapitalized(words) {
			names = append(names, line)
		}
	}

	for _, m := range nameLabelPattern.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}

	return dedupeSorted(names)
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 || !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}

// firstMatch 依次尝试各模式，返回首个捕获并小写化，未命中返回空串
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.ToLower(m[1])
		}
	}
	return ""
}

// contentHash 全文指纹：去掉前5行（页眉/联系方式块），剥除邮箱和电话，
// 压缩空白后做MD5。用于捕捉逐字节相同或接近相同的重复投递。
func contentHash(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[5:]
	}

	content := strings.Join(lines, "\n")
	content = emailPattern.ReplaceAllString(content, "")
	content = phonePatterns[0].ReplaceAllString(content, "")
	content = strings.Join(strings.Fields(content), " ")

	return md5Hex(content)
}

// educationHash 教育背景指纹：学位关键词 + 年份，排序拼接后截取16位
func educationHash(text string) string {
	section := ExtractSection(text, educationSectionKeywords)

	var parts []string
	for _, pattern := range degreePatterns {
		for _, m := range pattern.FindAllStringSubmatch(section, -1) {
			parts = append(parts, m[1])
		}
	}
	parts = append(parts, findYears(section)...)

	sort.Strings(parts)
	return md5Hex(strings.Join(parts, " "))[:16]
}

// experienceHash 工作经历指纹：公司名代理（前5个大写词序列）+ 年份 + 技术关键词交集
func experienceHash(text string) string {
	section := ExtractSection(text, experienceSectionKeywords)
	sectionLower := strings.ToLower(section)

	var companies []string
	for _, m := range companyPattern.FindAllStringSubmatch(section, -1) {
		companies = append(companies, m[1])
		if len(companies) == 5 {
			break
		}
	}

	parts := append(companies, findYears(section)...)
	for _, tech := range techKeywords {
		if strings.Contains(sectionLower, tech) {
			parts = append(parts, tech)
		}
	}

	sort.Strings(parts)
	return md5Hex(strings.Join(parts, " "))[:16]
}

func findYears(s string) []string {
	var years []string
	for _, m := range yearPattern.FindAllStringSubmatch(s, -1) {
		years = append(years, m[1])
	}
	return years
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// dedupeSorted 去重并排序，保证提取结果确定性
func dedupeSorted(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
