package dedupe

import (
	"strings"

	"github.com/antzucaro/matchr"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"resume-filter-go/internal/types"
)

// 姓名包含关系（一方是另一方子串）时的折扣分
const nameContainsScore = 0.8

// 教育/经历指纹相等时的固定贡献。指纹只做精确相等比较，
// 不按重叠比例给分，相等记0.8，否则记0。
const hashEqualScore = 0.8

// Similarity 计算两组候选人标识之间的各维度相似度子分数
func Similarity(a, b types.CandidateIdentifiers) types.SimilarityScores {
	var scores types.SimilarityScores

	if intersects(a.Emails, b.Emails) {
		scores.EmailMatch = 1.0
	}
	if intersects(a.Phones, b.Phones) {
		scores.PhoneMatch = 1.0
	}

	scores.NameSimilarity = nameSimilarity(a.Names, b.Names)

	if a.GitHub != "" && b.GitHub != "" && a.GitHub == b.GitHub {
		scores.GitHubMatch = 1.0
	}
	if a.LinkedIn != "" && b.LinkedIn != "" && a.LinkedIn == b.LinkedIn {
		scores.LinkedInMatch = 1.0
	}

	if a.ContentHash == b.ContentHash {
		scores.ContentSimilarity = 1.0
	}
	if a.EducationHash == b.EducationHash {
		scores.EducationMatch = hashEqualScore
	}
	if a.ExperienceHash == b.ExperienceHash {
		scores.ExperienceMatch = hashEqualScore
	}

	return scores
}

// nameSimilarity 对两边所有姓名两两比较，取最大值。
// 每对姓名取三种比较方式的最大值：token排序模糊比、音形码相等、子串包含折扣。
func nameSimilarity(names1, names2 []string) float64 {
	if len(names1) == 0 || len(names2) == 0 {
		return 0
	}

	maxSim := 0.0
	for _, n1 := range names1 {
		lower1 := strings.ToLower(n1)
		code1 := matchr.Soundex(n1)

		for _, n2 := range names2 {
			lower2 := strings.ToLower(n2)

			sim := float64(fuzzy.TokenSortRatio(lower1, lower2)) / 100.0

			if code1 != "" && code1 == matchr.Soundex(n2) {
				sim = 1.0
			}

			if sim < nameContainsScore &&
				(strings.Contains(lower1, lower2) || strings.Contains(lower2, lower1)) {
				sim = nameContainsScore
			}

			if sim > maxSim {
				maxSim = sim
			}
		}
	}
	return maxSim
}

// classify 依据子分数做重复判定。规则按固定优先级求值，首个命中即返回；
// 都未命中时计算加权分，超过阈值或三项同高才判定为重复，
// 否则把加权分作为近失分返回供诊断用。
func classify(scores types.SimilarityScores) (bool, float64, string) {
	if scores.EmailMatch == 1.0 {
		return true, 1.0, "Same email address"
	}
	if scores.PhoneMatch == 1.0 {
		return true, 0.95, "Same phone number"
	}
	if scores.GitHubMatch == 1.0 {
		return true, 0.95, "Same GitHub account"
	}
	if scores.LinkedInMatch == 1.0 {
		return true, 0.95, "Same LinkedIn profile"
	}
	if scores.ContentSimilarity == 1.0 {
		return true, 0.9, "Identical resume content"
	}

	weighted := scores.NameSimilarity*0.2 +
		scores.EducationMatch*0.3 +
		scores.ExperienceMatch*0.3 +
		scores.ContentSimilarity*0.2

	if scores.NameSimilarity > 0.7 && scores.EducationMatch > 0.7 && scores.ExperienceMatch > 0.7 {
		return true, weighted, "High similarity in name, education, and experience"
	}
	if weighted > 0.85 {
		return true, weighted, "Very high overall similarity"
	}

	return false, weighted, "Not duplicate"
}

func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	for _, item := range b {
		if _, ok := set[item]; ok {
			return true
		}
	}
	return false
}
