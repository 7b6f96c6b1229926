package scoring

import (
	"strings"

	"resume-filter-go/internal/catalog"
)

// MatchSkills 对要求技能逐个评估覆盖情况，返回(得分, 命中技能, 命中明细)。
// 每个技能按三级回退匹配：
//  1. 技能名直接出现（不区分大小写）；
//  2. 技能在变体表中有条目时，任一变体出现即命中；
//  3. 多词技能的每个词都独立出现。
//
// 得分 = 命中数/要求数，要求列表为空时得0分。
// 明细记录每个命中技能实际触发的字面变体，用于结果解释。
func MatchSkills(text string, required []string, cat *catalog.Catalog) (float64, []string, map[string][]string) {
	textLower := strings.ToLower(text)
	var matched []string
	details := make(map[string][]string)

	for _, skill := range required {
		skillLower := strings.ToLower(strings.TrimSpace(skill))

		if strings.Contains(textLower, skillLower) {
			matched = append(matched, skill)
			details[skill] = []string{skillLower}
			continue
		}

		if variations := cat.VariationsFor(skillLower); variations != nil {
			var found []string
			for _, v := range variations {
				if strings.Contains(textLower, v) {
					found = append(found, v)
				}
			}
			if len(found) > 0 {
				matched = append(matched, skill)
				details[skill] = found
				continue
			}
		}

		if strings.Contains(skill, " ") {
			parts := strings.Fields(skill)
			allPresent := true
			for _, part := range parts {
				if !strings.Contains(textLower, strings.ToLower(part)) {
					allPresent = false
					break
				}
			}
			if allPresent {
				matched = append(matched, skill)
				details[skill] = []string{skillLower}
			}
		}
	}

	if len(required) == 0 {
		return 0, matched, details
	}
	return float64(len(matched)) / float64(len(required)), matched, details
}
