// Package ticket 解析招聘需求单。
// 需求单是外部系统导出的JSON，字段命名不统一且同义字段并存，
// 本包按固定优先级把它归一化为只读的岗位要求。
package ticket

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"resume-filter-go/internal/types"
)

// 技能列表分隔符：逗号、分号、竖线
var skillSeparatorPattern = regexp.MustCompile(`[,;|]\s*`)

// "技能名 (别名/别名)" 形式的括号别名
var parentheticalPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)$`)

// 同义字段的取值优先级，先出现者优先
var (
	positionKeys    = []string{"job_title", "position", "title"}
	experienceKeys  = []string{"experience_required", "experience", "years_of_experience"}
	skillsKeys      = []string{"required_skills", "tech_stack"}
	niceToHaveKeys  = []string{"nice_to_have", "preferred_skills", "bonus_skills"}
	descriptionKeys = []string{"job_description", "description", "summary"}
	locationKeys    = []string{"location", "job_location"}
)

// Resolve 从需求单JSON解析岗位要求。
// 每组同义字段按固定优先级取第一个非空值；
// 技能字段同时容忍字符串列表和分隔符拼接的单个字符串两种形态。
func Resolve(data []byte) (types.JobRequirements, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.JobRequirements{}, fmt.Errorf("解析需求单JSON失败: %w", err)
	}
	return resolveMap(raw), nil
}

func resolveMap(raw map[string]any) types.JobRequirements {
	return types.JobRequirements{
		Position:           firstString(raw, positionKeys),
		ExperienceRequired: firstString(raw, experienceKeys),
		RequiredSkills:     firstSkillList(raw, skillsKeys),
		NiceToHave:         firstSkillList(raw, niceToHaveKeys),
		Location:           firstString(raw, locationKeys),
		Description:        firstString(raw, descriptionKeys),
	}
}

// firstString 按优先级取第一个非空字符串字段
func firstString(raw map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// firstSkillList 按优先级取第一个非空技能字段并归一化为列表
func firstSkillList(raw map[string]any, keys []string) []string {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok {
			continue
		}

		switch v := value.(type) {
		case []any:
			var skills []string
			for _, item := range v {
				if s, ok := item.(string); ok {
					skills = append(skills, ParseSkills(s)...)
				}
			}
			if len(skills) > 0 {
				return skills
			}
		case string:
			if skills := ParseSkills(v); len(skills) > 0 {
				return skills
			}
		}
	}
	return nil
}

// ParseSkills 把单个技能字符串拆成技能列表。
// 按逗号/分号/竖线切分，"Golang (Go)" 形式的括号别名展开为独立条目。
func ParseSkills(s string) []string {
	var skills []string
	for _, part := range skillSeparatorPattern.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if m := parentheticalPattern.FindStringSubmatch(part); m != nil {
			skills = append(skills, strings.TrimSpace(m[1]))
			for _, alias := range strings.Split(m[2], "/") {
				if alias = strings.TrimSpace(alias); alias != "" {
					skills = append(skills, alias)
				}
			}
			continue
		}

		skills = append(skills, part)
	}
	return skills
}
