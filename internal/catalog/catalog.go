package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// 内置规则表，随二进制发布；可通过覆盖目录替换单个文件
//
//go:embed data/*.yaml
var defaultFS embed.FS

// SkillEntry 规范技能名及其同义词/缩写变体
type SkillEntry struct {
	Skill      string   `yaml:"skill"`
	Variations []string `yaml:"variations"`
}

// CertificationGroup 同一类证书的模式组
type CertificationGroup struct {
	Name             string   `yaml:"name"`
	Weight           float64  `yaml:"weight"`
	RecencyImportant bool     `yaml:"recency_important"`
	Patterns         []string `yaml:"patterns"`
}

// CertificationCategory 证书大类（cloud、data、devops等）
type CertificationCategory struct {
	Name      string               `yaml:"name"`
	HighValue bool                 `yaml:"high_value"` // 高价值类别触发额外加分
	Groups    []CertificationGroup `yaml:"groups"`
}

// LearningTier 在线学习平台层级
type LearningTier struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	Patterns []string `yaml:"patterns"`
}

// LearningCatalog 在线学习规则表
type LearningCatalog struct {
	Tiers []LearningTier `yaml:"tiers"`
	// 课程数量指示模式（正则表达式）
	CourseIndicators []string `yaml:"course_indicators"`
	// 专项课程关键词
	SpecializationTerms []string `yaml:"specialization_terms"`
}

// PatternGroup 带权重的模式组
type PatternGroup struct {
	Weight   float64  `yaml:"weight"`
	Patterns []string `yaml:"patterns"`
}

// ConferenceCatalog 会议参与规则表
type ConferenceCatalog struct {
	Speaking         PatternGroup `yaml:"speaking"`
	Attendance       PatternGroup `yaml:"attendance"`
	MajorConferences PatternGroup `yaml:"major_conferences"`
}

// ContentCategory 内容创作类别
type ContentCategory struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	Patterns []string `yaml:"patterns"`
}

// EducationLevel 学历关键词与等级
type EducationLevel struct {
	Keyword string `yaml:"keyword"`
	Level   int    `yaml:"level"`
}

// KeywordTables 其余关键词表
type KeywordTables struct {
	EducationLevels       []EducationLevel `yaml:"education_levels"`
	CertificationKeywords []string         `yaml:"certification_keywords"`
	LeadershipKeywords    []string         `yaml:"leadership_keywords"`
	// 年限推断时用于排除教育背景上下文的关键词
	EducationContext []string `yaml:"education_context"`
	// 年限推断时要求出现的工作上下文关键词
	ExperienceContext []string `yaml:"experience_context"`
}

// Catalog 全部规则表的聚合。各表内部顺序即匹配优先顺序。
type Catalog struct {
	Skills         []SkillEntry            `yaml:"-"`
	Certifications []CertificationCategory `yaml:"-"`
	Learning       LearningCatalog         `yaml:"-"`
	Conferences    ConferenceCatalog       `yaml:"-"`
	Content        []ContentCategory       `yaml:"-"`
	Keywords       KeywordTables           `yaml:"-"`
}

// 各规则表对应的文件名
const (
	skillsFile      = "skills.yaml"
	certsFile       = "certifications.yaml"
	learningFile    = "learning.yaml"
	conferencesFile = "conferences.yaml"
	contentFile     = "content.yaml"
	keywordsFile    = "keywords.yaml"
)

// Load 加载内置规则表
func Load() (*Catalog, error) {
	return load("")
}

// LoadDir 加载内置规则表，并用目录中的同名文件逐个覆盖
func LoadDir(dir string) (*Catalog, error) {
	return load(dir)
}

func load(overrideDir string) (*Catalog, error) {
	c := &Catalog{}

	type target struct {
		file string
		dst  any
	}
	var skills struct {
		Skills []SkillEntry `yaml:"skills"`
	}
	var certs struct {
		Categories []CertificationCategory `yaml:"categories"`
	}
	var content struct {
		Categories []ContentCategory `yaml:"categories"`
	}

	targets := []target{
		{skillsFile, &skills},
		{certsFile, &certs},
		{learningFile, &c.Learning},
		{conferencesFile, &c.Conferences},
		{contentFile, &content},
		{keywordsFile, &c.Keywords},
	}

	for _, t := range targets {
		data, err := readTable(overrideDir, t.file)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, t.dst); err != nil {
			return nil, fmt.Errorf("解析规则表 %s 失败: %w", t.file, err)
		}
	}

	c.Skills = skills.Skills
	c.Certifications = certs.Categories
	c.Content = content.Categories

	return c, nil
}

// readTable 优先读取覆盖目录中的文件，缺失时回退到内置数据
func readTable(overrideDir, name string) ([]byte, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("读取覆盖规则表 %s 失败: %w", path, err)
		}
	}

	data, err := defaultFS.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("读取内置规则表 %s 失败: %w", name, err)
	}
	return data, nil
}

// VariationsFor 查找技能对应的变体表。按表内顺序取第一个满足条件的条目：
// 技能名落在条目的变体集合中，或条目名是技能名的子串。
func (c *Catalog) VariationsFor(skillLower string) []string {
	for _, entry := range c.Skills {
		if strings.Contains(skillLower, entry.Skill) {
			return entry.Variations
		}
		for _, v := range entry.Variations {
			if v == skillLower {
				return entry.Variations
			}
		}
	}
	return nil
}
