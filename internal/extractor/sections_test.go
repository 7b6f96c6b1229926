package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSection(t *testing.T) {
	text := strings.Join([]string{
		"Jane Doe",
		"Education",
		"B.S. Computer Science, 2015",
		"GPA 3.9",
		"Experience",
		"Acme Corp, Software Engineer",
	}, "\n")

	section := ExtractSection(text, educationSectionKeywords)

	assert.Contains(t, section, "B.S. Computer Science", "章节内容应被捕获")
	assert.Contains(t, section, "GPA 3.9", "章节内的后续行应被捕获")
	assert.NotContains(t, section, "Acme Corp", "边界关键词之后的内容不应被捕获")
	assert.NotContains(t, section, "Jane Doe", "章节标题之前的内容不应被捕获")
}

func TestExtractSectionMissing(t *testing.T) {
	section := ExtractSection("just some text\nwithout any headers", educationSectionKeywords)
	assert.Empty(t, section, "无目标章节时应返回空串")
}

func TestExtractSectionTargetKeywordNotBoundary(t *testing.T) {
	text := strings.Join([]string{
		"Work History",
		"Acme Corp, 2018 - 2022",
		"Earlier experience", // 含目标关键词，视为新标题行但不截断章节
		"Beta Inc, 2015 - 2018",
		"Education",
		"B.Tech, 2014",
	}, "\n")

	section := ExtractSection(text, experienceSectionKeywords)

	assert.Contains(t, section, "Acme Corp", "经历内容应被捕获")
	assert.Contains(t, section, "Beta Inc", "目标关键词行之后的内容应继续被捕获")
	assert.NotContains(t, section, "B.Tech", "教育章节标题应截断经历章节")
}
