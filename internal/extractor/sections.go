package extractor

import "strings"

// ExtractSection 按标题关键词从简历文本中切出一个章节。
// 逐行扫描：命中任一目标关键词的行视为章节标题，其后的行被捕获，
// 直到出现一个属于其他章节的边界关键词行为止。这是标题边界启发式，
// 不是结构化解析，对排版混乱的简历只能尽力而为。
func ExtractSection(text string, sectionKeywords []string) string {
	lines := strings.Split(text, "\n")
	started := false
	var sectionLines []string

	for _, line := range lines {
		lineLower := strings.ToLower(line)

		if containsAny(lineLower, sectionKeywords) {
			started = true
			continue
		}

		if started {
			if containsAny(lineLower, sectionBoundaryKeywords) && !containsAny(lineLower, sectionKeywords) {
				break
			}
			sectionLines = append(sectionLines, line)
		}
	}

	return strings.Join(sectionLines, "\n")
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
