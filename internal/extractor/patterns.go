package extractor

import "regexp"

// 身份识别用的静态模式表。这些正则与身份指纹的格式强绑定，
// 随代码版本管理；可配置的评分类规则表在 internal/catalog 中。
var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// 多种地区格式的电话模式，按顺序逐个尝试
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?\s*\(?(\d{3})\)?[\s.-]?(\d{3})[\s.-]?(\d{4})`),
		regexp.MustCompile(`\+?(\d{1,3})[\s.-]?(\d{3,4})[\s.-]?(\d{3,4})[\s.-]?(\d{3,4})`),
		regexp.MustCompile(`\b(\d{10})\b`),
		regexp.MustCompile(`\+91[\s.-]?(\d{10})`),
	}

	nonDigitPattern = regexp.MustCompile(`\D`)

	// 显式的 Name: 标签
	nameLabelPattern = regexp.MustCompile(`(?:Name|NAME|name)\s*[:|-]?\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)

	githubPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`),
		regexp.MustCompile(`(?i)github\s*:\s*([a-zA-Z0-9-]+)`),
		regexp.MustCompile(`(?i)@([a-zA-Z0-9-]+)\s*\(github\)`),
	}

	linkedinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`),
		regexp.MustCompile(`(?i)linkedin\s*:\s*([a-zA-Z0-9-]+)`),
	}

	// 教育背景的学位模式
	degreePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(B\.?S\.?|B\.?Sc\.?|Bachelor|B\.?Tech|B\.?E\.?)`),
		regexp.MustCompile(`(?i)(M\.?S\.?|M\.?Sc\.?|Master|M\.?Tech|MBA|M\.?E\.?)`),
		regexp.MustCompile(`(?i)(Ph\.?D\.?|Doctorate)`),
	}

	yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	// 大写开头的连续词序列，作为公司名的粗略代理
	companyPattern = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)\b`)
)

// 邮箱黑名单：包含这些片段的地址视为占位或模板地址，不属于候选人
var emailBlacklist = []string{"example.com", "test.com", "@gmail.co"}

// 姓名提取时跳过包含这些词的行
var nameSkipKeywords = []string{"resume", "curriculum", "cv", "objective", "summary"}

// 经历指纹使用的固定技术关键词
var techKeywords = []string{"python", "java", "javascript", "sql", "aws", "docker", "kubernetes"}

// 章节边界关键词：扫描到不属于目标章节的标题时停止捕获
var sectionBoundaryKeywords = []string{"experience", "education", "skills", "projects", "summary", "objective"}

// 各指纹章节对应的标题关键词
var (
	educationSectionKeywords  = []string{"education", "academic", "qualification"}
	experienceSectionKeywords = []string{"experience", "employment", "work history"}
)
