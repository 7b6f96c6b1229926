package types

// MatchedBy 表示重复判定命中的标识符来源
type MatchedBy string

const (
	// MatchedByEmail 邮箱精确命中
	MatchedByEmail MatchedBy = "email"
	// MatchedByPhone 电话精确命中
	MatchedByPhone MatchedBy = "phone"
	// MatchedByGitHub GitHub账号命中
	MatchedByGitHub MatchedBy = "github"
	// MatchedByLinkedIn LinkedIn账号命中
	MatchedByLinkedIn MatchedBy = "linkedin"
	// MatchedBySimilarity 加权相似度全量扫描命中
	MatchedBySimilarity MatchedBy = "similarity"
)

// CandidateIdentifiers 从单份简历文本中提取出的全部身份信号。
// 在提取完成后视为不可变，由去重解析器持有。
type CandidateIdentifiers struct {
	Filename       string   `json:"filename"`
	Emails         []string `json:"emails"`          // 已归一化（小写、去黑名单、去重、排序）
	Phones         []string `json:"phones"`          // 已归一化（仅保留末10位数字）
	Names          []string `json:"names"`           // 启发式提取的候选姓名
	GitHub         string   `json:"github"`          // GitHub用户名，小写，未找到为空
	LinkedIn       string   `json:"linkedin"`        // LinkedIn ID，小写，未找到为空
	ContentHash    string   `json:"content_hash"`    // 全文指纹（去掉头部与联系方式后）
	EducationHash  string   `json:"education_hash"`  // 教育背景指纹，16位十六进制
	ExperienceHash string   `json:"experience_hash"` // 工作经历指纹，16位十六进制
}

// DuplicateMatch 一次比较产生的重复判定结果
type DuplicateMatch struct {
	CandidateID string    `json:"candidate_id"`
	Filename    string    `json:"filename"`
	Confidence  float64   `json:"confidence"`
	Reason      string    `json:"reason"`
	MatchedBy   MatchedBy `json:"matched_by"`
}

// SimilarityScores 两个候选人之间的各维度相似度子分数
type SimilarityScores struct {
	EmailMatch        float64 `json:"email_match"`
	PhoneMatch        float64 `json:"phone_match"`
	NameSimilarity    float64 `json:"name_similarity"`
	GitHubMatch       float64 `json:"github_match"`
	LinkedInMatch     float64 `json:"linkedin_match"`
	ContentSimilarity float64 `json:"content_similarity"`
	EducationMatch    float64 `json:"education_match"`
	ExperienceMatch   float64 `json:"experience_match"`
}

// GroupMember 重复分组中的一个成员
type GroupMember struct {
	CandidateID string `json:"candidate_id"`
	Filename    string `json:"filename"`
}

// JobRequirements 岗位要求，在边界处解析一次后只读
type JobRequirements struct {
	Position           string   `json:"position"`
	RequiredSkills     []string `json:"required_skills"`
	ExperienceRequired string   `json:"experience_required"` // 例如 "5-8 years"
	Location           string   `json:"location"`
	Description        string   `json:"description"`
	NiceToHave         []string `json:"nice_to_have"`
}

// ScoreResult 单份简历针对某岗位的评分结果。
// 字段的JSON命名是对外报告格式的兼容契约，不可随意改动。
type ScoreResult struct {
	Filename                     string              `json:"filename"`
	CandidateID                  string              `json:"candidate_id,omitempty"`
	FinalScore                   float64             `json:"final_score"`
	SkillScore                   float64             `json:"skill_score"`
	ExperienceScore              float64             `json:"experience_score"`
	LocationScore                float64             `json:"location_score"`
	ProfessionalDevelopmentScore float64             `json:"professional_development_score"`
	MatchedSkills                []string            `json:"matched_skills"`
	DetailedSkillMatches         map[string][]string `json:"detailed_skill_matches"`
	DetectedExperienceYears      int                 `json:"detected_experience_years"`
	ProfessionalDevelopment      *DevelopmentResult  `json:"professional_development"`
	AdditionalFeatures           AdditionalFeatures  `json:"additional_features"`
	ScoringWeights               map[string]float64  `json:"scoring_weights"`
}

// AdditionalFeatures 简历的附加特征，供第二阶段精筛加分使用
type AdditionalFeatures struct {
	EducationLevel       int  `json:"education_level"`       // 1=专科 2=本科 3=硕士 4=博士
	HasCertifications    bool `json:"has_certifications"`    // 是否出现证书关键词
	LeadershipExperience int  `json:"leadership_experience"` // 领导力关键词命中数
}

// DevelopmentResult 职业发展评分的完整结果
type DevelopmentResult struct {
	Score       float64               `json:"professional_development_score"`
	Level       string                `json:"professional_development_level"`
	Components  DevelopmentComponents `json:"component_scores"`
	WeightsUsed map[string]float64    `json:"weights_used"`
	Summary     DevelopmentSummary    `json:"summary"`
}

// DevelopmentComponents 职业发展评分的四个独立子评分
type DevelopmentComponents struct {
	Certifications  CertificationResult `json:"certifications"`
	OnlineLearning  LearningResult      `json:"online_learning"`
	Conferences     ConferenceResult    `json:"conferences"`
	ContentCreation ContentResult       `json:"content_creation"`
}

// CertificationResult 证书子评分
type CertificationResult struct {
	Score         float64             `json:"certification_score"`
	Count         int                 `json:"certification_count"`
	RecencyScore  float64             `json:"recent_certification_score"`
	Found         []string            `json:"certifications_found"`
	Categories    map[string][]string `json:"certification_categories"`
	YearsDetected []int               `json:"years_detected"`
}

// LearningResult 在线学习子评分
type LearningResult struct {
	Score                   float64  `json:"online_learning_score"`
	Platforms               []string `json:"platforms_found"`
	CourseCountEstimate     int      `json:"course_count_estimate"`
	RecencyScore            float64  `json:"recent_learning_score"`
	SpecializationMentioned bool     `json:"specializations_mentioned"`
}

// ConferenceResult 会议参与子评分
type ConferenceResult struct {
	Score            float64  `json:"conference_score"`
	SpeakingScore    float64  `json:"speaking_score"`
	AttendanceScore  float64  `json:"attendance_score"`
	Events           []string `json:"events_found"`
	SpeakerEvents    []string `json:"speaker_events"`
	MajorConferences []string `json:"major_conferences"`
}

// ContentResult 内容创作子评分
type ContentResult struct {
	Score          float64        `json:"content_creation_score"`
	Blog           bool           `json:"blog_activity"`
	Video          bool           `json:"video_activity"`
	OpenSource     bool           `json:"open_source_activity"`
	Community      bool           `json:"community_activity"`
	Platforms      []string       `json:"content_platforms"`
	GitHubActivity map[string]int `json:"github_activity,omitempty"` // 仅用于展示，不参与评分
}

// DevelopmentSummary 职业发展摘要与亮点
type DevelopmentSummary struct {
	TotalCertifications       int      `json:"total_certifications"`
	CertificationCategories   []string `json:"certification_categories"`
	RecentCertifications      bool     `json:"recent_certifications"`
	LearningPlatformsUsed     int      `json:"learning_platforms_used"`
	EstimatedCoursesCompleted int      `json:"estimated_courses_completed"`
	ConferenceSpeaker         bool     `json:"conference_speaker"`
	ConferencesAttended       int      `json:"conferences_attended"`
	ContentCreator            bool     `json:"content_creator"`
	ContentTypes              []string `json:"content_types"`
	ContinuousLearner         bool     `json:"continuous_learner"`
	KeyHighlights             []string `json:"key_highlights"`
}

// DuplicateInfo 合并候选人携带的重复信息
type DuplicateInfo struct {
	Count            int      `json:"count"`
	Filenames        []string `json:"filenames"`
	SelectedFilename string   `json:"selected_filename"`
}

// RankedCandidate 排名流程中的候选人：评分结果叠加重复信息与精筛加分。
// 合并后的候选人各维度分数不低于组内任何一份提交的对应分数。
type RankedCandidate struct {
	ScoreResult

	HasDuplicates  bool             `json:"has_duplicates"`
	DuplicateCount int              `json:"duplicate_count,omitempty"`
	Duplicates     []DuplicateMatch `json:"duplicates,omitempty"`
	AllFilenames   []string         `json:"all_filenames,omitempty"`
	DuplicateInfo  *DuplicateInfo   `json:"duplicate_info,omitempty"`

	// 第二阶段精筛加分，只对入围候选人计算
	ExactSkillBonus    float64 `json:"exact_skill_bonus,omitempty"`
	CertificationBonus float64 `json:"certification_bonus,omitempty"`
	LeadershipBonus    float64 `json:"leadership_bonus,omitempty"`
	AdjustedScore      float64 `json:"adjusted_score,omitempty"`
	FinalRank          int     `json:"final_rank,omitempty"`
	SelectionReason    string  `json:"selection_reason,omitempty"`
}
