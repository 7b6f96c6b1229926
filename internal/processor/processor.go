// Package processor 串联完整的筛选流程：
// 提交注册与去重、多因子评分、重复合并、两阶段排名。
package processor

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-filter-go/internal/catalog"
	"resume-filter-go/internal/dedupe"
	"resume-filter-go/internal/logger"
	"resume-filter-go/internal/scoring"
	"resume-filter-go/internal/types"
)

// 第二阶段精筛的加分规则
const (
	filenameSkillBonus    = 0.05 // 文件名中出现要求技能，每个技能一次
	certificationBonus    = 0.1  // 出现证书关键词
	leadershipBonusPerHit = 0.02 // 每个领导力关键词命中
	leadershipBonusCap    = 0.1
)

// Submission 一份待筛选的简历提交
type Submission struct {
	Filename string
	Text     string
}

// Result 一次完整筛选流程的输出
type Result struct {
	Position         string                  `json:"position"`
	TotalSubmissions int                     `json:"total_submissions"`
	UniqueCandidates int                     `json:"unique_candidates"`
	DuplicateGroups  [][]types.GroupMember   `json:"duplicate_groups,omitempty"`
	Shortlist        []types.RankedCandidate `json:"shortlist"`
	Finalists        []types.RankedCandidate `json:"final_recommendations"`
}

// Processor 简历筛选处理器。每个岗位的筛选流程各建一个实例，
// 内部的去重注册表随提交顺序增量构建，不可跨岗位复用。
type Processor struct {
	resolver      *dedupe.Resolver
	scorer        *scoring.Scorer
	shortlistSize int
	finalSize     int
	logger        zerolog.Logger
	now           func() time.Time
}

// New 创建处理器
func New(cat *catalog.Catalog, opts ...Option) (*Processor, error) {
	scorer, err := scoring.NewScorer(cat)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		scorer:        scorer,
		shortlistSize: 10,
		finalSize:     5,
		logger:        logger.Logger,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.resolver = dedupe.NewResolver(dedupe.WithClock(p.now))

	return p, nil
}

// Run 执行完整筛选流程。
// 提交按给定顺序串行注册和评分（去重判定依赖注册顺序），
// 然后合并重复分组、按最终分截取入围名单、计算精筛加分并产出最终推荐。
func (p *Processor) Run(ctx context.Context, submissions []Submission, req types.JobRequirements, asOf time.Time) (*Result, error) {
	candidates := make([]types.RankedCandidate, 0, len(submissions))
	byID := make(map[string]int, len(submissions))

	for _, sub := range submissions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidateID, duplicates := p.resolver.Register(sub.Text, sub.Filename)

		score := p.scorer.Score(sub.Text, req, asOf)
		score.Filename = sub.Filename
		score.CandidateID = candidateID

		ranked := types.RankedCandidate{
			ScoreResult:    score,
			HasDuplicates:  len(duplicates) > 0,
			DuplicateCount: len(duplicates),
			Duplicates:     duplicates,
		}
		byID[candidateID] = len(candidates)
		candidates = append(candidates, ranked)

		p.logger.Debug().
			Str("filename", sub.Filename).
			Str("candidate_id", candidateID).
			Float64("final_score", score.FinalScore).
			Int("duplicates", len(duplicates)).
			Msg("简历评分完成")
	}

	groups := p.resolver.GroupDuplicates()
	merged := p.mergeGroups(candidates, byID, groups)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FinalScore > merged[j].FinalScore
	})

	shortlist := merged
	if len(shortlist) > p.shortlistSize {
		shortlist = shortlist[:p.shortlistSize]
	}

	for i := range shortlist {
		applyBonuses(&shortlist[i], req)
	}

	finalists := make([]types.RankedCandidate, len(shortlist))
	copy(finalists, shortlist)
	sort.SliceStable(finalists, func(i, j int) bool {
		return finalists[i].AdjustedScore > finalists[j].AdjustedScore
	})
	if len(finalists) > p.finalSize {
		finalists = finalists[:p.finalSize]
	}
	for i := range finalists {
		finalists[i].FinalRank = i + 1
		finalists[i].SelectionReason = selectionReason(finalists[i])
	}

	p.logger.Info().
		Int("submissions", len(submissions)).
		Int("unique_candidates", len(merged)).
		Int("duplicate_groups", len(groups)).
		Int("finalists", len(finalists)).
		Msg("筛选流程完成")

	return &Result{
		Position:         req.Position,
		TotalSubmissions: len(submissions),
		UniqueCandidates: len(merged),
		DuplicateGroups:  groups,
		Shortlist:        shortlist,
		Finalists:        finalists,
	}, nil
}

// mergeGroups 把每个重复分组合并为单个候选人。
// 以组内注册顺序的首个成员为基准，逐维度吸收其他成员中严格更高的
// 子分数及其对应明细；最终分同样只在严格更高时替换，不按权重重算，
// 因此合并后的最终分恰为组内成员最终分的最大值，不会因合并被抬高。
func (p *Processor) mergeGroups(candidates []types.RankedCandidate, byID map[string]int, groups [][]types.GroupMember) []types.RankedCandidate {
	grouped := make(map[string]struct{})
	var merged []types.RankedCandidate

	for _, group := range groups {
		var members []int
		for _, member := range group {
			idx, ok := byID[member.CandidateID]
			if !ok {
				continue
			}
			grouped[member.CandidateID] = struct{}{}
			members = append(members, idx)
		}
		if len(members) == 0 {
			continue
		}

		combined := candidates[members[0]]
		filenames := make([]string, 0, len(group))
		for _, member := range group {
			filenames = append(filenames, member.Filename)
		}
		for _, idx := range members[1:] {
			absorb(&combined, candidates[idx])
		}

		combined.HasDuplicates = true
		combined.AllFilenames = filenames
		combined.DuplicateInfo = &types.DuplicateInfo{
			Count:            len(group),
			Filenames:        filenames,
			SelectedFilename: combined.Filename,
		}

		p.logger.Info().
			Str("selected", combined.Filename).
			Strs("filenames", filenames).
			Msg("合并重复候选人")

		merged = append(merged, combined)
	}

	for _, c := range candidates {
		if _, ok := grouped[c.CandidateID]; !ok {
			merged = append(merged, c)
		}
	}

	return merged
}

// absorb 把另一份提交中严格更高的分数连同明细吸收进合并结果
func absorb(dst *types.RankedCandidate, src types.RankedCandidate) {
	if src.FinalScore > dst.FinalScore {
		dst.FinalScore = src.FinalScore
	}
	if src.SkillScore > dst.SkillScore {
		dst.SkillScore = src.SkillScore
		dst.MatchedSkills = src.MatchedSkills
		dst.DetailedSkillMatches = src.DetailedSkillMatches
	}
	if src.ExperienceScore > dst.ExperienceScore {
		dst.ExperienceScore = src.ExperienceScore
		dst.DetectedExperienceYears = src.DetectedExperienceYears
	}
	if src.LocationScore > dst.LocationScore {
		dst.LocationScore = src.LocationScore
	}
	if src.ProfessionalDevelopmentScore > dst.ProfessionalDevelopmentScore {
		dst.ProfessionalDevelopmentScore = src.ProfessionalDevelopmentScore
		dst.ProfessionalDevelopment = src.ProfessionalDevelopment
	}
}

// applyBonuses 计算第二阶段精筛加分并写入调整分（上限1.0）
func applyBonuses(c *types.RankedCandidate, req types.JobRequirements) {
	filenameLower := strings.ToLower(c.Filename)
	for _, skill := range req.RequiredSkills {
		if strings.Contains(filenameLower, strings.ToLower(skill)) {
			c.ExactSkillBonus += filenameSkillBonus
		}
	}

	if c.AdditionalFeatures.HasCertifications {
		c.CertificationBonus = certificationBonus
	}

	leadership := float64(c.AdditionalFeatures.LeadershipExperience) * leadershipBonusPerHit
	if leadership > leadershipBonusCap {
		leadership = leadershipBonusCap
	}
	c.LeadershipBonus = leadership

	c.AdjustedScore = c.FinalScore + c.ExactSkillBonus + c.CertificationBonus + c.LeadershipBonus
	if c.AdjustedScore > 1.0 {
		c.AdjustedScore = 1.0
	}
}

// selectionReason 生成入选理由：技能匹配程度必有，其余维度达标时追加
func selectionReason(c types.RankedCandidate) string {
	var parts []string

	switch {
	case c.SkillScore >= 0.8:
		parts = append(parts, "excellent skill match")
	case c.SkillScore >= 0.6:
		parts = append(parts, "good skill match")
	default:
		parts = append(parts, "moderate skill match")
	}

	if c.ExperienceScore >= 0.9 {
		parts = append(parts, "perfect experience fit")
	} else if c.ExperienceScore >= 0.7 {
		parts = append(parts, "good experience level")
	}

	if c.ProfessionalDevelopmentScore >= 0.6 {
		parts = append(parts, "strong professional development")
	}
	if c.CertificationBonus > 0 {
		parts = append(parts, "has relevant certifications")
	}
	if c.LeadershipBonus > 0 {
		parts = append(parts, "leadership experience")
	}

	reason := strings.Join(parts, "; ")
	return strings.ToUpper(reason[:1]) + reason[1:]
}
