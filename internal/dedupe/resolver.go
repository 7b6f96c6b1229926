package dedupe

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"resume-filter-go/internal/extractor"
	"resume-filter-go/internal/types"
)

// Resolver 候选人去重解析器：持有增量构建的注册表和邮箱/电话反向索引。
// 实例化对象，不是进程级单例；每个岗位的筛选流程各建一个。
//
// 注册是顺序相关的：B是否被标记为A的重复取决于A已先行注册，
// 因此 Register 必须按提交顺序串行调用，Resolver 不做并发保护。
type Resolver struct {
	ids       []string // 注册顺序，保证扫描与分组的确定性
	registry  map[string]types.CandidateIdentifiers
	emailToID map[string]string
	phoneToID map[string]string
	now       func() time.Time
}

// Option Resolver 的配置选项
type Option func(*Resolver)

// WithClock 注入时钟，候选人ID由文件名和注册时间派生，测试时用固定时钟
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// NewResolver 创建一个空的去重解析器
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		registry:  make(map[string]types.CandidateIdentifiers),
		emailToID: make(map[string]string),
		phoneToID: make(map[string]string),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register 注册一份新提交并返回其候选人ID和与已注册候选人的重复判定。
// 检查顺序：邮箱精确碰撞、电话精确碰撞（跳过邮箱已命中的ID）、
// 两者都未命中时才对全部注册条目做加权相似度扫描。
// 常见的精确命中情形是O(1)，只有无精确标识可用时才退化为O(n)。
func (r *Resolver) Register(text, filename string) (string, []types.DuplicateMatch) {
	identifiers := extractor.ExtractIdentifiers(text, filename)

	var duplicates []types.DuplicateMatch
	matched := make(map[string]struct{})

	for _, email := range identifiers.Emails {
		existingID, ok := r.emailToID[email]
		if !ok {
			continue
		}
		if _, done := matched[existingID]; done {
			continue
		}
		if dup := r.compare(identifiers, existingID, types.MatchedByEmail); dup != nil {
			duplicates = append(duplicates, *dup)
			matched[existingID] = struct{}{}
		}
	}

	for _, phone := range identifiers.Phones {
		existingID, ok := r.phoneToID[phone]
		if !ok {
			continue
		}
		if _, done := matched[existingID]; done {
			continue
		}
		if dup := r.compare(identifiers, existingID, types.MatchedByPhone); dup != nil {
			duplicates = append(duplicates, *dup)
			matched[existingID] = struct{}{}
		}
	}

	if len(duplicates) == 0 {
		for _, existingID := range r.ids {
			if dup := r.compare(identifiers, existingID, types.MatchedBySimilarity); dup != nil {
				duplicates = append(duplicates, *dup)
			}
		}
	}

	candidateID := newCandidateID(filename, r.now())

	r.ids = append(r.ids, candidateID)
	r.registry[candidateID] = identifiers
	for _, email := range identifiers.Emails {
		r.emailToID[email] = candidateID
	}
	for _, phone := range identifiers.Phones {
		r.phoneToID[phone] = candidateID
	}

	return candidateID, duplicates
}

// compare 对新标识与某个已注册候选人做相似度比较，判定为重复时返回匹配记录
func (r *Resolver) compare(identifiers types.CandidateIdentifiers, existingID string, matchedBy types.MatchedBy) *types.DuplicateMatch {
	existing := r.registry[existingID]
	scores := Similarity(identifiers, existing)
	isDup, confidence, reason := classify(scores)
	if !isDup {
		return nil
	}
	return &types.DuplicateMatch{
		CandidateID: existingID,
		Filename:    existing.Filename,
		Confidence:  confidence,
		Reason:      reason,
		MatchedBy:   matchedBy,
	}
}

// GroupDuplicates 对最终注册表做独立的第二遍分组：
// 仅通过共享邮箱或共享电话的传递连通关系分组，不重放 Register 的完整相似度规则。
// 这意味着仅凭姓名/教育/经历相似被标记的一对不会进入最终合并分组，
// 是有意保留的简化（相似度判定留在逐次注册的诊断结果里）。
func (r *Resolver) GroupDuplicates() [][]types.GroupMember {
	emailOwners := make(map[string][]string)
	phoneOwners := make(map[string][]string)
	for _, id := range r.ids {
		identifiers := r.registry[id]
		for _, email := range identifiers.Emails {
			emailOwners[email] = append(emailOwners[email], id)
		}
		for _, phone := range identifiers.Phones {
			phoneOwners[phone] = append(phoneOwners[phone], id)
		}
	}

	var groups [][]types.GroupMember
	visited := make(map[string]struct{})

	for _, seed := range r.ids {
		if _, ok := visited[seed]; ok {
			continue
		}
		visited[seed] = struct{}{}

		group := []types.GroupMember{{CandidateID: seed, Filename: r.registry[seed].Filename}}
		queue := []string{seed}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			identifiers := r.registry[current]
			var linked []string
			for _, email := range identifiers.Emails {
				linked = append(linked, emailOwners[email]...)
			}
			for _, phone := range identifiers.Phones {
				linked = append(linked, phoneOwners[phone]...)
			}

			for _, other := range linked {
				if _, ok := visited[other]; ok {
					continue
				}
				visited[other] = struct{}{}
				group = append(group, types.GroupMember{CandidateID: other, Filename: r.registry[other].Filename})
				queue = append(queue, other)
			}
		}

		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups
}

// Len 返回已注册候选人数
func (r *Resolver) Len() int {
	return len(r.ids)
}

// Identifiers 按候选人ID取出注册的标识
func (r *Resolver) Identifiers(candidateID string) (types.CandidateIdentifiers, bool) {
	identifiers, ok := r.registry[candidateID]
	return identifiers, ok
}

// newCandidateID 由文件名和注册时间派生12位十六进制候选人ID
func newCandidateID(filename string, at time.Time) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s", filename, at.Format(time.RFC3339Nano))))
	return hex.EncodeToString(sum[:])[:12]
}
