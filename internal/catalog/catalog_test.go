package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltin(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err, "内置规则表应能加载")

	assert.NotEmpty(t, cat.Skills, "技能变体表不应为空")
	assert.NotEmpty(t, cat.Certifications, "证书规则表不应为空")
	assert.NotEmpty(t, cat.Learning.Tiers, "学习平台层级不应为空")
	assert.NotEmpty(t, cat.Conferences.Speaking.Patterns, "演讲模式不应为空")
	assert.NotEmpty(t, cat.Content, "内容创作规则表不应为空")
	assert.NotEmpty(t, cat.Keywords.LeadershipKeywords, "领导力关键词不应为空")

	hasHighValue := false
	for _, category := range cat.Certifications {
		if category.HighValue {
			hasHighValue = true
		}
	}
	assert.True(t, hasHighValue, "应存在高价值证书类别")
}

func TestLoadDirOverride(t *testing.T) {
	dir := t.TempDir()
	override := `skills:
  - skill: cobol
    variations: [cobol, cobol85]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, skillsFile), []byte(override), 0o644))

	cat, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Len(t, cat.Skills, 1, "覆盖文件应整体替换对应规则表")
	assert.Equal(t, "cobol", cat.Skills[0].Skill)
	assert.NotEmpty(t, cat.Certifications, "未覆盖的规则表应回退到内置数据")
}

func TestLoadDirMissingFilesFallBack(t *testing.T) {
	cat, err := LoadDir(t.TempDir())
	require.NoError(t, err, "空覆盖目录应完全回退到内置规则表")
	assert.NotEmpty(t, cat.Skills)
}

func TestLoadDirBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, keywordsFile), []byte("{{not yaml"), 0o644))

	_, err := LoadDir(dir)
	assert.Error(t, err, "损坏的覆盖文件应报错而非静默回退")
}

func TestVariationsFor(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	variations := cat.VariationsFor("kubernetes")
	assert.Contains(t, variations, "k8s", "规范名应查到变体表")

	variations = cat.VariationsFor("senior python developer")
	assert.Contains(t, variations, "python", "含技能名的长串应按子串命中")

	assert.Nil(t, cat.VariationsFor("underwater basket weaving"), "未知技能应返回nil")
}
