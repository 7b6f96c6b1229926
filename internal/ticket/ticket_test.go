package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFieldPrecedence(t *testing.T) {
	data := []byte(`{
		"title": "fallback title",
		"position": "middle position",
		"job_title": "Senior Backend Engineer",
		"years_of_experience": "2 years",
		"experience_required": "5-8 years",
		"tech_stack": "Java",
		"required_skills": ["Python", "AWS"],
		"bonus_skills": "Terraform",
		"preferred_skills": "Kubernetes",
		"location": "Bangalore",
		"summary": "fallback summary",
		"job_description": "Own the backend platform."
	}`)

	req, err := Resolve(data)
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", req.Position, "job_title应优先于position/title")
	assert.Equal(t, "5-8 years", req.ExperienceRequired, "experience_required应优先")
	assert.Equal(t, []string{"Python", "AWS"}, req.RequiredSkills, "required_skills应优先于tech_stack")
	assert.Equal(t, []string{"Kubernetes"}, req.NiceToHave, "nice_to_have缺失时取preferred_skills")
	assert.Equal(t, "Bangalore", req.Location)
	assert.Equal(t, "Own the backend platform.", req.Description, "job_description应优先于summary")
}

func TestResolveFallbackFields(t *testing.T) {
	data := []byte(`{
		"title": "Data Engineer",
		"experience": "3+ years",
		"tech_stack": "Python, Spark; Airflow",
		"bonus_skills": "dbt",
		"description": "Build pipelines."
	}`)

	req, err := Resolve(data)
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", req.Position)
	assert.Equal(t, "3+ years", req.ExperienceRequired)
	assert.Equal(t, []string{"Python", "Spark", "Airflow"}, req.RequiredSkills, "字符串形态的技能应按分隔符拆分")
	assert.Equal(t, []string{"dbt"}, req.NiceToHave)
	assert.Equal(t, "Build pipelines.", req.Description)
}

func TestResolveInvalidJSON(t *testing.T) {
	_, err := Resolve([]byte("not json"))
	assert.Error(t, err, "非法JSON应返回错误")
}

func TestResolveEmptyObject(t *testing.T) {
	req, err := Resolve([]byte("{}"))
	require.NoError(t, err)
	assert.Empty(t, req.Position)
	assert.Empty(t, req.RequiredSkills)
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "逗号分隔",
			input: "Python, AWS, Docker",
			want:  []string{"Python", "AWS", "Docker"},
		},
		{
			name:  "混合分隔符",
			input: "Python; AWS | Docker",
			want:  []string{"Python", "AWS", "Docker"},
		},
		{
			name:  "括号别名展开",
			input: "Golang (Go), Kubernetes (k8s/kube)",
			want:  []string{"Golang", "Go", "Kubernetes", "k8s", "kube"},
		},
		{
			name:  "空片段被丢弃",
			input: "Python,, AWS,",
			want:  []string{"Python", "AWS"},
		},
		{
			name:  "空串",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.input), "技能拆分结果不符")
		})
	}
}
