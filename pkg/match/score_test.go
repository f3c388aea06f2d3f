package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		skills   []string
		expected float64
	}{
		{
			name:     "substring match against job skill count",
			keywords: []string{"react", "node"},
			skills:   []string{"React Developer", "Backend", "Node.js"},
			expected: 66.67, // 2 matches / 3 skills
		},
		{
			name:     "no keywords",
			keywords: []string{},
			skills:   []string{"Python"},
			expected: 0,
		},
		{
			name:     "empty skill list scores zero, not NaN",
			keywords: []string{"go", "postgres"},
			skills:   []string{},
			expected: 0,
		},
		{
			name:     "nil inputs",
			keywords: nil,
			skills:   nil,
			expected: 0,
		},
		{
			name:     "full match",
			keywords: []string{"go", "docker"},
			skills:   []string{"Golang", "Docker"},
			expected: 100,
		},
		{
			name:     "case insensitive",
			keywords: []string{"REACT"},
			skills:   []string{"react developer"},
			expected: 100,
		},
		{
			name:     "one keyword may satisfy several skills but counts once",
			keywords: []string{"java"},
			skills:   []string{"Java", "JavaScript"},
			expected: 50, // 1 matching keyword / 2 skills
		},
		{
			name:     "blank skills are not part of the denominator",
			keywords: []string{"go"},
			skills:   []string{"Golang", "  ", ""},
			expected: 100,
		},
		{
			name:     "more matching keywords than skills caps at 100",
			keywords: []string{"rea", "act", "eac"},
			skills:   []string{"React"},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScore(tt.keywords, tt.skills)
			assert.Equal(t, tt.expected, got.SkillsScore)
			assert.Equal(t, got.SkillsScore, got.TotalScore)
		})
	}
}

func TestComputeScoreBounds(t *testing.T) {
	cases := [][2][]string{
		{{"a", "b", "c", "d"}, {"x"}},
		{{"go"}, {"go", "go", "go"}},
		{{}, {}},
		{{"kube"}, {"Kubernetes", "Docker", "Helm"}},
		// many keywords hitting one skill must not push the ratio past 1
		{{"rea", "act", "eac", "reac"}, {"React"}},
		{{"script", "java", "type"}, {"TypeScript", "JavaScript"}},
	}
	for _, c := range cases {
		s := ComputeScore(c[0], c[1])
		assert.GreaterOrEqual(t, s.TotalScore, 0.0)
		assert.LessOrEqual(t, s.TotalScore, 100.0)
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	keywords := []string{"react", "node", "sql"}
	skills := []string{"React Developer", "Node.js", "PostgreSQL"}
	first := ComputeScore(keywords, skills)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeScore(keywords, skills))
	}
}
