package problembank

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {"question": "d/dx x^3", "answer": "3*x**2", "difficulty": "easy", "solution": "power rule"},
  {"question": "d/dx sin(x)", "answer": "cos(x)", "difficulty": "easy", "solution": "table"},
  {"question": "integrate 2x", "answer": "x**2", "difficulty": "medium", "solution": "power rule"}
]`

const sampleYAML = `
- question: d/dx e^x
  answer: exp(x)
  difficulty: hard
  solution: exp is its own derivative
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	b, err := Load(writeFile(t, "bank.json", sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, map[Difficulty]int{Easy: 2, Medium: 1}, b.Counts())
}

func TestLoad_YAML(t *testing.T) {
	b, err := Load(writeFile(t, "bank.yaml", sampleYAML))
	require.NoError(t, err)
	require.Equal(t, 1, b.Len())
	assert.Equal(t, Hard, b.All()[0].Difficulty)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"not json", "bank.json", "{not json"},
		{"object instead of array", "bank.json", `{"question": "q"}`},
		{"unknown difficulty", "bank.json", `[{"question": "q", "answer": "a", "difficulty": "extreme"}]`},
		{"missing answer", "bank.json", `[{"question": "q", "difficulty": "easy"}]`},
		{"bad yaml", "bank.yml", "- question: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_NoPartialBank(t *testing.T) {
	content := `[
	  {"question": "good", "answer": "1", "difficulty": "easy"},
	  {"question": "bad", "answer": "2", "difficulty": "trivial"}
	]`
	_, err := Load(writeFile(t, "bank.json", content))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Index)
}

func TestPick_MatchesDifficulty(t *testing.T) {
	b, err := Decode([]byte(sampleJSON), ".json")
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		p := b.Pick(Easy, rng)
		assert.Equal(t, Easy, p.Difficulty)
		assert.False(t, IsFallback(p))
	}
}

func TestPick_Fallback(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, d := range Difficulties {
		got := Empty().Pick(d, rng)
		assert.Equal(t, "compute the derivative of x² at x=2", got.Question)
		assert.Equal(t, "4", got.Answer)
		assert.Equal(t, "power rule", got.Solution)
		assert.Equal(t, d, got.Difficulty)
		assert.Equal(t, got, Empty().Pick(d, rng))
	}

	b := New([]Problem{{Question: "q", Answer: "a", Difficulty: Easy}})
	assert.True(t, IsFallback(b.Pick(Hard, rng)))
}

func TestCheckAnswer(t *testing.T) {
	p := Problem{Answer: "4"}
	tests := []struct {
		input string
		want  bool
	}{
		{"4", true},
		{"  4\t", true},
		{"\n4\n", true},
		{"4.0", false},
		{"04", false},
		{"", false},
		{"four", false},
	}
	for _, tc := range tests {
		if got := CheckAnswer(tc.input, p); got != tc.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}

	// The stored answer is not trimmed.
	padded := Problem{Answer: " 4"}
	assert.False(t, CheckAnswer(" 4", padded))
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDifficulty("Easy")
	assert.Error(t, err)
}
