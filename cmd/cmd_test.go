package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProblems = `[
  {"question": "d/dx of x**3", "answer": "3*x**2", "difficulty": "easy", "solution": "power rule"},
  {"question": "integrate 2*x from 0 to 3", "answer": "9", "difficulty": "medium", "solution": "x**2 from 0 to 3"}
]`

const testKnowledge = "# Derivatives\nThe power rule: d/dx x**n = n*x**(n-1)\n# Integrals\nReverse the POWER rule."

// run executes the root command with logging disabled and resources in a
// temp dir.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	kb := filepath.Join(dir, "knowledge_base.md")
	probs := filepath.Join(dir, "math_problems.json")
	require.NoError(t, os.WriteFile(kb, []byte(testKnowledge), 0o644))
	require.NoError(t, os.WriteFile(probs, []byte(testProblems), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-file", "-", "--knowledge", kb, "--problems", probs}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "calctutor (devel)\n", out)
}

func TestDerive(t *testing.T) {
	out, err := run(t, "derive", "x**2 + 3*x + 1")
	require.NoError(t, err)
	assert.Equal(t, "f(x) = x**2 + 3*x + 1\n\nf'(x) = 2*x + 3\n", out)
}

func TestDerive_ParseError(t *testing.T) {
	_, err := run(t, "derive", "x**")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

func TestDerive_EmptyVariable(t *testing.T) {
	_, err := run(t, "derive", "x", "--var", " ")
	require.Error(t, err)
}

func TestIntegrate(t *testing.T) {
	out, err := run(t, "integrate", "2*x + 1")
	require.NoError(t, err)
	assert.Equal(t, "f(x) = 2*x + 1\n\n∫f(x)dx = x**2 + x + C\n", out)
}

func TestExplainWithoutProvider(t *testing.T) {
	for _, name := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY", "CALCTUTOR_LLM_PROVIDER"} {
		t.Setenv(name, "")
	}
	out, err := run(t, "derive", "x**2", "--explain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM provider")
	assert.Contains(t, out, "f'(x) = 2*x", "the result is printed before the explanation is attempted")
}

func TestPlot(t *testing.T) {
	out, err := run(t, "plot", "x**2", "--from", "-2", "--to", "2", "--width", "40", "--height", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "x**2")
	assert.Contains(t, out, "-2")
}

func TestPlot_ParseError(t *testing.T) {
	_, err := run(t, "plot", "sin(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plot: parse error")
}

func TestProblems(t *testing.T) {
	out, err := run(t, "problems")
	require.NoError(t, err)
	assert.Contains(t, out, "d/dx of x**3")
	assert.Contains(t, out, "2 problems (easy 1, medium 1, hard 0)")

	out, err = run(t, "problems", "--difficulty", "medium")
	require.NoError(t, err)
	assert.NotContains(t, out, "d/dx of x**3")
	assert.Contains(t, out, "integrate 2*x")

	_, err = run(t, "problems", "--difficulty", "extreme")
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "power")
	require.NoError(t, err)
	assert.Contains(t, out, "    2: The power rule")
	assert.Contains(t, out, "    4: Reverse the POWER rule.")
	assert.Contains(t, out, "2 matches")

	out, err = run(t, "search", "limit")
	require.NoError(t, err)
	assert.Contains(t, out, `No matches for "limit".`)
}

func TestResolveSettings(t *testing.T) {
	t.Setenv(envProblems, "/data/bank.yaml")
	t.Setenv(envKnowledge, "")

	root := newRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--knowledge", "notes.md"}))
	s := resolveSettings(root)
	assert.Equal(t, "notes.md", s.knowledge, "flag wins")
	assert.Equal(t, "/data/bank.yaml", s.problems, "env is next")
	assert.Equal(t, "info", s.logLevel, "default last")
}
