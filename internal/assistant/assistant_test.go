package assistant

import (
	"errors"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/calctutor/internal/problembank"
	"github.com/abhisek/calctutor/internal/symbolic"
)

const knowledgeText = "# Derivatives\nPower rule: d/dx x^n = n*x^(n-1)\n\n# Integrals\nThe POWER rule runs backwards.\n"

const bankJSON = `[
  {"question": "d/dx x^2 at x=3", "answer": "6", "difficulty": "easy", "solution": "2*x at 3"},
  {"question": "d/dx x^3 at x=1", "answer": "3", "difficulty": "easy", "solution": "3*x**2 at 1"},
  {"question": "integrate 2*x from 0 to 2", "answer": "4", "difficulty": "medium", "solution": "x**2"}
]`

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()
	dir := t.TempDir()
	kp := filepath.Join(dir, "knowledge_base.md")
	pp := filepath.Join(dir, "math_problems.json")
	require.NoError(t, os.WriteFile(kp, []byte(knowledgeText), 0o644))
	require.NoError(t, os.WriteFile(pp, []byte(bankJSON), 0o644))
	return New(Config{
		KnowledgePath: kp,
		ProblemsPath:  pp,
		Rand:          rand.New(rand.NewPCG(7, 11)),
	}, zap.NewNop())
}

func TestDifferentiate(t *testing.T) {
	a := newTestAssistant(t)

	r := a.Differentiate("x**2", "x")
	require.True(t, r.OK())
	assert.Contains(t, r.Text(), "2*x")
	assert.Equal(t, "f(x) = x**2\n\nf'(x) = 2*x", r.Text())

	r = a.Differentiate("x**2 + 3*x + 1", "x")
	assert.Equal(t, "f(x) = x**2 + 3*x + 1\n\nf'(x) = 2*x + 3", r.Value)
}

func TestIntegrate(t *testing.T) {
	a := newTestAssistant(t)

	r := a.Integrate("2*x + 1", "x")
	require.True(t, r.OK())
	assert.Contains(t, r.Text(), "x**2 + x")
	assert.Contains(t, r.Text(), "+ C")
	assert.Equal(t, "f(x) = 2*x + 1\n\n∫f(x)dx = x**2 + x + C", r.Value)
}

func TestCalculus_Errors(t *testing.T) {
	a := newTestAssistant(t)

	tests := []struct {
		name string
		run  func() Result
		kind ErrKind
	}{
		{"unmatched paren", func() Result { return a.Differentiate("(x + 1", "x") }, ErrKindParse},
		{"empty expression", func() Result { return a.Differentiate("", "x") }, ErrKindParse},
		{"bad variable", func() Result { return a.Differentiate("x", "2y") }, ErrKindParse},
		{"integral parse", func() Result { return a.Integrate("x +* 2", "x") }, ErrKindParse},
		{"no rule", func() Result { return a.Integrate("exp(x**2)", "x") }, ErrKindEvaluation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.run()
			require.False(t, r.OK())
			assert.Empty(t, r.Value)
			assert.Equal(t, tt.kind, r.Kind())
			assert.True(t, strings.HasPrefix(r.Text(), "error: "), r.Text())

			var ce *CalcError
			require.True(t, errors.As(r.Err, &ce))
		})
	}

	r := a.Integrate("exp(x**2)", "x")
	var ue *symbolic.UnsupportedError
	assert.True(t, errors.As(r.Err, &ue))
}

func TestCalculus_Idempotent(t *testing.T) {
	a := newTestAssistant(t)
	for _, expr := range []string{"x**3*sin(x)", "x*exp(x)", "(x", "1/x"} {
		assert.Equal(t, a.Differentiate(expr, "x").Text(), a.Differentiate(expr, "x").Text())
		assert.Equal(t, a.Integrate(expr, "x").Text(), a.Integrate(expr, "x").Text())
	}
}

func TestPlot(t *testing.T) {
	a := newTestAssistant(t)

	fig, err := a.Plot("sin(x)", "x", -10, 10)
	require.NoError(t, err)
	require.NotNil(t, fig)
	assert.Len(t, fig.X, PlotSamples)
	assert.Len(t, fig.Y, PlotSamples)
	assert.Equal(t, -10.0, fig.X[0])
	assert.Equal(t, 10.0, fig.X[PlotSamples-1])
	assert.Equal(t, "x", fig.XLabel)
	assert.Equal(t, "f(x)", fig.YLabel)
	assert.Equal(t, "f(x) = sin(x)", fig.Legend)
	assert.True(t, fig.Grid)
	assert.InDelta(t, math.Sin(-10), fig.Y[0], 1e-12)
}

func TestPlot_ReversedBounds(t *testing.T) {
	a := newTestAssistant(t)
	fig, err := a.Plot("x", "x", 5, -5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fig.X[0])
	assert.Equal(t, -5.0, fig.X[PlotSamples-1])
	assert.Greater(t, fig.X[0], fig.X[1])
}

func TestPlot_NonFiniteKept(t *testing.T) {
	a := newTestAssistant(t)
	// 0 is not on the 400-point grid over [-10, 10], so use [0, 1].
	fig, err := a.Plot("1/x", "x", 0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(fig.Y[0], 1))
	assert.Equal(t, 1.0, fig.Y[PlotSamples-1])
}

func TestPlot_Errors(t *testing.T) {
	a := newTestAssistant(t)

	fig, err := a.Plot("sin(x", "x", -10, 10)
	assert.Nil(t, fig)
	var ce *CalcError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrKindParse, ce.Kind)
	assert.Equal(t, "plot", ce.Op)

	fig, err = a.Plot("a*x", "x", -10, 10)
	assert.Nil(t, fig)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrKindEvaluation, ce.Kind)
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1}, Linspace(0, 1, 3))
	assert.Equal(t, []float64{2}, Linspace(2, 9, 1))
	assert.Nil(t, Linspace(0, 1, 0))
}

func TestSelectProblem(t *testing.T) {
	a := newTestAssistant(t)
	for range 30 {
		p := a.SelectProblem(problembank.Easy)
		assert.Equal(t, problembank.Easy, p.Difficulty)
		assert.NotEqual(t, "4", p.Answer)
	}

	hard := a.SelectProblem(problembank.Hard)
	assert.Equal(t, "compute the derivative of x² at x=2", hard.Question)
	assert.Equal(t, hard, a.SelectProblem(problembank.Hard))
}

func TestSelectProblem_UsesEveryRecord(t *testing.T) {
	a := newTestAssistant(t)
	seen := map[string]bool{}
	for range 100 {
		seen[a.SelectProblem(problembank.Easy).Answer] = true
	}
	assert.Equal(t, map[string]bool{"6": true, "3": true}, seen)
}

func TestCheckAnswer(t *testing.T) {
	a := newTestAssistant(t)
	p := problembank.Problem{Question: "q", Answer: "6", Difficulty: problembank.Easy}
	assert.True(t, a.CheckAnswer(p, " 6 "))
	assert.False(t, a.CheckAnswer(p, "6.0"))
}

func TestNew_MissingResources(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dir := t.TempDir()
	a := New(Config{
		KnowledgePath: filepath.Join(dir, "missing.md"),
		ProblemsPath:  filepath.Join(dir, "missing.json"),
	}, zap.New(core))

	assert.Equal(t, DefaultKnowledge, a.Knowledge())
	assert.Equal(t, 0, a.Bank().Len())
	assert.Equal(t, 2, logs.Len())

	p := a.SelectProblem(problembank.Medium)
	assert.True(t, problembank.IsFallback(p))
}

func TestNew_MalformedBank(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dir := t.TempDir()
	pp := filepath.Join(dir, "math_problems.json")
	require.NoError(t, os.WriteFile(pp, []byte(`[{"question": "q", "answer": "1", "difficulty": "easy"}, {"oops": 1}]`), 0o644))

	a := New(Config{KnowledgePath: filepath.Join(dir, "k.md"), ProblemsPath: pp}, zap.New(core))
	assert.Equal(t, 0, a.Bank().Len())
	assert.Equal(t, 1, logs.FilterMessage("problem bank load failed, using empty bank").Len())
}

func TestKnowledge(t *testing.T) {
	a := newTestAssistant(t)
	assert.Equal(t, knowledgeText, a.Knowledge())
}

func TestSearchKnowledge(t *testing.T) {
	a := newTestAssistant(t)

	got := a.SearchKnowledge("power rule")
	require.Len(t, got, 2)
	assert.Equal(t, Match{Line: 2, Text: "Power rule: d/dx x^n = n*x^(n-1)"}, got[0])
	assert.Equal(t, 5, got[1].Line)

	assert.Empty(t, a.SearchKnowledge("   "))
	assert.Empty(t, a.SearchKnowledge("laplace"))
}
