// Package assistant is the calculus tutor's core: it owns the knowledge text
// and the problem bank and answers derivative, integral, plot and practice
// requests. An Assistant is built once at startup and is read-only after
// that; the presentation layer passes it explicitly to every screen.
package assistant

import (
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/calctutor/internal/problembank"
)

// Default resource locations, relative to the working directory.
const (
	DefaultKnowledgePath = "knowledge_base.md"
	DefaultProblemsPath  = "math_problems.json"
)

// DefaultKnowledge is shown when the knowledge file cannot be read.
const DefaultKnowledge = "Default knowledge base"

// DefaultVariable is the free symbol used when the user gives none.
const DefaultVariable = "x"

// Config holds the assistant's resource locations.
type Config struct {
	KnowledgePath string
	ProblemsPath  string

	// Rand drives problem selection. Nil means a time-seeded source.
	Rand *rand.Rand
}

// DefaultConfig returns the default resource locations.
func DefaultConfig() Config {
	return Config{
		KnowledgePath: DefaultKnowledgePath,
		ProblemsPath:  DefaultProblemsPath,
	}
}

// Assistant answers calculus requests against its loaded resources.
type Assistant struct {
	knowledge string
	bank      *problembank.Bank
	rng       *rand.Rand
	logger    *zap.Logger
}

// New loads the knowledge text and problem bank named by cfg. It never
// fails: unreadable resources are replaced by defaults and the failure is
// logged at warn level.
func New(cfg Config, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := cfg.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	a := &Assistant{rng: rng, logger: logger}
	a.knowledge = a.loadKnowledge(cfg.KnowledgePath)
	a.bank = a.loadProblems(cfg.ProblemsPath)
	return a
}

func (a *Assistant) loadKnowledge(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		a.logger.Warn("knowledge load failed, using placeholder",
			zap.String("path", path), zap.Error(err))
		return DefaultKnowledge
	}
	a.logger.Info("knowledge loaded",
		zap.String("path", path), zap.Int("bytes", len(data)))
	return string(data)
}

func (a *Assistant) loadProblems(path string) *problembank.Bank {
	bank, err := problembank.Load(path)
	if err != nil {
		a.logger.Warn("problem bank load failed, using empty bank",
			zap.String("path", path), zap.Error(err))
		return problembank.Empty()
	}
	a.logger.Info("problem bank loaded",
		zap.String("path", path), zap.Int("problems", bank.Len()))
	return bank
}

// Knowledge returns the knowledge text verbatim.
func (a *Assistant) Knowledge() string { return a.knowledge }

// Bank returns the loaded problem bank.
func (a *Assistant) Bank() *problembank.Bank { return a.bank }

// SelectProblem returns a random problem of difficulty d, or the fallback
// problem (tagged d) when the bank has none.
func (a *Assistant) SelectProblem(d problembank.Difficulty) problembank.Problem {
	p := a.bank.Pick(d, a.rng)
	if problembank.IsFallback(p) {
		a.logger.Debug("no problem at difficulty, serving fallback",
			zap.String("difficulty", d.String()))
	}
	return p
}

// CheckAnswer reports whether input answers p.
func (a *Assistant) CheckAnswer(p problembank.Problem, input string) bool {
	return problembank.CheckAnswer(input, p)
}
