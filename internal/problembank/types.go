package problembank

import "fmt"

// Difficulty is the closed set of practice difficulty tags.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists every tag in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty returns the tag named s.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) String() string { return string(d) }

// Problem is one practice record. Records are immutable once loaded.
type Problem struct {
	// Question is the prompt shown to the learner.
	Question string `json:"question" yaml:"question"`

	// Answer is compared verbatim against the learner's trimmed input.
	// It is never normalized.
	Answer string `json:"answer" yaml:"answer"`

	// Difficulty is one of easy, medium or hard.
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`

	// Solution is the worked explanation revealed on request.
	Solution string `json:"solution" yaml:"solution"`
}

// Fallback returns the fixed problem served when the bank has nothing at
// the requested difficulty. The content never changes; only the difficulty
// tag follows the request so the record is consistent with what was asked.
func Fallback(d Difficulty) Problem {
	return Problem{
		Question:   "compute the derivative of x² at x=2",
		Answer:     "4",
		Difficulty: d,
		Solution:   "power rule",
	}
}

// IsFallback reports whether p carries the fallback content.
func IsFallback(p Problem) bool {
	f := Fallback(p.Difficulty)
	return p == f
}
