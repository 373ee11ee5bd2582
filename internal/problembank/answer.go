package problembank

import "strings"

// CheckAnswer compares the learner's input against the stored answer.
// Only surrounding whitespace is trimmed from the input; the stored answer
// is used as-is, so "4.0" does not match "4".
func CheckAnswer(input string, p Problem) bool {
	return strings.TrimSpace(input) == p.Answer
}
