package problembank

import "fmt"

// ValidationError describes why a loaded record was rejected.
type ValidationError struct {
	Index   int    // position of the record in the source file
	Message string // human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("problem %d: %s", e.Index, e.Message)
}

// Validate checks the shape of one record.
func Validate(i int, p Problem) *ValidationError {
	if p.Question == "" {
		return &ValidationError{Index: i, Message: "missing question"}
	}
	if p.Answer == "" {
		return &ValidationError{Index: i, Message: "missing answer"}
	}
	if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
		return &ValidationError{Index: i, Message: err.Error()}
	}
	return nil
}
