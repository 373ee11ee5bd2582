package explain

// Kind selects what the tutor is asked to explain.
type Kind string

const (
	KindDerivative Kind = "derivative"
	KindIntegral   Kind = "integral"
	KindPractice   Kind = "practice"
)

// Input holds everything the tutor sees for one explanation. Derivative and
// integral requests fill Expression, Variable and Result; practice hints
// fill Question and, once revealed, Answer.
type Input struct {
	Kind       Kind
	Expression string
	Variable   string
	Result     string
	Question   string
	Answer     string
}

// Explanation is a short worked explanation.
type Explanation struct {
	Summary string
	Steps   []string
}
