package assistant

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/calctutor/internal/symbolic"
)

// Differentiate parses expr as a function of variable and returns its first
// derivative formatted as
//
//	f(x) = <expr>
//
//	f'(x) = <derivative>
func (a *Assistant) Differentiate(expr, variable string) Result {
	const op = "differentiate"
	e, err := symbolic.Parse(expr, variable)
	if err != nil {
		return a.fail(op, expr, err)
	}
	d := symbolic.Diff(e, variable)
	return Result{Value: fmt.Sprintf("f(%s) = %s\n\nf'(%s) = %s", variable, expr, variable, d)}
}

// Integrate parses expr as a function of variable and returns an indefinite
// integral formatted as
//
//	f(x) = <expr>
//
//	∫f(x)dx = <integral> + C
func (a *Assistant) Integrate(expr, variable string) Result {
	const op = "integrate"
	e, err := symbolic.Parse(expr, variable)
	if err != nil {
		return a.fail(op, expr, err)
	}
	F, err := symbolic.Integrate(e, variable)
	if err != nil {
		return a.fail(op, expr, err)
	}
	return Result{Value: fmt.Sprintf("f(%s) = %s\n\n∫f(%s)d%s = %s + C", variable, expr, variable, variable, F)}
}

func (a *Assistant) fail(op, expr string, err error) Result {
	ce := newCalcError(op, err)
	a.logger.Debug("calculation failed",
		zap.String("op", op),
		zap.String("expr", expr),
		zap.String("kind", string(ce.Kind)),
		zap.Error(err))
	return Result{Err: ce}
}
