package symbolic

import "sort"

// Compile turns e into a numeric function of v. It fails when e has free
// symbols other than v, since those have no value to plot with.
func Compile(e Expr, v string) (func(float64) float64, error) {
	syms := FreeSymbols(e)
	delete(syms, v)
	if len(syms) > 0 {
		names := make([]string, 0, len(syms))
		for name := range syms {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, &EvalError{Expr: e.String(), Symbol: names[0]}
	}
	return func(x float64) float64 {
		return e.Eval(map[string]float64{v: x})
	}, nil
}

// EvalSlice evaluates e at every point of xs. Non-finite results (division
// by zero, log of a negative number) are kept as IEEE values.
func EvalSlice(e Expr, v string, xs []float64) ([]float64, error) {
	f, err := Compile(e, v)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys, nil
}
