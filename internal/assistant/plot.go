package assistant

import (
	"fmt"

	"github.com/abhisek/calctutor/internal/symbolic"
)

// PlotSamples is the number of points sampled across the plot range.
const PlotSamples = 400

// Figure is a single 2-D line plot ready for rendering.
type Figure struct {
	X, Y   []float64
	Title  string
	XLabel string
	YLabel string
	Legend string
	Grid   bool
}

// Linspace returns n evenly spaced values from lo to hi inclusive. Bounds
// are used as given; lo > hi yields a descending sequence.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = lo
		return xs
	}
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// Plot samples expr over [lo, hi] and returns the figure. Values where the
// expression is undefined are kept as NaN or ±Inf. On failure the figure is
// nil and the error is a *CalcError.
func (a *Assistant) Plot(expr, variable string, lo, hi float64) (*Figure, error) {
	const op = "plot"
	e, err := symbolic.Parse(expr, variable)
	if err != nil {
		return nil, a.fail(op, expr, err).Err
	}
	xs := Linspace(lo, hi, PlotSamples)
	ys, err := symbolic.EvalSlice(e, variable, xs)
	if err != nil {
		return nil, a.fail(op, expr, err).Err
	}
	fx := fmt.Sprintf("f(%s)", variable)
	return &Figure{
		X:      xs,
		Y:      ys,
		Title:  fmt.Sprintf("Graph of %s = %s", fx, expr),
		XLabel: variable,
		YLabel: fx,
		Legend: fmt.Sprintf("%s = %s", fx, expr),
		Grid:   true,
	}, nil
}
