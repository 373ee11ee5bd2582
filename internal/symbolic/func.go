package symbolic

import "math"

// Func is an elementary function applied to one argument.
type Func struct {
	name string
	arg  Expr
}

func (f *Func) Name() string { return f.name }
func (f *Func) Arg() Expr    { return f.arg }

// functionNames lists every function the parser accepts. sqrt and ln are
// aliases folded into Pow and log by FuncOf.
var functionNames = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"exp": true, "log": true, "ln": true,
	"sqrt": true, "abs": true,
}

// IsFunction reports whether name is a known function.
func IsFunction(name string) bool { return functionNames[name] }

// FuncOf returns name(arg) with the obvious identities applied.
func FuncOf(name string, arg Expr) Expr {
	if arg == NaN {
		return NaN
	}
	switch name {
	case "sqrt":
		return PowOf(arg, Rat(1, 2))
	case "ln":
		name = "log"
	}

	switch name {
	case "exp":
		if isNum(arg, 0) {
			return Int(1)
		}
		if inner, ok := arg.(*Func); ok && inner.name == "log" {
			return inner.arg
		}
	case "log":
		if isNum(arg, 1) {
			return Int(0)
		}
		if arg == E {
			return Int(1)
		}
		if inner, ok := arg.(*Func); ok && inner.name == "exp" {
			return inner.arg
		}
	case "sin", "tan", "asin", "atan", "sinh", "tanh":
		if isNum(arg, 0) {
			return Int(0)
		}
	case "cos", "cosh":
		if isNum(arg, 0) {
			return Int(1)
		}
	case "abs":
		if n, ok := arg.(*Num); ok {
			if n.Sign() < 0 {
				return numNeg(n)
			}
			return n
		}
	}
	return &Func{name: name, arg: arg}
}

// outerDiff is the derivative of the function itself, evaluated at u.
func (f *Func) outerDiff() Expr {
	u := f.arg
	switch f.name {
	case "sin":
		return FuncOf("cos", u)
	case "cos":
		return MulOf(Int(-1), FuncOf("sin", u))
	case "tan":
		return AddOf(PowOf(f, Int(2)), Int(1))
	case "asin":
		return PowOf(AddOf(Int(1), MulOf(Int(-1), PowOf(u, Int(2)))), Rat(-1, 2))
	case "acos":
		return MulOf(Int(-1), PowOf(AddOf(Int(1), MulOf(Int(-1), PowOf(u, Int(2)))), Rat(-1, 2)))
	case "atan":
		return PowOf(AddOf(PowOf(u, Int(2)), Int(1)), Int(-1))
	case "sinh":
		return FuncOf("cosh", u)
	case "cosh":
		return FuncOf("sinh", u)
	case "tanh":
		return AddOf(Int(1), MulOf(Int(-1), PowOf(FuncOf("tanh", u), Int(2))))
	case "exp":
		return f
	case "log":
		return PowOf(u, Int(-1))
	case "abs":
		return MulOf(u, PowOf(f, Int(-1)))
	}
	return nil
}

func (f *Func) Diff(v string) Expr {
	inner := f.arg.Diff(v)
	if isNum(inner, 0) {
		return Int(0)
	}
	return MulOf(f.outerDiff(), inner)
}

func (f *Func) Eval(env map[string]float64) float64 {
	x := f.arg.Eval(env)
	switch f.name {
	case "sin":
		return math.Sin(x)
	case "cos":
		return math.Cos(x)
	case "tan":
		return math.Tan(x)
	case "asin":
		return math.Asin(x)
	case "acos":
		return math.Acos(x)
	case "atan":
		return math.Atan(x)
	case "sinh":
		return math.Sinh(x)
	case "cosh":
		return math.Cosh(x)
	case "tanh":
		return math.Tanh(x)
	case "exp":
		return math.Exp(x)
	case "log":
		return math.Log(x)
	case "abs":
		return math.Abs(x)
	}
	return math.NaN()
}
