package symbolic

// maxIntegrateDepth bounds the recursion of expansion and integration by
// parts.
const maxIntegrateDepth = 12

// maxExpandPower is the largest power of a sum Expand multiplies out.
const maxExpandPower = 8

// Diff differentiates e with respect to v.
func Diff(e Expr, v string) Expr { return e.Diff(v) }

// Integrate returns an antiderivative of e with respect to v, without the
// constant of integration. It covers polynomials, linear substitutions into
// the elementary functions, products of a polynomial with exp, sin, cos or
// log (by parts) and a handful of standard forms. Anything else returns an
// *UnsupportedError.
func Integrate(e Expr, v string) (Expr, error) {
	r, ok := integrate(e, v, 0)
	if !ok {
		return nil, &UnsupportedError{Op: "integrate", Expr: e.String()}
	}
	return r, nil
}

func integrate(e Expr, v string, depth int) (Expr, bool) {
	if depth > maxIntegrateDepth {
		return nil, false
	}
	x := Symbol(v)
	if freeOf(e, v) {
		return MulOf(e, x), true
	}

	switch t := e.(type) {
	case *Sym:
		return MulOf(half, PowOf(x, Int(2))), true
	case *Add:
		parts := make([]Expr, len(t.terms))
		for i, term := range t.terms {
			r, ok := integrate(term, v, depth+1)
			if !ok {
				return nil, false
			}
			parts[i] = r
		}
		return AddOf(parts...), true
	case *Mul:
		return integrateMul(t, v, depth)
	case *Pow:
		return integratePow(t, v, depth)
	case *Func:
		return integrateFunc(t, v)
	}
	return nil, false
}

func integrateMul(m *Mul, v string, depth int) (Expr, bool) {
	var consts, deps []Expr
	for _, f := range m.factors {
		if freeOf(f, v) {
			consts = append(consts, f)
		} else {
			deps = append(deps, f)
		}
	}
	coeff := MulOf(consts...)
	if len(deps) == 1 {
		r, ok := integrate(deps[0], v, depth+1)
		if !ok {
			return nil, false
		}
		return MulOf(coeff, r), true
	}

	if ex := Expand(m); !Equal(ex, m) {
		if r, ok := integrate(ex, v, depth+1); ok {
			return r, true
		}
	}
	if r, ok := byParts(deps, v, depth); ok {
		return MulOf(coeff, r), true
	}
	return nil, false
}

func integratePow(p *Pow, v string, depth int) (Expr, bool) {
	x := Symbol(v)
	if freeOf(p.exp, v) {
		if a, ok := linearCoeff(p.base, v); ok {
			if isNum(p.exp, -1) {
				return MulOf(FuncOf("log", p.base), PowOf(a, Int(-1))), true
			}
			n1 := AddOf(p.exp, Int(1))
			return MulOf(PowOf(p.base, n1), PowOf(MulOf(a, n1), Int(-1))), true
		}
		if isNum(p.exp, -1) && Equal(p.base, AddOf(PowOf(x, Int(2)), Int(1))) {
			return FuncOf("atan", x), true
		}
		if f, ok := p.base.(*Func); ok {
			if r, ok := integrateTrigPower(f, p.exp, v); ok {
				return r, true
			}
		}
		if _, ok := p.base.(*Add); ok {
			if n, ok := p.exp.(*Num); ok && n.IsInteger() && n.Sign() > 0 {
				if ex := Expand(p); !Equal(ex, p) {
					return integrate(ex, v, depth+1)
				}
			}
		}
		return nil, false
	}
	if freeOf(p.base, v) {
		if a, ok := linearCoeff(p.exp, v); ok {
			return MulOf(p, PowOf(MulOf(a, FuncOf("log", p.base)), Int(-1))), true
		}
	}
	return nil, false
}

// integrateTrigPower covers sin(u)**2, cos(u)**2, cos(u)**-2 and tan(u)**2
// for linear u.
func integrateTrigPower(f *Func, exp Expr, v string) (Expr, bool) {
	a, ok := linearCoeff(f.arg, v)
	if !ok {
		return nil, false
	}
	x := Symbol(v)
	inv := PowOf(a, Int(-1))
	twice := FuncOf("sin", MulOf(Int(2), f.arg))
	switch {
	case f.name == "sin" && isNum(exp, 2):
		return AddOf(MulOf(half, x), MulOf(Rat(-1, 4), inv, twice)), true
	case f.name == "cos" && isNum(exp, 2):
		return AddOf(MulOf(half, x), MulOf(Rat(1, 4), inv, twice)), true
	case f.name == "cos" && isNum(exp, -2):
		return MulOf(inv, FuncOf("tan", f.arg)), true
	case f.name == "tan" && isNum(exp, 2):
		return AddOf(MulOf(inv, FuncOf("tan", f.arg)), MulOf(Int(-1), x)), true
	}
	return nil, false
}

func integrateFunc(f *Func, v string) (Expr, bool) {
	a, ok := linearCoeff(f.arg, v)
	if !ok {
		return nil, false
	}
	u := f.arg
	inv := PowOf(a, Int(-1))
	switch f.name {
	case "sin":
		return MulOf(Int(-1), inv, FuncOf("cos", u)), true
	case "cos":
		return MulOf(inv, FuncOf("sin", u)), true
	case "tan":
		return MulOf(Int(-1), inv, FuncOf("log", FuncOf("cos", u))), true
	case "exp":
		return MulOf(inv, f), true
	case "sinh":
		return MulOf(inv, FuncOf("cosh", u)), true
	case "cosh":
		return MulOf(inv, FuncOf("sinh", u)), true
	case "tanh":
		return MulOf(inv, FuncOf("log", FuncOf("cosh", u))), true
	case "log":
		return MulOf(inv, AddOf(MulOf(u, f), MulOf(Int(-1), u))), true
	case "atan":
		return MulOf(inv, AddOf(
			MulOf(u, f),
			MulOf(Rat(-1, 2), FuncOf("log", AddOf(PowOf(u, Int(2)), Int(1)))),
		)), true
	case "asin":
		return MulOf(inv, AddOf(
			MulOf(u, f),
			PowOf(AddOf(Int(1), MulOf(Int(-1), PowOf(u, Int(2)))), half),
		)), true
	}
	return nil, false
}

// byParts integrates polynomial * g where g is exp, sin, cos, sinh, cosh or
// c**u of a linear argument (differentiating the polynomial) or log of a
// linear argument (integrating the polynomial).
func byParts(deps []Expr, v string, depth int) (Expr, bool) {
	g := -1
	for i, f := range deps {
		if partsCandidate(f, v) {
			if g >= 0 {
				return nil, false
			}
			g = i
		}
	}
	if g < 0 {
		return nil, false
	}
	others := make([]Expr, 0, len(deps)-1)
	for i, f := range deps {
		if i != g {
			others = append(others, f)
		}
	}
	poly := MulOf(others...)
	if !isPolynomial(poly, v) {
		return nil, false
	}

	if f, ok := deps[g].(*Func); ok && f.name == "log" {
		// ∫p*log(u) = P*log(u) - ∫P*u'/u
		P, ok := integrate(Expand(poly), v, depth+1)
		if !ok {
			return nil, false
		}
		rest, ok := integrate(Expand(MulOf(P, f.arg.Diff(v), PowOf(f.arg, Int(-1)))), v, depth+1)
		if !ok {
			return nil, false
		}
		return AddOf(MulOf(P, f), MulOf(Int(-1), rest)), true
	}

	// ∫p*g = p*G - ∫p'*G
	G, ok := integrate(deps[g], v, depth+1)
	if !ok {
		return nil, false
	}
	rest, ok := integrate(Expand(MulOf(poly.Diff(v), G)), v, depth+1)
	if !ok {
		return nil, false
	}
	return AddOf(MulOf(poly, G), MulOf(Int(-1), rest)), true
}

func partsCandidate(e Expr, v string) bool {
	switch t := e.(type) {
	case *Func:
		switch t.name {
		case "exp", "sin", "cos", "sinh", "cosh", "log":
			_, ok := linearCoeff(t.arg, v)
			return ok
		}
	case *Pow:
		if freeOf(t.base, v) {
			_, ok := linearCoeff(t.exp, v)
			return ok
		}
	}
	return false
}

// linearCoeff returns a when u = a*v + b with a non-zero and free of v.
func linearCoeff(u Expr, v string) (Expr, bool) {
	d := u.Diff(v)
	if !freeOf(d, v) || isNum(d, 0) {
		return nil, false
	}
	return d, true
}

// isPolynomial reports whether e is a polynomial in v with constant
// coefficients.
func isPolynomial(e Expr, v string) bool {
	switch t := e.(type) {
	case *Add:
		for _, term := range t.terms {
			if !isPolynomial(term, v) {
				return false
			}
		}
		return true
	case *Mul:
		for _, f := range t.factors {
			if !isPolynomial(f, v) {
				return false
			}
		}
		return true
	case *Pow:
		if freeOf(t, v) {
			return true
		}
		n, ok := t.exp.(*Num)
		return ok && n.IsInteger() && n.Sign() > 0 && isPolynomial(t.base, v)
	}
	return freeOf(e, v) || isSym(e, v)
}

func isSym(e Expr, v string) bool {
	s, ok := e.(*Sym)
	return ok && s.name == v
}

// Expand multiplies out products of sums and small positive integer powers
// of sums.
func Expand(e Expr) Expr {
	switch t := e.(type) {
	case *Add:
		terms := make([]Expr, len(t.terms))
		for i, term := range t.terms {
			terms[i] = Expand(term)
		}
		return AddOf(terms...)
	case *Mul:
		return expandProduct(t.factors)
	case *Pow:
		sum, ok := t.base.(*Add)
		n, intExp := t.exp.(*Num)
		if !ok || !intExp || !n.IsInteger() || n.Sign() <= 0 || !n.val.Num().IsInt64() {
			return e
		}
		k := n.val.Num().Int64()
		if k > maxExpandPower {
			return e
		}
		factors := make([]Expr, k)
		for i := range factors {
			factors[i] = sum
		}
		return expandProduct(factors)
	}
	return e
}

func expandProduct(factors []Expr) Expr {
	products := []Expr{Int(1)}
	for _, f := range factors {
		f = Expand(f)
		parts := []Expr{f}
		if sum, ok := f.(*Add); ok {
			parts = sum.terms
		}
		next := make([]Expr, 0, len(products)*len(parts))
		for _, p := range products {
			for _, q := range parts {
				next = append(next, MulOf(p, q))
			}
		}
		products = next
	}
	return AddOf(products...)
}
