// Package symbolic is the small algebra kernel behind the calculus tutor.
//
// It parses single-variable expressions, differentiates them, integrates the
// elementary cases a calculus course covers and evaluates them numerically
// for plotting. Numbers are exact rationals (math/big.Rat) and every
// constructor simplifies on construction, so an Expr value is always in its
// canonical form and String() is stable.
package symbolic

import (
	"math"
	"math/big"
)

// Expr is a node in an expression tree.
type Expr interface {
	// String renders the expression in SymPy-like syntax (`**` for powers).
	String() string

	// Diff returns the first derivative with respect to the named symbol.
	Diff(v string) Expr

	// Eval evaluates the expression with IEEE float semantics. Symbols
	// missing from env evaluate to NaN.
	Eval(env map[string]float64) float64
}

// Num is an exact rational number.
type Num struct{ val *big.Rat }

// Int returns the integer n as a Num.
func Int(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// Rat returns p/q as a Num. q must not be zero.
func Rat(p, q int64) *Num {
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

func (n *Num) Diff(string) Expr { return Int(0) }

func (n *Num) Eval(map[string]float64) float64 {
	f, _ := n.val.Float64()
	return f
}

func (n *Num) IsZero() bool { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool  { return n.val.IsInt() && n.val.Num().IsInt64() && n.val.Num().Int64() == 1 }
func (n *Num) IsNegOne() bool {
	return n.val.IsInt() && n.val.Num().IsInt64() && n.val.Num().Int64() == -1
}
func (n *Num) IsInteger() bool { return n.val.IsInt() }
func (n *Num) Sign() int       { return n.val.Sign() }

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }

// numPow raises a non-zero base to a small integer power exactly.
func numPow(base *Num, e int64) *Num {
	neg := e < 0
	if neg {
		e = -e
	}
	out := new(big.Rat).SetInt64(1)
	for i := int64(0); i < e; i++ {
		out.Mul(out, base.val)
	}
	if neg {
		out.Inv(out)
	}
	return &Num{val: out}
}

// Sym is a named symbol: the free variable or a symbolic constant such as a.
type Sym struct{ name string }

// Symbol returns the symbol with the given name.
func Symbol(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Name() string { return s.name }

func (s *Sym) Diff(v string) Expr {
	if s.name == v {
		return Int(1)
	}
	return Int(0)
}

func (s *Sym) Eval(env map[string]float64) float64 {
	if x, ok := env[s.name]; ok {
		return x
	}
	return math.NaN()
}

// Const is a named mathematical constant.
type Const struct {
	name  string
	value float64
}

var (
	Pi = &Const{name: "pi", value: math.Pi}
	E  = &Const{name: "E", value: math.E}

	// NaN is an undefined value such as 0/0. It absorbs every sum, product,
	// power and function it meets.
	NaN = &Const{name: "nan", value: math.NaN()}
)

func (c *Const) Diff(string) Expr {
	if c == NaN {
		return NaN
	}
	return Int(0)
}

func (c *Const) Eval(map[string]float64) float64 { return c.value }

// Add is a sum of at least two terms. Build it with AddOf.
type Add struct{ terms []Expr }

// Terms returns the summands.
func (a *Add) Terms() []Expr { return a.terms }

// AddOf returns the simplified sum of terms: nested sums are flattened,
// numbers folded and like terms combined (x + x -> 2*x).
func AddOf(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if t == NaN {
			return NaN
		}
		if inner, ok := t.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, t)
		}
	}

	type likeTerm struct {
		coeff *Num
		rest  Expr
	}
	constant := Int(0)
	groups := map[string]*likeTerm{}
	var order []string
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant = numAdd(constant, n)
			continue
		}
		c, rest := splitCoeff(t)
		key := rest.String()
		g, seen := groups[key]
		if !seen {
			g = &likeTerm{coeff: Int(0), rest: rest}
			groups[key] = g
			order = append(order, key)
		}
		g.coeff = numAdd(g.coeff, c)
	}

	out := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		g := groups[key]
		if g.coeff.IsZero() {
			continue
		}
		out = append(out, MulOf(g.coeff, g.rest))
	}
	sortTerms(out)
	if !constant.IsZero() {
		out = append(out, constant)
	}

	switch len(out) {
	case 0:
		return Int(0)
	case 1:
		return out[0]
	}
	return &Add{terms: out}
}

func (a *Add) Diff(v string) Expr {
	d := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		d[i] = t.Diff(v)
	}
	return AddOf(d...)
}

func (a *Add) Eval(env map[string]float64) float64 {
	var sum float64
	for _, t := range a.terms {
		sum += t.Eval(env)
	}
	return sum
}

// Mul is a product of at least two factors; a numeric coefficient, when
// present, is always the first factor. Build it with MulOf.
type Mul struct{ factors []Expr }

// Factors returns the factors, coefficient first.
func (m *Mul) Factors() []Expr { return m.factors }

// MulOf returns the simplified product of factors. Numbers are folded into a
// single coefficient, powers of equal bases are merged (x*x -> x**2) and a
// numeric coefficient is distributed over a single sum (2*(x+1) -> 2*x + 2).
func MulOf(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if f == NaN {
			return NaN
		}
		if inner, ok := f.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, f)
		}
	}

	type power struct {
		base Expr
		exp  Expr
	}
	coeff := Int(1)
	bases := map[string]*power{}
	var order []string
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
			continue
		}
		base, exp := asPow(f)
		key := base.String()
		p, seen := bases[key]
		if !seen {
			bases[key] = &power{base: base, exp: exp}
			order = append(order, key)
			continue
		}
		p.exp = AddOf(p.exp, exp)
	}
	if coeff.IsZero() {
		// 0 times an infinite factor such as 1/0 is undefined.
		for _, key := range order {
			if isZeroPole(PowOf(bases[key].base, bases[key].exp)) {
				return NaN
			}
		}
		return Int(0)
	}

	rest := make([]Expr, 0, len(order))
	for _, key := range order {
		p := bases[key]
		switch r := PowOf(p.base, p.exp).(type) {
		case *Num:
			coeff = numMul(coeff, r)
		case *Mul:
			for _, f := range r.factors {
				if n, ok := f.(*Num); ok {
					coeff = numMul(coeff, n)
				} else {
					rest = append(rest, f)
				}
			}
		default:
			rest = append(rest, r)
		}
	}
	if coeff.IsZero() {
		return Int(0)
	}
	if len(rest) == 0 {
		return coeff
	}
	sortFactors(rest)

	if len(rest) == 1 {
		if sum, ok := rest[0].(*Add); ok && !coeff.IsOne() {
			terms := make([]Expr, len(sum.terms))
			for i, t := range sum.terms {
				terms[i] = MulOf(coeff, t)
			}
			return AddOf(terms...)
		}
		if coeff.IsOne() {
			return rest[0]
		}
	}
	if coeff.IsOne() {
		return &Mul{factors: rest}
	}
	return &Mul{factors: append([]Expr{coeff}, rest...)}
}

func (m *Mul) Diff(v string) Expr {
	terms := make([]Expr, 0, len(m.factors))
	for i, fi := range m.factors {
		dfi := fi.Diff(v)
		if n, ok := dfi.(*Num); ok && n.IsZero() {
			continue
		}
		prod := make([]Expr, 0, len(m.factors))
		prod = append(prod, dfi)
		for j, fj := range m.factors {
			if j != i {
				prod = append(prod, fj)
			}
		}
		terms = append(terms, MulOf(prod...))
	}
	return AddOf(terms...)
}

func (m *Mul) Eval(env map[string]float64) float64 {
	prod := 1.0
	for _, f := range m.factors {
		prod *= f.Eval(env)
	}
	return prod
}

// Pow is base**exp. Build it with PowOf.
type Pow struct{ base, exp Expr }

func (p *Pow) Base() Expr     { return p.base }
func (p *Pow) Exponent() Expr { return p.exp }

// maxExactPower bounds exact rational exponentiation of literals.
const maxExactPower = 64

// PowOf returns the simplified power base**exp.
func PowOf(base, exp Expr) Expr {
	if base == NaN || exp == NaN {
		return NaN
	}
	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
	}

	if bn, ok := base.(*Num); ok {
		if bn.IsOne() {
			return Int(1)
		}
		if en, ok := exp.(*Num); ok {
			if bn.IsZero() {
				if en.Sign() > 0 {
					return Int(0)
				}
				// 0**negative stays unevaluated; Eval yields +Inf.
				return &Pow{base: base, exp: exp}
			}
			if en.IsInteger() {
				if e := en.val.Num(); e.IsInt64() && e.Int64() <= maxExactPower && e.Int64() >= -maxExactPower {
					return numPow(bn, e.Int64())
				}
			}
			if r, ok := exactSqrt(bn, en); ok {
				return r
			}
		}
	}

	if en, ok := exp.(*Num); ok && en.IsInteger() {
		switch b := base.(type) {
		case *Pow:
			return PowOf(b.base, MulOf(b.exp, en))
		case *Mul:
			fs := make([]Expr, len(b.factors))
			for i, f := range b.factors {
				fs[i] = PowOf(f, en)
			}
			return MulOf(fs...)
		}
	}

	if base == E {
		return FuncOf("exp", exp)
	}
	if f, ok := base.(*Func); ok && f.name == "exp" {
		return FuncOf("exp", MulOf(f.arg, exp))
	}
	return &Pow{base: base, exp: exp}
}

// exactSqrt folds n**(k/2) when n is a perfect rational square.
func exactSqrt(n, e *Num) (Expr, bool) {
	if n.Sign() < 0 || e.val.Denom().Cmp(big.NewInt(2)) != 0 {
		return nil, false
	}
	num, den := n.val.Num(), n.val.Denom()
	rn, rd := new(big.Int).Sqrt(num), new(big.Int).Sqrt(den)
	if new(big.Int).Mul(rn, rn).Cmp(num) != 0 || new(big.Int).Mul(rd, rd).Cmp(den) != 0 {
		return nil, false
	}
	root := &Num{val: new(big.Rat).SetFrac(rn, rd)}
	k := e.val.Num()
	if !k.IsInt64() || k.Int64() > maxExactPower || k.Int64() < -maxExactPower {
		return nil, false
	}
	if root.IsZero() && k.Sign() < 0 {
		return nil, false
	}
	return numPow(root, k.Int64()), true
}

func (p *Pow) Diff(v string) Expr {
	baseFree, expFree := freeOf(p.base, v), freeOf(p.exp, v)
	switch {
	case baseFree && expFree:
		return Int(0)
	case expFree:
		return MulOf(p.exp, PowOf(p.base, AddOf(p.exp, Int(-1))), p.base.Diff(v))
	case baseFree:
		return MulOf(p, FuncOf("log", p.base), p.exp.Diff(v))
	}
	// d(u**w) = u**w * (w'*log(u) + w*u'/u)
	return MulOf(p, AddOf(
		MulOf(p.exp.Diff(v), FuncOf("log", p.base)),
		MulOf(p.exp, p.base.Diff(v), PowOf(p.base, Int(-1))),
	))
}

func (p *Pow) Eval(env map[string]float64) float64 {
	return math.Pow(p.base.Eval(env), p.exp.Eval(env))
}

// isZeroPole reports an unevaluated 0**negative.
func isZeroPole(e Expr) bool {
	p, ok := e.(*Pow)
	if !ok {
		return false
	}
	b, ok := p.base.(*Num)
	return ok && b.IsZero()
}

// asPow splits e into base and exponent, treating non-powers as e**1.
func asPow(e Expr) (Expr, Expr) {
	if p, ok := e.(*Pow); ok {
		return p.base, p.exp
	}
	return e, Int(1)
}

// splitCoeff separates the numeric coefficient from the rest of a term.
func splitCoeff(e Expr) (*Num, Expr) {
	if m, ok := e.(*Mul); ok {
		if c, ok := m.factors[0].(*Num); ok {
			rest := m.factors[1:]
			if len(rest) == 1 {
				return c, rest[0]
			}
			return c, &Mul{factors: rest}
		}
	}
	return Int(1), e
}

// freeOf reports whether e does not depend on the symbol v.
func freeOf(e Expr, v string) bool {
	switch t := e.(type) {
	case *Sym:
		return t.name != v
	case *Add:
		for _, term := range t.terms {
			if !freeOf(term, v) {
				return false
			}
		}
	case *Mul:
		for _, f := range t.factors {
			if !freeOf(f, v) {
				return false
			}
		}
	case *Pow:
		return freeOf(t.base, v) && freeOf(t.exp, v)
	case *Func:
		return freeOf(t.arg, v)
	}
	return true
}

// FreeSymbols returns the distinct symbol names in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectSymbols(e, out)
	return out
}

func collectSymbols(e Expr, out map[string]struct{}) {
	switch t := e.(type) {
	case *Sym:
		out[t.name] = struct{}{}
	case *Add:
		for _, term := range t.terms {
			collectSymbols(term, out)
		}
	case *Mul:
		for _, f := range t.factors {
			collectSymbols(f, out)
		}
	case *Pow:
		collectSymbols(t.base, out)
		collectSymbols(t.exp, out)
	case *Func:
		collectSymbols(t.arg, out)
	}
}

// Equal reports whether a and b have the same canonical form.
func Equal(a, b Expr) bool { return a.String() == b.String() }

func isNum(e Expr, v int64) bool {
	n, ok := e.(*Num)
	return ok && n.val.IsInt() && n.val.Num().IsInt64() && n.val.Num().Int64() == v
}
