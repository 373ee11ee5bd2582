package symbolic

import (
	"math/big"
	"sort"
	"strings"
)

func (n *Num) String() string   { return n.val.RatString() }
func (s *Sym) String() string   { return s.name }
func (c *Const) String() string { return c.name }

func (f *Func) String() string { return f.name + "(" + f.arg.String() + ")" }

// String prints terms highest degree first with subtraction folded in:
// x**2 - 3*x + 1.
func (a *Add) String() string {
	var b strings.Builder
	for i, t := range a.terms {
		s := t.String()
		neg := strings.HasPrefix(s, "-")
		switch {
		case i == 0:
			b.WriteString(s)
		case neg:
			b.WriteString(" - ")
			b.WriteString(s[1:])
		default:
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}
	return b.String()
}

// String prints a product as a single fraction: the rational coefficient's
// denominator and every factor with a negative exponent go below the line.
func (m *Mul) String() string {
	coeff, rest := Int(1), m.factors
	if c, ok := m.factors[0].(*Num); ok {
		coeff, rest = c, m.factors[1:]
	}

	var num, den []string
	if p := coeff.val.Num(); p.CmpAbs(bigOne) != 0 {
		num = append(num, new(big.Int).Abs(p).String())
	}
	if q := coeff.val.Denom(); q.Cmp(bigOne) != 0 {
		den = append(den, q.String())
	}
	for _, f := range rest {
		if p, ok := f.(*Pow); ok {
			if e, ok := p.exp.(*Num); ok && e.Sign() < 0 {
				den = append(den, factorString(PowOf(p.base, numNeg(e))))
				continue
			}
		}
		num = append(num, factorString(f))
	}

	var b strings.Builder
	if coeff.Sign() < 0 {
		b.WriteString("-")
	}
	if len(num) == 0 {
		b.WriteString("1")
	} else {
		b.WriteString(strings.Join(num, "*"))
	}
	switch len(den) {
	case 0:
	case 1:
		b.WriteString("/")
		b.WriteString(den[0])
	default:
		b.WriteString("/(")
		b.WriteString(strings.Join(den, "*"))
		b.WriteString(")")
	}
	return b.String()
}

func (p *Pow) String() string {
	if e, ok := p.exp.(*Num); ok {
		switch {
		case e.val.Cmp(half.val) == 0:
			return "sqrt(" + p.base.String() + ")"
		case e.IsNegOne():
			return "1/" + factorString(p.base)
		case e.val.Cmp(negHalf.val) == 0:
			return "1/sqrt(" + p.base.String() + ")"
		}
	}
	return wrapBase(p.base) + "**" + wrapExp(p.exp)
}

var (
	bigOne  = big.NewInt(1)
	half    = Rat(1, 2)
	negHalf = Rat(-1, 2)
)

// factorString renders e as one factor of a product.
func factorString(e Expr) string {
	switch t := e.(type) {
	case *Add:
		return "(" + t.String() + ")"
	case *Mul:
		return "(" + t.String() + ")"
	case *Num:
		if t.Sign() < 0 || !t.IsInteger() {
			return "(" + t.String() + ")"
		}
	}
	return e.String()
}

func wrapBase(e Expr) string {
	switch e.(type) {
	case *Pow:
		return "(" + e.String() + ")"
	}
	return factorString(e)
}

func wrapExp(e Expr) string {
	switch t := e.(type) {
	case *Sym, *Const, *Func:
		return e.String()
	case *Num:
		if t.Sign() >= 0 && t.IsInteger() {
			return t.String()
		}
	}
	return "(" + e.String() + ")"
}

// degree is the total polynomial degree of a term, 0 for anything else.
func degree(e Expr) float64 {
	switch t := e.(type) {
	case *Sym:
		return 1
	case *Pow:
		if n, ok := t.exp.(*Num); ok {
			return n.Eval(nil) * degree(t.base)
		}
	case *Mul:
		var d float64
		for _, f := range t.factors {
			d += degree(f)
		}
		return d
	}
	return 0
}

// sortTerms orders by descending degree. Among equal degrees a positive
// term leads, so sums read x*log(x) - x rather than -x + x*log(x).
func sortTerms(terms []Expr) {
	sort.SliceStable(terms, func(i, j int) bool {
		ci, ri := splitCoeff(terms[i])
		cj, rj := splitCoeff(terms[j])
		di, dj := degree(ri), degree(rj)
		if di != dj {
			return di > dj
		}
		if pi, pj := ci.Sign() > 0, cj.Sign() > 0; pi != pj {
			return pi
		}
		return ri.String() < rj.String()
	})
}

// factorRank orders symbols and their powers before constants and
// functions, matching x*sin(x) and x**2*exp(x).
func factorRank(e Expr) int {
	base, _ := asPow(e)
	switch base.(type) {
	case *Sym:
		return 0
	case *Const:
		return 1
	case *Func:
		return 2
	}
	return 3
}

func sortFactors(fs []Expr) {
	sort.SliceStable(fs, func(i, j int) bool {
		ri, rj := factorRank(fs[i]), factorRank(fs[j])
		if ri != rj {
			return ri < rj
		}
		return fs[i].String() < fs[j].String()
	})
}
