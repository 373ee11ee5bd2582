package symbolic

import (
	"math/big"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// reserved names cannot be used as the free variable.
var reserved = map[string]bool{"pi": true, "E": true}

// ValidVariable reports whether name can be used as the free variable.
func ValidVariable(name string) bool {
	if name == "" || reserved[name] || IsFunction(name) {
		return false
	}
	for i, r := range name {
		if !(unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r))) {
			return false
		}
	}
	return true
}

// Parse reads input as an expression in the variable v. Accepted syntax:
// numbers (decimals and exponents such as 2.5e-3 are kept exact), identifiers, + - * / ** ^, parentheses,
// the constants pi and E, calls such as sin(x), and implicit multiplication
// after a number literal (2x, 3(x+1)).
func Parse(input, v string) (Expr, error) {
	if !ValidVariable(v) {
		return nil, &ParseError{Input: input, Msg: "invalid variable name " + quote(v)}
	}
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, variable: v, toks: toks}
	if p.peek().kind == tokEOF {
		return nil, p.errorf(p.peek(), "empty expression")
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		if t.kind == tokRParen {
			return nil, p.errorf(t, "unmatched closing parenthesis")
		}
		return nil, p.errorf(t, "unexpected "+quote(t.text))
	}
	return e, nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(input, v string) Expr {
	e, err := Parse(input, v)
	if err != nil {
		panic(err)
	}
	return e
}

func quote(s string) string { return "\"" + s + "\"" }

func tokenize(input string) ([]token, error) {
	var toks []token
	rs := []rune(input)
	offset := func(i int) int { return len(string(rs[:i])) }
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || (r == '.' && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			start := i
			seenDot := false
			for i < len(rs) && (unicode.IsDigit(rs[i]) ||
				(rs[i] == '.' && !seenDot && i+1 < len(rs) && unicode.IsDigit(rs[i+1]))) {
				if rs[i] == '.' {
					seenDot = true
				}
				i++
			}
			i += exponentLen(rs[i:])
			toks = append(toks, token{kind: tokNum, text: string(rs[start:i]), pos: offset(start)})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(rs) && (unicode.IsLetter(rs[i]) || unicode.IsDigit(rs[i]) || rs[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(rs[start:i]), pos: offset(start)})
		case r == '*' && i+1 < len(rs) && rs[i+1] == '*':
			toks = append(toks, token{kind: tokOp, text: "**", pos: offset(i)})
			i += 2
		case strings.ContainsRune("+-*/^", r):
			toks = append(toks, token{kind: tokOp, text: string(r), pos: offset(i)})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: offset(i)})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: offset(i)})
			i++
		default:
			return nil, &ParseError{Input: input, Pos: offset(i), Msg: "unexpected character " + quote(string(r))}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(input)})
	return toks, nil
}

// exponentLen returns the length of a scientific exponent such as e5 or
// E-3 at the start of rs, or 0. A bare e stays a name, so 2e is 2*e.
func exponentLen(rs []rune) int {
	if len(rs) < 2 || (rs[0] != 'e' && rs[0] != 'E') {
		return 0
	}
	n := 1
	if rs[n] == '+' || rs[n] == '-' {
		n++
	}
	if n >= len(rs) || !unicode.IsDigit(rs[n]) {
		return 0
	}
	for n < len(rs) && unicode.IsDigit(rs[n]) {
		n++
	}
	return n
}

type parser struct {
	input    string
	variable string
	toks     []token
	pos      int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, msg string) error {
	return &ParseError{Input: p.input, Pos: t.pos, Msg: msg}
}

func (p *parser) isOp(ops ...string) bool {
	t := p.peek()
	if t.kind != tokOp {
		return false
	}
	for _, op := range ops {
		if t.text == op {
			return true
		}
	}
	return false
}

// expr := term (('+' | '-') term)*
func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+", "-") {
		op := p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op.text == "-" {
			right = MulOf(Int(-1), right)
		}
		left = AddOf(left, right)
	}
	return left, nil
}

// term := unary (('*' | '/') unary | implicit)*
func (p *parser) term() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isOp("*", "/"):
			op := p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			if op.text == "/" {
				right = PowOf(right, Int(-1))
			}
			left = MulOf(left, right)
		case p.implicitProduct():
			right, err := p.power()
			if err != nil {
				return nil, err
			}
			left = MulOf(left, right)
		default:
			return left, nil
		}
	}
}

// implicitProduct reports a number literal directly followed by a name or
// an opening parenthesis.
func (p *parser) implicitProduct() bool {
	if p.pos == 0 || p.toks[p.pos-1].kind != tokNum {
		return false
	}
	k := p.peek().kind
	return k == tokIdent || k == tokLParen
}

// unary := ('-' | '+') unary | power
func (p *parser) unary() (Expr, error) {
	if p.isOp("-", "+") {
		op := p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op.text == "-" {
			return MulOf(Int(-1), operand), nil
		}
		return operand, nil
	}
	return p.power()
}

// power := primary (('**' | '^') unary)?
func (p *parser) power() (Expr, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.isOp("**", "^") {
		p.next()
		exp, err := p.unary()
		if err != nil {
			return nil, err
		}
		return PowOf(base, exp), nil
	}
	return base, nil
}

func (p *parser) primary() (Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		r, ok := new(big.Rat).SetString(t.text)
		if !ok {
			return nil, p.errorf(t, "invalid number "+quote(t.text))
		}
		return &Num{val: r}, nil
	case tokIdent:
		return p.identifier(t)
	case tokLParen:
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.errorf(t, "missing closing parenthesis")
		}
		p.next()
		return e, nil
	case tokRParen:
		return nil, p.errorf(t, "unmatched closing parenthesis")
	case tokEOF:
		return nil, p.errorf(t, "unexpected end of expression")
	}
	return nil, p.errorf(t, "unexpected "+quote(t.text))
}

func (p *parser) identifier(t token) (Expr, error) {
	name := t.text
	if p.peek().kind == tokLParen {
		if !IsFunction(name) {
			return nil, p.errorf(t, "unknown function "+quote(name))
		}
		open := p.next()
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.errorf(open, "missing closing parenthesis")
		}
		p.next()
		return FuncOf(name, arg), nil
	}
	if IsFunction(name) {
		return nil, p.errorf(t, "function "+quote(name)+" needs an argument")
	}
	switch name {
	case "pi":
		return Pi, nil
	case "E":
		return E, nil
	}
	return Symbol(name), nil
}
