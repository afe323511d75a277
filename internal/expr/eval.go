package expr

import (
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Precomputed constants substituted for π, e, and φ.
const (
	Pi          = math.Pi
	E           = math.E
	GoldenRatio = 1.618033988749895 // (1+√5)/2
)

var constants = map[string]float64{
	"π":   Pi,
	"pi":  Pi,
	"e":   E,
	"φ":   GoldenRatio,
	"phi": GoldenRatio,
}

// function names accepted before a parenthesized argument.
var functions = map[string]bool{
	"sin":  true,
	"cos":  true,
	"tan":  true,
	"log":  true,
	"ln":   true,
	"sqrt": true,
	"cbrt": true,
}

// Evaluate parses the expression text and evaluates it to a float64.
//
// The input is canonicalized first (see Canonical), so whitespace and
// unicode operator aliases are accepted. Evaluation fails closed: any
// token outside the grammar produces an *EvalError rather than a zero
// result. Overflow is not an error at this layer - callers that need
// finite results must reject ±Inf and NaN themselves.
func Evaluate(text string) (float64, error) {
	src := Canonical(text)
	if src == "" {
		return 0, &EvalError{Code: ErrCodeParse, Message: "empty expression", Expr: src}
	}
	toks, err := tokenize(src)
	if err != nil {
		return 0, err
	}
	p := &parser{src: src, toks: toks}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if tok := p.peek(); tok.kind != tkEOF {
		return 0, p.errAt(tok, ErrCodeParse, "unexpected trailing input")
	}
	return v, nil
}

type tokenKind int

const (
	tkNumber tokenKind = iota
	tkIdent
	tkOp
	tkEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
	val  float64 // set for tkNumber
}

// operator runes recognized by the tokenizer. ² and ³ are postfix powers.
const opRunes = "+-*/^!()|√²³"

func tokenize(src string) ([]token, error) {
	var toks []token
	pos := 0
	for pos < len(src) {
		r, w := utf8.DecodeRuneInString(src[pos:])
		switch {
		case r >= '0' && r <= '9' || r == '.':
			tok, next, err := lexNumber(src, pos)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			pos = next
		case unicode.IsLetter(r):
			start := pos
			for pos < len(src) {
				r2, w2 := utf8.DecodeRuneInString(src[pos:])
				if !unicode.IsLetter(r2) {
					break
				}
				pos += w2
			}
			toks = append(toks, token{kind: tkIdent, text: src[start:pos], pos: start})
		case runeInOps(r):
			toks = append(toks, token{kind: tkOp, text: string(r), pos: pos})
			pos += w
		default:
			return nil, &EvalError{
				Code:    ErrCodeInvalidExpression,
				Message: "unrecognized symbol",
				Expr:    src,
				Pos:     pos,
				Token:   string(r),
			}
		}
	}
	toks = append(toks, token{kind: tkEOF, pos: len(src)})
	return toks, nil
}

func runeInOps(r rune) bool {
	for _, op := range opRunes {
		if r == op {
			return true
		}
	}
	return false
}

// lexNumber reads a decimal literal with an optional e-notation exponent.
// A trailing 'e' is only consumed as an exponent marker when followed by a
// digit or a signed digit, so "2*e" still lexes the constant e.
func lexNumber(src string, start int) (token, int, error) {
	pos := start
	for pos < len(src) && (src[pos] >= '0' && src[pos] <= '9' || src[pos] == '.') {
		pos++
	}
	if pos < len(src) && (src[pos] == 'e' || src[pos] == 'E') {
		next := pos + 1
		if next < len(src) && (src[next] == '+' || src[next] == '-') {
			next++
		}
		if next < len(src) && src[next] >= '0' && src[next] <= '9' {
			pos = next
			for pos < len(src) && src[pos] >= '0' && src[pos] <= '9' {
				pos++
			}
		}
	}
	text := src[start:pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, 0, &EvalError{
			Code:    ErrCodeParse,
			Message: "malformed number literal",
			Expr:    src,
			Pos:     start,
			Token:   text,
		}
	}
	return token{kind: tkNumber, text: text, pos: start, val: v}, pos, nil
}

// parser evaluates directly during the descent; the grammar has no
// conditional branches, so there is nothing to defer to a second pass.
type parser struct {
	src  string
	toks []token
	idx  int
}

func (p *parser) peek() token { return p.toks[p.idx] }

func (p *parser) next() token {
	tok := p.toks[p.idx]
	if tok.kind != tkEOF {
		p.idx++
	}
	return tok
}

func (p *parser) acceptOp(text string) bool {
	if tok := p.peek(); tok.kind == tkOp && tok.text == text {
		p.idx++
		return true
	}
	return false
}

func (p *parser) expectOp(text string) error {
	tok := p.peek()
	if tok.kind == tkOp && tok.text == text {
		p.idx++
		return nil
	}
	return p.errAt(tok, ErrCodeParse, "expected "+strconv.Quote(text))
}

func (p *parser) errAt(tok token, code EvalErrorCode, msg string) error {
	return &EvalError{Code: code, Message: msg, Expr: p.src, Pos: tok.pos, Token: tok.text}
}

// parseExpr handles + and - at the lowest precedence.
func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.acceptOp("+"):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case p.acceptOp("-"):
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.acceptOp("*"):
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case p.acceptOp("/"):
			tok := p.peek()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, p.errAt(tok, ErrCodeDivisionByZero, "division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

// parseUnary handles prefix minus and the √ root.
func (p *parser) parseUnary() (float64, error) {
	if p.acceptOp("-") {
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	}
	if tok := p.peek(); tok.kind == tkOp && tok.text == "√" {
		p.idx++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, p.errAt(tok, ErrCodeInvalidExpression, "square root of negative value")
		}
		return math.Sqrt(v), nil
	}
	return p.parsePower()
}

// parsePower handles ^, right-associative. The exponent re-enters
// parseUnary so -x and √x work on the right-hand side.
func (p *parser) parsePower() (float64, error) {
	v, err := p.parsePostfix()
	if err != nil {
		return 0, err
	}
	if p.acceptOp("^") {
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(v, exp), nil
	}
	return v, nil
}

// parsePostfix handles factorial and the ² ³ superscript powers.
func (p *parser) parsePostfix() (float64, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	for {
		tok := p.peek()
		switch {
		case p.acceptOp("!"):
			f, ferr := factorial(v)
			if ferr != nil {
				return 0, p.errAt(tok, ErrCodeInvalidExpression, ferr.Error())
			}
			v = f
		case p.acceptOp("²"):
			v = v * v
		case p.acceptOp("³"):
			v = v * v * v
		default:
			return v, nil
		}
	}
}

func (p *parser) parsePrimary() (float64, error) {
	tok := p.next()
	switch tok.kind {
	case tkNumber:
		return tok.val, nil
	case tkIdent:
		return p.parseIdent(tok)
	case tkOp:
		switch tok.text {
		case "(":
			v, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			if err := p.expectOp(")"); err != nil {
				return 0, err
			}
			return v, nil
		case "|":
			v, err := p.parseExpr()
			if err != nil {
				return 0, err
			}
			if err := p.expectOp("|"); err != nil {
				return 0, err
			}
			return math.Abs(v), nil
		}
	}
	return 0, p.errAt(tok, ErrCodeParse, "expected a value")
}

// parseIdent resolves an identifier as either a function application or a
// named constant. Functions accept an optional ² superscript before the
// argument list (sin²(x) squares the result of sin(x)).
func (p *parser) parseIdent(tok token) (float64, error) {
	if functions[tok.text] {
		squared := p.acceptOp("²")
		if err := p.expectOp("("); err != nil {
			return 0, err
		}
		arg, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if err := p.expectOp(")"); err != nil {
			return 0, err
		}
		v, err := applyFunc(tok.text, arg)
		if err != nil {
			return 0, p.errAt(tok, ErrCodeInvalidExpression, err.Error())
		}
		if squared {
			v = v * v
		}
		return v, nil
	}
	if v, ok := constants[tok.text]; ok {
		return v, nil
	}
	return 0, p.errAt(tok, ErrCodeInvalidExpression, "unknown identifier")
}

type domainError string

func (d domainError) Error() string { return string(d) }

func applyFunc(name string, arg float64) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(arg), nil
	case "cos":
		return math.Cos(arg), nil
	case "tan":
		return math.Tan(arg), nil
	case "log":
		if arg <= 0 {
			return 0, domainError("log of non-positive value")
		}
		return math.Log10(arg), nil
	case "ln":
		if arg <= 0 {
			return 0, domainError("ln of non-positive value")
		}
		return math.Log(arg), nil
	case "sqrt":
		if arg < 0 {
			return 0, domainError("square root of negative value")
		}
		return math.Sqrt(arg), nil
	case "cbrt":
		return math.Cbrt(arg), nil
	}
	return 0, domainError("unknown function")
}

// factorial computes n! for non-negative integer n. Results above 170!
// overflow float64 and come back as +Inf; finiteness is the caller's
// concern, integrality is enforced here.
func factorial(n float64) (float64, error) {
	if n < 0 {
		return 0, domainError("factorial of negative value")
	}
	if n != math.Trunc(n) {
		return 0, domainError("factorial of non-integer value")
	}
	if n > 170 {
		return math.Inf(1), nil
	}
	v := 1.0
	for i := 2; i <= int(n); i++ {
		v *= float64(i)
	}
	return v, nil
}
