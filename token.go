package eva

import (
	"math"
	"strconv"
)

type tokenKind int8

const (
	// tokenNone is an invalid token kind.
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal, including one substituted for the
	// previous-answer symbol.
	tokenNum
	// tokenConst is a named constant such as e or pi.
	tokenConst
	// tokenOp is a unary or binary operator.
	tokenOp
	// tokenFunc is a function name.
	tokenFunc
	// tokenOpen is an opening bracket.
	tokenOpen
	// tokenClose is a closing bracket.
	tokenClose
	// tokenSep is an argument separator, i.e. a comma.
	tokenSep
)

var tokenKindNames = [...]string{"None", "Num", "Const", "Op", "Func", "Open", "Close", "Sep"}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// token is a single lexical element. The lexer produces them and the parser
// reorders them into postfix; the evaluator never sees any other
// representation of the program.
type token struct {
	kind tokenKind
	// num is the value of a tokenNum or tokenConst.
	num float64
	// name is the source spelling of a tokenConst.
	name string
	// op is the operator of a tokenOp.
	op *operator
	// fn is the function of a tokenFunc.
	fn *function
}

// String renders the token roughly as it was written. Postfix sequences
// joined on spaces read like classic RPN, which the tests lean on.
func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenConst:
		return t.name
	case tokenOp:
		return t.op.sym
	case tokenFunc:
		return t.fn.name
	case tokenOpen:
		return "("
	case tokenClose:
		return ")"
	case tokenSep:
		return ","
	}
	return "<" + t.kind.String() + ">"
}

// operator describes a unary or binary operator: its precedence and
// associativity for the parser, and its implementation for the evaluator.
type operator struct {
	sym   string
	prec  int8
	right bool
	unary bool
	fn1   func(x float64) float64
	fn2   func(x, y float64) float64
}

// operators holds the binary operators, keyed by their spelling. The **
// spelling is folded onto ^ by the lexer.
var operators = map[byte]*operator{
	'+': {sym: "+", prec: 2, fn2: func(x, y float64) float64 { return x + y }},
	'-': {sym: "-", prec: 2, fn2: func(x, y float64) float64 { return x - y }},
	'*': {sym: "*", prec: 3, fn2: func(x, y float64) float64 { return x * y }},
	'/': {sym: "/", prec: 3, fn2: func(x, y float64) float64 { return x / y }},
	'^': {sym: "^", prec: 4, right: true, fn2: math.Pow},
}

// opNegate is unary minus. It binds tighter than every binary operator, so
// -2^2 is (-2)^2. The parser rewrites a minus in prefix position to it; the
// lexer never produces it.
var opNegate = &operator{sym: "-", prec: 5, right: true, unary: true, fn1: func(x float64) float64 { return -x }}

// opMul is the multiplication inserted for adjacency like 2pi or e2.
var opMul = operators['*']
