package eva

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default settings for contexts created without the corresponding option.
const (
	DefaultFix  = 10
	DefaultBase = 10
)

// Context carries the settings an evaluation runs under: angle mode, the
// number of decimal places kept in results, the output base used by Format,
// and the previous answer. The zero value is not useful; create a Context
// with NewContext. A Context is safe for concurrent Evaluate calls as long as
// no goroutine calls SetPrev meanwhile.
type Context struct {
	radians bool
	fix     int
	base    int
	prev    *float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	radianopt bool
	fixopt    int
	baseopt   int
	prevopt   float64
)

func (radianopt) ctxOption() {}
func (fixopt) ctxOption()    {}
func (baseopt) ctxOption()   {}
func (prevopt) ctxOption()   {}

// Radians sets whether trigonometric functions take their arguments in
// radians. The default is degrees.
func Radians(on bool) ContextOption {
	return radianopt(on)
}

// Fix sets the number of decimal places kept in results.
func Fix(digits int) ContextOption {
	return fixopt(digits)
}

// Base sets the radix Format renders results in, from 2 to 36.
func Base(radix int) ContextOption {
	return baseopt(radix)
}

// PrevAns sets the value substituted for the previous-answer symbol _.
// Without this option the context has no previous answer and _ fails to lex.
func PrevAns(ans float64) ContextOption {
	return prevopt(ans)
}

// NewContext creates a new evaluation context. The defaults are degree mode,
// ten decimal places, base ten output, and no previous answer.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{fix: DefaultFix, base: DefaultBase}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case radianopt:
			ctx.radians = bool(opt)
		case fixopt:
			ctx.fix = int(opt)
		case baseopt:
			ctx.base = int(opt)
		case prevopt:
			v := float64(opt)
			ctx.prev = &v
		default:
			panic("eva: unknown option type")
		}
	}
	return &ctx
}

// SetPrev sets the value substituted for the previous-answer symbol _.
// Returns ctx for chaining. REPLs call this after each successful evaluation.
func (ctx *Context) SetPrev(ans float64) *Context {
	v := ans
	ctx.prev = &v
	return ctx
}

// Evaluate computes the value of a single expression. Whitespace is
// insignificant everywhere. The input "help" returns ErrHelp and empty input
// returns 0, so a REPL can feed every line through unexamined. Unclosed
// parentheses are balanced automatically. The result keeps at most the
// context's fixed number of decimal places. Division by zero and domain
// faults are not errors; they follow IEEE semantics and come back as ±Inf or
// NaN.
func (ctx *Context) Evaluate(input string) (float64, error) {
	input = strings.Join(strings.Fields(input), "")
	if input == "help" {
		return 0, ErrHelp
	}
	if input == "" {
		return 0, nil
	}
	input, err := autoBalance(input)
	if err != nil {
		return 0, err
	}
	toks, err := ctx.lex(input)
	if err != nil {
		return 0, err
	}
	post, err := toPostfix(toks)
	if err != nil {
		return 0, err
	}
	ans, err := ctx.evalPostfix(post)
	if err != nil {
		return 0, err
	}
	return fixDecimals(ans, ctx.fix), nil
}

// Evaluate is a shortcut to evaluate a single expression with a fresh
// context.
func Evaluate(input string, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).Evaluate(input)
}

// evalPostfix computes the value of a postfix token sequence over a fresh
// stack. Operators and functions pop their second operand first, so the
// deeper value is the left one.
func (ctx *Context) evalPostfix(post []token) (float64, error) {
	stack := make([]float64, 0, len(post))
	for _, t := range post {
		switch t.kind {
		case tokenNum, tokenConst:
			stack = append(stack, t.num)
		case tokenOp:
			if t.op.unary {
				if len(stack) < 1 {
					return 0, &ParserError{Msg: "Too many operators, Too little operands"}
				}
				stack[len(stack)-1] = t.op.fn1(stack[len(stack)-1])
				continue
			}
			if len(stack) < 2 {
				return 0, &ParserError{Msg: "Too many operators, Too little operands"}
			}
			y := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			x := stack[len(stack)-1]
			stack[len(stack)-1] = t.op.fn2(x, y)
		case tokenFunc:
			fn := t.fn
			if len(stack) < fn.arity {
				return 0, &ParserError{Msg: fmt.Sprintf("Too few arguments (%d) for function %s (requires %d)!", len(stack), fn.name, fn.arity)}
			}
			switch fn.arity {
			case 1:
				x := stack[len(stack)-1]
				if fn.angle && !ctx.radians {
					x *= math.Pi / 180
				}
				stack[len(stack)-1] = fn.fn1(x)
			case 2:
				y := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				x := stack[len(stack)-1]
				stack[len(stack)-1] = fn.fn2(x, y)
			default:
				panic("eva: bad arity for function " + fn.name)
			}
		default:
			panic("eva: invalid postfix token " + t.String())
		}
	}
	if len(stack) != 1 {
		return 0, &ParserError{Msg: "Too many operators, Too little operands"}
	}
	return stack[0], nil
}

// fixDecimals rounds v to at most places decimal places by formatting and
// reparsing with strconv, which works from the exact decimal expansion and
// rounds ties to even: 0.125 at two places is 0.12, 0.375 is 0.38.
// Infinities and NaN survive the round trip.
func fixDecimals(v float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	s := strconv.FormatFloat(v, 'f', places, 64)
	r, _ := strconv.ParseFloat(s, 64)
	return r
}
