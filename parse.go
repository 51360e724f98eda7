package eva

import "fmt"

// Expr = num | const | Call | Neg | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = funcname '(' Expr { ',' Expr } ')'
// Neg  = '-' Expr
// Add  = Expr '+' Expr
// Sub  = Expr '-' Expr
// Mul  = Expr '*' Expr
// Div  = Expr '/' Expr
// Pow  = Expr '^' Expr

// toPostfix reorders an infix token sequence into postfix with the
// shunting-yard algorithm. Functions ride the operator stack until their
// bracket closes. Argument counts are tracked per bracket, so a call with too
// few arguments fails here with a named error; a call with too many parses
// fine and is rejected by the evaluator's leftover-operand check.
func toPostfix(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var (
		stack []token
		argc  []int
	)
	for i, t := range toks {
		switch t.kind {
		case tokenNum, tokenConst:
			out = append(out, t)
		case tokenFunc:
			stack = append(stack, t)
		case tokenOpen:
			stack = append(stack, t)
			argc = append(argc, 0)
		case tokenSep:
			for {
				if len(stack) == 0 {
					return nil, &SyntaxError{Msg: "Mismatched parentheses!"}
				}
				if stack[len(stack)-1].kind == tokenOpen {
					break
				}
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			// The bracket on top must belong to a function call. A bare
			// group at the bottom of the stack passes; its extra operand
			// surfaces in the evaluator's leftover check instead.
			if len(stack) >= 2 && stack[len(stack)-2].kind != tokenFunc {
				return nil, &SyntaxError{Msg: "Comma without matching function call!"}
			}
			argc[len(argc)-1]++
		case tokenClose:
			for {
				if len(stack) == 0 {
					return nil, &SyntaxError{Msg: "Mismatched parentheses!"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
			n := argc[len(argc)-1] + 1
			argc = argc[:len(argc)-1]
			if len(stack) > 0 && stack[len(stack)-1].kind == tokenFunc {
				fn := stack[len(stack)-1].fn
				stack = stack[:len(stack)-1]
				if n < fn.arity {
					return nil, &ParserError{Msg: fmt.Sprintf("Too few arguments (%d) for function %s (requires %d)!", n, fn.name, fn.arity)}
				}
				out = append(out, token{kind: tokenFunc, fn: fn})
			}
		case tokenOp:
			if t.op == operators['-'] && unaryPosition(toks, i) {
				t.op = opNegate
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp || !moreBinding(top.op, t.op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		default:
			panic("eva: invalid token " + t.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == tokenOpen {
			return nil, &SyntaxError{Msg: "Mismatched parentheses!"}
		}
		out = append(out, top)
	}
	return out, nil
}

// moreBinding reports whether a stacked operator binds tightly enough that it
// must pop to the output before the incoming operator pushes. Equal
// precedence pops only when the incoming operator is left-associative.
func moreBinding(stacked, in *operator) bool {
	if stacked.prec != in.prec {
		return stacked.prec > in.prec
	}
	return !in.right
}

// unaryPosition reports whether an operator at index i sits in prefix
// position: at the start of the expression, after an opening bracket, after a
// comma, or after another operator. A minus there negates rather than
// subtracts.
func unaryPosition(toks []token, i int) bool {
	if i == 0 {
		return true
	}
	switch toks[i-1].kind {
	case tokenOpen, tokenSep, tokenOp:
		return true
	}
	return false
}
