// Package eva implements a floating-point calculator for quick math, in the
// spirit of bc(1).
//
// The syntax of expressions is intended to be forgiving about how you'd type
// math in a hurry. Whitespace never matters, "2pi" and "e2" and "2(3+4)" are
// multiplications, "2 ** 3" means "2 ^ 3", and parentheses you didn't close
// are closed for you, so "sin(30" works. The previous-answer symbol _ lets a
// REPL chain one result into the next line.
//
// Evaluation happens in four stages on every input: balance the brackets,
// lex, reorder the tokens into postfix, and fold the postfix sequence over a
// value stack. There is no AST and no shared state between calls; a Context
// only carries settings and the previous answer.
package eva
