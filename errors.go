package eva

import "errors"

// ErrHelp is returned by Evaluate when the input asks for help rather than
// an answer. It is not a failure; callers should print their usage text.
// Test for it with errors.Is.
var ErrHelp = errors.New("eva: help requested")

// CalcError is implemented by every error an evaluation can produce, other
// than ErrHelp. The set of implementations is closed: SyntaxError,
// ParserError, and UndefinedError.
type CalcError interface {
	error

	// calcError restricts implementations to this package.
	calcError()
}

// SyntaxError indicates input that cannot be a well-formed expression:
// mismatched parentheses, a comma outside a function call, or a character
// the lexer does not recognize.
type SyntaxError struct {
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	return "Syntax Error: " + err.Msg
}

func (err *SyntaxError) calcError() {}

// ParserError indicates a structurally invalid expression: operators or
// functions with too few operands, or operands left over once evaluation
// finishes.
type ParserError struct {
	// Msg describes the problem.
	Msg string
}

func (err *ParserError) Error() string {
	return "Parser Error: " + err.Msg
}

func (err *ParserError) calcError() {}

// UndefinedError indicates a name or literal with no meaning: an unknown
// function or constant, a malformed number, or the previous-answer symbol
// when no previous answer exists.
type UndefinedError struct {
	// Msg describes the problem.
	Msg string
}

func (err *UndefinedError) Error() string {
	return "Undefined Error: " + err.Msg
}

func (err *UndefinedError) calcError() {}

var (
	_ CalcError = (*SyntaxError)(nil)
	_ CalcError = (*ParserError)(nil)
	_ CalcError = (*UndefinedError)(nil)
)
