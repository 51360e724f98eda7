package eva

import (
	"strconv"
	"unicode/utf8"
)

// lexer scans an expression string that has already been stripped of
// whitespace and run through autoBalance.
type lexer struct {
	src  string
	pos  int
	prev *float64
	toks []token
}

// lex converts input to a token sequence. The context supplies the value
// substituted for the previous-answer symbol.
func (ctx *Context) lex(input string) ([]token, error) {
	l := lexer{src: input, prev: ctx.prev, toks: make([]token, 0, len(input)/2+1)}
	for l.pos < len(l.src) {
		if err := l.scan(); err != nil {
			return nil, err
		}
	}
	return l.toks, nil
}

// scan consumes one token from the input.
func (l *lexer) scan() error {
	c := l.src[l.pos]
	switch {
	case '0' <= c && c <= '9' || c == '.':
		return l.scanNumber()
	case isLetter(c):
		return l.scanWord()
	case c == '_':
		if l.prev == nil {
			return &UndefinedError{Msg: "No previous answer!"}
		}
		l.emit(token{kind: tokenNum, num: *l.prev})
		l.pos++
	case c == '(':
		l.emit(token{kind: tokenOpen})
		l.pos++
	case c == ')':
		l.toks = append(l.toks, token{kind: tokenClose})
		l.pos++
	case c == ',':
		l.toks = append(l.toks, token{kind: tokenSep})
		l.pos++
	case c == '*' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
		// ** is an alternate spelling of ^.
		l.toks = append(l.toks, token{kind: tokenOp, op: operators['^']})
		l.pos += 2
	default:
		op := operators[c]
		if op == nil {
			r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
			return &SyntaxError{Msg: "Unexpected character: " + string(r)}
		}
		l.toks = append(l.toks, token{kind: tokenOp, op: op})
		l.pos++
	}
	return nil
}

// scanNumber scans a run of digits and dots. There is no sign and no
// exponent notation; 1e5 lexes as 1 * e * 5.
func (l *lexer) scanNumber() error {
	start := l.pos
	for l.pos < len(l.src) && (l.src[l.pos] == '.' || '0' <= l.src[l.pos] && l.src[l.pos] <= '9') {
		l.pos++
	}
	text := l.src[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &UndefinedError{Msg: "Malformed number: " + text}
	}
	l.emit(token{kind: tokenNum, num: v})
	return nil
}

// scanWord scans a function or constant name.
func (l *lexer) scanWord() error {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isLetter(c) {
			l.pos++
			continue
		}
		if '0' <= c && c <= '9' {
			if _, ok := constants[l.src[start:l.pos]]; !ok {
				l.pos++
				continue
			}
			// The letters so far name a constant, so the digit starts a new
			// number token: e2 is e * 2, but log10 stays one word.
		}
		break
	}
	word := l.src[start:l.pos]
	if v, ok := constants[word]; ok {
		l.emit(token{kind: tokenConst, num: v, name: word})
		return nil
	}
	if fn, ok := functions[word]; ok {
		l.emit(token{kind: tokenFunc, fn: fn})
		return nil
	}
	return &UndefinedError{Msg: "Unknown function or constant: " + word}
}

// emit appends tok, first inserting a multiplication when tok begins a value
// directly after a token that ends one. That makes e2, 2pi, 2(3+4), and
// (2)(3) all multiply.
func (l *lexer) emit(tok token) {
	if startsValue(tok.kind) && len(l.toks) > 0 && endsValue(l.toks[len(l.toks)-1].kind) {
		l.toks = append(l.toks, token{kind: tokenOp, op: opMul})
	}
	l.toks = append(l.toks, tok)
}

func startsValue(k tokenKind) bool {
	switch k {
	case tokenNum, tokenConst, tokenFunc, tokenOpen:
		return true
	}
	return false
}

func endsValue(k tokenKind) bool {
	switch k {
	case tokenNum, tokenConst, tokenClose:
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
