package eva

import "strings"

// autoBalance appends closing brackets to input until every opening bracket
// is matched, so "sin(30" evaluates like "sin(30)". A closing bracket with no
// opening bracket before it cannot be repaired and is a SyntaxError. The scan
// is purely textual; it runs before the lexer ever sees the input.
func autoBalance(input string) (string, error) {
	depth := 0
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", &SyntaxError{Msg: "Mismatched parentheses!"}
			}
		}
	}
	if depth > 0 {
		return input + strings.Repeat(")", depth), nil
	}
	return input, nil
}
