package eva

import "testing"

func TestAutoBalance(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"balanced", "(1+2)", "(1+2)"},
		{"no-parens", "1+2", "1+2"},
		{"one-open", "sin(30", "sin(30)"},
		{"nested-open", "log(1+(2^16", "log(1+(2^16))"},
		{"all-open", "(((", "((()))"},
		{"interleaved", "(1+(2)", "(1+(2))"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := autoBalance(c.src)
			if err != nil {
				t.Fatalf("%q failed to balance: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("%q balanced wrong: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestAutoBalanceErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"lone-close", ")"},
		{"close-first", ")("},
		{"early-close", "1+2)*(3"},
		{"trailing-close", "exp2,3)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := autoBalance(c.src)
			if err == nil {
				t.Fatalf("%q balanced to %q instead of failing", c.src, got)
			}
			if _, ok := err.(*SyntaxError); !ok {
				t.Errorf("%q: wrong error type: want *SyntaxError, got %T", c.src, err)
			}
			if want := "Syntax Error: Mismatched parentheses!"; err.Error() != want {
				t.Errorf("%q: wrong message: want %q, got %q", c.src, want, err.Error())
			}
		})
	}
}
