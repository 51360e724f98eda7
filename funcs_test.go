package eva

import (
	"math"
	"testing"
)

func TestFunctionTable(t *testing.T) {
	for name, fn := range functions {
		if fn.name != name {
			t.Errorf("%s: name field is %q", name, fn.name)
		}
		switch fn.arity {
		case 1:
			if fn.fn1 == nil || fn.fn2 != nil {
				t.Errorf("%s: arity 1 with wrong implementation slots", name)
			}
		case 2:
			if fn.fn2 == nil || fn.fn1 != nil {
				t.Errorf("%s: arity 2 with wrong implementation slots", name)
			}
			if fn.angle {
				t.Errorf("%s: angle set on an arity-2 function", name)
			}
		default:
			t.Errorf("%s: unexpected arity %d", name, fn.arity)
		}
	}
}

// Only the six circular trig functions take angles; everything else,
// including inverse trig and the hyperbolics, is mode-independent.
func TestAngleFunctions(t *testing.T) {
	angles := map[string]bool{"sin": true, "cos": true, "tan": true, "csc": true, "sec": true, "cot": true}
	for name, fn := range functions {
		if fn.angle != angles[name] {
			t.Errorf("%s: angle = %v, want %v", name, fn.angle, angles[name])
		}
	}
}

// TestFunctionValues checks implementations straight out of the table,
// bypassing the pipeline and its rounding. Every case here is exact in
// floating point; approximate results are covered by the Evaluate tests.
func TestFunctionValues(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want float64
	}{
		{"sqrt", 9, 0, 3},
		{"cbrt", 8, 0, 2},
		{"ln", 1, 0, 0},
		{"exp", 0, 0, 1},
		{"exp2", 8, 0, 256},
		{"abs", -3, 0, 3},
		{"ceil", 1.1, 0, 2},
		{"floor", 1.9, 0, 1},
		{"round", 0.5, 0, 1},
		{"sin", 0, 0, 0},
		{"cos", 0, 0, 1},
		{"atan", 0, 0, 0},
		{"asin", 1, 0, math.Pi / 2},
		{"sinh", 0, 0, 0},
		{"tanh", 0, 0, 0},
		{"asinh", 0, 0, 0},
		{"acosh", 1, 0, 0},
		{"log", 1, 10, 0},
		{"nroot", 16, 2, 4},
		{"min", 2, -3, -3},
		{"max", 2, -3, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fn := functions[c.name]
			if fn == nil {
				t.Fatalf("no function named %s", c.name)
			}
			var got float64
			switch fn.arity {
			case 1:
				got = fn.fn1(c.x)
			case 2:
				got = fn.fn2(c.x, c.y)
			}
			if got != c.want {
				t.Errorf("%s: wrong result: want %g, got %g", c.name, c.want, got)
			}
		})
	}
}

func TestConstants(t *testing.T) {
	if constants["e"] != math.E {
		t.Errorf("e: want %g, got %g", math.E, constants["e"])
	}
	if constants["pi"] != math.Pi {
		t.Errorf("pi: want %g, got %g", math.Pi, constants["pi"])
	}
}
