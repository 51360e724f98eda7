package eva

import "math"

// function describes a named function of fixed arity. Exactly one of fn1 and
// fn2 is set, matching the arity. Angle functions take their argument in
// degrees unless the evaluating context is in radian mode; the evaluator does
// the scaling, so the implementations here always see radians.
type function struct {
	name  string
	arity int
	angle bool
	fn1   func(x float64) float64
	fn2   func(x, y float64) float64
}

// monadic returns a function of one argument.
func monadic(f func(x float64) float64) *function {
	return &function{arity: 1, fn1: f}
}

// angular returns a function of one angle argument, subject to degree
// conversion.
func angular(f func(x float64) float64) *function {
	return &function{arity: 1, angle: true, fn1: f}
}

// dyadic returns a function of two arguments.
func dyadic(f func(x, y float64) float64) *function {
	return &function{arity: 2, fn2: f}
}

// functions is the table the lexer resolves words against. Inverse trig
// returns radians regardless of mode; deg and rad convert explicitly.
var functions = map[string]*function{
	"sin": angular(math.Sin),
	"cos": angular(math.Cos),
	"tan": angular(math.Tan),
	"csc": angular(func(x float64) float64 { return 1 / math.Sin(x) }),
	"sec": angular(func(x float64) float64 { return 1 / math.Cos(x) }),
	"cot": angular(func(x float64) float64 { return 1 / math.Tan(x) }),

	"asin": monadic(math.Asin),
	"acos": monadic(math.Acos),
	"atan": monadic(math.Atan),

	"sinh":  monadic(math.Sinh),
	"cosh":  monadic(math.Cosh),
	"tanh":  monadic(math.Tanh),
	"asinh": monadic(math.Asinh),
	"acosh": monadic(math.Acosh),
	"atanh": monadic(math.Atanh),

	"deg": monadic(func(x float64) float64 { return x * (180 / math.Pi) }),
	"rad": monadic(func(x float64) float64 { return x * (math.Pi / 180) }),

	"sqrt":  monadic(math.Sqrt),
	"cbrt":  monadic(math.Cbrt),
	"ln":    monadic(math.Log),
	"log10": monadic(math.Log10),
	"exp":   monadic(math.Exp),
	"exp2":  monadic(math.Exp2),
	"abs":   monadic(math.Abs),
	"ceil":  monadic(math.Ceil),
	"floor": monadic(math.Floor),
	// round is half away from zero, so round(0.5) is 1.
	"round": monadic(math.Round),

	"log":   dyadic(func(x, base float64) float64 { return math.Log(x) / math.Log(base) }),
	"nroot": dyadic(func(x, n float64) float64 { return math.Pow(x, 1/n) }),
	"min":   dyadic(math.Min),
	"max":   dyadic(math.Max),
}

// constants is the table of named values. The lexer also uses it to split
// words like e2 into e * 2.
var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

func init() {
	for name, fn := range functions {
		fn.name = name
	}
}
