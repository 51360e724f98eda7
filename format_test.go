package eva_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/nerdypepper/eva"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		base int
		fix  int
		want string
	}{
		{"decimal", 24, 10, 10, "24"},
		{"decimal-frac", 3.3496, 10, 10, "3.3496"},
		{"decimal-shortest", 1.0 / 3.0, 10, 10, "0.3333333333333333"},
		{"decimal-negative", -2.5, 10, 10, "-2.5"},
		{"decimal-no-exponent", 1e21, 10, 10, "1000000000000000000000"},
		{"hex", 255, 16, 10, "ff"},
		{"hex-frac", 3.5, 16, 10, "3.8"},
		{"hex-frac-truncated", 1.0 / 3.0, 16, 4, "0.5555"},
		{"binary", 10, 2, 10, "1010"},
		{"binary-frac", 0.5, 2, 10, "0.1"},
		{"binary-tenth", 0.1, 2, 10, "0.000110011"},
		{"octal", 8, 8, 10, "10"},
		{"base36", 35, 36, 10, "z"},
		{"negative", -255, 16, 10, "-ff"},
		{"zero", 0, 16, 10, "0"},
		{"past-int64", math.Pow(2, 70), 16, 10, "400000000000000000"},
		{"nan", math.NaN(), 16, 10, "NaN"},
		{"inf", math.Inf(1), 16, 10, "+Inf"},
		{"negative-inf", math.Inf(-1), 16, 10, "-Inf"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := eva.NewContext(eva.Base(c.base), eva.Fix(c.fix))
			if got := ctx.Format(c.v); got != c.want {
				t.Errorf("%v in base %d at fix %d: want %q, got %q", c.v, c.base, c.fix, c.want, got)
			}
		})
	}
}

func ExampleContext_Format() {
	ctx := eva.NewContext(eva.Base(16))
	ans, _ := ctx.Evaluate("15 * 17")
	fmt.Println(ctx.Format(ans))
	// Output:
	// ff
}
