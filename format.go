package eva

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// digitAlphabet holds the digit characters for bases up to 36.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Format renders v in the context's output base. Base ten results use the
// shortest decimal form that parses back to the same value, never scientific
// notation, so they rediscover the input syntax. Other bases render the
// integer part exactly and at most the context's fixed number of fractional
// digits, with trailing zeros trimmed.
func (ctx *Context) Format(v float64) string {
	if ctx.base == 10 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return formatRadix(v, ctx.base, ctx.fix)
}

func formatRadix(v float64, base, places int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	var b strings.Builder
	if math.Signbit(v) {
		b.WriteByte('-')
		v = -v
	}
	ip, fp := math.Modf(v)
	// The integer part of a float64 can pass 2^63, so render it through
	// math/big rather than int64.
	n, _ := big.NewFloat(ip).Int(nil)
	b.WriteString(n.Text(base))
	if fp > 0 && places > 0 {
		frac := make([]byte, 0, places)
		for i := 0; i < places && fp > 0; i++ {
			fp *= float64(base)
			d, r := math.Modf(fp)
			frac = append(frac, digitAlphabet[int(d)])
			fp = r
		}
		for len(frac) > 0 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		if len(frac) > 0 {
			b.WriteByte('.')
			b.Write(frac)
		}
	}
	return b.String()
}
