// Package fixedpoint implements signed 16-bit Q-format arithmetic.
//
// A value is a raw int16 interpreted as raw / 2^q. Add and Sub wrap on
// overflow like int16 arithmetic; Mul widens to 64 bits before shifting back.
package fixedpoint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxQ is the largest supported number of fractional bits.
const MaxQ = 15

// fracDigits is the number of decimal places Format prints.
const fracDigits = 6

// Add returns a + b, wrapping to int16.
func Add(a, b int16) int16 {
	return a + b
}

// Sub returns a - b, wrapping to int16.
func Sub(a, b int16) int16 {
	return a - b
}

// Mul returns a * b in the same Q format: the 64-bit product shifted right by q.
func Mul(a, b, q int16) int16 {
	product := int64(a) * int64(b)
	return int16(product >> uint(q))
}

// Format renders raw / 2^q with six decimal places, truncated toward zero.
// A negative q renders raw as a plain integer.
func Format(raw, q int16) string {
	if q < 0 {
		return strconv.Itoa(int(raw))
	}

	abs := int64(raw)
	neg := abs < 0
	if neg {
		abs = -abs
	}

	intPart := abs >> uint(q)
	fracRaw := abs & (int64(1)<<uint(q) - 1)

	var fracPart int64
	if q > 0 {
		fracPart = fracRaw * 1_000_000 >> uint(q)
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%d.%0*d", intPart, fracDigits, fracPart)
	return sb.String()
}

// EvalPoly computes a*x^2 - b*x + c in Q format.
func EvalPoly(x, a, b, c, q int16) int16 {
	xSq := Mul(x, x, q)
	term1 := Mul(a, xSq, q)
	term2 := Mul(b, x, q)
	return Add(Sub(term1, term2), c)
}

// DescribePoly writes the polynomial inputs and result as one line.
func DescribePoly(w io.Writer, x, a, b, c, q int16) error {
	y := EvalPoly(x, a, b, c, q)
	_, err := fmt.Fprintf(w, "the polynomial output for a=%s, b=%s, c=%s is %s\n",
		Format(a, q), Format(b, q), Format(c, q), Format(y, q))
	return err
}

// ValidQ reports whether q is usable for arithmetic.
func ValidQ(q int16) bool {
	return q >= 0 && q <= MaxQ
}
