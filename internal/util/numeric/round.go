// Package numeric holds the exact integer arithmetic behind unit scaling.
package numeric

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxDigits is the largest number of fraction digits RoundQuo accepts;
// 10^MaxDigits must fit in a uint64.
const MaxDigits = 19

var pow10 = func() (t [MaxDigits + 1]uint64) {
	t[0] = 1
	for i := 1; i <= MaxDigits; i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

// Fixed is a non-negative decimal with a fixed number of fraction digits:
// Int + Frac/10^Digits.
type Fixed struct {
	Int    uint64
	Frac   uint64
	Digits int
}

// RoundQuo returns n/d rounded to digits fraction digits using
// round-half-to-even. The quotient is computed exactly in 128-bit integer
// arithmetic, so ties are detected exactly and never depend on float64
// representation. It panics if d is zero or digits is outside [0, MaxDigits].
func RoundQuo(n, d uint64, digits int) Fixed {
	if d == 0 {
		panic("numeric: division by zero")
	}
	if digits < 0 || digits > MaxDigits {
		panic(fmt.Sprintf("numeric: digits %d out of range [0,%d]", digits, MaxDigits))
	}
	whole, rem := n/d, n%d
	scale := pow10[digits]

	// rem < d, so rem*scale/d < scale and hi < d holds for Div64.
	hi, lo := bits.Mul64(rem, scale)
	frac, r := bits.Div64(hi, lo, d)

	// Compare r/d against 1/2 without computing 2r, which may overflow.
	up := false
	switch {
	case r > d-r:
		up = true
	case r == d-r:
		if digits > 0 {
			up = frac%2 == 1
		} else {
			up = whole%2 == 1
		}
	}
	if up {
		if digits == 0 {
			whole++
		} else {
			frac++
			if frac == scale {
				frac = 0
				whole++
			}
		}
	}
	return Fixed{Int: whole, Frac: frac, Digits: digits}
}

// AtLeast reports whether f >= v.
func (f Fixed) AtLeast(v uint64) bool {
	return f.Int >= v
}

// IsZero reports whether f == 0.
func (f Fixed) IsZero() bool {
	return f.Int == 0 && f.Frac == 0
}

// String renders f with exactly Digits fraction digits.
func (f Fixed) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(f.Int, 10))
	if f.Digits > 0 {
		frac := strconv.FormatUint(f.Frac, 10)
		b.WriteByte('.')
		for i := len(frac); i < f.Digits; i++ {
			b.WriteByte('0')
		}
		b.WriteString(frac)
	}
	return b.String()
}

// Float64 returns the float64 nearest to f.
func (f Fixed) Float64() float64 {
	// ParseFloat rounds the exact decimal correctly; the text is always well formed.
	v, _ := strconv.ParseFloat(f.String(), 64)
	return v
}
