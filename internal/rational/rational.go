// Package rational implements signed fractions of two 64-bit magnitudes
// with IEEE-style special values.
//
// A Rat stores an unsigned numerator and denominator plus a sign. The
// denominator doubles as a tag: n/0 with n != 0 is infinity and 0/0 is NaN.
// Arithmetic uses exact 128-bit intermediates and reports when a result no
// longer fits in 64-bit parts.
package rational

import (
	"github.com/agbru/arithmos/internal/numeric"
)

// Kind classifies a Rat.
type Kind int

const (
	// KindZero is 0/d for d != 0.
	KindZero Kind = iota
	// KindFinite is n/d for n, d != 0.
	KindFinite
	// KindInf is n/0 for n != 0.
	KindInf
	// KindNaN is 0/0.
	KindNaN
)

var kindNames = [...]string{"zero", "finite", "infinity", "NaN"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Rat is a signed rational number. The zero value is positive zero with a
// zero denominator, which reads as NaN; use New or the predeclared values.
type Rat struct {
	num, den uint64
	neg      bool
}

// Special values.
var (
	Zero    = Rat{num: 0, den: 1}
	NegZero = Rat{num: 0, den: 1, neg: true}
	One     = Rat{num: 1, den: 1}
	Inf     = Rat{num: 1, den: 0}
	NegInf  = Rat{num: 1, den: 0, neg: true}
	NaN     = Rat{num: 0, den: 0}
)

// New returns num/den with the given sign, reduced to lowest terms.
func New(num, den uint64, neg bool) Rat {
	return Rat{num: num, den: den, neg: neg}.Simplify()
}

// FromInt64 returns v/1.
func FromInt64(v int64) Rat {
	return Rat{num: numeric.UnsignedAbs64(v), den: 1, neg: v < 0}
}

// Num returns the numerator magnitude.
func (r Rat) Num() uint64 { return r.num }

// Den returns the denominator.
func (r Rat) Den() uint64 { return r.den }

// IsNeg reports whether the sign flag is set. Negative zero and negative
// infinity report true.
func (r Rat) IsNeg() bool { return r.neg }

// Kind returns the variant of r.
func (r Rat) Kind() Kind {
	switch {
	case r.num == 0 && r.den == 0:
		return KindNaN
	case r.den == 0:
		return KindInf
	case r.num == 0:
		return KindZero
	default:
		return KindFinite
	}
}

// IsZero reports whether r is zero of either sign.
func (r Rat) IsZero() bool { return r.num == 0 && r.den != 0 }

// IsInf reports whether r is infinite of either sign.
func (r Rat) IsInf() bool { return r.num != 0 && r.den == 0 }

// IsNaN reports whether r is NaN.
func (r Rat) IsNaN() bool { return r.num == 0 && r.den == 0 }

// Simplify returns r reduced to lowest terms. Infinities reduce to 1/0; NaN
// is returned unchanged.
func (r Rat) Simplify() Rat {
	g := numeric.GCD(r.num, r.den)
	if g == 0 {
		return r
	}
	r.num /= g
	r.den /= g
	return r
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	r.neg = !r.neg
	return r
}

// Abs returns |r|.
func (r Rat) Abs() Rat {
	r.neg = false
	return r
}

// Inv returns 1/r. The inverse of zero is infinity of the same sign and the
// inverse of NaN is positive NaN.
func (r Rat) Inv() Rat {
	if r.IsNaN() {
		return NaN
	}
	r.num, r.den = r.den, r.num
	return r.Simplify()
}

// Cmp compares a and b and returns -1, 0 or +1. Zeros of either sign are
// equal. NaN compares equal to everything; use Equal to detect it.
func Cmp(a, b Rat) int {
	if a.IsNaN() || b.IsNaN() {
		return 0
	}
	a, b = a.Simplify(), b.Simplify()
	if a.IsZero() && b.IsZero() {
		return 0
	}
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	g := numeric.GCD(a.den, b.den)
	if g == 0 {
		// Both infinite with the same sign.
		return 0
	}
	lhs := numeric.MulFull64(a.num, b.den/g)
	rhs := numeric.MulFull64(b.num, a.den/g)
	c := lhs.Cmp(rhs)
	if a.neg {
		c = -c
	}
	return c
}

// Equal reports whether a and b have the same reduced value and sign, so
// 0 and -0 differ even though Cmp orders them together. NaN is equal to
// nothing, itself included.
func Equal(a, b Rat) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.neg == b.neg && Cmp(a, b) == 0
}

// Float64 returns the nearest float64 to r. Infinities and NaN map to their
// IEEE counterparts.
func (r Rat) Float64() float64 {
	f := float64(r.num) / float64(r.den)
	if r.neg {
		f = -f
	}
	return f
}

// Float32 returns the nearest float32 to r.
func (r Rat) Float32() float32 {
	return float32(r.Float64())
}
