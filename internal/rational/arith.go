package rational

import "github.com/agbru/arithmos/internal/numeric"

// fromWide reduces num/den and narrows both parts to 64 bits. overflow is
// true when the reduced value does not fit; the parts are then truncated.
func fromWide(num, den numeric.Uint128, neg bool) (Rat, bool) {
	if g := num.GCD(den); !g.IsZero() {
		num, _ = num.QuoRem(g)
		den, _ = den.QuoRem(g)
	}
	overflow := !num.IsUint64() || !den.IsUint64()
	r := New(num.Lo, den.Lo, neg)
	if r.IsNaN() {
		r.neg = false
	}
	return r, overflow
}

// Sum returns a + b and reports whether the exact result overflowed 64-bit
// parts. A NaN operand gives NaN; infinities of the same sign add to
// infinity.
func Sum(a, b Rat) (Rat, bool) {
	if a.neg != b.neg {
		return Difference(a, b.Neg())
	}
	if a.IsNaN() || b.IsNaN() {
		return NaN, false
	}
	if a.IsInf() && b.IsInf() {
		return a.Simplify(), false
	}
	ad := numeric.MulFull64(a.num, b.den)
	bc := numeric.MulFull64(b.num, a.den)
	bd := numeric.MulFull64(a.den, b.den)
	num, carry := ad.Add(bc)
	r, overflow := fromWide(num, bd, a.neg)
	return r, overflow || carry
}

// Difference returns a - b and reports overflow. A NaN operand gives NaN and
// so does the difference of two infinities of the same sign. A zero result
// is positive.
func Difference(a, b Rat) (Rat, bool) {
	if a.neg != b.neg {
		return Sum(a, b.Neg())
	}
	if a.IsNaN() || b.IsNaN() {
		return NaN, false
	}
	if a.IsInf() && b.IsInf() {
		return NaN, false
	}
	ad := numeric.MulFull64(a.num, b.den)
	bc := numeric.MulFull64(b.num, a.den)
	bd := numeric.MulFull64(a.den, b.den)
	neg := a.neg
	var num numeric.Uint128
	if ad.Cmp(bc) < 0 {
		num = bc.Sub(ad)
		neg = !neg
	} else {
		num = ad.Sub(bc)
	}
	r, overflow := fromWide(num, bd, neg)
	if r.IsZero() {
		r.neg = false
	}
	return r, overflow
}

// Product returns a * b and reports overflow. Zero times infinity is NaN. A
// zero result is positive.
func Product(a, b Rat) (Rat, bool) {
	num := numeric.MulFull64(a.num, b.num)
	den := numeric.MulFull64(a.den, b.den)
	r, overflow := fromWide(num, den, a.neg != b.neg)
	if r.IsZero() {
		r.neg = false
	}
	return r, overflow
}

// Quotient returns a / b, computed as a * (1/b), and reports overflow.
func Quotient(a, b Rat) (Rat, bool) {
	return Product(a, b.Inv())
}

// Pow returns r**exp and reports overflow. NaN to any power and infinity to
// the power 0 are NaN. An even power is non-negative.
func Pow(r Rat, exp uint64) (Rat, bool) {
	if r.IsNaN() || (r.IsInf() && exp == 0) {
		return NaN, false
	}
	r = r.Simplify()
	num, o1 := numeric.PowerChecked(r.num, exp)
	den, o2 := numeric.PowerChecked(r.den, exp)
	neg := r.neg && exp%2 == 1
	return Rat{num: num, den: den, neg: neg}, o1 || o2
}
