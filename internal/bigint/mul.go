package bigint

import (
	"errors"
	"sync/atomic"
)

// DefaultKaratsubaThreshold is the operand length in words at or above which
// multiplication switches from the schoolbook method to Karatsuba.
const DefaultKaratsubaThreshold = 40

// MinKaratsubaThreshold is the smallest accepted cut-over; smaller values
// are raised to it.
const MinKaratsubaThreshold = 4

// ErrDivisionByZero is returned by QuoRemUint64 for a zero divisor.
var ErrDivisionByZero = errors.New("bigint: division by zero")

var karatsubaThreshold atomic.Int64

func init() {
	karatsubaThreshold.Store(DefaultKaratsubaThreshold)
}

// SetKaratsubaThreshold sets the Karatsuba cut-over length in words and
// returns the previous value. Values below 4 are raised to 4.
func SetKaratsubaThreshold(words int) int {
	words = max(words, MinKaratsubaThreshold)
	return int(karatsubaThreshold.Swap(int64(words)))
}

// KaratsubaThreshold returns the current Karatsuba cut-over length in words.
func KaratsubaThreshold() int {
	return int(karatsubaThreshold.Load())
}

// Product sets z = x * y and returns z. Any of z, x and y may be the same
// value.
func (z *Int) Product(x, y *Int) *Int {
	neg := x.neg != y.neg
	xd, yd := x.words(), y.words()
	if alias(z.digits, xd) {
		xd = scratchCopy(xd)
		defer releaseWords(xd)
	}
	if alias(z.digits, yd) {
		yd = scratchCopy(yd)
		defer releaseWords(yd)
	}
	n := len(xd) + len(yd)
	z.reserve(n)
	z.digits = z.digits[:n]
	mulWords(z.digits, xd, yd)
	z.neg = neg
	return z.norm()
}

// Multiply sets z = z * x and returns z. x may be z.
func (z *Int) Multiply(x *Int) *Int {
	z.init()
	return z.Product(z, x)
}

// MulUint64 multiplies z by w in place and returns z.
func (z *Int) MulUint64(w uint64) *Int {
	z.init()
	z.mulWord(w)
	return z
}

// QuoRemUint64 divides z by w in place, truncating toward zero, and returns
// the remainder of the magnitudes.
func (z *Int) QuoRemUint64(w uint64) (uint64, error) {
	if w == 0 {
		return 0, ErrDivisionByZero
	}
	z.init()
	return z.divWord(w), nil
}

// mulWords sets z = x * y. len(z) must be len(x)+len(y) and z must not
// overlap x or y.
func mulWords(z, x, y []uint64) {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if n < KaratsubaThreshold() {
		basicMul(z, x, y)
		return
	}
	if m > 2*n {
		// Unbalanced: multiply y by n-word blocks of x.
		clear(z)
		t := acquireWords(2 * n)
		defer releaseWords(t)
		for i := 0; i < m; i += n {
			blk := x[i:min(i+n, m)]
			p := t[:len(blk)+n]
			mulWords(p, blk, y)
			addAt(z, normWords(p), i)
		}
		return
	}
	karatsuba(z, x, y)
}

// basicMul is schoolbook multiplication.
func basicMul(z, x, y []uint64) {
	clear(z)
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsuba sets z = x * y for n <= m <= 2n, where m = len(x), n = len(y).
//
// With x = x1*B + x0 and y = y1*B + y0 for B = 2^(64k):
//
//	x*y = z2*B² + ((x0+x1)(y0+y1) - z0 - z2)*B + z0
//
// where z0 = x0*y0 and z2 = x1*y1.
func karatsuba(z, x, y []uint64) {
	m, n := len(x), len(y)
	k := (m + 1) / 2
	if n <= k {
		clear(z)
		p := acquireWords(k + n)
		defer releaseWords(p)
		mulWords(p, x[:k], y)
		addAt(z, normWords(p), 0)
		q := p[:m-k+n]
		mulWords(q, x[k:], y)
		addAt(z, normWords(q), k)
		return
	}

	x0, x1 := x[:k], x[k:]
	y0, y1 := y[:k], y[k:]
	z0, z2 := z[:2*k], z[2*k:]
	mulWords(z0, x0, y0)
	mulWords(z2, x1, y1)

	xs := acquireWords(k + 1)
	defer releaseWords(xs)
	ys := acquireWords(k + 1)
	defer releaseWords(ys)
	xs[k] = addWords(xs[:k], x0, x1)
	ys[k] = addWords(ys[:k], y0, y1)

	mid := acquireWords(2*k + 2)
	defer releaseWords(mid)
	mulWords(mid, xs, ys)
	subAt(mid, z0)
	subAt(mid, z2)
	addAt(z, normWords(mid), k)
}

// addWords sets z = x + y for len(x) == len(z) >= len(y) and returns the carry.
func addWords(z, x, y []uint64) uint64 {
	n := len(y)
	c := addVV(z[:n], x[:n], y)
	return addVW(z[n:], x[n:], c)
}

// addAt adds x to z starting at word i. The sum must fit in z.
func addAt(z, x []uint64, i int) {
	n := i + len(x)
	c := addVV(z[i:n], z[i:n], x)
	incr(z[n:], c)
}

// subAt subtracts x from z. The difference must be non-negative.
func subAt(z, x []uint64) {
	n := len(x)
	b := subVV(z[:n], z[:n], x)
	decr(z[n:], b)
}
