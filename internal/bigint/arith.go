package bigint

import "math/bits"

// Word-vector primitives. Unless stated otherwise, z, x and y have equal
// length and z may be x or y exactly (same first element); partial overlap
// is not allowed.

// addVV sets z = x + y and returns the carry.
func addVV(z, x, y []uint64) (c uint64) {
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y and returns the borrow.
func subVV(z, x, y []uint64) (b uint64) {
	for i := range z {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// addVW sets z = x + y for a single word y and returns the carry.
func addVW(z, x []uint64, y uint64) (c uint64) {
	c = y
	for i := range z {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y for a single word y and returns the borrow.
func subVW(z, x []uint64, y uint64) (b uint64) {
	b = y
	for i := range z {
		z[i], b = bits.Sub64(x[i], b, 0)
	}
	return b
}

// incr adds c to z in place, stopping as soon as the carry is absorbed.
func incr(z []uint64, c uint64) uint64 {
	for i := 0; i < len(z) && c != 0; i++ {
		z[i], c = bits.Add64(z[i], c, 0)
	}
	return c
}

// decr subtracts b from z in place, stopping as soon as the borrow is absorbed.
func decr(z []uint64, b uint64) uint64 {
	for i := 0; i < len(z) && b != 0; i++ {
		z[i], b = bits.Sub64(z[i], b, 0)
	}
	return b
}

// mulAddVWW sets z = x*y + r and returns the high word.
func mulAddVWW(z, x []uint64, y, r uint64) (c uint64) {
	c = r
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// addMulVVW sets z += x*y and returns the high word.
func addMulVVW(z, x []uint64, y uint64) (c uint64) {
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc uint64
		lo, cc = bits.Add64(lo, z[i], 0)
		hi += cc
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// divWVW sets z = (xn<<64 + x) / y and returns the remainder. xn must be
// less than y.
func divWVW(z []uint64, xn uint64, x []uint64, y uint64) (r uint64) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, x[i], y)
	}
	return r
}

// cmpWords compares two normalized magnitudes.
func cmpWords(x, y []uint64) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// normWords trims leading zero words, keeping at least one.
func normWords(x []uint64) []uint64 {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// alias reports whether x and y share the same backing array.
func alias(x, y []uint64) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
