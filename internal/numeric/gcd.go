package numeric

import (
	"math/bits"

	"fortio.org/safecast"
)

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the set of all integer types.
type Integer interface {
	Signed | Unsigned
}

// GCD returns the greatest common divisor of m and n using the binary
// (Stein) algorithm. GCD(0, n) is n and GCD(0, 0) is 0.
func GCD[T Unsigned](m, n T) T {
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}
	i := bits.TrailingZeros64(uint64(m))
	j := bits.TrailingZeros64(uint64(n))
	m >>= i
	n >>= j
	k := min(i, j)
	for {
		if m > n {
			m, n = n, m
		}
		n -= m
		if n == 0 {
			return m << k
		}
		n >>= bits.TrailingZeros64(uint64(n))
	}
}

// GCDEuclid returns the greatest common divisor of m and n using Euclid's
// remainder algorithm. It agrees with GCD for all inputs.
func GCDEuclid[T Unsigned](m, n T) T {
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

// GCDSigned returns the non-negative greatest common divisor of m and n.
// overflow is true when the result does not fit in T, which happens only
// for GCD(MinValue, 0), GCD(MinValue, MinValue) and the reverse.
func GCDSigned[T Signed](m, n T) (gcd T, overflow bool) {
	g := GCD(unsignedAbs(m), unsignedAbs(n))
	r, err := safecast.Conv[T](g)
	if err != nil {
		return T(g), true
	}
	return r, false
}

// LCM returns the least common multiple of m and n, wrapping modulo the
// width of T. A zero operand gives 0.
func LCM[T Unsigned](m, n T) T {
	if m == 0 || n == 0 {
		return 0
	}
	return m / GCD(m, n) * n
}

// LCMChecked is LCM with an overflow flag.
func LCMChecked[T Unsigned](m, n T) (lcm T, overflow bool) {
	if m == 0 || n == 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(m/GCD(m, n)), uint64(n))
	return T(lo), hi != 0 || lo > uint64(^T(0))
}

// LCMSigned returns the non-negative least common multiple of m and n and
// reports whether it overflowed T.
func LCMSigned[T Signed](m, n T) (lcm T, overflow bool) {
	if m == 0 || n == 0 {
		return 0, false
	}
	um, un := unsignedAbs(m), unsignedAbs(n)
	hi, lo := bits.Mul64(um/GCD(um, un), un)
	r, err := safecast.Conv[T](lo)
	if err != nil {
		return T(lo), true
	}
	return r, hi != 0
}

// Abs returns the absolute value of x. Abs of the minimum value of T wraps
// to itself; use UnsignedAbs64 or UnsignedAbs32 when that matters.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// UnsignedAbs64 returns |x| as a uint64, exact for math.MinInt64.
func UnsignedAbs64(x int64) uint64 {
	return unsignedAbs(x)
}

// UnsignedAbs32 returns |x| as a uint32, exact for math.MinInt32.
func UnsignedAbs32(x int32) uint32 {
	return uint32(unsignedAbs(x))
}

func unsignedAbs[T Signed](x T) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	return u
}
