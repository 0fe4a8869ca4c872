package numeric

import (
	"errors"
	"math/bits"
)

// ErrZeroModulus reports a modular operation requested with modulus 0.
var ErrZeroModulus = errors.New("numeric: zero modulus")

// Power returns base**exp by square-and-multiply, wrapping modulo the width
// of T. Power(0, 0) is 1.
func Power[T Integer](base T, exp uint64) T {
	result := T(1)
	for exp != 0 {
		if exp&1 == 1 {
			result *= base
		}
		exp >>= 1
		if exp != 0 {
			base *= base
		}
	}
	return result
}

// PowerChecked is Power for unsigned types with an overflow flag. The
// returned value is the wrapped result.
func PowerChecked[T Unsigned](base T, exp uint64) (pow T, overflow bool) {
	limit := uint64(^T(0))
	result, b := uint64(1), uint64(base)
	for exp != 0 {
		if exp&1 == 1 {
			hi, lo := bits.Mul64(result, b)
			overflow = overflow || hi != 0 || lo > limit
			result = uint64(T(lo))
		}
		exp >>= 1
		if exp != 0 {
			hi, lo := bits.Mul64(b, b)
			overflow = overflow || hi != 0 || lo > limit
			b = uint64(T(lo))
		}
	}
	return T(result), overflow
}

// PowerMod returns base**exp mod m. It returns 0 when m is 0 or 1.
func PowerMod[T Unsigned](base T, exp uint64, m T) T {
	if m <= 1 {
		return 0
	}
	result, b := T(1), base%m
	for exp != 0 {
		if exp&1 == 1 {
			result = ModMul(result, b, m)
		}
		exp >>= 1
		if exp != 0 {
			b = ModMul(b, b, m)
		}
	}
	return result
}

// PowerModSigned returns base**exp mod m in [0, m). A negative base is first
// reduced to its non-negative residue. m must not exceed math.MaxInt64+1 for
// the result to be representable; 0 is returned when m is 0 or 1.
func PowerModSigned(base int64, exp uint64, m uint64) int64 {
	if m <= 1 {
		return 0
	}
	b := UnsignedAbs64(base) % m
	if base < 0 && b != 0 {
		b = m - b
	}
	return int64(PowerMod(b, exp, m))
}

// ModMul returns a*b mod m using a full 128-bit product. It returns 0 when
// m is 0.
func ModMul[T Unsigned](a, b, m T) T {
	if m == 0 {
		return 0
	}
	mm := uint64(m)
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	_, r := bits.Div64(hi%mm, lo, mm)
	return T(r)
}

// ModMulSigned returns a*b mod m in [0, m). It returns 0 when m is 0.
func ModMulSigned(a, b int64, m uint64) int64 {
	if m == 0 {
		return 0
	}
	r := ModMul(UnsignedAbs64(a), UnsignedAbs64(b), m)
	if (a < 0) != (b < 0) && r != 0 {
		r = m - r
	}
	return int64(r)
}

// MulFull64 returns the exact 128-bit product of a and b.
func MulFull64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Int128 is a signed 128-bit value in two's complement.
type Int128 struct {
	Hi int64
	Lo uint64
}

// MulFullSigned64 returns the exact 128-bit product of a and b.
func MulFullSigned64(a, b int64) Int128 {
	p := MulFull64(UnsignedAbs64(a), UnsignedAbs64(b))
	if (a < 0) != (b < 0) {
		p = p.negate()
	}
	return Int128{Hi: int64(p.Hi), Lo: p.Lo}
}

// IsNeg reports whether x < 0.
func (x Int128) IsNeg() bool { return x.Hi < 0 }

// Abs returns |x| as an unsigned value. It is exact for every Int128.
func (x Int128) Abs() Uint128 {
	u := Uint128{Hi: uint64(x.Hi), Lo: x.Lo}
	if x.IsNeg() {
		return u.negate()
	}
	return u
}

func (x Int128) String() string {
	if x.IsNeg() {
		return "-" + x.Abs().String()
	}
	return x.Abs().String()
}
