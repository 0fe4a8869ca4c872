package numeric

import (
	"math/bits"
	"strconv"
	"strings"
)

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi, Lo uint64
}

// From64 returns v as a Uint128.
func From64(v uint64) Uint128 { return Uint128{Lo: v} }

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// IsUint64 reports whether u fits in 64 bits.
func (u Uint128) IsUint64() bool { return u.Hi == 0 }

// Cmp compares u and v and returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi, u.Hi == v.Hi && u.Lo < v.Lo:
		return -1
	case u == v:
		return 0
	default:
		return 1
	}
}

// Add returns u + v and whether the sum wrapped past 2^128.
func (u Uint128) Add(v Uint128) (sum Uint128, carry bool) {
	lo, c := bits.Add64(u.Lo, v.Lo, 0)
	hi, c := bits.Add64(u.Hi, v.Hi, c)
	return Uint128{Hi: hi, Lo: lo}, c != 0
}

// Sub returns u - v, wrapping below zero.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, b := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul64 returns u * v and whether the product overflowed 128 bits.
func (u Uint128) Mul64(v uint64) (prod Uint128, overflow bool) {
	hi1, lo := bits.Mul64(u.Lo, v)
	hi2, mid := bits.Mul64(u.Hi, v)
	hi, c := bits.Add64(hi1, mid, 0)
	return Uint128{Hi: hi, Lo: lo}, hi2 != 0 || c != 0
}

// Lsh returns u << n for n < 128.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh returns u >> n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// TrailingZeros returns the number of trailing zero bits; 128 for zero.
func (u Uint128) TrailingZeros() int {
	if u.Lo != 0 {
		return bits.TrailingZeros64(u.Lo)
	}
	return 64 + bits.TrailingZeros64(u.Hi)
}

// LeadingZeros returns the number of leading zero bits; 128 for zero.
func (u Uint128) LeadingZeros() int {
	if u.Hi != 0 {
		return bits.LeadingZeros64(u.Hi)
	}
	return 64 + bits.LeadingZeros64(u.Lo)
}

// QuoRem returns u / v and u % v. v must not be zero.
func (u Uint128) QuoRem(v Uint128) (q, r Uint128) {
	if v.Hi == 0 {
		var r64 uint64
		q, r64 = u.QuoRem64(v.Lo)
		return q, From64(r64)
	}
	if u.Cmp(v) < 0 {
		return Uint128{}, u
	}
	// v >= 2^64, so the quotient fits in 64 bits and a shift-subtract loop
	// runs at most 64 times.
	shift := uint(v.LeadingZeros() - u.LeadingZeros())
	d := v.Lsh(shift)
	r = u
	var qq uint64
	for i := int(shift); i >= 0; i-- {
		if r.Cmp(d) >= 0 {
			r = r.Sub(d)
			qq |= 1 << uint(i)
		}
		d = d.Rsh(1)
	}
	return From64(qq), r
}

// QuoRem64 returns u / v and u % v for a 64-bit divisor. v must not be zero.
func (u Uint128) QuoRem64(v uint64) (q Uint128, r uint64) {
	q.Hi, r = bits.Div64(0, u.Hi, v)
	q.Lo, r = bits.Div64(r, u.Lo, v)
	return q, r
}

// GCD returns the greatest common divisor of u and v (binary algorithm).
func (u Uint128) GCD(v Uint128) Uint128 {
	if u.IsZero() {
		return v
	}
	if v.IsZero() {
		return u
	}
	i, j := u.TrailingZeros(), v.TrailingZeros()
	u, v = u.Rsh(uint(i)), v.Rsh(uint(j))
	k := min(i, j)
	for {
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		v = v.Sub(u)
		if v.IsZero() {
			return u.Lsh(uint(k))
		}
		v = v.Rsh(uint(v.TrailingZeros()))
	}
}

func (u Uint128) negate() Uint128 {
	return Uint128{}.Sub(u)
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.Lo, 10)
	}
	const base = 10_000_000_000_000_000_000 // 10^19
	var parts []string
	for !u.IsUint64() {
		var r uint64
		u, r = u.QuoRem64(base)
		s := strconv.FormatUint(r, 10)
		parts = append(parts, strings.Repeat("0", 19-len(s))+s)
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(u.Lo, 10))
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
	}
	return sb.String()
}
