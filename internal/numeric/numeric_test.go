package numeric

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	t.Parallel()
	tests := []struct {
		m, n, want uint64
	}{
		{0, 0, 0},
		{0, 9, 9},
		{9, 0, 9},
		{12, 18, 6},
		{17, 5, 1},
		{1 << 40, 1 << 20, 1 << 20},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
		{math.MaxUint64, 3, 3},
		{2 * 3 * 5 * 7 * 11 * 13, 7 * 13 * 17, 91},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.m, tt.n), "GCD(%d, %d)", tt.m, tt.n)
		assert.Equal(t, tt.want, GCDEuclid(tt.m, tt.n), "GCDEuclid(%d, %d)", tt.m, tt.n)
	}
	assert.Equal(t, uint8(4), GCD[uint8](252, 8))
	assert.Equal(t, uint32(6), GCD[uint32](48, 18))
}

func TestGCDSigned(t *testing.T) {
	t.Parallel()
	g, overflow := GCDSigned[int64](-12, 18)
	assert.Equal(t, int64(6), g)
	assert.False(t, overflow)

	g, overflow = GCDSigned[int64](-12, -18)
	assert.Equal(t, int64(6), g)
	assert.False(t, overflow)

	_, overflow = GCDSigned[int64](math.MinInt64, 0)
	assert.True(t, overflow, "gcd(MinInt64, 0) = 2^63 does not fit")

	g32, overflow := GCDSigned[int32](math.MinInt32, 6)
	assert.Equal(t, int32(2), g32)
	assert.False(t, overflow)
}

func TestLCM(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0), LCM[uint64](0, 5))
	assert.Equal(t, uint64(36), LCM[uint64](12, 18))
	assert.Equal(t, uint32(12), LCM[uint32](4, 6))

	l, overflow := LCMChecked[uint64](12, 18)
	assert.Equal(t, uint64(36), l)
	assert.False(t, overflow)

	_, overflow = LCMChecked[uint64](math.MaxUint64, math.MaxUint64-1)
	assert.True(t, overflow)

	l8, overflow := LCMChecked[uint8](16, 15)
	assert.Equal(t, uint8(240), l8)
	assert.False(t, overflow)
	_, overflow = LCMChecked[uint8](17, 16)
	assert.True(t, overflow)

	ls, overflow := LCMSigned[int64](-4, 6)
	assert.Equal(t, int64(12), ls)
	assert.False(t, overflow)
	_, overflow = LCMSigned[int64](math.MaxInt64, math.MaxInt64-1)
	assert.True(t, overflow)
	_, overflow = LCMSigned[int64](math.MinInt64, 1)
	assert.True(t, overflow)
}

func TestPower(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(1), Power[uint64](0, 0))
	assert.Equal(t, uint64(0), Power[uint64](0, 5))
	assert.Equal(t, uint64(1024), Power[uint64](2, 10))
	assert.Equal(t, int64(-27), Power[int64](-3, 3))
	assert.Equal(t, int64(81), Power[int64](-3, 4))
	assert.Equal(t, uint8(0), Power[uint8](2, 8), "wraps modulo 2^8")

	p, overflow := PowerChecked[uint64](3, 40)
	assert.Equal(t, uint64(12157665459056928801), p)
	assert.False(t, overflow)

	_, overflow = PowerChecked[uint64](3, 41)
	assert.True(t, overflow)

	_, overflow = PowerChecked[uint64](2, 64)
	assert.True(t, overflow)

	p, overflow = PowerChecked[uint64](1, math.MaxUint64)
	assert.Equal(t, uint64(1), p)
	assert.False(t, overflow)

	p8, overflow := PowerChecked[uint8](3, 5)
	assert.Equal(t, uint8(243), p8)
	assert.False(t, overflow)
	_, overflow = PowerChecked[uint8](3, 6)
	assert.True(t, overflow)
}

func TestPowerMod(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0), PowerMod[uint64](5, 3, 0))
	assert.Equal(t, uint64(0), PowerMod[uint64](5, 3, 1))
	assert.Equal(t, uint64(1), PowerMod[uint64](5, 0, 7))
	assert.Equal(t, uint64(445), PowerMod[uint64](4, 13, 497))

	// Fermat: a^(p-1) = 1 mod p for the largest 64-bit prime.
	const p = 18446744073709551557
	assert.Equal(t, uint64(1), PowerMod[uint64](123456789, p-1, p))

	assert.Equal(t, int64(3), PowerModSigned(-2, 3, 11), "(-2)^3 = -8 = 3 mod 11")
	assert.Equal(t, int64(4), PowerModSigned(-2, 2, 11))
	assert.Equal(t, int64(0), PowerModSigned(-11, 5, 11))
	assert.Equal(t, int64(0), PowerModSigned(7, 5, 1))
}

func TestModMul(t *testing.T) {
	t.Parallel()
	const m = math.MaxUint64 - 58
	a, b := uint64(math.MaxUint64-1), uint64(math.MaxUint64-2)
	want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	want.Mod(want, new(big.Int).SetUint64(m))
	assert.Equal(t, want.Uint64(), ModMul[uint64](a, b, m))
	assert.Equal(t, uint64(0), ModMul[uint64](a, b, 0))

	assert.Equal(t, int64(1), ModMulSigned(-3, 5, 8), "-15 mod 8")
	assert.Equal(t, int64(7), ModMulSigned(-3, -5, 8))
	assert.Equal(t, int64(0), ModMulSigned(-4, 2, 8))
}

func TestMulFull(t *testing.T) {
	t.Parallel()
	p := MulFull64(math.MaxUint64, math.MaxUint64)
	assert.Equal(t, Uint128{Hi: math.MaxUint64 - 1, Lo: 1}, p)
	assert.Equal(t, "340282366920938463426481119284349108225", p.String())

	s := MulFullSigned64(math.MinInt64, -1)
	assert.False(t, s.IsNeg())
	assert.Equal(t, "9223372036854775808", s.String())

	s = MulFullSigned64(math.MinInt64, math.MaxInt64)
	assert.True(t, s.IsNeg())
	want := new(big.Int).Mul(big.NewInt(math.MinInt64), big.NewInt(math.MaxInt64))
	assert.Equal(t, want.String(), s.String())

	assert.Equal(t, "0", MulFullSigned64(0, -7).String())
}

func TestAbs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(5), Abs[int64](-5))
	assert.Equal(t, int8(7), Abs[int8](7))
	assert.Equal(t, uint64(1)<<63, UnsignedAbs64(math.MinInt64))
	assert.Equal(t, uint32(1)<<31, UnsignedAbs32(math.MinInt32))
}

func TestUint128(t *testing.T) {
	t.Parallel()
	maxU := Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}

	sum, carry := maxU.Add(From64(1))
	assert.True(t, carry)
	assert.True(t, sum.IsZero())

	sum, carry = From64(math.MaxUint64).Add(From64(1))
	assert.False(t, carry)
	assert.Equal(t, Uint128{Hi: 1}, sum)

	assert.Equal(t, From64(math.MaxUint64), Uint128{Hi: 1}.Sub(From64(1)))

	prod, overflow := Uint128{Hi: 1}.Mul64(math.MaxUint64)
	assert.False(t, overflow)
	assert.Equal(t, Uint128{Hi: math.MaxUint64}, prod)
	_, overflow = maxU.Mul64(2)
	assert.True(t, overflow)

	assert.Equal(t, -1, From64(5).Cmp(Uint128{Hi: 1}))
	assert.Equal(t, 1, Uint128{Hi: 1}.Cmp(From64(math.MaxUint64)))
	assert.Equal(t, 0, maxU.Cmp(maxU))

	assert.Equal(t, Uint128{Hi: 1}, From64(1).Lsh(64))
	assert.Equal(t, From64(1), Uint128{Hi: 1}.Rsh(64))
	assert.Equal(t, Uint128{Hi: 0x8000000000000000}, From64(1).Lsh(127))
	assert.Equal(t, 64, Uint128{Hi: 1}.TrailingZeros())
	assert.Equal(t, 128, Uint128{}.TrailingZeros())
	assert.Equal(t, 63, Uint128{Hi: 1}.LeadingZeros())
}

func TestUint128QuoRem(t *testing.T) {
	t.Parallel()
	toBig := func(u Uint128) *big.Int {
		b := new(big.Int).SetUint64(u.Hi)
		b.Lsh(b, 64)
		return b.Or(b, new(big.Int).SetUint64(u.Lo))
	}
	cases := [][2]Uint128{
		{{Hi: 5, Lo: 17}, From64(3)},
		{{Hi: math.MaxUint64, Lo: math.MaxUint64}, {Hi: 1, Lo: 0}},
		{{Hi: math.MaxUint64, Lo: 12345}, {Hi: 0x00000000ffffffff, Lo: math.MaxUint64}},
		{{Hi: 3, Lo: 0}, {Hi: 7, Lo: 0}},
		{{Hi: 1 << 62, Lo: 99}, {Hi: 1 << 62, Lo: 99}},
	}
	for _, c := range cases {
		q, r := c[0].QuoRem(c[1])
		wq, wr := new(big.Int).QuoRem(toBig(c[0]), toBig(c[1]), new(big.Int))
		require.Equal(t, wq.String(), q.String(), "%s / %s", c[0], c[1])
		require.Equal(t, wr.String(), r.String(), "%s %% %s", c[0], c[1])
	}
}

func TestUint128GCD(t *testing.T) {
	t.Parallel()
	a := MulFull64(1<<40*3, 1<<30*7)
	b := MulFull64(1<<35*5, 1<<10*7)
	assert.Equal(t, MulFull64(1<<45, 7), a.GCD(b))
	assert.Equal(t, From64(9), Uint128{}.GCD(From64(9)))
	assert.Equal(t, From64(9), From64(9).GCD(Uint128{}))
}
