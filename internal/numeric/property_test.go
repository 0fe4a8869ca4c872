package numeric

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNumberTheoryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	u64 := func(v uint64) *big.Int { return new(big.Int).SetUint64(v) }

	properties.Property("binary and Euclid GCD agree with math/big", prop.ForAll(
		func(m, n uint64) bool {
			want := new(big.Int).GCD(nil, nil, u64(m), u64(n))
			return GCD(m, n) == want.Uint64() && GCDEuclid(m, n) == want.Uint64()
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("LCMChecked flags exactly the overflowing cases", prop.ForAll(
		func(m, n uint32) bool {
			l, overflow := LCMChecked(m, n)
			if m == 0 || n == 0 {
				return l == 0 && !overflow
			}
			want := new(big.Int).Mul(u64(uint64(m)), u64(uint64(n)))
			want.Quo(want, u64(uint64(GCD(m, n))))
			fits := want.Uint64() <= math.MaxUint32
			return overflow == !fits && (overflow || uint64(l) == want.Uint64())
		},
		gen.UInt32(), gen.UInt32(),
	))

	properties.Property("PowerMod agrees with math/big Exp", prop.ForAll(
		func(b, e, m uint64) bool {
			if m < 2 {
				return PowerMod(b, e, m) == 0
			}
			want := new(big.Int).Exp(u64(b), u64(e), u64(m))
			return PowerMod(b, e, m) == want.Uint64()
		},
		gen.UInt64(), gen.UInt64Range(0, 1<<20), gen.UInt64(),
	))

	properties.Property("ModMulSigned is the non-negative residue", prop.ForAll(
		func(a, b int64, m uint64) bool {
			if m == 0 {
				return ModMulSigned(a, b, m) == 0
			}
			m >>= 1 // keep the residue representable as int64
			if m == 0 {
				return true
			}
			want := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
			want.Mod(want, u64(m))
			return ModMulSigned(a, b, m) == want.Int64()
		},
		gen.Int64(), gen.Int64(), gen.UInt64(),
	))

	properties.Property("Uint128 QuoRem reconstructs the dividend", prop.ForAll(
		func(uh, ul, vh, vl uint64) bool {
			u, v := Uint128{Hi: uh, Lo: ul}, Uint128{Hi: vh >> (vh % 64), Lo: vl}
			if v.IsZero() {
				return true
			}
			q, r := u.QuoRem(v)
			if r.Cmp(v) >= 0 {
				return false
			}
			// q*v fits because q*v <= u.
			back := Uint128{}
			if q.Hi == 0 {
				back, _ = v.Mul64(q.Lo)
			} else {
				back, _ = q.Mul64(v.Lo)
			}
			sum, carry := back.Add(r)
			return !carry && sum == u
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}
