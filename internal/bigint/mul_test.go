package bigint

import (
	"math/big"
	"math/rand/v2"
	"testing"
)

// randomInt returns a value with exactly n words and a random sign.
func randomInt(r *rand.Rand, n int) *Int {
	z := new(Int)
	z.reserve(n)
	z.digits = z.digits[:n]
	for i := range z.digits {
		z.digits[i] = r.Uint64()
	}
	if z.digits[n-1] == 0 {
		z.digits[n-1] = 1
	}
	z.neg = r.IntN(2) == 1
	return z.norm()
}

func TestProductSmall(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y, want string
	}{
		{"0", "12345", "0"},
		{"-12345", "0", "0"},
		{"-3", "4", "-12"},
		{"-3", "-4", "12"},
		{"18446744073709551615", "18446744073709551615", "340282366920938463426481119284349108225"},
		{"-18446744073709551616", "18446744073709551616", "-340282366920938463463374607431768211456"},
	}
	for _, tt := range tests {
		got := new(Int).Product(MustParse(tt.x), MustParse(tt.y))
		if got.String() != tt.want || !isCanonical(got) {
			t.Errorf("Product(%s, %s) = %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestProductMatchesMathBig(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 2))
	sizes := [][2]int{{1, 1}, {3, 7}, {39, 40}, {40, 40}, {41, 90}, {64, 64}, {100, 33}, {257, 129}, {300, 41}}
	for _, sz := range sizes {
		x, y := randomInt(r, sz[0]), randomInt(r, sz[1])
		got := new(Int).Product(x, y)
		want := new(big.Int).Mul(toBig(t, x), toBig(t, y))
		if toBig(t, got).Cmp(want) != 0 {
			t.Errorf("Product of %dx%d words disagrees with math/big", sz[0], sz[1])
		}
		if !isCanonical(got) {
			t.Errorf("Product of %dx%d words is not canonical", sz[0], sz[1])
		}
	}
}

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	defer SetKaratsubaThreshold(SetKaratsubaThreshold(MinKaratsubaThreshold))

	for _, sz := range [][2]int{{4, 4}, {5, 4}, {8, 5}, {9, 9}, {17, 6}, {33, 32}, {70, 20}, {128, 127}} {
		x, y := randomInt(r, sz[0]), randomInt(r, sz[1])
		xd, yd := x.words(), y.words()

		want := make([]uint64, len(xd)+len(yd))
		if len(xd) >= len(yd) {
			basicMul(want, xd, yd)
		} else {
			basicMul(want, yd, xd)
		}
		got := make([]uint64, len(xd)+len(yd))
		mulWords(got, xd, yd)

		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%dx%d words: word %d = %#x, want %#x", sz[0], sz[1], i, got[i], want[i])
				break
			}
		}
	}
}

func TestSetKaratsubaThreshold(t *testing.T) {
	prev := SetKaratsubaThreshold(1)
	defer SetKaratsubaThreshold(prev)
	if got := KaratsubaThreshold(); got != MinKaratsubaThreshold {
		t.Errorf("KaratsubaThreshold() = %d, want %d", got, MinKaratsubaThreshold)
	}
}

func TestMultiplyInPlace(t *testing.T) {
	t.Parallel()
	x := New(1, false)
	want := big.NewInt(1)
	for i := uint64(1); i <= 60; i++ {
		x.Multiply(New(i, false))
		want.Mul(want, new(big.Int).SetUint64(i))
	}
	if toBig(t, x).Cmp(want) != 0 {
		t.Errorf("60! = %s, want %s", x, want)
	}
	x.Multiply(x)
	want.Mul(want, want)
	if toBig(t, x).Cmp(want) != 0 {
		t.Error("x.Multiply(x) disagrees with math/big")
	}
}

func TestScalarOps(t *testing.T) {
	t.Parallel()
	x := MustParse("-123456789012345678901234567890")
	x.MulUint64(1000)
	if x.String() != "-123456789012345678901234567890000" {
		t.Errorf("MulUint64 = %s", x)
	}
	r, err := x.QuoRemUint64(7)
	if err != nil {
		t.Fatal(err)
	}
	q, m := new(big.Int).QuoRem(mustBig("123456789012345678901234567890000"), big.NewInt(7), new(big.Int))
	q.Neg(q)
	if toBig(t, x).Cmp(q) != 0 || r != m.Uint64() {
		t.Errorf("QuoRemUint64(7) = %s r %d, want %s r %s", x, r, q, m)
	}
	if _, err := x.QuoRemUint64(0); err != ErrDivisionByZero {
		t.Errorf("QuoRemUint64(0) error = %v, want ErrDivisionByZero", err)
	}
	x.MulUint64(0)
	if !x.IsZero() || x.IsNeg() {
		t.Errorf("MulUint64(0) = %s", x)
	}
}

// mustBig parses a decimal string with math/big, panicking on failure.
func mustBig(s string) *big.Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad decimal " + s)
	}
	return b
}
