package bigint

import (
	"math/big"
	"testing"
)

func TestSumDifference(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y string
		sum  string
		diff string
	}{
		{"zeros", "0", "0", "0", "0"},
		{"carry across word boundary", "18446744073709551615", "1", "18446744073709551616", "18446744073709551614"},
		{"borrow across word boundary", "18446744073709551616", "-1", "18446744073709551615", "18446744073709551617"},
		{"opposite signs cancel", "-12345678901234567890", "12345678901234567890", "0", "-24691357802469135780"},
		{"smaller minus larger", "5", "18446744073709551621", "18446744073709551626", "-18446744073709551616"},
		{"both negative", "-7", "-8", "-15", "1"},
		{"negative plus positive", "-10", "3", "-7", "-13"},
		{"positive plus negative", "10", "-30", "-20", "40"},
		{"multi-word carry chain", "340282366920938463463374607431768211455", "1", "340282366920938463463374607431768211456", "340282366920938463463374607431768211454"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, y := MustParse(tt.x), MustParse(tt.y)
			if got := new(Int).Sum(x, y); got.String() != tt.sum || !isCanonical(got) {
				t.Errorf("Sum(%s, %s) = %s, want %s", tt.x, tt.y, got, tt.sum)
			}
			if got := new(Int).Difference(x, y); got.String() != tt.diff || !isCanonical(got) {
				t.Errorf("Difference(%s, %s) = %s, want %s", tt.x, tt.y, got, tt.diff)
			}
			if got := x.Clone().Add(y); got.String() != tt.sum || !isCanonical(got) {
				t.Errorf("%s.Add(%s) = %s, want %s", tt.x, tt.y, got, tt.sum)
			}
			if got := x.Clone().Subtract(y); got.String() != tt.diff || !isCanonical(got) {
				t.Errorf("%s.Subtract(%s) = %s, want %s", tt.x, tt.y, got, tt.diff)
			}
			if x.String() != MustParse(tt.x).String() || y.String() != MustParse(tt.y).String() {
				t.Error("operands were modified")
			}
		})
	}
}

func TestAddSignMismatchReduces(t *testing.T) {
	t.Parallel()
	a := New(5, false)
	a.Add(New(3, true))
	if a.String() != "2" {
		t.Errorf("5 + (-3) = %s, want 2", a)
	}
	b := New(3, false)
	b.Add(New(5, true))
	if b.String() != "-2" {
		t.Errorf("3 + (-5) = %s, want -2", b)
	}
}

func TestSelfAliasing(t *testing.T) {
	t.Parallel()
	const v = "123456789012345678901234567890123456789"

	a := MustParse(v)
	a.Add(a)
	want := new(big.Int)
	want.SetString(v, 10)
	want.Lsh(want, 1)
	if toBig(t, a).Cmp(want) != 0 {
		t.Errorf("a.Add(a) = %s, want %s", a, want)
	}

	b := MustParse("-" + v)
	b.Subtract(b)
	if !b.IsZero() || b.IsNeg() || !isCanonical(b) {
		t.Errorf("b.Subtract(b) = %s, want canonical 0", b)
	}

	c := MustParse(v)
	c.Sum(c, c)
	if toBig(t, c).Cmp(want) != 0 {
		t.Errorf("c.Sum(c, c) = %s, want %s", c, want)
	}

	d := MustParse(v)
	d.Difference(d, d)
	if !d.IsZero() || !isCanonical(d) {
		t.Errorf("d.Difference(d, d) = %s, want 0", d)
	}

	e := MustParse(v)
	f := MustParse("-1")
	e.Difference(f, e)
	wantE := new(big.Int)
	wantE.SetString("-"+v, 10)
	wantE.Sub(wantE, big.NewInt(1))
	if toBig(t, e).Cmp(wantE) != 0 {
		t.Errorf("e = f - e gives %s, want %s", e, wantE)
	}

	g := MustParse(v)
	g.Product(g, g)
	sq := new(big.Int)
	sq.SetString(v, 10)
	sq.Mul(sq, sq)
	if toBig(t, g).Cmp(sq) != 0 {
		t.Errorf("g.Product(g, g) = %s, want %s", g, sq)
	}
}

func TestAddGrowsFromSmaller(t *testing.T) {
	t.Parallel()
	x := New(1, false)
	y := MustParse("340282366920938463463374607431768211455")
	x.Add(y)
	if x.String() != "340282366920938463463374607431768211456" {
		t.Errorf("1 + (2^128-1) = %s", x)
	}
	if x.Len() != 3 {
		t.Errorf("Len() = %d, want 3", x.Len())
	}
}

func TestSubtractToZeroIsCanonical(t *testing.T) {
	t.Parallel()
	x := MustParse("-340282366920938463463374607431768211456")
	x.Subtract(MustParse("-340282366920938463463374607431768211456"))
	if !isCanonical(x) || x.Len() != 1 || x.Sign() != 0 {
		t.Errorf("x - x left %+v", x.digits)
	}
}
