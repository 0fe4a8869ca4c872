//go:build gmp

// The GMP backend needs cgo and libgmp (libgmp-dev on Debian, gmp on
// Homebrew). Build with: go build -tags gmp ./cmd/arithmos

package orchestration

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ncw/gmp"
)

func init() {
	RegisterBackend("gmp", func() Backend { return gmpBackend{} })
}

// gmpBackend evaluates cases with GMP through github.com/ncw/gmp.
type gmpBackend struct{}

func (gmpBackend) Name() string { return "gmp" }

func parseGMP(s string) (*gmp.Int, error) {
	x, ok := new(gmp.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("gmp: cannot parse %q", s)
	}
	return x, nil
}

// gmpFib uses the same fast doubling recurrence as the engine.
func gmpFib(ctx context.Context, n uint64) (*gmp.Int, error) {
	a, b := gmp.NewInt(0), gmp.NewInt(1)
	t1, t2 := gmp.NewInt(0), gmp.NewInt(0)
	for i := 63; i >= 0; i-- {
		if n>>uint(i) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t1.MulUint32(b, 2)
		t1.Sub(t1, a)
		t1.Mul(a, t1)
		t2.Mul(a, a)
		a.Mul(b, b)
		t2.Add(t2, a)
		a.Set(t1)
		b.Set(t2)
		if n>>uint(i)&1 == 1 {
			t1.Add(a, b)
			a.Set(b)
			b.Set(t1)
		}
	}
	return a, nil
}

func (gmpBackend) Eval(ctx context.Context, c Case) (string, error) {
	if c.Op == "fib" {
		n, err := strconv.ParseUint(c.A, 10, 64)
		if err != nil {
			return "", err
		}
		f, err := gmpFib(ctx, n)
		if err != nil {
			return "", err
		}
		return f.String(), nil
	}
	a, err := parseGMP(c.A)
	if err != nil {
		return "", err
	}
	if c.Op == "roundtrip" {
		return a.String(), nil
	}
	b, err := parseGMP(c.B)
	if err != nil {
		return "", err
	}
	z := new(gmp.Int)
	switch c.Op {
	case "sum", "add":
		return z.Add(a, b).String(), nil
	case "diff", "sub":
		return z.Sub(a, b).String(), nil
	case "mul":
		return z.Mul(a, b).String(), nil
	case "cmp":
		return strconv.Itoa(a.Cmp(b)), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedOp, c.Op)
}
