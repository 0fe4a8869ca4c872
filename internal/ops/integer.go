package ops

import (
	"context"
	"math"
	"math/bits"
	"strconv"

	"fortio.org/safecast"
	"github.com/agbru/arithmos/internal/bigint"
	apperrors "github.com/agbru/arithmos/internal/errors"
)

// Context is polled every ctxPollInterval iterations of the long loops.
const ctxPollInterval = 256

// log2(phi), the growth rate of Fibonacci numbers in bits per index.
const fibBitsPerIndex = 0.6942419136306174

func integerOps() []Operation {
	return []Operation{
		{Name: "sum", Category: CategoryInteger, Summary: "a + b", Args: []string{"a", "b"},
			Run: binary((*bigint.Int).Sum)},
		{Name: "diff", Category: CategoryInteger, Summary: "a - b", Args: []string{"a", "b"},
			Run: binary((*bigint.Int).Difference)},
		{Name: "add", Category: CategoryInteger, Summary: "accumulate a + b + ... in place", Args: []string{"a", "b"}, Variadic: true,
			Run: fold((*bigint.Int).Add)},
		{Name: "sub", Category: CategoryInteger, Summary: "accumulate a - b - ... in place", Args: []string{"a", "b"}, Variadic: true,
			Run: fold((*bigint.Int).Subtract)},
		{Name: "mul", Category: CategoryInteger, Summary: "a * b * ...", Args: []string{"a", "b"}, Variadic: true,
			Run: fold((*bigint.Int).Multiply)},
		{Name: "cmp", Category: CategoryInteger, Summary: "-1, 0 or 1 as a <, = or > b", Args: []string{"a", "b"},
			Run: runCmp},
		{Name: "neg", Category: CategoryInteger, Summary: "-a", Args: []string{"a"},
			Run: unary((*bigint.Int).Neg)},
		{Name: "abs", Category: CategoryInteger, Summary: "|a|", Args: []string{"a"},
			Run: unary((*bigint.Int).Abs)},
		{Name: "fib", Category: CategoryInteger, Summary: "n-th Fibonacci number", Args: []string{"n"},
			Run: runFib},
		{Name: "fact", Category: CategoryInteger, Summary: "n!", Args: []string{"n"},
			Run: runFact},
		{Name: "pow", Category: CategoryInteger, Summary: "a raised to k", Args: []string{"a", "k"},
			Run: runPow},
	}
}

func binary(f func(z, x, y *bigint.Int) *bigint.Int) Func {
	return func(_ context.Context, _ Env, args []string) (Result, error) {
		x, err := parseInt(args, 0)
		if err != nil {
			return Result{}, err
		}
		y, err := parseInt(args, 1)
		if err != nil {
			return Result{}, err
		}
		return Result{Int: f(new(bigint.Int), x, y)}, nil
	}
}

func unary(f func(z *bigint.Int) *bigint.Int) Func {
	return func(_ context.Context, _ Env, args []string) (Result, error) {
		x, err := parseInt(args, 0)
		if err != nil {
			return Result{}, err
		}
		return Result{Int: f(x)}, nil
	}
}

// fold applies step left to right, accumulating into the first operand.
func fold(step func(z, x *bigint.Int) *bigint.Int) Func {
	return func(ctx context.Context, _ Env, args []string) (Result, error) {
		xs, err := parseInts(args)
		if err != nil {
			return Result{}, err
		}
		z := xs[0]
		for _, x := range xs[1:] {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			step(z, x)
		}
		return Result{Int: z}, nil
	}
}

func runCmp(_ context.Context, _ Env, args []string) (Result, error) {
	x, err := parseInt(args, 0)
	if err != nil {
		return Result{}, err
	}
	y, err := parseInt(args, 1)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: strconv.Itoa(x.Cmp(y))}, nil
}

// checkSize refuses a result estimated at resultBits bits when it exceeds
// env.MaxResultWords.
func checkSize(op string, env Env, resultBits float64) error {
	if env.MaxResultWords <= 0 {
		return nil
	}
	limit, err := safecast.Conv[uint64](env.MaxResultWords)
	if err != nil {
		return err
	}
	words := uint64(math.MaxUint64 / 8)
	if resultBits/64 < float64(words) {
		words = uint64(resultBits/64) + 1
	}
	if words > limit {
		return apperrors.MemoryError{Operation: op, Requested: words * 8, Limit: limit * 8}
	}
	return nil
}

func runFib(ctx context.Context, env Env, args []string) (Result, error) {
	n, err := parseUint64(args, 0)
	if err != nil {
		return Result{}, err
	}
	if err := checkSize("fib", env, float64(n)*fibBitsPerIndex); err != nil {
		return Result{}, err
	}
	f, err := Fibonacci(ctx, n)
	if err != nil {
		return Result{}, err
	}
	return Result{Int: f}, nil
}

// Fibonacci returns F(n) by fast doubling:
//
//	F(2k)   = F(k) * (2F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
//
// scanning the bits of n from the top. ctx is checked once per bit.
func Fibonacci(ctx context.Context, n uint64) (*bigint.Int, error) {
	a, b := bigint.New(0, false), bigint.New(1, false)
	t, sq := new(bigint.Int), new(bigint.Int)
	for i := bits.Len64(n) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t.Sum(b, b).Subtract(a).Multiply(a)
		sq.Product(a, a)
		a.Product(b, b).Add(sq)
		// t = F(2k), a = F(2k+1), b is scratch.
		if n>>uint(i)&1 == 0 {
			a, b, t = t, a, b
		} else {
			t.Add(a)
			b, t = t, b
		}
	}
	return a, nil
}

func runFact(ctx context.Context, env Env, args []string) (Result, error) {
	n, err := parseUint64(args, 0)
	if err != nil {
		return Result{}, err
	}
	lg, _ := math.Lgamma(float64(n) + 1)
	if err := checkSize("fact", env, lg/math.Ln2); err != nil {
		return Result{}, err
	}
	f, err := Factorial(ctx, n)
	if err != nil {
		return Result{}, err
	}
	return Result{Int: f}, nil
}

// Factorial returns n! by repeated scalar multiplication.
func Factorial(ctx context.Context, n uint64) (*bigint.Int, error) {
	z := bigint.New(1, false)
	for i := uint64(2); i <= n && i != 0; i++ {
		if i%ctxPollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		z.MulUint64(i)
	}
	return z, nil
}

func runPow(ctx context.Context, env Env, args []string) (Result, error) {
	a, err := parseInt(args, 0)
	if err != nil {
		return Result{}, err
	}
	k, err := parseUint64(args, 1)
	if err != nil {
		return Result{}, err
	}
	if err := checkSize("pow", env, float64(a.BitLen())*float64(k)); err != nil {
		return Result{}, err
	}
	p, err := Power(ctx, a, k)
	if err != nil {
		return Result{}, err
	}
	return Result{Int: p}, nil
}

// Power returns a**k by square-and-multiply. a is not modified. Power(0, 0)
// is 1.
func Power(ctx context.Context, a *bigint.Int, k uint64) (*bigint.Int, error) {
	result := bigint.New(1, false)
	base := a.Clone()
	for k != 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if k&1 == 1 {
			result.Multiply(base)
		}
		k >>= 1
		if k != 0 {
			base.Multiply(base)
		}
	}
	return result, nil
}
