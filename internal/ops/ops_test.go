package ops

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/arithmos/internal/bigint"
	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/metrics"
	"github.com/agbru/arithmos/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(nil)
	tests := []struct {
		op   string
		args []string
		want string
	}{
		{"sum", []string{"18446744073709551615", "1"}, "18446744073709551616"},
		{"sum", []string{"-5", "3"}, "-2"},
		{"diff", []string{"3", "5"}, "-2"},
		{"diff", []string{"-7", "-7"}, "0"},
		{"add", []string{"1", "2", "3", "-10"}, "-4"},
		{"sub", []string{"100", "1", "2", "97"}, "0"},
		{"mul", []string{"-123456789012345678901234567890", "987654321098765432109876543210"}, "-121932631137021795226185032733622923332237463801111263526900"},
		{"mul", []string{"2", "3", "7"}, "42"},
		{"mul", []string{"-4", "0"}, "0"},
		{"cmp", []string{"-1", "1"}, "-1"},
		{"cmp", []string{"-0", "0"}, "0"},
		{"neg", []string{"12"}, "-12"},
		{"neg", []string{"0"}, "0"},
		{"abs", []string{"-99999999999999999999"}, "99999999999999999999"},
		{"fib", []string{"0"}, "0"},
		{"fib", []string{"1"}, "1"},
		{"fib", []string{"10"}, "55"},
		{"fib", []string{"100"}, "354224848179261915075"},
		{"fact", []string{"0"}, "1"},
		{"fact", []string{"25"}, "15511210043330985984000000"},
		{"pow", []string{"-3", "3"}, "-27"},
		{"pow", []string{"2", "100"}, "1267650600228229401496703205376"},
		{"pow", []string{"0", "0"}, "1"},
		{"gcd", []string{"-12", "18"}, "6"},
		{"lcm", []string{"4", "-6"}, "12"},
		{"pow64", []string{"3", "40"}, "12157665459056928801"},
		{"powmod", []string{"-2", "3", "5"}, "2"},
		{"powmod", []string{"2", "10", "18446744073709551615"}, "1024"},
		{"modmul", []string{"-3", "4", "7"}, "2"},
		{"mulfull", []string{"-9223372036854775808", "2"}, "-18446744073709551616"},
		{"rat-sum", []string{"1/3", "1/6"}, "1/2"},
		{"rat-diff", []string{"1/2", "3/4"}, "-1/4"},
		{"rat-mul", []string{"-2/3", "9/4"}, "-3/2"},
		{"rat-div", []string{"1", "0"}, "Inf"},
		{"rat-pow", []string{"-2/3", "3"}, "-8/27"},
		{"rat-cmp", []string{"1/3", "1/2"}, "-1"},
		{"rat-float", []string{"3/4"}, "0.75"},
	}
	for _, tt := range tests {
		t.Run(tt.op+" "+strings.Join(tt.args, " "), func(t *testing.T) {
			t.Parallel()
			res, err := e.Evaluate(context.Background(), tt.op, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.String())
			assert.Equal(t, tt.op, res.Op)
		})
	}
}

func TestFibonacciMatchesMathBig(t *testing.T) {
	t.Parallel()
	a, b := big.NewInt(0), big.NewInt(1)
	for n := uint64(0); n <= 300; n++ {
		got, err := Fibonacci(context.Background(), n)
		require.NoError(t, err)
		require.Equal(t, a.String(), got.String(), "F(%d)", n)
		a.Add(a, b)
		a, b = b, a
	}
}

func TestPowerMatchesMathBig(t *testing.T) {
	t.Parallel()
	base := bigint.MustParse("-98765432109876543210")
	want := new(big.Int)
	want.SetString("-98765432109876543210", 10)
	for _, k := range []uint64{0, 1, 2, 7, 33, 64} {
		got, err := Power(context.Background(), base, k)
		require.NoError(t, err)
		assert.Equal(t, new(big.Int).Exp(want, new(big.Int).SetUint64(k), nil).String(), got.String(), "k=%d", k)
	}
	assert.Equal(t, "-98765432109876543210", base.String(), "base must not change")
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(nil, WithMaxResultWords(16))
	ctx := context.Background()

	_, err := e.Evaluate(ctx, "div", []string{"1", "2"})
	assert.True(t, errors.Is(err, ErrUnknownOperation))

	tests := []struct {
		name     string
		op       string
		args     []string
		exitCode int
		check    func(t *testing.T, err error)
	}{
		{"arity", "sum", []string{"1"}, apperrors.ExitErrorConfig, nil},
		{"syntax", "sum", []string{"1", "12x"}, apperrors.ExitErrorConfig, func(t *testing.T, err error) {
			var v apperrors.ValidationError
			require.True(t, errors.As(err, &v))
			assert.Equal(t, "operand 2", v.Field)
			assert.Contains(t, v.Message, "offset 2")
		}},
		{"negative count", "fib", []string{"-1"}, apperrors.ExitErrorConfig, nil},
		{"bad rational", "rat-sum", []string{"1/x", "1"}, apperrors.ExitErrorConfig, nil},
		{"gcd overflow", "gcd", []string{"-9223372036854775808", "0"}, apperrors.ExitErrorOverflow, nil},
		{"lcm overflow", "lcm", []string{"9223372036854775807", "9223372036854775806"}, apperrors.ExitErrorOverflow, nil},
		{"pow64 overflow", "pow64", []string{"2", "64"}, apperrors.ExitErrorOverflow, nil},
		{"rat overflow", "rat-mul", []string{"18446744073709551615", "2"}, apperrors.ExitErrorOverflow, nil},
		{"zero modulus", "powmod", []string{"2", "3", "0"}, apperrors.ExitErrorGeneric, func(t *testing.T, err error) {
			assert.True(t, errors.Is(err, numeric.ErrZeroModulus))
			var c apperrors.CalculationError
			require.True(t, errors.As(err, &c))
			assert.Equal(t, "powmod", c.Operation)
		}},
		{"result too large", "fib", []string{"100000"}, apperrors.ExitErrorGeneric, func(t *testing.T, err error) {
			var m apperrors.MemoryError
			require.True(t, errors.As(err, &m))
			assert.Equal(t, uint64(16*8), m.Limit)
		}},
		{"pow too large", "pow", []string{"3", "1000000"}, apperrors.ExitErrorGeneric, nil},
		{"fact too large", "fact", []string{"5000"}, apperrors.ExitErrorGeneric, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := e.Evaluate(ctx, tt.op, tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, apperrors.ExitCode(err), "%v", err)
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestEvaluateCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewEvaluator(nil)
	calls := map[string][]string{
		"fib": {"1000"},
		"pow": {"7", "1000"},
		"add": {"1", "2", "3"},
	}
	for op, args := range calls {
		_, err := e.Evaluate(ctx, op, args)
		require.Error(t, err, op)
		assert.True(t, errors.Is(err, context.Canceled), op)
		assert.Equal(t, apperrors.ExitErrorCanceled, apperrors.ExitCode(err), op)
	}
	_, err := Factorial(ctx, 10000)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEvaluateLine(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(nil)
	res, err := e.EvaluateLine(context.Background(), "  mul\t12   -3 ")
	require.NoError(t, err)
	assert.Equal(t, "-36", res.String())
	assert.Equal(t, 1, res.Words())

	_, err = e.EvaluateLine(context.Background(), "   ")
	var v apperrors.ValidationError
	assert.True(t, errors.As(err, &v))
}

func TestRationalResultFeedsBackIntoEvaluateLine(t *testing.T) {
	t.Parallel()
	e := NewEvaluator(nil)
	res, err := e.EvaluateLine(context.Background(), "rat-sum 1/3 1/6")
	require.NoError(t, err)
	assert.Equal(t, "1/2", res.String())

	res, err = e.EvaluateLine(context.Background(), "rat-mul "+res.String()+" -2/3")
	require.NoError(t, err)
	assert.Equal(t, "-1/3", res.String())
}

func TestEvaluateRecordsMetrics(t *testing.T) {
	t.Parallel()
	m := metrics.New()
	e := NewEvaluator(nil, WithMetrics(m))
	ctx := context.Background()
	_, err := e.Evaluate(ctx, "sum", []string{"1", "2"})
	require.NoError(t, err)
	_, err = e.Evaluate(ctx, "lcm", []string{"9223372036854775807", "9223372036854775806"})
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "m.prom")
	require.NoError(t, m.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `arithmos_evaluations_total{op="sum",status="ok"} 1`)
	assert.Contains(t, string(data), `arithmos_evaluations_total{op="lcm",status="overflow"} 1`)
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	r := Default()
	names := r.List()
	for _, want := range []string{"sum", "diff", "add", "sub", "mul", "cmp", "neg", "abs", "fib", "fact", "pow",
		"gcd", "lcm", "pow64", "powmod", "modmul", "mulfull",
		"rat-sum", "rat-diff", "rat-mul", "rat-div", "rat-pow", "rat-cmp", "rat-float"} {
		assert.Contains(t, names, want)
	}
	assert.IsIncreasing(t, names)
	assert.Len(t, r.All(), len(names))

	err := r.Register(Operation{Name: "sum", Run: runCmp})
	assert.True(t, errors.Is(err, ErrDuplicateOperation))
	assert.Error(t, r.Register(Operation{Name: "noop"}))

	op, err := r.Get("add")
	require.NoError(t, err)
	assert.Equal(t, "add a b...", op.Usage())
	assert.NoError(t, op.CheckArity([]string{"1", "2", "3"}))
	assert.Error(t, op.CheckArity([]string{"1"}))
}
