package ops

import (
	"context"
	"strconv"

	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/numeric"
)

func wordOps() []Operation {
	return []Operation{
		{Name: "gcd", Category: CategoryWord, Summary: "greatest common divisor of two int64", Args: []string{"m", "n"},
			Run: signedPair("gcd", numeric.GCDSigned[int64])},
		{Name: "lcm", Category: CategoryWord, Summary: "least common multiple of two int64", Args: []string{"m", "n"},
			Run: signedPair("lcm", numeric.LCMSigned[int64])},
		{Name: "pow64", Category: CategoryWord, Summary: "b raised to e in uint64, overflow checked", Args: []string{"b", "e"},
			Run: runPow64},
		{Name: "powmod", Category: CategoryWord, Summary: "b raised to e modulo m", Args: []string{"b", "e", "m"},
			Run: runPowMod},
		{Name: "modmul", Category: CategoryWord, Summary: "a * b modulo m without overflow", Args: []string{"a", "b", "m"},
			Run: runModMul},
		{Name: "mulfull", Category: CategoryWord, Summary: "exact 128-bit product of two int64", Args: []string{"a", "b"},
			Run: runMulFull},
	}
}

func signedPair(name string, f func(m, n int64) (int64, bool)) Func {
	return func(_ context.Context, _ Env, args []string) (Result, error) {
		m, err := parseInt64(args, 0)
		if err != nil {
			return Result{}, err
		}
		n, err := parseInt64(args, 1)
		if err != nil {
			return Result{}, err
		}
		v, overflow := f(m, n)
		if overflow {
			return Result{}, apperrors.OverflowError{Operation: name}
		}
		return Result{Text: strconv.FormatInt(v, 10)}, nil
	}
}

func runPow64(_ context.Context, _ Env, args []string) (Result, error) {
	b, err := parseUint64(args, 0)
	if err != nil {
		return Result{}, err
	}
	e, err := parseUint64(args, 1)
	if err != nil {
		return Result{}, err
	}
	v, overflow := numeric.PowerChecked(b, e)
	if overflow {
		return Result{}, apperrors.OverflowError{Operation: "pow64"}
	}
	return Result{Text: strconv.FormatUint(v, 10)}, nil
}

func parseModulus(args []string, i int) (uint64, error) {
	m, err := parseUint64(args, i)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 0, numeric.ErrZeroModulus
	}
	return m, nil
}

func runPowMod(_ context.Context, _ Env, args []string) (Result, error) {
	b, err := parseInt64(args, 0)
	if err != nil {
		return Result{}, err
	}
	e, err := parseUint64(args, 1)
	if err != nil {
		return Result{}, err
	}
	m, err := parseModulus(args, 2)
	if err != nil {
		return Result{}, err
	}
	// The residue lies in [0, m); reading it back as uint64 keeps moduli
	// above MaxInt64 exact.
	return Result{Text: strconv.FormatUint(uint64(numeric.PowerModSigned(b, e, m)), 10)}, nil
}

func runModMul(_ context.Context, _ Env, args []string) (Result, error) {
	a, err := parseInt64(args, 0)
	if err != nil {
		return Result{}, err
	}
	b, err := parseInt64(args, 1)
	if err != nil {
		return Result{}, err
	}
	m, err := parseModulus(args, 2)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: strconv.FormatUint(uint64(numeric.ModMulSigned(a, b, m)), 10)}, nil
}

func runMulFull(_ context.Context, _ Env, args []string) (Result, error) {
	a, err := parseInt64(args, 0)
	if err != nil {
		return Result{}, err
	}
	b, err := parseInt64(args, 1)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: numeric.MulFullSigned64(a, b).String()}, nil
}
