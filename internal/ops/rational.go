package ops

import (
	"context"
	"strconv"
	"strings"

	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/rational"
)

func rationalOps() []Operation {
	return []Operation{
		{Name: "rat-sum", Category: CategoryRational, Summary: "p + q", Args: []string{"p", "q"},
			Run: ratPair("rat-sum", rational.Sum)},
		{Name: "rat-diff", Category: CategoryRational, Summary: "p - q", Args: []string{"p", "q"},
			Run: ratPair("rat-diff", rational.Difference)},
		{Name: "rat-mul", Category: CategoryRational, Summary: "p * q", Args: []string{"p", "q"},
			Run: ratPair("rat-mul", rational.Product)},
		{Name: "rat-div", Category: CategoryRational, Summary: "p / q", Args: []string{"p", "q"},
			Run: ratPair("rat-div", rational.Quotient)},
		{Name: "rat-pow", Category: CategoryRational, Summary: "p raised to k", Args: []string{"p", "k"},
			Run: runRatPow},
		{Name: "rat-cmp", Category: CategoryRational, Summary: "-1, 0 or 1 as p <, = or > q", Args: []string{"p", "q"},
			Run: runRatCmp},
		{Name: "rat-float", Category: CategoryRational, Summary: "p as a float64", Args: []string{"p"},
			Run: runRatFloat},
	}
}

// ratText prints r without the spaces around the slash, so a result can be
// pasted back as a single operand.
func ratText(r rational.Rat) string {
	return strings.ReplaceAll(r.String(), " ", "")
}

func ratPair(name string, f func(a, b rational.Rat) (rational.Rat, bool)) Func {
	return func(_ context.Context, _ Env, args []string) (Result, error) {
		p, err := parseRat(args, 0)
		if err != nil {
			return Result{}, err
		}
		q, err := parseRat(args, 1)
		if err != nil {
			return Result{}, err
		}
		r, overflow := f(p, q)
		if overflow {
			return Result{}, apperrors.OverflowError{Operation: name}
		}
		return Result{Text: ratText(r)}, nil
	}
}

func runRatPow(_ context.Context, _ Env, args []string) (Result, error) {
	p, err := parseRat(args, 0)
	if err != nil {
		return Result{}, err
	}
	k, err := parseUint64(args, 1)
	if err != nil {
		return Result{}, err
	}
	r, overflow := rational.Pow(p, k)
	if overflow {
		return Result{}, apperrors.OverflowError{Operation: "rat-pow"}
	}
	return Result{Text: ratText(r)}, nil
}

func runRatCmp(_ context.Context, _ Env, args []string) (Result, error) {
	p, err := parseRat(args, 0)
	if err != nil {
		return Result{}, err
	}
	q, err := parseRat(args, 1)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: strconv.Itoa(rational.Cmp(p, q))}, nil
}

func runRatFloat(_ context.Context, _ Env, args []string) (Result, error) {
	p, err := parseRat(args, 0)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: strconv.FormatFloat(p.Float64(), 'g', -1, 64)}, nil
}
