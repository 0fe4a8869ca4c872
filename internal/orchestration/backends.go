package orchestration

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/agbru/arithmos/internal/bigint"
	"github.com/agbru/arithmos/internal/ops"
)

var (
	// ErrBackendUnavailable is returned for a backend that this binary was
	// built without, such as gmp without the gmp build tag.
	ErrBackendUnavailable = errors.New("backend not available in this build")
	// ErrUnsupportedOp is returned by a backend for an unknown case op.
	ErrUnsupportedOp = errors.New("unsupported verify operation")
)

var backendFactories = map[string]func() Backend{
	"arithmos": func() Backend { return engineBackend{} },
	"big":      func() Backend { return bigBackend{} },
}

// RegisterBackend makes a backend constructor available under name. It is
// called from init functions of optional backends.
func RegisterBackend(name string, factory func() Backend) {
	backendFactories[name] = factory
}

// AvailableBackends lists the backends compiled into this binary.
func AvailableBackends() []string {
	names := make([]string, 0, len(backendFactories))
	for name := range backendFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBackends instantiates the named backends in order.
func NewBackends(names []string) ([]Backend, error) {
	backends := make([]Backend, 0, len(names))
	for _, name := range names {
		factory, ok := backendFactories[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, name)
		}
		backends = append(backends, factory())
	}
	return backends, nil
}

// engineBackend evaluates cases with the bigint package. add and sub use
// the in-place forms so the aliasing paths are covered.
type engineBackend struct{}

func (engineBackend) Name() string { return "arithmos" }

func (engineBackend) Eval(ctx context.Context, c Case) (string, error) {
	if c.Op == "fib" {
		n, err := strconv.ParseUint(c.A, 10, 64)
		if err != nil {
			return "", err
		}
		f, err := ops.Fibonacci(ctx, n)
		if err != nil {
			return "", err
		}
		return f.String(), nil
	}
	a, err := bigint.Parse(c.A)
	if err != nil {
		return "", err
	}
	if c.Op == "roundtrip" {
		return a.String(), nil
	}
	b, err := bigint.Parse(c.B)
	if err != nil {
		return "", err
	}
	switch c.Op {
	case "sum":
		return new(bigint.Int).Sum(a, b).String(), nil
	case "diff":
		return new(bigint.Int).Difference(a, b).String(), nil
	case "add":
		return a.Add(b).String(), nil
	case "sub":
		return a.Subtract(b).String(), nil
	case "mul":
		return new(bigint.Int).Product(a, b).String(), nil
	case "cmp":
		return strconv.Itoa(a.Cmp(b)), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedOp, c.Op)
}

// bigBackend evaluates cases with math/big.
type bigBackend struct{}

func (bigBackend) Name() string { return "big" }

func parseBig(s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("math/big: cannot parse %q", s)
	}
	return x, nil
}

func (bigBackend) Eval(ctx context.Context, c Case) (string, error) {
	if c.Op == "fib" {
		n, err := strconv.ParseUint(c.A, 10, 64)
		if err != nil {
			return "", err
		}
		a, b := big.NewInt(0), big.NewInt(1)
		for i := uint64(0); i < n; i++ {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return "", err
				}
			}
			a.Add(a, b)
			a, b = b, a
		}
		return a.String(), nil
	}
	a, err := parseBig(c.A)
	if err != nil {
		return "", err
	}
	if c.Op == "roundtrip" {
		return a.String(), nil
	}
	b, err := parseBig(c.B)
	if err != nil {
		return "", err
	}
	z := new(big.Int)
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
