package ops

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agbru/arithmos/internal/bigint"
	apperrors "github.com/agbru/arithmos/internal/errors"
)

var (
	// ErrUnknownOperation is returned by Get for an unregistered name.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrDuplicateOperation is returned by Register for a name already in use.
	ErrDuplicateOperation = errors.New("operation already registered")
)

// Category groups operations in help output.
type Category string

const (
	CategoryInteger  Category = "integer"
	CategoryWord     Category = "fixed-width"
	CategoryRational Category = "rational"
)

// Env carries the limits an operation must respect.
type Env struct {
	// MaxResultWords caps the estimated size of fib, fact and pow results.
	// Zero means no limit.
	MaxResultWords int
}

// Func runs an operation on operands whose count has already been checked.
type Func func(ctx context.Context, env Env, args []string) (Result, error)

// Operation describes one registry entry.
type Operation struct {
	Name     string
	Category Category
	Summary  string
	// Args names the operands for usage text. When Variadic is set the
	// last one may repeat.
	Args     []string
	Variadic bool
	Run      Func
}

// Usage returns a one-line synopsis such as "add a b...".
func (op Operation) Usage() string {
	var sb strings.Builder
	sb.WriteString(op.Name)
	for _, a := range op.Args {
		sb.WriteByte(' ')
		sb.WriteString(a)
	}
	if op.Variadic {
		sb.WriteString("...")
	}
	return sb.String()
}

// CheckArity validates the number of operands.
func (op Operation) CheckArity(args []string) error {
	n := len(op.Args)
	switch {
	case op.Variadic && len(args) < n:
		return apperrors.ValidationError{Field: "arguments", Message: fmt.Sprintf("%s needs at least %d operands, got %d", op.Name, n, len(args))}
	case !op.Variadic && len(args) != n:
		return apperrors.ValidationError{Field: "arguments", Message: fmt.Sprintf("%s needs %d operands, got %d", op.Name, n, len(args))}
	}
	return nil
}

// Result is the outcome of an operation. Big-integer results are kept in
// Int so callers can size or truncate them; everything else is rendered
// into Text.
type Result struct {
	Op   string
	Int  *bigint.Int
	Text string
}

// String returns the decimal or textual form of the result.
func (r Result) String() string {
	if r.Int != nil {
		return r.Int.String()
	}
	return r.Text
}

// Words returns the size of a big-integer result, or 0.
func (r Result) Words() int {
	if r.Int == nil {
		return 0
	}
	return r.Int.Len()
}

// Registry maps operation names to their definitions. It is safe for
// concurrent use.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds op.
func (r *Registry) Register(op Operation) error {
	if op.Name == "" || op.Run == nil {
		return fmt.Errorf("ops: incomplete operation %q", op.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[op.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOperation, op.Name)
	}
	r.ops[op.Name] = op
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(ops ...Operation) {
	for _, op := range ops {
		if err := r.Register(op); err != nil {
			panic(err)
		}
	}
}

// Get looks up an operation by name.
func (r *Registry) Get(name string) (Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	if !ok {
		return Operation{}, fmt.Errorf("%w %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every operation, sorted by name.
func (r *Registry) All() []Operation {
	names := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Operation, 0, len(names))
	for _, name := range names {
		all = append(all, r.ops[name])
	}
	return all
}

// Default returns a registry holding every built-in operation.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(integerOps()...)
	r.MustRegister(wordOps()...)
	r.MustRegister(rationalOps()...)
	return r
}
