package ops

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/logging"
	"github.com/agbru/arithmos/internal/metrics"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/agbru/arithmos/internal/ops"

// Evaluator runs registry operations with tracing, metrics and logging.
type Evaluator struct {
	registry *Registry
	metrics  *metrics.Metrics
	logger   logging.Logger
	env      Env
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMetrics records every evaluation in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// WithLogger sets the debug logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithMaxResultWords sets Env.MaxResultWords.
func WithMaxResultWords(words int) Option {
	return func(e *Evaluator) { e.env.MaxResultWords = words }
}

// NewEvaluator returns an Evaluator over reg, or over Default() when reg
// is nil.
func NewEvaluator(reg *Registry, opts ...Option) *Evaluator {
	if reg == nil {
		reg = Default()
	}
	e := &Evaluator{
		registry: reg,
		logger:   logging.NewZerologAdapter(zerolog.Nop()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the evaluator draws from.
func (e *Evaluator) Registry() *Registry { return e.registry }

// Evaluate runs the named operation on args.
//
// Unknown names return ErrUnknownOperation. Malformed operands return an
// apperrors.ValidationError; failures raised by the operation itself,
// including context cancellation, are wrapped in an
// apperrors.CalculationError naming the operation.
func (e *Evaluator) Evaluate(ctx context.Context, name string, args []string) (res Result, err error) {
	op, err := e.registry.Get(name)
	if err != nil {
		return Result{}, err
	}
	if err := op.CheckArity(args); err != nil {
		return Result{}, err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "ops."+name)
	defer span.End()
	span.SetAttributes(
		attribute.String("arithmos.op", name),
		attribute.Int("arithmos.operands", len(args)),
	)

	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		e.metrics.ObserveEvaluation(name, status(err), elapsed, res.Words())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			e.logger.Debug("operation failed", logging.String("op", name), logging.Err(err))
			return
		}
		span.SetAttributes(attribute.Int("arithmos.result_words", res.Words()))
		e.logger.Debug("operation evaluated",
			logging.String("op", name),
			logging.Int("result_words", res.Words()),
			logging.Float64("seconds", elapsed.Seconds()))
	}()

	res, err = op.Run(ctx, e.env, args)
	if err != nil {
		var validationErr apperrors.ValidationError
		if errors.As(err, &validationErr) {
			return Result{}, err
		}
		return Result{}, apperrors.CalculationError{Operation: name, Cause: err}
	}
	res.Op = name
	return res, nil
}

// EvaluateLine splits line on white space and evaluates the first field as
// the operation name with the rest as operands.
func (e *Evaluator) EvaluateLine(ctx context.Context, line string) (Result, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{}, apperrors.ValidationError{Field: "input", Message: "empty line"}
	}
	return e.Evaluate(ctx, fields[0], fields[1:])
}

func status(err error) string {
	var overflowErr apperrors.OverflowError
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.As(err, &overflowErr):
		return metrics.StatusOverflow
	case apperrors.IsContextError(err):
		return metrics.StatusCanceled
	default:
		return metrics.StatusError
	}
}
