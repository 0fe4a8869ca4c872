package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/metrics"
)

// ProgressBufferMultiplier sizes the progress channel per backend so slow
// displays rarely block the evaluating goroutines.
const ProgressBufferMultiplier = 5

// progressSteps is the number of progress updates a backend sends over a
// full corpus run.
const progressSteps = 50

// ExecuteVerify evaluates cases on every backend concurrently, at most
// workers at a time. A backend stops at its first error.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - backends: The arithmetic implementations to run.
//   - cases: The corpus every backend evaluates.
//   - workers: The maximum number of backends running at once (0 means no limit).
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress updates.
//
// Returns:
//   - []BackendResult: One result per backend, in backend order.
func ExecuteVerify(ctx context.Context, backends []Backend, cases []Case, workers int, reporter ProgressReporter, out io.Writer) []BackendResult {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	results := make([]BackendResult, len(backends))
	progressChan := make(chan ProgressUpdate, len(backends)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(backends), out)

	for i, b := range backends {
		idx, backend := i, b
		g.Go(func() error {
			start := time.Now()
			values, err := runBackend(ctx, backend, cases, idx, progressChan)
			results[idx] = BackendResult{
				Name: backend.Name(), Results: values, Duration: time.Since(start), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()
	return results
}

func runBackend(ctx context.Context, backend Backend, cases []Case, idx int, progressChan chan<- ProgressUpdate) ([]string, error) {
	values := make([]string, len(cases))
	step := max(len(cases)/progressSteps, 1)
	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			return values[:i], err
		}
		v, err := backend.Eval(ctx, c)
		if err != nil {
			return values[:i], fmt.Errorf("%s: case %d (%s): %w", backend.Name(), i, c, err)
		}
		values[i] = v
		if (i+1)%step == 0 || i+1 == len(cases) {
			report(ctx, progressChan, ProgressUpdate{BackendIndex: idx, Value: float64(i+1) / float64(len(cases))})
		}
	}
	if len(cases) == 0 {
		report(ctx, progressChan, ProgressUpdate{BackendIndex: idx, Value: 1})
	}
	return values, nil
}

// report sends u unless the context is done first.
func report(ctx context.Context, progressChan chan<- ProgressUpdate, u ProgressUpdate) {
	select {
	case progressChan <- u:
	case <-ctx.Done():
	}
}

// FindMismatches compares every successful backend with the reference,
// which is the first successful entry of results.
func FindMismatches(cases []Case, results []BackendResult, m *metrics.Metrics) []Mismatch {
	ref := -1
	for i := range results {
		if results[i].Err == nil {
			ref = i
			break
		}
	}
	if ref < 0 {
		return nil
	}
	reference := results[ref]
	var mismatches []Mismatch
	for i, res := range results {
		if i == ref || res.Err != nil {
			continue
		}
		for j, c := range cases {
			match := res.Results[j] == reference.Results[j]
			m.ObserveVerify(res.Name, match)
			if !match {
				mismatches = append(mismatches, Mismatch{
					Index: j, Case: c, Backend: res.Name, Got: res.Results[j],
					Reference: reference.Name, Want: reference.Results[j],
				})
			}
		}
	}
	return mismatches
}

// AnalyzeComparisonResults sorts results by duration with failures last,
// presents them, and checks that every successful backend agrees with the
// fastest one on every case.
//
// Parameters:
//   - cases: The corpus the backends evaluated.
//   - results: The backend results; sorted in place.
//   - m: The metrics sink for per-backend agreement counts.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(cases []Case, results []BackendResult, m *metrics.Metrics, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstError error
	successCount := 0
	for _, res := range results {
		if res.Err != nil {
			if firstError == nil {
				firstError = res.Err
			}
			continue
		}
		successCount++
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No backend completed the corpus.\n")
		return presenter.HandleError(firstError, out)
	}

	if mismatches := FindMismatches(cases, results, m); len(mismatches) > 0 {
		presenter.PresentMismatches(mismatches, out)
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %d case(s) disagree between backends.\n", len(mismatches))
		return apperrors.ExitErrorMismatch
	}
	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: Partial. %d of %d backend(s) agree on %d case(s).\n", successCount, len(results), len(cases))
		return presenter.HandleError(firstError, out)
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. %d backend(s) agree on %d case(s).\n", successCount, len(cases))
	return apperrors.ExitSuccess
}
