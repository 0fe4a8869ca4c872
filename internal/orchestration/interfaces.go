package orchestration

import (
	"context"
	"io"
	"sync"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Backend evaluates verify cases on one arithmetic implementation. The
// result of every case is a canonical decimal string.
type Backend interface {
	Name() string
	Eval(ctx context.Context, c Case) (string, error)
}

// ProgressUpdate reports the completed fraction of one backend's run.
type ProgressUpdate struct {
	BackendIndex int
	Value        float64
}

// ProgressReporter displays verify progress. DisplayProgress runs in its
// own goroutine until progressChan is closed, then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numBackends int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numBackends int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numBackends int, out io.Writer) {
	f(wg, progressChan, numBackends, out)
}

// NullProgressReporter drains the channel without output. It is used in
// quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains progressChan.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// BackendResult is the outcome of running the whole corpus on a backend.
type BackendResult struct {
	Name     string
	Results  []string
	Duration time.Duration
	Err      error
}

// Mismatch records a case on which a backend disagreed with the reference.
type Mismatch struct {
	Index     int
	Case      Case
	Backend   string
	Got       string
	Reference string
	Want      string
}

// ResultPresenter renders a verify run.
type ResultPresenter interface {
	PresentComparisonTable(results []BackendResult, out io.Writer)
	PresentMismatches(mismatches []Mismatch, out io.Writer)
	HandleError(err error, out io.Writer) int
}
