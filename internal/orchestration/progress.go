package orchestration

import (
	"time"

	"github.com/agbru/arithmos/internal/format"
)

// ProgressAggregator averages per-backend progress and estimates the time
// remaining. Both the spinner reporter and the TUI use it.
type ProgressAggregator struct {
	state       *format.ProgressWithETA
	numBackends int
}

// NewProgressAggregator returns nil when numBackends is not positive.
func NewProgressAggregator(numBackends int) *ProgressAggregator {
	if numBackends <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:       format.NewProgressWithETA(numBackends),
		numBackends: numBackends,
	}
}

// AggregatedProgress is the state after one update.
type AggregatedProgress struct {
	BackendIndex    int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update records u and returns the new average and ETA.
func (a *ProgressAggregator) Update(u ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(u.BackendIndex, u.Value)
	return AggregatedProgress{
		BackendIndex:    u.BackendIndex,
		Value:           u.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without updating it.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current estimate without updating it.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

func (a *ProgressAggregator) NumBackends() int {
	return a.numBackends
}

// IsMultiBackend reports whether more than one backend is tracked.
func (a *ProgressAggregator) IsMultiBackend() bool {
	return a.numBackends > 1
}

// DrainChannel discards every remaining update.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
