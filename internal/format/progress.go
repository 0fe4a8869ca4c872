package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates so a stalled worker does not print absurd times.
const maxETA = 24 * time.Hour

// ProgressState tracks the completion fraction of several concurrent
// workers, one slot per worker index.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState returns a state for n workers, all at zero.
func NewProgressState(n int) *ProgressState {
	n = max(n, 0)
	return &ProgressState{progresses: make([]float64, n), numCalculators: n}
}

// Update records value, clamped to [0, 1], for worker index. Out-of-range
// indexes are ignored.
func (p *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(p.progresses) {
		return
	}
	p.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the mean completion over all workers.
func (p *ProgressState) CalculateAverage() float64 {
	if p.numCalculators == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.progresses {
		sum += v
	}
	return sum / float64(p.numCalculators)
}

// ProgressWithETA adds a smoothed completion rate to ProgressState.
type ProgressWithETA struct {
	*ProgressState
	numCalculators int
	startTime      time.Time
	lastUpdate     time.Time
	lastProgress   float64
	// progressRate is the exponentially smoothed completion per second.
	progressRate float64
}

// NewProgressWithETA returns a tracker for n workers starting now.
func NewProgressWithETA(n int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:  NewProgressState(n),
		numCalculators: n,
		startTime:      now,
		lastUpdate:     now,
	}
}

// UpdateWithETA records an update and returns the new average and ETA.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()
	now := time.Now()
	if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0 && avg > p.lastProgress {
		rate := (avg - p.lastProgress) / dt
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = 0.3*rate + 0.7*p.progressRate
		}
		p.lastUpdate, p.lastProgress = now, avg
	}
	return avg, p.GetETA()
}

// GetETA returns the remaining time at the current rate, or 0 while the
// rate is unknown.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	secs := remaining / p.progressRate
	if secs > maxETA.Seconds() {
		return maxETA
	}
	return time.Duration(secs * float64(time.Second))
}

// Elapsed returns the time since the tracker was created.
func (p *ProgressWithETA) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// ProgressBar renders progress as length cells of full and light shade
// blocks.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar] 42.0% ETA: 3s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), min(max(progress, 0), 1)*100, FormatETA(eta))
}
