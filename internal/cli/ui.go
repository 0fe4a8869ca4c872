//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/arithmos/internal/format"
	"github.com/agbru/arithmos/internal/orchestration"
)

const (
	// DisplayEdges is the number of leading and trailing digits kept when a
	// result is truncated.
	DisplayEdges = 25
	// ProgressRefreshRate is how often the spinner suffix is redrawn.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width of the progress bar in cells.
	ProgressBarWidth = 40
)

// Spinner is the subset of a terminal spinner used by DisplayProgress.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// newSpinner is replaced in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)}
}

// DisplayProgress shows a spinner with the average progress and ETA of
// numBackends verify runs until progressChan is closed. It calls wg.Done
// on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numBackends int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numBackends)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	suffix := func() string {
		return " " + format.FormatProgressBarWithETA(agg.CalculateAverage(), agg.GetETA(), ProgressBarWidth)
	}
	s.UpdateSuffix(suffix())
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case u, ok := <-progressChan:
			if !ok {
				s.Stop()
				avg := agg.CalculateAverage()
				fmt.Fprintf(out, "[%s] %5.1f%%\n", format.ProgressBar(avg, ProgressBarWidth), avg*100)
				return
			}
			agg.Update(u)
		case <-ticker.C:
			s.UpdateSuffix(suffix())
		}
	}
}
