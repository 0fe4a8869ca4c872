package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/format"
	"github.com/agbru/arithmos/internal/orchestration"
	"github.com/agbru/arithmos/internal/ui"
)

// maxListedMismatches bounds the mismatch report.
const maxListedMismatches = 10

// CLIProgressReporter shows verify progress with a spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress calls the package-level DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numBackends int, out io.Writer) {
	DisplayProgress(wg, progressChan, numBackends, out)
}

// CLIResultPresenter renders verify reports for a terminal.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

func durationCell(res orchestration.BackendResult) string {
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// PresentComparisonTable prints one row per backend. Padding is computed
// on the plain text so color codes do not break alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.BackendResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Verify Summary ---\n")

	nameWidth, durWidth := len("Backend"), len("Duration")
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Name))
		durWidth = max(durWidth, len(durationCell(res)))
	}

	fmt.Fprintf(out, "%s%s   %s   %s\n",
		ui.Paint(ui.ColorUnderline(), "Backend"), padRight("", nameWidth-len("Backend")),
		ui.Paint(ui.ColorUnderline(), "Duration")+padRight("", durWidth-len("Duration")),
		ui.Paint(ui.ColorUnderline(), "Status"))
	for _, res := range results {
		status := ui.Paint(ui.ColorGreen(), fmt.Sprintf("ok (%d cases)", len(res.Results)))
		if res.Err != nil {
			status = ui.Paint(ui.ColorRed(), fmt.Sprintf("failed: %v", res.Err))
		}
		d := durationCell(res)
		fmt.Fprintf(out, "%s%s   %s%s   %s\n",
			ui.Paint(ui.ColorBlue(), res.Name), padRight("", nameWidth-len(res.Name)),
			ui.Paint(ui.ColorYellow(), d), padRight("", durWidth-len(d)),
			status)
	}
}

func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return fmt.Sprintf("%s%*s", s, n, "")
}

// PresentMismatches lists the first disagreements with both answers
// truncated to DisplayEdges digits at each end.
func (CLIResultPresenter) PresentMismatches(mismatches []orchestration.Mismatch, out io.Writer) {
	fmt.Fprintf(out, "\n%sMismatches:%s\n", ui.ColorBold(), ui.ColorReset())
	for i, m := range mismatches {
		if i == maxListedMismatches {
			fmt.Fprintf(out, "  ... and %d more\n", len(mismatches)-i)
			break
		}
		got, _ := FormatValue(m.Got, 2*DisplayEdges)
		want, _ := FormatValue(m.Want, 2*DisplayEdges)
		op, _ := FormatValue(m.Case.String(), 4*DisplayEdges)
		fmt.Fprintf(out, "  #%d %s\n", m.Index, op)
		fmt.Fprintf(out, "     %s: %s\n", m.Backend, ui.Paint(ui.ColorRed(), got))
		fmt.Fprintf(out, "     %s: %s\n", m.Reference, ui.Paint(ui.ColorGreen(), want))
	}
}

// HandleError prints err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return DisplayError(out, err)
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
)

// DisplayError prints a one-line description of err and returns the
// exit code for it. Cancellation and timeouts are reported as warnings.
func DisplayError(out io.Writer, err error) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	code := apperrors.ExitCode(err)
	var (
		overflowErr apperrors.OverflowError
		memErr      apperrors.MemoryError
	)
	switch {
	case code == apperrors.ExitErrorTimeout:
		warningLabel.Fprint(out, "Timeout: ")
		fmt.Fprintf(out, "%v\n", err)
	case code == apperrors.ExitErrorCanceled:
		warningLabel.Fprint(out, "Canceled: ")
		fmt.Fprintf(out, "%v\n", err)
	case errors.As(err, &overflowErr):
		errorLabel.Fprint(out, "Overflow: ")
		fmt.Fprintf(out, "%v\n", err)
	case errors.As(err, &memErr):
		errorLabel.Fprint(out, "Too large: ")
		fmt.Fprintf(out, "%v (raise --max-result-words to allow it)\n", err)
	default:
		errorLabel.Fprint(out, "Error: ")
		fmt.Fprintf(out, "%v\n", err)
	}
	return code
}
