package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/arithmos/internal/format"
	"github.com/agbru/arithmos/internal/metrics"
	"github.com/agbru/arithmos/internal/ops"
	"github.com/agbru/arithmos/internal/ui"
)

// OutputConfig controls how a single result is printed.
type OutputConfig struct {
	// Quiet prints the bare value only.
	Quiet bool
	// Verbose adds size, timing and memory details.
	Verbose bool
	// MaxDigits truncates longer values to DisplayEdges digits at each
	// end. Zero disables truncation.
	MaxDigits int
}

// Details are the measurements shown in verbose mode.
type Details struct {
	Duration time.Duration
	// Memory and Heap are skipped when Heap is the zero value.
	Memory metrics.MemoryDelta
	Heap   metrics.MemorySnapshot
}

// FormatValue truncates s when it has more than maxDigits digits,
// keeping the sign and DisplayEdges digits at each end. The boolean
// reports whether truncation happened.
func FormatValue(s string, maxDigits int) (string, bool) {
	sign := ""
	digits := s
	if len(s) > 0 && s[0] == '-' {
		sign, digits = "-", s[1:]
	}
	if maxDigits <= 0 || len(digits) <= maxDigits || len(digits) <= 2*DisplayEdges {
		return s, false
	}
	return sign + digits[:DisplayEdges] + "..." + digits[len(digits)-DisplayEdges:], true
}

// digitCount counts the decimal digits of a big-integer result.
func digitCount(s string) int {
	if len(s) > 0 && s[0] == '-' {
		return len(s) - 1
	}
	return len(s)
}

// FormatQuietResult returns the bare value, for scripting.
func FormatQuietResult(res ops.Result) string {
	return res.String()
}

// DisplayQuietResult writes the bare value on one line.
func DisplayQuietResult(out io.Writer, res ops.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult prints res according to cfg. details may be nil outside
// verbose mode.
func DisplayResult(out io.Writer, res ops.Result, cfg OutputConfig, details *Details) {
	if cfg.Quiet {
		DisplayQuietResult(out, res)
		return
	}

	value := res.String()
	shown, truncated := value, false
	if res.Int != nil {
		shown, truncated = FormatValue(value, cfg.MaxDigits)
	}
	fmt.Fprintf(out, "%s = %s\n", ui.Paint(ui.ColorBlue(), res.Op), ui.Paint(ui.ColorGreen(), shown))
	if truncated {
		fmt.Fprintf(out, "%s(truncated, %s digits; raise --max-digits or use --quiet for the full value)%s\n",
			ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(digitCount(value))), ui.ColorReset())
	}

	if !cfg.Verbose {
		return
	}
	fmt.Fprintf(out, "\n%sDetails:%s\n", ui.ColorBold(), ui.ColorReset())
	if res.Int != nil {
		fmt.Fprintf(out, "  Digits:   %s\n", format.FormatNumberString(fmt.Sprint(digitCount(value))))
		fmt.Fprintf(out, "  Bits:     %s\n", format.FormatNumberString(fmt.Sprint(res.Int.BitLen())))
		fmt.Fprintf(out, "  Words:    %d\n", res.Words())
	}
	if details != nil {
		fmt.Fprintf(out, "  Time:     %s\n", ui.Paint(ui.ColorYellow(), format.FormatExecutionDuration(details.Duration)))
		if details.Heap.HeapAlloc > 0 {
			DisplayMemoryStats(out, details.Memory, details.Heap)
		}
	}
}

// DisplayMemoryStats prints the heap change caused by an operation and
// the heap size after it.
func DisplayMemoryStats(out io.Writer, delta metrics.MemoryDelta, after metrics.MemorySnapshot) {
	sign := "+"
	change := delta.HeapAlloc
	if change < 0 {
		sign, change = "-", -change
	}
	fmt.Fprintf(out, "  Heap:     %s (%s%s)\n", metrics.FormatBytes(after.HeapAlloc), sign, metrics.FormatBytes(uint64(change)))
	fmt.Fprintf(out, "  GC runs:  %d\n", delta.NumGC)
}
