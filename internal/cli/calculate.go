package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/arithmos/internal/config"
	"github.com/agbru/arithmos/internal/ui"
)

// PrintVerifyConfig describes the verify run about to start.
func PrintVerifyConfig(cfg config.AppConfig, cases int, out io.Writer) {
	fmt.Fprintf(out, "--- Verify Configuration ---\n")
	fmt.Fprintf(out, "Checking %s cases (seed %s, operands up to %s words) on %s.\n",
		ui.Paint(ui.ColorMagenta(), fmt.Sprint(cases)),
		ui.Paint(ui.ColorCyan(), fmt.Sprint(cfg.Seed)),
		ui.Paint(ui.ColorCyan(), fmt.Sprint(cfg.MaxWords)),
		ui.Paint(ui.ColorGreen(), strings.Join(cfg.Backends, ", ")))
	fmt.Fprintf(out, "Environment: %s logical processors, %s workers, Go %s.\n",
		ui.Paint(ui.ColorCyan(), fmt.Sprint(runtime.NumCPU())),
		ui.Paint(ui.ColorCyan(), fmt.Sprint(cfg.Workers)),
		ui.Paint(ui.ColorCyan(), runtime.Version()))
	fmt.Fprintf(out, "Karatsuba threshold: %s words. Timeout: %s.\n",
		ui.Paint(ui.ColorCyan(), fmt.Sprint(cfg.KaratsubaThreshold)),
		ui.Paint(ui.ColorYellow(), cfg.Timeout.String()))
	fmt.Fprintf(out, "\n--- Starting Verify ---\n")
}
