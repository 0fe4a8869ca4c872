package app

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/agbru/arithmos/internal/bigint"
	"github.com/agbru/arithmos/internal/orchestration"
	"github.com/agbru/arithmos/internal/sysinfo"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with
// -ldflags "-X github.com/agbru/arithmos/internal/app.Version=v1.2.3".
var Version = "dev"

// resolvedVersion falls back to the module version recorded by
// "go install" when no version was linked in.
func resolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

func newVersionCommand(a *Application) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and, with -v, the build environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			PrintVersion(cmd.OutOrStdout(), a.Config.Verbose)
			return nil
		},
	}
}

// PrintVersion writes the version line, followed by the platform report
// and engine tuning when verbose is set.
func PrintVersion(out io.Writer, verbose bool) {
	fmt.Fprintf(out, "arithmos %s\n", resolvedVersion())
	if !verbose {
		return
	}
	sysinfo.Collect().Write(out)
	fmt.Fprintf(out, "karatsuba: %d words\n", bigint.KaratsubaThreshold())
	fmt.Fprintf(out, "backends:  %v\n", orchestration.AvailableBackends())
}
