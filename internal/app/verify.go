package app

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/arithmos/internal/cli"
	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/logging"
	"github.com/agbru/arithmos/internal/orchestration"
	"github.com/spf13/cobra"
)

func (a *Application) newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the integer engine against other implementations",
		Long: `verify evaluates a seeded random corpus of integer operations on every
selected backend in parallel and compares the answers. A disagreement
exits with status 3.

Backends: ` + fmt.Sprint(orchestration.AvailableBackends()) + ` ("gmp" needs -tags gmp).`,
		Example: "  arithmos verify --backends arithmos,big --iterations 500 --max-words 128",
		Args:    cobra.NoArgs,
		RunE:    a.runVerify,
	}
}

// runVerify orchestrates the verify command.
func (a *Application) runVerify(cmd *cobra.Command, _ []string) error {
	backends, err := orchestration.NewBackends(a.Config.Backends)
	if err != nil {
		return apperrors.ConfigError{Message: err.Error()}
	}

	ctx, cancel := a.commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	cases := orchestration.GenerateCorpus(a.Config.Seed, a.Config.Iterations, a.Config.MaxWords)

	// Skip the banner in quiet mode
	if !a.Config.Quiet {
		cli.PrintVerifyConfig(a.Config, len(cases), out)
	}

	var reporter orchestration.ProgressReporter
	progressOut := io.Discard
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
		progressOut = cli.ProgressWriter(out)
	}

	start := time.Now()
	results := orchestration.ExecuteVerify(ctx, backends, cases, a.Config.Workers, reporter, progressOut)
	a.logger.Debug("verify finished",
		logging.Int("cases", len(cases)),
		logging.Int("backends", len(backends)),
		logging.Float64("seconds", time.Since(start).Seconds()))

	resultsOut := out
	if a.Config.Quiet {
		resultsOut = io.Discard
	}
	a.exitCode = orchestration.AnalyzeComparisonResults(cases, results, a.metrics, cli.CLIResultPresenter{}, resultsOut)
	if a.Config.Quiet {
		a.printQuietVerdict(out)
	}
	return nil
}

// printQuietVerdict prints a single status word for scripts.
func (a *Application) printQuietVerdict(out io.Writer) {
	switch a.exitCode {
	case apperrors.ExitSuccess:
		fmt.Fprintln(out, "ok")
	case apperrors.ExitErrorMismatch:
		fmt.Fprintln(out, "mismatch")
	default:
		fmt.Fprintln(out, "failed")
	}
}
