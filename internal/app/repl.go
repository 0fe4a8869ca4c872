package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/agbru/arithmos/internal/cli"
	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/history"
	"github.com/agbru/arithmos/internal/logging"
	"github.com/agbru/arithmos/internal/tui"
	"github.com/spf13/cobra"
)

func (a *Application) newREPLCommand() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Evaluate operations interactively",
		Long: `repl reads one "<op> operands..." line at a time. On a terminal it opens a
full-screen session with history recall; otherwise it reads lines from
standard input, which makes it usable in pipelines. --timeout bounds each
line rather than the whole session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runREPL(cmd, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "use the line-mode REPL even on a terminal")
	return cmd
}

func (a *Application) runREPL(cmd *cobra.Command, plain bool) error {
	ctx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	path := a.Config.HistoryFile
	if path == "" {
		path = history.DefaultPath()
	}
	h, err := history.Load(path, history.DefaultLimit)
	if err != nil {
		// A corrupt history must not block the session.
		a.logger.Error("loading history", err, logging.String("path", path))
		h, _ = history.Load("", history.DefaultLimit)
	}

	if !plain && cli.IsTerminal(cmd.InOrStdin()) && cli.IsTerminal(cmd.OutOrStdout()) {
		return tui.Run(ctx, a.evaluator, h, tui.Config{
			Timeout:   a.Config.Timeout,
			MaxDigits: a.Config.MaxDigits,
			Version:   Version,
		})
	}
	return a.runLineREPL(ctx, cmd, h)
}

// runLineREPL serves non-terminal input. Any failed line makes the
// command exit with a generic error status.
func (a *Application) runLineREPL(ctx context.Context, cmd *cobra.Command, h *history.History) error {
	prompt := ""
	if cli.IsTerminal(cmd.OutOrStdout()) {
		prompt = "arithmos> "
	}
	repl := cli.NewREPL(a.evaluator, h, cli.REPLConfig{
		Timeout: a.Config.Timeout,
		Output:  a.outputConfig(),
		Prompt:  prompt,
	}, cmd.InOrStdin(), cmd.OutOrStdout())

	failures, err := repl.Run(ctx)
	if saveErr := h.Save(); saveErr != nil {
		a.logger.Error("saving history", saveErr)
	}
	if err != nil {
		return err
	}
	if failures > 0 {
		a.logger.Debug("repl finished with failures", logging.Int("failures", failures))
		a.exitCode = apperrors.ExitErrorGeneric
	}
	return nil
}
