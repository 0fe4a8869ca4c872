package app

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"regexp"
	"slices"
	"syscall"

	"github.com/agbru/arithmos/internal/bigint"
	"github.com/agbru/arithmos/internal/cli"
	"github.com/agbru/arithmos/internal/config"
	apperrors "github.com/agbru/arithmos/internal/errors"
	"github.com/agbru/arithmos/internal/logging"
	"github.com/agbru/arithmos/internal/metrics"
	"github.com/agbru/arithmos/internal/ops"
	"github.com/agbru/arithmos/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Application represents the arithmos command instance.
type Application struct {
	Config    config.AppConfig
	Registry  *ops.Registry
	ErrWriter io.Writer
	Stdin     io.Reader

	args      []string
	root      *cobra.Command
	logger    logging.Logger
	metrics   *metrics.Metrics
	evaluator *ops.Evaluator

	// started is set once the configuration has been resolved; errors
	// before that point are usage errors.
	started  bool
	exitCode int
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry replaces the default operation registry.
func WithRegistry(reg *ops.Registry) AppOption {
	return func(a *Application) { a.Registry = reg }
}

// WithStdin sets the input read by the repl command.
func WithStdin(r io.Reader) AppOption {
	return func(a *Application) { a.Stdin = r }
}

// New builds the command tree for args, where args[0] is the program
// name. Arguments are parsed by Run.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		Config:    config.Default(),
		ErrWriter: errWriter,
		Stdin:     os.Stdin,
		logger:    logging.NewZerologAdapter(zerolog.Nop()),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = ops.Default()
	}

	programName := "arithmos"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}
	app.args = protectNegativeOperands(cmdArgs)

	root, err := app.newRootCommand(programName)
	if err != nil {
		return nil, err
	}
	app.root = root
	return app, nil
}

func (a *Application) newRootCommand(programName string) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   programName,
		Short: "Arbitrary-precision, fixed-width and rational arithmetic",
		Long: `arithmos evaluates arithmetic on arbitrary-precision integers, checked
64-bit words and 64-bit rationals, and cross-checks its integer engine
against independent implementations.

Flags must come before negative operands: arithmos -q sum -5 3`,
		Version:           resolvedVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetErr(a.ErrWriter)
	root.SetIn(a.Stdin)
	root.SetArgs(a.args)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.ConfigError{Message: err.Error()}
	})
	config.RegisterFlags(root.PersistentFlags(), &a.Config)

	if err := a.addOperationCommands(root); err != nil {
		return nil, err
	}
	root.AddCommand(
		a.newEvalCommand(),
		a.newVerifyCommand(),
		a.newREPLCommand(),
		newVersionCommand(a),
	)
	return root, nil
}

// setup resolves the configuration and builds the shared evaluator. It
// runs before every subcommand.
func (a *Application) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Resolve(cmd.Flags(), &a.Config); err != nil {
		return err
	}
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return apperrors.NewConfigError("%v", err)
	}

	ui.InitTheme(a.Config.NoColor || !cli.IsTerminal(cmd.OutOrStdout()))
	bigint.SetKaratsubaThreshold(a.Config.KaratsubaThreshold)

	a.logger = logging.NewConsoleLogger(cmd.ErrOrStderr(), level, a.Config.NoColor || !cli.IsTerminal(cmd.ErrOrStderr()))
	a.metrics = metrics.New()
	a.evaluator = ops.NewEvaluator(a.Registry,
		ops.WithMetrics(a.metrics),
		ops.WithLogger(a.logger),
		ops.WithMaxResultWords(a.Config.MaxResultWords))
	a.started = true

	a.logger.Debug("configuration resolved",
		logging.Int("karatsuba_threshold", a.Config.KaratsubaThreshold),
		logging.Int("workers", a.Config.Workers),
		logging.String("timeout", a.Config.Timeout.String()))
	return nil
}

// Run executes the command line and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.root.SetOut(out)
	err := a.root.ExecuteContext(ctx)
	a.writeMetrics()
	if err != nil {
		var cfgErr apperrors.ConfigError
		if !a.started && !errors.As(err, &cfgErr) {
			err = apperrors.ConfigError{Message: err.Error()}
		}
		return cli.DisplayError(a.ErrWriter, err)
	}
	return a.exitCode
}

func (a *Application) writeMetrics() {
	if a.Config.MetricsFile == "" || a.metrics == nil {
		return
	}
	if err := a.metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.logger.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
	}
}

// commandContext bounds a command by the configured timeout and by
// SIGINT/SIGTERM.
func (a *Application) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(cmd.Context(), a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		Quiet:     a.Config.Quiet,
		Verbose:   a.Config.Verbose,
		MaxDigits: a.Config.MaxDigits,
	}
}

var negativeOperand = regexp.MustCompile(`(?i)^-(\d|inf)`)

// protectNegativeOperands inserts "--" before the first argument that
// reads as a negative number, so the flag parser leaves it alone.
func protectNegativeOperands(args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}
	i := slices.IndexFunc(args, negativeOperand.MatchString)
	if i < 0 {
		return args
	}
	return slices.Concat(args[:i:i], []string{"--"}, args[i:])
}
