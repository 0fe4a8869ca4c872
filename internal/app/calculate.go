package app

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/agbru/arithmos/internal/cli"
	"github.com/agbru/arithmos/internal/metrics"
	"github.com/agbru/arithmos/internal/ops"
	"github.com/spf13/cobra"
)

// reservedCommands cannot be used as operation names.
var reservedCommands = []string{"eval", "verify", "repl", "version", "help", "completion"}

var categoryTitles = map[ops.Category]string{
	ops.CategoryInteger:  "Arbitrary-precision integers:",
	ops.CategoryWord:     "Fixed-width integers:",
	ops.CategoryRational: "Rationals:",
}

// addOperationCommands adds one subcommand per registry operation,
// grouped by category in the help output.
func (a *Application) addOperationCommands(root *cobra.Command) error {
	seen := make(map[ops.Category]bool)
	for _, op := range a.Registry.All() {
		if slices.Contains(reservedCommands, op.Name) {
			return fmt.Errorf("operation %q collides with a built-in command", op.Name)
		}
		if !seen[op.Category] {
			seen[op.Category] = true
			title, ok := categoryTitles[op.Category]
			if !ok {
				title = string(op.Category) + ":"
			}
			root.AddGroup(&cobra.Group{ID: string(op.Category), Title: title})
		}
		root.AddCommand(a.newOperationCommand(op))
	}
	return nil
}

func (a *Application) newOperationCommand(op ops.Operation) *cobra.Command {
	return &cobra.Command{
		Use:     op.Usage(),
		Short:   op.Summary,
		GroupID: string(op.Category),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCalculate(cmd, func(ctx context.Context) (ops.Result, error) {
				return a.evaluator.Evaluate(ctx, op.Name, args)
			})
		},
	}
}

func (a *Application) newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `eval "<op> [operands...]"`,
		Short: "Evaluate one line in REPL syntax",
		Example: `  arithmos eval "mul 123456789 -987654321"
  arithmos eval "rat-sum 1/3 -1/6"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			return a.runCalculate(cmd, func(ctx context.Context) (ops.Result, error) {
				return a.evaluator.EvaluateLine(ctx, line)
			})
		},
	}
}

// runCalculate evaluates one operation under the command lifecycle and
// prints its result. Verbose mode also measures time and heap use.
func (a *Application) runCalculate(cmd *cobra.Command, eval func(context.Context) (ops.Result, error)) error {
	ctx, cancel := a.commandContext(cmd)
	defer cancel()

	var (
		collector *metrics.MemoryCollector
		before    metrics.MemorySnapshot
	)
	if a.Config.Verbose {
		collector = metrics.NewMemoryCollector()
		before = collector.Snapshot()
	}
	start := time.Now()
	res, err := eval(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var details *cli.Details
	if collector != nil {
		after := collector.Snapshot()
		details = &cli.Details{Duration: elapsed, Memory: after.Since(before), Heap: after}
	}
	cli.DisplayResult(cmd.OutOrStdout(), res, a.outputConfig(), details)
	return nil
}
