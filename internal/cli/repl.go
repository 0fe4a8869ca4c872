package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/arithmos/internal/history"
	"github.com/agbru/arithmos/internal/ops"
	"github.com/agbru/arithmos/internal/ui"
)

// REPLConfig holds the settings of a line-mode session.
type REPLConfig struct {
	// Timeout bounds each evaluated line.
	Timeout time.Duration
	Output  OutputConfig
	// Prompt is printed before each line; empty disables it.
	Prompt string
}

// REPL reads "op args..." lines and prints each result. It is used when
// standard input is not a terminal; terminals get the TUI instead.
type REPL struct {
	config    REPLConfig
	evaluator *ops.Evaluator
	history   *history.History
	in        io.Reader
	out       io.Writer
}

// NewREPL returns a session reading in and writing out. h may be nil.
func NewREPL(evaluator *ops.Evaluator, h *history.History, config REPLConfig, in io.Reader, out io.Writer) *REPL {
	if h == nil {
		h, _ = history.Load("", 0)
	}
	return &REPL{config: config, evaluator: evaluator, history: h, in: in, out: out}
}

// Run processes lines until EOF, an exit command or ctx is done. It
// returns the number of lines that failed.
func (r *REPL) Run(ctx context.Context) (failures int, err error) {
	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for {
		if err := ctx.Err(); err != nil {
			return failures, err
		}
		if r.config.Prompt != "" {
			fmt.Fprint(r.out, ui.Paint(ui.ColorGreen(), r.config.Prompt))
		}
		if !scanner.Scan() {
			return failures, scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.history.Add(line)
		done, ok := r.processCommand(ctx, line)
		if !ok {
			failures++
		}
		if done {
			return failures, nil
		}
	}
}

// processCommand handles one line. done reports an exit command; ok is
// false when the line failed.
func (r *REPL) processCommand(ctx context.Context, line string) (done, ok bool) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return true, true
	case "help", "?":
		r.printHelp()
		return false, true
	case "history":
		for i, e := range r.history.Entries() {
			fmt.Fprintf(r.out, "%4d  %s\n", i+1, e)
		}
		return false, true
	case "verbose":
		r.config.Output.Verbose = !r.config.Output.Verbose
		fmt.Fprintf(r.out, "verbose: %t\n", r.config.Output.Verbose)
		return false, true
	}

	evalCtx := ctx
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		evalCtx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}
	start := time.Now()
	res, err := r.evaluator.EvaluateLine(evalCtx, line)
	if err != nil {
		DisplayError(r.out, err)
		return false, false
	}
	DisplayResult(r.out, res, r.config.Output, &Details{Duration: time.Since(start)})
	return false, true
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sOperations:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, op := range r.evaluator.Registry().All() {
		fmt.Fprintf(r.out, "  %s %s\n", ui.Paint(ui.ColorYellow(), fmt.Sprintf("%-28s", op.Usage())), op.Summary)
	}
	fmt.Fprintf(r.out, "%sCommands:%s help, history, verbose, exit\n", ui.ColorBold(), ui.ColorReset())
}
