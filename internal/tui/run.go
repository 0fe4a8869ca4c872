package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/arithmos/internal/history"
	"github.com/agbru/arithmos/internal/ops"
)

// Run starts the REPL on the terminal and blocks until the user quits or
// ctx is done. The history is saved on exit.
func Run(ctx context.Context, evaluator *ops.Evaluator, h *history.History, cfg Config) error {
	initStyles()
	model := NewModel(ctx, evaluator, h, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = ctx.Err()
	}
	return errors.Join(runErr, model.history.Save())
}
