package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/arithmos/internal/cli"
	"github.com/agbru/arithmos/internal/format"
	"github.com/agbru/arithmos/internal/history"
	"github.com/agbru/arithmos/internal/metrics"
	"github.com/agbru/arithmos/internal/ops"
)

const (
	// tickInterval is the heap sampling period.
	tickInterval = time.Second
	// maxTranscript bounds the number of kept transcript entries.
	maxTranscript = 1000
	// chromeHeight is the number of rows used by header, input and help.
	chromeHeight = 4
)

// Config holds the session settings.
type Config struct {
	// Timeout bounds each evaluation; zero means none.
	Timeout   time.Duration
	MaxDigits int
	Version   string
}

type entryKind int

const (
	entryResult entryKind = iota
	entryError
	entryInfo
)

type entry struct {
	input string
	text  string
	kind  entryKind
}

type evalDoneMsg struct {
	generation uint64
	line       string
	res        ops.Result
	err        error
	elapsed    time.Duration
}

type tickMsg time.Time

// Model is the root bubbletea model of the REPL.
type Model struct {
	keymap KeyMap
	help   help.Model
	input  textinput.Model
	header HeaderModel

	evaluator *ops.Evaluator
	history   *history.History
	collector *metrics.MemoryCollector
	config    Config
	parentCtx context.Context

	transcript []entry
	// scroll is the number of transcript lines hidden below the view.
	scroll int
	// histBack indexes history from the newest entry; -1 is the draft.
	histBack int
	draft    string

	running    bool
	cancel     context.CancelFunc
	generation uint64

	width  int
	height int
}

// NewModel returns a REPL model. h may be nil for an unsaved session.
func NewModel(ctx context.Context, evaluator *ops.Evaluator, h *history.History, cfg Config) Model {
	if h == nil {
		h, _ = history.Load("", 0)
	}
	in := textinput.New()
	in.Prompt = promptStyle.Render("» ")
	in.TextStyle = inputStyle
	in.Placeholder = "op args...   (help lists operations)"
	in.Focus()

	return Model{
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		input:     in,
		header:    NewHeaderModel(cfg.Version),
		evaluator: evaluator,
		history:   h,
		collector: metrics.NewMemoryCollector(),
		config:    cfg,
		parentCtx: ctx,
		histBack:  -1,
		width:     80,
		height:    24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func evalCmd(ctx context.Context, e *ops.Evaluator, line string, generation uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		res, err := e.EvaluateLine(ctx, line)
		return evalDoneMsg{generation: generation, line: line, res: res, err: err, elapsed: time.Since(start)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.help.Width = msg.Width
		m.header.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case evalDoneMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.finishEval()
		m.header.Evaluated(msg.elapsed)
		if msg.err != nil {
			m.appendEntry(entry{input: msg.line, text: msg.err.Error(), kind: entryError})
			return m, nil
		}
		value := msg.res.String()
		if msg.res.Int != nil {
			value, _ = cli.FormatValue(value, m.config.MaxDigits)
		}
		m.appendEntry(entry{input: msg.line, text: value + dimStyle.Render("  ("+format.FormatExecutionDuration(msg.elapsed)+")")})
		return m, nil

	case tickMsg:
		m.header.SetHeap(m.collector.Snapshot().HeapAlloc)
		return m, tickCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) finishEval() {
	m.running = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.finishEval()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Cancel):
		if m.running {
			m.finishEval()
			m.generation++
			m.appendEntry(entry{text: "canceled", kind: entryInfo})
			return m, nil
		}
		m.input.SetValue("")
		m.histBack = -1
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Prev):
		m.recall(1)
		return m, nil

	case key.Matches(msg, m.keymap.Next):
		m.recall(-1)
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.transcript, m.scroll = nil, 0
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.scroll = min(m.scroll+m.bodyHeight()/2, max(len(m.transcriptLines())-m.bodyHeight(), 0))
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.scroll = max(m.scroll-m.bodyHeight()/2, 0)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// recall moves through history; step 1 goes back in time.
func (m *Model) recall(step int) {
	next := m.histBack + step
	if next < -1 || next >= m.history.Len() {
		return
	}
	if m.histBack == -1 {
		m.draft = m.input.Value()
	}
	m.histBack = next
	if next == -1 {
		m.input.SetValue(m.draft)
	} else {
		line, _ := m.history.At(next)
		m.input.SetValue(line)
	}
	m.input.CursorEnd()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" || m.running {
		return m, nil
	}
	m.input.SetValue("")
	m.histBack, m.draft = -1, ""
	m.scroll = 0
	m.history.Add(line)

	switch strings.ToLower(line) {
	case "exit", "quit":
		return m, tea.Quit
	case "clear":
		m.transcript = nil
		return m, nil
	case "help", "?":
		var sb strings.Builder
		for i, op := range m.evaluator.Registry().All() {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "%-28s %s", op.Usage(), op.Summary)
		}
		m.appendEntry(entry{input: line, text: sb.String(), kind: entryInfo})
		return m, nil
	}

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if m.config.Timeout > 0 {
		ctx, cancel = context.WithTimeout(m.parentCtx, m.config.Timeout)
	} else {
		ctx, cancel = context.WithCancel(m.parentCtx)
	}
	m.cancel = cancel
	m.running = true
	m.generation++
	return m, evalCmd(ctx, m.evaluator, line, m.generation)
}

func (m *Model) appendEntry(e entry) {
	m.transcript = append(m.transcript, e)
	if extra := len(m.transcript) - maxTranscript; extra > 0 {
		m.transcript = m.transcript[extra:]
	}
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeHeight, 1)
}

func (m Model) transcriptLines() []string {
	var lines []string
	for _, e := range m.transcript {
		if e.input != "" {
			lines = append(lines, promptStyle.Render("» ")+opStyle.Render(e.input))
		}
		var style lipgloss.Style
		switch e.kind {
		case entryError:
			style = errorStyle
		case entryInfo:
			style = warningStyle
		default:
			style = valueStyle
		}
		for _, l := range strings.Split(e.text, "\n") {
			lines = append(lines, "  "+style.Render(l))
		}
	}
	return lines
}

func (m Model) View() string {
	lines := m.transcriptLines()
	body := m.bodyHeight()
	end := max(len(lines)-m.scroll, 0)
	start := max(end-body, 0)
	visible := lines[start:end]
	for len(visible) < body {
		visible = append([]string{""}, visible...)
	}

	status := m.input.View()
	if m.running {
		status = warningStyle.Render("evaluating... (esc to cancel)")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		strings.Join(visible, "\n"),
		status,
		m.help.View(m.keymap),
	)
}
