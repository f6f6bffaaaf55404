package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"mendmd/internal/adapters/tui/styles"
	"mendmd/internal/application/commands"
	"mendmd/internal/domain"
)

// ProgressMsg is one stage transition or per-document detail from the
// running pipeline.
type ProgressMsg struct {
	Stage  string
	Detail string
}

// RunDoneMsg carries the finished (or aborted) run's report.
type RunDoneMsg struct {
	Report *domain.RunReport
	Err    error
}

// CancelRunMsg asks the app to cancel the running pipeline.
type CancelRunMsg struct{}

var stageOrder = []string{
	commands.StageScan,
	commands.StageRename,
	commands.StageIndex,
	commands.StageResolve,
}

var stageLabels = map[string]string{
	commands.StageScan:    "Scanning vault",
	commands.StageRename:  "Renaming attachments",
	commands.StageIndex:   "Rebuilding path index",
	commands.StageResolve: "Repairing links",
}

// RunningModel shows pipeline progress while a run is in flight.
type RunningModel struct {
	spinner spinner.Model
	root    string
	stage   string
	detail  string

	width  int
	height int
}

// NewRunningModel builds the progress view for a run over root.
func NewRunningModel(root string) *RunningModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Cursor
	return &RunningModel{
		spinner: s,
		root:    root,
		stage:   commands.StageScan,
	}
}

// Init starts the spinner.
func (m *RunningModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetSize stores the window dimensions.
func (m *RunningModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update advances the spinner and tracks progress messages.
func (m *RunningModel) Update(msg tea.Msg) (*RunningModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "ctrl+c" {
			return m, func() tea.Msg { return CancelRunMsg{} }
		}
		return m, nil

	case ProgressMsg:
		m.stage = msg.Stage
		m.detail = msg.Detail
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the stage checklist.
func (m *RunningModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Running"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.root))
	b.WriteString("\n\n")

	reached := map[string]bool{}
	for _, s := range stageOrder {
		reached[s] = true
		if s == m.stage {
			break
		}
	}

	done := m.stage == commands.StageDone
	for _, s := range stageOrder {
		label := stageLabels[s]
		switch {
		case done || (reached[s] && s != m.stage):
			b.WriteString(styles.StageDone.Render("  ✓ " + label))
		case s == m.stage:
			b.WriteString(m.spinner.View() + styles.StageActive.Render(" "+label))
			if m.detail != "" {
				b.WriteString(styles.MutedText.Render("  " + m.detail))
			}
		default:
			b.WriteString(styles.StagePending.Render("    " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"))

	return styles.App.Render(b.String())
}
