package tui

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"mendmd/internal/adapters/report"
	"mendmd/internal/adapters/tui/views"
	"mendmd/internal/application/commands"
	"mendmd/internal/config"
	"mendmd/internal/logger"
	"mendmd/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewSetup ViewState = iota
	ViewRunning
	ViewReport
)

// RepositoryFactory opens a vault repository for the root chosen in the
// setup form.
type RepositoryFactory func(root string) ports.VaultRepository

// App is the main TUI application model
type App struct {
	open     RepositoryFactory
	store    ports.StateStore
	history  ports.RunHistory
	dataDir  string
	projects *config.Projects

	state   ViewState
	setup   *views.SetupModel
	running *views.RunningModel
	result  *views.ReportModel

	cancelRun context.CancelFunc
	runCh     chan tea.Msg

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(open RepositoryFactory, store ports.StateStore, history ports.RunHistory, dataDir string) *App {
	projects, err := config.LoadProjects(dataDir)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("could not load recent projects")
		projects = &config.Projects{}
	}
	return &App{
		open:     open,
		store:    store,
		history:  history,
		dataDir:  dataDir,
		projects: projects,
		state:    ViewSetup,
		setup:    views.NewSetupModel(projects.Projects),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.setup.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.setup.SetSize(msg.Width, msg.Height)
		if a.running != nil {
			a.running.SetSize(msg.Width, msg.Height)
		}
		if a.result != nil {
			a.result.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case views.StartRunMsg:
		return a, a.startRun(msg)

	case views.ProgressMsg:
		if a.running != nil {
			a.running, _ = a.running.Update(msg)
		}
		return a, a.waitForRun()

	case views.RunDoneMsg:
		a.cancelRun = nil
		a.runCh = nil
		reportPath := ""
		if msg.Report != nil {
			if err := report.WriteArtifacts(a.dataDir, msg.Report); err != nil {
				logger.Get().Warn().Err(err).Msg("could not write report artifacts")
			} else {
				reportPath = filepath.Join(a.dataDir, report.ReportFile)
			}
		}
		a.result = views.NewReportModel(msg.Report, msg.Err, reportPath)
		a.result.SetSize(a.width, a.height)
		a.state = ViewReport
		return a, nil

	case views.CancelRunMsg:
		if a.cancelRun != nil {
			a.cancelRun()
		}
		return a, nil

	case views.NewRunMsg:
		a.setup = views.NewSetupModel(a.projects.Projects)
		a.setup.SetSize(a.width, a.height)
		a.state = ViewSetup
		return a, a.setup.Init()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewSetup:
		a.setup, cmd = a.setup.Update(msg)
	case ViewRunning:
		a.running, cmd = a.running.Update(msg)
	case ViewReport:
		a.result, cmd = a.result.Update(msg)
	}
	return a, cmd
}

func (a *App) startRun(msg views.StartRunMsg) tea.Cmd {
	var selected []string
	for _, c := range msg.Categories {
		selected = append(selected, string(c))
	}
	a.projects.Remember(msg.Root, selected)
	if err := config.SaveProjects(a.dataDir, a.projects); err != nil {
		logger.Get().Warn().Err(err).Msg("could not save recent projects")
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancelRun = cancel
	a.runCh = make(chan tea.Msg, 32)

	a.running = views.NewRunningModel(msg.Root)
	a.running.SetSize(a.width, a.height)
	a.state = ViewRunning

	ch := a.runCh
	run := commands.NewRunCommand(a.open(msg.Root), a.store, a.history, msg.Categories)
	run.Progress = func(stage, detail string) {
		ch <- views.ProgressMsg{Stage: stage, Detail: detail}
	}
	go func() {
		rep, err := run.Execute(ctx)
		ch <- views.RunDoneMsg{Report: rep, Err: err}
	}()

	return tea.Batch(a.running.Init(), a.waitForRun())
}

func (a *App) waitForRun() tea.Cmd {
	ch := a.runCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return <-ch
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewRunning:
		return a.running.View()
	case ViewReport:
		return a.result.View()
	default:
		return a.setup.View()
	}
}
