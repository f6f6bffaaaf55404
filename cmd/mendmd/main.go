package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mendmd/internal/adapters/filesystem"
	"mendmd/internal/adapters/sqlite"
	"mendmd/internal/adapters/state"
	"mendmd/internal/adapters/tui"
	"mendmd/internal/config"
	"mendmd/internal/logger"
	"mendmd/internal/ports"
)

func main() {
	// The terminal belongs to bubbletea; logs would tear the UI apart.
	logger.InitWriter(io.Discard, false)

	dataDir := config.DataDir()

	history, err := sqlite.OpenHistory(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer history.Close()

	open := func(root string) ports.VaultRepository {
		return filesystem.NewRepository(root)
	}
	app := tui.NewApp(open, state.NewStore(dataDir), history, dataDir)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
