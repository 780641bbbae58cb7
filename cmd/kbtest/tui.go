package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/kbtest/internal/bridge"
	"github.com/nikbrunner/kbtest/internal/config"
	"github.com/nikbrunner/kbtest/internal/state"
	"github.com/nikbrunner/kbtest/internal/tui"
)

// runTUI starts the terminal UI on an empty store. The host bridge is not
// wired up yet, so the initial load reports its error in the UI.
func runTUI(cfg *config.Config, logger *slog.Logger) error {
	store := state.NewStore(state.WithLogger(logger))
	controller := bridge.NewController(bridge.Nop{}, store, logger)

	app := tui.NewApp(tui.AppParams{
		Store:  store,
		Config: cfg,
		Load:   controller.LoadProjects,
		Logger: logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	unsubscribe := store.Subscribe(func(state.State) {
		go p.Send(tui.RefreshMsg{})
	})
	defer unsubscribe()

	stopWatching := controller.WatchCompletions()
	defer stopWatching()

	logger.Info("starting tui")
	_, err := p.Run()
	return err
}
