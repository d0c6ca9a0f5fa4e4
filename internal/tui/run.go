package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JeffryGonzalez/timer/internal/clock"
	"github.com/JeffryGonzalez/timer/internal/config"
	"github.com/JeffryGonzalez/timer/internal/timer"
)

// Run starts the dashboard. A valid initial selection is confirmed
// immediately, so the countdown is already running on the first frame.
func Run(cfg *config.Config, initial timer.Selection) error {
	model := NewModel(cfg, clock.Real{}, initial)
	program := tea.NewProgram(model, tea.WithAltScreen())

	_, err := program.Run()
	return err
}
