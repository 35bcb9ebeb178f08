package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"svw.info/daygrid/internal/domain"
	"svw.info/daygrid/internal/ports"
)

// Run starts the interactive browser and blocks until the user quits.
func Run(tilers map[domain.EngineKind]ports.Tiler, start domain.Date) error {
	p := tea.NewProgram(NewModel(tilers, start), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
