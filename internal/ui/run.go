package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"prettybytes/internal/prettybytes"
)

// Run launches the interactive converter and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, settings prettybytes.Settings) error {
	prog := tea.NewProgram(NewModel(settings), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
