package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen program and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, session Session, opts Options) error {
	_, err := tea.NewProgram(New(ctx, session, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}
