package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/miaudota/internal/domain"
	"github.com/heartmarshall/miaudota/internal/service/gallery"
)

// Run starts the interactive gallery and blocks until the user quits or
// ctx is cancelled. build receives the result callback for the filter it
// creates; the filter is closed on return.
func Run(ctx context.Context, title string, build func(onResult gallery.ResultFunc) Filter) error {
	var p *tea.Program

	f := build(func(items []domain.Candidate) {
		p.Send(ResultsMsg{Items: items})
	})
	defer f.Close()

	p = tea.NewProgram(New(f, title), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
