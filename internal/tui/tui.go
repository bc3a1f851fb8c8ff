package tui

import (
	"context"
	"fmt"
	"salon/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("ui requires a booking session")
	}

	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))

	opts.Session.SetRenderer(renderer(p.Send))
	defer opts.Session.SetRenderer(nil)

	_, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}

// renderer forwards session redraws into the program's update loop.
func renderer(send func(tea.Msg)) func(session.Snapshot) {
	return func(snap session.Snapshot) {
		send(renderMsg{snap: snap})
	}
}
