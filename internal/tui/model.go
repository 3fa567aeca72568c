package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/ward/internal/engine"
)

// Model adapts a Navigator to the bubbletea program loop.
// Each key message is dispatched synchronously before the next View.
type Model struct {
	ctx   context.Context
	nav   *engine.Navigator
	width int
}

// New returns a Model driving nav.
func New(ctx context.Context, nav *engine.Navigator) Model {
	return Model{ctx: ctx, nav: nav}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		for _, ev := range Translate(msg) {
			m.nav.Dispatch(m.ctx, ev)
			if m.nav.Done() {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.nav.Done() {
		return ""
	}
	return Render(m.nav.Layout(), m.width)
}

// Run enters the navigator's first screen and blocks until the user quits
// or ctx is cancelled. Cancellation is not an error.
func Run(ctx context.Context, nav *engine.Navigator) error {
	nav.Start(ctx)
	p := tea.NewProgram(New(ctx, nav), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return nil
}
