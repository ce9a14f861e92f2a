package display

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/nextday/internal/domain"
)

// UI owns the Bubble Tea program running the wizard.
type UI struct {
	program *tea.Program
}

// NewUI prepares the program. Call Run to start it.
func NewUI(ctx context.Context, deps Deps, session *domain.Session) *UI {
	m := NewModel(ctx, deps, session)
	return &UI{program: tea.NewProgram(m, tea.WithContext(ctx))}
}

// Run blocks until the user quits and returns the final session.
func (u *UI) Run() (*domain.Session, error) {
	final, err := u.program.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(Model); ok {
		return m.Session(), nil
	}
	return nil, nil
}

// Mounted tells the running program that geolocation finished. Safe to
// call from any goroutine.
func (u *UI) Mounted() { u.program.Send(MountedMsg{}) }
