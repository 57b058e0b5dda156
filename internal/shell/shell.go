// Package shell implements the interactive task shell using bubbletea.
//
// The shell is a read-eval-print loop: it redraws the full screen with
// the current task list, reads one command line, dispatches it, and
// loops. A status line reflects the outcome of the last command and is
// cleared when the next command is dispatched; error statuses also
// expire on their own so they stay readable for a moment but don't
// linger.
package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/worksonmyai/smallt/internal/task"
	"github.com/worksonmyai/smallt/internal/ui"
)

// errorPause keeps error statuses on screen before they are cleared,
// mirroring the brief pause of the original redraw loop.
const errorPause = 1500 * time.Millisecond

type mode int

const (
	// modeInput awaits a command line.
	modeInput mode = iota
	// modeConfirmClearAll awaits the y/N answer for clearall. Only a
	// lowercase y confirms; any other key cancels without side effects.
	modeConfirmClearAll
)

// statusExpiredMsg clears an error status after errorPause. seq guards
// against a stale tick expiring a status set after it was scheduled.
type statusExpiredMsg struct {
	seq int
}

// Model is the bubbletea model for the interactive shell.
type Model struct {
	mgr      *task.Manager
	input    textinput.Model
	tasks    []task.Task
	status   *ui.Status
	mode     mode
	seq      int
	quitting bool
}

// NewModel returns a shell model over mgr with the task list already
// loaded.
func NewModel(mgr *task.Manager) Model {
	ti := textinput.New()
	ti.Prompt = ui.Prompt()
	ti.Placeholder = "type a command"
	ti.Focus()

	return Model{
		mgr:   mgr,
		input: ti,
		tasks: mgr.List(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeConfirmClearAll {
			return m.updateConfirm(msg)
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			// Interrupt and end-of-input behave exactly like "exit".
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.dispatch(m.input.Value())
		}

	case statusExpiredMsg:
		if m.status != nil && msg.seq == m.seq && m.status.Category == ui.Error {
			m.status = nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.Title())
	b.WriteString("\n\n")
	b.WriteString(ui.TaskList(m.tasks))
	b.WriteString("\n")
	if m.status != nil {
		b.WriteString("\n")
		b.WriteString(ui.RenderStatus(*m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(ui.Help())
	b.WriteString("\n\n")
	if m.mode == modeConfirmClearAll {
		b.WriteString(ui.ConfirmClearAll())
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	return b.String()
}

// setStatus records a status and bumps the sequence number so pending
// expiry ticks for older statuses are ignored.
func (m *Model) setStatus(s ui.Status) {
	m.seq++
	m.status = &s
}

// expireCmd schedules the expiry tick for the current status when it is
// error-class; other categories stay until the next command.
func (m *Model) expireCmd() tea.Cmd {
	if m.status == nil || m.status.Category != ui.Error {
		return nil
	}
	seq := m.seq
	return tea.Tick(errorPause, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

// Run starts the interactive shell and blocks until the user exits. The
// farewell is printed after the alternate screen is restored.
func Run(mgr *task.Manager) error {
	p := tea.NewProgram(NewModel(mgr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	fmt.Println(ui.Farewell())
	return nil
}
