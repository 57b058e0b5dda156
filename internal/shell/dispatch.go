package shell

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/worksonmyai/smallt/internal/ui"
)

// dispatch parses one command line and runs it. The command keyword is
// matched case-insensitively; the rest of the line keeps the user's
// case. The previous status is always cleared first, so a status is
// visible for exactly one command cycle.
func (m Model) dispatch(line string) (tea.Model, tea.Cmd) {
	m.input.SetValue("")
	m.status = nil

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}
	keyword := strings.ToLower(fields[0])
	rest := fields[1:]

	switch keyword {
	case "exit":
		m.quitting = true
		return m, tea.Quit

	case "add":
		text, err := m.mgr.Add(strings.Join(rest, " "))
		if err != nil {
			m.setStatus(ui.StatusFor(err))
		} else {
			m.setStatus(ui.Added(text))
		}

	case "check":
		if index, ok := parseIndex(rest); !ok {
			m.setStatus(ui.InvalidNumber())
		} else if err := m.mgr.Check(index); err != nil {
			m.setStatus(ui.StatusFor(err))
		} else {
			m.setStatus(ui.Checked(index))
		}

	case "delete":
		if index, ok := parseIndex(rest); !ok {
			m.setStatus(ui.InvalidNumber())
		} else if text, err := m.mgr.Delete(index); err != nil {
			m.setStatus(ui.StatusFor(err))
		} else {
			m.setStatus(ui.Deleted(text))
		}

	case "clear":
		n, err := m.mgr.ClearCompleted()
		if err != nil {
			m.setStatus(ui.StatusFor(err))
		} else {
			m.setStatus(ui.Cleared(n))
		}

	case "clearall":
		m.mode = modeConfirmClearAll
		return m, nil

	case "list":
		// Nothing to do beyond the reload below.

	default:
		m.setStatus(ui.UnknownCommand())
	}

	m.tasks = m.mgr.List()
	return m, m.expireCmd()
}

// updateConfirm handles the single-key answer of the clearall prompt.
// Interrupt and end-of-input cancel, same as any key other than a
// lowercase y.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeInput

	if msg.Type == tea.KeyRunes && string(msg.Runes) == "y" {
		n, err := m.mgr.ClearAll()
		if err != nil {
			m.setStatus(ui.StatusFor(err))
		} else {
			m.setStatus(ui.ClearedAll(n))
		}
		m.tasks = m.mgr.List()
	} else {
		m.setStatus(ui.Cancelled())
	}

	return m, m.expireCmd()
}

// parseIndex reads the single integer argument of check/delete.
func parseIndex(args []string) (int, bool) {
	if len(args) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
