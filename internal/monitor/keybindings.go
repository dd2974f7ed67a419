package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency. The border toggle and quit keys
// mirror the two entries of the desktop widget's context menu.
const (
	KeyQuit         = "q"
	KeyQuitAlt      = "ctrl+c"
	KeyToggleBorder = "b"
	KeyToggleHelp   = "?"
	KeyCloseHelp    = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyToggleBorder:
		m.bordered = !m.bordered
		return true, nil

	case KeyToggleHelp:
		m.showHelp = !m.showHelp
		return true, nil

	case KeyCloseHelp:
		if m.showHelp {
			m.showHelp = false
			return true, nil
		}
	}

	return false, nil
}
