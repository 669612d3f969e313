package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel implements a bubbletea model for a yes/no question
type ConfirmModel struct {
	prompt    string
	value     bool
	cancelled bool
	done      bool
}

func newConfirmModel(prompt string, defaultValue bool) ConfirmModel {
	return ConfirmModel{
		prompt: prompt,
		value:  defaultValue,
	}
}

// Init initializes the confirm model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles input events for the confirm model
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "up", "k":
			m.value = true
		case "right", "l", "down", "j":
			m.value = false
		case "tab":
			m.value = !m.value
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the confirm model
func (m ConfirmModel) View() string {
	s := fmt.Sprintf("\033[1m%s\033[0m ", m.prompt)

	// If done, only show the answer
	if m.done {
		if m.value {
			return s + "Yes\n"
		}
		return s + "No\n"
	}

	yes, no := "  Yes  ", "  No  "
	if m.value {
		yes = "> Yes <"
	} else {
		no = "> No <"
	}
	s += fmt.Sprintf("%s %s\n", yes, no)

	s += "\n(y/n, arrows to choose, enter to confirm, esc to cancel)"
	return s
}
