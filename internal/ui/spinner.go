package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Operation result messages for spinner
type (
	operationSuccessMsg struct{}
	operationErrorMsg   struct{ err error }
)

// SpinnerModel implements a bubbletea model for showing progress while an operation runs.
// The operation cannot be interrupted, so keys are ignored until it reports back.
type SpinnerModel struct {
	spinner        spinner.Model
	message        string
	done           bool
	operationError error
}

func newSpinnerModel(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cursorStyle
	return SpinnerModel{
		spinner: s,
		message: message,
	}
}

// Init initializes the spinner model with tick animation
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages for the spinner model
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case operationSuccessMsg:
		m.done = true
		return m, tea.Quit
	case operationErrorMsg:
		m.operationError = msg.err
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// View renders the spinner model
func (m SpinnerModel) View() string {
	if m.done {
		// Clear the line that was used for the spinner
		return "\033[2K\r"
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}
