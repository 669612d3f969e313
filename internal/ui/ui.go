package ui

//go:generate go tool mockgen -source=ui.go -destination=mock/mock.go -package=mock

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ErrCancelled is returned when the user aborts an interactive prompt with esc or ctrl+c.
var ErrCancelled = errors.New("cancelled by user")

// Provider provides interactive terminal UI components
type Provider interface {
	// MultiSelect presents a filterable list of options and returns the checked values in option order
	MultiSelect(prompt string, options []string) ([]string, error)

	// Confirm asks a yes/no question
	Confirm(prompt string, defaultValue bool) (bool, error)

	// RunWithSpinner runs a function with a bubbletea spinner
	RunWithSpinner(message string, operation func() error) error

	// ShowInfo displays an informational message
	ShowInfo(message string)

	// ShowNotice displays a highlighted message without a prefix
	ShowNotice(message string)

	// ShowMuted displays a de-emphasized message without a prefix
	ShowMuted(message string)

	// ShowWarning displays a warning message
	ShowWarning(message string)

	// ShowSuccess displays a success message
	ShowSuccess(message string)

	// ShowError displays an error message
	ShowError(err error)

	// ShowDebug displays a message only if debug output is enabled
	ShowDebug(message string)

	// NewLine prints a blank line
	NewLine()

	// ShowJSON displays formatted JSON output
	ShowJSON(data any) error

	// ShowYAML displays formatted YAML output
	ShowYAML(data any) error
}

// BubbleteaUI implementation of the UI Provider interface.
type BubbleteaUI struct {
	stdout         io.Writer
	stderr         io.Writer
	programOptions []tea.ProgramOption
}

// New creates a new UI instance using bubbletea
func New() *BubbleteaUI {
	return &BubbleteaUI{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewWithOptions creates a new UI instance with custom options for testing
func NewWithOptions(stdout, stderr io.Writer, input io.Reader) *BubbleteaUI {
	var options []tea.ProgramOption

	if input != nil {
		options = append(options, tea.WithInput(input))
	}

	if stdout != nil {
		options = append(options, tea.WithOutput(stdout))
	}

	// Always disable renderer for testing to avoid TTY issues
	options = append(options, tea.WithoutRenderer())

	return &BubbleteaUI{
		stdout:         stdout,
		stderr:         stderr,
		programOptions: options,
	}
}

// MultiSelect presents a filterable list of options and returns the checked values.
// An empty result is not an error, ErrCancelled is returned if the user aborts.
func (ui *BubbleteaUI) MultiSelect(prompt string, options []string) ([]string, error) {
	model := newMultiSelectModel(prompt, options)
	program := tea.NewProgram(model, ui.programOptions...)

	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("error running multi-select: %w", err)
	}

	m := finalModel.(MultiSelectModel)
	if m.cancelled {
		return nil, ErrCancelled
	}

	return m.Selected(), nil
}

// Confirm asks a yes/no question and returns the user's choice.
// ErrCancelled is returned if the user aborts.
func (ui *BubbleteaUI) Confirm(prompt string, defaultValue bool) (bool, error) {
	model := newConfirmModel(prompt, defaultValue)
	program := tea.NewProgram(model, ui.programOptions...)

	finalModel, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("error running confirm: %w", err)
	}

	m := finalModel.(ConfirmModel)
	if m.cancelled {
		return false, ErrCancelled
	}

	return m.value, nil
}

// RunWithSpinner runs a function with a bubbletea spinner.
// When stdout is not a terminal the message is printed once and the function is run directly.
func (ui *BubbleteaUI) RunWithSpinner(message string, operation func() error) error {
	if !ui.isTerminal() {
		ui.ShowInfo(message)
		return operation()
	}

	model := newSpinnerModel(message)
	program := tea.NewProgram(model, ui.programOptions...)

	// Run the operation in a goroutine
	go func() {
		err := operation()
		if err != nil {
			program.Send(operationErrorMsg{err})
		} else {
			program.Send(operationSuccessMsg{})
		}
	}()

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	spinnerModel := finalModel.(SpinnerModel)
	return spinnerModel.operationError
}

func (ui *BubbleteaUI) isTerminal() bool {
	f, ok := ui.stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ShowInfo displays an informational message
func (ui *BubbleteaUI) ShowInfo(message string) {
	pterm.Info.WithWriter(ui.stdout).Println(message)
}

// ShowNotice displays a highlighted message without a prefix
func (ui *BubbleteaUI) ShowNotice(message string) {
	pterm.Fprintln(ui.stdout, pterm.Cyan(message))
}

// ShowMuted displays a de-emphasized message without a prefix
func (ui *BubbleteaUI) ShowMuted(message string) {
	pterm.Fprintln(ui.stdout, pterm.Gray(message))
}

// ShowWarning displays a warning message
func (ui *BubbleteaUI) ShowWarning(message string) {
	pterm.Warning.WithWriter(ui.stdout).Println(message)
}

// ShowSuccess displays a success message
func (ui *BubbleteaUI) ShowSuccess(message string) {
	pterm.Success.WithWriter(ui.stdout).Println(message)
}

// ShowError prints an error message to stderr
func (ui *BubbleteaUI) ShowError(err error) {
	if err != nil {
		pterm.Error.WithWriter(ui.stderr).Println(err.Error())
	}
}

// ShowDebug displays a debug message, see pterm.EnableDebugMessages
func (ui *BubbleteaUI) ShowDebug(message string) {
	pterm.Debug.WithWriter(ui.stdout).Println(message)
}

// NewLine prints a blank line
func (ui *BubbleteaUI) NewLine() {
	fmt.Fprintln(ui.stdout)
}
