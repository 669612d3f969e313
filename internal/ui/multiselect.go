package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// multiSelectPageSize is the number of options shown at once.
const multiSelectPageSize = 10

var (
	accentColor   = lipgloss.Color("39")
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(accentColor)
	checkedStyle  = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	subtleStyle   = lipgloss.NewStyle().Faint(true)
	emptyFilterUI = subtleStyle.Italic(true).Render("Start typing to filter")
)

// MultiSelectModel implements a bubbletea model for checking any number of options,
// with a text input narrowing the visible options.
type MultiSelectModel struct {
	prompt      string
	options     []string
	filtered    []int // indexes into options
	checked     map[int]bool
	cursor      int // index into filtered
	offset      int // first visible row of filtered
	filterInput textinput.Model
	cancelled   bool
	done        bool
}

func newMultiSelectModel(prompt string, options []string) MultiSelectModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 60
	ti.Prompt = "/ "
	ti.PromptStyle = cursorStyle
	ti.Cursor.Style = cursorStyle

	m := MultiSelectModel{
		prompt:      prompt,
		options:     options,
		checked:     map[int]bool{},
		filterInput: ti,
	}
	m.filterOptions()
	return m
}

// Selected returns the checked options in their original order.
func (m MultiSelectModel) Selected() []string {
	var selected []string
	for i, option := range m.options {
		if m.checked[i] {
			selected = append(selected, option)
		}
	}
	return selected
}

// Init initializes the multi-select model with cursor blink
func (m MultiSelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events for the multi-select model
func (m MultiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			m.scroll()
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.scroll()
			return m, nil
		case " ":
			if len(m.filtered) > 0 {
				idx := m.filtered[m.cursor]
				m.checked[idx] = !m.checked[idx]
			}
			return m, nil
		case "ctrl+a":
			m.toggleVisible()
			return m, nil
		}
	}

	// Let the textinput handle all other input (including paste)
	var cmd tea.Cmd
	prevValue := m.filterInput.Value()
	m.filterInput, cmd = m.filterInput.Update(msg)

	if m.filterInput.Value() != prevValue {
		m.filterOptions()
	}

	return m, cmd
}

// toggleVisible checks every visible option, or unchecks them all if they are already checked.
func (m *MultiSelectModel) toggleVisible() {
	allChecked := true
	for _, idx := range m.filtered {
		if !m.checked[idx] {
			allChecked = false
			break
		}
	}
	for _, idx := range m.filtered {
		m.checked[idx] = !allChecked
	}
}

func (m *MultiSelectModel) filterOptions() {
	filter := strings.ToLower(m.filterInput.Value())

	var filtered []int
	for i, opt := range m.options {
		if filter == "" || strings.Contains(strings.ToLower(opt), filter) {
			filtered = append(filtered, i)
		}
	}

	m.filtered = filtered

	m.cursor = 0
	m.offset = 0
}

// scroll keeps the cursor within the visible page.
func (m *MultiSelectModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+multiSelectPageSize {
		m.offset = m.cursor - multiSelectPageSize + 1
	}
}

// View renders the multi-select model
func (m MultiSelectModel) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString("\n\n")

	// If done, only show the checked options
	if m.done {
		selected := m.Selected()
		if len(selected) == 0 {
			b.WriteString("> (none)\n\n")
		} else {
			fmt.Fprintf(&b, "> %s\n\n", strings.Join(selected, ", "))
		}
		return b.String()
	}

	if m.filterInput.Value() != "" {
		b.WriteString(m.filterInput.View())
	} else {
		b.WriteString(emptyFilterUI)
	}
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString("  No matches found\n")
	} else {
		end := min(m.offset+multiSelectPageSize, len(m.filtered))
		for row := m.offset; row < end; row++ {
			idx := m.filtered[row]
			cursor := " "
			if row == m.cursor {
				cursor = cursorStyle.Render(">")
			}
			box := "[ ]"
			label := m.options[idx]
			if m.checked[idx] {
				box = "[x]"
				label = checkedStyle.Render(label)
			}
			fmt.Fprintf(&b, "%s %s %s\n", cursor, box, label)
		}

		if hidden := len(m.filtered) - (end - m.offset); hidden > 0 {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("\n  (%d more...)", hidden)))
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n%d selected. Type to filter, space to toggle, ctrl+a to toggle all, enter to confirm, esc to cancel", len(m.Selected()))
	return b.String()
}
