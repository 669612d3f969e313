package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestConfirmModel_Init(t *testing.T) {
	model := newConfirmModel("Continue?", false)

	cmd := model.Init()
	assert.Nil(t, cmd)
	assert.False(t, model.value)
}

func TestConfirmModel_View(t *testing.T) {
	model := newConfirmModel("Remove 2 component(s)?", false)

	view := model.View()

	if !strings.Contains(view, "Remove 2 component(s)?") {
		t.Error("View should contain prompt")
	}
	if !strings.Contains(view, "> No <") {
		t.Error("View should highlight the default answer")
	}
	if !strings.Contains(view, "esc to cancel") {
		t.Error("View should contain instructions")
	}
}

func TestConfirmModel_ViewDone(t *testing.T) {
	model := newConfirmModel("Continue?", true)
	model.done = true

	view := model.View()
	assert.True(t, strings.HasSuffix(view, "Yes\n"))
	assert.NotContains(t, view, "esc to cancel")
}

func TestConfirmModel_Navigation(t *testing.T) {
	model := newConfirmModel("Continue?", false)

	result, _ := model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model = result.(ConfirmModel)
	assert.True(t, model.value)

	result, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = result.(ConfirmModel)
	assert.False(t, model.value)

	result, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = result.(ConfirmModel)
	assert.True(t, model.value)
	assert.False(t, model.done)
}

func TestConfirmModel_Keys(t *testing.T) {
	tests := []struct {
		name          string
		defaultValue  bool
		key           tea.KeyMsg
		expectedValue bool
		cancelled     bool
	}{
		{
			name:          "enter keeps default no",
			key:           tea.KeyMsg{Type: tea.KeyEnter},
			expectedValue: false,
		},
		{
			name:          "enter keeps default yes",
			defaultValue:  true,
			key:           tea.KeyMsg{Type: tea.KeyEnter},
			expectedValue: true,
		},
		{
			name:          "y answers yes",
			key:           tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}},
			expectedValue: true,
		},
		{
			name:          "n answers no",
			defaultValue:  true,
			key:           tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}},
			expectedValue: false,
		},
		{
			name:      "esc cancels",
			key:       tea.KeyMsg{Type: tea.KeyEsc},
			cancelled: true,
		},
		{
			name:      "ctrl+c cancels",
			key:       tea.KeyMsg{Type: tea.KeyCtrlC},
			cancelled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newConfirmModel("Continue?", tt.defaultValue)

			result, cmd := model.Update(tt.key)
			model = result.(ConfirmModel)

			assert.NotNil(t, cmd) // Should quit
			assert.Equal(t, tt.cancelled, model.cancelled)
			if !tt.cancelled {
				assert.True(t, model.done)
				assert.Equal(t, tt.expectedValue, model.value)
			}
		})
	}
}

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	model := newConfirmModel("Continue?", false)

	result, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	model = result.(ConfirmModel)

	assert.Nil(t, cmd)
	assert.False(t, model.done)
	assert.False(t, model.value)
}
