package wizard

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunForm(t *testing.T, fn func(*huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = orig })
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}

	value := false
	err := ui.Confirm("Install?", &value)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestRunFormMapsEscToBack(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	err := ui.Note("title", "body")

	assert.ErrorIs(t, err, errWizardBack)
}

func TestRunFormMapsCtrlCToCancel(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error {
		ui.ctrlCAbort = true
		return huh.ErrUserAborted
	})

	var selected []string
	err := ui.MultiSelect("apps", []Option{{Label: "vim - editor", Value: "vim"}}, &selected)

	assert.ErrorIs(t, err, errWizardCancelled)
}

func TestRunFormPassesThroughSuccess(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	stubRunForm(t, func(*huh.Form) error { return nil })

	value := true
	assert.NoError(t, ui.Confirm("Install?", &value))
}

func TestNewHuhUIDefaultsTerminalCheck(t *testing.T) {
	assert.NotNil(t, NewHuhUI().isTerminal)
}
