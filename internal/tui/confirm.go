package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mdboard/internal/logs"
	"mdboard/internal/tui/theme"
)

type confirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y/enter", "delete"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "esc", "q", "ctrl+c"),
		key.WithHelp("n/esc", "keep"),
	),
}

// ConfirmModel is a yes/no prompt shown before a destructive edit
type ConfirmModel struct {
	Message   string // Primary question
	Details   string // Additional context (optional)
	Width     int    // Modal width
	Confirmed bool
	done      bool
}

// NewConfirmModel creates a new confirmation prompt
func NewConfirmModel(message, details string, width int) ConfirmModel {
	return ConfirmModel{
		Message: message,
		Details: details,
		Width:   width,
	}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update resolves the prompt on a yes or no key and quits
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.Confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, confirmKeys.No):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the prompt box; it is cleared once answered
func (m ConfirmModel) View() string {
	if m.done {
		return ""
	}

	content := theme.Error.Render(m.Message) + "\n"
	if m.Details != "" {
		content += "\n" + m.Details + "\n"
	}
	content += "\n"
	content += theme.Ok.Render("["+confirmKeys.Yes.Help().Key+"]") + " " + confirmKeys.Yes.Help().Desc + "  "
	content += theme.ModalHelp.Render("["+confirmKeys.No.Help().Key+"]") + " " + confirmKeys.No.Help().Desc

	box := theme.ModalBox
	if m.Width > 0 {
		box = box.Width(m.Width)
	}
	return box.Render(content)
}

// Prompter asks for confirmation in the terminal. Nil In/Out use the process's
// stdin/stdout.
type Prompter struct {
	In    io.Reader
	Out   io.Writer
	Width int
}

// Confirm runs the prompt and reports the answer. Any failure to run the
// prompt counts as "no".
func (p Prompter) Confirm(prompt string) bool {
	var opts []tea.ProgramOption
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}

	final, err := tea.NewProgram(NewConfirmModel(prompt, "", p.Width), opts...).Run()
	if err != nil {
		logs.Logger.Warn("confirmation prompt failed", "err", err)
		return false
	}

	m, ok := final.(ConfirmModel)
	return ok && m.Confirmed
}
