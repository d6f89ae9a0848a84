package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmKeyMap defines the keys of the yes/no prompt.
type confirmKeyMap struct {
	Yes  key.Binding
	No   key.Binding
	Quit key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y", "enter"),
		key.WithHelp("y/enter", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "esc", "q"),
		key.WithHelp("n/esc", "no"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "abort"),
	),
}

// ShortHelp implements help.KeyMap.
func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

// FullHelp implements help.KeyMap.
func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Yes, k.No, k.Quit}}
}

// maxConfirmItems limits how many details the prompt lists.
const maxConfirmItems = 10

type confirmModel struct {
	help      help.Model
	title     string
	items     []string
	done      bool
	confirmed bool
}

func newConfirmModel(title string, items []string) confirmModel {
	return confirmModel{title: title, items: items, help: help.New()}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.done, m.confirmed = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, confirmKeys.No), key.Matches(keyMsg, confirmKeys.Quit):
		m.done, m.confirmed = true, false
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == maxConfirmItems {
			b.WriteString(MutedStyle.Render(fmt.Sprintf("  ... and %d more", len(m.items)-maxConfirmItems)))
			b.WriteString("\n")

			break
		}

		b.WriteString("  " + item + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(confirmKeys))
	b.WriteString("\n")

	return b.String()
}

// Confirm shows a yes/no prompt listing items and reports whether the user
// accepted.
func Confirm(title string, items []string, in io.Reader, out io.Writer) (bool, error) {
	p := tea.NewProgram(newConfirmModel(title, items), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("running confirmation prompt: %w", err)
	}

	m, ok := final.(confirmModel)

	return ok && m.confirmed, nil
}
