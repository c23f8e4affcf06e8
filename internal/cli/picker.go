package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	pickerCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	pickerHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Accept key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys(" ")),
		Accept: key.NewBinding(key.WithKeys("enter")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// pickerModel is a small multi-select list for choosing folder names.
type pickerModel struct {
	title    string
	items    []string
	selected map[int]struct{}
	cursor   int
	keys     pickerKeyMap
	aborted  bool
}

func newPicker(title string, items []string) pickerModel {
	return pickerModel{
		title:    title,
		items:    items,
		selected: make(map[int]struct{}),
		keys:     defaultPickerKeys(),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if _, ok := m.selected[m.cursor]; ok {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}
	case key.Matches(keyMsg, m.keys.Accept):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	var sb strings.Builder
	sb.WriteString(pickerTitleStyle.Render(m.title))
	sb.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = pickerCursorStyle.Render("> ")
		}
		marker := "[ ]"
		line := fmt.Sprintf("%s %s", marker, item)
		if _, ok := m.selected[i]; ok {
			line = pickerSelectedStyle.Render(fmt.Sprintf("[x] %s", item))
		}
		sb.WriteString(cursor + line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(pickerHelpStyle.Render("space: toggle • enter: accept • q: cancel"))
	sb.WriteString("\n")
	return sb.String()
}

// chosen returns the selected item names in list order.
func (m pickerModel) chosen() []string {
	var names []string
	for i, item := range m.items {
		if _, ok := m.selected[i]; ok {
			names = append(names, item)
		}
	}
	return names
}

// ChooseFolders runs an interactive multi-select over the given names and
// returns the chosen subset. A cancelled picker returns nil.
func ChooseFolders(title string, items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	program := tea.NewProgram(newPicker(title, items))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("folder picker failed: %w", err)
	}

	model, ok := final.(pickerModel)
	if !ok || model.aborted {
		return nil, nil
	}
	return model.chosen(), nil
}
